package message

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vetco-health/vetco-api/internal/handler"
	"github.com/vetco-health/vetco-api/internal/model"
	messageservice "github.com/vetco-health/vetco-api/internal/service/message"
)

type fakeMessageRepo struct {
	messages []*model.Message
}

func (f *fakeMessageRepo) Create(ctx context.Context, m *model.Message) error {
	m.ID = uuid.New()
	f.messages = append(f.messages, m)
	return nil
}

func (f *fakeMessageRepo) ListForUser(ctx context.Context, userID uuid.UUID) ([]*model.Message, error) {
	var out []*model.Message
	for _, m := range f.messages {
		if m.SenderID == userID || m.RecipientID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMessageRepo) ListRecent(ctx context.Context, userID uuid.UUID) ([]*model.Message, error) {
	latest := make(map[uuid.UUID]*model.Message)
	for _, m := range f.messages {
		switch userID {
		case m.SenderID:
			latest[m.RecipientID] = m
		case m.RecipientID:
			latest[m.SenderID] = m
		}
	}
	var out []*model.Message
	for _, m := range latest {
		out = append(out, m)
	}
	return out, nil
}

func (f *fakeMessageRepo) ListConversation(ctx context.Context, userID, otherUserID uuid.UUID) ([]*model.Message, error) {
	var out []*model.Message
	for _, m := range f.messages {
		if (m.SenderID == userID && m.RecipientID == otherUserID) ||
			(m.SenderID == otherUserID && m.RecipientID == userID) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMessageRepo) MarkConversationRead(ctx context.Context, recipientID, senderID uuid.UUID) error {
	for _, m := range f.messages {
		if m.RecipientID == recipientID && m.SenderID == senderID {
			m.Read = true
		}
	}
	return nil
}

type noopEmitter struct{}

func (noopEmitter) Emit(context.Context, string, interface{}) error { return nil }

func setupMessages(user *model.User) (*gin.Engine, *fakeMessageRepo) {
	gin.SetMode(gin.TestMode)
	repo := &fakeMessageRepo{}
	svc := messageservice.NewService(repo, noopEmitter{})

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(handler.ContextUserKey, user)
	})
	NewHandler(svc).RegisterRoutes(r.Group("/api"))
	return r, repo
}

func testUser() *model.User {
	return &model.User{Base: model.Base{ID: uuid.New()}, UserType: model.UserTypeFarmer}
}

func TestSendMessage(t *testing.T) {
	sender := testUser()
	r, repo := setupMessages(sender)

	recipient := uuid.New()
	body, _ := json.Marshal(map[string]string{
		"recipient": recipient.String(),
		"content":   "Hello",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/messages/send", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, repo.messages, 1)
	assert.Equal(t, sender.ID, repo.messages[0].SenderID)
	assert.Equal(t, recipient, repo.messages[0].RecipientID)
	assert.False(t, repo.messages[0].Read)
}

func TestSendMessageMissingContent(t *testing.T) {
	r, repo := setupMessages(testUser())

	body, _ := json.Marshal(map[string]string{"recipient": uuid.NewString()})
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/messages/send", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "content")
	assert.Empty(t, repo.messages)
}

func TestListMessagesScopedToUser(t *testing.T) {
	user := testUser()
	r, repo := setupMessages(user)

	other := uuid.New()
	repo.messages = []*model.Message{
		{Base: model.Base{ID: uuid.New()}, SenderID: user.ID, RecipientID: other, Content: "sent"},
		{Base: model.Base{ID: uuid.New()}, SenderID: other, RecipientID: user.ID, Content: "received"},
		{Base: model.Base{ID: uuid.New()}, SenderID: other, RecipientID: uuid.New(), Content: "unrelated"},
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/messages", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var list []*model.Message
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 2)
}

func TestRecentMessagesEmptyIs404(t *testing.T) {
	r, _ := setupMessages(testUser())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/messages/recent", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"No messages found"}`, w.Body.String())
}

func TestRecentMessagesOnePerPartner(t *testing.T) {
	user := testUser()
	r, repo := setupMessages(user)

	partner := uuid.New()
	repo.messages = []*model.Message{
		{Base: model.Base{ID: uuid.New()}, SenderID: user.ID, RecipientID: partner, Content: "first"},
		{Base: model.Base{ID: uuid.New()}, SenderID: partner, RecipientID: user.ID, Content: "latest"},
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/messages/recent", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var list []*model.Message
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "latest", list[0].Content)
}

func TestChatMarksIncomingRead(t *testing.T) {
	user := testUser()
	r, repo := setupMessages(user)

	other := uuid.New()
	incoming := &model.Message{Base: model.Base{ID: uuid.New()}, SenderID: other, RecipientID: user.ID, Content: "hi"}
	outgoing := &model.Message{Base: model.Base{ID: uuid.New()}, SenderID: user.ID, RecipientID: other, Content: "hello"}
	unrelated := &model.Message{Base: model.Base{ID: uuid.New()}, SenderID: other, RecipientID: uuid.New(), Content: "x"}
	repo.messages = []*model.Message{incoming, outgoing, unrelated}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/messages/chat/"+other.String(), nil))

	require.Equal(t, http.StatusOK, w.Code)
	var list []*model.Message
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 2)

	assert.True(t, incoming.Read)
	assert.False(t, outgoing.Read)
	assert.False(t, unrelated.Read)
}

func TestChatInvalidUserID(t *testing.T) {
	r, _ := setupMessages(testUser())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/messages/chat/not-a-uuid", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
