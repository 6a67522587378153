package patient

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
	patientservice "github.com/vetco-health/vetco-api/internal/service/patient"
)

type fakePatientRepo struct {
	patients []*model.Patient
}

func (f *fakePatientRepo) Create(ctx context.Context, p *model.Patient) error {
	p.ID = uuid.New()
	f.patients = append(f.patients, p)
	return nil
}

func (f *fakePatientRepo) ListForVet(ctx context.Context, vetID uuid.UUID) ([]*model.Patient, error) {
	var out []*model.Patient
	for _, p := range f.patients {
		if p.VetID == vetID {
			out = append(out, p)
		}
	}
	return out, nil
}

func setupPatients(user *model.User) (*gin.Engine, *fakePatientRepo) {
	gin.SetMode(gin.TestMode)
	repo := &fakePatientRepo{}
	svc := patientservice.NewService(repo)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(handler.ContextUserKey, user)
	})
	NewHandler(svc).RegisterRoutes(r.Group("/api"))
	return r, repo
}

func TestCreatePatient(t *testing.T) {
	vet := &model.User{Base: model.Base{ID: uuid.New()}, UserType: model.UserTypeVet}
	r, repo := setupPatients(vet)

	owner := uuid.New()
	body, _ := json.Marshal(map[string]interface{}{
		"name":    "Bessie",
		"species": "cow",
		"breed":   "Friesian",
		"age":     4,
		"owner":   owner.String(),
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/vet/patients", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, repo.patients, 1)
	p := repo.patients[0]
	assert.Equal(t, vet.ID, p.VetID)
	assert.Equal(t, owner, p.OwnerID)
	require.NotNil(t, p.Age)
	assert.Equal(t, 4, *p.Age)
}

func TestCreatePatientMissingFields(t *testing.T) {
	vet := &model.User{Base: model.Base{ID: uuid.New()}, UserType: model.UserTypeVet}
	r, repo := setupPatients(vet)

	body, _ := json.Marshal(map[string]string{"name": "Bessie"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/vet/patients", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "species")
	assert.Contains(t, w.Body.String(), "owner")
	assert.Empty(t, repo.patients)
}

func TestListPatientsScopedToVet(t *testing.T) {
	vet := &model.User{Base: model.Base{ID: uuid.New()}, UserType: model.UserTypeVet}
	r, repo := setupPatients(vet)

	repo.patients = []*model.Patient{
		{Base: model.Base{ID: uuid.New()}, Name: "Mine", VetID: vet.ID},
		{Base: model.Base{ID: uuid.New()}, Name: "Another vet's", VetID: uuid.New()},
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/vet/patients", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var list []*model.Patient
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Mine", list[0].Name)
}
