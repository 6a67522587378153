package appointment

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

	"github.com/vetco-health/vetco-api/internal/email"
	"github.com/vetco-health/vetco-api/internal/handler"
	"github.com/vetco-health/vetco-api/internal/model"
	appointmentservice "github.com/vetco-health/vetco-api/internal/service/appointment"
)

type fakeAppointmentRepo struct {
	appointments []*model.Appointment
}

func (f *fakeAppointmentRepo) Create(ctx context.Context, a *model.Appointment) error {
	a.ID = uuid.New()
	f.appointments = append(f.appointments, a)
	return nil
}

func (f *fakeAppointmentRepo) ListForOwner(ctx context.Context, userID uuid.UUID) ([]*model.Appointment, error) {
	var out []*model.Appointment
	for _, a := range f.appointments {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) ListForVet(ctx context.Context, vetID uuid.UUID) ([]*model.Appointment, error) {
	var out []*model.Appointment
	for _, a := range f.appointments {
		if a.VetID != nil && *a.VetID == vetID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) CountForUser(ctx context.Context, userID uuid.UUID) (int, error) {
	n := 0
	for _, a := range f.appointments {
		if a.UserID == userID {
			n++
		}
	}
	return n, nil
}

type noopEmitter struct{}

func (noopEmitter) Emit(context.Context, string, interface{}) error { return nil }

func setupAppointments(user *model.User) (*gin.Engine, *fakeAppointmentRepo) {
	gin.SetMode(gin.TestMode)
	repo := &fakeAppointmentRepo{}
	svc := appointmentservice.NewService(repo, noopEmitter{}, email.Noop{})

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(handler.ContextUserKey, user)
	})
	NewHandler(svc).RegisterRoutes(r.Group("/api"))
	return r, repo
}

func testFarmer() *model.User {
	return &model.User{
		Base:     model.Base{ID: uuid.New()},
		Email:    "farmer@x.com",
		UserType: model.UserTypeFarmer,
	}
}

func TestCreateAppointmentDefaultsScheduled(t *testing.T) {
	farmer := testFarmer()
	r, repo := setupAppointments(farmer)

	body, _ := json.Marshal(map[string]string{
		"title":      "Vaccination",
		"date":       "2025-02-01",
		"time":       "10:00",
		"clientName": "John",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/dashboard/appointments", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var created model.Appointment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, model.AppointmentStatusScheduled, created.Status)
	assert.Equal(t, farmer.ID, created.UserID)
	require.Len(t, repo.appointments, 1)
}

func TestCreateAppointmentMissingFields(t *testing.T) {
	r, repo := setupAppointments(testFarmer())

	body, _ := json.Marshal(map[string]string{"title": "Checkup"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/dashboard/appointments", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "missing required fields")
	assert.Contains(t, w.Body.String(), "date")
	assert.Contains(t, w.Body.String(), "time")
	assert.Contains(t, w.Body.String(), "clientName")
	assert.Empty(t, repo.appointments)
}

func TestListAppointmentsScopedToOwner(t *testing.T) {
	farmer := testFarmer()
	r, repo := setupAppointments(farmer)

	other := uuid.New()
	repo.appointments = []*model.Appointment{
		{Base: model.Base{ID: uuid.New()}, Title: "Mine", UserID: farmer.ID},
		{Base: model.Base{ID: uuid.New()}, Title: "Not mine", UserID: other},
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/dashboard/appointments", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var list []*model.Appointment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Mine", list[0].Title)
}

func TestListAppointmentsEmptyIsArray(t *testing.T) {
	r, _ := setupAppointments(testFarmer())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/dashboard/appointments", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestListAppointmentsForVet(t *testing.T) {
	vet := &model.User{Base: model.Base{ID: uuid.New()}, UserType: model.UserTypeVet}
	r, repo := setupAppointments(vet)

	repo.appointments = []*model.Appointment{
		{Base: model.Base{ID: uuid.New()}, Title: "Assigned", UserID: uuid.New(), VetID: &vet.ID},
		{Base: model.Base{ID: uuid.New()}, Title: "Unassigned", UserID: uuid.New()},
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/vet/appointments", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var list []*model.Appointment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Assigned", list[0].Title)
}
