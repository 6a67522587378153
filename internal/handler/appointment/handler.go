package appointment

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vetco-health/vetco-api/internal/handler"
	"github.com/vetco-health/vetco-api/internal/model"
	"github.com/vetco-health/vetco-api/internal/service/appointment"
)

type Handler struct {
	svc *appointment.Service
}

func NewHandler(svc *appointment.Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the farmer-facing dashboard routes and the vet
// schedule. All of them sit behind the auth gate.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/dashboard/appointments", h.Create)
	r.GET("/dashboard/appointments", h.List)
	r.GET("/vet/appointments", h.ListForVet)
}

func (h *Handler) Create(c *gin.Context) {
	var req model.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.BindingErrorResponse(err))
		return
	}

	user := handler.CurrentUser(c)
	created, err := h.svc.Create(c.Request.Context(), user, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *Handler) List(c *gin.Context) {
	user := handler.CurrentUser(c)

	appointments, err := h.svc.ListForOwner(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	if appointments == nil {
		appointments = []*model.Appointment{}
	}
	c.JSON(http.StatusOK, appointments)
}

func (h *Handler) ListForVet(c *gin.Context) {
	user := handler.CurrentUser(c)

	appointments, err := h.svc.ListForVet(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	if appointments == nil {
		appointments = []*model.Appointment{}
	}
	c.JSON(http.StatusOK, appointments)
}
