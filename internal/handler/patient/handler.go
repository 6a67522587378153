package patient

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vetco-health/vetco-api/internal/handler"
	"github.com/vetco-health/vetco-api/internal/model"
	"github.com/vetco-health/vetco-api/internal/service/patient"
)

type Handler struct {
	svc *patient.Service
}

func NewHandler(svc *patient.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	group := r.Group("/vet/patients")
	{
		group.GET("", h.List)
		group.POST("", h.Create)
	}
}

func (h *Handler) Create(c *gin.Context) {
	var req model.CreatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.BindingErrorResponse(err))
		return
	}

	user := handler.CurrentUser(c)
	created, err := h.svc.Create(c.Request.Context(), user.ID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *Handler) List(c *gin.Context) {
	user := handler.CurrentUser(c)

	patients, err := h.svc.ListForVet(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	if patients == nil {
		patients = []*model.Patient{}
	}
	c.JSON(http.StatusOK, patients)
}
