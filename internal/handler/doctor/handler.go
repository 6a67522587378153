package doctor

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vetco-health/vetco-api/internal/handler"
	"github.com/vetco-health/vetco-api/internal/model"
	"github.com/vetco-health/vetco-api/internal/service/doctor"
)

type Handler struct {
	svc *doctor.Service
}

func NewHandler(svc *doctor.Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the public directory. These routes are
// deliberately unauthenticated; the directory is the marketplace's
// shop window.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	group := r.Group("/doctor")
	{
		group.GET("/get", h.List)
		group.POST("/post", h.Create)
	}
}

func (h *Handler) Create(c *gin.Context) {
	var req model.CreateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.BindingErrorResponse(err))
		return
	}

	created, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *Handler) List(c *gin.Context) {
	doctors, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	if doctors == nil {
		doctors = []*model.Doctor{}
	}
	c.JSON(http.StatusOK, doctors)
}
