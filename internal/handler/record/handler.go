package record

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vetco-health/vetco-api/internal/handler"
	"github.com/vetco-health/vetco-api/internal/model"
	"github.com/vetco-health/vetco-api/internal/service/record"
)

type Handler struct {
	svc *record.Service
}

func NewHandler(svc *record.Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the farmer-facing treatment record routes and the
// vet-facing clinical record routes.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	records := r.Group("/records")
	{
		records.GET("", h.List)
		records.POST("", h.Create)
		records.GET("/user/:userId", h.ListForUser)
		records.DELETE("/:recordId", h.Delete)
	}

	vet := r.Group("/vet/records")
	{
		vet.GET("", h.ListClinical)
		vet.POST("", h.CreateClinical)
	}
}

func (h *Handler) Create(c *gin.Context) {
	var req model.CreateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.BindingErrorResponse(err))
		return
	}

	user := handler.CurrentUser(c)
	created, err := h.svc.CreateTreatment(c.Request.Context(), user, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *Handler) List(c *gin.Context) {
	user := handler.CurrentUser(c)

	records, err := h.svc.ListForCaller(c.Request.Context(), user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	if records == nil {
		records = []*model.Record{}
	}
	c.JSON(http.StatusOK, records)
}

func (h *Handler) ListForUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid user ID"))
		return
	}

	records, err := h.svc.ListForOwner(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	if records == nil {
		records = []*model.Record{}
	}
	c.JSON(http.StatusOK, records)
}

// Delete removes a record by id without verifying it exists or that the
// caller owns it; the response is the same either way.
func (h *Handler) Delete(c *gin.Context) {
	recordID, err := uuid.Parse(c.Param("recordId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid record ID"))
		return
	}

	if err := h.svc.Delete(c.Request.Context(), recordID); err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Record deleted successfully"})
}

func (h *Handler) CreateClinical(c *gin.Context) {
	var req model.CreateClinicalRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.BindingErrorResponse(err))
		return
	}

	user := handler.CurrentUser(c)
	created, err := h.svc.CreateClinical(c.Request.Context(), user.ID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *Handler) ListClinical(c *gin.Context) {
	user := handler.CurrentUser(c)

	records, err := h.svc.ListClinicalForVet(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	if records == nil {
		records = []*model.Record{}
	}
	c.JSON(http.StatusOK, records)
}
