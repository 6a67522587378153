package dashboard

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vetco-health/vetco-api/internal/handler"
	"github.com/vetco-health/vetco-api/internal/service/dashboard"
)

type Handler struct {
	svc *dashboard.Service
}

func NewHandler(svc *dashboard.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	group := r.Group("/dashboard")
	{
		group.GET("/stats", h.Stats)
		group.GET("/recent-activity", h.RecentActivity)
	}
}

func (h *Handler) Stats(c *gin.Context) {
	user := handler.CurrentUser(c)

	stats, err := h.svc.Stats(c.Request.Context(), user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, stats)
}

// RecentActivity returns 404 on an empty feed; the dashboard treats "no
// activity yet" as a distinct state.
func (h *Handler) RecentActivity(c *gin.Context) {
	user := handler.CurrentUser(c)

	items, err := h.svc.RecentActivity(c.Request.Context(), user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	if len(items) == 0 {
		c.JSON(http.StatusNotFound, handler.NewErrorResponse("No recent activity found"))
		return
	}

	c.JSON(http.StatusOK, items)
}
