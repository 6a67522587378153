package message

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vetco-health/vetco-api/internal/handler"
	"github.com/vetco-health/vetco-api/internal/model"
	"github.com/vetco-health/vetco-api/internal/service/message"
)

type Handler struct {
	svc *message.Service
}

func NewHandler(svc *message.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	group := r.Group("/messages")
	{
		group.GET("", h.List)
		group.POST("/send", h.Send)
		group.POST("/reply", h.Send)
		group.GET("/recent", h.Recent)
		group.GET("/chat/:otherUserId", h.Chat)
	}
}

func (h *Handler) Send(c *gin.Context) {
	var req model.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.BindingErrorResponse(err))
		return
	}

	user := handler.CurrentUser(c)
	sent, err := h.svc.Send(c.Request.Context(), user.ID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, sent)
}

func (h *Handler) List(c *gin.Context) {
	user := handler.CurrentUser(c)

	messages, err := h.svc.ListForUser(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	if messages == nil {
		messages = []*model.Message{}
	}
	c.JSON(http.StatusOK, messages)
}

// Recent returns the latest message per conversation; 404 when the user
// has no conversations at all.
func (h *Handler) Recent(c *gin.Context) {
	user := handler.CurrentUser(c)

	messages, err := h.svc.ListRecent(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	if len(messages) == 0 {
		c.JSON(http.StatusNotFound, handler.NewErrorResponse("No messages found"))
		return
	}

	c.JSON(http.StatusOK, messages)
}

func (h *Handler) Chat(c *gin.Context) {
	otherUserID, err := uuid.Parse(c.Param("otherUserId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid user ID"))
		return
	}

	user := handler.CurrentUser(c)
	messages, err := h.svc.Chat(c.Request.Context(), user.ID, otherUserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	if messages == nil {
		messages = []*model.Message{}
	}
	c.JSON(http.StatusOK, messages)
}
