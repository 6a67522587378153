package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vetco-health/vetco-api/internal/handler"
	"github.com/vetco-health/vetco-api/internal/model"
	"github.com/vetco-health/vetco-api/internal/service/auth"
	"github.com/vetco-health/vetco-api/pkg/security"
)

type Handler struct {
	svc *auth.Service
}

func NewHandler(svc *auth.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	group := r.Group("/auth")
	{
		group.POST("/signup", h.Signup)
		group.POST("/login", h.Login)
	}
}

func (h *Handler) Signup(c *gin.Context) {
	var req model.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.BindingErrorResponse(err))
		return
	}

	user, err := h.svc.Signup(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrDuplicateUser):
			c.JSON(http.StatusBadRequest, handler.NewErrorResponse("User already exists"))
		case errors.Is(err, auth.ErrLicenseRequired):
			c.JSON(http.StatusBadRequest, handler.NewErrorResponse("License number is required for vets"))
		case errors.Is(err, security.ErrPasswordTooLow):
			c.JSON(http.StatusBadRequest, handler.NewErrorResponse("Password is too short"))
		default:
			c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		}
		return
	}

	c.JSON(http.StatusCreated, user)
}

func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.BindingErrorResponse(err))
		return
	}

	resp, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrUserNotFound):
			c.JSON(http.StatusBadRequest, handler.NewErrorResponse("User not found"))
		case errors.Is(err, auth.ErrInvalidCredentials):
			c.JSON(http.StatusBadRequest, handler.NewErrorResponse("Invalid credentials"))
		default:
			c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}
