package handler

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/vetco-health/vetco-api/internal/model"
)

// ErrorResponse is the error body for every endpoint: a single message
// field, surfaced directly by clients.
type ErrorResponse struct {
	Message string `json:"message"`
}

func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Message: message}
}

// BindingErrorResponse maps a gin binding failure to an error body. Missing
// required fields are enumerated by their JSON names.
func BindingErrorResponse(err error) ErrorResponse {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		var missing, invalid []string
		for _, fe := range verrs {
			if fe.Tag() == "required" {
				missing = append(missing, fe.Field())
			} else {
				invalid = append(invalid, fe.Field())
			}
		}
		if len(missing) > 0 {
			return NewErrorResponse("missing required fields: " + strings.Join(missing, ", "))
		}
		return NewErrorResponse("invalid fields: " + strings.Join(invalid, ", "))
	}
	return NewErrorResponse(err.Error())
}

// CurrentUser returns the user the auth gate attached to the request, or
// nil on unguarded routes.
func CurrentUser(c *gin.Context) *model.User {
	v, exists := c.Get(ContextUserKey)
	if !exists {
		return nil
	}
	user, ok := v.(*model.User)
	if !ok {
		return nil
	}
	return user
}
