package actor

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"agencydesk/internal/pkg/response"
	"agencydesk/internal/pkg/validator"
)

// Handler handles actor HTTP requests.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Login handles POST /api/v1/auth/login
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid login payload", errs)
		return
	}

	token, a, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch err {
		case ErrInvalidCredentials:
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid email or password")
		case ErrInactive:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Account is deactivated")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, LoginResponse{Token: token, Actor: a})
}

// ListByRole handles GET /api/v1/actors?role=...
func (h *Handler) ListByRole(c *gin.Context) {
	role := Role(c.Query("role"))
	if !role.Valid() {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown role")
		return
	}

	actors, err := h.service.ListByRole(c.Request.Context(), role)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, actors)
}
