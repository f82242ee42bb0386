package request

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"agencydesk/internal/middleware"
	"agencydesk/internal/pkg/response"
	"agencydesk/internal/pkg/validator"
)

// Handler handles request HTTP requests.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Create handles POST /api/v1/requests
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid request payload", errs)
		return
	}

	r, err := h.service.Create(c.Request.Context(), req, middleware.ActorID(c))
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, r)
}

// Send handles POST /api/v1/requests/:id/send
func (h *Handler) Send(c *gin.Context) {
	r, err := h.service.Send(c.Request.Context(), c.Param("id"), middleware.ActorID(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, r)
}

// Respond handles POST /api/v1/requests/:id/respond
func (h *Handler) Respond(c *gin.Context) {
	var req RespondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid response payload", errs)
		return
	}

	r, err := h.service.Respond(c.Request.Context(), c.Param("id"), middleware.ActorID(c), req.Type, req.Message)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, r)
}

// Get handles GET /api/v1/requests/:id
func (h *Handler) Get(c *gin.Context) {
	r, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	actorID := middleware.ActorID(c)
	if r.RequestedBy != actorID && r.Recipient != actorID {
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Request is not addressed to or from you")
		return
	}

	response.Success(c, http.StatusOK, r)
}

// List handles GET /api/v1/requests?direction=incoming|outgoing&status=&search=
func (h *Handler) List(c *gin.Context) {
	filter := ListFilter{
		Status: c.Query("status"),
		Search: c.Query("search"),
	}
	actorID := middleware.ActorID(c)

	var (
		out []Request
		err error
	)
	switch c.DefaultQuery("direction", "incoming") {
	case "incoming":
		out, err = h.service.ListIncoming(c.Request.Context(), actorID, filter)
	case "outgoing":
		out, err = h.service.ListOutgoing(c.Request.Context(), actorID, filter)
	default:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "direction must be incoming or outgoing")
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, out)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrRequestNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Request not found")
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrSelfRequest):
		response.Error(c, http.StatusUnprocessableEntity, "SELF_REQUEST", "Sender and recipient must be distinct actors")
	case errors.Is(err, ErrNotSender):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only the sender may send this request")
	case errors.Is(err, ErrNotRecipient):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only the recipient may respond to this request")
	case errors.Is(err, ErrAlreadyResponded):
		response.Error(c, http.StatusConflict, "ALREADY_RESPONDED", "Request has already been responded to")
	case errors.Is(err, ErrIllegalTransition):
		response.Error(c, http.StatusConflict, "ILLEGAL_TRANSITION", err.Error())
	case errors.Is(err, ErrConflict):
		response.Error(c, http.StatusConflict, "CONFLICT", "Request was modified concurrently")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
	}
}
