package lead

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"agencydesk/internal/domain/actor"
	"agencydesk/internal/domain/status"
	"agencydesk/internal/middleware"
	"agencydesk/internal/pkg/response"
	"agencydesk/internal/pkg/validator"
)

// Handler handles lead HTTP requests.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Create handles POST /api/v1/leads
func (h *Handler) Create(c *gin.Context) {
	var req CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid lead payload", errs)
		return
	}

	l, err := h.service.CreateLead(c.Request.Context(), req, middleware.ActorID(c))
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, l)
}

// Get handles GET /api/v1/leads/:id
func (h *Handler) Get(c *gin.Context) {
	l, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, l)
}

// List handles GET /api/v1/leads
func (h *Handler) List(c *gin.Context) {
	var filter ListFilter
	if s := c.Query("status"); s != "" {
		st := status.LeadStatus(s)
		if !status.IsLeadStatus(st) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown status filter")
			return
		}
		filter.Status = &st
	}
	filter.Search = c.Query("search")

	// Non-admins only see their own pipeline.
	if middleware.Role(c) != string(actor.RoleAdmin) {
		filter.OwnerID = middleware.ActorID(c)
	}

	limit := 50
	if l := c.Query("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 && v <= 100 {
			limit = v
		}
	}
	offset := 0
	if o := c.Query("offset"); o != "" {
		if v, err := strconv.Atoi(o); err == nil && v >= 0 {
			offset = v
		}
	}

	leads, total, err := h.service.List(c.Request.Context(), filter, limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, ListResponse{Leads: leads, Total: total})
}

// Transition handles POST /api/v1/leads/:id/transition
func (h *Handler) Transition(c *gin.Context) {
	var req TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid transition payload", errs)
		return
	}

	isAdmin := middleware.Role(c) == string(actor.RoleAdmin)
	l, err := h.service.Transition(c.Request.Context(), c.Param("id"), middleware.ActorID(c), isAdmin, req.Status)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, l)
}

// Convert handles POST /api/v1/leads/:id/convert
func (h *Handler) Convert(c *gin.Context) {
	var draft ProjectDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&draft); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid project draft", errs)
		return
	}

	isAdmin := middleware.Role(c) == string(actor.RoleAdmin)
	l, p, err := h.service.ConvertToClient(c.Request.Context(), c.Param("id"), middleware.ActorID(c), isAdmin, draft)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"lead":    l,
		"project": p,
	})
}

// Assign handles PATCH /api/v1/leads/:id/assign (admin)
func (h *Handler) Assign(c *gin.Context) {
	var req AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid assignment payload", errs)
		return
	}

	l, err := h.service.Assign(c.Request.Context(), c.Param("id"), req.OwnerID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, l)
}

// Stats handles GET /api/v1/leads/stats
func (h *Handler) Stats(c *gin.Context) {
	counts, err := h.service.CountByStatus(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, counts)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrLeadNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Lead not found")
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrPhoneExists):
		response.Error(c, http.StatusConflict, "PHONE_EXISTS", "Lead with this phone already exists")
	case errors.Is(err, ErrNotOwner):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only the owning actor may transition this lead")
	case errors.Is(err, ErrTerminalState):
		response.Error(c, http.StatusConflict, "TERMINAL_STATE", "Lead is in a terminal status")
	case errors.Is(err, ErrIllegalTransition):
		response.Error(c, http.StatusConflict, "ILLEGAL_TRANSITION", err.Error())
	case errors.Is(err, ErrConflict):
		response.Error(c, http.StatusConflict, "CONFLICT", "Lead was modified concurrently, re-read and retry")
	case errors.Is(err, ErrIntegrity):
		response.Error(c, http.StatusInternalServerError, "INTEGRITY_ERROR", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
	}
}
