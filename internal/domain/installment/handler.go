package installment

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"agencydesk/internal/middleware"
	"agencydesk/internal/pkg/response"
	"agencydesk/internal/pkg/validator"
)

// Handler handles installment HTTP requests.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RequestPayment handles POST /api/v1/installments/:id/request-payment
func (h *Handler) RequestPayment(c *gin.Context) {
	var req RequestPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid payment claim", errs)
		return
	}

	paidDate, err := time.Parse("2006-01-02", req.PaidDate)
	if err != nil {
		response.Error(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "paid_date must be YYYY-MM-DD")
		return
	}

	inst, err := h.service.RequestPayment(c.Request.Context(), c.Param("id"), middleware.ActorID(c), paidDate, req.Notes)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, NewView(*inst, time.Now()))
}

// Approve handles POST /api/v1/installments/:id/approve (admin)
func (h *Handler) Approve(c *gin.Context) {
	inst, err := h.service.Approve(c.Request.Context(), c.Param("id"), middleware.ActorID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, NewView(*inst, time.Now()))
}

// Reject handles POST /api/v1/installments/:id/reject (admin)
func (h *Handler) Reject(c *gin.Context) {
	var req RejectPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Rejection needs a reason", errs)
		return
	}

	inst, err := h.service.Reject(c.Request.Context(), c.Param("id"), middleware.ActorID(c), req.Reason)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, NewView(*inst, time.Now()))
}

// ListPendingApproval handles GET /api/v1/installments/pending-approval (admin)
func (h *Handler) ListPendingApproval(c *gin.Context) {
	insts, err := h.service.ListPendingApproval(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, NewViews(insts, time.Now()))
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInstallmentNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Installment not found")
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrNotAssigned):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only the assigned actor may claim this installment")
	case errors.Is(err, ErrAlreadyPaid):
		response.Error(c, http.StatusConflict, "CONFLICT", "Installment is already paid")
	case errors.Is(err, ErrAlreadyPending):
		response.Error(c, http.StatusConflict, "ALREADY_PENDING", "A payment claim is already awaiting approval")
	case errors.Is(err, ErrNoPendingClaim):
		response.Error(c, http.StatusConflict, "NO_PENDING_CLAIM", "No payment claim is awaiting approval")
	case errors.Is(err, ErrConflict):
		response.Error(c, http.StatusConflict, "CONFLICT", "Installment was modified concurrently")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
	}
}
