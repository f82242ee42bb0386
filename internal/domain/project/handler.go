package project

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"agencydesk/internal/domain/actor"
	"agencydesk/internal/domain/installment"
	"agencydesk/internal/middleware"
	"agencydesk/internal/pkg/response"
)

// Handler serves project read endpoints.
type Handler struct {
	repo         *Repository
	installments *installment.Service
}

func NewHandler(repo *Repository, installments *installment.Service) *Handler {
	return &Handler{repo: repo, installments: installments}
}

// List handles GET /api/v1/projects
func (h *Handler) List(c *gin.Context) {
	assignedTo := middleware.ActorID(c)
	if middleware.Role(c) == string(actor.RoleAdmin) {
		assignedTo = ""
	}

	projects, err := h.repo.List(c.Request.Context(), assignedTo)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, projects)
}

// Get handles GET /api/v1/projects/:id
func (h *Handler) Get(c *gin.Context) {
	p, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrProjectNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Project not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	insts, err := h.installments.ListByProject(c.Request.Context(), p.ID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"project":      p,
		"installments": installment.NewViews(insts, time.Now()),
	})
}

// ListInstallments handles GET /api/v1/projects/:id/installments
func (h *Handler) ListInstallments(c *gin.Context) {
	p, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrProjectNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Project not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	insts, err := h.installments.ListByProject(c.Request.Context(), p.ID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, installment.NewViews(insts, time.Now()))
}
