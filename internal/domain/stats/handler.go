package stats

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"agencydesk/internal/pkg/response"
)

// Handler serves the dashboard snapshot and the live counter socket.
type Handler struct {
	service *Service
	hub     *Hub
}

func NewHandler(service *Service, hub *Hub) *Handler {
	return &Handler{service: service, hub: hub}
}

// Snapshot handles GET /api/v1/stats
func (h *Handler) Snapshot(c *gin.Context) {
	counters, err := h.service.Snapshot(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, counters)
}

// ServeWS handles GET /api/v1/stats/ws
func (h *Handler) ServeWS(c *gin.Context) {
	conn, err := Upgrade(c.Writer, c.Request)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "WEBSOCKET_ERROR", "Failed to upgrade connection")
		return
	}
	h.hub.ServeWS(conn)
}
