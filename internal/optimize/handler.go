package optimize

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/scott198989/ParameterPath-Optimizer/internal/materials"
	"github.com/scott198989/ParameterPath-Optimizer/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the optimize service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches optimize routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/optimize", h.optimize)
}

func (h *Handler) optimize(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "material, targetOD, targetGauge, and productionRate are required and must be positive", err.Error())
		return
	}

	settings, err := h.Svc.Optimize(req)
	if err != nil {
		switch {
		case errors.Is(err, materials.ErrUnknownMaterial):
			respond.Error(c, http.StatusNotFound, "not_found", "unknown material", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to compute settings", nil)
		}
		return
	}

	respond.OK(c, settings)
}
