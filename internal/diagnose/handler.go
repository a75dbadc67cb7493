package diagnose

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/scott198989/ParameterPath-Optimizer/internal/defects"
	"github.com/scott198989/ParameterPath-Optimizer/internal/materials"
	"github.com/scott198989/ParameterPath-Optimizer/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the diagnose service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches diagnose routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/diagnose", h.diagnose)
}

func (h *Handler) diagnose(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "material, defect, and positive currentSettings readings are required", err.Error())
		return
	}

	result, err := h.Svc.Diagnose(req)
	if err != nil {
		switch {
		case errors.Is(err, materials.ErrUnknownMaterial):
			respond.Error(c, http.StatusNotFound, "not_found", "unknown material", nil)
		case errors.Is(err, defects.ErrUnknownDefect):
			respond.Error(c, http.StatusNotFound, "not_found", "unknown defect", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to diagnose defect", nil)
		}
		return
	}

	respond.OK(c, result)
}
