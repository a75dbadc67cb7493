package materials

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/scott198989/ParameterPath-Optimizer/internal/shared/server/respond"
)

// Handler serves the material reference data.
type Handler struct{}

// NewHandler constructs a Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes attaches material routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/materials", h.list)
	rg.GET("/materials/:id", h.get)
}

func (h *Handler) list(c *gin.Context) {
	ids := All()
	out := make([]gin.H, 0, len(ids))
	for _, id := range ids {
		p, err := Get(id)
		if err != nil {
			respond.Error(c, http.StatusInternalServerError, "internal_error", "material table inconsistent", nil)
			return
		}
		out = append(out, gin.H{"id": p.ID, "name": p.Name})
	}
	respond.OK(c, gin.H{"materials": out})
}

func (h *Handler) get(c *gin.Context) {
	p, err := Get(ID(c.Param("id")))
	if err != nil {
		if errors.Is(err, ErrUnknownMaterial) {
			respond.Error(c, http.StatusNotFound, "not_found", "unknown material", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch material", nil)
		return
	}
	respond.OK(c, p)
}
