package defects

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/scott198989/ParameterPath-Optimizer/internal/shared/server/respond"
)

// Handler serves the defect reference data.
type Handler struct{}

// NewHandler constructs a Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes attaches defect routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/defects", h.list)
	rg.GET("/defects/:id", h.get)
}

func (h *Handler) list(c *gin.Context) {
	ids := All()
	out := make([]gin.H, 0, len(ids))
	for _, id := range ids {
		out = append(out, gin.H{"id": id, "name": DisplayName(id)})
	}
	respond.OK(c, gin.H{"defects": out})
}

func (h *Handler) get(c *gin.Context) {
	p, err := Get(ID(c.Param("id")))
	if err != nil {
		if errors.Is(err, ErrUnknownDefect) {
			respond.Error(c, http.StatusNotFound, "not_found", "unknown defect", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch defect", nil)
		return
	}
	respond.OK(c, p)
}
