package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/superchain/token-explorer/internal/logger"
)

// ListChains returns all chains the explorer knows about.
func (h *Handler) ListChains(c *gin.Context) {
	chains, err := h.store.ListChains(c.Request.Context())
	if err != nil {
		logger.ErrorCtx(c.Request.Context(), err)
		respondInternalError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"chains": chains})
}

// ListGroups returns the curated cross-chain token groups.
func (h *Handler) ListGroups(c *gin.Context) {
	groups, err := h.store.ListTokenGroups(c.Request.Context())
	if err != nil {
		logger.ErrorCtx(c.Request.Context(), err)
		respondInternalError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"groups": groups})
}
