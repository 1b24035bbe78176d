package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/superchain/token-explorer/internal/logger"
	"github.com/superchain/token-explorer/internal/pricehistory"
)

// GetTokenPrices returns the price series for a token. The range query
// parameter accepts 24h, 7d and 30d; anything else falls back to 24h.
func (h *Handler) GetTokenPrices(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondBadRequest(c, "invalid token id", "id must be a positive integer")
		return
	}

	token, err := h.store.GetTokenByID(c.Request.Context(), id)
	if err != nil {
		logger.ErrorCtx(c.Request.Context(), err)
		respondInternalError(c)
		return
	}
	if token == nil {
		respondNotFound(c, "token not found")
		return
	}

	priceRange := pricehistory.ParseRange(c.Query("range"))
	points, err := h.aggregator.Series(c.Request.Context(), id, priceRange)
	if err != nil {
		logger.ErrorCtx(c.Request.Context(), err)
		respondInternalError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tokenID": id,
		"range":   string(priceRange),
		"points":  points,
	})
}
