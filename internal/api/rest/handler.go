// Package rest implements the HTTP read API over ingested token data.
package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/superchain/token-explorer/internal/pricehistory"
	"github.com/superchain/token-explorer/internal/store"
)

// Handler serves the token explorer REST endpoints.
type Handler struct {
	store      store.Store
	aggregator *pricehistory.Aggregator
}

// NewHandler creates a REST handler over the given store.
func NewHandler(s store.Store, aggregator *pricehistory.Aggregator) *Handler {
	return &Handler{
		store:      s,
		aggregator: aggregator,
	}
}

// Register mounts the public and authenticated routes. authenticated
// must carry the API key middleware.
func (h *Handler) Register(public, authenticated *gin.RouterGroup) {
	public.GET("/chains", h.ListChains)
	public.GET("/groups", h.ListGroups)
	public.GET("/tokens", h.ListTokens)
	// Not under /tokens/:id because gin rejects static siblings of a
	// route parameter
	public.GET("/trending", h.TrendingTokens)
	public.GET("/tokens/:id", h.GetToken)
	public.GET("/tokens/:id/prices", h.GetTokenPrices)

	authenticated.POST("/tokens/track", h.TrackToken)
}
