package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/superchain/token-explorer/internal/domain"
	"github.com/superchain/token-explorer/internal/logger"
	"github.com/superchain/token-explorer/internal/store"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

// ListTokens returns tokens filtered by chain slug, name or symbol
// search, and sort order, with the total match count for paging.
func (h *Handler) ListTokens(c *gin.Context) {
	offset, limit, ok := paginationParams(c)
	if !ok {
		return
	}

	query := store.TokenQuery{
		Search: c.Query("search"),
		Sort:   c.Query("sort"),
		Offset: offset,
		Limit:  limit,
	}
	if slug := c.Query("chain"); slug != "" {
		chain, err := h.store.GetChainBySlug(c.Request.Context(), slug)
		if err != nil {
			logger.ErrorCtx(c.Request.Context(), err)
			respondInternalError(c)
			return
		}
		if chain == nil {
			respondNotFound(c, "chain not found")
			return
		}
		query.ChainID = &chain.ID
	}

	tokens, total, err := h.store.ListTokens(c.Request.Context(), query)
	if err != nil {
		logger.ErrorCtx(c.Request.Context(), err)
		respondInternalError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tokens": tokens, "total": total})
}

// TrendingTokens returns tokens ordered by 24h price change.
func (h *Handler) TrendingTokens(c *gin.Context) {
	limit := defaultPageSize
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > maxPageSize {
			respondBadRequest(c, "invalid limit", "limit must be between 1 and 200")
			return
		}
		limit = parsed
	}

	tokens, err := h.store.TrendingTokens(c.Request.Context(), limit)
	if err != nil {
		logger.ErrorCtx(c.Request.Context(), err)
		respondInternalError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tokens": tokens})
}

// GetToken returns one token by its ID.
func (h *Handler) GetToken(c *gin.Context) {
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
	c.JSON(http.StatusOK, token)
}

type trackTokenRequest struct {
	Chain   string `json:"chain" binding:"required"`
	Address string `json:"address" binding:"required"`
	Note    string `json:"note"`
}

// TrackToken registers an address for ingestion on a chain.
func (h *Handler) TrackToken(c *gin.Context) {
	var req trackTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body", err.Error())
		return
	}
	if !domain.IsHexAddress(req.Address) {
		respondBadRequest(c, "invalid address", "address must be a hex contract address")
		return
	}

	chain, err := h.store.GetChainBySlug(c.Request.Context(), req.Chain)
	if err != nil {
		logger.ErrorCtx(c.Request.Context(), err)
		respondInternalError(c)
		return
	}
	if chain == nil {
		respondNotFound(c, "chain not found")
		return
	}

	tracked, err := h.store.AddTrackedToken(
		c.Request.Context(),
		chain.ID,
		domain.NormalizeAddress(req.Address),
		req.Note,
	)
	if err != nil {
		logger.ErrorCtx(c.Request.Context(), err)
		respondInternalError(c)
		return
	}

	logger.InfoCtx(c.Request.Context(), "token registered for tracking",
		zap.String("chain", req.Chain),
		zap.String("address", tracked.Address))
	c.JSON(http.StatusCreated, tracked)
}

func paginationParams(c *gin.Context) (offset, limit int, ok bool) {
	offset, limit = 0, defaultPageSize
	if raw := c.Query("offset"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			respondBadRequest(c, "invalid offset", "offset must be a non-negative integer")
			return 0, 0, false
		}
		offset = parsed
	}
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > maxPageSize {
			respondBadRequest(c, "invalid limit", "limit must be between 1 and 200")
			return 0, 0, false
		}
		limit = parsed
	}
	return offset, limit, true
}
