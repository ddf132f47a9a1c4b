package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/valorsim/valorsim/internal/models"
	"github.com/valorsim/valorsim/internal/services"
	"github.com/valorsim/valorsim/pkg/utils"
)

type MapHandler struct {
	maps  *services.MapService
	cache *services.CacheService
}

func NewMapHandler(maps *services.MapService, cache *services.CacheService) *MapHandler {
	return &MapHandler{maps: maps, cache: cache}
}

// ListMaps returns every available layout, standard and custom.
func (h *MapHandler) ListMaps(c *gin.Context) {
	ctx := c.Request.Context()
	cacheKey := services.MapsCacheKey()

	if h.cache != nil {
		var cached []models.MapLayout
		if err := h.cache.Get(ctx, cacheKey, &cached); err == nil {
			utils.SendSuccess(c, cached)
			return
		}
	}

	maps := h.maps.AllMaps()
	if h.cache != nil {
		h.cache.SetWithRetry(ctx, cacheKey, maps, 10*time.Minute, 3)
	}
	utils.SendSuccess(c, maps)
}

// SaveMap stores an uploaded layout and makes it available for
// simulation immediately.
func (h *MapHandler) SaveMap(c *gin.Context) {
	var req services.SaveMapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request body", err.Error())
		return
	}

	layout, err := h.maps.SaveMap(c.Request.Context(), req)
	if err != nil {
		utils.SendValidationError(c, "Failed to save map", err.Error())
		return
	}

	if h.cache != nil {
		h.cache.Delete(c.Request.Context(), services.MapsCacheKey())
	}
	utils.SendSuccess(c, layout)
}

// MapExists reports whether a named map is available.
func (h *MapHandler) MapExists(c *gin.Context) {
	name := c.Param("id")
	utils.SendSuccess(c, gin.H{
		"name":   name,
		"exists": h.maps.Exists(name),
	})
}
