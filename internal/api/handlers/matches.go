package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/valorsim/valorsim/internal/models"
	"github.com/valorsim/valorsim/internal/playergen"
	"github.com/valorsim/valorsim/internal/services"
	"github.com/valorsim/valorsim/pkg/utils"
)

type MatchHandler struct {
	matches  *services.MatchService
	cache    *services.CacheService
	maxBatch int
}

func NewMatchHandler(matches *services.MatchService, cache *services.CacheService, maxBatch int) *MatchHandler {
	return &MatchHandler{
		matches:  matches,
		cache:    cache,
		maxBatch: maxBatch,
	}
}

type teamPayload struct {
	Name    string           `json:"name" binding:"required"`
	Players []*models.Player `json:"players" binding:"required"`
}

type simulateRequest struct {
	TeamA          teamPayload       `json:"team_a" binding:"required"`
	TeamB          teamPayload       `json:"team_b" binding:"required"`
	Map            string            `json:"map" binding:"required"`
	Seed           int64             `json:"seed"`
	Count          int               `json:"count"`
	AgentOverrides map[string]string `json:"agent_overrides"`
}

// SimulateMatch runs one or more matches between the submitted
// rosters. With count > 1, each run gets a seed offset so the series
// is still reproducible from the base seed.
func (h *MatchHandler) SimulateMatch(c *gin.Context) {
	var req simulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request body", err.Error())
		return
	}

	for _, p := range append(append([]*models.Player{}, req.TeamA.Players...), req.TeamB.Players...) {
		if err := playergen.ValidatePlayer(p); err != nil {
			utils.SendValidationError(c, "Invalid player "+p.ID, err.Error())
			return
		}
	}

	count := req.Count
	if count <= 0 {
		count = 1
	}
	if count > h.maxBatch {
		utils.SendValidationError(c, "Batch too large", "count exceeds the configured maximum")
		return
	}

	ctx := c.Request.Context()
	results := make([]*services.SimulatedMatch, 0, count)
	for i := 0; i < count; i++ {
		seed := req.Seed
		if seed != 0 {
			seed += int64(i)
		}
		match, err := h.matches.Simulate(ctx, services.SimulateRequest{
			TeamAName:      req.TeamA.Name,
			TeamBName:      req.TeamB.Name,
			TeamA:          req.TeamA.Players,
			TeamB:          req.TeamB.Players,
			MapName:        req.Map,
			Seed:           seed,
			AgentOverrides: req.AgentOverrides,
		})
		if err != nil {
			utils.SendInternalError(c, "Simulation failed: "+err.Error())
			return
		}
		results = append(results, match)
	}

	if count == 1 {
		utils.SendSuccess(c, results[0])
		return
	}
	utils.SendSuccess(c, results)
}

// ListMatches returns recent match history, paginated.
func (h *MatchHandler) ListMatches(c *gin.Context) {
	limit := queryInt(c, "limit", 20)
	offset := queryInt(c, "offset", 0)
	if limit < 1 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	matches, total, err := h.matches.ListMatches(c.Request.Context(), limit, offset)
	if err != nil {
		utils.SendInternalError(c, "Failed to fetch matches")
		return
	}

	totalPages := int(total) / limit
	if int(total)%limit != 0 {
		totalPages++
	}
	utils.SendSuccessWithMeta(c, matches, &utils.Meta{
		Page:       offset/limit + 1,
		PerPage:    limit,
		Total:      total,
		TotalPages: totalPages,
	})
}

// GetMatch returns one match with its economy logs and performances.
func (h *MatchHandler) GetMatch(c *gin.Context) {
	id := c.Param("id")

	ctx := c.Request.Context()
	cacheKey := services.MatchCacheKey(id)
	if h.cache != nil {
		var cached services.SimulatedMatch
		if err := h.cache.Get(ctx, cacheKey, &cached); err == nil {
			utils.SendSuccess(c, cached)
			return
		}
	}

	match, err := h.matches.GetMatch(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.SendNotFound(c, "Match not found")
			return
		}
		utils.SendInternalError(c, "Failed to fetch match")
		return
	}
	utils.SendSuccess(c, match)
}
