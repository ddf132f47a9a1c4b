package handlers

import (
	"math/rand"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/valorsim/valorsim/internal/models"
	"github.com/valorsim/valorsim/internal/playergen"
	"github.com/valorsim/valorsim/pkg/utils"
)

type PlayerHandler struct {
	maxRosterSize int
}

func NewPlayerHandler(maxRosterSize int) *PlayerHandler {
	return &PlayerHandler{maxRosterSize: maxRosterSize}
}

type generatePlayersRequest struct {
	Count     int         `json:"count"`
	Region    string      `json:"region"`
	Role      models.Role `json:"role"`
	MinRating float64     `json:"min_rating"`
	MaxRating float64     `json:"max_rating"`
	MaxAge    int         `json:"max_age"`
	Seed      int64       `json:"seed"`
}

// GeneratePlayers builds one or more synthetic players within the
// requested constraints.
func (h *PlayerHandler) GeneratePlayers(c *gin.Context) {
	var req generatePlayersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request body", err.Error())
		return
	}

	count := req.Count
	if count <= 0 {
		count = 1
	}
	if count > 100 {
		utils.SendValidationError(c, "Too many players requested", "count must be at most 100")
		return
	}

	gen := playergen.NewGenerator(newRand(req.Seed))
	opts := playergen.Options{
		Region:    req.Region,
		Role:      req.Role,
		MinRating: req.MinRating,
		MaxRating: req.MaxRating,
		MaxAge:    req.MaxAge,
	}

	players := make([]*models.Player, 0, count)
	for i := 0; i < count; i++ {
		p, err := gen.GeneratePlayer(opts)
		if err != nil {
			utils.SendValidationError(c, "Invalid generation options", err.Error())
			return
		}
		players = append(players, p)
	}
	utils.SendSuccess(c, players)
}

type generateTeamRequest struct {
	Size      int     `json:"size"`
	Region    string  `json:"region"`
	MinRating float64 `json:"min_rating"`
	MaxRating float64 `json:"max_rating"`
	Seed      int64   `json:"seed"`
}

// GenerateTeam builds a roster with its core roles covered.
func (h *PlayerHandler) GenerateTeam(c *gin.Context) {
	var req generateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request body", err.Error())
		return
	}

	size := req.Size
	if size == 0 {
		size = 5
	}
	if size > h.maxRosterSize {
		utils.SendValidationError(c, "Roster too large", "size exceeds the configured maximum")
		return
	}

	gen := playergen.NewGenerator(newRand(req.Seed))
	roster, err := gen.GenerateRoster(size, playergen.Options{
		Region:    req.Region,
		MinRating: req.MinRating,
		MaxRating: req.MaxRating,
	})
	if err != nil {
		utils.SendValidationError(c, "Invalid generation options", err.Error())
		return
	}
	utils.SendSuccess(c, roster)
}

func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
