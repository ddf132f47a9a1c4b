package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/valorsim/valorsim/internal/models"
	"github.com/valorsim/valorsim/internal/simulator"
	"github.com/valorsim/valorsim/pkg/database"
)

// MatchService runs simulations, persists their results and streams
// round progress to websocket subscribers.
type MatchService struct {
	db       *database.DB
	cache    *CacheService
	hub      *WebSocketHub
	sim      *simulator.Simulator
	cacheTTL time.Duration
}

func NewMatchService(db *database.DB, cache *CacheService, hub *WebSocketHub, sim *simulator.Simulator, cacheTTL time.Duration) *MatchService {
	return &MatchService{
		db:       db,
		cache:    cache,
		hub:      hub,
		sim:      sim,
		cacheTTL: cacheTTL,
	}
}

// SimulateRequest carries everything one simulation needs.
type SimulateRequest struct {
	TeamAName      string
	TeamBName      string
	TeamA          []*models.Player
	TeamB          []*models.Player
	MapName        string
	Seed           int64
	AgentOverrides map[string]string
}

// SimulatedMatch pairs the engine output with its persistence
// identity.
type SimulatedMatch struct {
	ID     string              `json:"id"`
	Seed   int64               `json:"seed"`
	Result *models.MatchResult `json:"result"`
}

// Simulate runs one full match. Round results stream to the match
// topic as they complete, so subscribers can follow a simulation that
// is still running.
func (s *MatchService) Simulate(ctx context.Context, req SimulateRequest) (*SimulatedMatch, error) {
	matchID := uuid.NewString()

	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	opts := simulator.Options{
		Seed:           seed,
		AgentOverrides: req.AgentOverrides,
	}
	if s.hub != nil {
		topic := MatchTopic(matchID)
		opts.OnRound = func(round models.RoundResult) {
			if err := s.hub.BroadcastToTopic(topic, "round_completed", round); err != nil {
				logrus.Warnf("Failed to broadcast round %d: %v", round.RoundNumber, err)
			}
		}
	}

	result, err := s.sim.SimulateMatch(req.TeamA, req.TeamB, req.MapName, opts)
	if err != nil {
		return nil, err
	}

	match := &SimulatedMatch{ID: matchID, Seed: seed, Result: result}

	if s.db != nil {
		if err := s.persist(ctx, match, req); err != nil {
			return nil, fmt.Errorf("failed to persist match: %w", err)
		}
	}
	if s.cache != nil {
		if err := s.cache.SetWithRetry(ctx, MatchCacheKey(matchID), match, s.cacheTTL, 3); err != nil {
			logrus.Warnf("Failed to cache match %s: %v", matchID, err)
		}
	}

	if s.hub != nil {
		if err := s.hub.BroadcastToTopic(MatchTopic(matchID), "match_completed", match); err != nil {
			logrus.Warnf("Failed to broadcast match completion: %v", err)
		}
	}

	return match, nil
}

func (s *MatchService) persist(ctx context.Context, match *SimulatedMatch, req SimulateRequest) error {
	roundsData, err := json.Marshal(match.Result.Rounds)
	if err != nil {
		return err
	}
	agentsData, err := json.Marshal(match.Result.PlayerAgents)
	if err != nil {
		return err
	}

	roles := make(map[string]string, len(req.TeamA)+len(req.TeamB))
	for _, p := range append(append([]*models.Player{}, req.TeamA...), req.TeamB...) {
		roles[p.ID] = string(p.PrimaryRole)
	}

	record := &models.MatchHistory{
		ID:           match.ID,
		MatchDate:    time.Now().UTC(),
		MapName:      match.Result.Map,
		Duration:     match.Result.Duration,
		TeamAName:    req.TeamAName,
		TeamBName:    req.TeamBName,
		TeamAScore:   match.Result.Score.TeamA,
		TeamBScore:   match.Result.Score.TeamB,
		Winner:       match.Result.Winner(),
		MVPID:        match.Result.MVP,
		Seed:         match.Seed,
		RoundsData:   datatypes.JSON(roundsData),
		PlayerAgents: datatypes.JSON(agentsData),
	}

	for _, log := range match.Result.EconomyLogs {
		record.EconomyLogs = append(record.EconomyLogs, models.EconomyLogRecord{
			ID:           uuid.NewString(),
			MatchID:      match.ID,
			RoundNumber:  log.RoundNumber,
			TeamAStart:   log.TeamAStart,
			TeamBStart:   log.TeamBStart,
			TeamAEnd:     log.TeamAEnd,
			TeamBEnd:     log.TeamBEnd,
			TeamASpend:   log.TeamASpend,
			TeamBSpend:   log.TeamBSpend,
			TeamAReward:  log.TeamAReward,
			TeamBReward:  log.TeamBReward,
			Winner:       log.Winner,
			SpikePlanted: log.SpikePlanted,
			Notes:        log.NotesText(),
		})
	}

	teamName := func(team string) string {
		if team == models.TeamA {
			return req.TeamAName
		}
		return req.TeamBName
	}
	for _, perf := range match.Result.Performances {
		record.Performances = append(record.Performances, models.MatchPerformanceRecord{
			ID:          uuid.NewString(),
			MatchID:     match.ID,
			PlayerID:    perf.PlayerID,
			TeamName:    teamName(perf.Team),
			PlayerName:  perf.PlayerName,
			PlayerRole:  roles[perf.PlayerID],
			Kills:       perf.Kills,
			Deaths:      perf.Deaths,
			Assists:     perf.Assists,
			FirstBloods: perf.FirstBloods,
			Clutches:    perf.Clutches,
			Plants:      perf.Plants,
			Defuses:     perf.Defuses,
			MoneySpent:  perf.MoneySpent,
		})
	}

	return s.db.WithContext(ctx).Create(record).Error
}

// ListMatches returns recent matches, newest first, without the heavy
// round payloads.
func (s *MatchService) ListMatches(ctx context.Context, limit, offset int) ([]models.MatchHistory, int64, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&models.MatchHistory{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var matches []models.MatchHistory
	err := s.db.WithContext(ctx).
		Omit("rounds_data").
		Order("match_date DESC").
		Limit(limit).
		Offset(offset).
		Find(&matches).Error
	if err != nil {
		return nil, 0, err
	}
	return matches, total, nil
}

// GetMatch loads one match with its economy logs and performances.
func (s *MatchService) GetMatch(ctx context.Context, id string) (*models.MatchHistory, error) {
	var match models.MatchHistory
	err := s.db.WithContext(ctx).
		Preload("EconomyLogs", func(db *gorm.DB) *gorm.DB {
			return db.Order("round_number ASC")
		}).
		Preload("Performances").
		First(&match, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &match, nil
}
