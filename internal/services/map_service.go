package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/valorsim/valorsim/internal/models"
	"github.com/valorsim/valorsim/internal/simulator"
	"github.com/valorsim/valorsim/pkg/database"
)

const defaultMapDimension = 1024

// MapService manages the map catalog and its persisted custom maps.
type MapService struct {
	db      *database.DB
	catalog *simulator.MapCatalog
}

func NewMapService(db *database.DB, catalog *simulator.MapCatalog) *MapService {
	return &MapService{db: db, catalog: catalog}
}

// CalloutInput is one region of an uploaded map, outlined as a pixel
// polygon. The service reduces it to a centroid in normalized space.
type CalloutInput struct {
	Name        string       `json:"name" binding:"required"`
	AreaType    string       `json:"area_type" binding:"required"`
	Points      [][2]float64 `json:"points" binding:"required"`
	Description string       `json:"description"`
}

// SaveMapRequest uploads or replaces a map layout.
type SaveMapRequest struct {
	Name     string         `json:"name" binding:"required"`
	ImageURL string         `json:"image_url"`
	Width    int            `json:"width"`
	Height   int            `json:"height"`
	Callouts []CalloutInput `json:"callouts" binding:"required"`
}

// LoadPersisted adds every stored custom map back into the catalog.
// Called once at startup, after the standard maps are in place.
func (s *MapService) LoadPersisted(ctx context.Context) error {
	var records []models.MapRecord
	if err := s.db.WithContext(ctx).Find(&records).Error; err != nil {
		return fmt.Errorf("failed to load persisted maps: %w", err)
	}
	for _, rec := range records {
		var layout models.MapLayout
		if err := json.Unmarshal(rec.Layout, &layout); err != nil {
			logrus.Warnf("Skipping unreadable map record %s: %v", rec.Name, err)
			continue
		}
		s.catalog.Add(layout)
	}
	if len(records) > 0 {
		logrus.Infof("Loaded %d persisted maps", len(records))
	}
	return nil
}

// SaveMap converts an uploaded layout into catalog form and persists
// it. Saving an existing name replaces the stored layout.
func (s *MapService) SaveMap(ctx context.Context, req SaveMapRequest) (*models.MapLayout, error) {
	width := req.Width
	if width == 0 {
		width = defaultMapDimension
	}
	height := req.Height
	if height == 0 {
		height = defaultMapDimension
	}

	layout := models.MapLayout{
		ID:       simulator.MapID(req.Name),
		Name:     req.Name,
		ImageURL: req.ImageURL,
		Width:    width,
		Height:   height,
		Callouts: make(map[string]models.MapCallout, len(req.Callouts)),
	}
	fw, fh := float64(width), float64(height)

	for _, in := range req.Callouts {
		if len(in.Points) == 0 {
			return nil, fmt.Errorf("callout %q has no points", in.Name)
		}
		center := centroid(in.Points)
		minX, minY, maxX, maxY := bounds(in.Points)
		callout := models.MapCallout{
			Name:        in.Name,
			AreaType:    models.MapArea(in.AreaType),
			Position:    models.Position{X: center[0] / fw, Y: center[1] / fh},
			Size:        models.Size{W: (maxX - minX) / fw, H: (maxY - minY) / fh},
			Description: in.Description,
		}
		layout.Callouts[simulator.MapID(in.Name)] = callout

		switch callout.AreaType {
		case models.AreaASite:
			layout.Sites = append(layout.Sites, "A")
		case models.AreaBSite:
			layout.Sites = append(layout.Sites, "B")
		case models.AreaCSite:
			layout.Sites = append(layout.Sites, "C")
		case models.AreaAttackerSpawn:
			layout.AttackerSpawn = callout.Position
		case models.AreaDefenderSpawn:
			layout.DefenderSpawn = callout.Position
		}
	}
	if len(layout.Sites) == 0 {
		return nil, errors.New("map needs at least one bomb site callout")
	}

	data, err := json.Marshal(layout)
	if err != nil {
		return nil, err
	}

	var existing models.MapRecord
	err = s.db.WithContext(ctx).First(&existing, "name = ?", req.Name).Error
	switch {
	case err == nil:
		existing.Layout = datatypes.JSON(data)
		if err := s.db.WithContext(ctx).Save(&existing).Error; err != nil {
			return nil, fmt.Errorf("failed to update map: %w", err)
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		record := models.MapRecord{
			ID:     uuid.NewString(),
			Name:   req.Name,
			Layout: datatypes.JSON(data),
		}
		if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
			return nil, fmt.Errorf("failed to save map: %w", err)
		}
	default:
		return nil, err
	}

	s.catalog.Add(layout)
	return &layout, nil
}

// Exists reports whether a map is available, standard or custom.
func (s *MapService) Exists(name string) bool {
	_, ok := s.catalog.Lookup(name)
	return ok
}

// AllMaps lists every available layout.
func (s *MapService) AllMaps() []models.MapLayout {
	return s.catalog.All()
}

func centroid(points [][2]float64) [2]float64 {
	var sx, sy float64
	for _, p := range points {
		sx += p[0]
		sy += p[1]
	}
	n := float64(len(points))
	return [2]float64{sx / n, sy / n}
}

func bounds(points [][2]float64) (minX, minY, maxX, maxY float64) {
	minX, minY = points[0][0], points[0][1]
	maxX, maxY = minX, minY
	for _, p := range points[1:] {
		minX = min(minX, p[0])
		maxX = max(maxX, p[0])
		minY = min(minY, p[1])
		maxY = max(maxY, p[1])
	}
	return minX, minY, maxX, maxY
}
