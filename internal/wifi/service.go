package wifi

import (
	"context"
	"fmt"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Service exposes the read operations over the catalogue. Each call runs on
// its own short-lived session from the injected pool, so queries never
// block one another.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// List returns up to limit points starting at offset, in storage order. An
// offset past the end yields an empty slice, not an error.
func (s *Service) List(ctx context.Context, limit, offset int) ([]WifiPoint, error) {
	if err := checkPage(limit, offset); err != nil {
		return nil, err
	}
	var points []WifiPoint
	if err := s.db.WithContext(ctx).Limit(limit).Offset(offset).Find(&points).Error; err != nil {
		return nil, fmt.Errorf("list points: %w", err)
	}
	return points, nil
}

// ByIdentifier returns every point whose dataset identifier contains
// fragment, case-insensitively.
func (s *Service) ByIdentifier(ctx context.Context, fragment string) ([]WifiPoint, error) {
	if fragment == "" {
		return nil, &ValidationError{Param: "id", Reason: "must not be empty"}
	}
	var points []WifiPoint
	err := s.db.WithContext(ctx).
		Where("id ILIKE ?", "%"+fragment+"%").
		Find(&points).Error
	if err != nil {
		return nil, fmt.Errorf("points by identifier: %w", err)
	}
	return points, nil
}

// ByNeighborhood returns points whose colonia contains fragment. Matching
// runs against the folded search key, so case and accents are ignored.
func (s *Service) ByNeighborhood(ctx context.Context, fragment string, limit, offset int) ([]WifiPoint, error) {
	if fragment == "" {
		return nil, &ValidationError{Param: "neighborhood", Reason: "must not be empty"}
	}
	if err := checkPage(limit, offset); err != nil {
		return nil, err
	}
	var points []WifiPoint
	err := s.db.WithContext(ctx).
		Where("colonia_search LIKE ?", "%"+FoldKey(fragment)+"%").
		Limit(limit).Offset(offset).
		Find(&points).Error
	if err != nil {
		return nil, fmt.Errorf("points by neighborhood: %w", err)
	}
	return points, nil
}

// ByBoroughs returns every point installed in any of the named alcaldías
// (exact match).
func (s *Service) ByBoroughs(ctx context.Context, boroughs []string) ([]WifiPoint, error) {
	if len(boroughs) == 0 {
		return nil, &ValidationError{Param: "boroughs", Reason: "must name at least one borough"}
	}
	var points []WifiPoint
	err := s.db.WithContext(ctx).
		Raw(`SELECT * FROM wifi_points WHERE alcaldia = ANY(?)`, pq.Array(boroughs)).
		Scan(&points).Error
	if err != nil {
		return nil, fmt.Errorf("points by boroughs: %w", err)
	}
	return points, nil
}

// Nearest returns up to limit points ordered by great-circle distance from
// (lat, lon), nearest first. Out-of-range coordinates are a caller error,
// never clamped. limit zero returns an empty slice without error.
func (s *Service) Nearest(ctx context.Context, lat, lon float64, limit int) ([]WifiPoint, error) {
	if lat < -90 || lat > 90 {
		return nil, &ValidationError{Param: "lat", Reason: "must be within [-90, 90]"}
	}
	if lon < -180 || lon > 180 {
		return nil, &ValidationError{Param: "lon", Reason: "must be within [-180, 180]"}
	}
	if limit < 0 {
		return nil, &ValidationError{Param: "limit", Reason: "must be >= 0"}
	}
	var points []WifiPoint
	if err := s.db.WithContext(ctx).Find(&points).Error; err != nil {
		return nil, fmt.Errorf("load points for ranking: %w", err)
	}
	return NearestPoints(points, lat, lon, limit), nil
}

// BoroughCount is one row of the per-alcaldía breakdown.
type BoroughCount struct {
	Borough string `json:"borough" gorm:"column:alcaldia"`
	Points  int64  `json:"points" gorm:"column:points"`
}

// Stats summarizes catalogue coverage.
type Stats struct {
	TotalPoints     int64          `json:"total_points"`
	WithCoordinates int64          `json:"with_coordinates"`
	ByBorough       []BoroughCount `json:"by_borough"`
}

// Stats reports row totals and the per-borough breakdown, largest first.
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	var out Stats
	d := s.db.WithContext(ctx)

	if err := d.Model(&WifiPoint{}).Count(&out.TotalPoints).Error; err != nil {
		return nil, fmt.Errorf("count points: %w", err)
	}
	err := d.Model(&WifiPoint{}).
		Where("latitud IS NOT NULL AND longitud IS NOT NULL").
		Count(&out.WithCoordinates).Error
	if err != nil {
		return nil, fmt.Errorf("count points with coordinates: %w", err)
	}
	err = d.Raw(`
		SELECT COALESCE(alcaldia, '') AS alcaldia, COUNT(*) AS points
		FROM wifi_points
		GROUP BY 1
		ORDER BY points DESC, alcaldia ASC
	`).Scan(&out.ByBorough).Error
	if err != nil {
		return nil, fmt.Errorf("count points by borough: %w", err)
	}
	return &out, nil
}

func checkPage(limit, offset int) error {
	if limit < 0 {
		return &ValidationError{Param: "limit", Reason: "must be >= 0"}
	}
	if offset < 0 {
		return &ValidationError{Param: "offset", Reason: "must be >= 0"}
	}
	return nil
}
