package activity

import (
	"context"
	"sync"
	"time"

	"github.com/vezisop/velocity-v1-backend/internal/account"
	"github.com/vezisop/velocity-v1-backend/internal/db"

	"github.com/redis/go-redis/v9"
)

type Service struct {
	db          db.Pool
	cache       *redis.Client
	fallbackSec int64
}

func NewService(pool db.Pool, cache *redis.Client, fallbackSec int64) *Service {
	return &Service{db: pool, cache: cache, fallbackSec: fallbackSec}
}

// Upload validates the submitted track, derives distance, route geometry and
// moving time, and persists the activity together with its resolved owner in
// a single transaction. Nothing is written when validation fails.
func (s *Service) Upload(ctx context.Context, req UploadRequest) (Response, error) {
	if err := ValidateTrack(req.Points); err != nil {
		return Response{}, err
	}

	var (
		distanceKm float64
		routeWKT   *string
		movingSec  int64
	)

	// The three metrics read the same immutable track and share no state.
	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		distanceKm = TrackDistanceKm(req.Points)
	}()
	go func() {
		defer wg.Done()
		routeWKT = RouteWKT(req.Points)
	}()
	go func() {
		defer wg.Done()
		movingSec = MovingTimeSeconds(req.Points, time.Now(), s.fallbackSec)
	}()
	wg.Wait()

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return Response{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	ownerID, err := account.Resolve(ctx, tx, req.OwnerID)
	if err != nil {
		return Response{}, err
	}

	act := Activity{
		Name:                req.Title,
		Description:         req.Description,
		OwnerID:             ownerID,
		DistanceKm:          distanceKm,
		MovingTimeSeconds:   movingSec,
		ElevationGainMeters: 0,
		RouteWKT:            routeWKT,
	}

	row := tx.QueryRow(ctx, `
		INSERT INTO activities (name, description, owner_id, distance_km, moving_time_seconds, elevation_gain_meters, route)
		VALUES ($1,$2,$3,$4,$5,$6, ST_GeogFromText($7))
		RETURNING id, created_at
	`, act.Name, act.Description, act.OwnerID, act.DistanceKm, act.MovingTimeSeconds, act.ElevationGainMeters, act.RouteWKT)
	if err := row.Scan(&act.ID, &act.CreatedAt); err != nil {
		return Response{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return Response{}, err
	}

	s.invalidateFeed(ctx)
	return act.response(), nil
}

// Feed returns the latest activities, newest first, capped at 20.
func (s *Service) Feed(ctx context.Context) ([]Response, error) {
	if cached, ok := s.cachedFeed(ctx); ok {
		return cached, nil
	}

	feed, err := s.list(ctx, `
		SELECT id, name, distance_km, moving_time_seconds, elevation_gain_meters
		FROM activities
		ORDER BY created_at DESC
		LIMIT 20
	`)
	if err != nil {
		return nil, err
	}

	s.storeFeed(ctx, feed)
	return feed, nil
}

// ForOwner returns every activity owned by the given account, newest first.
func (s *Service) ForOwner(ctx context.Context, ownerID int64) ([]Response, error) {
	return s.list(ctx, `
		SELECT id, name, distance_km, moving_time_seconds, elevation_gain_meters
		FROM activities
		WHERE owner_id=$1
		ORDER BY created_at DESC
	`, ownerID)
}

func (s *Service) list(ctx context.Context, sql string, args ...any) ([]Response, error) {
	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []Response
	for rows.Next() {
		var r Response
		if err := rows.Scan(&r.ID, &r.Name, &r.DistanceKm, &r.MovingTimeSeconds, &r.ElevationGainMeters); err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, rows.Err()
}
