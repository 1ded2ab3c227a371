package activity

import (
	"math"
	"time"

	"github.com/vezisop/velocity-v1-backend/internal/shared/geo"
)

// Point count above which a zero moving time is replaced by the configured
// fallback duration.
const fallbackPointThreshold = 10

// ValidateTrack checks cardinality, coordinate bounds and timestamp order.
// The track itself is returned unchanged; validation never reorders points.
func ValidateTrack(points []GPSPoint) error {
	if len(points) == 0 {
		return ErrEmptyTrack
	}
	if len(points) < 2 {
		return ErrInsufficientPoints
	}
	for _, p := range points {
		if math.Abs(p.Lat) > 90 || math.Abs(p.Lon) > 180 {
			return ErrInvalidCoordinate
		}
	}
	first := points[0].Timestamp
	last := points[len(points)-1].Timestamp
	if first != nil && last != nil && last.Before(*first) {
		return ErrNonMonotonicTimestamps
	}
	return nil
}

// TrackDistanceKm sums the haversine distance over consecutive point pairs,
// rounded to two decimals.
func TrackDistanceKm(points []GPSPoint) float64 {
	var total float64
	for i := 0; i < len(points)-1; i++ {
		total += geo.HaversineKm(points[i].Lat, points[i].Lon, points[i+1].Lat, points[i+1].Lon)
	}
	return math.Round(total*100) / 100
}

// RouteWKT encodes the track as a WKT LINESTRING in lon-lat order, or nil
// when there are fewer than two points.
func RouteWKT(points []GPSPoint) *string {
	if len(points) < 2 {
		return nil
	}
	coords := make([][2]float64, len(points))
	for i, p := range points {
		coords[i] = [2]float64{p.Lon, p.Lat}
	}
	wkt := geo.LineStringWKT(coords)
	return &wkt
}

// MovingTimeSeconds derives elapsed time from the first and last timestamps.
// A missing last timestamp is substituted with now; a missing first timestamp
// yields zero. When the result is zero and the track has more than ten
// points, fallbackSec is substituted. The substitution is a deliberate
// heuristic carried over from the original behavior, not an error path.
func MovingTimeSeconds(points []GPSPoint, now time.Time, fallbackSec int64) int64 {
	var secs int64
	if first := points[0].Timestamp; first != nil {
		end := now
		if last := points[len(points)-1].Timestamp; last != nil {
			end = *last
		}
		secs = int64(end.Sub(*first) / time.Second)
		if secs < 0 {
			secs = 0
		}
	}
	if secs == 0 && len(points) > fallbackPointThreshold {
		secs = fallbackSec
	}
	return secs
}
