package activity

import "time"

type GPSPoint struct {
	Lat       float64    `json:"lat"`
	Lon       float64    `json:"lon"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

type UploadRequest struct {
	Title       string     `json:"title"`
	OwnerID     int64      `json:"owner_id"`
	Description string     `json:"description,omitempty"`
	Points      []GPSPoint `json:"points"`
}

type Activity struct {
	ID                  int64     `json:"id"`
	Name                string    `json:"name"`
	Description         string    `json:"description,omitempty"`
	OwnerID             int64     `json:"owner_id"`
	DistanceKm          float64   `json:"distance_km"`
	MovingTimeSeconds   int64     `json:"moving_time_seconds"`
	ElevationGainMeters float64   `json:"elevation_gain_meters"`
	RouteWKT            *string   `json:"route,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
}

type Response struct {
	ID                  int64   `json:"id"`
	Name                string  `json:"name"`
	DistanceKm          float64 `json:"distance_km"`
	MovingTimeSeconds   int64   `json:"moving_time_seconds"`
	ElevationGainMeters float64 `json:"elevation_gain_meters"`
}

func (a Activity) response() Response {
	return Response{
		ID:                  a.ID,
		Name:                a.Name,
		DistanceKm:          a.DistanceKm,
		MovingTimeSeconds:   a.MovingTimeSeconds,
		ElevationGainMeters: a.ElevationGainMeters,
	}
}
