package domain

import "context"

// Region groups cities for regional moderators.
type Region struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// City is a program city. Primary cities are listed first.
// swagger:model City
type City struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	RegionID  *int64 `json:"region_id"`
	IsPrimary bool   `json:"is_primary"`
}

// CityRepository defines storage for cities and regions.
type CityRepository interface {
	List(ctx context.Context) ([]*City, error)
	GetByID(ctx context.Context, id int64) (*City, error)
}
