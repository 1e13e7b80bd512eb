package entity

import "time"

// Rating is keyed by the (UserID, StoreID) pair; a resubmission overwrites
// the value in place rather than creating a second row.
type Rating struct {
	ID        int64
	UserID    int64
	StoreID   int64
	Rating    int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserRating is one entry of a user's own rating history, joined with the
// rated store's identity.
type UserRating struct {
	StoreID      int64  `json:"store_id"`
	StoreName    string `json:"store_name"`
	StoreAddress string `json:"address"`
	Rating       int    `json:"rating"`
}

// OwnerStoreRollup is one row per owned store. AvgRating is nil for a store
// with no ratings; the store still appears with TotalRatings == 0.
type OwnerStoreRollup struct {
	StoreName    string   `json:"name"`
	AvgRating    *float64 `json:"avg_rating"`
	TotalRatings int64    `json:"total_ratings"`
}

// StoreRater identifies a single rating against an owned store together
// with the rater, one row per rating.
type StoreRater struct {
	UserName  string `json:"user_name"`
	UserEmail string `json:"user_email"`
	StoreName string `json:"store_name"`
	Rating    int    `json:"rating"`
}
