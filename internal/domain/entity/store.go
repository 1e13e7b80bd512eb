package entity

import "time"

// Store belongs to exactly one owner; a user may own any number of stores.
type Store struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	OwnerID   int64  `json:"owner_id"`
	CreatedAt time.Time
}

// StoreWithRating is the store listing projection. AvgRating defaults to 0
// when a store has no ratings; this zero-default is deliberate and distinct
// from the owner rollup's null.
type StoreWithRating struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Address   string  `json:"address"`
	AvgRating float64 `json:"rating"`
}
