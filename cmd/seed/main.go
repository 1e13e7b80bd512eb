package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/ratehub/store-rating-api/config"
	"github.com/ratehub/store-rating-api/pkg/helpers"
)

// Seeds an admin, a store owner with one store, and a plain user so every
// dashboard has something to show after a fresh migration.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	adminID := seedUser(db, "Platform Administrator Account", "admin@example.com", "Admin#Pass1", "1 Admin Plaza", "admin")
	ownerID := seedUser(db, "Demo Store Owner Long Name", "owner@example.com", "Owner#Pass1", "2 Owner Street", "store_owner")
	userID := seedUser(db, "Demo Customer With Long Name", "user@example.com", "User#Pass12", "3 Customer Lane", "user")
	fmt.Printf("seeded users: admin=%d owner=%d user=%d\n", adminID, ownerID, userID)

	var storeID int64
	err = db.QueryRow(`
		INSERT INTO stores (name, email, address, owner_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, "Demo General Store Downtown", "store@example.com", "4 Market Square", ownerID).Scan(&storeID)
	if err != nil {
		log.Fatalf("failed to seed store: %v", err)
	}
	fmt.Printf("seeded store: id=%d owner=%d\n", storeID, ownerID)

	if _, err := db.Exec(`
		INSERT INTO ratings (user_id, store_id, rating)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, store_id) DO UPDATE SET rating = EXCLUDED.rating
	`, userID, storeID, 4); err != nil {
		log.Fatalf("failed to seed rating: %v", err)
	}
	fmt.Println("seeded one rating")
}

func seedUser(db *sql.DB, name, email, password, address, role string) int64 {
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}
	var id int64
	err = db.QueryRow(`
		INSERT INTO users (name, email, password_hash, address, role)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`, name, email, hash, address, role).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed user %s: %v", email, err)
	}
	return id
}
