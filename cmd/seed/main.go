package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/wanderstay/wanderstay/config"
	"github.com/wanderstay/wanderstay/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "demo@wanderstay.local"
	password := "password123"
	name := "Demo Host"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var userID string
	err = db.QueryRow(`
		INSERT INTO users (name, email, password_hash)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`, name, email, hash).Scan(&userID)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=%s password=%s\n", userID, email, password)

	var placeID string
	err = db.QueryRow(`
		INSERT INTO places (owner_id, title, address, description, photos, perks,
			extra_info, check_in, check_out, max_guests, price)
		VALUES ($1, $2, $3, $4, '[]'::jsonb, $5::jsonb, $6, $7, $8, $9, $10)
		RETURNING id
	`, userID,
		"Lakeside Cabin",
		"14 Shoreline Rd",
		"A small cabin right on the water. Quiet, no neighbours.",
		`["wifi","parking","pets"]`,
		"Firewood is behind the shed.",
		"14:00", "11:00", 4, 120,
	).Scan(&placeID)
	if err != nil {
		log.Fatalf("failed to seed place: %v", err)
	}
	fmt.Printf("seeded place: id=%s\n", placeID)
}
