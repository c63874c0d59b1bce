package main

import (
	"context"
	"log"
	"time"

	"github.com/sporthub/sporthub-api/pkg/config"
	"github.com/sporthub/sporthub-api/pkg/database"
)

// Schema statements are idempotent so the command can run on every deploy.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		email VARCHAR(255) UNIQUE NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		name VARCHAR(255) NOT NULL,
		phone VARCHAR(20),
		role VARCHAR(20) NOT NULL CHECK (role IN ('admin', 'organizer', 'participant', 'team_manager')) DEFAULT 'participant',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS events (
		id UUID PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		description TEXT,
		category VARCHAR(100),
		venue VARCHAR(255),
		event_date TIMESTAMPTZ NOT NULL,
		registration_deadline TIMESTAMPTZ NOT NULL,
		fee DECIMAL(10, 2) NOT NULL DEFAULT 0,
		max_participants INTEGER NOT NULL DEFAULT 0,
		organizer_id UUID NOT NULL REFERENCES users(id),
		status VARCHAR(20) NOT NULL CHECK (status IN ('upcoming', 'ongoing', 'completed', 'cancelled')) DEFAULT 'upcoming',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		deleted_at TIMESTAMPTZ
	)`,

	`CREATE TABLE IF NOT EXISTS teams (
		id UUID PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		sport VARCHAR(100),
		event_id UUID REFERENCES events(id),
		created_by UUID NOT NULL REFERENCES users(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS team_members (
		team_id UUID NOT NULL REFERENCES teams(id),
		user_id UUID NOT NULL REFERENCES users(id),
		joined_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (team_id, user_id)
	)`,

	`CREATE TABLE IF NOT EXISTS registrations (
		id UUID PRIMARY KEY,
		event_id UUID NOT NULL REFERENCES events(id),
		user_id UUID REFERENCES users(id),
		team_id UUID REFERENCES teams(id),
		status VARCHAR(20) NOT NULL CHECK (status IN ('pending', 'confirmed', 'cancelled')) DEFAULT 'pending',
		registration_date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CHECK ((user_id IS NULL) <> (team_id IS NULL))
	)`,

	`CREATE TABLE IF NOT EXISTS payments (
		id UUID PRIMARY KEY,
		registration_id UUID NOT NULL REFERENCES registrations(id),
		amount DECIMAL(10, 2) NOT NULL,
		method VARCHAR(50),
		status VARCHAR(20) NOT NULL CHECK (status IN ('pending', 'completed', 'failed', 'refunded')) DEFAULT 'pending',
		transaction_id VARCHAR(100),
		payment_date TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS feedback (
		id UUID PRIMARY KEY,
		event_id UUID NOT NULL REFERENCES events(id),
		user_id UUID NOT NULL REFERENCES users(id),
		rating INTEGER NOT NULL CHECK (rating >= 1 AND rating <= 5),
		comment TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS results (
		id UUID PRIMARY KEY,
		event_id UUID NOT NULL REFERENCES events(id),
		user_id UUID REFERENCES users(id),
		team_id UUID REFERENCES teams(id),
		position INTEGER NOT NULL,
		score VARCHAR(100),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CHECK ((user_id IS NULL) <> (team_id IS NULL))
	)`,

	`CREATE INDEX IF NOT EXISTS idx_events_date ON events(event_date)`,
	`CREATE INDEX IF NOT EXISTS idx_events_status ON events(status)`,
	`CREATE INDEX IF NOT EXISTS idx_events_organizer ON events(organizer_id)`,
	`CREATE INDEX IF NOT EXISTS idx_registrations_event ON registrations(event_id)`,
	`CREATE INDEX IF NOT EXISTS idx_registrations_user ON registrations(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_registrations_team ON registrations(team_id)`,
	`CREATE INDEX IF NOT EXISTS idx_team_members_user ON team_members(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_payments_registration ON payments(registration_id)`,
	`CREATE INDEX IF NOT EXISTS idx_feedback_event ON feedback(event_id)`,
	`CREATE INDEX IF NOT EXISTS idx_results_event ON results(event_id)`,
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	db, err := database.NewPostgres(ctx, &database.PostgresConfig{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.DBName,
		SSLMode:         cfg.Database.SSLMode,
		MaxConns:        2,
		MinConns:        1,
		MaxConnLifetime: time.Minute,
		MaxConnIdleTime: time.Minute,
		ConnectTimeout:  10 * time.Second,
		MaxRetries:      3,
		RetryInterval:   2 * time.Second,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	for _, stmt := range schema {
		if err := db.Exec(ctx, stmt); err != nil {
			log.Fatalf("Failed to apply schema: %v", err)
		}
	}

	log.Println("Database initialized successfully")
}
