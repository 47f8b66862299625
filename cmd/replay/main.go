package main

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"log/slog"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/nats-io/nats.go"

	"github.com/aichef/ai-chef/config"
	"github.com/aichef/ai-chef/models"
)

// Republishes the chef service's local generation history to nats so the
// recorder can backfill the Postgres log.
func main() {
	cfg := config.LoadConfig()

	db, err := sql.Open("sqlite3", cfg.History.Path)
	if err != nil {
		log.Fatal("failed to open history db:", err)
	}
	defer db.Close()

	nc, err := nats.Connect(cfg.Nats.ConnStr())
	if err != nil {
		log.Fatal("failed to connect to nats:", err)
	}
	defer nc.Close()

	js, err := nc.JetStream()
	if err != nil {
		log.Fatal("failed to get jetstream context:", err)
	}

	_, err = js.AddStream(&nats.StreamConfig{
		Name:      cfg.Nats.Stream,
		Subjects:  []string{cfg.Nats.GenerationsSubject},
		Storage:   nats.FileStorage,
		Retention: nats.LimitsPolicy,
		MaxAge:    time.Hour * 24 * 7,
	})
	if err != nil && !errors.Is(err, nats.ErrStreamNameAlreadyInUse) {
		log.Fatal("failed to create stream:", err)
	}

	rows, err := db.Query(
		`SELECT model, cuisine, dietary_preference, allergy, ingredients, wine_preference, prompt, response, created_at
		 FROM generations ORDER BY id`)
	if err != nil {
		log.Fatal("failed to query history:", err)
	}
	defer rows.Close()

	published := 0
	for rows.Next() {
		var event models.GenerationEvent
		var ingredients string

		if err := rows.Scan(
			&event.Model,
			&event.Cuisine,
			&event.DietaryPreference,
			&event.Allergy,
			&ingredients,
			&event.WinePreference,
			&event.Prompt,
			&event.Response,
			&event.CreatedAt,
		); err != nil {
			log.Fatal("failed to scan generation:", err)
		}

		if err := json.Unmarshal([]byte(ingredients), &event.Ingredients); err != nil {
			slog.Error("failed to unmarshal ingredients", "err", err)
			continue
		}

		data, err := json.Marshal(&event)
		if err != nil {
			slog.Error("failed to marshal event", "err", err)
			continue
		}

		if _, err := js.Publish(cfg.Nats.GenerationsSubject, data); err != nil {
			slog.Error("failed to publish generation", "err", err)
			continue
		}

		published++
	}
	if err := rows.Err(); err != nil {
		log.Fatal("failed to iterate history:", err)
	}

	slog.Info("republished generations", "count", published)
}
