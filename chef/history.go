package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/aichef/ai-chef/models"
)

// History keeps a local record of generations next to the service, the
// durable log lives in Postgres behind the recorder.
type History struct {
	db *sql.DB
}

const historySchema = `
CREATE TABLE IF NOT EXISTS generations (
	id                 INTEGER PRIMARY KEY AUTOINCREMENT,
	model              TEXT NOT NULL,
	cuisine            TEXT NOT NULL,
	dietary_preference TEXT NOT NULL,
	allergy            TEXT NOT NULL,
	ingredients        TEXT NOT NULL,
	wine_preference    TEXT NOT NULL,
	prompt             TEXT NOT NULL,
	response           TEXT NOT NULL,
	created_at         TIMESTAMP NOT NULL
)`

func NewHistory(path string) (*History, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history db: %w", err)
	}

	if _, err := db.Exec(historySchema); err != nil {
		return nil, fmt.Errorf("failed to create history schema: %w", err)
	}

	return &History{db: db}, nil
}

func (h *History) Close() error {
	return h.db.Close()
}

func (h *History) Record(ctx context.Context, generation *models.Generation) error {
	ingredients, err := json.Marshal([]string(generation.Ingredients))
	if err != nil {
		return fmt.Errorf("failed to marshal ingredients: %w", err)
	}

	_, err = h.db.ExecContext(ctx,
		`INSERT INTO generations (model, cuisine, dietary_preference, allergy, ingredients, wine_preference, prompt, response, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		generation.Model,
		generation.Cuisine,
		generation.DietaryPreference,
		generation.Allergy,
		string(ingredients),
		generation.WinePreference,
		generation.Prompt,
		generation.Response,
		generation.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to record generation: %w", err)
	}

	return nil
}

func (h *History) Recent(ctx context.Context, limit int) ([]models.Generation, error) {
	if limit < 1 {
		limit = 20
	}

	rows, err := h.db.QueryContext(ctx,
		`SELECT id, model, cuisine, dietary_preference, allergy, ingredients, wine_preference, prompt, response, created_at
		 FROM generations ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var generations []models.Generation
	for rows.Next() {
		var generation models.Generation
		var ingredients string

		if err := rows.Scan(
			&generation.ID,
			&generation.Model,
			&generation.Cuisine,
			&generation.DietaryPreference,
			&generation.Allergy,
			&ingredients,
			&generation.WinePreference,
			&generation.Prompt,
			&generation.Response,
			&generation.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan generation: %w", err)
		}

		if err := json.Unmarshal([]byte(ingredients), (*[]string)(&generation.Ingredients)); err != nil {
			return nil, fmt.Errorf("failed to unmarshal ingredients: %w", err)
		}

		generations = append(generations, generation)
	}

	return generations, rows.Err()
}
