package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
)

// Generation is one recorded prompt/response cycle, persisted by the recorder.
type Generation struct {
	ID                uint64         `gorm:"primaryKey" json:"id"`
	Model             string         `json:"model"`
	Cuisine           string         `json:"cuisine"`
	DietaryPreference string         `json:"dietary_preference"`
	Allergy           string         `json:"allergy"`
	Ingredients       pq.StringArray `gorm:"type:text[]" json:"ingredients"`
	WinePreference    string         `json:"wine_preference"`
	Prompt            string         `json:"prompt"`
	Response          string         `json:"response"`
	CreatedAt         time.Time      `json:"created_at"`
}

func (g *Generation) TableName() string {
	return "generations"
}

func (g *Generation) Stringify() string {
	return fmt.Sprintf("Generation: model=%s, cuisine=%s, diet=%s, allergy=%s, ingredients=%s, wine=%s",
		g.Model, g.Cuisine, g.DietaryPreference, g.Allergy, strings.Join(g.Ingredients, ", "), g.WinePreference)
}

// GenerationEvent is the wire form published to NATS after each generation.
type GenerationEvent struct {
	Model             string    `json:"model"`
	Cuisine           string    `json:"cuisine"`
	DietaryPreference string    `json:"dietary_preference"`
	Allergy           string    `json:"allergy"`
	Ingredients       []string  `json:"ingredients"`
	WinePreference    string    `json:"wine_preference"`
	Prompt            string    `json:"prompt"`
	Response          string    `json:"response"`
	CreatedAt         time.Time `json:"created_at"`
}

func (e *GenerationEvent) ToModel() *Generation {
	return &Generation{
		Model:             e.Model,
		Cuisine:           e.Cuisine,
		DietaryPreference: e.DietaryPreference,
		Allergy:           e.Allergy,
		Ingredients:       e.Ingredients,
		WinePreference:    e.WinePreference,
		Prompt:            e.Prompt,
		Response:          e.Response,
		CreatedAt:         e.CreatedAt,
	}
}
