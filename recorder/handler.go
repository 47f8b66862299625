package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	_ "github.com/lib/pq"

	"github.com/aichef/ai-chef/models"
)

type Handler struct {
	pg *Pg
}

func NewHandler(pg *Pg) (*Handler, error) {
	return &Handler{
		pg: pg,
	}, nil
}

// HandleGenerationMessage persists one generation event received from nats.
func (h *Handler) HandleGenerationMessage(ctx context.Context, msg []byte) error {
	var event models.GenerationEvent

	if err := json.Unmarshal(msg, &event); err != nil {
		return fmt.Errorf("failed to unmarshal generation event: %w", err)
	}

	generation := event.ToModel()

	if err := h.pg.SaveGeneration(ctx, generation); err != nil {
		return fmt.Errorf("failed to save generation: %w", err)
	}

	slog.Info("recorded generation", "generation", generation.Stringify())

	return nil
}
