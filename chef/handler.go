package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aichef/ai-chef/models"
)

type Handler struct {
	generator *Generator
	history   *History
	events    *NatsClient
	subject   string
}

func NewHandler(generator *Generator, history *History, events *NatsClient, subject string) (*Handler, error) {
	return &Handler{
		generator: generator,
		history:   history,
		events:    events,
		subject:   subject,
	}, nil
}

// GenerateRecipes runs one full prompt/generate/aggregate cycle and returns
// both the aggregated recipes and the literal prompt that produced them.
func (h *Handler) GenerateRecipes(
	ctx context.Context,
	req RecipeRequest,
	streamHandler func(chunk string) error,
) (*GenerationResult, error) {
	req.ApplyDefaults()

	prompt, err := BuildPrompt(req)
	if err != nil {
		return nil, fmt.Errorf("failed to build prompt: %w", err)
	}

	recipes, err := h.generator.Generate(ctx, prompt, streamHandler)
	if err != nil {
		return nil, fmt.Errorf("failed to generate recipes: %w", err)
	}

	slog.Info("generated recipes", "model", h.generator.Model(), "response", recipes)

	h.record(ctx, req, prompt, recipes)

	return &GenerationResult{
		Prompt:  prompt,
		Recipes: recipes,
	}, nil
}

// StreamRecipes mirrors GenerateRecipes over a channel of websocket frames:
// the prompt first, then each chunk in arrival order, then the aggregated
// result, then io.EOF.
func (h *Handler) StreamRecipes(ctx context.Context, req RecipeRequest) chan *ProcessingResult {
	resultChan := make(chan *ProcessingResult)

	go func() {
		defer func() {
			close(resultChan)
		}()

		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		req.ApplyDefaults()

		prompt, err := BuildPrompt(req)
		if err != nil {
			resultChan <- &ProcessingResult{
				Err: fmt.Errorf("failed to build prompt: %w", err),
			}

			return
		}

		resultChan <- &ProcessingResult{
			Msg: WebSocketsMessage{
				Type: "prompt",
				Data: prompt,
			},
		}

		recipes, err := h.generator.Generate(ctx, prompt, func(chunk string) error {
			resultChan <- &ProcessingResult{
				Msg: WebSocketsMessage{
					Type: "chunk",
					Data: chunk,
				},
			}

			return nil
		})
		if err != nil {
			resultChan <- &ProcessingResult{
				Err: fmt.Errorf("failed to generate recipes: %w", err),
			}

			return
		}

		resultChan <- &ProcessingResult{
			Msg: WebSocketsMessage{
				Type: "recipes",
				Data: recipes,
			},
		}

		slog.Info("generated recipes", "model", h.generator.Model(), "response", recipes)

		h.record(ctx, req, prompt, recipes)

		resultChan <- &ProcessingResult{
			Err: io.EOF,
		}
	}()

	return resultChan
}

// record persists the generation locally and publishes the completion event.
// Neither failure mode is allowed to fail the user's request.
func (h *Handler) record(ctx context.Context, req RecipeRequest, prompt, recipes string) {
	generation := &models.Generation{
		Model:             h.generator.Model(),
		Cuisine:           req.Cuisine,
		DietaryPreference: req.DietaryPreference,
		Allergy:           req.Allergy,
		Ingredients:       req.Ingredients(),
		WinePreference:    req.WinePreference,
		Prompt:            prompt,
		Response:          recipes,
		CreatedAt:         time.Now().UTC(),
	}

	if err := h.history.Record(ctx, generation); err != nil {
		slog.Warn("failed to record generation history", "error", err)
	}

	event := models.GenerationEvent{
		Model:             generation.Model,
		Cuisine:           generation.Cuisine,
		DietaryPreference: generation.DietaryPreference,
		Allergy:           generation.Allergy,
		Ingredients:       generation.Ingredients,
		WinePreference:    generation.WinePreference,
		Prompt:            generation.Prompt,
		Response:          generation.Response,
		CreatedAt:         generation.CreatedAt,
	}

	data, err := json.Marshal(&event)
	if err != nil {
		slog.Warn("failed to marshal generation event", "error", err)

		return
	}

	if err := h.events.Publish(h.subject, data); err != nil {
		slog.Warn("failed to publish generation event", "error", err)
	}
}

// Recent returns the latest locally recorded generations.
func (h *Handler) Recent(ctx context.Context, limit int) ([]models.Generation, error) {
	generations, err := h.history.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list generations: %w", err)
	}

	return generations, nil
}
