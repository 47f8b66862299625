package main

import (
	"context"
	"fmt"
	"iter"
	"strings"

	"google.golang.org/genai"

	"github.com/aichef/ai-chef/config"
)

// Generator wraps the Gemini client with the fixed generation settings used
// for every recipe request.
type Generator struct {
	client *genai.Client
	model  string
	config *genai.GenerateContentConfig
}

func NewGenerator(ctx context.Context, google config.Google, gen config.Generation) (*Generator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Backend:  genai.BackendVertexAI,
		Project:  google.Project,
		Location: google.Location,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &Generator{
		client: client,
		model:  google.Model,
		config: &genai.GenerateContentConfig{
			Temperature:     genai.Ptr(gen.Temperature),
			MaxOutputTokens: gen.MaxOutputTokens,
			SafetySettings: []*genai.SafetySetting{
				{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockThresholdBlockNone},
				{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockThresholdBlockNone},
				{Category: genai.HarmCategorySexuallyExplicit, Threshold: genai.HarmBlockThresholdBlockNone},
				{Category: genai.HarmCategoryDangerousContent, Threshold: genai.HarmBlockThresholdBlockNone},
			},
		},
	}, nil
}

func (g *Generator) Model() string {
	return g.model
}

// Generate issues one streaming generation request and blocks until the
// stream is exhausted, returning the aggregated text. streamHandler, when not
// nil, receives each chunk text as it arrives.
func (g *Generator) Generate(ctx context.Context, prompt string, streamHandler func(chunk string) error) (string, error) {
	stream := g.client.Models.GenerateContentStream(ctx, g.model, genai.Text(prompt), g.config)

	return Aggregate(stream, streamHandler)
}

// Aggregate consumes a chunk stream in arrival order and joins the chunk
// texts with single spaces. A chunk that carries no extractable text counts
// as an empty placeholder so that chunk count and order are preserved. Stream
// errors abort aggregation and propagate to the caller.
func Aggregate(stream iter.Seq2[*genai.GenerateContentResponse, error], streamHandler func(chunk string) error) (string, error) {
	var collected []string
	for resp, err := range stream {
		if err != nil {
			return "", err
		}

		text := chunkText(resp)
		collected = append(collected, text)

		if streamHandler != nil {
			if err := streamHandler(text); err != nil {
				return "", fmt.Errorf("stream handler failed: %w", err)
			}
		}
	}

	return strings.Join(collected, " "), nil
}

// chunkText extracts the text of a streamed response. Responses without a
// candidate, content, or parts happen when safety filtering suppresses a
// chunk or on the terminal chunk of a stream, they yield an empty string.
func chunkText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}

	content := resp.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 {
		return ""
	}

	var text strings.Builder
	for _, part := range content.Parts {
		if part != nil {
			text.WriteString(part.Text)
		}
	}

	return text.String()
}
