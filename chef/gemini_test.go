package main

import (
	"errors"
	"iter"
	"testing"

	"google.golang.org/genai"
)

func textChunk(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{
				Content: &genai.Content{
					Parts: []*genai.Part{{Text: text}},
				},
			},
		},
	}
}

// emptyChunk carries no candidate text, like a safety-filtered or terminal
// stream chunk.
func emptyChunk() *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{}
}

func streamOf(chunks ...*genai.GenerateContentResponse) iter.Seq2[*genai.GenerateContentResponse, error] {
	return func(yield func(*genai.GenerateContentResponse, error) bool) {
		for _, chunk := range chunks {
			if !yield(chunk, nil) {
				return
			}
		}
	}
}

func failingStream(after []*genai.GenerateContentResponse, err error) iter.Seq2[*genai.GenerateContentResponse, error] {
	return func(yield func(*genai.GenerateContentResponse, error) bool) {
		for _, chunk := range after {
			if !yield(chunk, nil) {
				return
			}
		}
		yield(nil, err)
	}
}

func TestAggregate(t *testing.T) {
	result, err := Aggregate(streamOf(textChunk("Recipe"), textChunk(" One"), emptyChunk()), nil)
	if err != nil {
		t.Fatalf("Aggregate failed: %v", err)
	}

	if result != "Recipe  One " {
		t.Errorf("expected %q, got %q", "Recipe  One ", result)
	}
}

func TestAggregateEmptyStream(t *testing.T) {
	result, err := Aggregate(streamOf(), nil)
	if err != nil {
		t.Fatalf("Aggregate failed: %v", err)
	}

	if result != "" {
		t.Errorf("expected empty string for empty stream, got %q", result)
	}
}

func TestAggregateAllChunksEmpty(t *testing.T) {
	result, err := Aggregate(streamOf(emptyChunk(), emptyChunk(), emptyChunk()), nil)
	if err != nil {
		t.Fatalf("Aggregate failed: %v", err)
	}

	if result != "  " {
		t.Errorf("expected two spaces for three empty chunks, got %q", result)
	}
}

func TestAggregateTransportError(t *testing.T) {
	transportErr := errors.New("rpc error: unavailable")

	result, err := Aggregate(failingStream(nil, transportErr), nil)
	if !errors.Is(err, transportErr) {
		t.Fatalf("expected transport error to propagate, got %v", err)
	}
	if result != "" {
		t.Errorf("expected no result on transport error, got %q", result)
	}
}

func TestAggregateMidStreamError(t *testing.T) {
	streamErr := errors.New("connection reset")

	_, err := Aggregate(failingStream([]*genai.GenerateContentResponse{textChunk("partial")}, streamErr), nil)
	if !errors.Is(err, streamErr) {
		t.Fatalf("expected mid-stream error to propagate, got %v", err)
	}
}

func TestAggregateStreamHandler(t *testing.T) {
	var chunks []string
	result, err := Aggregate(streamOf(textChunk("a"), emptyChunk(), textChunk("b")), func(chunk string) error {
		chunks = append(chunks, chunk)
		return nil
	})
	if err != nil {
		t.Fatalf("Aggregate failed: %v", err)
	}

	if result != "a  b" {
		t.Errorf("expected %q, got %q", "a  b", result)
	}

	expected := []string{"a", "", "b"}
	if len(chunks) != len(expected) {
		t.Fatalf("expected %d chunks, got %d", len(expected), len(chunks))
	}
	for i, chunk := range expected {
		if chunks[i] != chunk {
			t.Errorf("chunk %d: expected %q, got %q", i, chunk, chunks[i])
		}
	}
}

func TestAggregateStreamHandlerError(t *testing.T) {
	handlerErr := errors.New("client went away")

	_, err := Aggregate(streamOf(textChunk("a"), textChunk("b")), func(chunk string) error {
		return handlerErr
	})
	if !errors.Is(err, handlerErr) {
		t.Fatalf("expected handler error to propagate, got %v", err)
	}
}

func TestChunkText(t *testing.T) {
	tests := []struct {
		name     string
		resp     *genai.GenerateContentResponse
		expected string
	}{
		{"nil response", nil, ""},
		{"no candidates", &genai.GenerateContentResponse{}, ""},
		{"nil content", &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}}, ""},
		{
			"no parts",
			&genai.GenerateContentResponse{Candidates: []*genai.Candidate{{Content: &genai.Content{}}}},
			"",
		},
		{"single part", textChunk("hello"), "hello"},
		{
			"multiple parts",
			&genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{
					{
						Content: &genai.Content{
							Parts: []*genai.Part{{Text: "hello"}, nil, {Text: " world"}},
						},
					},
				},
			},
			"hello world",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := chunkText(tt.resp); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}
