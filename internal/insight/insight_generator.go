package insight

import (
	"context"
	"fmt"
	"os"

	"google.golang.org/genai"
)

// PlaceholderKey is treated the same as an unset key: scaffolding tools ship
// it as a default and it must never reach the provider.
const PlaceholderKey = "PLACEHOLDER_API_KEY"

// GenerateParams is one provider round trip. No retries, no streaming.
type GenerateParams struct {
	Model             string
	Contents          string
	SystemInstruction string
	Temperature       *float32
}

//go:generate mockgen -source=insight_generator.go -destination=mock/insight_generator_mock.go -package=mock
type Generator interface {
	Generate(ctx context.Context, params GenerateParams) (string, error)
}

type geminiGenerator struct {
	client *genai.Client
}

// NewGeminiGenerator connects to the live Gemini API.
func NewGeminiGenerator(ctx context.Context, apiKey string) (Generator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &geminiGenerator{client: client}, nil
}

func (g *geminiGenerator) Generate(ctx context.Context, params GenerateParams) (string, error) {
	cfg := &genai.GenerateContentConfig{
		Temperature: params.Temperature,
	}
	if params.SystemInstruction != "" {
		cfg.SystemInstruction = genai.NewContentFromText(params.SystemInstruction, genai.RoleUser)
	}

	resp, err := g.client.Models.GenerateContent(ctx, params.Model, genai.Text(params.Contents), cfg)
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

// mockGenerator returns the canned dev response without touching the network.
type mockGenerator struct{}

func NewMockGenerator() Generator { return mockGenerator{} }

func (mockGenerator) Generate(_ context.Context, params GenerateParams) (string, error) {
	return fmt.Sprintf("MOCK RESPONSE: Received model=%s. Brief analysis: Positive trend detected.", params.Model), nil
}

// NewGeneratorFromEnv picks the provider mode: live when GEMINI_API_KEY holds
// a real key, mock when DEV_GENAI_MOCK=true, otherwise nil (not configured).
func NewGeneratorFromEnv(ctx context.Context) (Generator, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey != "" && apiKey != PlaceholderKey {
		return NewGeminiGenerator(ctx, apiKey)
	}
	if os.Getenv("DEV_GENAI_MOCK") == "true" {
		return NewMockGenerator(), nil
	}
	return nil, nil
}
