// Package insight talks to the Gemini API on behalf of the insight
// service.
package insight

import (
	"context"

	"google.golang.org/genai"

	"github.com/DEvILSG007/ScholarSyncPlanner/internal/core/ports"
)

type GeminiClient struct {
	client *genai.Client
	model  string
}

var _ ports.InsightClient = (*GeminiClient)(nil)

func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &GeminiClient{client: client, model: model}, nil
}

// GenerateInsight asks the model for a JSON reply and returns the raw
// text; the service owns parsing and shape checks.
func (c *GeminiClient) GenerateInsight(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}
