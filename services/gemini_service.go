package services

import (
	"context"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/ChamodyaGanepola/ai-powered-diet-and-fitness-planner-sub000/config"
	"github.com/ChamodyaGanepola/ai-powered-diet-and-fitness-planner-sub000/utils"
)

// PlanProvider is the AI collaborator that turns a prompt encoding numeric
// targets into a structured plan response. Tests substitute a stub.
type PlanProvider interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type GeminiProvider struct {
	apiKey string
	model  string
}

func NewGeminiProvider() *GeminiProvider {
	return &GeminiProvider{apiKey: config.GeminiAPIKey, model: config.GeminiModel}
}

func (g *GeminiProvider) Generate(ctx context.Context, prompt string) (string, error) {
	if g.apiKey == "" {
		return "", &utils.UpstreamError{Msg: "GEMINI_API_KEY is not set"}
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(g.apiKey))
	if err != nil {
		return "", &utils.UpstreamError{Msg: "failed to create Gemini client", Err: err}
	}
	defer client.Close()

	model := client.GenerativeModel(g.model)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", &utils.UpstreamError{Msg: "generation request failed", Err: err}
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", &utils.UpstreamError{Msg: "empty generation response"}
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "", &utils.UpstreamError{Msg: "generation response had no text content"}
	}
	return sb.String(), nil
}
