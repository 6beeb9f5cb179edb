package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"fanhub-backend/internal/models"
)

type GeminiService struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewGeminiService(apiKey, modelName string) (*GeminiService, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(0.9)
	model.SetTopK(40)
	model.SetTopP(0.95)
	model.SetMaxOutputTokens(500)

	// Permissive thresholds for every category, as the product was
	// originally configured. Revisit before widening the audience.
	model.SafetySettings = []*genai.SafetySetting{
		{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockNone},
		{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockNone},
		{Category: genai.HarmCategorySexuallyExplicit, Threshold: genai.HarmBlockNone},
		{Category: genai.HarmCategoryDangerousContent, Threshold: genai.HarmBlockNone},
	}

	return &GeminiService{client: client, model: model}, nil
}

func (s *GeminiService) Close() {
	s.client.Close()
}

// Reply sends the fan's message with the session's prior turns and
// returns the model's text. Empty output is an error so the gateway can
// fall back.
func (s *GeminiService) Reply(ctx context.Context, history []models.ChatMessage, message string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	cs := s.model.StartChat()
	cs.History = toGenaiHistory(history)

	resp, err := cs.SendMessage(ctx, genai.Text(buildFanPrompt(message)))
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	text := strings.TrimSpace(extractText(resp))
	if text == "" {
		return "", fmt.Errorf("Gemini returned empty text")
	}
	return text, nil
}

func toGenaiHistory(history []models.ChatMessage) []*genai.Content {
	out := make([]*genai.Content, 0, len(history))
	for _, msg := range history {
		role := "user"
		if msg.Role == "model" {
			role = "model"
		}
		out = append(out, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(msg.Content)},
		})
	}
	return out
}

func buildFanPrompt(message string) string {
	var b strings.Builder

	// Layer 1 — Persona
	b.WriteString("Você é o assistente oficial da torcida da FURIA Esports. ")
	b.WriteString("Responda em português brasileiro, com tom animado e acolhedor, como um torcedor conversando com outro.\n\n")

	// Layer 2 — Guardrails
	b.WriteString("Regras: respostas curtas (até 3 parágrafos); nunca invente placares ou datas de jogos; ")
	b.WriteString("se não souber algo, admita e sugira os canais oficiais da FURIA.\n\n")

	// Layer 3 — Message
	b.WriteString("---MENSAGEM DO FÃ---\n")
	b.WriteString(message)
	b.WriteString("\n---FIM---\n")

	return b.String()
}

func extractText(resp *genai.GenerateContentResponse) string {
	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if t, ok := part.(genai.Text); ok {
					text.WriteString(string(t))
				}
			}
		}
	}
	return text.String()
}
