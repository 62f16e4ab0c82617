package gemini

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/tourism-portal/internal/config"
	"github.com/tourism-portal/internal/domain"
)

const basePrompt = `You are the travel assistant of a Namibia tourism portal.
Answer briefly and helpfully about Namibian destinations, routes, accommodation, restaurants and activities.
If you do not know something, say so and suggest browsing the portal's routes and listings.
Namibia has 14 regions: %s.`

// Responder генерирует ответы ассистента через Gemini API
type Responder struct {
	client       *genai.Client
	model        string
	systemPrompt string
	logger       *zap.Logger
}

// NewResponder создает клиента Gemini. Список регионов попадает в системную инструкцию.
func NewResponder(ctx context.Context, cfg config.ChatbotConfig, registry *domain.RegionRegistry, logger *zap.Logger) (*Responder, error) {
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &Responder{
		client:       client,
		model:        cfg.Model,
		systemPrompt: systemPrompt(registry),
		logger:       logger,
	}, nil
}

// Reply отправляет историю диалога модели и возвращает текст ответа
func (r *Responder) Reply(ctx context.Context, history []domain.ChatMessage) (string, error) {
	contents := toContents(history)
	if len(contents) == 0 {
		return "", fmt.Errorf("empty conversation history")
	}

	resp, err := r.client.Models.GenerateContent(ctx, r.model, contents, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(r.systemPrompt, genai.RoleUser),
		Temperature:       genai.Ptr[float32](0.6),
		MaxOutputTokens:   512,
	})
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	r.logger.Debug("Gemini reply generated",
		zap.String("model", r.model),
		zap.Int("history", len(contents)),
		zap.Int("reply_length", len(text)),
	)
	return text, nil
}

// toContents переводит историю в формат Gemini: ассистент отвечает ролью "model"
func toContents(history []domain.ChatMessage) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history))
	for _, msg := range history {
		text := strings.TrimSpace(msg.Content)
		if text == "" {
			continue
		}
		role := genai.RoleUser
		if msg.Role == domain.ChatRoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(text, role))
	}
	return contents
}

func systemPrompt(registry *domain.RegionRegistry) string {
	regions := registry.Regions()
	names := make([]string, 0, len(regions))
	for _, r := range regions {
		names = append(names, fmt.Sprintf("%s (capital %s)", r.Name, r.Capital))
	}
	return fmt.Sprintf(basePrompt, strings.Join(names, ", "))
}
