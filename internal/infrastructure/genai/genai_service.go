package genai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/veltrixai/go-backend/internal/cfg"
	"github.com/veltrixai/go-backend/internal/domain"
	"github.com/veltrixai/go-backend/internal/usecase"
	"github.com/veltrixai/go-backend/pkg/e"
	"github.com/veltrixai/go-backend/pkg/jitter"
	"github.com/veltrixai/go-backend/pkg/logger"
)

// Service клиент генеративной модели Gemini: текст, vision-распознавание чеков
// и эмбеддинги. Все вызовы выполняются с retry-логикой и экспоненциальной задержкой.
type Service struct {
	client     *genai.Client
	cfg        *cfg.GeminiCfg
	maxRetries int
	logger     logger.Logger
}

func NewService(ctx context.Context, cfg *cfg.GeminiCfg, logger logger.Logger) (*Service, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      cfg.APIKey,
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, e.Wrap("genai.NewService", err)
	}

	return &Service{
		client:     client,
		cfg:        cfg,
		maxRetries: cfg.MaxRetries,
		logger:     logger,
	}, nil
}

// GenerateText выполняет одиночный текстовый запрос к модели.
func (s *Service) GenerateText(ctx context.Context, prompt string) (string, error) {
	const op = "genai.Service.GenerateText"

	contents := []*genai.Content{
		{
			Role:  genai.RoleUser,
			Parts: []*genai.Part{{Text: prompt}},
		},
	}

	text, err := s.generateWithRetry(ctx, contents, nil)
	if err != nil {
		return "", e.Wrap(op, err)
	}

	return text, nil
}

// ChatCompletion выполняет запрос с системным промптом и историей диалога.
func (s *Service) ChatCompletion(ctx context.Context, req *usecase.ChatCompletionReq) (string, error) {
	const op = "genai.Service.ChatCompletion"

	contents := make([]*genai.Content, 0, len(req.Messages))
	for _, message := range req.Messages {
		role := genai.RoleUser
		if message.Role == domain.RoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []*genai.Part{{Text: message.Content}},
		})
	}

	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: req.System}},
		},
	}

	text, err := s.generateWithRetry(ctx, contents, config)
	if err != nil {
		return "", e.Wrap(op, err)
	}

	return text, nil
}

// ScanReceipt распознаёт чек по изображению через vision-возможности модели.
// Нераспарсиваемый ответ модели даёт ErrUnparsableReceipt.
func (s *Service) ScanReceipt(ctx context.Context, imageData []byte, mimeType string) (*usecase.ReceiptScan, error) {
	const op = "genai.Service.ScanReceipt"

	contents := []*genai.Content{
		{
			Role: genai.RoleUser,
			Parts: []*genai.Part{
				{Text: receiptPrompt},
				{
					InlineData: &genai.Blob{
						MIMEType: mimeType,
						Data:     imageData,
					},
				},
			},
		},
	}

	raw, err := s.generateWithRetry(ctx, contents, nil)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	scan, err := parseReceiptAnswer(raw)
	if err != nil {
		s.logger.Warnf("%s: unparsable model answer: %v", op, err)
		return nil, e.Wrap(op, e.ErrUnparsableReceipt)
	}

	return scan, nil
}

// EmbedText считает эмбеддинг текста для семантического поиска.
func (s *Service) EmbedText(ctx context.Context, text string) (*usecase.EmbedTextRes, error) {
	const op = "genai.Service.EmbedText"

	contents := []*genai.Content{
		{Parts: []*genai.Part{{Text: text}}},
	}

	var res *genai.EmbedContentResponse
	err := s.withRetry(ctx, func() error {
		var callErr error
		res, callErr = s.client.Models.EmbedContent(ctx, s.cfg.EmbeddingModel, contents, nil)
		return callErr
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if len(res.Embeddings) == 0 || len(res.Embeddings[0].Values) == 0 {
		return nil, e.Wrap(op, e.ErrEmptyVector)
	}

	return usecase.NewEmbedTextRes(res.Embeddings[0].Values, s.cfg.EmbeddingModel), nil
}

// generateWithRetry выполняет GenerateContent с retry-логикой.
func (s *Service) generateWithRetry(ctx context.Context, contents []*genai.Content, config *genai.GenerateContentConfig) (string, error) {
	var text string
	err := s.withRetry(ctx, func() error {
		resp, callErr := s.client.Models.GenerateContent(ctx, s.cfg.Model, contents, config)
		if callErr != nil {
			return callErr
		}

		text = resp.Text()
		if text == "" {
			return fmt.Errorf("empty response from model")
		}
		return nil
	})

	return text, err
}

// withRetry повторяет вызов модели с экспоненциальной задержкой и jitter.
func (s *Service) withRetry(ctx context.Context, call func() error) error {
	const (
		baseJitter = 1 * time.Second
		maxJitter  = 30 * time.Second
	)

	var lastErr error
	for attempt := 0; attempt < s.maxRetries; attempt++ {
		lastErr = call()
		if lastErr == nil {
			return nil
		}

		if attempt == s.maxRetries-1 {
			break
		}

		sleepTime := jitter.ExponentialBackoff(
			baseJitter,
			maxJitter,
			attempt,
			jitter.DefaultJitter,
		)

		s.logger.Warnf("model call failed, retrying in %v (attempt %d): %v", sleepTime, attempt+1, lastErr)
		select {
		case <-time.After(sleepTime):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	return fmt.Errorf("all %d attempts failed: %w", s.maxRetries, lastErr)
}

// receiptPrompt — инструкция vision-модели для распознавания чека.
const receiptPrompt = `Extract the data from this receipt image.
Respond with ONLY a JSON object, no markdown, in this exact shape:
{"storeName":"...","date":"YYYY-MM-DD","items":[{"name":"...","qty":1,"price":0}],"total":0}
Prices are integer amounts in Indonesian Rupiah. Use an empty string for the date if it is not visible.`

// parseReceiptAnswer извлекает JSON-объект из ответа модели,
// срезая markdown-ограждения и окружающий текст.
func parseReceiptAnswer(raw string) (*usecase.ReceiptScan, error) {
	var scan usecase.ReceiptScan
	if err := json.Unmarshal([]byte(extractJSONObject(raw)), &scan); err != nil {
		return nil, err
	}
	scan.Raw = raw

	return &scan, nil
}

// extractJSONObject находит в тексте первую сбалансированную последовательность {...}.
func extractJSONObject(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") {
		if idx := strings.Index(text, "\n"); idx != -1 {
			text = text[idx+1:]
		}
		if idx := strings.LastIndex(text, "```"); idx != -1 {
			text = text[:idx]
		}
		text = strings.TrimSpace(text)
	}

	start := strings.IndexByte(text, '{')
	if start < 0 {
		return text
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		switch {
		case escaped:
			escaped = false
		case c == '\\':
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return text[start : i+1]
			}
		}
	}

	return text[start:]
}
