package summarizer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/Rako024/transcript-archive/pkg/apperror"
)

const baseSystemPrompt = `Sən transkript mətnlərini başa düşən və onları qısa, konkret xülasə edən modelsən. Cavabını Azərbaycan dilində ver.`

const keywordSystemPrompt = baseSystemPrompt + ` Axtarılan sözə fokuslan və yalnız ona aid məqamları ver.`

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
	Stream      bool          `json:"stream"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Summarize sends the concatenated transcript text to the completion
// endpoint and returns the model's answer. A non-success upstream status is
// an apperror.SummarizationError; callers must not treat a summary as
// optional.
func (s *implSummarizer) Summarize(ctx context.Context, fullText, keyword string) (string, error) {
	cfg := s.snapshot()

	payload := chatRequest{
		Model:       cfg.Model,
		Messages:    buildMessages(fullText, keyword),
		MaxTokens:   cfg.MaxTokens,
		Temperature: cfg.Temperature,
		Stream:      false,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", &apperror.SummarizationError{Status: 0, Body: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		s.logger.Error(ctx, "Summarization upstream returned %d: %s", resp.StatusCode, string(b))
		return "", &apperror.SummarizationError{Status: resp.StatusCode, Body: string(b)}
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("empty completion response")
	}

	return strings.TrimSpace(out.Choices[0].Message.Content), nil
}

// buildMessages assembles the fixed two-message prompt. With a keyword the
// user instruction names it; without one the instruction asks for a general
// summary of the window.
func buildMessages(fullText, keyword string) []chatMessage {
	if keyword == "" {
		return []chatMessage{
			{Role: "system", Content: baseSystemPrompt},
			{Role: "user", Content: fmt.Sprintf(
				"Aşağıdakı transkript mətnini oxu və əsas məqamları qısa bəndlərlə ver:\n\n%s", fullText)},
		}
	}
	return []chatMessage{
		{Role: "system", Content: keywordSystemPrompt},
		{Role: "user", Content: fmt.Sprintf(
			"Axtarılan söz: “%s”. Aşağıdakı transkript mətnində bu sözlə bağlı deyilənləri qısa xülasə et:\n\n%s",
			keyword, fullText)},
	}
}
