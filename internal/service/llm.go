package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/apureza/fitcoach-v2/backend/config"
)

// PlanGenerator produces a decoded plan object from a rendered prompt.
type PlanGenerator interface {
	GeneratePlan(prompt string) (map[string]any, error)
}

// LLMService calls the model API and turns its free-form output into a
// decoded JSON plan. No retries and no timeout beyond the HTTP client
// default: a failed call surfaces immediately.
type LLMService struct {
	apiKey string
	apiURL string
	model  string
	client *http.Client
}

// NewLLMService creates an LLMService from the loaded configuration.
func NewLLMService(cfg *config.Config) *LLMService {
	return &LLMService{
		apiKey: cfg.ModelAPIKey,
		apiURL: cfg.ModelAPIURL,
		model:  cfg.ModelName,
		client: http.DefaultClient,
	}
}

type modelRequest struct {
	Model string `json:"model"`
	Input string `json:"input"`
}

type modelResponse struct {
	OutputText string `json:"output_text"`
	Output     []struct {
		Content []struct {
			Text  string `json:"text"`
			Value string `json:"value"`
		} `json:"content"`
	} `json:"output"`
}

// GeneratePlan sends the prompt to the model and decodes the JSON plan from
// its response, repairing fenced or prose-wrapped output when needed.
func (s *LLMService) GeneratePlan(prompt string) (map[string]any, error) {
	if s.apiKey == "" {
		return nil, ErrModelKeyMissing
	}

	reqID := uuid.New().String()

	body, err := json.Marshal(modelRequest{Model: s.model, Input: prompt})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, s.apiURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	log.Printf("[llm] request %s model=%s prompt=%d bytes", reqID, s.model, len(prompt))

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("model API request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	var decoded modelResponse
	if err := json.Unmarshal(respBody, &decoded); err != nil {
		return nil, fmt.Errorf("failed to decode model response: %w", err)
	}

	raw := aggregateOutput(&decoded)
	if raw == "" {
		return nil, ErrEmptyModelResponse
	}

	log.Printf("[llm] request %s answered with %d bytes of text", reqID, len(raw))

	return ParsePlanPayload(raw)
}

// aggregateOutput prefers the pre-aggregated text field and otherwise
// concatenates every textual fragment of the output items, in order.
func aggregateOutput(resp *modelResponse) string {
	if resp.OutputText != "" {
		return resp.OutputText
	}

	var b strings.Builder
	for _, item := range resp.Output {
		for _, content := range item.Content {
			if content.Text != "" {
				b.WriteString(content.Text)
			} else if content.Value != "" {
				b.WriteString(content.Value)
			}
		}
	}
	return b.String()
}

// ParsePlanPayload decodes the model text as JSON, falling back to the
// repair heuristic for fenced or prose-wrapped output. An undecodable
// payload is a ModelDecodeError, distinct from request-validation failures.
func ParsePlanPayload(raw string) (map[string]any, error) {
	var plan map[string]any
	if err := json.Unmarshal([]byte(raw), &plan); err == nil {
		return plan, nil
	}

	repaired := ExtractJSONPayload(raw)
	if err := json.Unmarshal([]byte(repaired), &plan); err != nil {
		return nil, &ModelDecodeError{Raw: raw, Err: err}
	}
	return plan, nil
}

// ExtractJSONPayload isolates the JSON object embedded in model output:
// fenced-code markers (with an optional language tag up to the first
// newline) are stripped, then the text is sliced between the first '{' and
// the last '}'. Text without braces comes back stripped but otherwise
// unchanged.
func ExtractJSONPayload(raw string) string {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return ""
	}

	if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.Trim(cleaned, "`")
		if i := strings.Index(cleaned, "\n"); i != -1 {
			cleaned = strings.TrimSpace(cleaned[i+1:])
		}
	}

	first := strings.Index(cleaned, "{")
	last := strings.LastIndex(cleaned, "}")
	if first != -1 && last >= first {
		return cleaned[first : last+1]
	}

	return cleaned
}
