package jdparse

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"recruit-backend/internal/forms"
)

const geminiURLFormat = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s"

// GeminiParser implements Parser against the Gemini generateContent API.
type GeminiParser struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewGeminiParser constructs a GeminiParser.
func NewGeminiParser(apiKey, model string) (*GeminiParser, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("GEMINI_MODEL is required")
	}
	return &GeminiParser{
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}, nil
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents         []geminiContent  `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type generationConfig struct {
	Temperature      float32 `json:"temperature"`
	ResponseMimeType string  `json:"responseMimeType,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Parse sends the job description to Gemini and decodes the flat
// extraction from its response.
func (p *GeminiParser) Parse(ctx context.Context, jobDescription string) (forms.Extraction, error) {
	reqBody := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: buildPrompt(jobDescription)}}},
		},
		GenerationConfig: generationConfig{
			Temperature:      0,
			ResponseMimeType: "application/json",
		},
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return forms.Extraction{}, err
	}

	url := fmt.Sprintf(geminiURLFormat, p.model, p.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return forms.Extraction{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return forms.Extraction{}, fmt.Errorf("%w: %v", ErrParseFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return forms.Extraction{}, fmt.Errorf("%w: read response: %v", ErrParseFailed, err)
	}

	var parsed geminiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return forms.Extraction{}, fmt.Errorf("%w: decode response: %v", ErrParseFailed, err)
	}
	if parsed.Error != nil {
		return forms.Extraction{}, fmt.Errorf("%w: gemini error %d: %s", ErrParseFailed, parsed.Error.Code, parsed.Error.Message)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return forms.Extraction{}, fmt.Errorf("%w: no candidates in response", ErrParseFailed)
	}

	text := stripFences(parsed.Candidates[0].Content.Parts[0].Text)
	var extraction forms.Extraction
	if err := json.Unmarshal([]byte(text), &extraction); err != nil {
		return forms.Extraction{}, fmt.Errorf("%w: invalid extraction JSON: %v", ErrParseFailed, err)
	}
	return extraction, nil
}

// stripFences removes markdown code fences some models wrap JSON in even
// when asked not to.
func stripFences(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
	}
	return strings.TrimSpace(text)
}
