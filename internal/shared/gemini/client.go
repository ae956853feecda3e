// Package gemini wraps the Google GenAI SDK behind the three text operations
// the planning service needs: content summaries, initiative prioritization and
// KPI suggestions. Calls are single-shot with no retry; failures are returned
// to the caller verbatim.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const defaultModel = "gemini-2.0-flash"

type Client struct {
	client *genai.Client
	model  string
}

// NewClient creates a Gemini-backed text client.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if model == "" {
		model = defaultModel
	}
	gc, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &Client{client: gc, model: model}, nil
}

const summarizePrompt = `Bạn là một chuyên gia phân tích và tóm tắt nội dung. Hãy tóm tắt nội dung sau đây một cách ngắn gọn, súc tích và dễ hiểu.

Loại nội dung: %s

Nội dung:
%s

Tóm tắt (bằng tiếng Việt, tối đa 200 từ):`

// Summarize returns a Vietnamese synopsis of the given content, capped at
// roughly 200 words regardless of the input language.
func (c *Client) Summarize(ctx context.Context, content, contentType string) (string, error) {
	prompt := fmt.Sprintf(summarizePrompt, contentType, content)
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("summarize content: %w", err)
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("summarize content: empty model response")
	}
	return text, nil
}

// InitiativesInput is the SWOT free text the prioritizer works from.
type InitiativesInput struct {
	Strengths     string `json:"strengths"`
	Weaknesses    string `json:"weaknesses"`
	Opportunities string `json:"opportunities"`
	Threats       string `json:"threats"`
}

// InitiativesOutput is a prioritized list of 5-7 initiatives plus reasoning.
type InitiativesOutput struct {
	PrioritizedInitiatives []string `json:"prioritizedInitiatives"`
	Reasoning              string   `json:"reasoning"`
}

const initiativesPrompt = `You are a strategic planning expert assisting a unit leader in identifying key initiatives for 2026.

Based on the SWOT analysis provided, suggest a prioritized list of 5-7 key initiatives for 2026, along with a clear explanation of the reasoning behind your choices.

Strengths: %s
Weaknesses: %s
Opportunities: %s
Threats: %s`

// PrioritizeInitiatives asks the model for a structured initiative list. The
// response is constrained to JSON via a response schema.
func (c *Client) PrioritizeInitiatives(ctx context.Context, in InitiativesInput) (*InitiativesOutput, error) {
	prompt := fmt.Sprintf(initiativesPrompt, in.Strengths, in.Weaknesses, in.Opportunities, in.Threats)
	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"prioritizedInitiatives": {
					Type:  genai.TypeArray,
					Items: &genai.Schema{Type: genai.TypeString},
				},
				"reasoning": {Type: genai.TypeString},
			},
			Required: []string{"prioritizedInitiatives", "reasoning"},
		},
	}
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), config)
	if err != nil {
		return nil, fmt.Errorf("prioritize initiatives: %w", err)
	}
	var out InitiativesOutput
	if err := json.Unmarshal([]byte(resp.Text()), &out); err != nil {
		return nil, fmt.Errorf("prioritize initiatives: malformed model response: %w", err)
	}
	if len(out.PrioritizedInitiatives) == 0 {
		return nil, fmt.Errorf("prioritize initiatives: model returned no initiatives")
	}
	return &out, nil
}

const kpisPrompt = `You are an expert in defining Key Performance Indicators (KPIs). Given the following objectives for 2026, suggest a list of relevant KPIs that can be used to track progress and success.

Objectives: %s

Suggested KPIs:`

// SuggestKPIs returns KPI suggestions for the given objectives text.
func (c *Client) SuggestKPIs(ctx context.Context, objectives string) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(fmt.Sprintf(kpisPrompt, objectives)), nil)
	if err != nil {
		return "", fmt.Errorf("suggest kpis: %w", err)
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("suggest kpis: empty model response")
	}
	return text, nil
}
