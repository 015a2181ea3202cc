// Package oracle wraps the external text-generation service. The oracle is a
// black box: we hand it a prompt, require a JSON object back, and persist its
// output as-is. Calls are bounded by a timeout and failures surface to the
// caller untouched so a retry is always safe.
package oracle

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	openai "github.com/sashabaranov/go-openai"

	"bizbalance/internal/config"
	"bizbalance/internal/model"
)

// Oracle generates quest checklists and judges checklist submissions.
type Oracle interface {
	GenerateChecklist(ctx context.Context, vipName string, category model.Category, score int) (*model.Checklist, error)
	EvaluateChecklist(ctx context.Context, vipName string, category model.Category, checklist *model.Checklist, checked []int) (*model.Evaluation, error)
}

// Client is the OpenAI-backed Oracle implementation.
type Client struct {
	config *config.OracleConfig
	client *openai.Client
}

// NewClient creates an oracle client from the given configuration.
func NewClient(cfg *config.OracleConfig) *Client {
	oc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oc.BaseURL = cfg.BaseURL
	}
	return &Client{
		config: cfg,
		client: openai.NewClientWithConfig(oc),
	}
}

// GenerateChecklist asks the oracle for a 5-7 item self-check list for the
// category, framed with the category's canned emotional context.
func (c *Client) GenerateChecklist(ctx context.Context, vipName string, category model.Category, score int) (*model.Checklist, error) {
	system, user := BuildChecklistPrompt(vipName, category, score)

	raw, err := c.generate(ctx, system, user)
	if err != nil {
		return nil, err
	}

	var checklist model.Checklist
	if err := json.Unmarshal(raw, &checklist); err != nil {
		return nil, fmt.Errorf("oracle returned malformed checklist: %w", err)
	}
	if len(checklist.Items) == 0 {
		return nil, fmt.Errorf("oracle returned checklist with no items")
	}
	return &checklist, nil
}

// EvaluateChecklist asks the oracle to judge a submission. The numeric bar
// (MinChecks) is advisory: the verdict in the response is authoritative.
func (c *Client) EvaluateChecklist(ctx context.Context, vipName string, category model.Category, checklist *model.Checklist, checked []int) (*model.Evaluation, error) {
	system, user := BuildEvaluationPrompt(vipName, category, checklist, checked)

	raw, err := c.generate(ctx, system, user)
	if err != nil {
		return nil, err
	}

	var eval model.Evaluation
	if err := json.Unmarshal(raw, &eval); err != nil {
		return nil, fmt.Errorf("oracle returned malformed evaluation: %w", err)
	}
	return &eval, nil
}

func (c *Client) generate(ctx context.Context, systemPrompt, userPrompt string) (json.RawMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout())
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.config.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Temperature: 0.7,
	})
	if err != nil {
		log.Printf("[Oracle] generation failed: %v", err)
		return nil, fmt.Errorf("oracle call: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("oracle returned no choices")
	}

	return json.RawMessage(resp.Choices[0].Message.Content), nil
}
