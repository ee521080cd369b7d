// Package insight translates the transaction collection into a request
// to an OpenAI-compatible text-generation service and parses the
// response into AIInsight records. The wire schema of the remote model
// is not part of the application contract; everything behind
// FinancialInsights is defensive.
package insight

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"zenwallet/internal/core"
	applog "zenwallet/internal/log"

	openai "github.com/sashabaranov/go-openai"
)

// Config holds the explicit knobs for the remote call. There is no
// retry and no caching of prior results; Timeout is the only
// failure-handling configuration.
type Config struct {
	APIKey  string
	BaseURL string // empty = api.openai.com
	Model   string
	Timeout time.Duration
}

type Client struct {
	api     *openai.Client
	model   string
	timeout time.Duration
	logger  *applog.Logger
}

// maxPromptTransactions caps how many records are rendered into the
// prompt; the most recent ones carry the signal.
const maxPromptTransactions = 200

var ErrEmptyResponse = errors.New("insight service returned empty response")

func New(cfg Config, logger *applog.Logger) *Client {
	apiCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		apiCfg.BaseURL = cfg.BaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if logger == nil {
		logger = applog.New(applog.DefaultConfig())
	}
	return &Client{
		api:     openai.NewClientWithConfig(apiCfg),
		model:   cfg.Model,
		timeout: timeout,
		logger:  logger.WithComponent(applog.ComponentInsight),
	}
}

// FinancialInsights sends the transaction collection to the model and
// returns the parsed insights. Callers own the degradation contract:
// any error here becomes an empty list at the view boundary.
func (c *Client) FinancialInsights(ctx context.Context, txs []core.Transaction) ([]core.AIInsight, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0.4,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildPrompt(txs)},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("insight completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, ErrEmptyResponse
	}

	insights, err := parseInsights(resp.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}
	c.logger.DebugContext(ctx, "Insights received",
		applog.FieldModel, c.model,
		applog.FieldCount, len(insights))
	return insights, nil
}

const systemPrompt = `You are a personal finance assistant. You receive a list of income and expense transactions and reply with short, actionable observations about spending habits.

Reply with minified JSON only, no markdown, matching:
{"insights":[{"title":string,"content":string,"severity":"info"|"warning"|"positive"}]}

Rules:
- severity MUST be exactly one of: info, warning, positive. Never invent other values.
- 2 to 4 insights, each content under 50 words.
- Base every claim on the provided data; never invent transactions.`

// buildPrompt renders a compact fixed-width view of the collection.
// Amounts are decimal strings so the model never sees cents.
func buildPrompt(txs []core.Transaction) string {
	if len(txs) == 0 {
		return "The user has no transactions yet. Suggest how to get started with tracking."
	}
	start := 0
	if len(txs) > maxPromptTransactions {
		start = len(txs) - maxPromptTransactions
	}
	var b strings.Builder
	b.WriteString("Transactions (date type category amount description):\n")
	for _, t := range txs[start:] {
		fmt.Fprintf(&b, "%s %s %s %s %s\n",
			t.Date.ISO(), t.Type, t.Category,
			core.FormatUSD(t.Amount), t.Description)
	}
	return b.String()
}

type wireInsight struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Severity string `json:"severity"`
}

// parseInsights decodes the model output. Fenced output is tolerated,
// unknown severities are coerced to info, and entries missing title or
// content are dropped.
func parseInsights(content string) ([]core.AIInsight, error) {
	content = stripFences(content)
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyResponse
	}

	var payload struct {
		Insights []wireInsight `json:"insights"`
	}
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		// Some models reply with a bare array despite instructions.
		var bare []wireInsight
		if err2 := json.Unmarshal([]byte(content), &bare); err2 != nil {
			return nil, fmt.Errorf("decode insight response: %w", err)
		}
		payload.Insights = bare
	}

	out := make([]core.AIInsight, 0, len(payload.Insights))
	for _, w := range payload.Insights {
		title := strings.TrimSpace(w.Title)
		body := strings.TrimSpace(w.Content)
		if title == "" || body == "" {
			continue
		}
		sev := core.InsightSeverity(strings.ToLower(strings.TrimSpace(w.Severity)))
		if !sev.Valid() {
			sev = core.SeverityInfo
		}
		out = append(out, core.AIInsight{Title: title, Content: body, Severity: sev})
	}
	return out, nil
}

func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
