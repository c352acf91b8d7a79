package wealthdesk

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	anthropicoption "github.com/anthropics/anthropic-sdk-go/option"
	"github.com/openai/openai-go"
	openaioption "github.com/openai/openai-go/option"
	"google.golang.org/genai"
)

// Completion providers.
const (
	ProviderGemini    = "gemini"
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

const (
	defaultGeminiModel    = "gemini-2.0-flash"
	defaultOpenAIModel    = "gpt-4o-mini"
	defaultAnthropicModel = "claude-3-5-haiku-latest"

	completionTimeout = 10 * time.Second

	completionTemperature     = 0.7
	completionTopP            = 0.95
	completionTopK            = 40
	completionMaxOutputTokens = 1024
)

// CompletionConfig selects and parameterizes the generation backend.
// An empty APIKey means no backend: the advisor answers from the
// fallback table without attempting any network call. BaseURL overrides
// the provider's default endpoint.
type CompletionConfig struct {
	Provider string
	APIKey   string
	Model    string
	BaseURL  string
}

// CompletionClient issues a single completion request. One attempt, no
// retries: any failure makes the advisor fall back to a canned reply.
type CompletionClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// newCompletionClient builds a client for the configured provider, or
// nil when no API key is configured.
func newCompletionClient(cfg CompletionConfig) (CompletionClient, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, nil
	}
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case ProviderGemini, "":
		return &geminiCompletionClient{cfg: cfg}, nil
	case ProviderOpenAI:
		return &openaiCompletionClient{cfg: cfg}, nil
	case ProviderAnthropic:
		return &anthropicCompletionClient{cfg: cfg}, nil
	default:
		return nil, NewError(ErrCodeValidation, fmt.Sprintf("unknown completion provider %q", cfg.Provider))
	}
}

// stripRolePrefix removes a leading speaker label the model may echo
// back from the conversation-history section of the prompt.
func stripRolePrefix(text string) string {
	trimmed := strings.TrimSpace(text)
	for _, prefix := range []string{SpeakerAssistant + ":", SpeakerUser + ":"} {
		if strings.HasPrefix(trimmed, prefix) {
			return strings.TrimSpace(trimmed[len(prefix):])
		}
	}
	return trimmed
}

type geminiCompletionClient struct {
	cfg CompletionConfig
}

func (g *geminiCompletionClient) Complete(ctx context.Context, prompt string) (string, error) {
	clientConfig := &genai.ClientConfig{
		APIKey:  g.cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if g.cfg.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: g.cfg.BaseURL}
	}
	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return "", fmt.Errorf("create gemini client: %w", err)
	}

	model := g.cfg.Model
	if model == "" {
		model = defaultGeminiModel
	}
	response, err := client.Models.GenerateContent(ctx, model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(completionTemperature)),
		TopP:            genai.Ptr(float32(completionTopP)),
		TopK:            genai.Ptr(float32(completionTopK)),
		MaxOutputTokens: completionMaxOutputTokens,
	})
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}
	text := strings.TrimSpace(response.Text())
	if text == "" {
		return "", fmt.Errorf("gemini response is empty")
	}
	return text, nil
}

type openaiCompletionClient struct {
	cfg CompletionConfig
}

func (o *openaiCompletionClient) Complete(ctx context.Context, prompt string) (string, error) {
	opts := []openaioption.RequestOption{
		openaioption.WithAPIKey(o.cfg.APIKey),
		openaioption.WithMaxRetries(0),
	}
	if o.cfg.BaseURL != "" {
		opts = append(opts, openaioption.WithBaseURL(o.cfg.BaseURL))
	}
	client := openai.NewClient(opts...)

	model := o.cfg.Model
	if model == "" {
		model = defaultOpenAIModel
	}
	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(completionTemperature),
		TopP:        openai.Float(completionTopP),
		MaxTokens:   openai.Int(completionMaxOutputTokens),
	})
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai response has no choices")
	}
	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", fmt.Errorf("openai response is empty")
	}
	return text, nil
}

type anthropicCompletionClient struct {
	cfg CompletionConfig
}

func (a *anthropicCompletionClient) Complete(ctx context.Context, prompt string) (string, error) {
	opts := []anthropicoption.RequestOption{
		anthropicoption.WithAPIKey(a.cfg.APIKey),
		anthropicoption.WithMaxRetries(0),
	}
	if a.cfg.BaseURL != "" {
		opts = append(opts, anthropicoption.WithBaseURL(a.cfg.BaseURL))
	}
	client := anthropic.NewClient(opts...)

	model := a.cfg.Model
	if model == "" {
		model = defaultAnthropicModel
	}
	msg, err := client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(model),
		MaxTokens:   completionMaxOutputTokens,
		Temperature: anthropic.Float(completionTemperature),
		TopP:        anthropic.Float(completionTopP),
		TopK:        anthropic.Int(completionTopK),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic message: %w", err)
	}
	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	text := strings.TrimSpace(b.String())
	if text == "" {
		return "", fmt.Errorf("anthropic response is empty")
	}
	return text, nil
}
