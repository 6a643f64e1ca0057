package utils

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	mem "tripplanner/pkg/memcache"
)

// GeminiGenerationClient implements GenerationClientInterface on top of
// Google's Gemini models with JSON-only responses.
type GeminiGenerationClient struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	cache   *mem.ResponseCache
}

func NewGeminiGenerationClient(apiKey, model string, timeout time.Duration) (GenerationClientInterface, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiGenerationClient{
		client:  client,
		model:   model,
		timeout: timeout,
		cache:   mem.NewResponseCache(time.Hour),
	}, nil
}

func (c *GeminiGenerationClient) GenerateJSON(ctx context.Context, req GenerationRequest) (string, error) {
	if req.Prompt == "" {
		return "", ErrInvalidInput
	}

	cacheKey := c.cacheKey(req)
	if cached, ok := c.cache.Get(cacheKey); ok {
		log.Printf("gemini: cache hit for stage %s", req.Stage)
		return cached, nil
	}

	model := c.jsonModel()

	ctxWithTimeout, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := model.GenerateContent(ctxWithTimeout, genai.Text(req.Prompt))
	if err != nil {
		return "", fmt.Errorf("%w: gemini %s call: %v", ErrAIConnection, req.Stage, err)
	}

	content, err := c.extractText(resp, req.Stage)
	if err != nil {
		return "", err
	}

	content = cleanJSONResponse(content)
	if !json.Valid([]byte(content)) {
		return "", fmt.Errorf("%w: gemini %s call returned non-JSON content", ErrSchemaViolation, req.Stage)
	}

	c.cache.Set(cacheKey, content)
	return content, nil
}

func (c *GeminiGenerationClient) GenerateWithTool(ctx context.Context, req GenerationRequest, tool ToolDefinition) (string, error) {
	if req.Prompt == "" {
		return "", ErrInvalidInput
	}

	model := c.jsonModel()
	model.Tools = []*genai.Tool{{
		FunctionDeclarations: []*genai.FunctionDeclaration{declarationForTool(tool)},
	}}

	ctxWithTimeout, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	session := model.StartChat()
	resp, err := session.SendMessage(ctxWithTimeout, genai.Text(req.Prompt))
	if err != nil {
		return "", fmt.Errorf("%w: gemini %s call: %v", ErrAIConnection, req.Stage, err)
	}

	// One tool round at most. A model that keeps asking for the tool
	// after its result was fed back gets cut off.
	if call, ok := pendingFunctionCall(resp); ok {
		log.Printf("gemini: %s requested tool %s", req.Stage, call.Name)

		result, err := tool.Execute(ctxWithTimeout, call.Args)
		if err != nil {
			return "", fmt.Errorf("%w: tool %s: %v", ErrAIConnection, call.Name, err)
		}

		resp, err = session.SendMessage(ctxWithTimeout, genai.FunctionResponse{
			Name:     call.Name,
			Response: result,
		})
		if err != nil {
			return "", fmt.Errorf("%w: gemini %s call: %v", ErrAIConnection, req.Stage, err)
		}
		if _, again := pendingFunctionCall(resp); again {
			return "", fmt.Errorf("%w: gemini %s call exceeded the tool round budget", ErrAIEmptyOutput, req.Stage)
		}
	}

	content, err := c.extractText(resp, req.Stage)
	if err != nil {
		return "", err
	}

	content = cleanJSONResponse(content)
	if !json.Valid([]byte(content)) {
		return "", fmt.Errorf("%w: gemini %s call returned non-JSON content", ErrSchemaViolation, req.Stage)
	}

	return content, nil
}

// jsonModel returns the generative model tuned for deterministic,
// JSON-only output.
func (c *GeminiGenerationClient) jsonModel() *genai.GenerativeModel {
	model := c.client.GenerativeModel(c.model)
	model.ResponseMIMEType = "application/json"
	model.SetTemperature(0.1)
	model.SetTopP(0.5)
	model.SetTopK(20)
	model.SetMaxOutputTokens(5000)
	return model
}

// extractText pulls the text payload out of a response, classifying
// refusals and empty results.
func (c *GeminiGenerationClient) extractText(resp *genai.GenerateContentResponse, stage string) (string, error) {
	if len(resp.Candidates) == 0 {
		if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != genai.BlockReasonUnspecified {
			return "", fmt.Errorf("%w: prompt blocked (%v)", ErrAIRefusal, resp.PromptFeedback.BlockReason)
		}
		return "", fmt.Errorf("%w: gemini %s call produced no candidates", ErrAIEmptyOutput, stage)
	}

	candidate := resp.Candidates[0]
	switch candidate.FinishReason {
	case genai.FinishReasonSafety, genai.FinishReasonRecitation:
		return "", fmt.Errorf("%w: generation stopped (%v)", ErrAIRefusal, candidate.FinishReason)
	}

	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("%w: gemini %s call produced no content", ErrAIEmptyOutput, stage)
	}

	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok && string(text) != "" {
			return string(text), nil
		}
	}

	return "", fmt.Errorf("%w: gemini %s call produced no text part", ErrAIEmptyOutput, stage)
}

func (c *GeminiGenerationClient) cacheKey(req GenerationRequest) string {
	h := sha256.New()
	h.Write([]byte(req.Stage))
	h.Write([]byte{0})
	h.Write([]byte(req.Prompt))
	return fmt.Sprintf("%x", h.Sum(nil))[:16]
}

func (c *GeminiGenerationClient) Close() error {
	return c.client.Close()
}

// declarationForTool maps a neutral tool definition onto the Gemini
// function-calling schema. All tool parameters are strings.
func declarationForTool(tool ToolDefinition) *genai.FunctionDeclaration {
	properties := make(map[string]*genai.Schema, len(tool.Params))
	required := make([]string, 0, len(tool.Params))
	for _, p := range tool.Params {
		properties[p.Name] = &genai.Schema{
			Type:        genai.TypeString,
			Description: p.Description,
		}
		required = append(required, p.Name)
	}

	return &genai.FunctionDeclaration{
		Name:        tool.Name,
		Description: tool.Description,
		Parameters: &genai.Schema{
			Type:       genai.TypeObject,
			Properties: properties,
			Required:   required,
		},
	}
}

// pendingFunctionCall reports the first tool invocation the model asked
// for, if any.
func pendingFunctionCall(resp *genai.GenerateContentResponse) (genai.FunctionCall, bool) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return genai.FunctionCall{}, false
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if call, ok := part.(genai.FunctionCall); ok {
			return call, true
		}
	}
	return genai.FunctionCall{}, false
}
