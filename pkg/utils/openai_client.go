package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIGenerationClient implements GenerationClientInterface on top of
// the OpenAI chat completion API.
type OpenAIGenerationClient struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

func NewOpenAIGenerationClient(apiKey, model string, timeout time.Duration) GenerationClientInterface {
	if model == "" {
		model = openai.GPT4oMini
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &OpenAIGenerationClient{
		client:  openai.NewClient(apiKey),
		model:   model,
		timeout: timeout,
	}
}

func (c *OpenAIGenerationClient) GenerateJSON(ctx context.Context, req GenerationRequest) (string, error) {
	if req.Prompt == "" {
		return "", ErrInvalidInput
	}

	ctxWithTimeout, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctxWithTimeout, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0.1,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: req.Prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: openai %s call: %v", ErrAIConnection, req.Stage, err)
	}

	return c.extractContent(resp, req.Stage)
}

func (c *OpenAIGenerationClient) GenerateWithTool(ctx context.Context, req GenerationRequest, tool ToolDefinition) (string, error) {
	if req.Prompt == "" {
		return "", ErrInvalidInput
	}

	ctxWithTimeout, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleUser, Content: req.Prompt},
	}
	tools := []openai.Tool{{
		Type: openai.ToolTypeFunction,
		Function: &openai.FunctionDefinition{
			Name:        tool.Name,
			Description: tool.Description,
			Parameters:  parametersForTool(tool),
		},
	}}

	resp, err := c.client.CreateChatCompletion(ctxWithTimeout, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0.1,
		Messages:    messages,
		Tools:       tools,
	})
	if err != nil {
		return "", fmt.Errorf("%w: openai %s call: %v", ErrAIConnection, req.Stage, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: openai %s call produced no choices", ErrAIEmptyOutput, req.Stage)
	}

	// One tool round at most, mirroring the Gemini client.
	message := resp.Choices[0].Message
	if len(message.ToolCalls) > 0 {
		call := message.ToolCalls[0]
		log.Printf("openai: %s requested tool %s", req.Stage, call.Function.Name)

		var args map[string]any
		if err := json.Unmarshal([]byte(call.Function.Arguments), &args); err != nil {
			return "", fmt.Errorf("%w: tool arguments: %v", ErrSchemaViolation, err)
		}

		result, err := tool.Execute(ctxWithTimeout, args)
		if err != nil {
			return "", fmt.Errorf("%w: tool %s: %v", ErrAIConnection, call.Function.Name, err)
		}
		resultJSON, err := json.Marshal(result)
		if err != nil {
			return "", fmt.Errorf("%w: tool result: %v", ErrSchemaViolation, err)
		}

		messages = append(messages, message, openai.ChatCompletionMessage{
			Role:       openai.ChatMessageRoleTool,
			ToolCallID: call.ID,
			Content:    string(resultJSON),
		})

		resp, err = c.client.CreateChatCompletion(ctxWithTimeout, openai.ChatCompletionRequest{
			Model:       c.model,
			Temperature: 0.1,
			Messages:    messages,
		})
		if err != nil {
			return "", fmt.Errorf("%w: openai %s call: %v", ErrAIConnection, req.Stage, err)
		}
	}

	return c.extractContent(resp, req.Stage)
}

func (c *OpenAIGenerationClient) extractContent(resp openai.ChatCompletionResponse, stage string) (string, error) {
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: openai %s call produced no choices", ErrAIEmptyOutput, stage)
	}

	choice := resp.Choices[0]
	if choice.FinishReason == openai.FinishReasonContentFilter {
		return "", fmt.Errorf("%w: content filtered", ErrAIRefusal)
	}
	if choice.Message.Content == "" {
		return "", fmt.Errorf("%w: openai %s call produced no content", ErrAIEmptyOutput, stage)
	}

	content := cleanJSONResponse(choice.Message.Content)
	if !json.Valid([]byte(content)) {
		return "", fmt.Errorf("%w: openai %s call returned non-JSON content", ErrSchemaViolation, stage)
	}

	return content, nil
}

func (c *OpenAIGenerationClient) Close() error { return nil }

// parametersForTool builds the JSON-schema object the completion API
// expects for function parameters. All tool parameters are strings.
func parametersForTool(tool ToolDefinition) map[string]any {
	properties := make(map[string]any, len(tool.Params))
	required := make([]string, 0, len(tool.Params))
	for _, p := range tool.Params {
		properties[p.Name] = map[string]any{
			"type":        "string",
			"description": p.Description,
		}
		required = append(required, p.Name)
	}
	return map[string]any{
		"type":       "object",
		"properties": properties,
		"required":   required,
	}
}
