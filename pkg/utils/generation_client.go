package utils

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// GenerationRequest is one structured-output call to the model. Prompt
// carries the full instructions with inputs already interpolated; Stage
// names the feature issuing the call (used for logging and for test
// doubles, never sent to the model).
type GenerationRequest struct {
	Stage  string
	Prompt string
}

// ToolParam describes one string parameter of an invocable tool.
type ToolParam struct {
	Name        string
	Description string
}

// ToolDefinition is a named function the model may invoke once during a
// GenerateWithTool call. Execute runs the tool and its result is fed
// back to the model before the final answer is produced.
type ToolDefinition struct {
	Name        string
	Description string
	Params      []ToolParam
	Execute     func(ctx context.Context, args map[string]any) (map[string]any, error)
}

type GenerationClientInterface interface {
	// GenerateJSON performs one model round-trip and returns the raw
	// JSON text of the response. Failures are classified as
	// ErrAIConnection, ErrAIRefusal or ErrAIEmptyOutput; schema
	// validation of the payload belongs to the caller.
	GenerateJSON(ctx context.Context, req GenerationRequest) (string, error)

	// GenerateWithTool is GenerateJSON with one invocable tool. At most
	// one tool round is executed; a model that keeps requesting tool
	// calls after that fails with ErrAIEmptyOutput.
	GenerateWithTool(ctx context.Context, req GenerationRequest, tool ToolDefinition) (string, error)

	Close() error
}

// NewGenerationClient Factory function to create either an OpenAI or Gemini
// backed client based on config
func NewGenerationClient(provider, apiKey, model string, timeout time.Duration) (GenerationClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIGenerationClient(apiKey, model, timeout), nil
	case "gemini":
		return NewGeminiGenerationClient(apiKey, model, timeout)
	default:
		return nil, fmt.Errorf("unsupported generation provider: %s", provider)
	}
}

// cleanJSONResponse removes markdown fencing and any leading prose the
// model wrapped around the JSON payload.
func cleanJSONResponse(response string) string {
	response = strings.ReplaceAll(response, "```json", "")
	response = strings.ReplaceAll(response, "```JSON", "")
	response = strings.ReplaceAll(response, "```", "")
	response = strings.TrimSpace(response)

	objStart := strings.Index(response, "{")
	arrStart := strings.Index(response, "[")

	if objStart != -1 && (arrStart == -1 || objStart < arrStart) {
		if end := findMatchingDelim(response, objStart, '{', '}'); end != -1 {
			response = response[objStart : end+1]
		}
	} else if arrStart != -1 {
		if end := findMatchingDelim(response, arrStart, '[', ']'); end != -1 {
			response = response[arrStart : end+1]
		}
	}

	return strings.TrimSpace(response)
}

// findMatchingDelim finds the closing delimiter matching the opener at
// start, skipping over string literals.
func findMatchingDelim(s string, start int, open, close byte) int {
	if start >= len(s) || s[start] != open {
		return -1
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		char := s[i]

		if escaped {
			escaped = false
			continue
		}
		if char == '\\' && inString {
			escaped = true
			continue
		}
		if char == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch char {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}
