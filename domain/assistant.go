package domain

import (
	"errors"
)

var (
	MessageSuccessParseText    = "text parsed successfully"
	MessageSuccessAnalyzeImage = "image analyzed successfully"
	MessageSuccessChatReply    = "chat reply generated successfully"
	MessageMissingAPIKey       = "assistant API key not configured"

	MessageFailedParseText    = "failed to parse text"
	MessageFailedAnalyzeImage = "failed to analyze image"
	MessageFailedChatReply    = "failed to generate chat reply"

	// ErrMissingAPIKey is raised before any network attempt when neither a
	// user-supplied key nor the configured default is available. Callers
	// must surface it as a "configure your key" prompt, not a generic
	// failure.
	ErrMissingAPIKey = errors.New("assistant API key not configured")

	// ErrAssistantFailed covers network, HTTP and response-parse failures.
	ErrAssistantFailed = errors.New("assistant request failed")

	ErrEmptyText  = errors.New("text must not be empty")
	ErrEmptyImage = errors.New("image must not be empty")
)

const (
	DateSourceOCR       = "ocr"
	DateSourceEstimated = "estimated"
	DateSourceNone      = "none"
)

type (
	ParseTextRequest struct {
		Text string `json:"text" validate:"required"`
	}

	// ParsedFoodItem is the assistant's reading of a free-text utterance.
	ParsedFoodItem struct {
		Name       string `json:"name"`
		ExpiryDate string `json:"expiry_date"` // YYYY-MM-DD, may be empty
		Location   string `json:"location"`
	}

	// ImageAnalysis is the assistant's reading of a grocery-item photo.
	// DateSource records whether the expiry date was read off the
	// packaging or estimated from typical shelf life.
	ImageAnalysis struct {
		Name       string `json:"name"`
		ExpiryDate string `json:"expiry_date"`
		DateSource string `json:"date_source"` // "ocr", "estimated", "none"
	}

	ChatMessage struct {
		Sender string `json:"sender"`
		Text   string `json:"text"`
	}

	ChatRequest struct {
		History []ChatMessage `json:"history"`
		Message string        `json:"message" validate:"required"`
	}

	ChatResponse struct {
		Reply string `json:"reply"`
	}
)
