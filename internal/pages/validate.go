package pages

import (
	"fmt"

	"github.com/geocities-ai/backend/internal/models"
)

const (
	minTitleLen = 3
	maxTitleLen = 100

	minPromptLen = 10
	maxPromptLen = 500

	minContentLen = 50
	maxContentLen = 5000
)

func validateCreate(in CreatePageInput) error {
	if err := validateTitle(in.Title); err != nil {
		return err
	}
	if in.Type == "" {
		return &models.ValidationError{Field: "type", Reason: "type is required"}
	}

	switch in.ContentMode {
	case models.ModeAIGenerate:
		return validatePrompt(in.Prompt)
	case models.ModeWriteMyself:
		if len(in.Content) < minContentLen || len(in.Content) > maxContentLen {
			return &models.ValidationError{
				Field:  "content",
				Reason: fmt.Sprintf("content must be between %d and %d characters", minContentLen, maxContentLen),
			}
		}
		return nil
	default:
		return &models.ValidationError{
			Field:  "content_mode",
			Reason: `content mode must be "ai-generate" or "write-myself"`,
		}
	}
}

func validateTitle(title string) error {
	if len(title) < minTitleLen || len(title) > maxTitleLen {
		return &models.ValidationError{
			Field:  "title",
			Reason: fmt.Sprintf("title must be between %d and %d characters", minTitleLen, maxTitleLen),
		}
	}
	return nil
}

func validatePrompt(prompt string) error {
	if len(prompt) < minPromptLen || len(prompt) > maxPromptLen {
		return &models.ValidationError{
			Field:  "prompt",
			Reason: fmt.Sprintf("prompt must be between %d and %d characters", minPromptLen, maxPromptLen),
		}
	}
	return nil
}
