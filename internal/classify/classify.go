// Package classify decides whether submitted page content was written by a
// human or a language model.
package classify

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/geocities-ai/backend/internal/ai"
	"github.com/geocities-ai/backend/internal/models"
	"github.com/geocities-ai/backend/internal/prompt"
)

// Confidence strictly above this maps to detected-ai; a score exactly at the
// threshold stays user-written. Fixed design constant, not tenant-tunable.
const aiThreshold = 0.7

// Verdict is the provenance decision for a piece of content.
type Verdict struct {
	Tag        string
	Confidence *float64
	Rationale  string
}

// DefaultVerdict is the conservative answer used when classification fails:
// the content stays visible, tagged user-written with no confidence.
func DefaultVerdict() Verdict {
	return Verdict{Tag: models.TagUserWritten, Rationale: "Detection failed"}
}

// Detector classifies content with a language model.
type Detector struct {
	model ai.TextGenerator
}

func NewDetector(model ai.TextGenerator) *Detector {
	return &Detector{model: model}
}

// Classify sends the content through the detection rubric and returns the
// verdict. Any transport, model, or parse failure is returned as an error;
// callers on the asynchronous path downgrade it to DefaultVerdict.
func (d *Detector) Classify(ctx context.Context, content string) (Verdict, error) {
	text, err := d.model.Generate(ctx, prompt.Detection(content))
	if err != nil {
		return Verdict{}, err
	}

	analysis, err := parseAnalysis(text)
	if err != nil {
		return Verdict{}, err
	}

	tag := models.TagUserWritten
	if analysis.Confidence > aiThreshold {
		tag = models.TagDetectedAI
	}

	confidence := analysis.Confidence
	return Verdict{
		Tag:        tag,
		Confidence: &confidence,
		Rationale:  analysis.Reasoning,
	}, nil
}

type analysis struct {
	IsAIGenerated bool    `json:"isAiGenerated"`
	Confidence    float64 `json:"confidence"`
	Reasoning     string  `json:"reasoning"`
}

// parseAnalysis extracts the JSON verdict from the model response, tolerating
// prose or code fences around the object.
func parseAnalysis(text string) (*analysis, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end <= start {
		return nil, fmt.Errorf("invalid response format from AI detection")
	}

	var a analysis
	if err := json.Unmarshal([]byte(text[start:end+1]), &a); err != nil {
		return nil, fmt.Errorf("parsing detection verdict: %w", err)
	}

	if a.Confidence < 0 || a.Confidence > 1 {
		return nil, fmt.Errorf("detection confidence %v out of range", a.Confidence)
	}

	return &a, nil
}
