package classify

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geocities-ai/backend/internal/models"
)

type fakeModel struct {
	response string
	err      error
	prompts  []string
}

func (f *fakeModel) Generate(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func TestClassifyThreshold(t *testing.T) {
	tests := []struct {
		name       string
		confidence string
		wantTag    string
		wantScore  float64
	}{
		{name: "high confidence is detected-ai", confidence: "0.85", wantTag: models.TagDetectedAI, wantScore: 0.85},
		{name: "low confidence is user-written", confidence: "0.4", wantTag: models.TagUserWritten, wantScore: 0.4},
		{name: "exactly at threshold stays user-written", confidence: "0.7", wantTag: models.TagUserWritten, wantScore: 0.7},
		{name: "just above threshold is detected-ai", confidence: "0.71", wantTag: models.TagDetectedAI, wantScore: 0.71},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model := &fakeModel{response: `{"isAiGenerated": true, "confidence": ` + tt.confidence + `, "reasoning": "structured phrasing"}`}
			detector := NewDetector(model)

			verdict, err := detector.Classify(context.Background(), "submitted text")
			require.NoError(t, err)

			assert.Equal(t, tt.wantTag, verdict.Tag)
			require.NotNil(t, verdict.Confidence)
			assert.Equal(t, tt.wantScore, *verdict.Confidence)
			assert.Equal(t, "structured phrasing", verdict.Rationale)
		})
	}
}

func TestClassifySendsContent(t *testing.T) {
	model := &fakeModel{response: `{"isAiGenerated": false, "confidence": 0.1, "reasoning": "personal detail"}`}
	detector := NewDetector(model)

	_, err := detector.Classify(context.Background(), "my weekend at the lake")
	require.NoError(t, err)

	require.Len(t, model.prompts, 1)
	assert.Contains(t, model.prompts[0], "my weekend at the lake")
}

func TestClassifyToleratesSurroundingProse(t *testing.T) {
	model := &fakeModel{response: "Here is my analysis:\n```json\n{\"isAiGenerated\": true, \"confidence\": 0.9, \"reasoning\": \"generic\"}\n```\nHope that helps."}
	detector := NewDetector(model)

	verdict, err := detector.Classify(context.Background(), "text")
	require.NoError(t, err)
	assert.Equal(t, models.TagDetectedAI, verdict.Tag)
}

func TestClassifyModelError(t *testing.T) {
	detector := NewDetector(&fakeModel{err: errors.New("network down")})

	_, err := detector.Classify(context.Background(), "text")
	assert.Error(t, err)
}

func TestClassifyMalformedResponse(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{name: "no json at all", response: "I think this is AI generated."},
		{name: "unbalanced braces", response: "verdict: {"},
		{name: "invalid json", response: `{"confidence": not-a-number}`},
		{name: "confidence above one", response: `{"isAiGenerated": true, "confidence": 12, "reasoning": "x"}`},
		{name: "negative confidence", response: `{"isAiGenerated": false, "confidence": -0.2, "reasoning": "x"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			detector := NewDetector(&fakeModel{response: tt.response})

			_, err := detector.Classify(context.Background(), "text")
			assert.Error(t, err)
		})
	}
}

func TestDefaultVerdict(t *testing.T) {
	verdict := DefaultVerdict()

	assert.Equal(t, models.TagUserWritten, verdict.Tag)
	assert.Nil(t, verdict.Confidence)
}
