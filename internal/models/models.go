package models

import "time"

// Artifact kinds for ambient city content.
const (
	KindPublicSquare = "public-square"
	KindNewsletter   = "newsletter"
	KindRadio        = "radio"
)

// Kinds returns the artifact kinds in canonical order.
func Kinds() []string {
	return []string{KindPublicSquare, KindNewsletter, KindRadio}
}

// ValidKind reports whether kind is a recognized artifact kind.
func ValidKind(kind string) bool {
	switch kind {
	case KindPublicSquare, KindNewsletter, KindRadio:
		return true
	}
	return false
}

// Content modes chosen at page creation. The mode is fixed for the life of
// the page.
const (
	ModeAIGenerate  = "ai-generate"
	ModeWriteMyself = "write-myself"
)

// Provenance tags. A write-myself page starts at TagPending and transitions
// exactly once to TagUserWritten or TagDetectedAI when classification
// resolves. An ai-generate page is TagAIGenerated from creation and never
// re-evaluated.
const (
	TagAIGenerated = "ai-generated"
	TagPending     = "pending"
	TagUserWritten = "user-written"
	TagDetectedAI  = "detected-ai"
)

type City struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	NameSlug  string    `json:"name_slug"`
	Theme     string    `json:"theme"`
	Vibe      string    `json:"vibe"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Page struct {
	ID             string    `json:"id"`
	CityID         string    `json:"city_id"`
	Title          string    `json:"title"`
	TitleSlug      string    `json:"title_slug"`
	Type           string    `json:"type"`
	ContentMode    string    `json:"content_mode"`
	ContentTag     string    `json:"content_tag"`
	AIConfidence   *float64  `json:"ai_confidence_score"`
	OriginalPrompt *string   `json:"original_prompt"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Artifact is one cached AI generation. Artifacts are append-only: a newer
// generation supersedes an older one by timestamp, nothing is overwritten.
type Artifact struct {
	ID          string    `json:"id"`
	CityID      string    `json:"city_id"`
	Kind        string    `json:"kind"`
	Content     string    `json:"content"`
	GeneratedAt time.Time `json:"generated_at"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// PageSummary is the slice of a page fed into ambient-content prompts.
type PageSummary struct {
	Title   string
	Type    string
	Excerpt string
}
