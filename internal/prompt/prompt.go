// Package prompt assembles model prompts from city context. All functions
// are pure: same inputs, same prompt, no side effects.
package prompt

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/geocities-ai/backend/internal/models"
)

const publicSquareColdStart = `You are the events coordinator for %s, a %s-themed city in the GeoCities AI platform.

The city has just been founded! Write a brief 2-3 sentence announcement about today's "grand opening" event, welcoming the first residents and describing what exciting activities and opportunities await in this new %s-themed neighborhood.`

const publicSquareSteadyState = `You are the events coordinator for %s, a %s-themed city in the GeoCities AI platform.

Recent pages created:
%s

Write a brief 2-3 sentence announcement about today's events and happenings in the public square. This could include:
- Community gatherings or meetups related to recent content
- Celebrations of new pages or milestones
- Daily activities or workshops happening in the city
- Information about what's trending today

Make it feel like a real daily event announcement. Reference specific pages if relevant. Be creative and enthusiastic!`

const newsletterColdStart = `You are an AI journalist writing today's top news for %s, a %s-themed city in the GeoCities AI platform.

This is a brand new city with no pages yet! Write 3-4 short news stories (in paragraph form) covering:
1. **BREAKING:** The grand opening of %s
2. **COMMUNITY:** What kind of residents and content this %s-themed neighborhood hopes to attract
3. **FORECAST:** Predictions for what exciting developments might happen soon

Write in a news-style format with a playful GeoCities twist. Make each story feel like a real news headline come to life!`

const newsletterSteadyState = `You are an AI journalist writing today's top news stories for %s, a %s-themed city in the GeoCities AI platform with %d pages of content.

Recent pages in the city:
%s

Write 3-4 short news stories (in paragraph form) covering today's top happenings:
1. **HEADLINE STORY:** Feature the most interesting or recent page with specific details
2. **TRENDING:** What's popular or emerging as a trend in the community
3. **COMMUNITY SPOTLIGHT:** Highlight another notable page or creator
4. **WHAT'S NEXT:** Tease what might be coming or what the city needs

Write in a news-style format. Reference specific page titles and content. Make it feel like real daily news coverage with a playful GeoCities vibe!`

const radioTemplate = `You are creating the radio station for %s, a city with a %s vibe in the GeoCities AI platform.

Describe the radio station in a creative, atmospheric way. Include:
1. The genre/style of music that plays
2. Mood descriptors that capture the station's atmosphere
3. Three fictional song titles that would play on this station (make them creative and fitting to the %s vibe)

Write it as an immersive description that makes people feel like they're tuning into this unique station. Be evocative and capture the essence of the %s atmosphere.`

const pageContentTemplate = `You are creating content for a page in GeoCities AI.

City Context:
- City Name: %s
- Theme: %s
- Vibe: %s

Page Details:
- Title: %s
- Type: %s
- User's Request: %s

Create engaging, creative content for this page that:
1. Matches the %s vibe of %s
2. Fits the %s theme
3. Is appropriate for a %s page
4. Fulfills the user's request: "%s"
5. Is 2-4 paragraphs long
6. Feels authentic to the GeoCities aesthetic (nostalgic, creative, personal)

Write the content now:`

const detectionTemplate = `Analyze the following text and determine if it was likely generated by an AI language model.

Consider these indicators:
1. Overly formal or structured language
2. Lack of personal anecdotes or specific details
3. Generic or templated phrasing
4. Perfect grammar and punctuation
5. Balanced, neutral tone without strong opinions
6. Repetitive sentence structures
7. Lack of colloquialisms or informal language
8. Overly comprehensive or encyclopedic style

Text to analyze:
"""
%s
"""

Respond with ONLY a JSON object in this exact format (no other text):
{
  "isAiGenerated": true,
  "confidence": 0.85,
  "reasoning": "brief explanation"
}`

// PublicSquare builds the daily announcement prompt. A city without pages
// gets a grand-opening framing; otherwise recent page titles are named.
func PublicSquare(city *models.City, recent []models.PageSummary) string {
	if len(recent) == 0 {
		return fmt.Sprintf(publicSquareColdStart, city.Name, city.Theme, city.Theme)
	}

	lines := make([]string, 0, len(recent))
	for _, p := range recent {
		lines = append(lines, fmt.Sprintf("- %q (%s)", p.Title, p.Type))
	}
	return fmt.Sprintf(publicSquareSteadyState, city.Name, city.Theme, strings.Join(lines, "\n"))
}

// Newsletter builds the daily news prompt. The first issue covers the grand
// opening; later issues reference specific pages and excerpts.
func Newsletter(city *models.City, recent []models.PageSummary) string {
	if len(recent) == 0 {
		return fmt.Sprintf(newsletterColdStart, city.Name, city.Theme, city.Name, city.Theme)
	}

	lines := make([]string, 0, len(recent))
	for _, p := range recent {
		excerpt := truncateRunes(p.Excerpt, 100)
		lines = append(lines, fmt.Sprintf("- **%s** (%s): %s...", p.Title, p.Type, excerpt))
	}
	return fmt.Sprintf(newsletterSteadyState, city.Name, city.Theme, len(recent), strings.Join(lines, "\n"))
}

// truncateRunes cuts s to at most n runes, never splitting a multi-byte
// character.
func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}

// Radio builds the station-description prompt from the city vibe alone.
func Radio(city *models.City) string {
	return fmt.Sprintf(radioTemplate, city.Name, city.Vibe, city.Vibe, city.Vibe)
}

// ForKind dispatches to the builder for an ambient artifact kind.
func ForKind(kind string, city *models.City, recent []models.PageSummary) string {
	switch kind {
	case models.KindNewsletter:
		return Newsletter(city, recent)
	case models.KindRadio:
		return Radio(city)
	default:
		return PublicSquare(city, recent)
	}
}

// PageContent builds the prompt for generating a page body from a user
// instruction, embedding the city theme and vibe.
func PageContent(city *models.City, title, pageType, instruction string) string {
	return fmt.Sprintf(pageContentTemplate,
		city.Name, city.Theme, city.Vibe,
		title, pageType, instruction,
		city.Vibe, city.Name, city.Theme, pageType, instruction,
	)
}

// Detection builds the AI-authorship analysis prompt with the fixed rubric.
func Detection(content string) string {
	return fmt.Sprintf(detectionTemplate, content)
}
