package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "simple words", in: "Silicon Valley", want: "silicon-valley"},
		{name: "punctuation dropped", in: "Neon District!", want: "neon-district"},
		{name: "surrounding whitespace", in: "  Art & Design  ", want: "art-design"},
		{name: "collapses runs of separators", in: "a  -  b", want: "a-b"},
		{name: "already a slug", in: "my-page", want: "my-page"},
		{name: "case and punctuation collide", in: "My Page", want: "my-page"},
		{name: "trailing punctuation", in: "my-page!", want: "my-page"},
		{name: "underscores kept", in: "under_score", want: "under_score"},
		{name: "digits kept", in: "Page 42", want: "page-42"},
		{name: "empty input", in: "", want: ""},
		{name: "only punctuation", in: "!!!", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Make(tt.in))
		})
	}
}

func TestMakeCollisions(t *testing.T) {
	// Titles that must be treated as duplicates of each other.
	assert.Equal(t, Make("My Page"), Make("my-page!"))
	assert.Equal(t, Make("Retro  Gaming"), Make("retro gaming"))
}
