package reply

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fixed removes the random prefix choice so assertions are stable.
func fixed() *KeywordGenerator {
	return &KeywordGenerator{intn: func(int) int { return 0 }}
}

func TestGenerate_KeywordBranches(t *testing.T) {
	t.Parallel()

	g := fixed()

	cases := []struct {
		message string
		want    string
	}{
		{"I feel anxious about exams", "grounding"},
		{"so nervous lately", "grounding"},
		{"everything feels hopeless", "crisis hotline"},
		{"I am sad all the time", "crisis hotline"},
		{"can't sleep at night", "sleep cycle"},
		{"insomnia again", "sleep cycle"},
		{"too much stress at work", "tiny steps"},
		{"completely overwhelmed", "tiny steps"},
	}

	for _, tc := range cases {
		got := g.Generate(tc.message)
		assert.Contains(t, got, tc.want, "message %q", tc.message)
	}
}

func TestGenerate_Fallback(t *testing.T) {
	t.Parallel()

	got := fixed().Generate("hello there")
	assert.Contains(t, got, "tell me a bit more")
}

func TestGenerate_CaseInsensitive(t *testing.T) {
	t.Parallel()

	g := fixed()
	assert.Equal(t, g.Generate("ANXIETY"), g.Generate("anxiety"))
}

func TestGenerate_AlwaysNonEmptyWithSuffix(t *testing.T) {
	t.Parallel()

	g := NewKeywordGenerator()
	for _, m := range []string{"", "x", "I feel anxious"} {
		got := g.Generate(m)
		assert.NotEmpty(t, got)
		assert.True(t, strings.HasSuffix(got, "counselling resources."), "reply %q", got)
	}
}

func TestGenerate_EmpathyPrefix(t *testing.T) {
	t.Parallel()

	got := NewKeywordGenerator().Generate("hi")
	matched := false
	for _, p := range empathy {
		if strings.HasPrefix(got, p) {
			matched = true
			break
		}
	}
	assert.True(t, matched, "reply must open with an empathy line: %q", got)
}
