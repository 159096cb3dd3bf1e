// Package reply holds the canned supportive-reply engine. It is a pure
// string-to-string rule table behind a one-method interface so the rest of
// the system can treat it as a replaceable black box.
package reply

import (
	"math/rand"
	"strings"
)

// Generator maps a user message to a supportive reply.
type Generator interface {
	Generate(message string) string
}

var empathy = []string{
	"I'm sorry you're feeling this way. ",
	"That sounds really tough — thank you for sharing. ",
	"I hear you. It can be overwhelming. ",
}

// rule pairs keyword stems with the advice appended when any stem matches.
// Stems are matched as substrings of the lower-cased message, so "anx"
// covers anxious, anxiety and so on. First match wins.
type rule struct {
	stems  []string
	advice string
}

var rules = []rule{
	{
		stems:  []string{"anx", "nerv", "worri"},
		advice: "It sounds like anxiety is coming up. Try grounding: name 5 things you can see, 4 you can touch, 3 you can hear, 2 you can smell, and 1 you can taste. Small steps can help.",
	},
	{
		stems:  []string{"depress", "sad", "hopeless"},
		advice: "I'm sorry you're feeling low. Have you tried connecting with someone you trust about this? If things feel very heavy, reaching out to a professional or a crisis hotline can really help.",
	},
	{
		stems:  []string{"sleep", "insomnia"},
		advice: "Sleep issues are common during stress. A short wind-down routine (no screens, light reading, calm breathing) can help reset your sleep cycle.",
	},
	{
		stems:  []string{"stres", "overwhelm"},
		advice: "When stress piles up, try breaking tasks into tiny steps and prioritizing. Even tiny progress is progress.",
	},
}

const fallback = "Can you tell me a bit more about what's happening? If you're in immediate danger or feel you might harm yourself, please contact your local emergency services or a crisis helpline right away."

const suffix = " If you'd like, I can suggest grounding exercises, short journaling prompts, or NGOs/university counselling resources."

// KeywordGenerator implements Generator with the static rule table above.
type KeywordGenerator struct {
	intn func(n int) int
}

func NewKeywordGenerator() *KeywordGenerator {
	return &KeywordGenerator{intn: rand.Intn}
}

func (g *KeywordGenerator) Generate(message string) string {
	m := strings.ToLower(message)

	var b strings.Builder
	b.WriteString(empathy[g.intn(len(empathy))])

	advice := fallback
	for _, r := range rules {
		if r.matches(m) {
			advice = r.advice
			break
		}
	}
	b.WriteString(advice)
	b.WriteString(suffix)
	return b.String()
}

func (r rule) matches(m string) bool {
	for _, s := range r.stems {
		if strings.Contains(m, s) {
			return true
		}
	}
	return false
}

var _ Generator = (*KeywordGenerator)(nil)
