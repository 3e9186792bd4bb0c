// Package chatbot produces the canned garden assistant replies.
package chatbot

import (
	"math/rand/v2"
	"strings"
)

const Greeting = "Hi! How can I help your garden grow today?"

// Rule maps any of its keywords to a fixed reply
type Rule struct {
	Keywords []string
	Reply    string
}

// Rules are checked in order; the first rule with a matching keyword wins.
var Rules = []Rule{
	{
		Keywords: []string{"soil"},
		Reply:    "Soil type affects which plants will thrive. I recommend loamy soil for most gardens.",
	},
	{
		Keywords: []string{"water"},
		Reply:    "Watering deeply but less often encourages roots to grow stronger.",
	},
	{
		Keywords: []string{"disease", "sick"},
		Reply:    "Look for yellowing leaves or spots. I can help identify common plant diseases.",
	},
	{
		Keywords: []string{"plant"},
		Reply:    "I can help identify plants or suggest care tips. What plant are you interested in?",
	},
}

// Defaults is the pool for messages no rule matches
var Defaults = []string{
	"I'm here to help your garden grow! Ask me anything.",
	"Did you know tomatoes were once considered poisonous?",
	"Remember to water plants early in the morning or late evening.",
	"Companion planting can protect your garden naturally!",
	"Leaf color changes might indicate nutrient deficiencies.",
}

type Bot struct {
	rng *rand.Rand
}

// New returns a bot drawing default replies from src. A nil src is unseeded.
func New(src rand.Source) *Bot {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &Bot{rng: rand.New(src)}
}

// NewSeeded returns a deterministic bot for a non-zero seed and an unseeded one for zero
func NewSeeded(seed int64) *Bot {
	if seed == 0 {
		return New(nil)
	}
	return New(rand.NewPCG(uint64(seed), uint64(seed)))
}

// Match returns the reply of the first rule matching text
func Match(text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, r := range Rules {
		for _, kw := range r.Keywords {
			if strings.Contains(lower, kw) {
				return r.Reply, true
			}
		}
	}
	return "", false
}

// Reply answers a user message. It never fails.
func (b *Bot) Reply(text string) string {
	if reply, ok := Match(text); ok {
		return reply
	}
	return Defaults[b.rng.IntN(len(Defaults))]
}
