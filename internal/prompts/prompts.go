// Package prompts holds the reflective questions shown when capturing a
// thought, and the edits the settings screens make to that list.
package prompts

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/sahilm/fuzzy"
)

// DefaultPrompt is shown when the configured list has nothing usable.
const DefaultPrompt = "What's on your mind right now?"

// NewPromptText is the placeholder text of a freshly added prompt.
const NewPromptText = "What are you thinking about today?"

var (
	ErrIndexOutOfRange = errors.New("prompt index out of range")
	ErrEmptyPrompt     = errors.New("prompt cannot be empty")
)

// Defaults returns the built-in prompt list.
func Defaults() []string {
	return []string{
		"What's on your mind right now?",
		"What are you thinking about today?",
		"Share a thought that's important to you right now.",
		"What are you curious about today?",
		"What's something you're currently processing?",
	}
}

// Selector picks prompts at random.
type Selector struct {
	intN func(n int) int
}

// NewSelector returns a Selector backed by math/rand.
func NewSelector() *Selector {
	return &Selector{intN: rand.Intn}
}

// NewSelectorWith returns a Selector that uses intN to pick an index in
// [0, n).
func NewSelectorWith(intN func(n int) int) *Selector {
	return &Selector{intN: intN}
}

// Choose returns one of the non-blank prompts in list, uniformly at random.
// It returns DefaultPrompt when there are none.
func (s *Selector) Choose(list []string) string {
	usable := make([]string, 0, len(list))
	for _, p := range list {
		if strings.TrimSpace(p) != "" {
			usable = append(usable, p)
		}
	}
	if len(usable) == 0 {
		return DefaultPrompt
	}
	return usable[s.intN(len(usable))]
}

// Add appends prompt to list. A blank prompt appends NewPromptText, the way
// the "Add New Prompt" button does.
func Add(list []string, prompt string) []string {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		prompt = NewPromptText
	}
	return append(append([]string{}, list...), prompt)
}

// Set replaces the prompt at index.
func Set(list []string, index int, prompt string) ([]string, error) {
	if index < 0 || index >= len(list) {
		return nil, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index+1)
	}
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return nil, ErrEmptyPrompt
	}
	updated := append([]string{}, list...)
	updated[index] = prompt
	return updated, nil
}

// Remove deletes the prompt at index.
func Remove(list []string, index int) ([]string, error) {
	if index < 0 || index >= len(list) {
		return nil, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index+1)
	}
	updated := make([]string, 0, len(list)-1)
	updated = append(updated, list[:index]...)
	return append(updated, list[index+1:]...), nil
}

// Find returns the indices of prompts matching query, best match first. An
// empty query matches every prompt in order.
func Find(list []string, query string) []int {
	if query == "" {
		indices := make([]int, len(list))
		for i := range list {
			indices[i] = i
		}
		return indices
	}

	matches := fuzzy.Find(query, list)
	indices := make([]int, len(matches))
	for i, match := range matches {
		indices[i] = match.Index
	}
	return indices
}
