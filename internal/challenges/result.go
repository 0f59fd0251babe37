package challenges

import (
	"fmt"
	"strings"
)

// Output is a single named output produced by a challenge.
type Output struct {
	Key   string
	Value string
}

// Result holds the outputs of running a particular challenge.
type Result struct {
	// Set is the challenge set this challenge belongs to.
	Set int
	// Challenge is the challenge number within the set.
	Challenge int
	// Description is a short description of the challenge.
	Description string
	// Outputs holds the outputs of the challenge, in the order they were
	// produced.
	Outputs []Output
}

// Get returns the value of the output with the given key.
func (r *Result) Get(key string) (string, bool) {
	for _, output := range r.Outputs {
		if output.Key == key {
			return output.Value, true
		}
	}
	return "", false
}

// Succeeded reports whether the challenge considers itself solved: a
// challenge that emits a "success" output succeeded when that output is
// "true"; any other challenge succeeded by completing.
func (r *Result) Succeeded() bool {
	if value, ok := r.Get("success"); ok {
		return value == "true"
	}
	return true
}

// String renders the result for terminal output.
func (r *Result) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Set %d Challenge %d - %s\n", r.Set, r.Challenge, r.Description)
	for _, output := range r.Outputs {
		fmt.Fprintf(&sb, "\n%s: %s\n", output.Key, output.Value)
	}
	return sb.String()
}

// ResultBuilder builds a Result incrementally.
type ResultBuilder struct {
	result Result
}

// NewResultBuilder creates a new, empty ResultBuilder.
func NewResultBuilder() *ResultBuilder {
	return &ResultBuilder{}
}

// Set records the challenge set number.
func (b *ResultBuilder) Set(set int) *ResultBuilder {
	b.result.Set = set
	return b
}

// Challenge records the challenge number.
func (b *ResultBuilder) Challenge(challenge int) *ResultBuilder {
	b.result.Challenge = challenge
	return b
}

// Description records the challenge description.
func (b *ResultBuilder) Description(description string) *ResultBuilder {
	b.result.Description = description
	return b
}

// Output appends a named output.
func (b *ResultBuilder) Output(key, value string) *ResultBuilder {
	b.result.Outputs = append(b.result.Outputs, Output{Key: key, Value: value})
	return b
}

// Finalize returns the built Result.
func (b *ResultBuilder) Finalize() *Result {
	result := b.result
	return &result
}
