package shared_test

import (
	"salon/shared"
	"testing"
)

func TestBuildCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		parts    []string
		expected string
	}{
		{
			name:     "prefix only",
			prefix:   "salon:services",
			expected: "salon:services",
		},
		{
			name:     "prefix with one part",
			prefix:   "salon:service",
			parts:    []string{"3"},
			expected: "salon:service:3",
		},
		{
			name:     "prefix with many parts",
			prefix:   "limiter",
			parts:    []string{"10.0.0.1", "curl/8.0"},
			expected: "limiter:10.0.0.1:curl/8.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shared.BuildCacheKey(tt.prefix, tt.parts...); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestParseID(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{name: "plain integer", input: "1", expected: 1},
		{name: "large integer", input: "99", expected: 99},
		{name: "surrounding spaces", input: " 7 ", expected: 7},
		{name: "non numeric", input: "abc", expected: 0},
		{name: "fractional", input: "1.5", expected: 0},
		{name: "integral decimal", input: "1.0", expected: 1},
		{name: "exponent", input: "1e1", expected: 10},
		{name: "not a number", input: "NaN", expected: 0},
		{name: "infinity", input: "Inf", expected: 0},
		{name: "zero", input: "0", expected: 0},
		{name: "negative", input: "-4", expected: 0},
		{name: "empty", input: "", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shared.ParseID(tt.input); got != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}
