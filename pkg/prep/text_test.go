package prep

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"Hello, World! Test 123", []string{"hello", "world", "test", "123"}},
		{"Hello, World!", []string{"hello", "world"}},
		{"HELLO", []string{"hello"}},
		{"", []string{}},
		{"   ...!!!", []string{}},
		{"a1b2 c3", []string{"a1b2", "c3"}},
		{"snake_case word", []string{"word"}},
		{"naïve café ok", []string{"ok"}},
		{"tab\tand\nnewline", []string{"tab", "and", "newline"}},
		{"it's", []string{"it", "s"}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.in))
		})
	}
}

func TestStripNonAlphanumeric(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello, World!", "Hello World"},
		{"Test!!! 123...", "Test 123"},
		{"Hello! World_123.", "Hello World123"},
		{"", ""},
		{"abc", "abc"},
		{"!!!", ""},
		{"keep   spaces", "keep   spaces"},
		{"tabs\tgone", "tabsgone"},
		{"naïve", "nave"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, StripNonAlphanumeric(tt.in))
		})
	}
}

func TestRemoveStopwords(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		stopwords []string
		want      string
	}{
		{"basic", "this is a test", []string{"is", "a"}, "this test"},
		{"simple", "this is a simple test", []string{"is", "a"}, "this simple test"},
		{"lowercases text", "This IS A Test", []string{"is", "a"}, "this test"},
		{"uppercase stopword never matches", "this is", []string{"IS"}, "this is"},
		{"collapses whitespace", "  a   b\tc ", nil, "a b c"},
		{"information separators split", "A\x1cB\x1fC the", []string{"the"}, "a b c"},
		{"unicode spaces split", "a\u00a0b\u2003c\u2028d", []string{"c"}, "a b d"},
		{"everything removed", "a a a", []string{"a"}, ""},
		{"empty", "", []string{"a"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RemoveStopwords(tt.text, tt.stopwords))
		})
	}
}
