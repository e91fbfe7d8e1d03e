package condition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConditionOnFields(t *testing.T) {
	cond, err := New(`fields[0] == "1"`)
	require.NoError(t, err)

	assert.True(t, cond.Evaluate(Env("1\ta", []string{"1", "a"})))
	assert.False(t, cond.Evaluate(Env("2\tb", []string{"2", "b"})))
}

func TestConditionOnLine(t *testing.T) {
	cond, err := New(`line contains "nine"`)
	require.NoError(t, err)

	assert.True(t, cond.Evaluate(Env("9\tnine", []string{"9", "nine"})))
	assert.False(t, cond.Evaluate(Env("7\tseven", []string{"7", "seven"})))
}

func TestConditionFieldCount(t *testing.T) {
	cond, err := New(`nf >= 2`)
	require.NoError(t, err)

	assert.True(t, cond.Evaluate(Env("a\tb", []string{"a", "b"})))
	assert.False(t, cond.Evaluate(Env("a", []string{"a"})))
}

func TestLikeMatch(t *testing.T) {
	cond, err := New(`like_match(fields[1], "n%e")`)
	require.NoError(t, err)

	assert.True(t, cond.Evaluate(Env("", []string{"9", "nine"})))
	assert.False(t, cond.Evaluate(Env("", []string{"7", "seven"})))
}

func TestLikeMatchPatterns(t *testing.T) {
	tests := []struct {
		text, pattern string
		expected      bool
	}{
		{"hello", "hello", true},
		{"hello", "h%", true},
		{"hello", "%o", true},
		{"hello", "h_llo", true},
		{"hello", "h_o", false},
		{"hello", "%", true},
		{"", "%", true},
		{"", "_", false},
		{"abc", "a%b%c", true},
		{"axbyc", "a%b%c", true},
		{"acb", "a%b%c", false},
	}
	for _, test := range tests {
		assert.Equal(t, test.expected, likeMatch(test.text, test.pattern),
			"like_match(%q, %q)", test.text, test.pattern)
	}
}

func TestInvalidExpression(t *testing.T) {
	_, err := New(`fields[0] ==`)
	assert.Error(t, err)
}

func TestRuntimeErrorIsFalse(t *testing.T) {
	cond, err := New(`fields[10] == "x"`)
	require.NoError(t, err)

	// Index out of range at evaluation time drops the record.
	assert.False(t, cond.Evaluate(Env("a", []string{"a"})))
}
