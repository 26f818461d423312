package field_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zostay/go-email-compose/message/header/field"
)

func TestEncodeText_ascii(t *testing.T) {
	t.Parallel()

	s := field.EncodeText("plain ascii text", "UTF-8")
	assert.Equal(t, "plain ascii text", s)
}

func TestEncodeText_qEncoding(t *testing.T) {
	t.Parallel()

	// mostly-ASCII with a single accented character: Q wins.
	s := field.EncodeText("Café today", "UTF-8")
	assert.True(t, strings.HasPrefix(s, "=?UTF-8?Q?"))
	assert.Contains(t, s, "=C3=A9")
}

func TestEncodeText_bEncoding(t *testing.T) {
	t.Parallel()

	// mostly non-ASCII: B wins.
	s := field.EncodeText("日本語のテキスト", "UTF-8")
	assert.True(t, strings.HasPrefix(s, "=?UTF-8?B?"))
}

func TestEncodeText_longSplitsIntoMultipleWords(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("é", 100)
	s := field.EncodeText(long, "UTF-8")

	words := strings.Split(s, " ")
	assert.Greater(t, len(words), 1)
	for _, w := range words {
		assert.LessOrEqual(t, len(w), 75)
		assert.True(t, strings.HasPrefix(w, "=?UTF-8?"))
		assert.True(t, strings.HasSuffix(w, "?="))
	}
}
