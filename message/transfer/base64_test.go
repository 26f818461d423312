package transfer_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zostay/go-email-compose/message/transfer"
)

func TestBase64Encoder_WrapsWithCRLF(t *testing.T) {
	t.Parallel()

	w := &bytes.Buffer{}
	enc := transfer.NewBase64Encoder(w)
	_, err := enc.Write(bytes.Repeat([]byte("a"), 100))
	assert.NoError(t, err)
	assert.NoError(t, enc.Close())

	out := w.String()
	assert.Contains(t, out, "\r\n")
	for _, line := range strings.Split(out, "\r\n") {
		assert.LessOrEqual(t, len(line), 76)
	}
}

func TestBase64Decoder_RoundTrip(t *testing.T) {
	t.Parallel()

	w := &bytes.Buffer{}
	enc := transfer.NewBase64Encoder(w)
	in := []byte("round trip this please")
	_, err := enc.Write(in)
	assert.NoError(t, err)
	assert.NoError(t, enc.Close())

	dec := transfer.NewBase64Decoder(bytes.NewReader(w.Bytes()))
	out, err := io.ReadAll(dec)
	assert.NoError(t, err)
	assert.Equal(t, in, out)
}
