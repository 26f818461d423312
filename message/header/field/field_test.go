package field_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zostay/go-email-compose/message/header/field"
)

func TestNew(t *testing.T) {
	t.Parallel()

	f := field.New("Subject", "testing")

	assert.Equal(t, "Subject: testing", f.String())
	assert.Equal(t, []byte("Subject: testing"), f.Bytes())
	assert.Equal(t, "Subject", f.Name())
	assert.Equal(t, "testing", f.Body())

	f.SetName("X-Subject")
	assert.Equal(t, "X-Subject: testing", f.String())
	assert.Equal(t, "X-Subject", f.Name())

	f.SetBody("foo bar baz")
	assert.Equal(t, "X-Subject: foo bar baz", f.String())
	assert.Equal(t, "foo bar baz", f.Body())
}

func TestField_SetRaw(t *testing.T) {
	t.Parallel()

	f := field.New("Subject", "testing")
	f.SetRaw([]byte("sUBJECT: TESTING"))
	assert.Equal(t, "sUBJECT: TESTING", f.String())
	assert.Equal(t, []byte("sUBJECT: TESTING\r\n"), f.Render(field.DefaultFoldEncoding))

	// setting the name or body again clears the raw override
	f.SetName("Subject")
	assert.Equal(t, "Subject: testing", f.String())
}

func TestField_Render(t *testing.T) {
	t.Parallel()

	f := field.New("Subject", "short")
	assert.Equal(t, []byte("Subject: short\r\n"), f.Render(field.DefaultFoldEncoding))
}
