package param_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zostay/go-email-compose/message/header/param"
)

func TestNew(t *testing.T) {
	t.Parallel()

	mt := param.New("text")
	assert.Equal(t, "text", mt.MediaType())
	assert.Equal(t, "", mt.Type())
	assert.Equal(t, "", mt.Subtype())
	assert.Equal(t, "text", mt.String())

	mt = param.New("image/jpeg")
	assert.Equal(t, "image/jpeg", mt.MediaType())
	assert.Equal(t, "image", mt.Type())
	assert.Equal(t, "jpeg", mt.Subtype())

	mt = param.New("application/json", param.Param{Name: "charset", Value: "UTF-8"}, param.Param{Name: "foo", Value: "bar"})
	assert.Equal(t, "application/json; charset=UTF-8; foo=bar", mt.String())
	assert.Equal(t, "UTF-8", mt.Parameter("charset"))
	assert.Equal(t, "bar", mt.Parameter("foo"))
}

func TestValue_SetDeleteOrderPreserved(t *testing.T) {
	t.Parallel()

	mt := param.New("text/json")
	mt.Set(param.Charset, "trash")
	assert.Equal(t, "text/json; charset=trash", mt.String())

	mt.Change("application/json")
	mt.Set(param.Boundary, "abc123")
	assert.Equal(t, "application/json; charset=trash; boundary=abc123", mt.String())

	mt.Delete(param.Charset)
	assert.Equal(t, "application/json; boundary=abc123", mt.String())
	assert.Equal(t, []byte("application/json; boundary=abc123"), mt.Bytes())
}

func TestValue_Parameter(t *testing.T) {
	t.Parallel()

	mt := param.New("text/plain",
		param.Param{Name: "boundary", Value: "abc123"},
		param.Param{Name: "charset", Value: "latin1"},
		param.Param{Name: "blah", Value: "BLOOP"},
	)

	assert.Equal(t, "abc123", mt.Parameter(param.Boundary))
	assert.Equal(t, "abc123", mt.Boundary())
	assert.Equal(t, "latin1", mt.Charset())
	assert.Equal(t, "BLOOP", mt.Parameter("blah"))
	assert.Equal(t, "", mt.Parameter(param.Filename))
	assert.Equal(t, "", mt.Filename())
}

func TestValue_ExtendedParam(t *testing.T) {
	t.Parallel()

	mt := param.New("text/plain")
	mt.Set(param.Filename, "Résumé final.txt")
	s := mt.String()
	assert.Contains(t, s, "filename*0*=UTF-8''")
	assert.Contains(t, s, "%20")

	mt2 := param.New("text/plain")
	long := ""
	for i := 0; i < 100; i++ {
		long += "x"
	}
	mt2.Set(param.Name, long)
	s2 := mt2.String()
	assert.Contains(t, s2, "name*0*=UTF-8''")
	assert.Contains(t, s2, "name*1*=")
}
