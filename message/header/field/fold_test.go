package field_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zostay/go-email-compose/message/header/field"
)

func TestNewFoldEncoding(t *testing.T) {
	t.Parallel()

	_, err := field.NewFoldEncoding("", 0, 0)
	assert.ErrorIs(t, err, field.ErrFoldIndentTooShort)

	_, err = field.NewFoldEncoding(" x", 0, 0)
	assert.ErrorIs(t, err, field.ErrFoldIndentSpace)

	_, err = field.NewFoldEncoding("     ", 0, 0)
	assert.ErrorIs(t, err, field.ErrFoldIndentTooLong)

	_, err = field.NewFoldEncoding(field.DefaultFoldIndent, field.DoNotFold, 1000)
	assert.ErrorIs(t, err, field.ErrDoNotFold)

	_, err = field.NewFoldEncoding(field.DefaultFoldIndent, 80, field.DoNotFold)
	assert.ErrorIs(t, err, field.ErrDoNotFold)

	vf, err := field.NewFoldEncoding(field.DefaultFoldIndent, field.DoNotFold, field.DoNotFold)
	assert.NoError(t, err)
	assert.NotNil(t, vf)

	vf, err = field.NewFoldEncoding("\t\t", field.DefaultPreferredFoldLength, field.DefaultForcedFoldLength)
	assert.NoError(t, err)
	assert.NotNil(t, vf)

	_, err = field.NewFoldEncoding(field.DefaultFoldIndent, 1000, 80)
	assert.ErrorIs(t, err, field.ErrFoldLengthTooLong)
}

func TestFoldEncoding_Fold_noFoldNeeded(t *testing.T) {
	t.Parallel()

	got := field.DefaultFoldEncoding.Fold([]byte("Subject: a b c d"))
	assert.Equal(t, "Subject: a b c d\r\n", string(got))
}

func TestFoldEncoding_Fold_preferredBreak(t *testing.T) {
	t.Parallel()

	vf, err := field.NewFoldEncoding(field.DefaultFoldIndent, 16, 40)
	assert.NoError(t, err)

	got := vf.Fold([]byte("Subject: aaaaa bbbbb ccccc"))
	assert.Contains(t, string(got), "\r\n ")
}

func TestFoldEncoding_Fold_doNotFold(t *testing.T) {
	t.Parallel()

	got := field.DoNotFoldEncoding.Fold([]byte("X-Long: this line is not folded no matter how long it gets"))
	assert.Equal(t, "X-Long: this line is not folded no matter how long it gets\r\n", string(got))
}
