package jyaml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReaderRejectsBOM(t *testing.T) {
	_, err := newReader([]byte("\xEF\xBB\xBF{}"))
	require.NotNil(t, err)
	assert.Equal(t, ErrInvalidEncoding, err.Kind)
	assert.Equal(t, Position{1, 1, 0}, err.Pos)
}

func TestReaderRejectsInvalidUTF8(t *testing.T) {
	_, err := newReader([]byte{'"', 0xFF, '"'})
	require.NotNil(t, err)
	assert.Equal(t, ErrInvalidEncoding, err.Kind)
}

func TestReaderNormalizesLineEndings(t *testing.T) {
	for _, data := range []string{"a\r\nb", "a\rb", "a\nb"} {
		r, err := newReader([]byte(data))
		require.Nil(t, err)
		c1, ok := r.advance()
		require.True(t, ok)
		assert.Equal(t, 'a', c1)
		c2, ok := r.advance()
		require.True(t, ok)
		assert.Equal(t, '\n', c2, "input %q", data)
		assert.Equal(t, 2, r.line)
		assert.Equal(t, 1, r.col)
	}
}

func TestReaderMarkReset(t *testing.T) {
	r, err := newReader([]byte("abc"))
	require.Nil(t, err)
	m := r.mark()
	r.advance()
	r.advance()
	r.reset(m)
	c, ok := r.advance()
	require.True(t, ok)
	assert.Equal(t, 'a', c)
}
