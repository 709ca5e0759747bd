package jyaml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseErr(t *testing.T, src string, opts ...Option) *Error {
	t.Helper()
	_, err := ParseValue(src, opts...)
	require.Error(t, err)
	perr, ok := err.(*Error)
	require.True(t, ok, "expected *jyaml.Error, got %T", err)
	return perr
}

func TestParserInconsistentIndent(t *testing.T) {
	src := "\"a\":\n  \"b\": 1\n   \"c\": 2\n"
	err := parseErr(t, src)
	assert.Equal(t, ErrInconsistentIndent, err.Kind)
}

func TestParserMissingValueAfterColonAtEOF(t *testing.T) {
	err := parseErr(t, "\"a\":")
	assert.Equal(t, ErrMissingValue, err.Kind)
}

func TestParserMissingValueAfterColonDedent(t *testing.T) {
	src := "\"a\":\n\"b\": 1\n"
	err := parseErr(t, src)
	assert.Equal(t, ErrMissingValue, err.Kind)
}

func TestParserNonStringKeyInBlockObject(t *testing.T) {
	err := parseErr(t, "1: 2")
	assert.Equal(t, ErrNonStringKey, err.Kind)
}

func TestParserNonStringKeyInFlowObject(t *testing.T) {
	err := parseErr(t, "{1: 2}")
	assert.Equal(t, ErrNonStringKey, err.Kind)
}

func TestParserBlockArrayOfObjectsAlignment(t *testing.T) {
	src := "- \"a\": 1\n  \"b\": 2\n- \"a\": 3\n  \"b\": 4\n"
	v, err := ParseValue(src)
	require.NoError(t, err)
	require.Equal(t, KindArray, v.Kind())
	items := v.Array()
	require.Len(t, items, 2)

	first := items[0].Object()
	a, ok := first.Get("a")
	require.True(t, ok)
	assert.Equal(t, int64(1), a.Number().Int)
	b, ok := first.Get("b")
	require.True(t, ok)
	assert.Equal(t, int64(2), b.Number().Int)

	second := items[1].Object()
	a2, ok := second.Get("a")
	require.True(t, ok)
	assert.Equal(t, int64(3), a2.Number().Int)
}

func TestParserBlockScalarAfterDashSameLine(t *testing.T) {
	src := "- |\n  line one\n  line two\n- 2\n"
	v, err := ParseValue(src)
	require.NoError(t, err)
	items := v.Array()
	require.Len(t, items, 2)
	assert.Equal(t, "line one\nline two\n", items[0].String())
	assert.Equal(t, int64(2), items[1].Number().Int)
}

func TestParserBlockScalarNestedUnderKey(t *testing.T) {
	src := "\"text\": |\n  hello\n  world\n"
	v, err := ParseValue(src)
	require.NoError(t, err)
	obj := v.Object()
	text, ok := obj.Get("text")
	require.True(t, ok)
	assert.Equal(t, "hello\nworld\n", text.String())
}

func TestParserDedentToOuterKeyEndsNestedFrame(t *testing.T) {
	src := "\"obj\":\n  \"a\": 1\n\"next\": 2\n"
	v, err := ParseValue(src)
	require.NoError(t, err)
	obj := v.Object()
	assert.True(t, obj.Has("obj"))
	assert.True(t, obj.Has("next"))
}

func TestParserFlowTrailingCommaAccepted(t *testing.T) {
	v, err := ParseValue(`{"a": 1,}`)
	require.NoError(t, err)
	assert.True(t, v.Object().Has("a"))

	v, err = ParseValue(`[1, 2,]`)
	require.NoError(t, err)
	assert.Len(t, v.Array(), 2)
}

func TestParserEmptyDocumentError(t *testing.T) {
	err := parseErr(t, "")
	assert.Equal(t, ErrEmptyDocument, err.Kind)

	err = parseErr(t, "  \n  \n")
	assert.Equal(t, ErrEmptyDocument, err.Kind)
}

func TestParserDuplicateKeyRejectedByDefault(t *testing.T) {
	err := parseErr(t, `{"a": 1, "a": 2}`)
	assert.Equal(t, ErrDuplicateKey, err.Kind)
}

func TestParserBlockInFlowRejected(t *testing.T) {
	err := parseErr(t, "[\n- 1\n]")
	assert.Equal(t, ErrBlockInFlow, err.Kind)
}
