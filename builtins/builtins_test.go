package builtins

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bencinn/cortado/value"
)

type fakeHost struct {
	printed []string
	lines   []string
}

func (h *fakeHost) Print(line string) error {
	h.printed = append(h.printed, line)
	return nil
}

func (h *fakeHost) ReadLine() (string, bool, error) {
	if len(h.lines) == 0 {
		return "", false, nil
	}
	line := h.lines[0]
	h.lines = h.lines[1:]
	return line, true, nil
}

func TestPrintWritesOneLinePerArgument(t *testing.T) {
	h := &fakeHost{}
	_, err := Print(h, []value.Value{value.NewNumberInt(1), value.NewString("x")})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "x"}, h.printed)
}

func TestInputReturnsString(t *testing.T) {
	h := &fakeHost{lines: []string{"hello"}}
	v, err := Input(h, nil)
	require.NoError(t, err)
	assert.Equal(t, value.NewString("hello"), v)
}

func TestInputfParsesEachTokenByItsFormatTag(t *testing.T) {
	h := &fakeHost{lines: []string{"42.5 hi true"}}
	v, err := Inputf(h, []value.Value{value.NewString("%Number %String %Bool")})
	require.NoError(t, err)
	arr := v.(value.Array)
	require.Len(t, arr.Elems, 3)
	assert.Equal(t, "42.5", arr.Elems[0].String())
	assert.Equal(t, value.NewString("hi"), arr.Elems[1])
	assert.Equal(t, value.NewBool(true), arr.Elems[2])
}

func TestInputfRejectsBadToken(t *testing.T) {
	h := &fakeHost{lines: []string{"not-a-number"}}
	_, err := Inputf(h, []value.Value{value.NewString("%Number")})
	require.Error(t, err)
}

func TestInputfRejectsLengthMismatch(t *testing.T) {
	h := &fakeHost{lines: []string{"only one"}}
	_, err := Inputf(h, []value.Value{value.NewString("%Number %Number %Number")})
	require.Error(t, err)
}

func TestSplitDefaultsToSpaceAndTrims(t *testing.T) {
	h := &fakeHost{}
	v, err := Split(h, []value.Value{value.NewString("  1 true x  ")})
	require.NoError(t, err)
	arr := v.(value.Array)
	require.Len(t, arr.Elems, 3)
	assert.Equal(t, "1", arr.Elems[0].String())
	assert.Equal(t, value.NewBool(true), arr.Elems[1])
	assert.Equal(t, value.NewString("x"), arr.Elems[2])
}

func TestSplitWithDelimiterCoercesTokens(t *testing.T) {
	h := &fakeHost{}
	v, err := Split(h, []value.Value{value.NewString("1,2,false"), value.NewString(",")})
	require.NoError(t, err)
	arr := v.(value.Array)
	require.Len(t, arr.Elems, 3)
	assert.Equal(t, "1", arr.Elems[0].String())
	assert.Equal(t, "2", arr.Elems[1].String())
	assert.Equal(t, value.NewBool(false), arr.Elems[2])
}

func TestJoinConcatenatesTwoArrays(t *testing.T) {
	h := &fakeHost{}
	a := value.NewArray([]value.Value{value.NewNumberInt(1), value.NewNumberInt(2)})
	b := value.NewArray([]value.Value{value.NewString("x")})
	v, err := Join(h, []value.Value{a, b})
	require.NoError(t, err)
	arr := v.(value.Array)
	assert.Equal(t, "[1, 2, x]", arr.String())
}

func TestJoinRejectsNonArrayArguments(t *testing.T) {
	h := &fakeHost{}
	_, err := Join(h, []value.Value{value.NewString("x"), value.NewArray(nil)})
	require.Error(t, err)
}

func TestLookupExcludesReturn(t *testing.T) {
	_, ok := Lookup("return")
	assert.False(t, ok)
	_, ok = Lookup("print")
	assert.True(t, ok)
}
