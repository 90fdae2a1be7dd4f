package eval

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bencinn/cortado/parser"
	"github.com/bencinn/cortado/value"
)

func run(t *testing.T, src string, features ...string) (value.Value, string) {
	t.Helper()
	program, err := parser.Parse(src)
	require.NoError(t, err)
	var out bytes.Buffer
	ev := New(&out, strings.NewReader(""), features)
	result, err := ev.Run(program)
	require.NoError(t, err)
	return result, out.String()
}

func TestArithmeticPrecedence(t *testing.T) {
	result, _ := run(t, "return(2 * 3 ^ 2);", "return")
	assert.Equal(t, "18", result.String())
}

func TestPrefixMinusBindsTighterThanPower(t *testing.T) {
	result, _ := run(t, "x = 2; return(-x ^ 2);", "return")
	assert.Equal(t, "4", result.String())
}

func TestFactorial(t *testing.T) {
	result, _ := run(t, "return(5!);", "return")
	assert.Equal(t, "120", result.String())
}

func TestFactorialOfNegativeIsDomainError(t *testing.T) {
	_, err := func() (value.Value, error) {
		program, err := parser.Parse("return((-1)!);")
		require.NoError(t, err)
		var out bytes.Buffer
		ev := New(&out, strings.NewReader(""), []string{"return"})
		return ev.Run(program)
	}()
	require.Error(t, err)
}

func TestArraySliceIsInclusive(t *testing.T) {
	result, _ := run(t, "a = [1,2,3,4,5]; return(a[1..3]);", "return")
	assert.Equal(t, "[2, 3, 4]", result.String())
}

func TestArrayMutationIsVisibleAfterWrite(t *testing.T) {
	result, _ := run(t, "a = [1,2,3]; a[0] = 9; return(a);", "return")
	assert.Equal(t, "[9, 2, 3]", result.String())
}

func TestForLoopMergesBackToOuterFrame(t *testing.T) {
	result, _ := run(t, "total = 0; for x in [1,2,3] { total = total + x; }; return(total);", "return")
	assert.Equal(t, "6", result.String())
}

func TestUserFunctionHasNoClosureOverCaller(t *testing.T) {
	_, err := func() (value.Value, error) {
		program, err := parser.Parse("outer = 5; def f() { return(outer); }; return(f());")
		require.NoError(t, err)
		var out bytes.Buffer
		ev := New(&out, strings.NewReader(""), []string{"return"})
		return ev.Run(program)
	}()
	require.Error(t, err)
}

func TestFunctionArgumentTypeCheck(t *testing.T) {
	_, err := func() (value.Value, error) {
		program, err := parser.Parse(`def f(n: Number) { return(n); }; return(f("x"));`)
		require.NoError(t, err)
		var out bytes.Buffer
		ev := New(&out, strings.NewReader(""), []string{"return"})
		return ev.Run(program)
	}()
	require.Error(t, err)
}

func TestArrayArgumentIsClonedNotAliased(t *testing.T) {
	result, _ := run(t, `
def mutate(a: Array) {
	a[0] = 99;
	return(a);
};
original = [1, 2, 3];
mutate(original);
return(original);
`, "return")
	assert.Equal(t, "[1, 2, 3]", result.String())
}

func TestPrintWritesOneLinePerArgument(t *testing.T) {
	_, out := run(t, `print(1, "x", true);`, "print")
	assert.Equal(t, "1\nx\ntrue\n", out)
}

func TestDisabledBuiltinIsFeatureDisabled(t *testing.T) {
	_, err := func() (value.Value, error) {
		program, err := parser.Parse(`print(1);`)
		require.NoError(t, err)
		var out bytes.Buffer
		ev := New(&out, strings.NewReader(""), nil)
		return ev.Run(program)
	}()
	require.Error(t, err)
}

func TestDivisionByZero(t *testing.T) {
	_, err := func() (value.Value, error) {
		program, err := parser.Parse("return(1 / 0);")
		require.NoError(t, err)
		var out bytes.Buffer
		ev := New(&out, strings.NewReader(""), []string{"return"})
		return ev.Run(program)
	}()
	require.Error(t, err)
}

func TestStringSplitAndJoinBuiltins(t *testing.T) {
	result, _ := run(t, `return(join(split("a,b,c", ","), ["d"]));`, "return", "split", "join")
	assert.Equal(t, "[a, b, c, d]", result.String())
}
