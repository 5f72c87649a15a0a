package arith

import (
	"math"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newCapturing returns a Service and a pointer to the messages it logs.
func newCapturing() (*Service, *[]string) {
	var msgs []string
	return New(SinkFunc(func(msg string) { msgs = append(msgs, msg) })), &msgs
}

func TestConcreteCases(t *testing.T) {
	s, msgs := newCapturing()

	assert.Equal(t, int32(5), s.Add(2, 3))
	assert.Equal(t, int32(3), s.Sub(5, 2))
	assert.Equal(t, int32(20), s.Mul(4, 5))
	assert.Equal(t, int32(3), s.Div(10, 3))
	assert.Equal(t, int32(1), s.Mod(10, 3))
	assert.Empty(t, *msgs, "non-degenerate input should not log")
}

func TestDiv_ZeroDivisor(t *testing.T) {
	s, msgs := newCapturing()

	got := s.Div(7, 0)

	assert.Equal(t, int32(0), got)
	require.Len(t, *msgs, 1)
	assert.Equal(t, DivByZeroWarning, (*msgs)[0])
}

func TestMod_ZeroDivisor(t *testing.T) {
	s, msgs := newCapturing()

	got := s.Mod(7, 0)

	assert.Equal(t, int32(0), got)
	require.Len(t, *msgs, 1)
	assert.Equal(t, ModByZeroWarning, (*msgs)[0])
}

func TestGreet(t *testing.T) {
	s, msgs := newCapturing()

	s.Greet("World")

	assert.Equal(t, []string{"Hello, World!"}, *msgs)
}

func TestGreet_Verbatim(t *testing.T) {
	s, msgs := newCapturing()

	s.Greet("")
	s.Greet("%s {name}")

	assert.Equal(t, []string{"Hello, !", "Hello, %s {name}!"}, *msgs)
}

func TestWraparound(t *testing.T) {
	s := New(nil)

	tests := []struct {
		name string
		got  int32
		want int32
	}{
		{"add overflow", s.Add(math.MaxInt32, 1), math.MinInt32},
		{"sub underflow", s.Sub(math.MinInt32, 1), math.MaxInt32},
		{"mul overflow", s.Mul(math.MaxInt32, 2), -2},
		{"div min by minus one", s.Div(math.MinInt32, -1), math.MinInt32},
		{"mod min by minus one", s.Mod(math.MinInt32, -1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestTruncation(t *testing.T) {
	s := New(nil)

	tests := []struct {
		a, b             int32
		wantDiv, wantMod int32
	}{
		{7, 2, 3, 1},
		{-7, 2, -3, -1},
		{7, -2, -3, 1},
		{-7, -2, 3, -1},
		{0, 5, 0, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.wantDiv, s.Div(tt.a, tt.b), "Div(%d, %d)", tt.a, tt.b)
		assert.Equal(t, tt.wantMod, s.Mod(tt.a, tt.b), "Mod(%d, %d)", tt.a, tt.b)
	}
}

func wrap(v int64) int32 {
	return int32(uint32(uint64(v)))
}

func TestProperties(t *testing.T) {
	s := New(nil)

	props := map[string]any{
		"add wraps": func(a, b int32) bool {
			return s.Add(a, b) == wrap(int64(a)+int64(b))
		},
		"sub wraps": func(a, b int32) bool {
			return s.Sub(a, b) == wrap(int64(a)-int64(b))
		},
		"mul wraps": func(a, b int32) bool {
			return s.Mul(a, b) == wrap(int64(a)*int64(b))
		},
		"add commutes": func(a, b int32) bool {
			return s.Add(a, b) == s.Add(b, a)
		},
		"mul commutes": func(a, b int32) bool {
			return s.Mul(a, b) == s.Mul(b, a)
		},
		"div and mod recombine": func(a, b int32) bool {
			if b == 0 {
				return true
			}
			return s.Div(a, b)*b+s.Mod(a, b) == a
		},
		"mod takes sign of dividend": func(a, b int32) bool {
			if b == 0 {
				return true
			}
			r := s.Mod(a, b)
			return r == 0 || (r < 0) == (a < 0)
		},
	}

	for name, prop := range props {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, quick.Check(prop, nil))
		})
	}
}

func TestCalculate(t *testing.T) {
	s, msgs := newCapturing()

	got := s.Calculate(DefaultA, DefaultB)

	assert.Equal(t, Results{Add: 15, Sub: 5, Mul: 50, Div: 2, Mod: 0}, got)
	assert.Empty(t, *msgs)
}

func TestCalculate_ZeroDivisorLogsInOrder(t *testing.T) {
	s, msgs := newCapturing()

	got := s.Calculate(9, 0)

	assert.Equal(t, Results{Add: 9, Sub: 9, Mul: 0, Div: 0, Mod: 0}, got)
	assert.Equal(t, []string{DivByZeroWarning, ModByZeroWarning}, *msgs)
}

func TestNew_NilSink(t *testing.T) {
	s := New(nil)

	assert.NotPanics(t, func() {
		s.Greet("nobody")
		s.Div(1, 0)
		s.Mod(1, 0)
	})
}

func TestLookup(t *testing.T) {
	s := New(nil)

	tests := []struct {
		name string
		want int32
	}{
		{"add", 13},
		{"sub", 7},
		{"mul", 30},
		{"div", 3},
		{"mod", 1},
		{"mod_op", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op, ok := Lookup(tt.name)
			require.True(t, ok)
			assert.Equal(t, tt.want, op(s, 10, 3))
		})
	}

	_, ok := Lookup("pow")
	assert.False(t, ok)
}

func TestOpNames(t *testing.T) {
	assert.Equal(t, []string{"add", "div", "mod", "mul", "sub"}, OpNames())
}
