// Package arith implements the integer operations exposed across the
// mathbridge boundaries (CLI, MCP tools, WebAssembly exports).
//
// All operations work on int32 with two's-complement wraparound. A zero
// divisor never panics or returns an error: the result is 0 and a warning
// is written to the Sink.
package arith

import "fmt"

const (
	// DivByZeroWarning is logged when Div is called with a zero divisor.
	DivByZeroWarning = "Warning: Division by zero!"
	// ModByZeroWarning is logged when Mod is called with a zero divisor.
	ModByZeroWarning = "Warning: Modulus by zero!"

	// DefaultA and DefaultB are the operands used when none are given.
	DefaultA int32 = 10
	DefaultB int32 = 5

	// DefaultGreetName is the name greeted after a full calculation.
	DefaultGreetName = "Web Assembly User!"
)

// Sink receives diagnostic messages. Implementations must preserve call
// order and must not fail observably.
type Sink interface {
	Log(msg string)
}

// SinkFunc adapts a plain function to a Sink.
type SinkFunc func(msg string)

// Log calls f(msg).
func (f SinkFunc) Log(msg string) { f(msg) }

// Service performs the arithmetic operations. The zero value is not usable;
// construct with New.
type Service struct {
	sink Sink
}

// New creates a Service writing diagnostics to sink. A nil sink discards them.
func New(sink Sink) *Service {
	if sink == nil {
		sink = SinkFunc(func(string) {})
	}
	return &Service{sink: sink}
}

// Greet writes "Hello, {name}!" to the sink.
func (s *Service) Greet(name string) {
	s.sink.Log(fmt.Sprintf("Hello, %s!", name))
}

// Add returns a + b.
func (s *Service) Add(a, b int32) int32 {
	return a + b
}

// Sub returns a - b.
func (s *Service) Sub(a, b int32) int32 {
	return a - b
}

// Mul returns a * b.
func (s *Service) Mul(a, b int32) int32 {
	return a * b
}

// Div returns a / b truncated toward zero, or 0 with a logged warning when b is 0.
// Div(math.MinInt32, -1) wraps to math.MinInt32.
func (s *Service) Div(a, b int32) int32 {
	if b == 0 {
		s.sink.Log(DivByZeroWarning)
		return 0
	}
	return a / b
}

// Mod returns the remainder of a / b carrying the sign of a, or 0 with a
// logged warning when b is 0.
func (s *Service) Mod(a, b int32) int32 {
	if b == 0 {
		s.sink.Log(ModByZeroWarning)
		return 0
	}
	return a % b
}

// Results holds one value per binary operation for a single operand pair.
type Results struct {
	Add int32 `json:"add" yaml:"add"`
	Sub int32 `json:"sub" yaml:"sub"`
	Mul int32 `json:"mul" yaml:"mul"`
	Div int32 `json:"div" yaml:"div"`
	Mod int32 `json:"mod" yaml:"mod"`
}

// Calculate runs every binary operation on (a, b) in declaration order.
func (s *Service) Calculate(a, b int32) Results {
	return Results{
		Add: s.Add(a, b),
		Sub: s.Sub(a, b),
		Mul: s.Mul(a, b),
		Div: s.Div(a, b),
		Mod: s.Mod(a, b),
	}
}
