package arith

import "sort"

// BinaryOp is one of the Service's two-operand methods.
type BinaryOp func(s *Service, a, b int32) int32

var binaryOps = map[string]BinaryOp{
	"add": (*Service).Add,
	"sub": (*Service).Sub,
	"mul": (*Service).Mul,
	"div": (*Service).Div,
	"mod": (*Service).Mod,
}

// aliases maps alternate export names to canonical operation names.
var aliases = map[string]string{
	"mod_op": "mod",
}

// Lookup returns the binary operation registered under name.
func Lookup(name string) (BinaryOp, bool) {
	if canonical, ok := aliases[name]; ok {
		name = canonical
	}
	op, ok := binaryOps[name]
	return op, ok
}

// OpNames returns the canonical binary operation names in sorted order.
func OpNames() []string {
	names := make([]string, 0, len(binaryOps))
	for name := range binaryOps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
