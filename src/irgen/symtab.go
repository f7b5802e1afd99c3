package irgen

import (
	"gencode/src/irgen/ir"
	"gencode/src/util"
)

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// symbolMap is the Symbol map (§3): a partial mapping from source symbol
// name to IR storage, populated before body lowering and read during
// expression lowering. Its lifetime is exactly one gencode invocation. It
// is layered with util.Stack the same way vslc's LLVM transform layers
// its symTab: one scope pushed for module globals, one more pushed per
// function for its locals and parameters, popped when the function is
// done.
type symbolMap struct {
	scopes util.Stack
}

// ---------------------
// ----- Functions -----
// ---------------------

// push opens a fresh, empty scope on top of the stack.
func (s *symbolMap) push() {
	s.scopes.Push(make(map[string]ir.Value))
}

// pop discards the top scope.
func (s *symbolMap) pop() {
	s.scopes.Pop()
}

// bind binds name to val in the innermost (top) scope.
func (s *symbolMap) bind(name string, val ir.Value) {
	top := s.scopes.Peek().(map[string]ir.Value)
	top[name] = val
}

// lookup resolves name to its IR storage, searching from the innermost
// scope outward.
func (s *symbolMap) lookup(name string) (ir.Value, bool) {
	for n := 1; n <= s.scopes.Size(); n++ {
		scope := s.scopes.Get(n).(map[string]ir.Value)
		if v, ok := scope[name]; ok {
			return v, true
		}
	}
	return nil, false
}
