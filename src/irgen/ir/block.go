package ir

import "fmt"

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// BasicBlock is a maximal straight-line sequence of non-terminator
// instructions followed by exactly one terminator (§3). It belongs to
// exactly one Function.
type BasicBlock struct {
	Name         string
	Instructions []Instruction
	Term         Terminator
}

// ---------------------
// ----- Functions -----
// ---------------------

// Append adds a non-terminator instruction to the end of b. It panics if
// b is already terminated: the statement lowerer is responsible for never
// emitting past a terminator (§4.3's Return handling switches the cursor
// to a fresh block precisely to uphold this).
func (b *BasicBlock) Append(i Instruction) {
	if b.Term != nil {
		panic(fmt.Sprintf("ir: append to terminated block %s", b.Name))
	}
	b.Instructions = append(b.Instructions, i)
}

// SetTerminator closes b with t. It panics if b is already terminated.
func (b *BasicBlock) SetTerminator(t Terminator) {
	if b.Term != nil {
		panic(fmt.Sprintf("ir: re-terminate block %s", b.Name))
	}
	b.Term = t
}

// Terminated reports whether b already ends with a terminator.
func (b *BasicBlock) Terminated() bool {
	return b.Term != nil
}

// Validate checks the Termination invariant (§8 property 1): b ends with
// exactly one terminator and is not empty of it.
func (b *BasicBlock) Validate() error {
	if b.Term == nil {
		return fmt.Errorf("block %s has no terminator", b.Name)
	}
	return nil
}

// Successors returns the blocks b's terminator may transfer control to,
// in terminator-defined order.
func (b *BasicBlock) Successors() []*BasicBlock {
	switch t := b.Term.(type) {
	case *Jump:
		return []*BasicBlock{t.Target}
	case *CJump:
		return []*BasicBlock{t.True, t.False}
	default:
		return nil
	}
}
