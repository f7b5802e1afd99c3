package ir

import "fmt"

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// Function is a named IR function: its parameters, its ordered basic
// blocks (including a distinguished entry and a distinguished, pre-created
// epilogue), and its first-class return-value slot (§3).
type Function struct {
	Name       string
	Params     []*Parameter
	ReturnType Type
	Blocks     []*BasicBlock
	Entry      *BasicBlock
	Epilogue   *BasicBlock
	ReturnSlot Value // Never set by the lowering passes: each return emits its own Return terminator.

	nextID    int
	nextBlock int
}

// NewFunction creates a Function named name with its epilogue block
// pre-created (but not yet appended to Blocks — the entry block must be
// appended first, per the entry-block-is-first-appended invariant of §3;
// the epilogue is appended by the function lowerer once the body has been
// lowered, §4.2).
func NewFunction(name string, returnType Type) *Function {
	f := &Function{Name: name, ReturnType: returnType}
	f.Epilogue = f.newBlockNamed("epilogue")
	return f
}

// newBlockNamed allocates a fresh, unattached BasicBlock with a
// deterministic debug name.
func (f *Function) newBlockNamed(prefix string) *BasicBlock {
	f.nextBlock++
	return &BasicBlock{Name: fmt.Sprintf("%s.%d", prefix, f.nextBlock)}
}

// NewBlock allocates and appends a fresh BasicBlock to f.
func (f *Function) NewBlock(prefix string) *BasicBlock {
	b := f.newBlockNamed(prefix)
	f.Blocks = append(f.Blocks, b)
	return b
}

// AppendBlock appends an already-allocated block (the epilogue, at the
// end of body lowering) to f.
func (f *Function) AppendBlock(b *BasicBlock) {
	f.Blocks = append(f.Blocks, b)
}

// NextID returns a fresh, function-unique SSA value id.
func (f *Function) NextID() int {
	f.nextID++
	return f.nextID
}

// AddParameter appends a new Parameter of type ty to f's signature and
// returns it.
func (f *Function) AddParameter(name string, ty Type) *Parameter {
	p := &Parameter{valueBase: valueBase{id: f.NextID(), ty: ty, nm: name}}
	f.Params = append(f.Params, p)
	return p
}

// Validate checks every block in f is terminated (§8 property 1) and that
// the entry block, if set, is the first block in Blocks (§3).
func (f *Function) Validate() error {
	for _, b := range f.Blocks {
		if err := b.Validate(); err != nil {
			return fmt.Errorf("function %s: %w", f.Name, err)
		}
	}
	if f.Entry != nil && (len(f.Blocks) == 0 || f.Blocks[0] != f.Entry) {
		return fmt.Errorf("function %s: entry block is not the first appended block", f.Name)
	}
	return nil
}
