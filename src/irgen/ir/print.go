package ir

import (
	"fmt"
	"strings"
)

// ---------------------
// ----- Functions -----
// ---------------------

// String renders m's textual IR form (§6: "binary encoding and textual
// form are defined by downstream passes and are not part of this
// specification" — this rendering exists purely as a debugging aid for
// "gencode run"/"gencode inspect", not a defined wire format).
func (m *Module) String() string {
	sb := strings.Builder{}
	sb.WriteString(fmt.Sprintf("module %s\n", m.Name))
	for _, v := range m.Variables {
		sb.WriteString(fmt.Sprintf("global %s : %d bytes\n", v.nm, v.Size))
	}
	for _, f := range m.Functions {
		sb.WriteString(f.String())
		sb.WriteRune('\n')
	}
	return sb.String()
}

// String renders f's textual IR form.
func (f *Function) String() string {
	sb := strings.Builder{}
	sb.WriteString("function ")
	sb.WriteString(f.Name)
	sb.WriteRune('(')
	for i, p := range f.Params {
		sb.WriteString(p.String())
		if i < len(f.Params)-1 {
			sb.WriteString(", ")
		}
	}
	sb.WriteString("): ")
	sb.WriteString(f.ReturnType.String())
	sb.WriteString(" {\n")
	for _, b := range f.Blocks {
		sb.WriteString(b.String())
	}
	sb.WriteString("}\n")
	return sb.String()
}

// String renders b's textual IR form: its label followed by one
// instruction per line.
func (b *BasicBlock) String() string {
	sb := strings.Builder{}
	sb.WriteString(b.Name)
	sb.WriteString(":\n")
	for _, i := range b.Instructions {
		sb.WriteString("\t")
		sb.WriteString(stringOf(i))
		sb.WriteRune('\n')
	}
	if b.Term != nil {
		sb.WriteString("\t")
		sb.WriteString(stringOf(b.Term))
		sb.WriteRune('\n')
	}
	return sb.String()
}

// stringOf renders any Instruction, producer or not.
func stringOf(i Instruction) string {
	if s, ok := i.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%v", i)
}
