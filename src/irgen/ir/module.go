package ir

import "fmt"

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// Variable is a named IR global, with a byte size (§3). Globals carry no
// initializer here: initialization is a downstream concern. Variable
// implements Value so it can be used directly as a Store/Load operand: a
// reference to a global is its address, typed Ptr.
type Variable struct {
	valueBase
	Size int
}

func (v *Variable) String() string {
	return fmt.Sprintf("@%s : ptr", v.nm)
}

// Module is a named collection of IR Variables and Functions with no
// cross-module references (§3).
type Module struct {
	Name      string
	Variables []*Variable
	Functions []*Function

	nextGlobalID int
}

// NewModule returns an empty Module named name.
func NewModule(name string) *Module {
	return &Module{Name: name}
}

// ---------------------
// ----- Functions -----
// ---------------------

// AddVariable appends a new global Variable of size bytes to m.
func (m *Module) AddVariable(name string, size int) *Variable {
	m.nextGlobalID++
	v := &Variable{valueBase: valueBase{id: m.nextGlobalID, ty: Ptr, nm: name}, Size: size}
	m.Variables = append(m.Variables, v)
	return v
}

// AddFunction appends an already-constructed Function to m.
func (m *Module) AddFunction(f *Function) {
	m.Functions = append(m.Functions, f)
}

// Validate checks every function in m for well-formedness (§8 property 1).
func (m *Module) Validate() error {
	for _, f := range m.Functions {
		if err := f.Validate(); err != nil {
			return fmt.Errorf("module %s: %w", m.Name, err)
		}
	}
	return nil
}
