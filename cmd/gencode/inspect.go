package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"gencode/src/diag"
	"gencode/src/irgen"
	"gencode/src/irgen/ir"
	"gencode/src/types"
)

// newInspectCmd builds "gencode inspect": a small line-edited REPL, the
// same role ailang's REPL gives github.com/peterh/liner, that lowers the
// built-in demo module and lets a developer type a function name to print
// all of its basic blocks, or ":type <name>" to resolve a named type alias
// through the module's scope.
func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "Interactively browse a generated IR module's functions",
		RunE: func(cmd *cobra.Command, args []string) error {
			module, ctx := demoModule()
			sink := diag.NewSink()
			irModule, err := irgen.Gencode(module, ctx, sink)
			if err != nil {
				sink.Print()
				return err
			}
			return runInspector(irModule, ctx)
		},
	}
}

func runInspector(m *ir.Module, ctx *types.Context) error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	fmt.Println("gencode inspect: type a function name to view its blocks, \":type <name>\" to resolve a named type, or an empty line to quit.")
	for {
		input, err := line.Prompt("gencode> ")
		if err == liner.ErrPromptAborted || err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if input == "" {
			return nil
		}
		line.AppendHistory(input)

		if name, ok := strings.CutPrefix(input, ":type "); ok {
			t, ok := ctx.Scope().LookupType(name)
			if !ok {
				fmt.Printf("no such type: %s\n", name)
				continue
			}
			fmt.Printf("%s = %s\n", name, t)
			continue
		}

		fn := findFunction(m, input)
		if fn == nil {
			fmt.Printf("no such function: %s\n", input)
			continue
		}
		fmt.Print(fn.String())
	}
}

func findFunction(m *ir.Module, name string) *ir.Function {
	for _, f := range m.Functions {
		if f.Name == name {
			return f
		}
	}
	return nil
}
