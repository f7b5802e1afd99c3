package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gencode/src/ast"
	"gencode/src/config"
	"gencode/src/diag"
	"gencode/src/irgen"
	"gencode/src/types"
)

// newRunCmd builds "gencode run": lower a module through gencode and
// print (or write) the resulting IR.
//
// Lexing, parsing and AST construction are out of scope for this stage
// (§1): the AST a real build driver would hand to gencode is produced by
// an external front end not implemented here. This subcommand instead
// demonstrates the wiring end-to-end against a small built-in module, the
// same "fn addone(x:int) -> int { return x + 1; }" shape as §8 scenario
// S1, so the CLI exercises the exact path a front end would drive.
func newRunCmd() *cobra.Command {
	var cfgPath string
	opts := &config.Options{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Lower a module to IR and print it",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Load(cfgPath, opts); err != nil {
				return err
			}

			module, ctx := demoModule()
			sink := diag.NewSink()

			irModule, err := irgen.Gencode(module, ctx, sink)
			if err != nil {
				sink.Print()
				return err
			}
			if opts.Out != "" {
				return os.WriteFile(opts.Out, []byte(irModule.String()), 0o644)
			}
			fmt.Print(irModule.String())
			return nil
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "gencode.yaml", "path to a YAML defaults file")
	cmd.Flags().StringVar(&opts.Src, "src", "", "path to a module source (reserved for a future front end)")
	cmd.Flags().StringVar(&opts.Out, "out", "", "path to write the IR dump to")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "accepted but unused: diagnostics are printed once lowering fails")

	return cmd
}

// demoModule builds the fixture described in §8 scenario S1.
func demoModule() (*ast.Module, *types.Context) {
	scope := types.NewScope()
	scope.Declare("x", &types.Variable{Name: "x", Typ: types.Int, IsParameter: true})
	scope.Declare("addone", &types.FunctionType{
		Package:    "main",
		Name:       "addone",
		Params:     []types.Type{types.Int},
		ReturnType: types.Int,
	})

	// A sample named type alias, resolvable through the Context's scope by
	// "gencode inspect"'s ":type" command.
	point := &types.StructType{
		Name: "Point",
		Fields: []types.Field{
			{Name: "x", Typ: types.Int},
			{Name: "y", Typ: types.Int},
		},
	}
	scope.DeclareType("Point", point)

	ctx := types.NewContext(scope)

	loc := diag.Location{File: "demo", Line: 1, Col: 1}
	x := ast.NewIntLiteral(loc, 1)
	ret := ast.NewReturn(loc, ast.NewBinop(loc, "+", ast.NewIdent(loc, "x"), x))

	fn := &ast.FuncDecl{
		Package:    "main",
		Name:       "addone",
		ReturnType: types.Int,
		Locals: []*ast.VarDecl{
			{Name: "x", Typ: types.Int, IsParameter: true, Loc: loc},
		},
		Body: ret,
		Loc:  loc,
	}
	return &ast.Module{
		Name:      "main",
		Types:     []ast.TypeDecl{{Name: "Point", Typ: point, Loc: loc}},
		Functions: []*ast.FuncDecl{fn},
	}, ctx
}

