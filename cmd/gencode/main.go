// Command gencode drives the code generator from the command line: run a
// module through gencode, or lower it and inspect the resulting IR module
// interactively.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gencode/src/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "gencode",
		Short:   "A three-address IR code generator for a small systems language",
		Version: config.Version(),
	}
	root.AddCommand(newRunCmd())
	root.AddCommand(newInspectCmd())
	return root
}
