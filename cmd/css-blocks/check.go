package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/svssdeva/css-blocks/block"
	"github.com/svssdeva/css-blocks/config"
)

func newCheckCmd(cfgPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <file>...",
		Short: "Validate definition files against their blocks",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loadOptions(*cfgPath)
			if err != nil {
				return err
			}

			total := 0
			for _, path := range args {
				diags, err := checkFile(opts, path)
				if err != nil {
					return err
				}
				for _, d := range diags {
					fmt.Fprintln(cmd.ErrOrStderr(), d.String())
				}
				total += len(diags)
			}
			if total > 0 {
				return fmt.Errorf("%d problem(s) found", total)
			}
			return nil
		},
	}
	return cmd
}

// checkFile builds a block from a definition file and validates it.
func checkFile(opts *config.Options, path string) (block.DiagnosticList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	factory := block.NewFactory(opts)
	blk, doc := factory.Parse(f, block.NameFromPath(path), path)
	if err := block.ProcessDefinition(opts, doc, blk, path); err != nil {
		return nil, err
	}
	return blk.Diagnostics(), nil
}
