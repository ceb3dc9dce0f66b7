package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/svssdeva/css-blocks/css"
)

func newFmtCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmt <file>...",
		Short: "Reprint definition files in canonical form",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				if err := printFile(cmd, path); err != nil {
					return err
				}
			}
			return nil
		},
	}
	return cmd
}

func printFile(cmd *cobra.Command, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var p css.Parser
	doc := p.ParseStyleSheet(css.NewScanner(f))
	if len(p.Errors) > 0 {
		return fmt.Errorf("%s: %s", path, p.Errors.Error())
	}

	var printer css.Printer
	if err := printer.Fprint(cmd.OutOrStdout(), doc); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout())
	return nil
}
