package main

import (
	"github.com/spf13/cobra"

	"github.com/svssdeva/css-blocks/config"
)

func newRootCmd() *cobra.Command {
	var cfgPath string

	cmd := &cobra.Command{
		Use:           "css-blocks",
		Short:         "Validate and format css-blocks definition files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to a css-blocks YAML config file")

	cmd.AddCommand(newCheckCmd(&cfgPath))
	cmd.AddCommand(newFmtCmd())
	cmd.AddCommand(newWatchCmd(&cfgPath))
	return cmd
}

func loadOptions(path string) (*config.Options, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}
