package main

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/viant/xconv"
)

type rootOptions struct {
	timeZone string
}

// NewRootCommand returns the root command with all subcommands attached
func NewRootCommand(fs afero.Fs, env *Environment, logger *log.Logger) *cobra.Command {
	options := &rootOptions{}
	rootCmd := &cobra.Command{
		Use:           "xconv",
		Short:         "Convert XML lexical values into typed values.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&options.timeZone, "tz", "", "time zone of unzoned date-time values (defaults to XCONV_TZ or local)")
	newConverter := func() (*xconv.Converter, error) {
		location, err := env.Location(options.timeZone)
		if err != nil {
			return nil, err
		}
		return xconv.NewConverter(xconv.WithLocation(location), xconv.WithLogger(logger)), nil
	}
	rootCmd.AddCommand(NewParseCommand(newConverter, logger))
	rootCmd.AddCommand(NewKindsCommand(newConverter))
	rootCmd.AddCommand(NewScanCommand(fs, newConverter, logger))
	return rootCmd
}
