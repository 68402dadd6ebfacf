package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/viant/xconv"
)

type converterProvider func() (*xconv.Converter, error)

type parseOptions struct {
	null         bool
	defaultValue string
	try          bool
}

// NewParseCommand returns command converting a literal as a named kind
func NewParseCommand(newConverter converterProvider, logger *log.Logger) *cobra.Command {
	options := &parseOptions{}
	cmd := &cobra.Command{
		Use:     "parse <kind> [literal]",
		Aliases: []string{"p"},
		Short:   "Convert a literal as the named kind",
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			converter, err := newConverter()
			if err != nil {
				return err
			}
			kind := args[0]
			var text *string
			if len(args) == 2 && !options.null {
				text = &args[1]
			}
			value, err := converter.Parse(nil, kind, text)
			if err != nil && xconv.IsData(err) && cmd.Flags().Changed("default") {
				logger.Debug("using default", "kind", kind, "error", err)
				if value, err = converter.Parse(nil, kind, &options.defaultValue); err != nil {
					return fmt.Errorf("invalid default: %w", err)
				}
			}
			if err != nil && !xconv.IsData(err) {
				return err
			}
			if wErr := writeResult(cmd.OutOrStdout(), newResult(kind, text, value, err)); wErr != nil {
				return wErr
			}
			if err != nil && !options.try {
				return err
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&options.null, "null", false, "convert a null input")
	cmd.Flags().StringVar(&options.defaultValue, "default", "", "value used when the literal is null or invalid")
	cmd.Flags().BoolVar(&options.try, "try", false, "report invalid literal without failing")
	return cmd
}
