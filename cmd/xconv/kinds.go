package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewKindsCommand returns command listing supported kind names
func NewKindsCommand(newConverter converterProvider) *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List supported kinds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			converter, err := newConverter()
			if err != nil {
				return err
			}
			for _, name := range converter.Kinds() {
				if _, err = fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
