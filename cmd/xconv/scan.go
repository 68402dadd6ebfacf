package main

import (
	"encoding/xml"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/viant/xconv"
	"github.com/viant/xconv/xmlattr"
)

type scanOptions struct {
	element string
	attr    string
	kind    string
	limit   int
	strict  bool
}

// NewScanCommand returns command converting an attribute of every matching element of an XML document
func NewScanCommand(fs afero.Fs, newConverter converterProvider, logger *log.Logger) *cobra.Command {
	options := &scanOptions{}
	cmd := &cobra.Command{
		Use:   "scan <file>",
		Short: "Convert an attribute of each matching element in an XML document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			converter, err := newConverter()
			if err != nil {
				return err
			}
			if !converter.Supports(nil, options.kind) {
				return fmt.Errorf("kind %v: %w", options.kind, xconv.ErrUnsupportedType)
			}
			file, err := fs.Open(args[0])
			if err != nil {
				return err
			}
			defer file.Close()
			occurrence, failures := 0, 0
			err = xmlattr.Scan(file, options.element, func(el xml.StartElement) (bool, error) {
				occurrence++
				text := xmlattr.Lookup(el, options.attr)
				value, err := converter.Parse(nil, options.kind, text)
				if err != nil {
					failures++
					logger.Debug("conversion failed", "element", el.Name.Local, "occurrence", occurrence, "error", err)
				}
				result := newResult(options.kind, text, value, err)
				result.Element = el.Name.Local
				result.Occurrence = occurrence
				if err = writeResult(cmd.OutOrStdout(), result); err != nil {
					return false, err
				}
				return options.limit == 0 || occurrence < options.limit, nil
			})
			if err != nil {
				return fmt.Errorf("failed to scan %v: %w", args[0], err)
			}
			logger.Debug("scan completed", "file", args[0], "occurrences", occurrence, "failures", failures)
			if options.strict && failures > 0 {
				return fmt.Errorf("%d of %d %s@%s values failed to convert", failures, occurrence, options.element, options.attr)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&options.element, "element", "e", "", "element local name, all elements when empty")
	cmd.Flags().StringVarP(&options.attr, "attr", "a", "", "attribute name, local or {space}local")
	cmd.Flags().StringVarP(&options.kind, "kind", "k", "", "kind name, see kinds command")
	cmd.Flags().IntVar(&options.limit, "limit", 0, "maximum number of elements")
	cmd.Flags().BoolVar(&options.strict, "strict", false, "fail when any value does not convert")
	_ = cmd.MarkFlagRequired("attr")
	_ = cmd.MarkFlagRequired("kind")
	return cmd
}
