package options

import (
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/itemlist/pkg/runner/get"
)

// FormatOptions
type FormatOptions struct {
	Format string
	All    bool
}

func AddFormatArgs(cmd *cobra.Command, o *FormatOptions) {
	cmd.Flags().StringVarP(&o.Format, "output", "o", get.FormatText,
		"Output format. One of 'text', 'json' or 'yaml'.")
	cmd.Flags().BoolVar(&o.All, "all", false,
		"Show items hidden by the query, dimmed (text output only).")
}

// Validate rejects unknown output formats before anything is loaded.
func (o *FormatOptions) Validate() error {
	switch o.Format {
	case get.FormatText, get.FormatJSON, get.FormatYAML:
		return nil
	default:
		return fmt.Errorf("unknown output format %q, want text, json or yaml", o.Format)
	}
}
