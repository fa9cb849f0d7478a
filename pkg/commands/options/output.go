// Package options defines shared flag helpers for CLI commands.
package options

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// OutputOptions
type OutputOptions struct {
	JSON bool
}

// AddOutputArg registers --json on cmd and every subcommand.
func AddOutputArg(cmd *cobra.Command, po *OutputOptions) {
	cmd.PersistentFlags().BoolVar(&po.JSON, "json", false,
		"Output errors as JSON.")
}

// HandleError prints err as a JSON object on w when --json is set and
// swallows it; otherwise err is returned unchanged.
func (o *OutputOptions) HandleError(w io.Writer, err error) error {
	if o.JSON && err != nil {
		out := map[string]string{
			"error": err.Error(),
		}
		b, err := json.Marshal(out)
		if err != nil {
			return err
		}
		if w == nil {
			w = color.Output
		}
		_, _ = fmt.Fprintln(w, string(b))
		return nil
	}
	return err
}
