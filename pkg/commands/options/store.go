package options

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// StoreOptions select where the list is kept. Both flags override the
// config file and environment.
type StoreOptions struct {
	Path    string
	Backend string
}

// AddStoreArgs registers --path and --backend on cmd and every subcommand and
// binds them to the matching config keys.
func AddStoreArgs(cmd *cobra.Command, o *StoreOptions) {
	cmd.PersistentFlags().StringVar(&o.Path, "path", "",
		"Directory holding the list (default ~/.itemlist).")
	cmd.PersistentFlags().StringVar(&o.Backend, "backend", "",
		"Storage backend: diskv, sqlite or memory.")

	_ = viper.BindPFlag("path", cmd.PersistentFlags().Lookup("path"))
	_ = viper.BindPFlag("backend", cmd.PersistentFlags().Lookup("backend"))
}
