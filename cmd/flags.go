package cmd

import (
	"github.com/gnames/watchseed/pkg/config"
	"github.com/spf13/cobra"
)

// stringFlag connects a string flag to the option it sets.
type stringFlag struct {
	name string
	opt  func(string) config.Option
}

// stringOptions returns options for flags explicitly set by the user.
// Flags unknown to the command are ignored.
func stringOptions(cmd *cobra.Command, flags ...stringFlag) []config.Option {
	var res []config.Option
	for _, f := range flags {
		if !cmd.Flags().Changed(f.name) {
			continue
		}
		s, err := cmd.Flags().GetString(f.name)
		if err != nil {
			continue
		}
		res = append(res, f.opt(s))
	}
	return res
}

// boolOption returns the option for a bool flag if it was set.
func boolOption(
	cmd *cobra.Command,
	name string,
	opt func(bool) config.Option,
) []config.Option {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	b, err := cmd.Flags().GetBool(name)
	if err != nil {
		return nil
	}
	return []config.Option{opt(b)}
}
