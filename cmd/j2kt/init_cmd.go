package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/j2kt/internal/config"
	"github.com/raphi011/j2kt/internal/log"
)

func newInitCmd(opts *rootOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		Long: `Write a commented default configuration to ~/.config/j2kt/config.toml,
or to the path given with --config.

Per-project overrides go into .j2kt.toml next to the .idea directory and use
the same keys.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath(opts)
			if err != nil {
				return err
			}
			if err := config.Init(path, force); err != nil {
				return err
			}
			log.FromContext(cmd.Context()).Printf("Created config file: %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing config file")
	return cmd
}

// configPath returns the --config path or the default location.
func configPath(opts *rootOptions) (string, error) {
	if opts.configPath != "" {
		return config.ExpandHome(opts.configPath)
	}
	return config.DefaultPath()
}
