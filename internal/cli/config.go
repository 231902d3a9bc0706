package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/ytget/flashcards/internal/config"
)

// newConfigCmd represents the config command group
func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the configuration file",
		Long: `Commands for the configuration file at
$XDG_CONFIG_HOME/flashcards/config.toml. Values can be overridden with a .env
file or the FLASHCARDS_BACKEND_URL, FLASHCARDS_EXPORT_DIR and
FLASHCARDS_REQUEST_TIMEOUT environment variables.`,
	}

	configCmd.AddCommand(newConfigPathCmd())
	configCmd.AddCommand(newConfigInitCmd())
	configCmd.AddCommand(newConfigShowCmd())

	return configCmd
}

// newConfigPathCmd prints the config file location
func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), config.GetConfigFilePath())
		},
	}
}

// newConfigInitCmd writes the default config file
func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the default config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.InitConfig(force)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created config at %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing config file")
	return cmd
}

// newConfigShowCmd prints the resolved configuration as TOML
func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the resolved configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "# %s\n", config.GetConfigFilePath())
			if err := toml.NewEncoder(out).Encode(cfg); err != nil {
				return fmt.Errorf("error encoding config: %w", err)
			}
			fmt.Fprintf(out, "# resolved export directory: %s\n", cfg.ResolveExportDir())
			return nil
		},
	}
}
