package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/bookshopctl/internal/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage bookshopctl configuration",
	}

	cmd.AddCommand(
		newConfigInitCmd(),
		newConfigShowCmd(),
		newConfigPathCmd(),
	)
	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var (
		baseURL string
		force   bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter config file",
		Long: `Write the current effective configuration to the default config path.
Refuses to overwrite an existing file unless --force is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.DefaultPath()
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}

			if baseURL != "" {
				cfg.API.BaseURL = baseURL
			}
			if err := config.Save(cfg); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			ok("wrote %s", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&baseURL, "base-url", "", "API base URL to record")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			header("Configuration")
			fmt.Printf("  API base URL: %s\n", cfg.API.BaseURL)
			fmt.Printf("  Token env:    %s", cfg.API.TokenEnv)
			if cfg.API.Token != "" {
				fmt.Print("  (set)")
			}
			fmt.Println()
			fmt.Printf("  Data dir:     %s\n", cfg.Defaults.DataDir)
			fmt.Printf("  Page size:    %d\n", cfg.Defaults.EffectivePageSize())
			return nil
		},
	}
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(config.DefaultPath())
		},
	}
}
