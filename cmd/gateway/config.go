package main

import (
	"fmt"
	"strings"

	"github.com/DanielPopoola/payment-forwarding-gateway/internal/config"
	"github.com/spf13/cobra"
)

func configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Validate configuration and print the effective settings",
		Long:  "Loads configuration the same way serve does and prints it. Passwords are never printed.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			printConfig(cmd, cfg)
			return nil
		},
	}
}

func printConfig(cmd *cobra.Command, cfg *config.Config) {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Gateway configuration")
	fmt.Fprintln(out, strings.Repeat("=", 40))

	fmt.Fprintf(out, "  Env:             %s\n", cfg.Primary.Env)
	fmt.Fprintf(out, "  Port:            %s\n", cfg.Server.Port)
	fmt.Fprintf(out, "  Request timeout: %s\n", cfg.Server.RequestTimeout)

	fmt.Fprintln(out, "\nBank:")
	fmt.Fprintf(out, "  URL:     %s\n", cfg.BankClient.URL)
	fmt.Fprintf(out, "  Timeout: %s\n", cfg.BankClient.Timeout)

	fmt.Fprintln(out, "\nStore:")
	fmt.Fprintf(out, "  Backend: %s\n", cfg.Store.Backend)
	switch cfg.Store.Backend {
	case config.StorePostgres:
		fmt.Fprintf(out, "  Database: %s@%s:%d/%s\n", cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.Name)
	case config.StoreRedis:
		fmt.Fprintf(out, "  Redis:    %s db=%d\n", cfg.Redis.Addr, cfg.Redis.DB)
	}

	fmt.Fprintln(out, "\nEvents:")
	if cfg.Events.Enabled() {
		fmt.Fprintf(out, "  Brokers: %s\n", strings.Join(cfg.Events.Brokers, ","))
		fmt.Fprintf(out, "  Topic:   %s\n", cfg.Events.Topic)
	} else {
		fmt.Fprintln(out, "  disabled")
	}

	fmt.Fprintln(out, "\nLogger:")
	fmt.Fprintf(out, "  Level:  %s\n", cfg.Logger.Level)
	fmt.Fprintf(out, "  Format: %s\n", cfg.Logger.Format)
}
