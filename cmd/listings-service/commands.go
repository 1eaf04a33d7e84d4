package main

import (
	"fmt"
	"listings-service/internal"
	"listings-service/internal/adapters/catalog"
	"listings-service/internal/configs"
	"listings-service/internal/core/domain"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var envFile string

	serve := func(cmd *cobra.Command, args []string) error {
		appConfig, err := configs.LoadConfig(envFile)
		if err != nil {
			return fmt.Errorf("error loading application configuration: %w", err)
		}

		application, err := internal.NewApp(appConfig)
		if err != nil {
			return fmt.Errorf("failed to initialize application: %w", err)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return application.Run(ctx)
	}

	root := &cobra.Command{
		Use:           "listings-service",
		Short:         "Rental listings API: catalog, inquiries and newsletter",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve,
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", "", "path to .env file (default: ./.env if present)")

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API (default command)",
		Args:  cobra.NoArgs,
		RunE:  serve,
	})
	root.AddCommand(newValidateCatalogCmd())

	return root
}

func newValidateCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate-catalog [path]",
		Short: "Check a YAML property catalog; without a path the embedded catalog is checked",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				c   *catalog.StaticCatalog
				err error
			)
			source := "embedded catalog"
			if len(args) == 1 {
				source = args[0]
				c, err = catalog.LoadFromFile(args[0])
			} else {
				c, err = catalog.LoadEmbedded()
			}
			if err != nil {
				return fmt.Errorf("%s is invalid: %w", source, err)
			}

			properties, err := c.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: OK, %d properties, %d featured\n",
				source, len(properties), len(domain.SelectFeatured(properties)))
			return nil
		},
	}
}
