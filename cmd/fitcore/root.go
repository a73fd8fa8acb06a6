package main

import (
	"encoding/json"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	catalogstore "fitcore/internal/catalog/store"
	"fitcore/internal/platform/config"
	"fitcore/internal/platform/logger"
	verifystore "fitcore/internal/verification/store"
)

type rootOptions struct {
	codesFile    string
	productsFile string
	logLevel     string
	jsonOutput   bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "fitcore",
		Short:        "Verify FitCore product codes and browse the catalog",
		SilenceUsage: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.codesFile, "codes-file", "", "YAML reference table to use instead of the embedded one")
	flags.StringVar(&opts.productsFile, "products-file", "", "YAML catalog to use instead of the embedded one")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level written to stderr (debug, info, warn, error)")
	flags.BoolVar(&opts.jsonOutput, "json", false, "print JSON instead of text")

	cmd.AddCommand(
		newVerifyCmd(opts),
		newSamplesCmd(opts),
		newProductsCmd(opts),
		newCategoriesCmd(opts),
	)
	return cmd
}

func (o *rootOptions) logger(cmd *cobra.Command) *slog.Logger {
	level, err := config.ParseLevel(o.logLevel)
	if err != nil {
		level = slog.LevelWarn
	}
	return logger.NewWithWriter(cmd.ErrOrStderr(), level)
}

func (o *rootOptions) codes() (*verifystore.Table, error) {
	return verifystore.Open(o.codesFile)
}

func (o *rootOptions) catalog() (*catalogstore.Catalog, error) {
	return catalogstore.Open(o.productsFile)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
