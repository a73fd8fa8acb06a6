package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"fitcore/internal/catalog/models"
	catalogservice "fitcore/internal/catalog/service"
)

func newProductsCmd(root *rootOptions) *cobra.Command {
	var filter models.Filter

	cmd := &cobra.Command{
		Use:   "products",
		Short: "List catalog products, optionally filtered",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog, err := root.catalog()
			if err != nil {
				return err
			}
			svc := catalogservice.New(catalog, catalogservice.WithLogger(root.logger(cmd)))
			filter.Query = strings.TrimSpace(filter.Query)
			products := svc.Search(cmd.Context(), filter)

			out := cmd.OutOrStdout()
			if root.jsonOutput {
				return writeJSON(out, products)
			}
			for _, p := range products {
				if _, err := fmt.Fprintf(out, "%s\t%s\t%s\t$%s\n", p.ID, p.Name, p.Category, p.Price); err != nil {
					return err
				}
			}
			_, err = fmt.Fprintf(out, "%d product(s)\n", len(products))
			return err
		},
	}

	cmd.Flags().StringVarP(&filter.Query, "query", "q", "", "match name or description, ignoring case")
	cmd.Flags().StringVarP(&filter.Category, "category", "c", models.AllCategories, "exact category name")
	return cmd
}

func newCategoriesCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List catalog categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog, err := root.catalog()
			if err != nil {
				return err
			}
			categories := catalogservice.New(catalog).Categories()
			out := cmd.OutOrStdout()
			if root.jsonOutput {
				return writeJSON(out, categories)
			}
			_, err = fmt.Fprintln(out, strings.Join(categories, "\n"))
			return err
		},
	}
}
