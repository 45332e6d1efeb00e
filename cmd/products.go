package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/mallcloud/mallctl/internal/adapters/api"
	"github.com/mallcloud/mallctl/internal/adapters/render/storefront"
	"github.com/mallcloud/mallctl/internal/domain"
	"github.com/spf13/cobra"
)

func newProductsCmd(app *app) *cobra.Command {
	var (
		keyword    string
		categoryID int64
		page       int
		pageSize   int
		sortOrder  string
	)

	cmd := &cobra.Command{
		Use:   "products",
		Short: "Browse the catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			query := api.ProductQuery{
				Page:       page,
				PageSize:   pageSize,
				Keyword:    keyword,
				CategoryID: categoryID,
				Sort:       sortOrder,
			}

			var result api.ProductPage
			err := runFetchSpinner(cmd.Context(), cmd.OutOrStdout(), "Fetching products...", func(ctx context.Context) error {
				var fetchErr error
				result, fetchErr = app.client.Products(ctx, query)
				return fetchErr
			})
			if err != nil {
				return fmt.Errorf("fetch products: %w", err)
			}

			output, err := storefront.RenderProducts(result.Items, result.Total)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), output)
			return err
		},
	}

	cmd.Flags().StringVar(&keyword, "keyword", "", "Search keyword")
	cmd.Flags().Int64Var(&categoryID, "category", 0, "Category ID")
	cmd.Flags().IntVar(&page, "page", 1, "Page number")
	cmd.Flags().IntVar(&pageSize, "page-size", 20, "Results per page")
	cmd.Flags().StringVar(&sortOrder, "sort", "", "Sort order (sales, price_asc, price_desc, newest)")

	cmd.AddCommand(newProductsShowCmd(app))

	return cmd
}

func newProductsShowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <product-id>",
		Short: "Show one product in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid product id %q", args[0])
			}

			var product domain.Product
			err = runFetchSpinner(cmd.Context(), cmd.OutOrStdout(), "Fetching product...", func(ctx context.Context) error {
				var fetchErr error
				product, fetchErr = app.client.Product(ctx, id)
				return fetchErr
			})
			if err != nil {
				return fmt.Errorf("fetch product: %w", err)
			}

			output, err := storefront.RenderProduct(product)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), output)
			return err
		},
	}
}
