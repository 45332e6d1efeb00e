package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/mallcloud/mallctl/internal/adapters/render/storefront"
	"github.com/mallcloud/mallctl/internal/domain"
	"github.com/spf13/cobra"
)

func newCartCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Manage the shopping cart",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCartList(cmd, app)
		},
	}

	cmd.AddCommand(
		newCartAddCmd(app),
		newCartQtyCmd(app),
		newCartRemoveCmd(app),
		newCartSelectCmd(app),
		newCartSelectAllCmd(app),
		newCartRemoveSelectedCmd(app),
		newCartClearCmd(app),
	)

	return cmd
}

func runCartList(cmd *cobra.Command, app *app) error {
	output, err := storefront.RenderCart(app.cart.Snapshot(), app.cart.Items())
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), output)
	return err
}

func newCartAddCmd(app *app) *cobra.Command {
	var (
		quantity int
		specs    []string
	)

	cmd := &cobra.Command{
		Use:   "add <product-id>",
		Short: "Add a product to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			productID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid product id %q", args[0])
			}

			parsedSpecs, err := parseSpecs(specs)
			if err != nil {
				return err
			}

			var product domain.Product
			err = runFetchSpinner(cmd.Context(), cmd.OutOrStdout(), "Fetching product...", func(ctx context.Context) error {
				var fetchErr error
				product, fetchErr = app.client.Product(ctx, productID)
				return fetchErr
			})
			if err != nil {
				return fmt.Errorf("fetch product: %w", err)
			}

			candidate := domain.CartItem{
				ProductID: product.ID,
				Name:      product.Name,
				Image:     product.MainImage(),
				Price:     product.Price,
				SKU:       product.SKU,
				Quantity:  quantity,
				Stock:     product.Stock,
				Specs:     parsedSpecs,
			}

			if err := app.cart.Add(cmd.Context(), candidate); err != nil {
				return fmt.Errorf("add to cart: %w", err)
			}

			return runCartList(cmd, app)
		},
	}

	cmd.Flags().IntVar(&quantity, "qty", 1, "Quantity to add")
	cmd.Flags().StringArrayVar(&specs, "spec", nil, "Spec as name=value (repeatable)")

	return cmd
}

func newCartQtyCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "qty <line-id> <quantity>",
		Short: "Set the quantity of a cart line (clamped to stock)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid line id %q", args[0])
			}
			quantity, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid quantity %q", args[1])
			}

			if err := app.cart.UpdateQuantity(cmd.Context(), id, quantity); err != nil {
				return fmt.Errorf("update quantity: %w", err)
			}

			return runCartList(cmd, app)
		},
	}
}

func newCartRemoveCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <line-id>",
		Short: "Remove a cart line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid line id %q", args[0])
			}

			if err := app.cart.Remove(cmd.Context(), id); err != nil {
				return fmt.Errorf("remove line: %w", err)
			}

			return runCartList(cmd, app)
		},
	}
}

func newCartSelectCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "select <line-id>",
		Short: "Toggle selection of a cart line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid line id %q", args[0])
			}

			if err := app.cart.ToggleSelect(cmd.Context(), id); err != nil {
				return fmt.Errorf("toggle selection: %w", err)
			}

			return runCartList(cmd, app)
		},
	}
}

func newCartSelectAllCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "select-all",
		Short: "Select every line, or deselect all when everything is selected",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.cart.ToggleSelectAll(cmd.Context()); err != nil {
				return fmt.Errorf("toggle select all: %w", err)
			}

			return runCartList(cmd, app)
		},
	}
}

func newCartRemoveSelectedCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rm-selected",
		Short: "Remove all selected lines",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.cart.RemoveSelected(cmd.Context()); err != nil {
				return fmt.Errorf("remove selected: %w", err)
			}

			return runCartList(cmd, app)
		},
	}
}

func newCartClearCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.cart.Clear(cmd.Context()); err != nil {
				return fmt.Errorf("clear cart: %w", err)
			}

			return runCartList(cmd, app)
		},
	}
}

func parseSpecs(raw []string) ([]domain.Spec, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	specs := make([]domain.Spec, 0, len(raw))
	for _, entry := range raw {
		name, value, ok := strings.Cut(entry, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid spec %q, expected name=value", entry)
		}
		specs = append(specs, domain.Spec{Name: name, Value: value})
	}

	return specs, nil
}
