package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"digitalcafe/cafectl/internal/forms"
	"digitalcafe/cafectl/internal/views"
)

func newCafesCmd(v *views.View) *cobra.Command {
	return &cobra.Command{
		Use:   "cafes [id]",
		Short: "Browse cafes, or one cafe with its tables and menu",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return v.Cafes(cmd.Context())
			}
			id, err := idArg(args)
			if err != nil {
				return err
			}
			return v.CafeDetail(cmd.Context(), id)
		},
	}
}

func newBookCmd(v *views.View) *cobra.Command {
	var form forms.Booking
	cmd := &cobra.Command{
		Use:   "book",
		Short: "Book a table",
		RunE: func(cmd *cobra.Command, args []string) error {
			return v.BookTable(cmd.Context(), form)
		},
	}
	cmd.Flags().IntVar(&form.CafeID, "cafe", 0, "cafe id")
	cmd.Flags().IntVar(&form.TableID, "table", 0, "table id")
	cmd.Flags().StringVar(&form.BookingDate, "date", "", "booking date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&form.BookingTime, "time", "", "booking time (HH:MM)")
	return cmd
}

func newBookingsCmd(v *views.View) *cobra.Command {
	return &cobra.Command{
		Use:   "bookings",
		Short: "List your bookings",
		RunE: func(cmd *cobra.Command, args []string) error {
			return v.MyBookings(cmd.Context())
		},
	}
}

func newOrderCmd(v *views.View) *cobra.Command {
	var form forms.Order
	var items []string
	cmd := &cobra.Command{
		Use:   "order",
		Short: "Place an order",
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := parseOrderItems(items)
			if err != nil {
				return err
			}
			form.Items = lines
			return v.PlaceOrder(cmd.Context(), form)
		},
	}
	cmd.Flags().IntVar(&form.CafeID, "cafe", 0, "cafe id")
	cmd.Flags().IntVar(&form.TableID, "table", 0, "table id")
	cmd.Flags().IntVar(&form.BookingID, "booking", 0, "booking id (optional)")
	cmd.Flags().StringVar(&form.OrderDate, "date", "", "order date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&form.OrderTime, "time", "", "order time (HH:MM)")
	cmd.Flags().StringArrayVar(&items, "item", nil, "menu item as id=quantity, repeatable")
	return cmd
}

// parseOrderItems turns repeated --item 11=2 flags into order lines.
func parseOrderItems(items []string) ([]forms.OrderLine, error) {
	lines := make([]forms.OrderLine, 0, len(items))
	for _, raw := range items {
		id, qty, ok := strings.Cut(raw, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --item %q, want id=quantity", raw)
		}
		menuItemID, err := strconv.Atoi(id)
		if err != nil {
			return nil, fmt.Errorf("invalid --item %q, want id=quantity", raw)
		}
		quantity, err := strconv.Atoi(qty)
		if err != nil || quantity < 0 {
			return nil, fmt.Errorf("invalid quantity in --item %q", raw)
		}
		lines = append(lines, forms.OrderLine{MenuItemID: menuItemID, Quantity: quantity})
	}
	return lines, nil
}

func newOrdersCmd(v *views.View) *cobra.Command {
	return &cobra.Command{
		Use:   "orders [id]",
		Short: "List your orders, or show one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return v.MyOrders(cmd.Context())
			}
			id, err := idArg(args)
			if err != nil {
				return err
			}
			return v.OrderDetail(cmd.Context(), id)
		},
	}
}

func newProfileCmd(v *views.View) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or update your profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			return v.Profile(cmd.Context())
		},
	}
	cmd.AddCommand(newProfileUpdateCmd(v))
	return cmd
}
