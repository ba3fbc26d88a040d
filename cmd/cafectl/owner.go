package main

import (
	"github.com/spf13/cobra"

	"digitalcafe/cafectl/internal/forms"
	"digitalcafe/cafectl/internal/views"
)

func newOwnerCmd(v *views.View) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "owner",
		Short: "Cafe owner pages",
	}
	cmd.AddCommand(
		newOwnerStaffCmd(v),
		newOwnerMenuCmd(v),
		newOwnerTablesCmd(v),
		newOwnerBookingsCmd(v),
		newOwnerOrdersCmd(v),
	)
	return cmd
}

func newOwnerStaffCmd(v *views.View) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "staff",
		Short: "View your waiters and chefs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return v.OwnerStaff(cmd.Context())
		},
	}

	var form forms.Staff
	add := &cobra.Command{
		Use:   "add",
		Short: "Create a waiter or chef account",
		RunE: func(cmd *cobra.Command, args []string) error {
			return v.AddStaff(cmd.Context(), form)
		},
	}
	add.Flags().StringVar(&form.RoleType, "role", "", "waiter or chef")
	add.Flags().StringVar(&form.Name, "name", "", "full name")
	add.Flags().StringVar(&form.Email, "email", "", "account email")
	add.Flags().StringVar(&form.Password, "password", "", "account password")
	add.Flags().StringVar(&form.Phone, "phone", "", "phone")
	add.Flags().StringVar(&form.Address, "address", "", "address")

	cmd.AddCommand(add)
	return cmd
}

func newOwnerMenuCmd(v *views.View) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Manage your menu",
		RunE: func(cmd *cobra.Command, args []string) error {
			return v.OwnerMenu(cmd.Context())
		},
	}

	var addForm forms.MenuItem
	add := &cobra.Command{
		Use:   "add",
		Short: "Add a menu item",
		RunE: func(cmd *cobra.Command, args []string) error {
			return v.AddMenuItem(cmd.Context(), addForm)
		},
	}
	addMenuItemFlags(add, &addForm)

	var editForm forms.MenuItem
	edit := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a menu item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := idArg(args)
			if err != nil {
				return err
			}
			return v.EditMenuItem(cmd.Context(), id, editForm)
		},
	}
	addMenuItemFlags(edit, &editForm)

	var yes bool
	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a menu item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := idArg(args)
			if err != nil {
				return err
			}
			if !confirm(cmd, yes, "Remove this menu item?") {
				return nil
			}
			return v.RemoveMenuItem(cmd.Context(), id)
		},
	}
	del.Flags().BoolVar(&yes, "yes", false, "skip confirmation")

	cmd.AddCommand(add, edit, del)
	return cmd
}

func addMenuItemFlags(cmd *cobra.Command, form *forms.MenuItem) {
	cmd.Flags().StringVar(&form.Name, "name", "", "item name")
	cmd.Flags().StringVar(&form.Description, "description", "", "item description")
	cmd.Flags().Float64Var(&form.Price, "price", 0, "item price")
	cmd.Flags().StringVar(&form.Category, "category", "beverage", "beverage, food, dessert or snack")
	cmd.Flags().BoolVar(&form.Available, "available", true, "item is available")
}

func newOwnerTablesCmd(v *views.View) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tables",
		Short: "Manage your tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			return v.OwnerTables(cmd.Context())
		},
	}

	var addForm forms.Table
	add := &cobra.Command{
		Use:   "add",
		Short: "Add a table",
		RunE: func(cmd *cobra.Command, args []string) error {
			return v.AddTable(cmd.Context(), addForm)
		},
	}
	addTableFlags(add, &addForm)

	var editForm forms.Table
	edit := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := idArg(args)
			if err != nil {
				return err
			}
			return v.EditTable(cmd.Context(), id, editForm)
		},
	}
	addTableFlags(edit, &editForm)

	status := &cobra.Command{
		Use:   "status <id> <available|booked>",
		Short: "Set a table's status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := idArg(args)
			if err != nil {
				return err
			}
			return v.ChangeTableStatus(cmd.Context(), id, args[1])
		},
	}

	var yes bool
	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := idArg(args)
			if err != nil {
				return err
			}
			if !confirm(cmd, yes, "Remove this table?") {
				return nil
			}
			return v.RemoveTable(cmd.Context(), id)
		},
	}
	del.Flags().BoolVar(&yes, "yes", false, "skip confirmation")

	cmd.AddCommand(add, edit, status, del)
	return cmd
}

func addTableFlags(cmd *cobra.Command, form *forms.Table) {
	cmd.Flags().StringVar(&form.TableNumber, "number", "", "table number, e.g. T10")
	cmd.Flags().IntVar(&form.Capacity, "capacity", 4, "seats")
	cmd.Flags().StringVar(&form.Status, "status", "available", "available or booked")
}

func newOwnerBookingsCmd(v *views.View) *cobra.Command {
	return &cobra.Command{
		Use:   "bookings",
		Short: "List bookings for your cafe",
		RunE: func(cmd *cobra.Command, args []string) error {
			return v.OwnerBookings(cmd.Context())
		},
	}
}

func newOwnerOrdersCmd(v *views.View) *cobra.Command {
	return &cobra.Command{
		Use:   "orders [id]",
		Short: "List orders for your cafe, or show one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return v.OwnerOrders(cmd.Context())
			}
			id, err := idArg(args)
			if err != nil {
				return err
			}
			return v.OwnerOrderDetail(cmd.Context(), id)
		},
	}
}
