package main

import (
	"github.com/spf13/cobra"

	"digitalcafe/cafectl/internal/forms"
	"digitalcafe/cafectl/internal/views"
)

func newAdminCmd(v *views.View) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Administration pages",
	}
	cmd.AddCommand(newAdminCafesCmd(v), newAdminOwnersCmd(v), newAdminDashboardCmd(v))
	return cmd
}

func newAdminCafesCmd(v *views.View) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cafes",
		Short: "Manage cafes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return v.AdminCafes(cmd.Context())
		},
	}

	var addForm forms.Cafe
	add := &cobra.Command{
		Use:   "add",
		Short: "Add a cafe",
		RunE: func(cmd *cobra.Command, args []string) error {
			return v.AddCafe(cmd.Context(), addForm)
		},
	}
	add.Flags().StringVar(&addForm.Name, "name", "", "cafe name")
	add.Flags().StringVar(&addForm.Address, "address", "", "cafe address")
	add.Flags().StringVar(&addForm.Phone, "phone", "", "cafe phone")

	var editForm forms.Cafe
	edit := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a cafe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := idArg(args)
			if err != nil {
				return err
			}
			return v.EditCafe(cmd.Context(), id, editForm)
		},
	}
	edit.Flags().StringVar(&editForm.Name, "name", "", "cafe name")
	edit.Flags().StringVar(&editForm.Address, "address", "", "cafe address")
	edit.Flags().StringVar(&editForm.Phone, "phone", "", "cafe phone")

	var yes bool
	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a cafe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := idArg(args)
			if err != nil {
				return err
			}
			if !confirm(cmd, yes, "Remove this cafe?") {
				return nil
			}
			return v.RemoveCafe(cmd.Context(), id)
		},
	}
	del.Flags().BoolVar(&yes, "yes", false, "skip confirmation")

	cmd.AddCommand(add, edit, del)
	return cmd
}

func newAdminOwnersCmd(v *views.View) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "owners",
		Short: "Manage cafe owner accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return v.CafeOwners(cmd.Context())
		},
	}

	activate := &cobra.Command{
		Use:   "activate <id>",
		Short: "Activate a cafe owner",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := idArg(args)
			if err != nil {
				return err
			}
			return v.SetCafeOwnerActive(cmd.Context(), id, true)
		},
	}
	deactivate := &cobra.Command{
		Use:   "deactivate <id>",
		Short: "Deactivate a cafe owner",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := idArg(args)
			if err != nil {
				return err
			}
			return v.SetCafeOwnerActive(cmd.Context(), id, false)
		},
	}

	cmd.AddCommand(activate, deactivate)
	return cmd
}

func newAdminDashboardCmd(v *views.View) *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show order and sales stats",
		RunE: func(cmd *cobra.Command, args []string) error {
			return v.Dashboard(cmd.Context(), from, to)
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "start date (YYYY-MM-DD), default 7 days ago")
	cmd.Flags().StringVar(&to, "to", "", "end date (YYYY-MM-DD), default today")
	return cmd
}
