package main

import (
	"github.com/spf13/cobra"

	"digitalcafe/cafectl/internal/model"
	"digitalcafe/cafectl/internal/views"
)

func newChefCmd(v *views.View) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chef",
		Short: "Kitchen pages",
	}

	orders := &cobra.Command{
		Use:   "orders",
		Short: "List orders to prepare",
		RunE: func(cmd *cobra.Command, args []string) error {
			return v.ChefQueue(cmd.Context())
		},
	}
	prepare := &cobra.Command{
		Use:   "prepare <id>",
		Short: "Mark an order preparing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := idArg(args)
			if err != nil {
				return err
			}
			return v.ChefSetStatus(cmd.Context(), id, model.StatusPreparing)
		},
	}
	ready := &cobra.Command{
		Use:   "ready <id>",
		Short: "Mark an order ready",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := idArg(args)
			if err != nil {
				return err
			}
			return v.ChefSetStatus(cmd.Context(), id, model.StatusReady)
		},
	}

	cmd.AddCommand(orders, prepare, ready)
	return cmd
}

func newWaiterCmd(v *views.View) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "waiter",
		Short: "Service pages",
	}

	orders := &cobra.Command{
		Use:   "orders",
		Short: "List ready-to-serve and all orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			return v.WaiterBoard(cmd.Context())
		},
	}
	serve := &cobra.Command{
		Use:   "serve <id>",
		Short: "Mark an order served",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := idArg(args)
			if err != nil {
				return err
			}
			return v.WaiterServe(cmd.Context(), id)
		},
	}

	cmd.AddCommand(orders, serve)
	return cmd
}
