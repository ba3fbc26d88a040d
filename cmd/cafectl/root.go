package main

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"digitalcafe/cafectl/internal/forms"
	"digitalcafe/cafectl/internal/views"
)

func newRootCmd(v *views.View) *cobra.Command {
	root := &cobra.Command{
		Use:           "cafectl",
		Short:         "Digital Cafe terminal client",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newLoginCmd(v),
		newRegisterCmd(v),
		newLogoutCmd(v),
		newWhoamiCmd(v),
		newMenuCmd(v),
		newProfileCmd(v),
		newCafesCmd(v),
		newBookCmd(v),
		newBookingsCmd(v),
		newOrderCmd(v),
		newOrdersCmd(v),
		newAdminCmd(v),
		newOwnerCmd(v),
		newChefCmd(v),
		newWaiterCmd(v),
	)
	return root
}

func newLoginCmd(v *views.View) *cobra.Command {
	var form forms.Login
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in",
		RunE: func(cmd *cobra.Command, args []string) error {
			return v.Login(cmd.Context(), form)
		},
	}
	cmd.Flags().StringVar(&form.Email, "email", "", "account email")
	cmd.Flags().StringVar(&form.Password, "password", "", "account password")
	return cmd
}

func newRegisterCmd(v *views.View) *cobra.Command {
	var form forms.Signup
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a customer account",
		RunE: func(cmd *cobra.Command, args []string) error {
			return v.Register(cmd.Context(), form)
		},
	}
	cmd.Flags().StringVar(&form.Name, "name", "", "full name")
	cmd.Flags().StringVar(&form.Email, "email", "", "account email")
	cmd.Flags().StringVar(&form.Password, "password", "", "account password")
	return cmd
}

func newLogoutCmd(v *views.View) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out",
		RunE: func(cmd *cobra.Command, args []string) error {
			v.Logout(cmd.Context())
			return nil
		},
	}
}

func newWhoamiCmd(v *views.View) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in account",
		Run: func(cmd *cobra.Command, args []string) {
			v.Whoami()
		},
	}
}

func newMenuCmd(v *views.View) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Show the pages available to your role",
		Run: func(cmd *cobra.Command, args []string) {
			v.Menu()
		},
	}
}

// idArg parses the single positional id every detail/mutation command takes.
func idArg(args []string) (int, error) {
	id, err := strconv.Atoi(args[0])
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", args[0])
	}
	return id, nil
}

// confirm asks before a delete, unless --yes was given.
func confirm(cmd *cobra.Command, yes bool, prompt string) bool {
	if yes {
		return true
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N] ", prompt)
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
