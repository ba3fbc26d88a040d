package views

import (
	"context"
	"strconv"

	"digitalcafe/cafectl/internal/api"
	"digitalcafe/cafectl/internal/events"
	"digitalcafe/cafectl/internal/forms"
	"digitalcafe/cafectl/internal/model"
)

func (v *View) OwnerStaff(ctx context.Context) error {
	if err := v.requireRole(model.RoleCafeOwner); err != nil {
		return err
	}
	waiters, chefs, err := v.api.Staff(ctx)
	if err != nil {
		return actionError(err, "failed to load staff")
	}

	v.printf("Waiters\n")
	v.staffTable(waiters, "No waiters found.")
	v.printf("\nChefs\n")
	v.staffTable(chefs, "No chefs found.")
	return nil
}

func (v *View) staffTable(staff []model.User, empty string) {
	if len(staff) == 0 {
		v.printf("%s\n", empty)
		return
	}
	rows := make([][]string, 0, len(staff))
	for _, member := range staff {
		rows = append(rows, []string{
			strconv.Itoa(member.ID),
			member.Name,
			member.Email,
			orDash(member.Phone),
		})
	}
	v.table([]string{"ID", "Name", "Email", "Phone"}, rows)
}

// AddStaff creates a waiter or chef account under the owner's cafe.
func (v *View) AddStaff(ctx context.Context, form forms.Staff) error {
	if err := v.requireRole(model.RoleCafeOwner); err != nil {
		return err
	}
	if err := forms.Validate(form); err != nil {
		return err
	}
	user, err := v.api.CreateUser(ctx, api.CreateUserRequest{
		Name:     form.Name,
		Email:    form.Email,
		Password: form.Password,
		RoleType: form.RoleType,
		Phone:    form.Phone,
		Address:  form.Address,
	})
	if err != nil {
		return actionError(err, "failed to create staff account")
	}
	v.bus.Publish(events.TopicStaff)
	v.printf("%s account created for %s.\n", user.Role(), user.Name)
	return nil
}
