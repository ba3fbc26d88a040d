package views

import (
	"context"
	"strconv"

	"digitalcafe/cafectl/internal/events"
	"digitalcafe/cafectl/internal/model"
)

func (v *View) CafeOwners(ctx context.Context) error {
	if err := v.requireRole(model.RoleAdmin); err != nil {
		return err
	}
	owners, err := v.api.CafeOwners(ctx)
	if err != nil {
		return actionError(err, "failed to load cafe owners")
	}

	if len(owners) == 0 {
		v.printf("No cafe owners found.\n")
		return nil
	}
	rows := make([][]string, 0, len(owners))
	for _, owner := range owners {
		status := "inactive"
		if owner.Active {
			status = "active"
		}
		rows = append(rows, []string{
			strconv.Itoa(owner.ID),
			owner.Name,
			owner.Email,
			status,
		})
	}
	v.table([]string{"ID", "Name", "Email", "Status"}, rows)
	return nil
}

// SetCafeOwnerActive toggles one owner account and tells any other open
// cafe-owner view to refresh.
func (v *View) SetCafeOwnerActive(ctx context.Context, id int, active bool) error {
	if err := v.requireRole(model.RoleAdmin); err != nil {
		return err
	}
	owner, err := v.api.SetCafeOwnerActive(ctx, id, active)
	if err != nil {
		return actionError(err, "failed to update status")
	}
	v.bus.Publish(events.TopicCafeOwners)

	state := "deactivated"
	if owner.Active {
		state = "activated"
	}
	v.printf("Cafe owner %s %s.\n", owner.Name, state)
	return nil
}
