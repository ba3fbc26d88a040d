package views

import (
	"context"
	"strconv"

	"digitalcafe/cafectl/internal/api"
	"digitalcafe/cafectl/internal/forms"
	"digitalcafe/cafectl/internal/model"
)

func (v *View) OwnerMenu(ctx context.Context) error {
	if err := v.requireRole(model.RoleCafeOwner); err != nil {
		return err
	}
	items, err := v.api.OwnerMenu(ctx)
	if err != nil {
		return actionError(err, "failed to load menu")
	}

	if len(items) == 0 {
		v.printf("No menu items yet.\n")
		return nil
	}
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			strconv.Itoa(item.ID),
			item.Name,
			money(item.Price),
			string(item.Category),
			yesNo(item.Available),
		})
	}
	v.table([]string{"ID", "Name", "Price", "Category", "Available"}, rows)
	return nil
}

func (v *View) AddMenuItem(ctx context.Context, form forms.MenuItem) error {
	if err := v.requireRole(model.RoleCafeOwner); err != nil {
		return err
	}
	// Validation failure means no create call is issued at all.
	if err := forms.Validate(form); err != nil {
		return err
	}
	item, err := v.api.CreateMenuItem(ctx, menuItemRequest(form))
	if err != nil {
		return actionError(err, "failed to save menu item")
	}
	v.printf("Menu item %q created (id %d).\n", item.Name, item.ID)
	return nil
}

func (v *View) EditMenuItem(ctx context.Context, id int, form forms.MenuItem) error {
	if err := v.requireRole(model.RoleCafeOwner); err != nil {
		return err
	}
	if err := forms.Validate(form); err != nil {
		return err
	}
	item, err := v.api.UpdateMenuItem(ctx, id, menuItemRequest(form))
	if err != nil {
		return actionError(err, "failed to save menu item")
	}
	v.printf("Menu item %q updated.\n", item.Name)
	return nil
}

func (v *View) RemoveMenuItem(ctx context.Context, id int) error {
	if err := v.requireRole(model.RoleCafeOwner); err != nil {
		return err
	}
	if err := v.api.DeleteMenuItem(ctx, id); err != nil {
		return actionError(err, "failed to delete menu item")
	}
	v.printf("Menu item %d deleted.\n", id)
	return nil
}

func menuItemRequest(form forms.MenuItem) api.MenuItemRequest {
	return api.MenuItemRequest{
		Name:        form.Name,
		Description: form.Description,
		Price:       form.Price,
		Category:    model.Category(form.Category),
		Available:   form.Available,
	}
}
