package views

import (
	"context"
	"strconv"

	"digitalcafe/cafectl/internal/api"
	"digitalcafe/cafectl/internal/forms"
	"digitalcafe/cafectl/internal/model"
)

func (v *View) AdminCafes(ctx context.Context) error {
	if err := v.requireRole(model.RoleAdmin); err != nil {
		return err
	}
	cafes, err := v.api.AdminCafes(ctx)
	if err != nil {
		return actionError(err, "failed to load cafes")
	}

	if len(cafes) == 0 {
		v.printf("No cafes found.\n")
		return nil
	}
	rows := make([][]string, 0, len(cafes))
	for _, cafe := range cafes {
		rows = append(rows, []string{
			strconv.Itoa(cafe.ID),
			cafe.Name,
			orDash(cafe.Address),
			orDash(cafe.Phone),
		})
	}
	v.table([]string{"ID", "Name", "Address", "Phone"}, rows)
	return nil
}

func (v *View) AddCafe(ctx context.Context, form forms.Cafe) error {
	if err := v.requireRole(model.RoleAdmin); err != nil {
		return err
	}
	if err := forms.Validate(form); err != nil {
		return err
	}
	cafe, err := v.api.CreateCafe(ctx, api.CafeRequest{
		Name:    form.Name,
		Address: form.Address,
		Phone:   form.Phone,
	})
	if err != nil {
		return actionError(err, "failed to save cafe")
	}
	v.printf("Cafe %q created (id %d).\n", cafe.Name, cafe.ID)
	return nil
}

func (v *View) EditCafe(ctx context.Context, id int, form forms.Cafe) error {
	if err := v.requireRole(model.RoleAdmin); err != nil {
		return err
	}
	if err := forms.Validate(form); err != nil {
		return err
	}
	cafe, err := v.api.UpdateCafe(ctx, id, api.CafeRequest{
		Name:    form.Name,
		Address: form.Address,
		Phone:   form.Phone,
	})
	if err != nil {
		return actionError(err, "failed to save cafe")
	}
	v.printf("Cafe %q updated.\n", cafe.Name)
	return nil
}

func (v *View) RemoveCafe(ctx context.Context, id int) error {
	if err := v.requireRole(model.RoleAdmin); err != nil {
		return err
	}
	if err := v.api.DeleteCafe(ctx, id); err != nil {
		return actionError(err, "failed to delete cafe")
	}
	v.printf("Cafe %d deleted.\n", id)
	return nil
}
