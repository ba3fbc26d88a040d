package views

import (
	"context"
	"fmt"
	"strconv"

	"digitalcafe/cafectl/internal/api"
	"digitalcafe/cafectl/internal/forms"
	"digitalcafe/cafectl/internal/model"
)

func (v *View) OwnerTables(ctx context.Context) error {
	if err := v.requireRole(model.RoleCafeOwner); err != nil {
		return err
	}
	list, err := v.api.OwnerTables(ctx)
	if err != nil {
		return actionError(err, "failed to load tables")
	}

	v.printf("Tables: %d total, %d available, %d booked\n",
		list.TotalCount, list.AvailableCount, list.BookedCount)
	if len(list.Tables) == 0 {
		return nil
	}
	rows := make([][]string, 0, len(list.Tables))
	for _, table := range list.Tables {
		rows = append(rows, []string{
			strconv.Itoa(table.ID),
			table.TableNumber,
			strconv.Itoa(table.Capacity),
			string(table.Status),
		})
	}
	v.table([]string{"ID", "Table", "Capacity", "Status"}, rows)
	return nil
}

func (v *View) AddTable(ctx context.Context, form forms.Table) error {
	if err := v.requireRole(model.RoleCafeOwner); err != nil {
		return err
	}
	if err := forms.Validate(form); err != nil {
		return err
	}
	table, err := v.api.CreateTable(ctx, tableRequest(form))
	if err != nil {
		return actionError(err, "failed to save table")
	}
	v.printf("Table %s created (id %d, %s).\n", table.TableNumber, table.ID, table.Status)
	return nil
}

func (v *View) EditTable(ctx context.Context, id int, form forms.Table) error {
	if err := v.requireRole(model.RoleCafeOwner); err != nil {
		return err
	}
	if err := forms.Validate(form); err != nil {
		return err
	}
	table, err := v.api.UpdateTable(ctx, id, tableRequest(form))
	if err != nil {
		return actionError(err, "failed to save table")
	}
	v.printf("Table %s updated.\n", table.TableNumber)
	return nil
}

func (v *View) ChangeTableStatus(ctx context.Context, id int, status string) error {
	if err := v.requireRole(model.RoleCafeOwner); err != nil {
		return err
	}
	switch model.TableStatus(status) {
	case model.TableAvailable, model.TableBooked:
	default:
		return fmt.Errorf("status must be one of: available booked")
	}
	table, err := v.api.SetTableStatus(ctx, id, model.TableStatus(status))
	if err != nil {
		return actionError(err, "failed to update status")
	}
	v.printf("Table %s is now %s.\n", table.TableNumber, table.Status)
	return nil
}

func (v *View) RemoveTable(ctx context.Context, id int) error {
	if err := v.requireRole(model.RoleCafeOwner); err != nil {
		return err
	}
	if err := v.api.DeleteTable(ctx, id); err != nil {
		return actionError(err, "failed to delete table")
	}
	v.printf("Table %d deleted.\n", id)
	return nil
}

func tableRequest(form forms.Table) api.TableRequest {
	return api.TableRequest{
		TableNumber: form.TableNumber,
		Capacity:    form.Capacity,
		Status:      model.TableStatus(form.Status),
	}
}
