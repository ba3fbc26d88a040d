package views

import (
	"context"
	"strconv"
)

// Cafes lists every cafe a customer can browse. Any signed-in role may look.
func (v *View) Cafes(ctx context.Context) error {
	if err := v.requireLogin(); err != nil {
		return err
	}
	cafes, err := v.api.Cafes(ctx)
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

func (v *View) CafeDetail(ctx context.Context, id int) error {
	if err := v.requireLogin(); err != nil {
		return err
	}
	cafe, err := v.api.CafeByID(ctx, id)
	if err != nil {
		return actionError(err, "failed to load cafe")
	}

	v.printf("%s\n", cafe.Name)
	if cafe.Address != "" {
		v.printf("%s\n", cafe.Address)
	}

	v.printf("\nTables (%d total)\n", len(cafe.Tables))
	if len(cafe.Tables) == 0 {
		v.printf("No tables.\n")
	} else {
		rows := make([][]string, 0, len(cafe.Tables))
		for _, table := range cafe.Tables {
			rows = append(rows, []string{
				strconv.Itoa(table.ID),
				table.TableNumber,
				strconv.Itoa(table.Capacity),
				string(table.Status),
			})
		}
		v.table([]string{"ID", "Table", "Capacity", "Status"}, rows)
	}

	v.printf("\nMenu\n")
	if len(cafe.Menu) == 0 {
		v.printf("No menu items.\n")
	} else {
		rows := make([][]string, 0, len(cafe.Menu))
		for _, item := range cafe.Menu {
			rows = append(rows, []string{
				strconv.Itoa(item.ID),
				item.Name,
				money(item.Price),
				string(item.Category),
				yesNo(item.Available),
			})
		}
		v.table([]string{"ID", "Name", "Price", "Category", "Available"}, rows)
	}
	return nil
}
