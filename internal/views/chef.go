package views

import (
	"context"
	"fmt"
	"strconv"

	"digitalcafe/cafectl/internal/events"
	"digitalcafe/cafectl/internal/model"
)

// ChefQueue lists the orders a chef may act on, with the actions each
// current status allows.
func (v *View) ChefQueue(ctx context.Context) error {
	if err := v.requireRole(model.RoleChef); err != nil {
		return err
	}
	orders, err := v.api.ChefOrders(ctx)
	if err != nil {
		return actionError(err, "failed to load orders")
	}

	if len(orders) == 0 {
		v.printf("No orders to prepare.\n")
		return nil
	}
	rows := make([][]string, 0, len(orders))
	for _, order := range orders {
		rows = append(rows, []string{
			strconv.Itoa(order.ID),
			orDash(order.UserName),
			orDash(order.TableNumber),
			string(order.Status),
			itemsSummary(order.Items),
			actionLabels(order.Status, model.RoleChef),
		})
	}
	v.table([]string{"ID", "Customer", "Table", "Status", "Items", "Actions"}, rows)
	return nil
}

// ChefSetStatus moves one order forward (placed -> preparing, or either of
// placed/preparing -> ready). The transition is checked against the current
// status before the server is asked.
func (v *View) ChefSetStatus(ctx context.Context, id int, to model.OrderStatus) error {
	if err := v.requireRole(model.RoleChef); err != nil {
		return err
	}

	orders, err := v.api.ChefOrders(ctx)
	if err != nil {
		return actionError(err, "failed to load orders")
	}
	var current *model.Order
	for i := range orders {
		if orders[i].ID == id {
			current = &orders[i]
			break
		}
	}
	if current == nil {
		return fmt.Errorf("order %d is not in your queue", id)
	}
	if !model.CanTransition(current.Status, to, model.RoleChef) {
		return fmt.Errorf("cannot move order %d from %s to %s", id, current.Status, to)
	}

	order, err := v.api.SetChefOrderStatus(ctx, id, to)
	if err != nil {
		return actionError(err, "failed to update")
	}
	v.bus.Publish(events.TopicOrders)
	v.printf("Order %d is now %s.\n", order.ID, order.Status)
	return nil
}
