package views

import (
	"context"
	"fmt"
	"strconv"

	"digitalcafe/cafectl/internal/events"
	"digitalcafe/cafectl/internal/model"
)

// WaiterBoard shows the ready-to-serve queue first, then every order.
func (v *View) WaiterBoard(ctx context.Context) error {
	if err := v.requireRole(model.RoleWaiter); err != nil {
		return err
	}
	ready, all, err := v.api.WaiterBoard(ctx)
	if err != nil {
		return actionError(err, "failed to load orders")
	}

	v.printf("Ready to serve\n")
	if len(ready) == 0 {
		v.printf("No orders ready to serve.\n")
	} else {
		rows := make([][]string, 0, len(ready))
		for _, order := range ready {
			rows = append(rows, []string{
				strconv.Itoa(order.ID),
				orDash(order.TableNumber),
				orDash(order.UserName),
				money(order.TotalAmount),
				actionLabels(order.Status, model.RoleWaiter),
			})
		}
		v.table([]string{"ID", "Table", "Customer", "Total", "Action"}, rows)
	}

	v.printf("\nAll orders\n")
	v.orderTable(all, "No orders found.")
	return nil
}

// WaiterServe marks one ready order as served, the terminal state.
func (v *View) WaiterServe(ctx context.Context, id int) error {
	if err := v.requireRole(model.RoleWaiter); err != nil {
		return err
	}

	orders, err := v.api.WaiterOrders(ctx)
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
		return fmt.Errorf("order %d not found", id)
	}
	if !model.CanTransition(current.Status, model.StatusServed, model.RoleWaiter) {
		return fmt.Errorf("cannot move order %d from %s to %s", id, current.Status, model.StatusServed)
	}

	order, err := v.api.SetWaiterOrderStatus(ctx, id, model.StatusServed)
	if err != nil {
		return actionError(err, "failed to update")
	}
	v.bus.Publish(events.TopicOrders)
	v.printf("Order %d served.\n", order.ID)
	return nil
}
