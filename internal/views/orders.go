package views

import (
	"context"

	"digitalcafe/cafectl/internal/api"
	"digitalcafe/cafectl/internal/events"
	"digitalcafe/cafectl/internal/forms"
)

// PlaceOrder submits a new order in state "placed". Zero-quantity lines are
// dropped; an order with nothing left is rejected before any network call.
func (v *View) PlaceOrder(ctx context.Context, form forms.Order) error {
	if err := v.requireLogin(); err != nil {
		return err
	}
	if err := form.Validate(); err != nil {
		return err
	}

	items := form.NonzeroItems()
	req := api.OrderRequest{
		CafeID:    form.CafeID,
		TableID:   form.TableID,
		BookingID: form.BookingID,
		OrderDate: form.OrderDate,
		OrderTime: form.OrderTime,
		Items:     make([]api.OrderItemRequest, 0, len(items)),
	}
	for _, line := range items {
		req.Items = append(req.Items, api.OrderItemRequest{
			MenuItemID: line.MenuItemID,
			Quantity:   line.Quantity,
		})
	}

	order, err := v.api.CreateOrder(ctx, req)
	if err != nil {
		return actionError(err, "order failed")
	}
	v.bus.Publish(events.TopicOrders)
	v.printf("Order %d placed, total %s.\n", order.ID, money(order.TotalAmount))
	return nil
}

func (v *View) MyOrders(ctx context.Context) error {
	if err := v.requireLogin(); err != nil {
		return err
	}
	orders, err := v.api.Orders(ctx)
	if err != nil {
		return actionError(err, "failed to load orders")
	}
	v.orderTable(orders, "No orders yet.")
	return nil
}

func (v *View) OrderDetail(ctx context.Context, id int) error {
	if err := v.requireLogin(); err != nil {
		return err
	}
	order, err := v.api.OrderByID(ctx, id)
	if err != nil {
		return actionError(err, "failed to load order")
	}
	v.orderDetail(order)
	return nil
}
