package views

import (
	"context"
	"strconv"

	"digitalcafe/cafectl/internal/model"
)

func (v *View) OwnerBookings(ctx context.Context) error {
	if err := v.requireRole(model.RoleCafeOwner); err != nil {
		return err
	}
	bookings, err := v.api.OwnerBookings(ctx)
	if err != nil {
		return actionError(err, "failed to load bookings")
	}

	if len(bookings) == 0 {
		v.printf("No bookings found.\n")
		return nil
	}
	rows := make([][]string, 0, len(bookings))
	for _, booking := range bookings {
		rows = append(rows, []string{
			strconv.Itoa(booking.ID),
			orDash(booking.TableNumber),
			booking.BookingDate,
			booking.BookingTime,
			booking.Status,
		})
	}
	v.table([]string{"ID", "Table", "Date", "Time", "Status"}, rows)
	return nil
}

func (v *View) OwnerOrders(ctx context.Context) error {
	if err := v.requireRole(model.RoleCafeOwner); err != nil {
		return err
	}
	orders, err := v.api.OwnerOrders(ctx)
	if err != nil {
		return actionError(err, "failed to load orders")
	}
	v.orderTable(orders, "No orders found.")
	return nil
}

func (v *View) OwnerOrderDetail(ctx context.Context, id int) error {
	if err := v.requireRole(model.RoleCafeOwner); err != nil {
		return err
	}
	order, err := v.api.OwnerOrder(ctx, id)
	if err != nil {
		return actionError(err, "failed to load order")
	}
	v.orderDetail(order)
	return nil
}

func (v *View) orderTable(orders []model.Order, empty string) {
	if len(orders) == 0 {
		v.printf("%s\n", empty)
		return
	}
	rows := make([][]string, 0, len(orders))
	for _, order := range orders {
		rows = append(rows, []string{
			strconv.Itoa(order.ID),
			orDash(order.TableNumber),
			string(order.Status),
			itemsSummary(order.Items),
			money(order.TotalAmount),
		})
	}
	v.table([]string{"ID", "Table", "Status", "Items", "Total"}, rows)
}

func (v *View) orderDetail(order *model.Order) {
	v.printf("Order %d  %s %s  status=%s\n", order.ID, order.OrderDate, order.OrderTime, order.Status)
	if order.UserName != "" {
		v.printf("Customer: %s\n", order.UserName)
	}
	if len(order.Items) > 0 {
		rows := make([][]string, 0, len(order.Items))
		for _, item := range order.Items {
			rows = append(rows, []string{
				item.ItemName,
				strconv.Itoa(item.Quantity),
				money(item.UnitPrice),
				money(item.Subtotal),
			})
		}
		v.table([]string{"Item", "Qty", "Unit price", "Subtotal"}, rows)
	}
	v.printf("Total: %s\n", money(order.TotalAmount))
}
