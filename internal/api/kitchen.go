package api

import (
	"context"
	"fmt"
	"net/http"

	"golang.org/x/sync/errgroup"

	"digitalcafe/cafectl/internal/model"
)

func (c *Client) ChefOrders(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	if err := c.do(ctx, http.MethodGet, "/api/chef/orders", nil, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) SetChefOrderStatus(ctx context.Context, id int, status model.OrderStatus) (*model.Order, error) {
	var order model.Order
	path := fmt.Sprintf("/api/chef/orders/%d/status", id)
	if err := c.do(ctx, http.MethodPatch, path, nil, statusRequest{Status: string(status)}, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) WaiterOrders(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	if err := c.do(ctx, http.MethodGet, "/api/waiter/orders", nil, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) WaiterReadyOrders(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	if err := c.do(ctx, http.MethodGet, "/api/waiter/orders/ready", nil, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// WaiterBoard fetches the ready-to-serve queue and the full order list
// concurrently, the way the waiter view shows both at once.
func (c *Client) WaiterBoard(ctx context.Context) (ready, all []model.Order, err error) {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		ready, err = c.WaiterReadyOrders(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		all, err = c.WaiterOrders(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return ready, all, nil
}

func (c *Client) SetWaiterOrderStatus(ctx context.Context, id int, status model.OrderStatus) (*model.Order, error) {
	var order model.Order
	path := fmt.Sprintf("/api/waiter/orders/%d/status", id)
	if err := c.do(ctx, http.MethodPatch, path, nil, statusRequest{Status: string(status)}, &order); err != nil {
		return nil, err
	}
	return &order, nil
}
