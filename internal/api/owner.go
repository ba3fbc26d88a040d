package api

import (
	"context"
	"fmt"
	"net/http"

	"golang.org/x/sync/errgroup"

	"digitalcafe/cafectl/internal/model"
)

type MenuItemRequest struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Price       float64        `json:"price"`
	Category    model.Category `json:"category"`
	Available   bool           `json:"available"`
}

type TableRequest struct {
	TableNumber string            `json:"tableNumber"`
	Capacity    int               `json:"capacity"`
	Status      model.TableStatus `json:"status"`
}

type statusRequest struct {
	Status string `json:"status"`
}

func (c *Client) Waiters(ctx context.Context) ([]model.User, error) {
	var waiters []model.User
	if err := c.do(ctx, http.MethodGet, "/api/cafeowners/waiters", nil, nil, &waiters); err != nil {
		return nil, err
	}
	return waiters, nil
}

func (c *Client) Chefs(ctx context.Context) ([]model.User, error) {
	var chefs []model.User
	if err := c.do(ctx, http.MethodGet, "/api/cafeowners/chefs", nil, nil, &chefs); err != nil {
		return nil, err
	}
	return chefs, nil
}

// Staff fetches the waiter and chef lists concurrently.
func (c *Client) Staff(ctx context.Context) (waiters, chefs []model.User, err error) {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		waiters, err = c.Waiters(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		chefs, err = c.Chefs(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return waiters, chefs, nil
}

func (c *Client) OwnerMenu(ctx context.Context) ([]model.MenuItem, error) {
	var items []model.MenuItem
	if err := c.do(ctx, http.MethodGet, "/api/cafeowners/menu", nil, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) CreateMenuItem(ctx context.Context, req MenuItemRequest) (*model.MenuItem, error) {
	var item model.MenuItem
	if err := c.do(ctx, http.MethodPost, "/api/cafeowners/menu", nil, req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) UpdateMenuItem(ctx context.Context, id int, req MenuItemRequest) (*model.MenuItem, error) {
	var item model.MenuItem
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/cafeowners/menu/%d", id), nil, req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) DeleteMenuItem(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/cafeowners/menu/%d", id), nil, nil, nil)
}

func (c *Client) OwnerTables(ctx context.Context) (*model.TableList, error) {
	var list model.TableList
	if err := c.do(ctx, http.MethodGet, "/api/cafeowners/tables", nil, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (c *Client) CreateTable(ctx context.Context, req TableRequest) (*model.Table, error) {
	var table model.Table
	if err := c.do(ctx, http.MethodPost, "/api/cafeowners/tables", nil, req, &table); err != nil {
		return nil, err
	}
	return &table, nil
}

func (c *Client) UpdateTable(ctx context.Context, id int, req TableRequest) (*model.Table, error) {
	var table model.Table
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/cafeowners/tables/%d", id), nil, req, &table); err != nil {
		return nil, err
	}
	return &table, nil
}

func (c *Client) SetTableStatus(ctx context.Context, id int, status model.TableStatus) (*model.Table, error) {
	var table model.Table
	path := fmt.Sprintf("/api/cafeowners/tables/%d/status", id)
	if err := c.do(ctx, http.MethodPatch, path, nil, statusRequest{Status: string(status)}, &table); err != nil {
		return nil, err
	}
	return &table, nil
}

func (c *Client) DeleteTable(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/cafeowners/tables/%d", id), nil, nil, nil)
}

func (c *Client) OwnerBookings(ctx context.Context) ([]model.Booking, error) {
	var bookings []model.Booking
	if err := c.do(ctx, http.MethodGet, "/api/cafeowners/bookings", nil, nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (c *Client) OwnerOrders(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	if err := c.do(ctx, http.MethodGet, "/api/cafeowners/orders", nil, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) OwnerOrder(ctx context.Context, id int) (*model.Order, error) {
	var order model.Order
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/cafeowners/orders/%d", id), nil, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}
