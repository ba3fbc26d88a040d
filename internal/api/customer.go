package api

import (
	"context"
	"fmt"
	"net/http"

	"digitalcafe/cafectl/internal/model"
)

type BookingRequest struct {
	CafeID      int    `json:"cafeId"`
	TableID     int    `json:"tableId"`
	BookingDate string `json:"bookingDate"`
	BookingTime string `json:"bookingTime"`
}

type OrderItemRequest struct {
	MenuItemID int `json:"menuItemId"`
	Quantity   int `json:"quantity"`
}

type OrderRequest struct {
	CafeID    int                `json:"cafeId"`
	TableID   int                `json:"tableId"`
	BookingID int                `json:"bookingId,omitempty"`
	OrderDate string             `json:"orderDate"`
	OrderTime string             `json:"orderTime"`
	Items     []OrderItemRequest `json:"items"`
}

func (c *Client) Cafes(ctx context.Context) ([]model.Cafe, error) {
	var cafes []model.Cafe
	if err := c.do(ctx, http.MethodGet, "/api/cafes", nil, nil, &cafes); err != nil {
		return nil, err
	}
	return cafes, nil
}

func (c *Client) CafeByID(ctx context.Context, id int) (*model.Cafe, error) {
	var cafe model.Cafe
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/cafes/%d", id), nil, nil, &cafe); err != nil {
		return nil, err
	}
	return &cafe, nil
}

func (c *Client) CreateBooking(ctx context.Context, req BookingRequest) (*model.Booking, error) {
	var booking model.Booking
	if err := c.do(ctx, http.MethodPost, "/api/bookings", nil, req, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (c *Client) Bookings(ctx context.Context) ([]model.Booking, error) {
	var bookings []model.Booking
	if err := c.do(ctx, http.MethodGet, "/api/bookings", nil, nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (c *Client) CreateOrder(ctx context.Context, req OrderRequest) (*model.Order, error) {
	var order model.Order
	if err := c.do(ctx, http.MethodPost, "/api/orders", nil, req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) Orders(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	if err := c.do(ctx, http.MethodGet, "/api/orders", nil, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) OrderByID(ctx context.Context, id int) (*model.Order, error) {
	var order model.Order
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/orders/%d", id), nil, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}
