package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"golang.org/x/sync/errgroup"

	"digitalcafe/cafectl/internal/model"
)

type CafeRequest struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

type activeRequest struct {
	Active bool `json:"active"`
}

// Dashboard is the admin dashboard for one date range, assembled from the
// three stats endpoints.
type Dashboard struct {
	Summary   model.DashboardSummary
	Locations []model.CafeLocation
	Daily     model.DailyStats
}

func (c *Client) AdminCafes(ctx context.Context) ([]model.Cafe, error) {
	var cafes []model.Cafe
	if err := c.do(ctx, http.MethodGet, "/api/admin/cafes", nil, nil, &cafes); err != nil {
		return nil, err
	}
	return cafes, nil
}

func (c *Client) CreateCafe(ctx context.Context, req CafeRequest) (*model.Cafe, error) {
	var cafe model.Cafe
	if err := c.do(ctx, http.MethodPost, "/api/admin/cafes", nil, req, &cafe); err != nil {
		return nil, err
	}
	return &cafe, nil
}

func (c *Client) UpdateCafe(ctx context.Context, id int, req CafeRequest) (*model.Cafe, error) {
	var cafe model.Cafe
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/admin/cafes/%d", id), nil, req, &cafe); err != nil {
		return nil, err
	}
	return &cafe, nil
}

func (c *Client) DeleteCafe(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/admin/cafes/%d", id), nil, nil, nil)
}

func (c *Client) CafeOwners(ctx context.Context) ([]model.User, error) {
	var owners []model.User
	if err := c.do(ctx, http.MethodGet, "/api/admin/cafeowners", nil, nil, &owners); err != nil {
		return nil, err
	}
	return owners, nil
}

func (c *Client) SetCafeOwnerActive(ctx context.Context, id int, active bool) (*model.User, error) {
	var owner model.User
	path := fmt.Sprintf("/api/admin/cafeowners/%d/status", id)
	if err := c.do(ctx, http.MethodPatch, path, nil, activeRequest{Active: active}, &owner); err != nil {
		return nil, err
	}
	return &owner, nil
}

// AdminDashboard fetches summary, cafe locations and daily stats for the
// date range concurrently; the first failure cancels the rest.
func (c *Client) AdminDashboard(ctx context.Context, startDate, endDate string) (*Dashboard, error) {
	query := url.Values{}
	query.Set("startDate", startDate)
	query.Set("endDate", endDate)

	var dashboard Dashboard
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := c.do(ctx, http.MethodGet, "/api/admin/dashboard/summary", query, nil, &dashboard.Summary); err != nil {
			return fmt.Errorf("failed to fetch summary: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := c.do(ctx, http.MethodGet, "/api/admin/dashboard/cafe-locations", query, nil, &dashboard.Locations); err != nil {
			return fmt.Errorf("failed to fetch cafe locations: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := c.do(ctx, http.MethodGet, "/api/admin/dashboard/daily-stats", query, nil, &dashboard.Daily); err != nil {
			return fmt.Errorf("failed to fetch daily stats: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &dashboard, nil
}
