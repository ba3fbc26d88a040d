package api

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digitalcafe/cafectl/internal/model"
)

func TestAdminDashboard_FetchesAllThree(t *testing.T) {
	var hits atomic.Int32

	r := chi.NewRouter()
	r.Get("/api/admin/dashboard/summary", func(w http.ResponseWriter, req *http.Request) {
		hits.Add(1)
		assert.Equal(t, "2026-08-01", req.URL.Query().Get("startDate"))
		assert.Equal(t, "2026-08-08", req.URL.Query().Get("endDate"))
		json.NewEncoder(w).Encode(model.DashboardSummary{
			TotalCustomers: 12,
			TotalCafes:     3,
			TotalOrders:    40,
			TotalSales:     812.50,
			OrdersByStatus: map[string]int{"placed": 5, "served": 35},
		})
	})
	r.Get("/api/admin/dashboard/cafe-locations", func(w http.ResponseWriter, req *http.Request) {
		hits.Add(1)
		json.NewEncoder(w).Encode([]model.CafeLocation{{ID: 1, Name: "Corner Cafe", Address: "12 High St"}})
	})
	r.Get("/api/admin/dashboard/daily-stats", func(w http.ResponseWriter, req *http.Request) {
		hits.Add(1)
		json.NewEncoder(w).Encode(model.DailyStats{
			Period:     "2026-08-01..2026-08-08",
			DailyStats: []model.DailyStat{{Date: "2026-08-01", Orders: 4, Sales: 60}},
		})
	})

	client, sess, _ := newTestClient(t, r)
	require.NoError(t, sess.Set("tok", &model.User{ID: 1, RoleType: "admin"}))

	dashboard, err := client.AdminDashboard(context.Background(), "2026-08-01", "2026-08-08")
	require.NoError(t, err)
	assert.Equal(t, int32(3), hits.Load())
	assert.Equal(t, 40, dashboard.Summary.TotalOrders)
	assert.Equal(t, 5, dashboard.Summary.OrdersByStatus["placed"])
	assert.Len(t, dashboard.Locations, 1)
	assert.Len(t, dashboard.Daily.DailyStats, 1)
}

func TestAdminDashboard_OneFailureFailsAll(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/admin/dashboard/summary", func(w http.ResponseWriter, req *http.Request) {
		json.NewEncoder(w).Encode(model.DashboardSummary{})
	})
	r.Get("/api/admin/dashboard/cafe-locations", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"stats backend down"}`))
	})
	r.Get("/api/admin/dashboard/daily-stats", func(w http.ResponseWriter, req *http.Request) {
		json.NewEncoder(w).Encode(model.DailyStats{})
	})

	client, sess, _ := newTestClient(t, r)
	require.NoError(t, sess.Set("tok", &model.User{ID: 1, RoleType: "admin"}))

	_, err := client.AdminDashboard(context.Background(), "2026-08-01", "2026-08-08")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch cafe locations")
}

func TestStaff_FetchesWaitersAndChefs(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/cafeowners/waiters", func(w http.ResponseWriter, req *http.Request) {
		json.NewEncoder(w).Encode([]model.User{{ID: 1, Name: "Wes", RoleType: "waiter"}})
	})
	r.Get("/api/cafeowners/chefs", func(w http.ResponseWriter, req *http.Request) {
		json.NewEncoder(w).Encode([]model.User{{ID: 2, Name: "Cleo", RoleType: "chef"}, {ID: 3, Name: "Caz", RoleType: "chef"}})
	})

	client, sess, _ := newTestClient(t, r)
	require.NoError(t, sess.Set("tok", &model.User{ID: 9, RoleType: "cafeowner"}))

	waiters, chefs, err := client.Staff(context.Background())
	require.NoError(t, err)
	assert.Len(t, waiters, 1)
	assert.Len(t, chefs, 2)
}

func TestWaiterBoard(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/waiter/orders/ready", func(w http.ResponseWriter, req *http.Request) {
		json.NewEncoder(w).Encode([]model.Order{{ID: 1, Status: model.StatusReady}})
	})
	r.Get("/api/waiter/orders", func(w http.ResponseWriter, req *http.Request) {
		json.NewEncoder(w).Encode([]model.Order{
			{ID: 1, Status: model.StatusReady},
			{ID: 2, Status: model.StatusServed},
		})
	})

	client, sess, _ := newTestClient(t, r)
	require.NoError(t, sess.Set("tok", &model.User{ID: 4, RoleType: "waiter"}))

	ready, all, err := client.WaiterBoard(context.Background())
	require.NoError(t, err)
	assert.Len(t, ready, 1)
	assert.Len(t, all, 2)
}
