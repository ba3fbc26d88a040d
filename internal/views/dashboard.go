package views

import (
	"context"
	"strconv"
	"time"

	"digitalcafe/cafectl/internal/model"
)

// Dashboard renders the admin stats for a date range. An empty range
// defaults to the last seven days, matching the dashboard's initial view.
func (v *View) Dashboard(ctx context.Context, startDate, endDate string) error {
	if err := v.requireRole(model.RoleAdmin); err != nil {
		return err
	}

	if startDate == "" || endDate == "" {
		end := time.Now()
		start := end.AddDate(0, 0, -7)
		startDate = start.Format("2006-01-02")
		endDate = end.Format("2006-01-02")
	}

	dashboard, err := v.api.AdminDashboard(ctx, startDate, endDate)
	if err != nil {
		return actionError(err, "failed to load dashboard")
	}

	v.printf("Dashboard %s .. %s\n\n", startDate, endDate)
	v.printf("Customers: %d   Cafes: %d   Orders: %d   Sales: %s\n\n",
		dashboard.Summary.TotalCustomers,
		dashboard.Summary.TotalCafes,
		dashboard.Summary.TotalOrders,
		money(dashboard.Summary.TotalSales))

	if len(dashboard.Summary.OrdersByStatus) > 0 {
		v.printf("Orders by status\n")
		rows := make([][]string, 0, len(dashboard.Summary.OrdersByStatus))
		for _, status := range []model.OrderStatus{model.StatusPlaced, model.StatusPreparing, model.StatusReady, model.StatusServed} {
			if count, ok := dashboard.Summary.OrdersByStatus[string(status)]; ok {
				rows = append(rows, []string{string(status), strconv.Itoa(count)})
			}
		}
		v.table([]string{"Status", "Count"}, rows)
		v.printf("\n")
	}

	if len(dashboard.Daily.DailyStats) == 0 {
		v.printf("No daily data for selected period.\n")
	} else {
		v.printf("Orders & sales (daily)\n")
		rows := make([][]string, 0, len(dashboard.Daily.DailyStats))
		for _, day := range dashboard.Daily.DailyStats {
			rows = append(rows, []string{day.Date, strconv.Itoa(day.Orders), money(day.Sales)})
		}
		v.table([]string{"Date", "Orders", "Sales"}, rows)
	}

	if len(dashboard.Locations) > 0 {
		v.printf("\nCafe locations\n")
		rows := make([][]string, 0, len(dashboard.Locations))
		for _, loc := range dashboard.Locations {
			rows = append(rows, []string{strconv.Itoa(loc.ID), loc.Name, orDash(loc.Address)})
		}
		v.table([]string{"ID", "Name", "Address"}, rows)
	}
	return nil
}
