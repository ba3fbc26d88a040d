package views

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"

	"digitalcafe/cafectl/internal/model"
)

func (v *View) printf(format string, args ...any) {
	fmt.Fprintf(v.out, format, args...)
}

func (v *View) table(headers []string, rows [][]string) {
	t := tablewriter.NewWriter(v.out)
	t.SetHeader(headers)
	t.AppendBulk(rows)
	t.Render()
}

func money(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func itemsSummary(items []model.OrderItem) string {
	if len(items) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, fmt.Sprintf("%s x%d", item.ItemName, item.Quantity))
	}
	return strings.Join(parts, ", ")
}

// actionLabels is the rendered equivalent of the status buttons: a pure
// function of current status and viewer role.
func actionLabels(status model.OrderStatus, role model.Role) string {
	actions := model.ActionsFor(status, role)
	if len(actions) == 0 {
		return "-"
	}
	labels := make([]string, 0, len(actions))
	for _, a := range actions {
		labels = append(labels, a.Label)
	}
	return strings.Join(labels, " / ")
}
