package views

import (
	"context"
	"strconv"

	"digitalcafe/cafectl/internal/api"
	"digitalcafe/cafectl/internal/forms"
)

func (v *View) BookTable(ctx context.Context, form forms.Booking) error {
	if err := v.requireLogin(); err != nil {
		return err
	}
	if err := forms.Validate(form); err != nil {
		return err
	}
	booking, err := v.api.CreateBooking(ctx, api.BookingRequest{
		CafeID:      form.CafeID,
		TableID:     form.TableID,
		BookingDate: form.BookingDate,
		BookingTime: form.BookingTime,
	})
	if err != nil {
		return actionError(err, "booking failed")
	}
	v.printf("Booked table for %s %s (booking %d).\n", booking.BookingDate, booking.BookingTime, booking.ID)
	return nil
}

func (v *View) MyBookings(ctx context.Context) error {
	if err := v.requireLogin(); err != nil {
		return err
	}
	bookings, err := v.api.Bookings(ctx)
	if err != nil {
		return actionError(err, "failed to load bookings")
	}

	if len(bookings) == 0 {
		v.printf("No bookings yet.\n")
		return nil
	}
	rows := make([][]string, 0, len(bookings))
	for _, booking := range bookings {
		rows = append(rows, []string{
			strconv.Itoa(booking.ID),
			orDash(booking.CafeName),
			orDash(booking.TableNumber),
			booking.BookingDate,
			booking.BookingTime,
			booking.Status,
		})
	}
	v.table([]string{"ID", "Cafe", "Table", "Date", "Time", "Status"}, rows)
	return nil
}
