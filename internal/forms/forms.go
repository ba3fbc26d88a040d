// Package forms validates user input before it is allowed anywhere near the
// network. Validation failures are terminal for the action and cost zero
// API calls.
package forms

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type Login struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

type Signup struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

// Staff is the create-staff form; cafe owners may only mint waiters and
// chefs.
type Staff struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
	RoleType string `validate:"required,oneof=waiter chef"`
	Phone    string
	Address  string
}

type Cafe struct {
	Name    string `validate:"required"`
	Address string
	Phone   string
}

type Table struct {
	TableNumber string `validate:"required"`
	Capacity    int    `validate:"gte=1"`
	Status      string `validate:"required,oneof=available booked"`
}

type MenuItem struct {
	Name        string `validate:"required"`
	Description string
	Price       float64 `validate:"gt=0"`
	Category    string  `validate:"required,oneof=beverage food dessert snack"`
	Available   bool
}

type Booking struct {
	CafeID      int    `validate:"gt=0"`
	TableID     int    `validate:"gt=0"`
	BookingDate string `validate:"required"`
	BookingTime string `validate:"required"`
}

// Profile checks the free-form profile fields that have a shape at all; the
// rest pass through as typed.
type Profile struct {
	DOB     string `validate:"omitempty,datetime=2006-01-02"`
	Pincode string `validate:"omitempty,numeric"`
}

type OrderLine struct {
	MenuItemID int `validate:"gt=0"`
	Quantity   int `validate:"gte=0"`
}

type Order struct {
	CafeID    int `validate:"gt=0"`
	TableID   int `validate:"gt=0"`
	BookingID int `validate:"gte=0"`
	OrderDate string
	OrderTime string
	Items     []OrderLine `validate:"dive"`
}

// NonzeroItems drops the zero-quantity lines; only these are submitted.
func (o Order) NonzeroItems() []OrderLine {
	var items []OrderLine
	for _, line := range o.Items {
		if line.Quantity > 0 {
			items = append(items, line)
		}
	}
	return items
}

// Validate rejects an order with no selected items in addition to the field
// checks.
func (o Order) Validate() error {
	if err := Validate(o); err != nil {
		return err
	}
	if len(o.NonzeroItems()) == 0 {
		return errors.New("add at least one item")
	}
	return nil
}

// Validate runs the struct tags and rewrites the first failure into a
// message fit for an alert line.
func Validate(form any) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}
	var fields validator.ValidationErrors
	if errors.As(err, &fields) && len(fields) > 0 {
		return errors.New(fieldMessage(fields[0]))
	}
	return err
}

func fieldMessage(fe validator.FieldError) string {
	name := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return name + " is required"
	case "email":
		return name + " must be a valid email address"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", name, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", name, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", name, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", name, fe.Param())
	case "datetime":
		return fmt.Sprintf("%s must match %s", name, fe.Param())
	case "numeric":
		return name + " must be numeric"
	default:
		return name + " is invalid"
	}
}
