package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMenuItemValidation(t *testing.T) {
	valid := MenuItem{Name: "Espresso", Price: 2.5, Category: "beverage", Available: true}
	assert.NoError(t, Validate(valid))

	zeroPrice := valid
	zeroPrice.Price = 0
	err := Validate(zeroPrice)
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "price must be greater than 0")
	}

	negativePrice := valid
	negativePrice.Price = -3
	assert.Error(t, Validate(negativePrice))

	noName := valid
	noName.Name = ""
	err = Validate(noName)
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "name is required")
	}

	badCategory := valid
	badCategory.Category = "sushi"
	assert.Error(t, Validate(badCategory))
}

func TestTableValidation(t *testing.T) {
	assert.NoError(t, Validate(Table{TableNumber: "T10", Capacity: 4, Status: "available"}))
	assert.Error(t, Validate(Table{TableNumber: "", Capacity: 4, Status: "available"}))
	assert.Error(t, Validate(Table{TableNumber: "T10", Capacity: 0, Status: "available"}))
	assert.Error(t, Validate(Table{TableNumber: "T10", Capacity: 4, Status: "broken"}))
}

func TestOrderValidation(t *testing.T) {
	base := Order{
		CafeID:  1,
		TableID: 2,
		Items: []OrderLine{
			{MenuItemID: 10, Quantity: 0},
			{MenuItemID: 11, Quantity: 0},
		},
	}

	// All quantities zero: rejected before any network call happens
	err := base.Validate()
	if assert.Error(t, err) {
		assert.Equal(t, "add at least one item", err.Error())
	}

	withItems := base
	withItems.Items = []OrderLine{
		{MenuItemID: 10, Quantity: 0},
		{MenuItemID: 11, Quantity: 2},
	}
	assert.NoError(t, withItems.Validate())

	nonzero := withItems.NonzeroItems()
	if assert.Len(t, nonzero, 1) {
		assert.Equal(t, 11, nonzero[0].MenuItemID)
		assert.Equal(t, 2, nonzero[0].Quantity)
	}

	noTable := withItems
	noTable.TableID = 0
	assert.Error(t, noTable.Validate())
}

func TestStaffValidation(t *testing.T) {
	valid := Staff{Name: "Ben", Email: "ben@example.com", Password: "secret1", RoleType: "waiter"}
	assert.NoError(t, Validate(valid))

	badRole := valid
	badRole.RoleType = "admin"
	assert.Error(t, Validate(badRole))

	shortPassword := valid
	shortPassword.Password = "abc"
	assert.Error(t, Validate(shortPassword))
}

func TestProfileValidation(t *testing.T) {
	assert.NoError(t, Validate(Profile{}))
	assert.NoError(t, Validate(Profile{DOB: "1994-03-21", Pincode: "560001"}))
	assert.Error(t, Validate(Profile{DOB: "21/03/1994"}))
	assert.Error(t, Validate(Profile{Pincode: "56 00 01"}))
}

func TestLoginValidation(t *testing.T) {
	assert.NoError(t, Validate(Login{Email: "a@b.co", Password: "x"}))
	assert.Error(t, Validate(Login{Email: "not-an-email", Password: "x"}))
	assert.Error(t, Validate(Login{Email: "a@b.co"}))
}
