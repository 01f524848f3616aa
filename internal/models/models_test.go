package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnumsValid(t *testing.T) {
	for _, c := range Categories {
		assert.True(t, c.Valid(), c)
	}
	assert.False(t, Category("pets").Valid())
	assert.True(t, PaymentQRScan.Valid())
	assert.False(t, PaymentMethod("cheque").Valid())
	assert.True(t, StatusCancelled.Valid())
	assert.False(t, Status("").Valid())
	assert.True(t, RoleAdmin.Valid())
	assert.False(t, Role("root").Valid())
}

func TestExpenseField(t *testing.T) {
	notes := "Two tickets"
	e := Expense{ID: "e-3", Amount: 64, Category: CategoryEntertainment, Notes: &notes}

	assert.Equal(t, "e-3", e.Field("id"))
	assert.Equal(t, 64.0, e.Field("amount"))
	assert.Equal(t, "entertainment", e.Field("category"))
	assert.Equal(t, "Two tickets", e.Field("notes"))
	assert.Nil(t, e.Field("receiptUrl"))
	assert.Nil(t, e.Field("unknown"))
}

func TestBudgetRemaining(t *testing.T) {
	b := Budget{Limit: 300, Spent: 364}
	assert.Equal(t, -64.0, b.Remaining())
	assert.Equal(t, 300.0, b.Field("limit"))
}

func TestUserField(t *testing.T) {
	u := User{ID: "u-1", Role: RoleUser}
	assert.Equal(t, "user", u.Field("role"))
	assert.Nil(t, u.Field("avatar"))
	assert.Nil(t, u.Field("createdAt"))
}
