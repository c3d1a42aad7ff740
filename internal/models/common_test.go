// internal/models/common_test.go
package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestDeriveProductStatus(t *testing.T) {
	assert.Equal(t, ProductStatusSold, DeriveProductStatus(0))
	assert.Equal(t, ProductStatusAvailable, DeriveProductStatus(1))
	assert.Equal(t, ProductStatusAvailable, DeriveProductStatus(100))
}

func TestOrderIsParticipant(t *testing.T) {
	buyer := uuid.New()
	seller := uuid.New()
	stranger := uuid.New()

	order := &Order{BuyerID: buyer, SellerID: seller}

	assert.True(t, order.IsParticipant(buyer))
	assert.True(t, order.IsParticipant(seller))
	assert.False(t, order.IsParticipant(stranger))
}

func TestUserIsAdmin(t *testing.T) {
	assert.True(t, (&User{Role: UserRoleAdmin}).IsAdmin())
	assert.False(t, (&User{Role: UserRoleUser}).IsAdmin())
}
