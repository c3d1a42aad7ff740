// internal/store/store_test.go
package store

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minimarket/marketplace-backend/internal/apperrors"
	"github.com/minimarket/marketplace-backend/internal/models"
)

// Without a configured database the store must degrade: reads come back
// empty, writes fail explicitly.
func TestDegradedReads(t *testing.T) {
	s := New(nil)

	assert.False(t, s.Available())

	user, err := s.GetUserByAuthID("ext|1")
	require.NoError(t, err)
	assert.Nil(t, user)

	product, err := s.GetProduct(uuid.New())
	require.NoError(t, err)
	assert.Nil(t, product)

	products, err := s.ListProducts(50, 0, true)
	require.NoError(t, err)
	assert.Empty(t, products)

	order, err := s.GetOrder(uuid.New())
	require.NoError(t, err)
	assert.Nil(t, order)

	orders, err := s.ListOrdersByBuyer(uuid.New())
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestDegradedWrites(t *testing.T) {
	s := New(nil)

	_, err := s.UpsertUserByAuthID("ext|1", "", "", models.UserRoleUser)
	assert.ErrorIs(t, err, apperrors.ErrUnavailable)

	err = s.CreateProduct(&models.Product{Name: "widget", Price: 100, Quantity: 1})
	assert.ErrorIs(t, err, apperrors.ErrUnavailable)

	err = s.UpdateProduct(uuid.New(), map[string]interface{}{"price": int64(200)})
	assert.ErrorIs(t, err, apperrors.ErrUnavailable)

	_, err = s.PlaceOrder(uuid.New(), uuid.New(), 1)
	assert.ErrorIs(t, err, apperrors.ErrUnavailable)
}
