package backend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brysenPfingsten/PirateEase/internal/core/errx"
	"github.com/brysenPfingsten/PirateEase/internal/support/catalog"
	"github.com/brysenPfingsten/PirateEase/internal/support/model"
)

func refundsFixture() (*Refunds, map[int]*model.PastOrder) {
	cat := catalog.New(map[string][]string{
		catalog.CategoryRefundSubmitted: {"Refund for order {order_id} submitted."},
		catalog.CategoryRefundProcessed: {"Order {order_id} was already refunded."},
	})
	orders := map[int]*model.PastOrder{
		101: {ID: 101, CustomerName: "Mary Kidd", Refunded: false},
		102: {ID: 102, CustomerName: "Israel Hands", Refunded: true},
	}
	return NewRefunds(orders, cat), orders
}

func TestRefundSubmits(t *testing.T) {
	s, orders := refundsFixture()

	got, err := s.Refund("101")
	require.NoError(t, err)
	assert.Equal(t, "Refund for order 101 submitted.", got)
	assert.True(t, orders[101].Refunded)
}

func TestRefundIsIdempotent(t *testing.T) {
	s, orders := refundsFixture()

	_, err := s.Refund("101")
	require.NoError(t, err)

	got, err := s.Refund("101")
	require.NoError(t, err)
	assert.Equal(t, "Order 101 was already refunded.", got)
	assert.True(t, orders[101].Refunded)
}

func TestRefundAlreadyProcessed(t *testing.T) {
	s, orders := refundsFixture()

	got, err := s.Refund("102")
	require.NoError(t, err)
	assert.Equal(t, "Order 102 was already refunded.", got)
	// The flag never reverts.
	assert.True(t, orders[102].Refunded)
}

func TestRefundUnknownID(t *testing.T) {
	s, _ := refundsFixture()

	_, err := s.Refund("999")
	assert.ErrorIs(t, err, errx.ErrPastOrderNotFound)
}

func TestRefundNonNumericID(t *testing.T) {
	s, _ := refundsFixture()

	_, err := s.Refund("first one")
	assert.ErrorIs(t, err, errx.ErrPastOrderNotFound)
}
