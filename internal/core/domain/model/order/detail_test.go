package order_test

import (
	"testing"

	"orderdelivery/internal/core/domain/model/order"
	"orderdelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDetail(t *testing.T) {
	t.Run("valid_line", func(t *testing.T) {
		detail, err := order.NewDetail(7, 3, 199.99)

		require.NoError(t, err)
		assert.EqualValues(t, 7, detail.ProductID())
		assert.Equal(t, 3, detail.Quantity())
		assert.InDelta(t, 199.99, detail.Price(), 0.0001)
	})

	t.Run("zero_price_snapshot_is_allowed", func(t *testing.T) {
		_, err := order.NewDetail(7, 1, 0)
		require.NoError(t, err)
	})

	t.Run("invalid_inputs", func(t *testing.T) {
		cases := []struct {
			name      string
			productID int64
			quantity  int
			price     float64
		}{
			{"zero_product", 0, 1, 10},
			{"negative_product", -1, 1, 10},
			{"zero_quantity", 7, 0, 10},
			{"negative_quantity", 7, -2, 10},
			{"negative_price", 7, 1, -0.01},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := order.NewDetail(tc.productID, tc.quantity, tc.price)
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			})
		}
	})
}

func TestDetail_Validate(t *testing.T) {
	t.Run("zero_value_detail_is_rejected", func(t *testing.T) {
		var detail order.Detail
		require.ErrorIs(t, detail.Validate(), order.ErrDetailIsNotConstructed)
	})
}
