package order_test

import (
	"testing"

	"littlelemon/internal/core/domain/model/order"
	"littlelemon/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFromDelivered(t *testing.T) {
	assert.Equal(t, order.Pending, order.StatusFromDelivered(false))
	assert.Equal(t, order.Delivered, order.StatusFromDelivered(true))
	assert.False(t, order.Pending.IsDelivered())
	assert.True(t, order.Delivered.IsDelivered())
}

func TestStatus_Validate(t *testing.T) {
	require.NoError(t, order.Pending.Validate())
	require.NoError(t, order.Delivered.Validate())

	err := order.Unknown.Validate()
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "0 is not a valid status")

	require.ErrorIs(t, order.Status(42).Validate(), errs.ErrValueIsInvalid)
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Pending", order.Pending.String())
	assert.Equal(t, "Delivered", order.Delivered.String())
	assert.Equal(t, "Unknown", order.Unknown.String())
	assert.Equal(t, "Unknown", order.Status(7).String())
}

func TestStatus_TransitionTo(t *testing.T) {
	tests := []struct {
		name        string
		from, to    order.Status
		wantChanged bool
		wantErr     bool
	}{
		{name: "pending to delivered", from: order.Pending, to: order.Delivered, wantChanged: true},
		{name: "pending to pending", from: order.Pending, to: order.Pending},
		{name: "delivered to delivered", from: order.Delivered, to: order.Delivered},
		{name: "delivered to pending", from: order.Delivered, to: order.Pending, wantErr: true},
		{name: "to unknown", from: order.Pending, to: order.Unknown, wantErr: true},
		{name: "from unknown", from: order.Unknown, to: order.Delivered, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			changed, err := tt.from.TransitionTo(tt.to)

			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
				assert.False(t, changed)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantChanged, changed)
		})
	}
}
