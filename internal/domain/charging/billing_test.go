package charging

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTariff(t *testing.T) Tariff {
	t.Helper()
	tariff, err := NewTariff(decimal.RequireFromString("0.50"), DefaultConnectionFee())
	require.NoError(t, err)
	return tariff
}

func TestNewTariff(t *testing.T) {
	t.Run("creates valid tariff", func(t *testing.T) {
		tariff, err := NewTariff(decimal.RequireFromString("0.50"), decimal.NewFromInt(1))

		require.NoError(t, err)
		assert.True(t, tariff.CostPerKwh.Equal(decimal.RequireFromString("0.50")))
		assert.True(t, tariff.ConnectionFee.Equal(decimal.NewFromInt(1)))
	})

	t.Run("fails with negative cost per kWh", func(t *testing.T) {
		_, err := NewTariff(decimal.NewFromInt(-1), decimal.NewFromInt(1))

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Cost per kWh cannot be negative")
	})

	t.Run("fails with negative connection fee", func(t *testing.T) {
		_, err := NewTariff(decimal.NewFromInt(1), decimal.NewFromInt(-1))

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Connection fee cannot be negative")
	})
}

func TestBillingEngineSessionCost(t *testing.T) {
	engine := NewBillingEngine(testTariff(t))

	t.Run("bills delivered energy when battery can absorb more", func(t *testing.T) {
		// 20% of 94.5 kWh leaves 75.6 kWh to full; a 50 kW charger over one
		// hour delivers only 50 kWh, so the delivered energy is billed.
		vehicle, err := NewVehicle("172-D-345", 94.5, 20)
		require.NoError(t, err)
		point, err := NewChargePoint("Siemens VersiCharge", 50, "53.34981", "-6.26031")
		require.NoError(t, err)

		cost := engine.SessionCost(vehicle, point, MillisecondsPerHour)

		assert.True(t, cost.Equal(decimal.RequireFromString("26.00")), "got %s", cost)
	})

	t.Run("bills energy to full when battery fills first", func(t *testing.T) {
		// 95% of 100 kWh leaves 5 kWh to full; the charger could deliver
		// 50 kWh over the hour but the battery tops out at 5 kWh.
		vehicle, err := NewVehicle("172-D-346", 100, 95)
		require.NoError(t, err)
		point, err := NewChargePoint("Siemens VersiCharge", 50, "53.34981", "-6.26031")
		require.NoError(t, err)

		cost := engine.SessionCost(vehicle, point, MillisecondsPerHour)

		assert.True(t, cost.Equal(decimal.RequireFromString("3.50")), "got %s", cost)
	})

	t.Run("bills only connection fee when battery already full", func(t *testing.T) {
		vehicle, err := NewVehicle("172-D-347", 120, 100)
		require.NoError(t, err)
		point, err := NewChargePoint("Tesla Supercharger", 250, "53.34981", "-6.26031")
		require.NoError(t, err)

		cost := engine.SessionCost(vehicle, point, 4*MillisecondsPerHour)

		assert.True(t, cost.Equal(decimal.NewFromInt(1)), "got %s", cost)
	})

	t.Run("bills only connection fee for zero duration", func(t *testing.T) {
		vehicle, err := NewVehicle("172-D-348", 120, 20)
		require.NoError(t, err)
		point, err := NewChargePoint("Tesla Supercharger", 250, "53.34981", "-6.26031")
		require.NoError(t, err)

		cost := engine.SessionCost(vehicle, point, 0)

		assert.True(t, cost.Equal(decimal.NewFromInt(1)), "got %s", cost)
	})

	t.Run("cost never drops below connection fee", func(t *testing.T) {
		vehicle, err := NewVehicle("172-D-349", 120, 20)
		require.NoError(t, err)
		point, err := NewChargePoint("Pod Point Solo", 7.4, "53.34981", "-6.26031")
		require.NoError(t, err)

		for _, duration := range []int64{0, 1, 500, MillisecondsPerHour / 2, MillisecondsPerHour} {
			cost := engine.SessionCost(vehicle, point, duration)
			assert.True(t, cost.GreaterThanOrEqual(decimal.NewFromInt(1)),
				"duration %d ms billed %s", duration, cost)
		}
	})

	t.Run("partial hour is billed pro rata", func(t *testing.T) {
		// 50 kW for 30 minutes delivers 25 kWh: 25 * 0.50 + 1 = 13.50
		vehicle, err := NewVehicle("172-D-350", 94.5, 20)
		require.NoError(t, err)
		point, err := NewChargePoint("Siemens VersiCharge", 50, "53.34981", "-6.26031")
		require.NoError(t, err)

		cost := engine.SessionCost(vehicle, point, MillisecondsPerHour/2)

		assert.True(t, cost.Equal(decimal.RequireFromString("13.50")), "got %s", cost)
	})
}

func TestBillingEngineConnectionFee(t *testing.T) {
	engine := NewBillingEngine(testTariff(t))

	fee := engine.ConnectionFee()
	assert.True(t, fee.Equal(decimal.NewFromInt(1)), "got %s", fee)
}
