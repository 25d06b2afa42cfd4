package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	appcharging "github.com/chargehub/backend/internal/application/charging"
	"github.com/chargehub/backend/internal/domain/charging"
	"github.com/chargehub/backend/internal/interfaces/http/middleware"
)

type vehicleHandlerFixture struct {
	sessionHandlerFixture
}

func newVehicleHandlerFixture(t *testing.T) *vehicleHandlerFixture {
	t.Helper()
	middleware.SetupValidator()

	vehicles := new(MockVehicleRepository)
	points := new(MockChargePointRepository)

	engine := gin.New()
	api := engine.Group("/api/v1")
	VehicleRoutes(NewVehicleHandler(appcharging.NewVehicleService(vehicles))).RegisterRoutes(api)
	ChargePointRoutes(NewChargePointHandler(appcharging.NewChargePointService(points))).RegisterRoutes(api)

	f := &vehicleHandlerFixture{}
	f.engine = engine
	f.vehicles = vehicles
	f.points = points
	return f
}

func TestVehicleHandler_Create(t *testing.T) {
	t.Run("creates vehicle", func(t *testing.T) {
		f := newVehicleHandlerFixture(t)
		f.vehicles.On("Save", mock.Anything, mock.AnythingOfType("*charging.Vehicle")).Return(nil)

		w := f.do(http.MethodPost, "/api/v1/vehicles", gin.H{
			"licensePlate":        "AA-123-B",
			"batteryCapacityKwh":  108,
			"batteryLevelPercent": 30,
		})

		require.Equal(t, http.StatusCreated, w.Code)
		resp := decodeResponse(t, w)
		data, ok := resp.Data.(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "AA-123-B", data["licensePlate"])
		assert.Equal(t, "ACTIVE", data["status"])
		assert.NotEmpty(t, w.Header().Get("Location"))
	})

	t.Run("rejects missing license plate", func(t *testing.T) {
		f := newVehicleHandlerFixture(t)

		w := f.do(http.MethodPost, "/api/v1/vehicles", gin.H{
			"batteryCapacityKwh":  108,
			"batteryLevelPercent": 30,
		})

		require.Equal(t, http.StatusBadRequest, w.Code)
		f.vehicles.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects battery level above 100", func(t *testing.T) {
		f := newVehicleHandlerFixture(t)

		w := f.do(http.MethodPost, "/api/v1/vehicles", gin.H{
			"licensePlate":        "AA-123-B",
			"batteryCapacityKwh":  108,
			"batteryLevelPercent": 130,
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestVehicleHandler_Get(t *testing.T) {
	t.Run("returns 404 for unknown vehicle", func(t *testing.T) {
		f := newVehicleHandlerFixture(t)
		vehicleID := uuid.New()

		f.vehicles.On("FindByID", mock.Anything, vehicleID).Return(nil, nil)

		w := f.do(http.MethodGet, "/api/v1/vehicles/"+vehicleID.String(), nil)

		require.Equal(t, http.StatusNotFound, w.Code)
		resp := decodeResponse(t, w)
		require.NotNil(t, resp.Error)
		assert.Equal(t, charging.CodeVehicleNotFound, resp.Error.Code)
	})

	t.Run("returns vehicle", func(t *testing.T) {
		f := newVehicleHandlerFixture(t)
		vehicle := newTestVehicle(t)

		f.vehicles.On("FindByID", mock.Anything, vehicle.ID).Return(vehicle, nil)

		w := f.do(http.MethodGet, "/api/v1/vehicles/"+vehicle.ID.String(), nil)

		require.Equal(t, http.StatusOK, w.Code)
	})
}

func TestChargePointHandler_Create(t *testing.T) {
	t.Run("creates charge point", func(t *testing.T) {
		f := newVehicleHandlerFixture(t)
		f.points.On("Save", mock.Anything, mock.AnythingOfType("*charging.ChargePoint")).Return(nil)

		w := f.do(http.MethodPost, "/api/v1/charge-points", gin.H{
			"manufacturerModel": "Veefil-RT",
			"chargingPowerKw":   50,
			"latitude":          "52.0907",
			"longitude":         "5.1214",
		})

		require.Equal(t, http.StatusCreated, w.Code)
		resp := decodeResponse(t, w)
		data, ok := resp.Data.(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "Veefil-RT", data["manufacturerModel"])
	})

	t.Run("rejects non-positive power", func(t *testing.T) {
		f := newVehicleHandlerFixture(t)

		w := f.do(http.MethodPost, "/api/v1/charge-points", gin.H{
			"manufacturerModel": "Veefil-RT",
			"chargingPowerKw":   0,
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		f.points.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestChargePointHandler_List(t *testing.T) {
	f := newVehicleHandlerFixture(t)
	point := newTestChargePoint(t)

	f.points.On("FindAll", mock.Anything).Return([]*charging.ChargePoint{point}, nil)

	w := f.do(http.MethodGet, "/api/v1/charge-points", nil)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	data, ok := resp.Data.([]interface{})
	require.True(t, ok)
	require.Len(t, data, 1)
}
