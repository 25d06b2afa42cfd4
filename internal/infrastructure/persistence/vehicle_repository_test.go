package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/chargehub/backend/internal/domain/charging"
)

func newMockVehicleRepository(t *testing.T) (*GormVehicleRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormVehicleRepository(gormDB), mock, mockDB
}

func TestGormVehicleRepository_FindByID(t *testing.T) {
	t.Run("finds existing vehicle", func(t *testing.T) {
		repo, mock, mockDB := newMockVehicleRepository(t)
		defer mockDB.Close()

		vehicleID := uuid.New()

		rows := sqlmock.NewRows([]string{"id", "license_plate", "status", "battery_capacity_kwh", "battery_level_percent"}).
			AddRow(vehicleID, "AA-123-B", "ACTIVE", 108.0, 30.0)

		mock.ExpectQuery(`SELECT \* FROM "vehicles" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(vehicleID, 1).
			WillReturnRows(rows)

		vehicle, err := repo.FindByID(context.Background(), vehicleID)

		require.NoError(t, err)
		require.NotNil(t, vehicle)
		assert.Equal(t, vehicleID, vehicle.ID)
		assert.Equal(t, "AA-123-B", vehicle.LicensePlate)
		assert.Equal(t, charging.VehicleActive, vehicle.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns nil for non-existent vehicle", func(t *testing.T) {
		repo, mock, mockDB := newMockVehicleRepository(t)
		defer mockDB.Close()

		vehicleID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "vehicles" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(vehicleID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		vehicle, err := repo.FindByID(context.Background(), vehicleID)

		assert.NoError(t, err)
		assert.Nil(t, vehicle)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormVehicleRepository_FindAll(t *testing.T) {
	t.Run("lists vehicles ordered by plate", func(t *testing.T) {
		repo, mock, mockDB := newMockVehicleRepository(t)
		defer mockDB.Close()

		rows := sqlmock.NewRows([]string{"id", "license_plate", "status", "battery_capacity_kwh", "battery_level_percent"}).
			AddRow(uuid.New(), "AA-123-B", "ACTIVE", 108.0, 30.0).
			AddRow(uuid.New(), "ZZ-999-X", "NOT_ACTIVE", 75.0, 90.0)

		mock.ExpectQuery(`SELECT \* FROM "vehicles" ORDER BY license_plate ASC`).
			WillReturnRows(rows)

		vehicles, err := repo.FindAll(context.Background())

		require.NoError(t, err)
		require.Len(t, vehicles, 2)
		assert.Equal(t, "AA-123-B", vehicles[0].LicensePlate)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormVehicleRepository_Save(t *testing.T) {
	t.Run("saves vehicle", func(t *testing.T) {
		repo, mock, mockDB := newMockVehicleRepository(t)
		defer mockDB.Close()

		vehicle, err := charging.NewVehicle("AA-123-B", 108, 30)
		require.NoError(t, err)

		mock.ExpectExec(`UPDATE "vehicles" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err = repo.Save(context.Background(), vehicle)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
