package repository

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/BruksfildServices01/barber-booking/internal/db"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// Runs against a real Postgres when TEST_DATABASE_URL is set.
func setupPostgres(t *testing.T) (*Gateway, *gorm.DB) {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Discard,
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))
	require.NoError(t, db.Migrate(gdb), "migrate must be idempotent")

	return NewGateway(gdb), gdb
}

func TestPostgresAppointmentLifecycle(t *testing.T) {
	gw, _ := setupPostgres(t)
	ctx := context.Background()

	ap := alice()
	ap.Message = "first visit"
	require.NoError(t, gw.InsertAppointment(ctx, ap))
	require.NotZero(t, ap.ID)

	got, err := gw.GetAppointment(ctx, ap.ID)
	require.NoError(t, err)
	assert.Equal(t, ap, got)

	changed := &models.Appointment{
		Name:     "Alice B",
		Email:    "alice@x.com",
		Phone:    "555-1001",
		Category: "Shave",
		Date:     models.NewDate(2024, time.July, 2),
		Time:     "14:00",
		Message:  "",
	}
	_, err = gw.UpdateAppointment(ctx, ap.ID, changed)
	require.NoError(t, err)

	got, err = gw.GetAppointment(ctx, ap.ID)
	require.NoError(t, err)
	changed.ID = ap.ID
	assert.Equal(t, changed, got)

	require.NoError(t, gw.DeleteAppointment(ctx, ap.ID))
	_, err = gw.GetAppointment(ctx, ap.ID)
	assert.True(t, httperr.IsNotFound(err))
	assert.True(t, httperr.IsNotFound(gw.DeleteAppointment(ctx, ap.ID)))

	_, err = gw.UpdateAppointment(ctx, ap.ID, changed)
	assert.True(t, httperr.IsNotFound(err))
}

func TestPostgresListIsOrdered(t *testing.T) {
	gw, _ := setupPostgres(t)
	ctx := context.Background()

	for _, slot := range []struct {
		day  int
		time string
	}{{3, "10:00"}, {1, "15:00"}, {1, "09:00"}} {
		ap := alice()
		ap.Date = models.NewDate(2030, time.January, slot.day)
		ap.Time = slot.time
		require.NoError(t, gw.InsertAppointment(ctx, ap))
		t.Cleanup(func() { _ = gw.DeleteAppointment(ctx, ap.ID) })
	}

	apps, err := gw.ListAppointments(ctx)
	require.NoError(t, err)

	for i := 1; i < len(apps); i++ {
		prev, cur := apps[i-1], apps[i]
		if prev.Date.Equal(cur.Date.Time) {
			assert.LessOrEqual(t, prev.Time, cur.Time)
		} else {
			assert.True(t, prev.Date.Before(cur.Date.Time))
		}
	}
}

func TestPostgresMessageLengthIsValidation(t *testing.T) {
	gw, _ := setupPostgres(t)

	ap := alice()
	ap.Message = strings.Repeat("x", 501)

	err := gw.InsertAppointment(context.Background(), ap)
	assert.True(t, httperr.IsValidation(err))
}

func TestPostgresSeedIsIdempotent(t *testing.T) {
	gw, gdb := setupPostgres(t)
	ctx := context.Background()

	require.NoError(t, gw.InsertUserIfAbsent(ctx, "Admin", "admin@example.com", "hash-1"))
	require.NoError(t, gw.InsertUserIfAbsent(ctx, "Admin", "admin@example.com", "hash-2"))

	var count int64
	require.NoError(t, gdb.Model(&models.User{}).Where("email = ?", "admin@example.com").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
