package database

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"banking-ledger/internal/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withFastRetries(t *testing.T, retries int) {
	t.Helper()

	originalRetries := maxRetries
	originalInterval := retryInterval
	maxRetries = retries
	retryInterval = 10 * time.Millisecond
	t.Cleanup(func() {
		maxRetries = originalRetries
		retryInterval = originalInterval
	})
}

func TestNewMigrationRunner(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	runner := NewMigrationRunner(db, config.DriverMySQL)

	assert.NotNil(t, runner)
	assert.Equal(t, db, runner.db)
	assert.Equal(t, config.DriverMySQL, runner.driver)
	assert.Equal(t, filepath.Join(migrationsRoot, "mysql"), runner.migrationsPath)
}

func TestMigrationFilesExistPerDialect(t *testing.T) {
	for _, driver := range []string{config.DriverPostgres, config.DriverMySQL} {
		for _, direction := range []string{"up", "down"} {
			path := filepath.Join("..", "..", migrationsRoot, driver, "000001_create_ledger_tables."+direction+".sql")
			_, err := os.Stat(path)
			assert.NoError(t, err, path)
		}
	}
}

func TestWaitForDatabase_Success(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectPing().WillReturnError(nil)

	runner := NewMigrationRunner(db, config.DriverPostgres)
	err = runner.WaitForDatabase()

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWaitForDatabase_FailureThenSuccess(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()
	withFastRetries(t, 2)

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	mock.ExpectPing().WillReturnError(nil)

	runner := NewMigrationRunner(db, config.DriverPostgres)
	err = runner.WaitForDatabase()

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWaitForDatabase_AlwaysFails(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()
	withFastRetries(t, 2)

	for i := 0; i < maxRetries; i++ {
		mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	}

	runner := NewMigrationRunner(db, config.DriverPostgres)
	err = runner.WaitForDatabase()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database not ready after")
}

func TestRunMigrations_DirectoryNotFound(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	runner := &MigrationRunner{
		db:             db,
		driver:         config.DriverPostgres,
		migrationsPath: "/nonexistent/path/to/migrations",
	}

	err = runner.RunMigrations()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "migrations directory not found")
}

func TestRunMigrations_UnsupportedDriver(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	runner := &MigrationRunner{
		db:             db,
		driver:         config.DriverSQLite,
		migrationsPath: t.TempDir(),
	}

	err = runner.RunMigrations()

	assert.ErrorIs(t, err, ErrUnsupportedMigrationDriver)
}

func TestGetMigrationStatus_DirectoryNotFound(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	runner := &MigrationRunner{
		db:             db,
		driver:         config.DriverPostgres,
		migrationsPath: "/nonexistent/migrations",
	}

	_, _, err = runner.GetMigrationStatus()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "migrations directory not found")
}

func TestRunMigrationsIfEnabled_Disabled(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	migrated, err := RunMigrationsIfEnabled(db, config.DriverPostgres, false)

	assert.NoError(t, err)
	assert.False(t, migrated)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunMigrationsIfEnabled_SQLiteUsesAutoMigrate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	migrated, err := RunMigrationsIfEnabled(db, config.DriverSQLite, true)

	assert.NoError(t, err)
	assert.False(t, migrated)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunMigrationsIfEnabled_DatabaseNotReady(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()
	withFastRetries(t, 2)

	for i := 0; i < maxRetries; i++ {
		mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	}

	migrated, err := RunMigrationsIfEnabled(db, config.DriverPostgres, true)

	assert.Error(t, err)
	assert.False(t, migrated)
	assert.Contains(t, err.Error(), "database readiness check failed")
}

func TestWaitForDatabase_SlowStartup(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()
	withFastRetries(t, 4)

	mock.ExpectPing().WillDelayFor(20 * time.Millisecond).WillReturnError(errors.New("starting"))
	mock.ExpectPing().WillDelayFor(20 * time.Millisecond).WillReturnError(errors.New("starting"))
	mock.ExpectPing().WillDelayFor(20 * time.Millisecond).WillReturnError(errors.New("starting"))
	mock.ExpectPing().WillReturnError(nil)

	runner := NewMigrationRunner(db, config.DriverMySQL)

	start := time.Now()
	err = runner.WaitForDatabase()
	duration := time.Since(start)

	assert.NoError(t, err)
	assert.Greater(t, duration, 60*time.Millisecond, "Should have waited for retries")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetupTestDB_SharesOneInMemoryDatabase(t *testing.T) {
	db := SetupTestDB(t)

	account := CreateTestAccount(t, db, "alice", decimal.NewFromInt(100))

	var count int64
	require.NoError(t, db.Table("accounts").Where("id = ?", account.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
	assert.NoError(t, db.HealthCheck())
	assert.NoError(t, db.CreateIndexes())
	assert.Equal(t, config.DriverSQLite, db.Driver())

	CleanupTestDB(t, db)
	require.NoError(t, db.Table("accounts").Count(&count).Error)
	assert.Zero(t, count)
}

func TestNew_UnsupportedDriver(t *testing.T) {
	_, err := New(&config.DatabaseConfig{Driver: "oracle"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database driver")
}

func TestNewLogger_Levels(t *testing.T) {
	for _, level := range []string{"info", "warn", "error", "silent", "unknown"} {
		assert.NotNil(t, newLogger(level), level)
	}
}
