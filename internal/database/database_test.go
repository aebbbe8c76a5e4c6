package database

import (
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rhekacitra/InsideOR-Project/configs"
)

func TestDSN(t *testing.T) {
	cfg := &configs.Config{Database: configs.DatabaseConfig{
		Host: "db", Port: "5433", User: "u", Password: "p",
		DBName: "insideor", SSLMode: "disable", TimeZone: "UTC",
	}}
	assert.Equal(t,
		"host=db user=u password=p dbname=insideor port=5433 sslmode=disable TimeZone=UTC",
		DSN(cfg))
}

func TestGormConfig(t *testing.T) {
	cfg := GormConfig("debug")
	assert.NotNil(t, cfg.Logger)
	assert.Equal(t, "UTC", cfg.NowFunc().Location().String())
}

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db, mock
}

func TestHealthCheck(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectPing()
	assert.NoError(t, HealthCheck(db))

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	err := HealthCheck(db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "база данных недоступна")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateIndexesContinuesOnError(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta(extraIndexes[0])).WillReturnError(errors.New("permission denied"))
	for _, sql := range extraIndexes[1:] {
		mock.ExpectExec(regexp.QuoteMeta(sql)).WillReturnResult(sqlmock.NewResult(0, 0))
	}

	createIndexes(db)
	assert.NoError(t, mock.ExpectationsWereMet())
}
