package database

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/rhekacitra/InsideOR-Project/configs"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

// DSN формирует строку подключения к postgres
func DSN(config *configs.Config) string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		config.Database.Host,
		config.Database.User,
		config.Database.Password,
		config.Database.DBName,
		config.Database.Port,
		config.Database.SSLMode,
		config.Database.TimeZone,
	)
}

// GormConfig общая конфигурация GORM
func GormConfig(logLevel string) *gorm.Config {
	mode := logger.Warn
	if logLevel == "debug" {
		mode = logger.Info
	}
	return &gorm.Config{
		Logger: logger.Default.LogMode(mode),
		NamingStrategy: schema.NamingStrategy{
			TablePrefix: "explorer_",
		},
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// InitDatabase инициализирует подключение к базе данных
func InitDatabase(config *configs.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(DSN(config)), GormConfig(config.App.LogLevel))
	if err != nil {
		return nil, fmt.Errorf("не удалось подключиться к базе данных: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("не удалось получить sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetConnMaxLifetime(time.Hour)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("не удалось проверить соединение с БД: %w", err)
	}

	slog.Info("Connected to PostgreSQL", "host", config.Database.Host, "db", config.Database.DBName)
	return db, nil
}

// CloseDatabase корректно закрывает соединение с БД
func CloseDatabase(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	slog.Info("Closing database connection")
	return sqlDB.Close()
}

// HealthCheck проверяет состояние базы данных
func HealthCheck(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("не удалось получить sql.DB: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("база данных недоступна: %w", err)
	}

	return nil
}
