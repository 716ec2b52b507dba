package database

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/crowdfund-ledger/internal/infrastructure/adapter/model"
)

// TestDBManager provides a migrated store for tests. It uses a private SQLite
// in-memory database unless TEST_DB_DRIVER=postgres points it at a server.
type TestDBManager struct {
	Manager      *Manager
	Config       *Config
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider
}

// NewTestDBManager connects and migrates a fresh test store, closed on cleanup
func NewTestDBManager(t *testing.T, logger coreport.Logger, timeProvider coreport.TimeProvider) *TestDBManager {
	t.Helper()

	config := &Config{
		Driver:        getEnvOrDefault("TEST_DB_DRIVER", DriverSQLite),
		SQLitePath:    fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", uuid.NewString()),
		Host:          getEnvOrDefault("TEST_DB_HOST", "localhost"),
		Port:          getEnvIntOrDefault("TEST_DB_PORT", 5432),
		Username:      getEnvOrDefault("TEST_DB_USERNAME", "postgres"),
		Password:      getEnvOrDefault("TEST_DB_PASSWORD", "postgres"),
		Database:      getEnvOrDefault("TEST_DB_DATABASE", "crowdfund_ledger_test"),
		SSLMode:       getEnvOrDefault("TEST_DB_SSL_MODE", "disable"),
		MaxOpenConns:  10,
		MaxIdleConns:  5,
		QueryTimeout:  5 * time.Second,
		LogLevel:      "silent",
		RetryAttempts: 1,
	}

	manager := NewManager(config, logger, timeProvider)
	if _, err := manager.Connect(context.Background()); err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	t.Cleanup(func() {
		if err := manager.Close(); err != nil {
			t.Logf("Warning: Failed to close test database connection: %v", err)
		}
	})

	if err := manager.MigrationManager().MigrateAll(context.Background()); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return &TestDBManager{
		Manager:      manager,
		Config:       config,
		Logger:       logger,
		TimeProvider: timeProvider,
	}
}

// TruncateAllTables deletes every ledger row, children first
func (m *TestDBManager) TruncateAllTables(t *testing.T) {
	t.Helper()

	db := m.Manager.DB().Session(&gorm.Session{AllowGlobalUpdate: true})
	for _, table := range []any{&model.RefundRequest{}, &model.Transaction{}, &model.Project{}, &model.Session{}, &model.User{}} {
		if err := db.Delete(table).Error; err != nil {
			t.Fatalf("Failed to truncate tables: %v", err)
		}
	}
}

// CreateTestUser inserts a user row
func (m *TestDBManager) CreateTestUser(t *testing.T, id, email string) {
	t.Helper()

	now := m.TimeProvider.Now().UTC()
	var emailPtr *string
	if email != "" {
		emailPtr = &email
	}
	user := model.User{
		ID:        id,
		Email:     emailPtr,
		FirstName: "Test",
		LastName:  id,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := m.Manager.DB().Create(&user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
}

// CreateTestProject inserts an active project with zero raised
func (m *TestDBManager) CreateTestProject(t *testing.T, creatorID, goal string, deadline time.Time) uint64 {
	t.Helper()

	row := model.Project{
		CreatorID:     creatorID,
		Title:         "Test project",
		Category:      string(entity.CategoryOther),
		GoalAmount:    model.NewAmount(decimal.RequireFromString(goal)),
		CurrentAmount: model.NewAmount(entity.Zero),
		Deadline:      deadline.UTC(),
		IsActive:      true,
		CreatedAt:     m.TimeProvider.Now().UTC(),
	}
	if err := m.Manager.DB().Create(&row).Error; err != nil {
		t.Fatalf("Failed to create test project: %v", err)
	}
	return row.ID
}

func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		var result int
		if _, err := fmt.Sscanf(value, "%d", &result); err == nil {
			return result
		}
	}
	return defaultValue
}
