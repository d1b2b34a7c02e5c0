package config

import (
	"errors"
	"fmt"

	"food-cart-api/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB opens the configured database and migrates every model
func InitDB(cfg DBConfig, log *zap.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "sqlite":
		dialector = sqlite.Open(cfg.DSN)
	case "postgres":
		dialector = postgres.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	err = db.AutoMigrate(
		&models.StorageEntry{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	log.Info("database connected and migrated", zap.String("driver", cfg.Driver))
	return db, nil
}

var defaultMenu = []models.MenuItem{
	{Name: "Burger", Price: decimal.NewFromInt(100), Category: "fast food", Description: "Beef burger with cheese"},
	{Name: "Fries", Price: decimal.NewFromInt(50), Category: "fast food", Description: "Crispy potato fries"},
	{Name: "Pizza", Price: decimal.NewFromInt(180), Category: "fast food", Description: "Margherita pizza"},
	{Name: "Doro Wat", Price: decimal.NewFromInt(250), Category: "traditional", Description: "Spiced chicken stew with injera"},
	{Name: "Tibs", Price: decimal.NewFromInt(220), Category: "traditional", Description: "Sauteed beef with onion and pepper"},
	{Name: "Shiro", Price: decimal.NewFromInt(120), Category: "traditional", Description: "Chickpea stew with injera"},
	{Name: "Kitfo", Price: decimal.NewFromInt(300), Category: "traditional", Description: "Minced beef with mitmita and butter"},
	{Name: "Fresh Juice", Price: decimal.NewFromInt(60), Category: "drinks", Description: "Avocado, mango or papaya"},
	{Name: "Buna", Price: decimal.NewFromInt(30), Category: "drinks", Description: "Ethiopian coffee"},
}

// SeedMenu fills an empty menu table with the default menu
func SeedMenu(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.MenuItem{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count menu: %w", err)
	}
	if count > 0 {
		return nil
	}
	items := make([]models.MenuItem, len(defaultMenu))
	copy(items, defaultMenu)
	for i := range items {
		items[i].IsAvailable = true
	}
	if err := db.Create(&items).Error; err != nil {
		return fmt.Errorf("seed menu: %w", err)
	}
	return nil
}

var errUnknownEnv = errors.New("unknown APP_ENV")

// NewLogger builds a JSON logger for production and a console logger otherwise
func NewLogger(env string) (*zap.Logger, error) {
	switch env {
	case "production":
		return zap.NewProduction()
	case "development", "":
		return zap.NewDevelopment()
	case "test":
		return zap.NewNop(), nil
	}
	return nil, fmt.Errorf("%w: %q", errUnknownEnv, env)
}
