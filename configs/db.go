package configs

import (
	"menucloud/entity"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// ConnectSQLite opens the database handle that gets passed down to every
// repository. The handle is created once in main and closed at shutdown;
// there is no package-level singleton.
func ConnectSQLite(cfg *Config) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.DBSource), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, err
	}
	return db, nil
}

func SetupDatabase(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.Restaurant{},
		&entity.RestaurantSettings{},
		&entity.Category{},
		&entity.MenuItem{},
		&entity.UsageMetric{},
		&entity.Session{},
	)
}
