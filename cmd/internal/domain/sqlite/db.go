package sqlite

import (
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/Svathna/KG-ALL-backend/cmd/internal/domain/entity"
)

func Init() (*gorm.DB, error) {
	dbPath := filepath.Join(".", "database.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&entity.User{},
		&entity.Company{},
		&entity.TaxHistory{},
		&entity.MonthlyTax{},
		&entity.YearlyTax{},
		&entity.Request{},
		&entity.Moc{},
		&entity.Dot{},
		&entity.Doc{},
		&entity.OtherDocument{},
		&entity.ServicePlan{},
	)
	if err != nil {
		return nil, err
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}
