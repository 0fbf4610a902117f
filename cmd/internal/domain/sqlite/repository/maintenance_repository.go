package repository

import (
	"gorm.io/gorm"

	"github.com/Svathna/KG-ALL-backend/cmd/internal/domain/entity"
)

type DefaultMaintenanceRepository struct {
	db *gorm.DB
}

func NewMaintenanceRepository(db *gorm.DB) *DefaultMaintenanceRepository {
	return &DefaultMaintenanceRepository{db: db}
}

// PurgeTombstones hard-deletes rows that were soft-deleted before the
// given epoch-millis cutoff. Returns the number of rows removed.
func (m *DefaultMaintenanceRepository) PurgeTombstones(before int64) (int64, error) {
	var purged int64

	models := []any{
		&entity.Request{},
		&entity.Moc{},
		&entity.Dot{},
		&entity.Doc{},
		&entity.TaxHistory{},
		&entity.ServicePlan{},
		&entity.User{},
		&entity.Company{},
	}

	for _, model := range models {
		res := m.db.
			Where("deleted = ? AND updated_at < ?", true, before).
			Delete(model)
		if res.Error != nil {
			return purged, res.Error
		}
		purged += res.RowsAffected
	}
	return purged, nil
}
