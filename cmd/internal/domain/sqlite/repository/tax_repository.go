package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Svathna/KG-ALL-backend/cmd/internal/domain/entity"
)

// monthlyOrder keeps loaded ledger sequences in their canonical order.
func monthlyOrder(db *gorm.DB) *gorm.DB {
	return db.Order("year, month")
}

func yearlyOrder(db *gorm.DB) *gorm.DB {
	return db.Order("year")
}

type DefaultTaxHistoryRepository struct {
	db *gorm.DB
}

func NewTaxHistoryRepository(db *gorm.DB) *DefaultTaxHistoryRepository {
	return &DefaultTaxHistoryRepository{db: db}
}

func (t *DefaultTaxHistoryRepository) FindActiveByID(id int64) (*entity.TaxHistory, error) {
	var history entity.TaxHistory
	err := t.db.Scopes(active).
		Preload("TaxPerMonths", monthlyOrder).
		Preload("TaxPerYears", yearlyOrder).
		First(&history, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &history, nil
}

func (t *DefaultTaxHistoryRepository) FindByID(id int64) (*entity.TaxHistory, error) {
	var history entity.TaxHistory
	err := t.db.
		Preload("TaxPerMonths", monthlyOrder).
		Preload("TaxPerYears", yearlyOrder).
		First(&history, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &history, nil
}

func (t *DefaultTaxHistoryRepository) Save(history *entity.TaxHistory) error {
	return t.db.
		Omit("TaxPerMonths", "TaxPerYears").
		Save(history).Error
}

// ReplaceMonths swaps the full monthly sequence of a ledger in one
// transaction. The caller hands entries already sorted.
func (t *DefaultTaxHistoryRepository) ReplaceMonths(historyID int64, entries []*entity.MonthlyTax) error {
	return t.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("tax_history_id = ?", historyID).
			Delete(&entity.MonthlyTax{}).Error
		if err != nil {
			return err
		}

		if len(entries) == 0 {
			return nil
		}
		return tx.Create(&entries).Error
	})
}

func (t *DefaultTaxHistoryRepository) ReplaceYears(historyID int64, entries []*entity.YearlyTax) error {
	return t.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("tax_history_id = ?", historyID).
			Delete(&entity.YearlyTax{}).Error
		if err != nil {
			return err
		}

		if len(entries) == 0 {
			return nil
		}
		return tx.Create(&entries).Error
	})
}

// DeleteMonth hard-removes a single entry; monthly removals are not
// tombstoned.
func (t *DefaultTaxHistoryRepository) DeleteMonth(entry *entity.MonthlyTax) error {
	return t.db.Delete(entry).Error
}
