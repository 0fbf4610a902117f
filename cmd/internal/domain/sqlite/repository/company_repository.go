package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Svathna/KG-ALL-backend/cmd/internal/domain/entity"
)

type DefaultCompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) *DefaultCompanyRepository {
	return &DefaultCompanyRepository{db: db}
}

func (c *DefaultCompanyRepository) FindAllActive() ([]*entity.Company, error) {
	var companies []*entity.Company
	err := c.db.Scopes(active).
		Preload("User", "deleted = ?", false).
		Find(&companies).Error
	if err != nil {
		return nil, err
	}
	return companies, nil
}

func (c *DefaultCompanyRepository) FindActiveByID(id int64) (*entity.Company, error) {
	var company entity.Company
	err := c.db.Scopes(active).
		Preload("User", "deleted = ?", false).
		Preload("Moc").
		Preload("Dot").
		Preload("Doc").
		Preload("Doc.Others").
		Preload("TaxHistory").
		Preload("TaxHistory.TaxPerMonths", monthlyOrder).
		Preload("TaxHistory.TaxPerYears", yearlyOrder).
		First(&company, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &company, nil
}

// FindByID skips the tombstone filter for direct lookups.
func (c *DefaultCompanyRepository) FindByID(id int64) (*entity.Company, error) {
	var company entity.Company
	err := c.db.First(&company, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &company, nil
}

func (c *DefaultCompanyRepository) ExistsActiveByName(name string) (bool, error) {
	var exists int
	err := c.db.
		Raw("SELECT EXISTS(SELECT 1 FROM companies WHERE name = ? AND deleted = false)", name).
		Scan(&exists).Error
	if err != nil {
		return false, err
	}
	return exists == 1, nil
}

func (c *DefaultCompanyRepository) Save(company *entity.Company) error {
	return c.db.
		Omit("User", "Moc", "Dot", "Doc", "TaxHistory").
		Save(company).Error
}
