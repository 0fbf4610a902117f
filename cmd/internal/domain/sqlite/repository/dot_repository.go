package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Svathna/KG-ALL-backend/cmd/internal/domain/entity"
)

type DefaultDotRepository struct {
	db *gorm.DB
}

func NewDotRepository(db *gorm.DB) *DefaultDotRepository {
	return &DefaultDotRepository{db: db}
}

func (d *DefaultDotRepository) FindActiveByID(id int64) (*entity.Dot, error) {
	var dot entity.Dot
	err := d.db.Scopes(active).First(&dot, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &dot, nil
}

func (d *DefaultDotRepository) FindByID(id int64) (*entity.Dot, error) {
	var dot entity.Dot
	err := d.db.First(&dot, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &dot, nil
}

func (d *DefaultDotRepository) Save(dot *entity.Dot) error {
	return d.db.Save(dot).Error
}
