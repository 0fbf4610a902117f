package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Svathna/KG-ALL-backend/cmd/internal/domain/entity"
)

type DefaultMocRepository struct {
	db *gorm.DB
}

func NewMocRepository(db *gorm.DB) *DefaultMocRepository {
	return &DefaultMocRepository{db: db}
}

func (m *DefaultMocRepository) FindActiveByID(id int64) (*entity.Moc, error) {
	var moc entity.Moc
	err := m.db.Scopes(active).First(&moc, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &moc, nil
}

func (m *DefaultMocRepository) FindByID(id int64) (*entity.Moc, error) {
	var moc entity.Moc
	err := m.db.First(&moc, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &moc, nil
}

func (m *DefaultMocRepository) Save(moc *entity.Moc) error {
	return m.db.Save(moc).Error
}
