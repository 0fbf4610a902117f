package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Svathna/KG-ALL-backend/cmd/internal/domain/entity"
)

type DefaultServicePlanRepository struct {
	db *gorm.DB
}

func NewServicePlanRepository(db *gorm.DB) *DefaultServicePlanRepository {
	return &DefaultServicePlanRepository{db: db}
}

// FindLatestActive returns the price sheet currently in effect.
func (s *DefaultServicePlanRepository) FindLatestActive() (*entity.ServicePlan, error) {
	var plan entity.ServicePlan
	err := s.db.Scopes(active).
		Order("created_at DESC").
		First(&plan).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (s *DefaultServicePlanRepository) FindActiveByID(id int64) (*entity.ServicePlan, error) {
	var plan entity.ServicePlan
	err := s.db.Scopes(active).First(&plan, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (s *DefaultServicePlanRepository) Save(plan *entity.ServicePlan) error {
	return s.db.Save(plan).Error
}
