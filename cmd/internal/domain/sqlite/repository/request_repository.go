package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Svathna/KG-ALL-backend/cmd/internal/domain/entity"
)

type DefaultRequestRepository struct {
	db *gorm.DB
}

func NewRequestRepository(db *gorm.DB) *DefaultRequestRepository {
	return &DefaultRequestRepository{db: db}
}

// FindPending lists undeleted pending requests, most recent first.
func (r *DefaultRequestRepository) FindPending() ([]*entity.Request, error) {
	var requests []*entity.Request
	err := r.db.Scopes(active).
		Where("status = ?", entity.RequestStatusPending).
		Order("created_at DESC").
		Preload("Company", "deleted = ?", false).
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *DefaultRequestRepository) FindPendingByCompany(companyID int64) ([]*entity.Request, error) {
	var requests []*entity.Request
	err := r.db.Scopes(active).
		Where("status = ? AND company_id = ?", entity.RequestStatusPending, companyID).
		Order("created_at DESC").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *DefaultRequestRepository) FindActiveByID(id int64) (*entity.Request, error) {
	var request entity.Request
	err := r.db.Scopes(active).First(&request, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &request, nil
}

// FindByID returns the request whatever its status or tombstone state.
func (r *DefaultRequestRepository) FindByID(id int64) (*entity.Request, error) {
	var request entity.Request
	err := r.db.First(&request, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *DefaultRequestRepository) Save(request *entity.Request) error {
	return r.db.Omit("Company").Save(request).Error
}
