package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Svathna/KG-ALL-backend/cmd/internal/domain/entity"
)

type DefaultUserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *DefaultUserRepository {
	return &DefaultUserRepository{db: db}
}

// FindAllActiveNormal lists non-deleted normal users, their company
// preloaded when it is not deleted itself.
func (u *DefaultUserRepository) FindAllActiveNormal() ([]*entity.User, error) {
	var users []*entity.User
	err := u.db.Scopes(active).
		Where("type = ?", entity.UserTypeNormalUser).
		Preload("Company", "deleted = ?", false).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (u *DefaultUserRepository) FindActiveByID(id int64) (*entity.User, error) {
	var user entity.User
	err := u.db.Scopes(active).
		Preload("Company", "deleted = ?", false).
		First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByID skips the tombstone filter; soft-deleted users remain
// addressable by id.
func (u *DefaultUserRepository) FindByID(id int64) (*entity.User, error) {
	var user entity.User
	err := u.db.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (u *DefaultUserRepository) FindActiveByUserName(userName string) (*entity.User, error) {
	var user entity.User
	err := u.db.Scopes(active).
		Where("user_name = ?", userName).
		Preload("Company", "deleted = ?", false).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (u *DefaultUserRepository) ExistsActiveByUserName(userName string) (bool, error) {
	var exists int
	err := u.db.
		Raw("SELECT EXISTS(SELECT 1 FROM users WHERE user_name = ? AND deleted = false)", userName).
		Scan(&exists).Error
	if err != nil {
		return false, err
	}
	return exists == 1, nil
}

func (u *DefaultUserRepository) Save(user *entity.User) error {
	return u.db.Omit("Company").Save(user).Error
}
