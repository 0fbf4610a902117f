package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Svathna/KG-ALL-backend/cmd/internal/domain/entity"
)

type DefaultDocRepository struct {
	db *gorm.DB
}

func NewDocRepository(db *gorm.DB) *DefaultDocRepository {
	return &DefaultDocRepository{db: db}
}

func (d *DefaultDocRepository) FindActiveByID(id int64) (*entity.Doc, error) {
	var doc entity.Doc
	err := d.db.Scopes(active).Preload("Others").First(&doc, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (d *DefaultDocRepository) FindByID(id int64) (*entity.Doc, error) {
	var doc entity.Doc
	err := d.db.Preload("Others").First(&doc, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (d *DefaultDocRepository) Save(doc *entity.Doc) error {
	return d.db.Omit("Others").Save(doc).Error
}

// ReplaceOthers swaps the free-form document list of a Doc.
func (d *DefaultDocRepository) ReplaceOthers(docID int64, others []*entity.OtherDocument) error {
	return d.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("doc_id = ?", docID).
			Delete(&entity.OtherDocument{}).Error
		if err != nil {
			return err
		}

		if len(others) == 0 {
			return nil
		}
		return tx.Create(&others).Error
	})
}
