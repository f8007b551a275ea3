package repository

import (
	"errors"

	"driveline/cmd/internal/domain/entity"
	"driveline/cmd/internal/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultSlotRepository struct {
	db *gorm.DB
}

func NewSlotRepository(db *gorm.DB) *DefaultSlotRepository {
	return &DefaultSlotRepository{db: db}
}

// Load returns the text stored under key, or "" if the slot was never
// written. A slot that does not exist yet is not an error.
func (s *DefaultSlotRepository) Load(key string) (string, error) {
	var slot entity.Slot
	err := s.db.First(&slot, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return slot.Value, nil
}

// Save replaces the slot's entire contents in one write.
func (s *DefaultSlotRepository) Save(key, value string) error {
	slot := entity.Slot{
		Key:       key,
		Value:     value,
		UpdatedAt: utils.NowUTC(),
	}
	return s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&slot).Error
}
