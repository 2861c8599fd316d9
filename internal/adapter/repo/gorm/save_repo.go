package gormrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"zooverse/internal/app/ports"
)

type SaveRepo struct {
	db *gorm.DB
}

func NewSaveRepo(db *gorm.DB) SaveRepo {
	return SaveRepo{db: db}
}

func (r SaveRepo) LoadBlob(ctx context.Context, slot string) ([]byte, error) {
	var m SaveSlot
	if err := r.db.WithContext(ctx).Where("slot = ?", slot).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return []byte(m.Payload), nil
}

func (r SaveRepo) SaveBlob(ctx context.Context, slot string, blob []byte) error {
	m := SaveSlot{Slot: slot, Payload: string(blob)}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slot"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(&m).Error
}

func (r SaveRepo) DeleteBlob(ctx context.Context, slot string) error {
	res := r.db.WithContext(ctx).Where("slot = ?", slot).Delete(&SaveSlot{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}
