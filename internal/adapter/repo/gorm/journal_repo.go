package gormrepo

import (
	"context"

	"gorm.io/gorm"

	"zooverse/internal/app/ports"
	"zooverse/internal/domain/zoo"
)

type JournalRepo struct {
	db *gorm.DB
}

func NewJournalRepo(db *gorm.DB) JournalRepo {
	return JournalRepo{db: db}
}

func (r JournalRepo) Append(ctx context.Context, entry ports.JournalEntry) error {
	row := JournalRow{
		Slot:       entry.Slot,
		Kind:       entry.Kind,
		Message:    entry.Message,
		Delta:      entry.Delta,
		Severity:   string(entry.Severity),
		OccurredAt: entry.OccurredAt,
	}
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r JournalRepo) ListBySlot(ctx context.Context, slot string, limit int) ([]ports.JournalEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	var rows []JournalRow
	err := r.db.WithContext(ctx).
		Where("slot = ?", slot).
		Order("id DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]ports.JournalEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, ports.JournalEntry{
			Slot:       row.Slot,
			Kind:       row.Kind,
			Message:    row.Message,
			Delta:      row.Delta,
			Severity:   zoo.Severity(row.Severity),
			OccurredAt: row.OccurredAt,
		})
	}
	return out, nil
}
