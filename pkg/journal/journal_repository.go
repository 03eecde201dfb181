package journal

import (
	"Melt-App/entities"
	"context"
	"gorm.io/gorm"
)

type (
	JournalRepository interface {
		CreateEntry(ctx context.Context, entry *entities.MoodEntry) error
		GetEntriesByUser(ctx context.Context, userID string) ([]*entities.MoodEntry, error)
		GetEntryByID(ctx context.Context, id string, userID string) (*entities.MoodEntry, error)
		DeleteEntry(ctx context.Context, id string, userID string) error
		GetAllEntries(ctx context.Context) ([]*entities.MoodEntry, error)
	}

	journalRepository struct {
		db *gorm.DB
	}
)

func NewJournalRepository(db *gorm.DB) JournalRepository {
	return &journalRepository{db: db}
}

func (r *journalRepository) CreateEntry(ctx context.Context, entry *entities.MoodEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *journalRepository) GetEntriesByUser(ctx context.Context, userID string) ([]*entities.MoodEntry, error) {
	var entries []*entities.MoodEntry
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *journalRepository) GetEntryByID(ctx context.Context, id string, userID string) (*entities.MoodEntry, error) {
	var entry entities.MoodEntry
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *journalRepository) DeleteEntry(ctx context.Context, id string, userID string) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&entities.MoodEntry{}).Error
}

func (r *journalRepository) GetAllEntries(ctx context.Context) ([]*entities.MoodEntry, error) {
	var entries []*entities.MoodEntry
	if err := r.db.WithContext(ctx).
		Order("created_at desc").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
