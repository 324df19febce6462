package repository

import (
	"context"
	"strings"

	"ticketing_admin/helper"
	"ticketing_admin/model"
	"ticketing_admin/utils"

	"gorm.io/gorm"
)

type EventRepository interface {
	List(ctx context.Context, f model.EventFilter) ([]model.Event, int64, error)
	FindByID(ctx context.Context, id uint) (*model.Event, error)
	FindDetail(ctx context.Context, id uint) (*model.Event, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Create(ctx context.Context, event *model.Event) error
	Save(ctx context.Context, event *model.Event) error
	Delete(ctx context.Context, id uint) (bool, error)
	CountByLokasi(ctx context.Context, lokasiID uint) (int64, error)
	CountByKategori(ctx context.Context, kategoriID uint) (int64, error)
	UniqueSlug(ctx context.Context, judul string, excludeID uint) (string, error)
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) List(ctx context.Context, f model.EventFilter) ([]model.Event, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Event{})
	if f.KategoriID != nil {
		q = q.Where("kategori_id = ?", *f.KategoriID)
	}
	if f.LokasiID != nil {
		q = q.Where("lokasi_id = ?", *f.LokasiID)
	}
	if f.Search != nil && strings.TrimSpace(*f.Search) != "" {
		q = q.Where("LOWER(judul) LIKE ?", "%"+strings.ToLower(strings.TrimSpace(*f.Search))+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []model.Event
	err := utils.ApplyPagination(q, f.Limit, f.Page).
		Preload("Lokasi").
		Preload("Kategori").
		Order("id ASC").
		Find(&rows).Error
	return rows, total, err
}

func (r *eventRepository) FindByID(ctx context.Context, id uint) (*model.Event, error) {
	return findByID[model.Event](ctx, r.db, id)
}

func (r *eventRepository) FindDetail(ctx context.Context, id uint) (*model.Event, error) {
	return findByID[model.Event](ctx, r.db, id, "Lokasi", "Kategori", "User", "Tikets")
}

func (r *eventRepository) Exists(ctx context.Context, id uint) (bool, error) {
	return exists[model.Event](ctx, r.db, id)
}

func (r *eventRepository) Create(ctx context.Context, event *model.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *eventRepository) Save(ctx context.Context, event *model.Event) error {
	return save(ctx, r.db, event)
}

func (r *eventRepository) Delete(ctx context.Context, id uint) (bool, error) {
	return deleteByID[model.Event](ctx, r.db, id)
}

func (r *eventRepository) CountByLokasi(ctx context.Context, lokasiID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Event{}).Where("lokasi_id = ?", lokasiID).Count(&count).Error
	return count, err
}

func (r *eventRepository) CountByKategori(ctx context.Context, kategoriID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Event{}).Where("kategori_id = ?", kategoriID).Count(&count).Error
	return count, err
}

func (r *eventRepository) UniqueSlug(ctx context.Context, judul string, excludeID uint) (string, error) {
	return helper.GenerateUniqueSlug(r.db.WithContext(ctx), &model.Event{}, judul, excludeID)
}
