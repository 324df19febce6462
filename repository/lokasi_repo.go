package repository

import (
	"context"

	"ticketing_admin/model"
	"ticketing_admin/utils"

	"gorm.io/gorm"
)

type LokasiRepository interface {
	List(ctx context.Context, p model.Pagination) ([]model.Lokasi, int64, error)
	FindByID(ctx context.Context, id uint) (*model.Lokasi, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Create(ctx context.Context, lokasi *model.Lokasi) error
	Save(ctx context.Context, lokasi *model.Lokasi) error
	Delete(ctx context.Context, id uint) (bool, error)
	FirstOrCreate(ctx context.Context, lokasi *model.Lokasi) error
}

type lokasiRepository struct {
	db *gorm.DB
}

func NewLokasiRepository(db *gorm.DB) LokasiRepository {
	return &lokasiRepository{db: db}
}

func (r *lokasiRepository) List(ctx context.Context, p model.Pagination) ([]model.Lokasi, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Lokasi{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []model.Lokasi
	err := utils.ApplyPagination(q, p.Limit, p.Page).Order("id ASC").Find(&rows).Error
	return rows, total, err
}

func (r *lokasiRepository) FindByID(ctx context.Context, id uint) (*model.Lokasi, error) {
	return findByID[model.Lokasi](ctx, r.db, id)
}

func (r *lokasiRepository) Exists(ctx context.Context, id uint) (bool, error) {
	return exists[model.Lokasi](ctx, r.db, id)
}

func (r *lokasiRepository) Create(ctx context.Context, lokasi *model.Lokasi) error {
	return r.db.WithContext(ctx).Create(lokasi).Error
}

func (r *lokasiRepository) Save(ctx context.Context, lokasi *model.Lokasi) error {
	return save(ctx, r.db, lokasi)
}

func (r *lokasiRepository) Delete(ctx context.Context, id uint) (bool, error) {
	return deleteByID[model.Lokasi](ctx, r.db, id)
}

// FirstOrCreate so khớp theo nama_lokasi
func (r *lokasiRepository) FirstOrCreate(ctx context.Context, lokasi *model.Lokasi) error {
	return r.db.WithContext(ctx).
		Where(model.Lokasi{NamaLokasi: lokasi.NamaLokasi}).
		FirstOrCreate(lokasi).Error
}
