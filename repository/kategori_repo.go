package repository

import (
	"context"

	"ticketing_admin/model"
	"ticketing_admin/utils"

	"gorm.io/gorm"
)

type KategoriRepository interface {
	List(ctx context.Context, p model.Pagination) ([]model.Kategori, int64, error)
	FindByID(ctx context.Context, id uint) (*model.Kategori, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Create(ctx context.Context, kategori *model.Kategori) error
	Save(ctx context.Context, kategori *model.Kategori) error
	Delete(ctx context.Context, id uint) (bool, error)
}

type kategoriRepository struct {
	db *gorm.DB
}

func NewKategoriRepository(db *gorm.DB) KategoriRepository {
	return &kategoriRepository{db: db}
}

func (r *kategoriRepository) List(ctx context.Context, p model.Pagination) ([]model.Kategori, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Kategori{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []model.Kategori
	err := utils.ApplyPagination(q, p.Limit, p.Page).Order("id ASC").Find(&rows).Error
	return rows, total, err
}

func (r *kategoriRepository) FindByID(ctx context.Context, id uint) (*model.Kategori, error) {
	return findByID[model.Kategori](ctx, r.db, id)
}

func (r *kategoriRepository) Exists(ctx context.Context, id uint) (bool, error) {
	return exists[model.Kategori](ctx, r.db, id)
}

func (r *kategoriRepository) Create(ctx context.Context, kategori *model.Kategori) error {
	return r.db.WithContext(ctx).Create(kategori).Error
}

func (r *kategoriRepository) Save(ctx context.Context, kategori *model.Kategori) error {
	return save(ctx, r.db, kategori)
}

func (r *kategoriRepository) Delete(ctx context.Context, id uint) (bool, error) {
	return deleteByID[model.Kategori](ctx, r.db, id)
}
