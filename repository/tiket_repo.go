package repository

import (
	"context"

	"ticketing_admin/model"
	"ticketing_admin/utils"

	"gorm.io/gorm"
)

type TiketRepository interface {
	List(ctx context.Context, p model.Pagination, eventID *uint) ([]model.Tiket, int64, error)
	FindByID(ctx context.Context, id uint) (*model.Tiket, error)
	Create(ctx context.Context, tiket *model.Tiket) error
	Save(ctx context.Context, tiket *model.Tiket) error
	Delete(ctx context.Context, id uint) (bool, error)
	AdjustStock(ctx context.Context, id uint, delta int) error
}

type tiketRepository struct {
	db *gorm.DB
}

func NewTiketRepository(db *gorm.DB) TiketRepository {
	return &tiketRepository{db: db}
}

func (r *tiketRepository) List(ctx context.Context, p model.Pagination, eventID *uint) ([]model.Tiket, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Tiket{})
	if eventID != nil {
		q = q.Where("event_id = ?", *eventID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []model.Tiket
	err := utils.ApplyPagination(q, p.Limit, p.Page).Preload("Event").Order("id ASC").Find(&rows).Error
	return rows, total, err
}

func (r *tiketRepository) FindByID(ctx context.Context, id uint) (*model.Tiket, error) {
	return findByID[model.Tiket](ctx, r.db, id, "Event")
}

func (r *tiketRepository) Create(ctx context.Context, tiket *model.Tiket) error {
	return r.db.WithContext(ctx).Omit("Event").Create(tiket).Error
}

func (r *tiketRepository) Save(ctx context.Context, tiket *model.Tiket) error {
	return save(ctx, r.db, tiket)
}

func (r *tiketRepository) Delete(ctx context.Context, id uint) (bool, error) {
	return deleteByID[model.Tiket](ctx, r.db, id)
}

// AdjustStock cộng delta vào stok (âm = trừ)
func (r *tiketRepository) AdjustStock(ctx context.Context, id uint, delta int) error {
	return r.db.WithContext(ctx).
		Model(&model.Tiket{}).
		Where("id = ?", id).
		Update("stok", gorm.Expr("stok + ?", delta)).Error
}
