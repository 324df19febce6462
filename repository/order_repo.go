package repository

import (
	"context"

	"ticketing_admin/model"
	"ticketing_admin/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderRepository interface {
	List(ctx context.Context, p model.Pagination) ([]model.Order, int64, error)
	FindByID(ctx context.Context, id uint) (*model.Order, error)
	FindDetail(ctx context.Context, id uint) (*model.Order, error)
	Create(ctx context.Context, order *model.Order) error
	Save(ctx context.Context, order *model.Order) error
	Delete(ctx context.Context, id uint) (bool, error)
	ReplaceDetails(ctx context.Context, orderID uint, details []model.DetailOrder) error
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) List(ctx context.Context, p model.Pagination) ([]model.Order, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Order{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []model.Order
	err := utils.ApplyPagination(q, p.Limit, p.Page).Preload("User").Order("id ASC").Find(&rows).Error
	return rows, total, err
}

func (r *orderRepository) FindByID(ctx context.Context, id uint) (*model.Order, error) {
	return findByID[model.Order](ctx, r.db, id, "Details")
}

func (r *orderRepository) FindDetail(ctx context.Context, id uint) (*model.Order, error) {
	return findByID[model.Order](ctx, r.db, id, "User", "Details", "Details.Tiket")
}

// Create lưu order kèm Details.
func (r *orderRepository) Create(ctx context.Context, order *model.Order) error {
	return translate(r.db.WithContext(ctx).Omit("User").Create(order).Error)
}

func (r *orderRepository) Save(ctx context.Context, order *model.Order) error {
	return save(ctx, r.db, order)
}

func (r *orderRepository) Delete(ctx context.Context, id uint) (bool, error) {
	return deleteByID[model.Order](ctx, r.db, id)
}

func (r *orderRepository) ReplaceDetails(ctx context.Context, orderID uint, details []model.DetailOrder) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("order_id = ?", orderID).Delete(&model.DetailOrder{}).Error; err != nil {
		return err
	}
	if len(details) == 0 {
		return nil
	}
	for i := range details {
		details[i].OrderID = orderID
	}
	return db.Omit(clause.Associations).Create(&details).Error
}
