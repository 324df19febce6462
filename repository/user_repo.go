package repository

import (
	"context"

	"ticketing_admin/model"

	"gorm.io/gorm"
)

type UserRepository interface {
	FindByID(ctx context.Context, id uint) (*model.User, error)
	Exists(ctx context.Context, id uint) (bool, error)
	FirstOrCreate(ctx context.Context, user *model.User) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	return findByID[model.User](ctx, r.db, id)
}

func (r *userRepository) Exists(ctx context.Context, id uint) (bool, error) {
	return exists[model.User](ctx, r.db, id)
}

// FirstOrCreate so khớp theo email, các field khác chỉ dùng khi tạo mới.
func (r *userRepository) FirstOrCreate(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).
		Where(model.User{Email: user.Email}).
		FirstOrCreate(user).Error
}
