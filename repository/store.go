package repository

import (
	"context"
	"errors"

	"ticketing_admin/apperror"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store gom các repository trên cùng một *gorm.DB (pool hoặc transaction đang mở).
type Store struct {
	db       *gorm.DB
	Lokasi   LokasiRepository
	Kategori KategoriRepository
	Event    EventRepository
	Tiket    TiketRepository
	Order    OrderRepository
	User     UserRepository
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:       db,
		Lokasi:   NewLokasiRepository(db),
		Kategori: NewKategoriRepository(db),
		Event:    NewEventRepository(db),
		Tiket:    NewTiketRepository(db),
		Order:    NewOrderRepository(db),
		User:     NewUserRepository(db),
	}
}

// Transaction chạy fn trong một transaction; fn trả lỗi thì rollback toàn bộ.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}

func translate(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperror.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperror.ErrDuplicate
	}
	return err
}

func findByID[T any](ctx context.Context, db *gorm.DB, id uint, preloads ...string) (*T, error) {
	var row T
	q := db.WithContext(ctx)
	for _, p := range preloads {
		q = q.Preload(p)
	}
	if err := q.First(&row, id).Error; err != nil {
		return nil, translate(err)
	}
	return &row, nil
}

func exists[T any](ctx context.Context, db *gorm.DB, id uint) (bool, error) {
	var count int64
	err := db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func save[T any](ctx context.Context, db *gorm.DB, row *T) error {
	return translate(db.WithContext(ctx).Omit(clause.Associations).Save(row).Error)
}

// deleteByID trả về true nếu có dòng bị xoá
func deleteByID[T any](ctx context.Context, db *gorm.DB, id uint) (bool, error) {
	res := db.WithContext(ctx).Delete(new(T), id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
