package service

import (
	"context"
	"fmt"
	"strings"

	"ticketing_admin/constants"
	"ticketing_admin/model"
	"ticketing_admin/notifier"
	"ticketing_admin/repository"
	"ticketing_admin/validate"
)

type KategoriService struct {
	store *repository.Store
	pub   notifier.Publisher
}

func NewKategoriService(store *repository.Store, pub notifier.Publisher) *KategoriService {
	return &KategoriService{store: store, pub: publisherOrNop(pub)}
}

func (s *KategoriService) List(ctx context.Context, p model.Pagination) ([]model.Kategori, int64, error) {
	return s.store.Kategori.List(ctx, p)
}

func (s *KategoriService) Get(ctx context.Context, id uint) (*model.Kategori, error) {
	return s.store.Kategori.FindByID(ctx, id)
}

func (s *KategoriService) Create(ctx context.Context, input model.KategoriInput) (*model.Kategori, error) {
	input.NamaKategori = strings.TrimSpace(input.NamaKategori)
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	kategori := model.Kategori{NamaKategori: input.NamaKategori}
	if err := s.store.Kategori.Create(ctx, &kategori); err != nil {
		return nil, fmt.Errorf("create kategori: %w", err)
	}

	s.pub.Publish(ctx, constants.ENTITY_KATEGORI, constants.ACTION_CREATED, kategori.ID)
	return &kategori, nil
}

func (s *KategoriService) Update(ctx context.Context, id uint, input model.KategoriInput) (*model.Kategori, error) {
	kategori, err := s.store.Kategori.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("kategori %d: %w", id, err)
	}

	input.NamaKategori = strings.TrimSpace(input.NamaKategori)
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	kategori.NamaKategori = input.NamaKategori
	if err := s.store.Kategori.Save(ctx, kategori); err != nil {
		return nil, fmt.Errorf("update kategori %d: %w", id, err)
	}

	s.pub.Publish(ctx, constants.ENTITY_KATEGORI, constants.ACTION_UPDATED, kategori.ID)
	return kategori, nil
}

func (s *KategoriService) Delete(ctx context.Context, id uint) error {
	if err := inUse(ctx, s.store.Event.CountByKategori, id); err != nil {
		return fmt.Errorf("delete kategori %d: %w", id, err)
	}

	deleted, err := s.store.Kategori.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete kategori %d: %w", id, err)
	}
	if deleted {
		s.pub.Publish(ctx, constants.ENTITY_KATEGORI, constants.ACTION_DELETED, id)
	}
	return nil
}
