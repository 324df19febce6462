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

type LokasiService struct {
	store *repository.Store
	pub   notifier.Publisher
}

func NewLokasiService(store *repository.Store, pub notifier.Publisher) *LokasiService {
	return &LokasiService{store: store, pub: publisherOrNop(pub)}
}

func (s *LokasiService) List(ctx context.Context, p model.Pagination) ([]model.Lokasi, int64, error) {
	return s.store.Lokasi.List(ctx, p)
}

func (s *LokasiService) Get(ctx context.Context, id uint) (*model.Lokasi, error) {
	return s.store.Lokasi.FindByID(ctx, id)
}

func (s *LokasiService) Create(ctx context.Context, input model.LokasiInput) (*model.Lokasi, error) {
	input.NamaLokasi = strings.TrimSpace(input.NamaLokasi)
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	lokasi := model.Lokasi{NamaLokasi: input.NamaLokasi}
	if err := s.store.Lokasi.Create(ctx, &lokasi); err != nil {
		return nil, fmt.Errorf("create lokasi: %w", err)
	}

	s.pub.Publish(ctx, constants.ENTITY_LOKASI, constants.ACTION_CREATED, lokasi.ID)
	return &lokasi, nil
}

func (s *LokasiService) Update(ctx context.Context, id uint, input model.LokasiInput) (*model.Lokasi, error) {
	lokasi, err := s.store.Lokasi.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("lokasi %d: %w", id, err)
	}

	input.NamaLokasi = strings.TrimSpace(input.NamaLokasi)
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	lokasi.NamaLokasi = input.NamaLokasi
	if err := s.store.Lokasi.Save(ctx, lokasi); err != nil {
		return nil, fmt.Errorf("update lokasi %d: %w", id, err)
	}

	s.pub.Publish(ctx, constants.ENTITY_LOKASI, constants.ACTION_UPDATED, lokasi.ID)
	return lokasi, nil
}

// Delete: id không tồn tại thì coi như đã xoá
func (s *LokasiService) Delete(ctx context.Context, id uint) error {
	if err := inUse(ctx, s.store.Event.CountByLokasi, id); err != nil {
		return fmt.Errorf("delete lokasi %d: %w", id, err)
	}

	deleted, err := s.store.Lokasi.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete lokasi %d: %w", id, err)
	}
	if deleted {
		s.pub.Publish(ctx, constants.ENTITY_LOKASI, constants.ACTION_DELETED, id)
	}
	return nil
}
