package service

import (
	"context"
	"fmt"
	"strings"

	"ticketing_admin/apperror"
	"ticketing_admin/constants"
	"ticketing_admin/model"
	"ticketing_admin/notifier"
	"ticketing_admin/repository"
	"ticketing_admin/validate"
)

type TiketService struct {
	store *repository.Store
	pub   notifier.Publisher
}

func NewTiketService(store *repository.Store, pub notifier.Publisher) *TiketService {
	return &TiketService{store: store, pub: publisherOrNop(pub)}
}

func (s *TiketService) List(ctx context.Context, p model.Pagination) ([]model.Tiket, int64, error) {
	return s.store.Tiket.List(ctx, p, nil)
}

func (s *TiketService) ListByEvent(ctx context.Context, eventID uint, p model.Pagination) ([]model.Tiket, int64, error) {
	ok, err := s.store.Event.Exists(ctx, eventID)
	if err != nil {
		return nil, 0, err
	}
	if !ok {
		return nil, 0, fmt.Errorf("event %d: %w", eventID, apperror.ErrNotFound)
	}
	return s.store.Tiket.List(ctx, p, &eventID)
}

func (s *TiketService) Get(ctx context.Context, id uint) (*model.Tiket, error) {
	return s.store.Tiket.FindByID(ctx, id)
}

func (s *TiketService) Create(ctx context.Context, input model.CreateTiketInput) (*model.Tiket, error) {
	input.Tipe = strings.TrimSpace(input.Tipe)
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	ve := &apperror.ValidationError{}
	if err := requireExists(ctx, ve, "event_id", input.EventID, s.store.Event.Exists); err != nil {
		return nil, err
	}
	if err := failIfAny(ve); err != nil {
		return nil, err
	}

	tiket := model.Tiket{
		EventID: input.EventID,
		Tipe:    input.Tipe,
		Harga:   input.Harga.Round(2),
		Stok:    *input.Stok,
	}
	if err := s.store.Tiket.Create(ctx, &tiket); err != nil {
		return nil, fmt.Errorf("create tiket: %w", err)
	}

	s.pub.Publish(ctx, constants.ENTITY_TIKET, constants.ACTION_CREATED, tiket.ID)
	return &tiket, nil
}

func (s *TiketService) Update(ctx context.Context, id uint, input model.UpdateTiketInput) (*model.Tiket, error) {
	tiket, err := s.store.Tiket.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("tiket %d: %w", id, err)
	}

	if input.Tipe != nil {
		tipe := strings.TrimSpace(*input.Tipe)
		input.Tipe = &tipe
	}
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	if input.EventID != nil {
		ve := &apperror.ValidationError{}
		if err := requireExists(ctx, ve, "event_id", *input.EventID, s.store.Event.Exists); err != nil {
			return nil, err
		}
		if err := failIfAny(ve); err != nil {
			return nil, err
		}
		tiket.EventID = *input.EventID
		tiket.Event = nil
	}
	if input.Tipe != nil {
		tiket.Tipe = *input.Tipe
	}
	if input.Harga != nil {
		tiket.Harga = input.Harga.Round(2)
	}
	if input.Stok != nil {
		tiket.Stok = *input.Stok
	}

	if err := s.store.Tiket.Save(ctx, tiket); err != nil {
		return nil, fmt.Errorf("update tiket %d: %w", id, err)
	}

	s.pub.Publish(ctx, constants.ENTITY_TIKET, constants.ACTION_UPDATED, tiket.ID)
	return tiket, nil
}

// Delete xoá luôn các detail order trỏ tới tiket
func (s *TiketService) Delete(ctx context.Context, id uint) error {
	deleted, err := s.store.Tiket.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete tiket %d: %w", id, err)
	}
	if deleted {
		s.pub.Publish(ctx, constants.ENTITY_TIKET, constants.ACTION_DELETED, id)
	}
	return nil
}
