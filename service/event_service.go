package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"ticketing_admin/apperror"
	"ticketing_admin/constants"
	"ticketing_admin/helper"
	"ticketing_admin/model"
	"ticketing_admin/notifier"
	"ticketing_admin/repository"
	"ticketing_admin/validate"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

type EventService struct {
	store  *repository.Store
	pub    notifier.Publisher
	images helper.ImageStore
	now    func() time.Time
}

// NewEventService: images nil thì tắt xoá ảnh và ký upload.
func NewEventService(store *repository.Store, pub notifier.Publisher, images helper.ImageStore) *EventService {
	return &EventService{store: store, pub: publisherOrNop(pub), images: images, now: time.Now}
}

func (s *EventService) List(ctx context.Context, f model.EventFilter) ([]model.Event, int64, error) {
	return s.store.Event.List(ctx, f)
}

func (s *EventService) Get(ctx context.Context, id uint) (*model.Event, error) {
	return s.store.Event.FindDetail(ctx, id)
}

// Create gán chủ event là actingUserID nếu request có token hợp lệ, không thì dùng input.UserID.
func (s *EventService) Create(ctx context.Context, input model.CreateEventInput, actingUserID uint) (*model.Event, error) {
	input.Judul = strings.TrimSpace(input.Judul)
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	userID := input.UserID
	if actingUserID > 0 {
		userID = actingUserID
	}

	ve := &apperror.ValidationError{}
	if userID == 0 {
		ve.Add("user_id", "wajib diisi")
	} else if err := requireExists(ctx, ve, "user_id", userID, s.store.User.Exists); err != nil {
		return nil, err
	}
	if err := requireExists(ctx, ve, "lokasi_id", input.LokasiID, s.store.Lokasi.Exists); err != nil {
		return nil, err
	}
	if err := requireExists(ctx, ve, "kategori_id", input.KategoriID, s.store.Kategori.Exists); err != nil {
		return nil, err
	}
	if err := failIfAny(ve); err != nil {
		return nil, err
	}

	var event model.Event
	if err := copier.Copy(&event, &input); err != nil {
		return nil, fmt.Errorf("copy event input: %w", err)
	}
	event.UserID = userID
	event.Gambar = blankToNil(event.Gambar)

	slug, err := s.store.Event.UniqueSlug(ctx, event.Judul, 0)
	if err != nil {
		return nil, fmt.Errorf("event slug: %w", err)
	}
	event.Slug = slug

	if err := s.store.Event.Create(ctx, &event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.pub.Publish(ctx, constants.ENTITY_EVENT, constants.ACTION_CREATED, event.ID)
	return &event, nil
}

// Update applies only the fields present in input.
func (s *EventService) Update(ctx context.Context, id uint, input model.UpdateEventInput) (*model.Event, error) {
	event, err := s.store.Event.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("event %d: %w", id, err)
	}

	if input.Judul != nil {
		judul := strings.TrimSpace(*input.Judul)
		input.Judul = &judul
	}
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	ve := &apperror.ValidationError{}
	if input.LokasiID != nil {
		if err := requireExists(ctx, ve, "lokasi_id", *input.LokasiID, s.store.Lokasi.Exists); err != nil {
			return nil, err
		}
	}
	if input.KategoriID != nil {
		if err := requireExists(ctx, ve, "kategori_id", *input.KategoriID, s.store.Kategori.Exists); err != nil {
			return nil, err
		}
	}
	if input.UserID != nil {
		if err := requireExists(ctx, ve, "user_id", *input.UserID, s.store.User.Exists); err != nil {
			return nil, err
		}
	}
	if err := failIfAny(ve); err != nil {
		return nil, err
	}

	oldJudul := event.Judul
	oldGambar := event.Gambar
	if err := copier.CopyWithOption(event, &input, copier.Option{IgnoreEmpty: true}); err != nil {
		return nil, fmt.Errorf("copy event input: %w", err)
	}
	event.Gambar = blankToNil(event.Gambar)

	if event.Judul != oldJudul {
		slug, err := s.store.Event.UniqueSlug(ctx, event.Judul, event.ID)
		if err != nil {
			return nil, fmt.Errorf("event slug: %w", err)
		}
		event.Slug = slug
	}

	if err := s.store.Event.Save(ctx, event); err != nil {
		return nil, fmt.Errorf("update event %d: %w", id, err)
	}

	if oldGambar != nil && (event.Gambar == nil || *event.Gambar != *oldGambar) {
		s.destroyImage(ctx, *oldGambar)
	}

	s.pub.Publish(ctx, constants.ENTITY_EVENT, constants.ACTION_UPDATED, event.ID)
	return event, nil
}

// Delete xoá event cùng tiket và detail order của nó
func (s *EventService) Delete(ctx context.Context, id uint) error {
	event, err := s.store.Event.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("event %d: %w", id, err)
	}

	if _, err := s.store.Event.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete event %d: %w", id, err)
	}
	if event.Gambar != nil {
		s.destroyImage(ctx, *event.Gambar)
	}

	s.pub.Publish(ctx, constants.ENTITY_EVENT, constants.ACTION_DELETED, id)
	return nil
}

func (s *EventService) UploadSignature(input model.SignatureInput) (*model.UploadSignature, error) {
	if s.images == nil {
		return nil, fmt.Errorf("cloudinary: %w", apperror.ErrUnavailable)
	}
	if err := validate.Struct(input); err != nil {
		return nil, err
	}
	sig := s.images.Sign(input.Folder, input.PublicID, s.now())
	return &sig, nil
}

// destroyImage: lỗi chỉ log, dữ liệu đã commit rồi
func (s *EventService) destroyImage(ctx context.Context, url string) {
	if s.images == nil {
		return
	}
	if err := s.images.Destroy(ctx, url); err != nil {
		log.Warn().Err(err).Str("gambar", url).Msg("destroy event image")
	}
}

func blankToNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}
