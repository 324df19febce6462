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
	"ticketing_admin/utils"
	"ticketing_admin/validate"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type OrderMailer interface {
	SendOrderConfirmation(to string, data utils.OrderConfirmationData)
}

type OrderService struct {
	store   *repository.Store
	pub     notifier.Publisher
	mailer  OrderMailer
	now     func() time.Time
	newKode func() string
}

// NewOrderService: mailer nil thì bỏ qua mail xác nhận
func NewOrderService(store *repository.Store, pub notifier.Publisher, mailer OrderMailer) *OrderService {
	return &OrderService{
		store:   store,
		pub:     publisherOrNop(pub),
		mailer:  mailer,
		now:     time.Now,
		newKode: NewOrderKode,
	}
}

// mã order chỉ có 32 bit, trùng thì thử thêm một lần
const createKodeAttempts = 2

// NewOrderKode returns ORD- followed by 8 upper-case hex characters.
func NewOrderKode() string {
	return "ORD-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}

func (s *OrderService) List(ctx context.Context, p model.Pagination) ([]model.Order, int64, error) {
	return s.store.Order.List(ctx, p)
}

func (s *OrderService) Get(ctx context.Context, id uint) (*model.Order, error) {
	return s.store.Order.FindDetail(ctx, id)
}

// Create ghi header, các dòng detail và trừ stok trong một transaction.
// Trùng mã order thì chạy lại transaction một lần với mã mới.
func (s *OrderService) Create(ctx context.Context, input model.OrderInput) (*model.Order, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	var order model.Order
	var tikets map[uint]*model.Tiket
	var err error
	for attempt := 0; attempt < createKodeAttempts; attempt++ {
		order, tikets = model.Order{}, nil
		err = s.createOnce(ctx, input, &order, &tikets)
		if !errors.Is(err, apperror.ErrDuplicate) {
			break
		}
		log.Warn().Str("kode", order.Kode).Msg("order kode collision")
	}
	if err != nil {
		return nil, err
	}

	s.pub.Publish(ctx, constants.ENTITY_ORDER, constants.ACTION_CREATED, order.ID)
	s.sendConfirmation(ctx, &order, tikets)
	return &order, nil
}

func (s *OrderService) createOnce(ctx context.Context, input model.OrderInput, order *model.Order, tikets *map[uint]*model.Tiket) error {
	return s.store.Transaction(ctx, func(tx *repository.Store) error {
		ve := &apperror.ValidationError{}
		if err := requireExists(ctx, ve, "user_id", input.UserID, tx.User.Exists); err != nil {
			return err
		}

		details, total, loaded, err := applyLines(ctx, tx, input.Details, ve)
		if err != nil {
			return err
		}

		*order = model.Order{
			Kode:         s.newKode(),
			UserID:       input.UserID,
			TotalHarga:   total,
			TanggalOrder: s.now(),
			Details:      details,
		}
		*tikets = loaded
		if err := tx.Order.Create(ctx, order); err != nil {
			return fmt.Errorf("create order: %w", err)
		}
		return nil
	})
}

// Update hoàn stok của các dòng cũ rồi áp dụng dòng mới giống Create, tất cả trong một transaction.
func (s *OrderService) Update(ctx context.Context, id uint, input model.OrderInput) (*model.Order, error) {
	var order *model.Order
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		existing, err := tx.Order.FindByID(ctx, id)
		if err != nil {
			return fmt.Errorf("order %d: %w", id, err)
		}
		if err := validate.Struct(input); err != nil {
			return err
		}

		for _, d := range existing.Details {
			if err := tx.Tiket.AdjustStock(ctx, d.TiketID, d.Jumlah); err != nil {
				return fmt.Errorf("restore stok tiket %d: %w", d.TiketID, err)
			}
		}

		ve := &apperror.ValidationError{}
		if err := requireExists(ctx, ve, "user_id", input.UserID, tx.User.Exists); err != nil {
			return err
		}
		details, total, _, err := applyLines(ctx, tx, input.Details, ve)
		if err != nil {
			return err
		}

		if err := tx.Order.ReplaceDetails(ctx, existing.ID, details); err != nil {
			return fmt.Errorf("replace order lines: %w", err)
		}
		existing.UserID = input.UserID
		existing.TotalHarga = total
		existing.Details = details
		if err := tx.Order.Save(ctx, existing); err != nil {
			return fmt.Errorf("update order %d: %w", id, err)
		}
		order = existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.pub.Publish(ctx, constants.ENTITY_ORDER, constants.ACTION_UPDATED, order.ID)
	return order, nil
}

// Delete xoá order và detail, không hoàn stok.
func (s *OrderService) Delete(ctx context.Context, id uint) error {
	deleted, err := s.store.Order.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete order %d: %w", id, err)
	}
	if deleted {
		s.pub.Publish(ctx, constants.ENTITY_ORDER, constants.ACTION_DELETED, id)
	}
	return nil
}

func (s *OrderService) QRCode(ctx context.Context, id uint) ([]byte, error) {
	order, err := s.store.Order.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("order %d: %w", id, err)
	}
	return utils.OrderQRCode(order.Kode)
}

// applyLines kiểm tra từng dòng với tiket, trừ stok, tính tiền.
// Lỗi validate gom vào ve rồi trả về một lần.
func applyLines(ctx context.Context, tx *repository.Store, lines []model.DetailOrderInput, ve *apperror.ValidationError) ([]model.DetailOrder, int64, map[uint]*model.Tiket, error) {
	tikets := make(map[uint]*model.Tiket)
	requested := make(map[uint]int)
	lastLine := make(map[uint]int)

	for i, line := range lines {
		if _, ok := tikets[line.TiketID]; !ok {
			tiket, err := tx.Tiket.FindByID(ctx, line.TiketID)
			if errors.Is(err, apperror.ErrNotFound) {
				ve.Add(fmt.Sprintf("details[%d].tiket_id", i), msgNotFound)
				continue
			}
			if err != nil {
				return nil, 0, nil, fmt.Errorf("tiket %d: %w", line.TiketID, err)
			}
			tikets[line.TiketID] = tiket
		}
		requested[line.TiketID] += line.Jumlah
		lastLine[line.TiketID] = i
	}

	for tiketID, jumlah := range requested {
		if stok := tikets[tiketID].Stok; jumlah > stok {
			ve.Add(fmt.Sprintf("details[%d].jumlah", lastLine[tiketID]), fmt.Sprintf("stok tidak mencukupi (tersisa %d)", stok))
		}
	}
	if err := failIfAny(ve); err != nil {
		return nil, 0, nil, err
	}

	details := make([]model.DetailOrder, 0, len(lines))
	subtotals := make([]int64, 0, len(lines))
	for _, line := range lines {
		subtotal := helper.Subtotal(tikets[line.TiketID].Harga, line.Jumlah)
		details = append(details, model.DetailOrder{
			TiketID:       line.TiketID,
			Jumlah:        line.Jumlah,
			SubtotalHarga: subtotal,
		})
		subtotals = append(subtotals, subtotal)
	}

	for tiketID, jumlah := range requested {
		if err := tx.Tiket.AdjustStock(ctx, tiketID, -jumlah); err != nil {
			return nil, 0, nil, fmt.Errorf("take stok tiket %d: %w", tiketID, err)
		}
	}

	return details, helper.Total(subtotals...), tikets, nil
}

func (s *OrderService) sendConfirmation(ctx context.Context, order *model.Order, tikets map[uint]*model.Tiket) {
	if s.mailer == nil {
		return
	}
	user, err := s.store.User.FindByID(ctx, order.UserID)
	if err != nil {
		log.Warn().Err(err).Str("kode", order.Kode).Msg("load buyer for order mail")
		return
	}
	if user.Email == "" {
		return
	}

	lines := make([]utils.OrderLineMail, 0, len(order.Details))
	for _, d := range order.Details {
		lines = append(lines, utils.OrderLineMail{
			Tipe:          tikets[d.TiketID].Tipe,
			Jumlah:        d.Jumlah,
			SubtotalHarga: d.SubtotalHarga,
		})
	}
	s.mailer.SendOrderConfirmation(user.Email, utils.OrderConfirmationData{
		BuyerName:    user.Name,
		OrderCode:    order.Kode,
		TanggalOrder: order.TanggalOrder.Format("02-01-2006 15:04"),
		Lines:        lines,
		TotalHarga:   order.TotalHarga,
	})
}
