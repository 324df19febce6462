package service

import (
	"context"
	"testing"
	"time"

	"ticketing_admin/apperror"
	"ticketing_admin/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTiketCreate(t *testing.T) {
	f := newFixture(t)
	svc := NewTiketService(f.store, f.pub)
	_, event := f.catalog()

	tiket, err := svc.Create(context.Background(), model.CreateTiketInput{
		EventID: event.ID,
		Tipe:    "VIP",
		Harga:   ptr(decimal.RequireFromString("150000.50")),
		Stok:    ptr(20),
	})

	require.NoError(t, err)
	assert.Equal(t, "150000.5", tiket.Harga.String())
	assert.Equal(t, 20, tiket.Stok)

	got, err := svc.Get(context.Background(), tiket.ID)
	require.NoError(t, err)
	assert.True(t, got.Harga.Equal(decimal.RequireFromString("150000.50")))
	require.NotNil(t, got.Event)
	assert.Equal(t, event.ID, got.Event.ID)
}

func TestTiketCreate_Validation(t *testing.T) {
	f := newFixture(t)
	svc := NewTiketService(f.store, f.pub)
	ctx := context.Background()

	_, err := svc.Create(ctx, model.CreateTiketInput{
		EventID: 99,
		Tipe:    "Reguler",
		Harga:   ptr(decimal.NewFromInt(50000)),
		Stok:    ptr(10),
	})
	ve, ok := apperror.IsValidation(err)
	require.True(t, ok)
	assert.Equal(t, "event_id", ve.Fields[0].Field)

	_, err = svc.Create(ctx, model.CreateTiketInput{
		EventID: 1,
		Tipe:    "Reguler",
		Harga:   ptr(decimal.NewFromInt(50000)),
		Stok:    ptr(-1),
	})
	ve, ok = apperror.IsValidation(err)
	require.True(t, ok)
	assert.Equal(t, "stok", ve.Fields[0].Field)

	assert.Zero(t, f.count(&model.Tiket{}))
}

func TestTiketUpdate_Partial(t *testing.T) {
	f := newFixture(t)
	svc := NewTiketService(f.store, f.pub)
	_, event := f.catalog()
	tk := f.tiket(event.ID, "Reguler", 50000, 10)

	updated, err := svc.Update(context.Background(), tk.ID, model.UpdateTiketInput{Stok: ptr(0)})

	require.NoError(t, err)
	assert.Equal(t, 0, updated.Stok)
	assert.Equal(t, "Reguler", updated.Tipe)
	assert.Equal(t, 0, f.stok(tk.ID))
}

func TestTiketUpdate_NotFound(t *testing.T) {
	f := newFixture(t)
	svc := NewTiketService(f.store, f.pub)

	_, err := svc.Update(context.Background(), 3, model.UpdateTiketInput{Tipe: ptr("VIP")})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestTiketListByEvent(t *testing.T) {
	f := newFixture(t)
	svc := NewTiketService(f.store, f.pub)
	u, event := f.catalog()
	other := f.event("lain", event.LokasiID, event.KategoriID, u.ID)
	f.tiket(event.ID, "VIP", 100000, 5)
	f.tiket(event.ID, "Reguler", 50000, 50)
	f.tiket(other.ID, "Reguler", 25000, 50)
	ctx := context.Background()

	rows, total, err := svc.ListByEvent(ctx, event.ID, model.Pagination{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Equal(t, "VIP", rows[0].Tipe)

	_, total, err = svc.List(ctx, model.Pagination{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	_, _, err = svc.ListByEvent(ctx, 404, model.Pagination{})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestTiketDelete_CascadesLines(t *testing.T) {
	f := newFixture(t)
	svc := NewTiketService(f.store, f.pub)
	u, event := f.catalog()
	tk := f.tiket(event.ID, "VIP", 100000, 10)
	order := model.Order{Kode: "ORD-BBBBBBBB", UserID: u.ID, TotalHarga: 200000, TanggalOrder: time.Now(),
		Details: []model.DetailOrder{{TiketID: tk.ID, Jumlah: 2, SubtotalHarga: 200000}}}
	require.NoError(t, f.db.Create(&order).Error)

	require.NoError(t, svc.Delete(context.Background(), tk.ID))
	assert.Zero(t, f.count(&model.Tiket{}))
	assert.Zero(t, f.count(&model.DetailOrder{}))

	assert.NoError(t, svc.Delete(context.Background(), tk.ID))
}
