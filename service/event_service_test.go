package service

import (
	"context"
	"testing"
	"time"

	"ticketing_admin/apperror"
	"ticketing_admin/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eventInput(lokasiID, kategoriID uint) model.CreateEventInput {
	return model.CreateEventInput{
		Judul:        "Konser Jazz",
		Deskripsi:    ptr("Malam jazz di stadion"),
		TanggalWaktu: ptr(time.Date(2026, 11, 20, 19, 0, 0, 0, time.UTC)),
		LokasiID:     lokasiID,
		KategoriID:   kategoriID,
	}
}

func TestEventCreate_UsesActingUserAndUniqueSlug(t *testing.T) {
	f := newFixture(t)
	svc := NewEventService(f.store, f.pub, nil)
	u := f.user("admin@tiket.local")
	l := f.lokasi("Stadion Utama")
	k := f.kategori("Musik")
	ctx := context.Background()

	first, err := svc.Create(ctx, eventInput(l.ID, k.ID), u.ID)
	require.NoError(t, err)
	assert.Equal(t, "konser-jazz", first.Slug)
	assert.Equal(t, u.ID, first.UserID)
	assert.Equal(t, "Malam jazz di stadion", first.Deskripsi)
	assert.Nil(t, first.Gambar)

	second, err := svc.Create(ctx, eventInput(l.ID, k.ID), u.ID)
	require.NoError(t, err)
	assert.Equal(t, "konser-jazz-1", second.Slug)

	got, err := svc.Get(ctx, first.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Lokasi)
	assert.Equal(t, "Stadion Utama", got.Lokasi.NamaLokasi)
	require.NotNil(t, got.Kategori)
	require.NotNil(t, got.User)
	assert.True(t, got.TanggalWaktu.Equal(time.Date(2026, 11, 20, 19, 0, 0, 0, time.UTC)))
}

func TestEventCreate_UserFromPayload(t *testing.T) {
	f := newFixture(t)
	svc := NewEventService(f.store, f.pub, nil)
	u := f.user("admin@tiket.local")
	l := f.lokasi("Stadion Utama")
	k := f.kategori("Musik")

	input := eventInput(l.ID, k.ID)
	input.UserID = u.ID
	event, err := svc.Create(context.Background(), input, 0)

	require.NoError(t, err)
	assert.Equal(t, u.ID, event.UserID)
}

func TestEventCreate_MissingReferences(t *testing.T) {
	f := newFixture(t)
	svc := NewEventService(f.store, f.pub, nil)

	_, err := svc.Create(context.Background(), eventInput(7, 8), 0)

	ve, ok := apperror.IsValidation(err)
	require.True(t, ok)
	names := []string{}
	for _, fe := range ve.Fields {
		names = append(names, fe.Field)
	}
	assert.Equal(t, []string{"user_id", "lokasi_id", "kategori_id"}, names)
	assert.Zero(t, f.count(&model.Event{}))
}

func TestEventUpdate_RegeneratesSlugAndDestroysOldImage(t *testing.T) {
	f := newFixture(t)
	images := &fakeImages{}
	svc := NewEventService(f.store, f.pub, images)
	u := f.user("admin@tiket.local")
	l := f.lokasi("Stadion Utama")
	k := f.kategori("Musik")
	ctx := context.Background()

	input := eventInput(l.ID, k.ID)
	input.Gambar = ptr("https://res.cloudinary.com/demo/image/upload/v1/events/lama.jpg")
	event, err := svc.Create(ctx, input, u.ID)
	require.NoError(t, err)

	updated, err := svc.Update(ctx, event.ID, model.UpdateEventInput{
		Judul:  ptr("Festival Rock"),
		Gambar: ptr("https://res.cloudinary.com/demo/image/upload/v2/events/baru.jpg"),
	})
	require.NoError(t, err)

	assert.Equal(t, "festival-rock", updated.Slug)
	assert.Equal(t, "Malam jazz di stadion", updated.Deskripsi)
	assert.Equal(t, l.ID, updated.LokasiID)
	assert.Equal(t, []string{"https://res.cloudinary.com/demo/image/upload/v1/events/lama.jpg"}, images.destroyed)
}

func TestEventUpdate_SameJudulKeepsSlug(t *testing.T) {
	f := newFixture(t)
	svc := NewEventService(f.store, f.pub, nil)
	u := f.user("admin@tiket.local")
	l := f.lokasi("Stadion Utama")
	k := f.kategori("Musik")
	ctx := context.Background()

	event, err := svc.Create(ctx, eventInput(l.ID, k.ID), u.ID)
	require.NoError(t, err)

	updated, err := svc.Update(ctx, event.ID, model.UpdateEventInput{Judul: ptr("Konser Jazz"), Deskripsi: ptr("baru")})
	require.NoError(t, err)
	assert.Equal(t, "konser-jazz", updated.Slug)
	assert.Equal(t, "baru", updated.Deskripsi)
}

func TestEventUpdate_NotFoundAndBadReference(t *testing.T) {
	f := newFixture(t)
	svc := NewEventService(f.store, f.pub, nil)
	_, event := f.catalog()
	ctx := context.Background()

	_, err := svc.Update(ctx, 999, model.UpdateEventInput{Judul: ptr("x")})
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	_, err = svc.Update(ctx, event.ID, model.UpdateEventInput{LokasiID: ptr(uint(999))})
	ve, ok := apperror.IsValidation(err)
	require.True(t, ok)
	assert.Equal(t, "lokasi_id", ve.Fields[0].Field)
}

func TestEventDelete_CascadesTiketsAndLines(t *testing.T) {
	f := newFixture(t)
	images := &fakeImages{}
	svc := NewEventService(f.store, f.pub, images)
	u, event := f.catalog()
	require.NoError(t, f.db.Model(&event).Update("gambar", "https://res.cloudinary.com/demo/image/upload/events/a.jpg").Error)
	tk := f.tiket(event.ID, "VIP", 100000, 10)
	order := model.Order{Kode: "ORD-AAAAAAAA", UserID: u.ID, TotalHarga: 100000, TanggalOrder: time.Now(),
		Details: []model.DetailOrder{{TiketID: tk.ID, Jumlah: 1, SubtotalHarga: 100000}}}
	require.NoError(t, f.db.Create(&order).Error)

	require.NoError(t, svc.Delete(context.Background(), event.ID))

	assert.Zero(t, f.count(&model.Event{}))
	assert.Zero(t, f.count(&model.Tiket{}))
	assert.Zero(t, f.count(&model.DetailOrder{}))
	assert.Equal(t, int64(1), f.count(&model.Order{}))
	assert.Equal(t, []string{"https://res.cloudinary.com/demo/image/upload/events/a.jpg"}, images.destroyed)
}

func TestEventDelete_AbsentIsNoop(t *testing.T) {
	f := newFixture(t)
	svc := NewEventService(f.store, f.pub, nil)

	assert.NoError(t, svc.Delete(context.Background(), 42))
	assert.Empty(t, f.pub.all())
}

func TestEventList_Filters(t *testing.T) {
	f := newFixture(t)
	svc := NewEventService(f.store, f.pub, nil)
	u := f.user("admin@tiket.local")
	l := f.lokasi("Stadion Utama")
	musik := f.kategori("Musik")
	seni := f.kategori("Seni")
	f.event("Konser Jazz", l.ID, musik.ID, u.ID)
	f.event("Pameran Lukisan", l.ID, seni.ID, u.ID)
	ctx := context.Background()

	rows, total, err := svc.List(ctx, model.EventFilter{KategoriID: &seni.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "Pameran Lukisan", rows[0].Judul)
	require.NotNil(t, rows[0].Kategori)
	assert.Equal(t, "Seni", rows[0].Kategori.NamaKategori)

	rows, _, err = svc.List(ctx, model.EventFilter{Search: ptr("jazz")})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Konser Jazz", rows[0].Judul)
}

func TestEventUploadSignature(t *testing.T) {
	f := newFixture(t)
	input := model.SignatureInput{Folder: "events"}

	_, err := NewEventService(f.store, f.pub, nil).UploadSignature(input)
	assert.ErrorIs(t, err, apperror.ErrUnavailable)

	svc := NewEventService(f.store, f.pub, &fakeImages{})
	svc.now = func() time.Time { return time.Unix(1700000000, 0) }
	sig, err := svc.UploadSignature(input)
	require.NoError(t, err)
	assert.Equal(t, int64(1700000000), sig.Timestamp)
	assert.Equal(t, "events", sig.Folder)
}
