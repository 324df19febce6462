package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"ticketing_admin/database/dbtest"
	"ticketing_admin/model"
	"ticketing_admin/repository"
	"ticketing_admin/utils"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func ptr[T any](v T) *T {
	return &v
}

type recorder struct {
	mu     sync.Mutex
	events []model.Perubahan
}

func (r *recorder) Publish(_ context.Context, entity, action string, id uint) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, model.Perubahan{Entity: entity, Action: action, ID: id})
}

func (r *recorder) all() []model.Perubahan {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]model.Perubahan(nil), r.events...)
}

type fakeImages struct {
	destroyed []string
}

func (f *fakeImages) Destroy(_ context.Context, url string) error {
	f.destroyed = append(f.destroyed, url)
	return nil
}

func (f *fakeImages) Sign(folder, publicID string, now time.Time) model.UploadSignature {
	return model.UploadSignature{Signature: "sig", Timestamp: now.Unix(), Folder: folder, PublicID: publicID}
}

type fakeMailer struct {
	to   []string
	data []utils.OrderConfirmationData
}

func (f *fakeMailer) SendOrderConfirmation(to string, data utils.OrderConfirmationData) {
	f.to = append(f.to, to)
	f.data = append(f.data, data)
}

type fixture struct {
	t     *testing.T
	db    *gorm.DB
	store *repository.Store
	pub   *recorder
}

func newFixture(t *testing.T) *fixture {
	db := dbtest.New(t)
	return &fixture{t: t, db: db, store: repository.NewStore(db), pub: &recorder{}}
}

func (f *fixture) user(email string) model.User {
	u := model.User{Name: "Budi", Email: email, Password: "x", Role: "USER"}
	require.NoError(f.t, f.db.Create(&u).Error)
	return u
}

func (f *fixture) lokasi(nama string) model.Lokasi {
	l := model.Lokasi{NamaLokasi: nama}
	require.NoError(f.t, f.db.Create(&l).Error)
	return l
}

func (f *fixture) kategori(nama string) model.Kategori {
	k := model.Kategori{NamaKategori: nama}
	require.NoError(f.t, f.db.Create(&k).Error)
	return k
}

func (f *fixture) event(judul string, lokasiID, kategoriID, userID uint) model.Event {
	e := model.Event{
		Judul:        judul,
		Slug:         judul,
		TanggalWaktu: time.Date(2026, 12, 1, 19, 30, 0, 0, time.UTC),
		LokasiID:     lokasiID,
		KategoriID:   kategoriID,
		UserID:       userID,
	}
	require.NoError(f.t, f.db.Create(&e).Error)
	return e
}

func (f *fixture) tiket(eventID uint, tipe string, harga int64, stok int) model.Tiket {
	tk := model.Tiket{EventID: eventID, Tipe: tipe, Harga: decimal.NewFromInt(harga), Stok: stok}
	require.NoError(f.t, f.db.Create(&tk).Error)
	return tk
}

// catalog seeds one user, lokasi, kategori and event.
func (f *fixture) catalog() (model.User, model.Event) {
	u := f.user("budi@tiket.local")
	l := f.lokasi("Stadion Utama")
	k := f.kategori("Musik")
	return u, f.event("konser", l.ID, k.ID, u.ID)
}

func (f *fixture) count(table any) int64 {
	var n int64
	require.NoError(f.t, f.db.Model(table).Count(&n).Error)
	return n
}

func (f *fixture) stok(id uint) int {
	var tk model.Tiket
	require.NoError(f.t, f.db.First(&tk, id).Error)
	return tk.Stok
}
