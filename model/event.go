package model

import "time"

type Event struct {
	DTO
	Judul        string    `gorm:"size:255;not null" json:"judul"`
	Slug         string    `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	Deskripsi    string    `gorm:"type:text" json:"deskripsi"`
	TanggalWaktu time.Time `gorm:"not null" json:"tanggal_waktu"`
	LokasiID     uint      `gorm:"not null;index" json:"lokasi_id"`
	Lokasi       *Lokasi   `gorm:"constraint:OnDelete:RESTRICT" json:"lokasi,omitempty"`
	KategoriID   uint      `gorm:"not null;index" json:"kategori_id"`
	Kategori     *Kategori `gorm:"constraint:OnDelete:RESTRICT" json:"kategori,omitempty"`
	Gambar       *string   `gorm:"size:255" json:"gambar"`
	UserID       uint      `gorm:"not null;index" json:"user_id"`
	User         *User     `gorm:"constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Tikets       []Tiket   `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE" json:"tikets,omitempty"`
}

type CreateEventInput struct {
	Judul        string     `json:"judul" validate:"required,max=255"`
	Deskripsi    *string    `json:"deskripsi" validate:"omitempty"`
	TanggalWaktu *time.Time `json:"tanggal_waktu" validate:"required"`
	LokasiID     uint       `json:"lokasi_id" validate:"required"`
	KategoriID   uint       `json:"kategori_id" validate:"required"`
	UserID       uint       `json:"user_id" validate:"omitempty"`
	Gambar       *string    `json:"gambar" validate:"omitempty,url,max=255"`
}

type UpdateEventInput struct {
	Judul        *string    `json:"judul" validate:"omitempty,min=1,max=255"`
	Deskripsi    *string    `json:"deskripsi" validate:"omitempty"`
	TanggalWaktu *time.Time `json:"tanggal_waktu" validate:"omitempty"`
	LokasiID     *uint      `json:"lokasi_id" validate:"omitempty,min=1"`
	KategoriID   *uint      `json:"kategori_id" validate:"omitempty,min=1"`
	UserID       *uint      `json:"user_id" validate:"omitempty,min=1"`
	Gambar       *string    `json:"gambar" validate:"omitempty,url,max=255"`
}

type EventFilter struct {
	Pagination
	KategoriID *uint   `query:"kategori_id"`
	LokasiID   *uint   `query:"lokasi_id"`
	Search     *string `query:"search"`
}
