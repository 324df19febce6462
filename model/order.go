package model

import "time"

type Order struct {
	DTO
	Kode         string        `gorm:"size:20;uniqueIndex;not null" json:"kode"`
	UserID       uint          `gorm:"not null;index" json:"user_id"`
	User         *User         `gorm:"constraint:OnDelete:CASCADE" json:"user,omitempty"`
	TotalHarga   int64         `gorm:"not null" json:"total_harga"`
	TanggalOrder time.Time     `gorm:"not null" json:"tanggal_order"`
	Details      []DetailOrder `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"details,omitempty"`
}

type DetailOrder struct {
	DTO
	OrderID       uint   `gorm:"not null;index" json:"order_id"`
	TiketID       uint   `gorm:"not null;index" json:"tiket_id"`
	Tiket         *Tiket `gorm:"constraint:OnDelete:CASCADE" json:"tiket,omitempty"`
	Jumlah        int    `gorm:"not null" json:"jumlah"`
	SubtotalHarga int64  `gorm:"not null" json:"subtotal_harga"`
}

type DetailOrderInput struct {
	TiketID uint `json:"tiket_id" validate:"required"`
	Jumlah  int  `json:"jumlah" validate:"required,min=1"`
}

type OrderInput struct {
	UserID  uint               `json:"user_id" validate:"required"`
	Details []DetailOrderInput `json:"details" validate:"required,min=1,dive"`
}
