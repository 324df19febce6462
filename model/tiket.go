package model

import "github.com/shopspring/decimal"

type Tiket struct {
	DTO
	EventID uint            `gorm:"not null;index" json:"event_id"`
	Event   *Event          `gorm:"constraint:OnDelete:CASCADE" json:"event,omitempty"`
	Tipe    string          `gorm:"size:100;not null" json:"tipe"`
	Harga   decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"harga"`
	Stok    int             `gorm:"not null" json:"stok"`
}

type CreateTiketInput struct {
	EventID uint             `json:"event_id" validate:"required"`
	Tipe    string           `json:"tipe" validate:"required,max=100"`
	Harga   *decimal.Decimal `json:"harga" validate:"required,gte=0"`
	Stok    *int             `json:"stok" validate:"required,gte=0"`
}

type UpdateTiketInput struct {
	EventID *uint            `json:"event_id" validate:"omitempty,min=1"`
	Tipe    *string          `json:"tipe" validate:"omitempty,min=1,max=100"`
	Harga   *decimal.Decimal `json:"harga" validate:"omitempty,gte=0"`
	Stok    *int             `json:"stok" validate:"omitempty,gte=0"`
}
