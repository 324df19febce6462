package model

type Lokasi struct {
	DTO
	NamaLokasi string `gorm:"size:255;not null" json:"nama_lokasi"`
}

type LokasiInput struct {
	NamaLokasi string `json:"nama_lokasi" validate:"required,max=255"`
}
