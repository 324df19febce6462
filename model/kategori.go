package model

type Kategori struct {
	DTO
	NamaKategori string `gorm:"size:255;not null" json:"nama_kategori"`
}

type KategoriInput struct {
	NamaKategori string `json:"nama_kategori" validate:"required,max=255"`
}
