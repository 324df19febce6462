package database

import (
	"context"
	"fmt"

	"ticketing_admin/constants"
	"ticketing_admin/helper"
	"ticketing_admin/model"
	"ticketing_admin/repository"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var seedLokasi = []string{
	"Stadion Utama",
	"Galeri Seni Kota",
	"Taman Kota",
}

// SeedData tạo dữ liệu gốc. Chạy lại nhiều lần không thêm gì.
func SeedData(ctx context.Context, db *gorm.DB, adminEmail, adminPassword string) error {
	store := repository.NewStore(db)

	hash, err := helper.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	admin := model.User{Name: "Administrator", Email: adminEmail, Password: hash, Role: constants.ROLE_ADMIN}
	if err := store.User.FirstOrCreate(ctx, &admin); err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}

	for _, nama := range seedLokasi {
		lokasi := model.Lokasi{NamaLokasi: nama}
		if err := store.Lokasi.FirstOrCreate(ctx, &lokasi); err != nil {
			return fmt.Errorf("seed lokasi %q: %w", nama, err)
		}
	}

	log.Info().Int("lokasi", len(seedLokasi)).Str("admin", adminEmail).Msg("seed data ready")
	return nil
}
