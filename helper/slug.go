package helper

import (
	"fmt"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// GenerateUniqueSlug tạo slug từ text, thêm -1, -2... tới khi không trùng dòng nào
// trong table (bỏ qua excludeID).
func GenerateUniqueSlug(tx *gorm.DB, table any, text string, excludeID uint) (string, error) {
	base := slug.Make(text)
	if base == "" {
		base = "event"
	}
	result := base
	i := 1

	for {
		var count int64
		q := tx.Model(table).Where("slug = ?", result)
		if excludeID > 0 {
			q = q.Where("id <> ?", excludeID)
		}
		if err := q.Count(&count).Error; err != nil {
			return "", err
		}

		if count == 0 {
			break
		}
		result = fmt.Sprintf("%s-%d", base, i)
		i++
	}

	return result, nil
}
