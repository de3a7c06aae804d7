package seed

import (
	"fmt"

	"DTCL-Backend/entities"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var categoryNames = []string{
	"Thịt",
	"Cá & Hải sản",
	"Rau củ",
	"Trái cây",
	"Trứng & Sữa",
	"Đồ khô",
	"Đồ hộp",
	"Gia vị",
	"Đồ uống",
	"Bánh kẹo",
	"Đồ đông lạnh",
	"Mì & Bún & Phở",
	"Dầu ăn",
	"Ngũ cốc",
	"Khác",
}

var unitNames = []string{
	"kg", "g", "lít", "ml",
	"quả", "trái", "củ", "bó",
	"gói", "hộp", "chai", "lon",
	"túi", "miếng", "con", "cái",
	"chục", "vỉ",
}

// Seed fills the reference tables. Existing names are left untouched so
// reseeding is safe.
func Seed(db *gorm.DB) error {
	for _, name := range categoryNames {
		category := entities.Category{Name: name}
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).Create(&category).Error; err != nil {
			return err
		}
	}

	for _, name := range unitNames {
		unit := entities.Unit{Name: name}
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).Create(&unit).Error; err != nil {
			return err
		}
	}

	fmt.Println("Reference data seeding complete")
	return nil
}
