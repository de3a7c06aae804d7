package admin

import (
	"context"

	"DTCL-Backend/entities"

	"gorm.io/gorm"
)

type (
	AdminRepository interface {
		GetCategories(ctx context.Context) ([]*entities.Category, error)
		GetCategoryByName(ctx context.Context, name string) (*entities.Category, error)
		CreateCategory(ctx context.Context, category *entities.Category) error
		UpdateCategory(ctx context.Context, category *entities.Category) error
		DeleteCategory(ctx context.Context, id string) error

		GetUnits(ctx context.Context) ([]*entities.Unit, error)
		GetUnitByName(ctx context.Context, name string) (*entities.Unit, error)
		CreateUnit(ctx context.Context, unit *entities.Unit) error
		UpdateUnit(ctx context.Context, unit *entities.Unit) error
		DeleteUnit(ctx context.Context, id string) error

		GetUsers(ctx context.Context, search string, role string, page, limit int) ([]*entities.User, int64, error)
		CountStats(ctx context.Context) (Stats, error)
	}

	// Stats carries the raw system counters.
	Stats struct {
		Users      int64
		Admins     int64
		Verified   int64
		Groups     int64
		Categories int64
		Units      int64
	}

	adminRepository struct {
		db *gorm.DB
	}
)

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) GetCategories(ctx context.Context) ([]*entities.Category, error) {
	var categories []*entities.Category
	if err := r.db.WithContext(ctx).Order("name asc").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *adminRepository) GetCategoryByName(ctx context.Context, name string) (*entities.Category, error) {
	var category entities.Category
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *adminRepository) CreateCategory(ctx context.Context, category *entities.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *adminRepository) UpdateCategory(ctx context.Context, category *entities.Category) error {
	return r.db.WithContext(ctx).Save(category).Error
}

// DeleteCategory detaches referencing foods before removing the row.
func (r *adminRepository) DeleteCategory(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entities.Food{}).Where("category_id = ?", id).Update("category_id", nil).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.Category{}).Error
	})
}

func (r *adminRepository) GetUnits(ctx context.Context) ([]*entities.Unit, error) {
	var units []*entities.Unit
	if err := r.db.WithContext(ctx).Order("name asc").Find(&units).Error; err != nil {
		return nil, err
	}
	return units, nil
}

func (r *adminRepository) GetUnitByName(ctx context.Context, name string) (*entities.Unit, error) {
	var unit entities.Unit
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&unit).Error; err != nil {
		return nil, err
	}
	return &unit, nil
}

func (r *adminRepository) CreateUnit(ctx context.Context, unit *entities.Unit) error {
	return r.db.WithContext(ctx).Create(unit).Error
}

func (r *adminRepository) UpdateUnit(ctx context.Context, unit *entities.Unit) error {
	return r.db.WithContext(ctx).Save(unit).Error
}

func (r *adminRepository) DeleteUnit(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entities.Food{}).Where("unit_id = ?", id).Update("unit_id", nil).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.Unit{}).Error
	})
}

func (r *adminRepository) GetUsers(ctx context.Context, search string, role string, page, limit int) ([]*entities.User, int64, error) {
	var users []*entities.User
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Model(&entities.User{})
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("name ILIKE ? OR email ILIKE ? OR username ILIKE ?", pattern, pattern, pattern)
	}
	if role != "" {
		query = query.Where("role = ?", role)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Offset(offset).Limit(limit).Order("created_at desc").Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, count, nil
}

func (r *adminRepository) CountStats(ctx context.Context) (Stats, error) {
	var stats Stats
	db := r.db.WithContext(ctx)

	if err := db.Model(&entities.User{}).Count(&stats.Users).Error; err != nil {
		return stats, err
	}
	if err := db.Model(&entities.User{}).Where("role = ?", "admin").Count(&stats.Admins).Error; err != nil {
		return stats, err
	}
	if err := db.Model(&entities.User{}).Where("is_verified = ?", true).Count(&stats.Verified).Error; err != nil {
		return stats, err
	}
	if err := db.Model(&entities.Group{}).Count(&stats.Groups).Error; err != nil {
		return stats, err
	}
	if err := db.Model(&entities.Category{}).Count(&stats.Categories).Error; err != nil {
		return stats, err
	}
	if err := db.Model(&entities.Unit{}).Count(&stats.Units).Error; err != nil {
		return stats, err
	}

	return stats, nil
}
