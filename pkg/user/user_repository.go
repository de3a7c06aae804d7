package user

import (
	"context"

	"DTCL-Backend/entities"

	"gorm.io/gorm"
)

type (
	UserRepository interface {
		CreateUser(ctx context.Context, user *entities.User) error
		GetUserByID(ctx context.Context, id string) (*entities.User, error)
		GetUserByEmail(ctx context.Context, email string) (*entities.User, error)
		GetUserByUsername(ctx context.Context, username string) (*entities.User, error)
		GetUserByVerificationCode(ctx context.Context, code string) (*entities.User, error)
		UpdateUser(ctx context.Context, user *entities.User) error
		DeleteUser(ctx context.Context, id string) error
		DeleteUserCascade(ctx context.Context, id string) error
	}

	userRepository struct {
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByVerificationCode(ctx context.Context, code string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("verification_code = ?", code).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UpdateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) DeleteUser(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.User{}).Error
}

// DeleteUserCascade removes the user and, when the user administers a
// group, dissolves that group and detaches its members first.
func (r *userRepository) DeleteUserCascade(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var groups []entities.Group
		if err := tx.Where("admin_id = ?", id).Find(&groups).Error; err != nil {
			return err
		}
		for _, g := range groups {
			if err := tx.Model(&entities.User{}).Where("group_id = ?", g.ID).Update("group_id", nil).Error; err != nil {
				return err
			}
			if err := tx.Where("id = ?", g.ID).Delete(&entities.Group{}).Error; err != nil {
				return err
			}
		}
		return tx.Where("id = ?", id).Delete(&entities.User{}).Error
	})
}
