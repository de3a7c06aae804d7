package group

import (
	"context"

	"DTCL-Backend/entities"

	"gorm.io/gorm"
)

type (
	GroupRepository interface {
		CreateGroup(ctx context.Context, group *entities.Group, admin *entities.User) error
		GetGroupByID(ctx context.Context, id string) (*entities.Group, error)
		GetGroupWithMembers(ctx context.Context, id string) (*entities.Group, error)
		AddMember(ctx context.Context, groupID string, member *entities.User) error
		RemoveMember(ctx context.Context, member *entities.User) error
		DeleteGroup(ctx context.Context, groupID string) error
	}

	groupRepository struct {
		db *gorm.DB
	}
)

func NewGroupRepository(db *gorm.DB) GroupRepository {
	return &groupRepository{db: db}
}

// CreateGroup inserts the group and binds the admin as its first member
// in one transaction.
func (r *groupRepository) CreateGroup(ctx context.Context, group *entities.Group, admin *entities.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(group).Error; err != nil {
			return err
		}
		return tx.Model(&entities.User{}).Where("id = ?", admin.ID).Update("group_id", group.ID).Error
	})
}

func (r *groupRepository) GetGroupByID(ctx context.Context, id string) (*entities.Group, error) {
	var group entities.Group
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&group).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *groupRepository) GetGroupWithMembers(ctx context.Context, id string) (*entities.Group, error) {
	var group entities.Group
	if err := r.db.WithContext(ctx).
		Preload("Admin").
		Preload("Members").
		Where("id = ?", id).
		First(&group).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *groupRepository) AddMember(ctx context.Context, groupID string, member *entities.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Model(&entities.User{}).Where("id = ?", member.ID).Update("group_id", groupID).Error
	})
}

func (r *groupRepository) RemoveMember(ctx context.Context, member *entities.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Model(&entities.User{}).Where("id = ?", member.ID).Update("group_id", nil).Error
	})
}

// DeleteGroup detaches every member before removing the group row so no
// user is left pointing at a missing group.
func (r *groupRepository) DeleteGroup(ctx context.Context, groupID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entities.User{}).Where("group_id = ?", groupID).Update("group_id", nil).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", groupID).Delete(&entities.Group{}).Error
	})
}
