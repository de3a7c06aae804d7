package shopping

import (
	"context"
	"time"

	"DTCL-Backend/entities"

	"gorm.io/gorm"
)

type (
	ShoppingRepository interface {
		CreateList(ctx context.Context, list *entities.ShoppingList) error
		GetListByID(ctx context.Context, id string) (*entities.ShoppingList, error)
		GetListByDate(ctx context.Context, groupID string, date time.Time) (*entities.ShoppingList, error)
		GetLists(ctx context.Context, groupID string) ([]*entities.ShoppingList, error)
		DeleteList(ctx context.Context, id string) error

		CreateTask(ctx context.Context, task *entities.ShoppingTask) error
		GetTaskByID(ctx context.Context, id string) (*entities.ShoppingTask, error)
		GetTasksByList(ctx context.Context, listID string) ([]*entities.ShoppingTask, error)
		GetTaskByFood(ctx context.Context, listID string, foodID string) (*entities.ShoppingTask, error)
		UpdateTask(ctx context.Context, task *entities.ShoppingTask) error
		DeleteTask(ctx context.Context, id string) error
	}

	shoppingRepository struct {
		db *gorm.DB
	}
)

func NewShoppingRepository(db *gorm.DB) ShoppingRepository {
	return &shoppingRepository{db: db}
}

func (r *shoppingRepository) CreateList(ctx context.Context, list *entities.ShoppingList) error {
	return r.db.WithContext(ctx).Create(list).Error
}

func (r *shoppingRepository) GetListByID(ctx context.Context, id string) (*entities.ShoppingList, error) {
	var list entities.ShoppingList
	if err := r.db.WithContext(ctx).
		Preload("Tasks").
		Preload("Tasks.Food").
		Preload("Tasks.AssignedTo").
		Where("id = ?", id).
		First(&list).Error; err != nil {
		return nil, err
	}
	return &list, nil
}

func (r *shoppingRepository) GetListByDate(ctx context.Context, groupID string, date time.Time) (*entities.ShoppingList, error) {
	var list entities.ShoppingList
	if err := r.db.WithContext(ctx).
		Preload("Tasks").
		Preload("Tasks.Food").
		Preload("Tasks.AssignedTo").
		Where("group_id = ? AND date = ?", groupID, date).
		First(&list).Error; err != nil {
		return nil, err
	}
	return &list, nil
}

func (r *shoppingRepository) GetLists(ctx context.Context, groupID string) ([]*entities.ShoppingList, error) {
	var lists []*entities.ShoppingList
	if err := r.db.WithContext(ctx).
		Preload("Tasks").
		Preload("Tasks.Food").
		Preload("Tasks.AssignedTo").
		Where("group_id = ?", groupID).
		Order("date desc").
		Find(&lists).Error; err != nil {
		return nil, err
	}
	return lists, nil
}

// DeleteList drops the tasks before the list row.
func (r *shoppingRepository) DeleteList(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("shopping_list_id = ?", id).Delete(&entities.ShoppingTask{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.ShoppingList{}).Error
	})
}

func (r *shoppingRepository) CreateTask(ctx context.Context, task *entities.ShoppingTask) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *shoppingRepository) GetTaskByID(ctx context.Context, id string) (*entities.ShoppingTask, error) {
	var task entities.ShoppingTask
	if err := r.db.WithContext(ctx).
		Preload("ShoppingList").
		Preload("Food").
		Preload("AssignedTo").
		Where("id = ?", id).
		First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *shoppingRepository) GetTasksByList(ctx context.Context, listID string) ([]*entities.ShoppingTask, error) {
	var tasks []*entities.ShoppingTask
	if err := r.db.WithContext(ctx).
		Preload("Food").
		Preload("Food.Category").
		Preload("Food.Unit").
		Preload("AssignedTo").
		Where("shopping_list_id = ?", listID).
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *shoppingRepository) GetTaskByFood(ctx context.Context, listID string, foodID string) (*entities.ShoppingTask, error) {
	var task entities.ShoppingTask
	if err := r.db.WithContext(ctx).
		Where("shopping_list_id = ? AND food_id = ?", listID, foodID).
		First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *shoppingRepository) UpdateTask(ctx context.Context, task *entities.ShoppingTask) error {
	return r.db.WithContext(ctx).Save(task).Error
}

func (r *shoppingRepository) DeleteTask(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.ShoppingTask{}).Error
}
