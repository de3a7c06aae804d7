package shopping

import (
	"context"
	"errors"
	"strings"
	"time"

	"DTCL-Backend/domain"
	"DTCL-Backend/entities"
	"DTCL-Backend/pkg/food"
	"DTCL-Backend/pkg/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ShoppingService interface {
		CreateShoppingList(ctx context.Context, req domain.CreateShoppingListRequest, userID string, groupID string) (*entities.ShoppingList, bool, error)
		GetShoppingLists(ctx context.Context, groupID string) ([]*entities.ShoppingList, error)
		DeleteShoppingList(ctx context.Context, req domain.DeleteShoppingListRequest, groupID string) error

		CreateTask(ctx context.Context, req domain.CreateTaskRequest, userID string, groupID string) (*entities.ShoppingTask, error)
		GetTasks(ctx context.Context, listID string, groupID string) ([]*entities.ShoppingTask, error)
		UpdateTask(ctx context.Context, req domain.UpdateTaskRequest, groupID string) (*entities.ShoppingTask, error)
		DeleteTask(ctx context.Context, req domain.DeleteTaskRequest, groupID string) error
	}

	shoppingService struct {
		shoppingRepository ShoppingRepository
		foodService        food.FoodService
		foodRepository     food.FoodRepository
		userRepository     user.UserRepository
	}
)

func NewShoppingService(shoppingRepository ShoppingRepository, foodService food.FoodService, foodRepository food.FoodRepository, userRepository user.UserRepository) ShoppingService {
	return &shoppingService{
		shoppingRepository: shoppingRepository,
		foodService:        foodService,
		foodRepository:     foodRepository,
		userRepository:     userRepository,
	}
}

// listDate normalizes a payload date to midnight so each group keeps at
// most one list per day. An empty payload means today.
func listDate(raw string) (time.Time, error) {
	if raw == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local), nil
	}
	d, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		return time.Time{}, err
	}
	return d, nil
}

func (s *shoppingService) CreateShoppingList(ctx context.Context, req domain.CreateShoppingListRequest, userID string, groupID string) (*entities.ShoppingList, bool, error) {
	date, err := listDate(req.Date)
	if err != nil {
		return nil, false, domain.ErrListBadDate
	}

	existing, err := s.shoppingRepository.GetListByDate(ctx, groupID, date)
	if err == nil {
		return existing, true, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	gID, err := uuid.Parse(groupID)
	if err != nil {
		return nil, false, domain.ErrShoppingNeedsGroup
	}
	uID, err := uuid.Parse(userID)
	if err != nil {
		return nil, false, domain.ErrTokenUserNotFound
	}

	list := &entities.ShoppingList{
		GroupID:     gID,
		Date:        date,
		CreatedByID: &uID,
	}
	if err := s.shoppingRepository.CreateList(ctx, list); err != nil {
		// Lost the unique (group, date) race; the winner is the list.
		existing, readErr := s.shoppingRepository.GetListByDate(ctx, groupID, date)
		if readErr != nil {
			return nil, false, err
		}
		return existing, true, nil
	}

	created, err := s.shoppingRepository.GetListByID(ctx, list.ID.String())
	if err != nil {
		return nil, false, err
	}
	return created, false, nil
}

func (s *shoppingService) GetShoppingLists(ctx context.Context, groupID string) ([]*entities.ShoppingList, error) {
	return s.shoppingRepository.GetLists(ctx, groupID)
}

func (s *shoppingService) DeleteShoppingList(ctx context.Context, req domain.DeleteShoppingListRequest, groupID string) error {
	if req.ListID == "" {
		return domain.ErrListMissingID
	}

	list, err := s.shoppingRepository.GetListByID(ctx, req.ListID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrListNotFound
		}
		return err
	}
	if list.GroupID.String() != groupID {
		return domain.ErrListWrongGroup
	}

	return s.shoppingRepository.DeleteList(ctx, list.ID.String())
}

func (s *shoppingService) resolveAssignee(ctx context.Context, identifier string, groupID string) (*uuid.UUID, error) {
	target, err := s.userRepository.GetUserByUsername(ctx, identifier)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		target, err = s.userRepository.GetUserByEmail(ctx, strings.ToLower(identifier))
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, domain.ErrMemberNotFound
			}
			return nil, err
		}
	}
	if target.GroupID == nil || target.GroupID.String() != groupID {
		return nil, domain.ErrTargetNotInGroup
	}
	return &target.ID, nil
}

func (s *shoppingService) CreateTask(ctx context.Context, req domain.CreateTaskRequest, userID string, groupID string) (*entities.ShoppingTask, error) {
	if req.ListID == "" || req.FoodName == "" {
		return nil, domain.ErrTaskMissingFields
	}

	list, err := s.shoppingRepository.GetListByID(ctx, req.ListID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrListNotFound
		}
		return nil, err
	}
	if list.GroupID.String() != groupID {
		return nil, domain.ErrListWrongGroup
	}

	f, err := s.foodService.FindOrCreateFood(ctx, req.FoodName, "", "", userID, groupID)
	if err != nil {
		return nil, err
	}

	if _, err := s.shoppingRepository.GetTaskByFood(ctx, list.ID.String(), f.ID.String()); err == nil {
		return nil, domain.ErrTaskDuplicateFood
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	task := &entities.ShoppingTask{
		ShoppingListID: list.ID,
		FoodID:         f.ID,
		Quantity:       1,
	}
	if req.Quantity != nil && *req.Quantity > 0 {
		task.Quantity = *req.Quantity
	}
	if req.AssignedTo != "" {
		assignee, err := s.resolveAssignee(ctx, req.AssignedTo, groupID)
		if err != nil {
			return nil, err
		}
		task.AssignedToID = assignee
	}

	if err := s.shoppingRepository.CreateTask(ctx, task); err != nil {
		return nil, err
	}
	return s.shoppingRepository.GetTaskByID(ctx, task.ID.String())
}

func (s *shoppingService) GetTasks(ctx context.Context, listID string, groupID string) ([]*entities.ShoppingTask, error) {
	if listID == "" {
		return nil, domain.ErrListMissingID
	}

	list, err := s.shoppingRepository.GetListByID(ctx, listID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrListNotFound
		}
		return nil, err
	}
	if list.GroupID.String() != groupID {
		return nil, domain.ErrListWrongGroup
	}

	return s.shoppingRepository.GetTasksByList(ctx, list.ID.String())
}

func (s *shoppingService) UpdateTask(ctx context.Context, req domain.UpdateTaskRequest, groupID string) (*entities.ShoppingTask, error) {
	if req.TaskID == "" {
		return nil, domain.ErrTaskUpdateMissingID
	}

	task, err := s.shoppingRepository.GetTaskByID(ctx, req.TaskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, err
	}
	if task.ShoppingList == nil || task.ShoppingList.GroupID.String() != groupID {
		return nil, domain.ErrListWrongGroup
	}

	if req.NewFoodName != "" {
		f, err := s.foodRepository.GetFoodByName(ctx, req.NewFoodName, groupID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, domain.ErrTaskFoodNotFound
			}
			return nil, err
		}
		if f.ID != task.FoodID {
			if _, err := s.shoppingRepository.GetTaskByFood(ctx, task.ShoppingListID.String(), f.ID.String()); err == nil {
				return nil, domain.ErrTaskFoodInList
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
			task.FoodID = f.ID
		}
	}

	if req.NewQuantity != nil && *req.NewQuantity > 0 {
		task.Quantity = *req.NewQuantity
	}

	// CompletedAt moves in lockstep with the completion flag.
	if req.IsCompleted != nil && *req.IsCompleted != task.IsCompleted {
		task.IsCompleted = *req.IsCompleted
		if task.IsCompleted {
			now := time.Now()
			task.CompletedAt = &now
		} else {
			task.CompletedAt = nil
		}
	}

	if err := s.shoppingRepository.UpdateTask(ctx, task); err != nil {
		return nil, err
	}
	return s.shoppingRepository.GetTaskByID(ctx, task.ID.String())
}

func (s *shoppingService) DeleteTask(ctx context.Context, req domain.DeleteTaskRequest, groupID string) error {
	if req.TaskID == "" {
		return domain.ErrTaskDeleteMissingID
	}

	task, err := s.shoppingRepository.GetTaskByID(ctx, req.TaskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrTaskDeleteNotFound
		}
		return err
	}
	if task.ShoppingList == nil || task.ShoppingList.GroupID.String() != groupID {
		return domain.ErrListWrongGroup
	}

	return s.shoppingRepository.DeleteTask(ctx, task.ID.String())
}
