package admin

import (
	"context"
	"errors"
	"os"
	"strings"

	"DTCL-Backend/domain"
	"DTCL-Backend/entities"
	"DTCL-Backend/pkg/user"

	"gorm.io/gorm"
)

const logFilePath = "./logs/app.log"

type (
	AdminService interface {
		GetCategories(ctx context.Context) ([]*entities.Category, error)
		CreateCategory(ctx context.Context, req domain.CreateCategoryRequest) (*entities.Category, error)
		EditCategory(ctx context.Context, req domain.EditCategoryRequest) (*entities.Category, error)
		DeleteCategory(ctx context.Context, req domain.DeleteCategoryRequest) error

		GetUnits(ctx context.Context) ([]*entities.Unit, error)
		CreateUnit(ctx context.Context, req domain.CreateUnitRequest) (*entities.Unit, error)
		EditUnit(ctx context.Context, req domain.EditUnitRequest) (*entities.Unit, error)
		DeleteUnit(ctx context.Context, req domain.DeleteUnitRequest) error

		GetLogs(ctx context.Context, lines int) ([]string, error)
		GetUsers(ctx context.Context, query domain.ListUsersQuery) ([]*entities.User, int64, error)
		GetUser(ctx context.Context, id string) (*entities.User, error)
		UpdateUserRole(ctx context.Context, targetID string, req domain.UpdateUserRoleRequest, actorID string) (*entities.User, error)
		DeleteUser(ctx context.Context, targetID string, actorID string) error
		GetSystemStats(ctx context.Context) (domain.SystemStatsResponse, error)
	}

	adminService struct {
		adminRepository AdminRepository
		userRepository  user.UserRepository
	}
)

func NewAdminService(adminRepository AdminRepository, userRepository user.UserRepository) AdminService {
	return &adminService{
		adminRepository: adminRepository,
		userRepository:  userRepository,
	}
}

func (s *adminService) GetCategories(ctx context.Context) ([]*entities.Category, error) {
	return s.adminRepository.GetCategories(ctx)
}

func (s *adminService) CreateCategory(ctx context.Context, req domain.CreateCategoryRequest) (*entities.Category, error) {
	if req.Name == "" {
		return nil, domain.ErrCategoryMissingName
	}

	if _, err := s.adminRepository.GetCategoryByName(ctx, req.Name); err == nil {
		return nil, domain.ErrCategoryExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	category := &entities.Category{Name: req.Name}
	if err := s.adminRepository.CreateCategory(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *adminService) EditCategory(ctx context.Context, req domain.EditCategoryRequest) (*entities.Category, error) {
	if req.OldName == "" || req.NewName == "" {
		return nil, domain.ErrCategoryEditMissing
	}
	if req.OldName == req.NewName {
		return nil, domain.ErrCategorySameName
	}

	category, err := s.adminRepository.GetCategoryByName(ctx, req.OldName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}

	if _, err := s.adminRepository.GetCategoryByName(ctx, req.NewName); err == nil {
		return nil, domain.ErrCategoryNewExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	category.Name = req.NewName
	if err := s.adminRepository.UpdateCategory(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *adminService) DeleteCategory(ctx context.Context, req domain.DeleteCategoryRequest) error {
	if req.Name == "" {
		return domain.ErrCategoryDelMissing
	}

	category, err := s.adminRepository.GetCategoryByName(ctx, req.Name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCategoryDelNotFound
		}
		return err
	}

	return s.adminRepository.DeleteCategory(ctx, category.ID.String())
}

func (s *adminService) GetUnits(ctx context.Context) ([]*entities.Unit, error) {
	return s.adminRepository.GetUnits(ctx)
}

func (s *adminService) CreateUnit(ctx context.Context, req domain.CreateUnitRequest) (*entities.Unit, error) {
	if req.UnitName == "" {
		return nil, domain.ErrUnitMissingName
	}

	if _, err := s.adminRepository.GetUnitByName(ctx, req.UnitName); err == nil {
		return nil, domain.ErrUnitExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	unit := &entities.Unit{Name: req.UnitName}
	if err := s.adminRepository.CreateUnit(ctx, unit); err != nil {
		return nil, err
	}
	return unit, nil
}

func (s *adminService) EditUnit(ctx context.Context, req domain.EditUnitRequest) (*entities.Unit, error) {
	if req.OldName == "" || req.NewName == "" {
		return nil, domain.ErrUnitEditMissing
	}
	if req.OldName == req.NewName {
		return nil, domain.ErrUnitSameName
	}

	unit, err := s.adminRepository.GetUnitByName(ctx, req.OldName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUnitNotFound
		}
		return nil, err
	}

	if _, err := s.adminRepository.GetUnitByName(ctx, req.NewName); err == nil {
		return nil, domain.ErrUnitExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	unit.Name = req.NewName
	if err := s.adminRepository.UpdateUnit(ctx, unit); err != nil {
		return nil, err
	}
	return unit, nil
}

func (s *adminService) DeleteUnit(ctx context.Context, req domain.DeleteUnitRequest) error {
	if req.UnitName == "" {
		return domain.ErrUnitDelMissing
	}

	unit, err := s.adminRepository.GetUnitByName(ctx, req.UnitName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUnitDelNotFound
		}
		return err
	}

	return s.adminRepository.DeleteUnit(ctx, unit.ID.String())
}

// GetLogs returns the last n lines of the request log.
func (s *adminService) GetLogs(ctx context.Context, lines int) ([]string, error) {
	if lines < 1 || lines > 1000 {
		lines = 200
	}

	data, err := os.ReadFile(logFilePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []string{}, nil
		}
		return nil, err
	}

	all := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(all) > lines {
		all = all[len(all)-lines:]
	}
	return all, nil
}

func (s *adminService) GetUsers(ctx context.Context, query domain.ListUsersQuery) ([]*entities.User, int64, error) {
	if query.Page < 1 {
		query.Page = 1
	}
	if query.Limit < 1 || query.Limit > 100 {
		query.Limit = 20
	}
	return s.adminRepository.GetUsers(ctx, query.Search, query.Role, query.Page, query.Limit)
}

func (s *adminService) GetUser(ctx context.Context, id string) (*entities.User, error) {
	u, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *adminService) UpdateUserRole(ctx context.Context, targetID string, req domain.UpdateUserRoleRequest, actorID string) (*entities.User, error) {
	if req.Role != domain.RoleUser && req.Role != domain.RoleAdmin {
		return nil, domain.ErrBadRole
	}
	if targetID == actorID {
		return nil, domain.ErrSelfRole
	}

	u, err := s.userRepository.GetUserByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	u.Role = req.Role
	if err := s.userRepository.UpdateUser(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *adminService) DeleteUser(ctx context.Context, targetID string, actorID string) error {
	if targetID == actorID {
		return domain.ErrSelfDelete
	}

	if _, err := s.userRepository.GetUserByID(ctx, targetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	return s.userRepository.DeleteUserCascade(ctx, targetID)
}

func (s *adminService) GetSystemStats(ctx context.Context) (domain.SystemStatsResponse, error) {
	stats, err := s.adminRepository.CountStats(ctx)
	if err != nil {
		return domain.SystemStatsResponse{}, err
	}

	var res domain.SystemStatsResponse
	res.Users.Total = stats.Users
	res.Users.Admins = stats.Admins
	res.Users.Verified = stats.Verified
	res.Groups = stats.Groups
	res.Categories = stats.Categories
	res.Units = stats.Units
	return res, nil
}
