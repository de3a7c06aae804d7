package admin

import (
	"context"
	"testing"

	"DTCL-Backend/domain"
	"DTCL-Backend/entities"
	"DTCL-Backend/pkg/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeAdminRepository struct {
	categories map[string]*entities.Category
	units      map[string]*entities.Unit
}

func newFakeAdminRepository() *fakeAdminRepository {
	return &fakeAdminRepository{
		categories: map[string]*entities.Category{},
		units:      map[string]*entities.Unit{},
	}
}

func (r *fakeAdminRepository) GetCategories(_ context.Context) ([]*entities.Category, error) {
	var out []*entities.Category
	for _, c := range r.categories {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeAdminRepository) GetCategoryByName(_ context.Context, name string) (*entities.Category, error) {
	for _, c := range r.categories {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeAdminRepository) CreateCategory(_ context.Context, category *entities.Category) error {
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	r.categories[category.ID.String()] = category
	return nil
}

func (r *fakeAdminRepository) UpdateCategory(_ context.Context, category *entities.Category) error {
	r.categories[category.ID.String()] = category
	return nil
}

func (r *fakeAdminRepository) DeleteCategory(_ context.Context, id string) error {
	delete(r.categories, id)
	return nil
}

func (r *fakeAdminRepository) GetUnits(_ context.Context) ([]*entities.Unit, error) {
	var out []*entities.Unit
	for _, u := range r.units {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeAdminRepository) GetUnitByName(_ context.Context, name string) (*entities.Unit, error) {
	for _, u := range r.units {
		if u.Name == name {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeAdminRepository) CreateUnit(_ context.Context, unit *entities.Unit) error {
	if unit.ID == uuid.Nil {
		unit.ID = uuid.New()
	}
	r.units[unit.ID.String()] = unit
	return nil
}

func (r *fakeAdminRepository) UpdateUnit(_ context.Context, unit *entities.Unit) error {
	r.units[unit.ID.String()] = unit
	return nil
}

func (r *fakeAdminRepository) DeleteUnit(_ context.Context, id string) error {
	delete(r.units, id)
	return nil
}

func (r *fakeAdminRepository) GetUsers(_ context.Context, _ string, _ string, _, _ int) ([]*entities.User, int64, error) {
	return nil, 0, nil
}

func (r *fakeAdminRepository) CountStats(_ context.Context) (Stats, error) {
	return Stats{
		Users:      12,
		Admins:     2,
		Verified:   9,
		Groups:     4,
		Categories: int64(len(r.categories)),
		Units:      int64(len(r.units)),
	}, nil
}

type fakeUserRepository struct {
	user.UserRepository
	users map[string]*entities.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: map[string]*entities.User{}}
}

func (r *fakeUserRepository) addUser(role string) *entities.User {
	u := &entities.User{ID: uuid.New(), Role: role}
	r.users[u.ID.String()] = u
	return u
}

func (r *fakeUserRepository) GetUserByID(_ context.Context, id string) (*entities.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepository) UpdateUser(_ context.Context, u *entities.User) error {
	r.users[u.ID.String()] = u
	return nil
}

func (r *fakeUserRepository) DeleteUserCascade(_ context.Context, id string) error {
	delete(r.users, id)
	return nil
}

func newTestAdminService() (AdminService, *fakeAdminRepository, *fakeUserRepository) {
	repo := newFakeAdminRepository()
	users := newFakeUserRepository()
	return NewAdminService(repo, users), repo, users
}

func TestCategoryLifecycle(t *testing.T) {
	service, _, _ := newTestAdminService()
	ctx := context.Background()

	_, err := service.CreateCategory(ctx, domain.CreateCategoryRequest{})
	assert.ErrorIs(t, err, domain.ErrCategoryMissingName)

	created, err := service.CreateCategory(ctx, domain.CreateCategoryRequest{Name: "Rau củ"})
	require.NoError(t, err)
	assert.Equal(t, "Rau củ", created.Name)

	_, err = service.CreateCategory(ctx, domain.CreateCategoryRequest{Name: "Rau củ"})
	assert.ErrorIs(t, err, domain.ErrCategoryExists)

	_, err = service.EditCategory(ctx, domain.EditCategoryRequest{OldName: "Rau củ", NewName: "Rau củ"})
	assert.ErrorIs(t, err, domain.ErrCategorySameName)

	_, err = service.EditCategory(ctx, domain.EditCategoryRequest{OldName: "Không có", NewName: "Củ quả"})
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)

	edited, err := service.EditCategory(ctx, domain.EditCategoryRequest{OldName: "Rau củ", NewName: "Củ quả"})
	require.NoError(t, err)
	assert.Equal(t, "Củ quả", edited.Name)

	err = service.DeleteCategory(ctx, domain.DeleteCategoryRequest{Name: "Không có"})
	assert.ErrorIs(t, err, domain.ErrCategoryDelNotFound)

	require.NoError(t, service.DeleteCategory(ctx, domain.DeleteCategoryRequest{Name: "Củ quả"}))
	categories, err := service.GetCategories(ctx)
	require.NoError(t, err)
	assert.Empty(t, categories)
}

func TestEditCategoryRejectsTakenName(t *testing.T) {
	service, _, _ := newTestAdminService()
	ctx := context.Background()

	_, err := service.CreateCategory(ctx, domain.CreateCategoryRequest{Name: "Rau củ"})
	require.NoError(t, err)
	_, err = service.CreateCategory(ctx, domain.CreateCategoryRequest{Name: "Thịt"})
	require.NoError(t, err)

	_, err = service.EditCategory(ctx, domain.EditCategoryRequest{OldName: "Rau củ", NewName: "Thịt"})
	assert.ErrorIs(t, err, domain.ErrCategoryNewExists)
}

func TestUnitLifecycle(t *testing.T) {
	service, _, _ := newTestAdminService()
	ctx := context.Background()

	_, err := service.CreateUnit(ctx, domain.CreateUnitRequest{})
	assert.ErrorIs(t, err, domain.ErrUnitMissingName)

	_, err = service.CreateUnit(ctx, domain.CreateUnitRequest{UnitName: "kg"})
	require.NoError(t, err)

	_, err = service.CreateUnit(ctx, domain.CreateUnitRequest{UnitName: "kg"})
	assert.ErrorIs(t, err, domain.ErrUnitExists)

	edited, err := service.EditUnit(ctx, domain.EditUnitRequest{OldName: "kg", NewName: "gam"})
	require.NoError(t, err)
	assert.Equal(t, "gam", edited.Name)

	err = service.DeleteUnit(ctx, domain.DeleteUnitRequest{UnitName: "kg"})
	assert.ErrorIs(t, err, domain.ErrUnitDelNotFound)

	require.NoError(t, service.DeleteUnit(ctx, domain.DeleteUnitRequest{UnitName: "gam"}))
}

func TestUpdateUserRoleGuards(t *testing.T) {
	service, _, users := newTestAdminService()
	ctx := context.Background()
	actor := users.addUser(domain.RoleAdmin)
	target := users.addUser(domain.RoleUser)

	_, err := service.UpdateUserRole(ctx, target.ID.String(), domain.UpdateUserRoleRequest{Role: "root"}, actor.ID.String())
	assert.ErrorIs(t, err, domain.ErrBadRole)

	_, err = service.UpdateUserRole(ctx, actor.ID.String(), domain.UpdateUserRoleRequest{Role: domain.RoleUser}, actor.ID.String())
	assert.ErrorIs(t, err, domain.ErrSelfRole)

	_, err = service.UpdateUserRole(ctx, uuid.NewString(), domain.UpdateUserRoleRequest{Role: domain.RoleAdmin}, actor.ID.String())
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	promoted, err := service.UpdateUserRole(ctx, target.ID.String(), domain.UpdateUserRoleRequest{Role: domain.RoleAdmin}, actor.ID.String())
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, promoted.Role)
}

func TestDeleteUserGuards(t *testing.T) {
	service, _, users := newTestAdminService()
	ctx := context.Background()
	actor := users.addUser(domain.RoleAdmin)
	target := users.addUser(domain.RoleUser)

	err := service.DeleteUser(ctx, actor.ID.String(), actor.ID.String())
	assert.ErrorIs(t, err, domain.ErrSelfDelete)

	err = service.DeleteUser(ctx, uuid.NewString(), actor.ID.String())
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	require.NoError(t, service.DeleteUser(ctx, target.ID.String(), actor.ID.String()))
	assert.Len(t, users.users, 1)
}

func TestGetLogsMissingFileIsEmpty(t *testing.T) {
	service, _, _ := newTestAdminService()

	lines, err := service.GetLogs(context.Background(), 50)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestGetSystemStats(t *testing.T) {
	service, repo, _ := newTestAdminService()
	ctx := context.Background()

	for _, name := range []string{"Rau củ", "Thịt", "Hải sản"} {
		_, err := service.CreateCategory(ctx, domain.CreateCategoryRequest{Name: name})
		require.NoError(t, err)
	}
	_, err := service.CreateUnit(ctx, domain.CreateUnitRequest{UnitName: "kg"})
	require.NoError(t, err)

	stats, err := service.GetSystemStats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 12, stats.Users.Total)
	assert.EqualValues(t, 2, stats.Users.Admins)
	assert.EqualValues(t, 9, stats.Users.Verified)
	assert.EqualValues(t, len(repo.categories), stats.Categories)
	assert.EqualValues(t, 1, stats.Units)
}
