package group

import (
	"context"
	"testing"

	"DTCL-Backend/domain"
	"DTCL-Backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeUserRepository struct {
	users map[string]*entities.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: map[string]*entities.User{}}
}

func (r *fakeUserRepository) addUser(name, email, username string) *entities.User {
	u := &entities.User{ID: uuid.New(), Name: name, Email: email}
	if username != "" {
		u.Username = &username
	}
	r.users[u.ID.String()] = u
	return u
}

func (r *fakeUserRepository) CreateUser(_ context.Context, user *entities.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.users[user.ID.String()] = user
	return nil
}

func (r *fakeUserRepository) GetUserByID(_ context.Context, id string) (*entities.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepository) GetUserByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepository) GetUserByUsername(_ context.Context, username string) (*entities.User, error) {
	for _, u := range r.users {
		if u.Username != nil && *u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepository) GetUserByVerificationCode(_ context.Context, code string) (*entities.User, error) {
	for _, u := range r.users {
		if u.VerificationCode == code {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepository) UpdateUser(_ context.Context, user *entities.User) error {
	r.users[user.ID.String()] = user
	return nil
}

func (r *fakeUserRepository) DeleteUser(_ context.Context, id string) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepository) DeleteUserCascade(_ context.Context, id string) error {
	delete(r.users, id)
	return nil
}

type fakeGroupRepository struct {
	users  *fakeUserRepository
	groups map[string]*entities.Group
}

func newFakeGroupRepository(users *fakeUserRepository) *fakeGroupRepository {
	return &fakeGroupRepository{users: users, groups: map[string]*entities.Group{}}
}

func (r *fakeGroupRepository) CreateGroup(_ context.Context, group *entities.Group, admin *entities.User) error {
	if group.ID == uuid.Nil {
		group.ID = uuid.New()
	}
	r.groups[group.ID.String()] = group
	admin.GroupID = &group.ID
	return nil
}

func (r *fakeGroupRepository) GetGroupByID(_ context.Context, id string) (*entities.Group, error) {
	if g, ok := r.groups[id]; ok {
		return g, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeGroupRepository) GetGroupWithMembers(_ context.Context, id string) (*entities.Group, error) {
	g, ok := r.groups[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	g.Members = nil
	for _, u := range r.users.users {
		if u.GroupID != nil && *u.GroupID == g.ID {
			g.Members = append(g.Members, u)
		}
		if u.ID == g.AdminID {
			g.Admin = u
		}
	}
	return g, nil
}

func (r *fakeGroupRepository) AddMember(_ context.Context, groupID string, member *entities.User) error {
	gID := uuid.MustParse(groupID)
	member.GroupID = &gID
	return nil
}

func (r *fakeGroupRepository) RemoveMember(_ context.Context, member *entities.User) error {
	member.GroupID = nil
	return nil
}

func (r *fakeGroupRepository) DeleteGroup(_ context.Context, groupID string) error {
	g, ok := r.groups[groupID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for _, u := range r.users.users {
		if u.GroupID != nil && *u.GroupID == g.ID {
			u.GroupID = nil
		}
	}
	delete(r.groups, groupID)
	return nil
}

func newTestGroupService() (GroupService, *fakeUserRepository, *fakeGroupRepository) {
	users := newFakeUserRepository()
	groups := newFakeGroupRepository(users)
	return NewGroupService(groups, users), users, groups
}

func TestCreateGroupMakesAdminAMember(t *testing.T) {
	service, users, _ := newTestGroupService()
	admin := users.addUser("Lan", "lan@example.com", "lan")

	res, err := service.CreateGroup(context.Background(), domain.CreateGroupRequest{Name: "Nhà mình"}, admin.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Nhà mình", res.Name)
	require.NotNil(t, res.Admin)
	assert.Equal(t, admin.ID.String(), res.Admin.ID)
	require.Len(t, res.Members, 1)
	assert.Equal(t, admin.ID.String(), res.Members[0].ID)
}

func TestCreateGroupRejectsSecondGroup(t *testing.T) {
	service, users, _ := newTestGroupService()
	admin := users.addUser("Lan", "lan@example.com", "lan")

	_, err := service.CreateGroup(context.Background(), domain.CreateGroupRequest{}, admin.ID.String())
	require.NoError(t, err)

	_, err = service.CreateGroup(context.Background(), domain.CreateGroupRequest{}, admin.ID.String())
	assert.ErrorIs(t, err, domain.ErrAlreadyInGroup)
}

func TestCreateGroupDefaultsName(t *testing.T) {
	service, users, _ := newTestGroupService()
	admin := users.addUser("Lan", "lan@example.com", "lan")

	res, err := service.CreateGroup(context.Background(), domain.CreateGroupRequest{}, admin.ID.String())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultGroupName, res.Name)
}

func TestAddMemberResolvesUsernameThenEmail(t *testing.T) {
	service, users, _ := newTestGroupService()
	admin := users.addUser("Lan", "lan@example.com", "lan")
	byUsername := users.addUser("Minh", "minh@example.com", "minh")
	byEmail := users.addUser("Hoa", "hoa@example.com", "")

	_, err := service.CreateGroup(context.Background(), domain.CreateGroupRequest{}, admin.ID.String())
	require.NoError(t, err)

	res, err := service.AddMember(context.Background(), domain.MemberRequest{Username: "minh"}, admin.ID.String())
	require.NoError(t, err)
	assert.Len(t, res.Members, 2)
	assert.Equal(t, admin.GroupID, byUsername.GroupID)

	res, err = service.AddMember(context.Background(), domain.MemberRequest{Username: "Hoa@Example.com"}, admin.ID.String())
	require.NoError(t, err)
	assert.Len(t, res.Members, 3)
	assert.Equal(t, admin.GroupID, byEmail.GroupID)

	_, err = service.AddMember(context.Background(), domain.MemberRequest{Username: "không-có"}, admin.ID.String())
	assert.ErrorIs(t, err, domain.ErrMemberNotFound)
}

func TestAddMemberRejectsUserAlreadyInAGroup(t *testing.T) {
	service, users, _ := newTestGroupService()
	admin := users.addUser("Lan", "lan@example.com", "lan")
	other := users.addUser("Minh", "minh@example.com", "minh")

	_, err := service.CreateGroup(context.Background(), domain.CreateGroupRequest{}, admin.ID.String())
	require.NoError(t, err)
	_, err = service.CreateGroup(context.Background(), domain.CreateGroupRequest{}, other.ID.String())
	require.NoError(t, err)

	_, err = service.AddMember(context.Background(), domain.MemberRequest{Username: "minh"}, admin.ID.String())
	assert.ErrorIs(t, err, domain.ErrTargetInGroup)
}

func TestRemoveMemberGuards(t *testing.T) {
	service, users, _ := newTestGroupService()
	admin := users.addUser("Lan", "lan@example.com", "lan")
	member := users.addUser("Minh", "minh@example.com", "minh")
	outsider := users.addUser("Hoa", "hoa@example.com", "hoa")

	_, err := service.CreateGroup(context.Background(), domain.CreateGroupRequest{}, admin.ID.String())
	require.NoError(t, err)
	_, err = service.AddMember(context.Background(), domain.MemberRequest{Username: "minh"}, admin.ID.String())
	require.NoError(t, err)

	_, err = service.RemoveMember(context.Background(), domain.MemberRequest{Username: "hoa"}, admin.ID.String())
	assert.ErrorIs(t, err, domain.ErrTargetNotInGroup)

	_, err = service.RemoveMember(context.Background(), domain.MemberRequest{Username: "lan"}, admin.ID.String())
	assert.ErrorIs(t, err, domain.ErrCannotRemoveAdmin)

	res, err := service.RemoveMember(context.Background(), domain.MemberRequest{Username: "minh"}, admin.ID.String())
	require.NoError(t, err)
	assert.Len(t, res.Members, 1)
	assert.Nil(t, member.GroupID)
	assert.Nil(t, outsider.GroupID)
}

func TestLeaveGroup(t *testing.T) {
	service, users, _ := newTestGroupService()
	admin := users.addUser("Lan", "lan@example.com", "lan")
	member := users.addUser("Minh", "minh@example.com", "minh")

	_, err := service.CreateGroup(context.Background(), domain.CreateGroupRequest{}, admin.ID.String())
	require.NoError(t, err)
	_, err = service.AddMember(context.Background(), domain.MemberRequest{Username: "minh"}, admin.ID.String())
	require.NoError(t, err)

	err = service.LeaveGroup(context.Background(), admin.ID.String())
	assert.ErrorIs(t, err, domain.ErrAdminCannotLeave)

	err = service.LeaveGroup(context.Background(), member.ID.String())
	require.NoError(t, err)
	assert.Nil(t, member.GroupID)
}

func TestDeleteGroupDetachesMembers(t *testing.T) {
	service, users, groups := newTestGroupService()
	admin := users.addUser("Lan", "lan@example.com", "lan")
	member := users.addUser("Minh", "minh@example.com", "minh")

	_, err := service.CreateGroup(context.Background(), domain.CreateGroupRequest{}, admin.ID.String())
	require.NoError(t, err)
	_, err = service.AddMember(context.Background(), domain.MemberRequest{Username: "minh"}, admin.ID.String())
	require.NoError(t, err)

	err = service.DeleteGroup(context.Background(), member.ID.String())
	assert.ErrorIs(t, err, domain.ErrOnlyAdminDeletes)

	err = service.DeleteGroup(context.Background(), admin.ID.String())
	require.NoError(t, err)
	assert.Empty(t, groups.groups)
	assert.Nil(t, admin.GroupID)
	assert.Nil(t, member.GroupID)
}
