package group

import (
	"context"
	"errors"
	"strings"

	"DTCL-Backend/domain"
	"DTCL-Backend/entities"
	"DTCL-Backend/pkg/user"

	"gorm.io/gorm"
)

type (
	GroupService interface {
		CreateGroup(ctx context.Context, req domain.CreateGroupRequest, userID string) (domain.GroupResponse, error)
		GetGroup(ctx context.Context, userID string) (domain.GroupResponse, error)
		AddMember(ctx context.Context, req domain.MemberRequest, userID string) (domain.GroupResponse, error)
		RemoveMember(ctx context.Context, req domain.MemberRequest, userID string) (domain.GroupResponse, error)
		LeaveGroup(ctx context.Context, userID string) error
		DeleteGroup(ctx context.Context, userID string) error
	}

	groupService struct {
		groupRepository GroupRepository
		userRepository  user.UserRepository
	}
)

func NewGroupService(groupRepository GroupRepository, userRepository user.UserRepository) GroupService {
	return &groupService{
		groupRepository: groupRepository,
		userRepository:  userRepository,
	}
}

func toMemberResponse(u *entities.User) domain.GroupMemberResponse {
	return domain.GroupMemberResponse{
		ID:       u.ID.String(),
		Name:     u.Name,
		Email:    u.Email,
		Username: u.Username,
		Avatar:   u.Avatar,
	}
}

func toGroupResponse(g *entities.Group) domain.GroupResponse {
	res := domain.GroupResponse{
		ID:      g.ID.String(),
		Name:    g.Name,
		Members: make([]domain.GroupMemberResponse, 0, len(g.Members)),
	}
	if g.Admin != nil {
		admin := toMemberResponse(g.Admin)
		res.Admin = &admin
	}
	for _, m := range g.Members {
		res.Members = append(res.Members, toMemberResponse(m))
	}
	return res
}

// findMember resolves the payload against username first, then against a
// case-folded email.
func (s *groupService) findMember(ctx context.Context, identifier string) (*entities.User, error) {
	target, err := s.userRepository.GetUserByUsername(ctx, identifier)
	if err == nil {
		return target, nil
	}
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
	return target, nil
}

func (s *groupService) CreateGroup(ctx context.Context, req domain.CreateGroupRequest, userID string) (domain.GroupResponse, error) {
	u, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return domain.GroupResponse{}, domain.ErrTokenUserNotFound
	}
	if u.GroupID != nil {
		return domain.GroupResponse{}, domain.ErrAlreadyInGroup
	}

	name := req.Name
	if name == "" {
		name = domain.DefaultGroupName
	}

	g := &entities.Group{
		Name:    name,
		AdminID: u.ID,
	}
	if err := s.groupRepository.CreateGroup(ctx, g, u); err != nil {
		return domain.GroupResponse{}, err
	}

	full, err := s.groupRepository.GetGroupWithMembers(ctx, g.ID.String())
	if err != nil {
		return domain.GroupResponse{}, err
	}
	return toGroupResponse(full), nil
}

func (s *groupService) GetGroup(ctx context.Context, userID string) (domain.GroupResponse, error) {
	u, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return domain.GroupResponse{}, domain.ErrTokenUserNotFound
	}
	if u.GroupID == nil {
		return domain.GroupResponse{}, domain.ErrNoGroup
	}

	g, err := s.groupRepository.GetGroupWithMembers(ctx, u.GroupID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.GroupResponse{}, domain.ErrGroupNotFound
		}
		return domain.GroupResponse{}, err
	}
	return toGroupResponse(g), nil
}

func (s *groupService) AddMember(ctx context.Context, req domain.MemberRequest, userID string) (domain.GroupResponse, error) {
	if req.Username == "" {
		return domain.GroupResponse{}, domain.ErrAddMemberMissing
	}

	u, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return domain.GroupResponse{}, domain.ErrTokenUserNotFound
	}
	if u.GroupID == nil {
		return domain.GroupResponse{}, domain.ErrNoGroup
	}

	target, err := s.findMember(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.GroupResponse{}, domain.ErrMemberNotFound
		}
		return domain.GroupResponse{}, err
	}
	if target.GroupID != nil {
		return domain.GroupResponse{}, domain.ErrTargetInGroup
	}

	if err := s.groupRepository.AddMember(ctx, u.GroupID.String(), target); err != nil {
		return domain.GroupResponse{}, err
	}

	g, err := s.groupRepository.GetGroupWithMembers(ctx, u.GroupID.String())
	if err != nil {
		return domain.GroupResponse{}, err
	}
	return toGroupResponse(g), nil
}

func (s *groupService) RemoveMember(ctx context.Context, req domain.MemberRequest, userID string) (domain.GroupResponse, error) {
	if req.Username == "" {
		return domain.GroupResponse{}, domain.ErrRemoveMemberMissing
	}

	u, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return domain.GroupResponse{}, domain.ErrTokenUserNotFound
	}
	if u.GroupID == nil {
		return domain.GroupResponse{}, domain.ErrNoGroup
	}

	target, err := s.findMember(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.GroupResponse{}, domain.ErrMemberNotFound
		}
		return domain.GroupResponse{}, err
	}
	if target.GroupID == nil || *target.GroupID != *u.GroupID {
		return domain.GroupResponse{}, domain.ErrTargetNotInGroup
	}

	g, err := s.groupRepository.GetGroupByID(ctx, u.GroupID.String())
	if err != nil {
		return domain.GroupResponse{}, domain.ErrGroupNotFound
	}
	if g.AdminID == target.ID {
		return domain.GroupResponse{}, domain.ErrCannotRemoveAdmin
	}

	if err := s.groupRepository.RemoveMember(ctx, target); err != nil {
		return domain.GroupResponse{}, err
	}

	full, err := s.groupRepository.GetGroupWithMembers(ctx, u.GroupID.String())
	if err != nil {
		return domain.GroupResponse{}, err
	}
	return toGroupResponse(full), nil
}

func (s *groupService) LeaveGroup(ctx context.Context, userID string) error {
	u, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return domain.ErrTokenUserNotFound
	}
	if u.GroupID == nil {
		return domain.ErrNoGroup
	}

	g, err := s.groupRepository.GetGroupByID(ctx, u.GroupID.String())
	if err != nil {
		return domain.ErrGroupNotFound
	}
	if g.AdminID == u.ID {
		return domain.ErrAdminCannotLeave
	}

	return s.groupRepository.RemoveMember(ctx, u)
}

func (s *groupService) DeleteGroup(ctx context.Context, userID string) error {
	u, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return domain.ErrTokenUserNotFound
	}
	if u.GroupID == nil {
		return domain.ErrNoGroup
	}

	g, err := s.groupRepository.GetGroupByID(ctx, u.GroupID.String())
	if err != nil {
		return domain.ErrGroupNotFound
	}
	if g.AdminID != u.ID {
		return domain.ErrOnlyAdminDeletes
	}

	return s.groupRepository.DeleteGroup(ctx, g.ID.String())
}
