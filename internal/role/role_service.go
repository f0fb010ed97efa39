package role

import (
	"context"
	"errors"
	"strings"

	roleerrors "go-booking/internal/role/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	Create(ctx context.Context, req CreateRoleRequest) (RoleResponse, error)
	GetAll(ctx context.Context) ([]RoleResponse, error)
	GetByGuid(ctx context.Context, guid string) (RoleResponse, error)
	Update(ctx context.Context, guid string, req UpdateRoleRequest) (RoleResponse, error)
	Delete(ctx context.Context, guid string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("role.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("role.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateRoleRequest) (RoleResponse, error) {
	r := &Role{
		ID:   uuid.New(),
		Name: req.Name,
	}

	if err := s.repo.Create(ctx, r); err != nil {
		s.logger.Error("create role persist failed", zap.Error(err))
		return RoleResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*r), nil
}

func (s *service) GetAll(ctx context.Context) ([]RoleResponse, error) {
	roles, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(roles), nil
}

func (s *service) GetByGuid(ctx context.Context, guid string) (RoleResponse, error) {
	if _, err := uuid.Parse(guid); err != nil {
		return RoleResponse{}, roleerrors.ErrInvalidRoleID
	}

	r, err := s.repo.FindByGuid(ctx, guid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RoleResponse{}, roleerrors.ErrRoleNotFound
		}
		return RoleResponse{}, err
	}
	return mapToResponse(*r), nil
}

func (s *service) Update(ctx context.Context, guid string, req UpdateRoleRequest) (RoleResponse, error) {
	if _, err := uuid.Parse(guid); err != nil {
		return RoleResponse{}, roleerrors.ErrInvalidRoleID
	}

	exists, err := s.repo.IsExist(ctx, guid)
	if err != nil {
		return RoleResponse{}, err
	}
	if !exists {
		return RoleResponse{}, roleerrors.ErrRoleNotFound
	}

	r, err := s.repo.FindByGuid(ctx, guid)
	if err != nil {
		return RoleResponse{}, err
	}

	r.Name = req.Name

	if err := s.repo.Update(ctx, r); err != nil {
		s.logger.Error("update role persist failed", zap.Error(err))
		return RoleResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*r), nil
}

func (s *service) Delete(ctx context.Context, guid string) error {
	if _, err := uuid.Parse(guid); err != nil {
		return roleerrors.ErrInvalidRoleID
	}

	exists, err := s.repo.IsExist(ctx, guid)
	if err != nil {
		return err
	}
	if !exists {
		return roleerrors.ErrRoleNotFound
	}

	if err := s.repo.Delete(ctx, guid); err != nil {
		s.logger.Error("delete role persist failed", zap.Error(err))
		return roleerrors.ErrRoleNotDeleted
	}

	return nil
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return roleerrors.ErrRoleAlreadyExists
	}
	if strings.Contains(strings.ToLower(err.Error()), "duplicate key value") {
		return roleerrors.ErrRoleAlreadyExists
	}

	return err
}

func mapToResponse(r Role) RoleResponse {
	return RoleResponse{
		Guid: r.ID.String(),
		Name: r.Name,
	}
}

func mapToListResponse(roles []Role) []RoleResponse {
	resp := make([]RoleResponse, len(roles))
	for i, r := range roles {
		resp[i] = mapToResponse(r)
	}
	return resp
}
