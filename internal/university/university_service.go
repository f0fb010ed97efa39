package university

import (
	"context"
	"errors"

	universityerrors "go-booking/internal/university/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	Create(ctx context.Context, req CreateUniversityRequest) (UniversityResponse, error)
	GetAll(ctx context.Context) ([]UniversityResponse, error)
	GetByGuid(ctx context.Context, guid string) (UniversityResponse, error)
	Update(ctx context.Context, guid string, req UpdateUniversityRequest) (UniversityResponse, error)
	Delete(ctx context.Context, guid string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("university.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("university.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateUniversityRequest) (UniversityResponse, error) {
	// (code, name) tidak pernah diduplikasi
	if existing, err := s.repo.FindByCodeAndName(ctx, req.Code, req.Name); err == nil && existing != nil {
		return UniversityResponse{}, universityerrors.ErrUniversityAlreadyExists
	}

	u := &University{
		ID:   uuid.New(),
		Code: req.Code,
		Name: req.Name,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		s.logger.Error("create university persist failed", zap.Error(err))
		return UniversityResponse{}, err
	}

	s.logger.Info("create university success", zap.String("university_guid", u.ID.String()))
	return mapToResponse(*u), nil
}

func (s *service) GetAll(ctx context.Context) ([]UniversityResponse, error) {
	universities, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(universities), nil
}

func (s *service) GetByGuid(ctx context.Context, guid string) (UniversityResponse, error) {
	if _, err := uuid.Parse(guid); err != nil {
		return UniversityResponse{}, universityerrors.ErrInvalidUniversityID
	}

	u, err := s.repo.FindByGuid(ctx, guid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UniversityResponse{}, universityerrors.ErrUniversityNotFound
		}
		return UniversityResponse{}, err
	}
	return mapToResponse(*u), nil
}

func (s *service) Update(ctx context.Context, guid string, req UpdateUniversityRequest) (UniversityResponse, error) {
	if _, err := uuid.Parse(guid); err != nil {
		return UniversityResponse{}, universityerrors.ErrInvalidUniversityID
	}

	exists, err := s.repo.IsExist(ctx, guid)
	if err != nil {
		return UniversityResponse{}, err
	}
	if !exists {
		return UniversityResponse{}, universityerrors.ErrUniversityNotFound
	}

	u, err := s.repo.FindByGuid(ctx, guid)
	if err != nil {
		return UniversityResponse{}, err
	}

	u.Code = req.Code
	u.Name = req.Name

	if err := s.repo.Update(ctx, u); err != nil {
		s.logger.Error("update university persist failed", zap.Error(err))
		return UniversityResponse{}, err
	}

	return mapToResponse(*u), nil
}

func (s *service) Delete(ctx context.Context, guid string) error {
	if _, err := uuid.Parse(guid); err != nil {
		return universityerrors.ErrInvalidUniversityID
	}

	exists, err := s.repo.IsExist(ctx, guid)
	if err != nil {
		return err
	}
	if !exists {
		return universityerrors.ErrUniversityNotFound
	}

	if err := s.repo.Delete(ctx, guid); err != nil {
		s.logger.Error("delete university persist failed", zap.Error(err))
		return universityerrors.ErrUniversityNotDeleted
	}

	return nil
}

func mapToResponse(u University) UniversityResponse {
	return UniversityResponse{
		Guid: u.ID.String(),
		Code: u.Code,
		Name: u.Name,
	}
}

func mapToListResponse(universities []University) []UniversityResponse {
	resp := make([]UniversityResponse, len(universities))
	for i, u := range universities {
		resp[i] = mapToResponse(u)
	}
	return resp
}
