package education

import (
	"context"
	"errors"

	educationerrors "go-booking/internal/education/errors"
	employeeerrors "go-booking/internal/employee/errors"
	universityerrors "go-booking/internal/university/errors"

	"go-booking/internal/employee"
	"go-booking/internal/university"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	Create(ctx context.Context, req CreateEducationRequest) (EducationResponse, error)
	GetAll(ctx context.Context) ([]EducationResponse, error)
	GetByGuid(ctx context.Context, guid string) (EducationResponse, error)
	Update(ctx context.Context, guid string, req UpdateEducationRequest) (EducationResponse, error)
	Delete(ctx context.Context, guid string) error
}

type service struct {
	repo           Repository
	employeeRepo   employee.Repository
	universityRepo university.Repository
	logger         *zap.Logger
}

func NewService(
	repo Repository,
	employeeRepo employee.Repository,
	universityRepo university.Repository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("education.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("education.service")
	}
	return &service{
		repo:           repo,
		employeeRepo:   employeeRepo,
		universityRepo: universityRepo,
		logger:         l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEducationRequest) (EducationResponse, error) {
	employeeGuid, err := uuid.Parse(req.EmployeeGuid)
	if err != nil {
		return EducationResponse{}, employeeerrors.ErrInvalidEmployeeID
	}
	universityGuid, err := uuid.Parse(req.UniversityGuid)
	if err != nil {
		return EducationResponse{}, universityerrors.ErrInvalidUniversityID
	}

	// Education selalu menempel pada Employee yang sudah ada
	exists, err := s.employeeRepo.IsExist(ctx, req.EmployeeGuid)
	if err != nil {
		return EducationResponse{}, err
	}
	if !exists {
		return EducationResponse{}, employeeerrors.ErrEmployeeNotFound
	}

	exists, err = s.universityRepo.IsExist(ctx, req.UniversityGuid)
	if err != nil {
		return EducationResponse{}, err
	}
	if !exists {
		return EducationResponse{}, universityerrors.ErrUniversityNotFound
	}

	e := &Education{
		ID:           employeeGuid,
		Major:        req.Major,
		Degree:       req.Degree,
		Gpa:          req.Gpa,
		UniversityID: universityGuid,
	}

	if err := s.repo.Create(ctx, e); err != nil {
		s.logger.Error("create education persist failed", zap.Error(err))
		return EducationResponse{}, err
	}

	s.logger.Info("create education success", zap.String("education_guid", e.ID.String()))
	return mapToResponse(*e), nil
}

func (s *service) GetAll(ctx context.Context) ([]EducationResponse, error) {
	educations, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(educations), nil
}

func (s *service) GetByGuid(ctx context.Context, guid string) (EducationResponse, error) {
	if _, err := uuid.Parse(guid); err != nil {
		return EducationResponse{}, educationerrors.ErrInvalidEducationID
	}

	e, err := s.repo.FindByGuid(ctx, guid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EducationResponse{}, educationerrors.ErrEducationNotFound
		}
		return EducationResponse{}, err
	}
	return mapToResponse(*e), nil
}

func (s *service) Update(ctx context.Context, guid string, req UpdateEducationRequest) (EducationResponse, error) {
	if _, err := uuid.Parse(guid); err != nil {
		return EducationResponse{}, educationerrors.ErrInvalidEducationID
	}
	universityGuid, err := uuid.Parse(req.UniversityGuid)
	if err != nil {
		return EducationResponse{}, universityerrors.ErrInvalidUniversityID
	}

	exists, err := s.repo.IsExist(ctx, guid)
	if err != nil {
		return EducationResponse{}, err
	}
	if !exists {
		return EducationResponse{}, educationerrors.ErrEducationNotFound
	}

	exists, err = s.universityRepo.IsExist(ctx, req.UniversityGuid)
	if err != nil {
		return EducationResponse{}, err
	}
	if !exists {
		return EducationResponse{}, universityerrors.ErrUniversityNotFound
	}

	e, err := s.repo.FindByGuid(ctx, guid)
	if err != nil {
		return EducationResponse{}, err
	}

	e.Major = req.Major
	e.Degree = req.Degree
	e.Gpa = req.Gpa
	e.UniversityID = universityGuid

	if err := s.repo.Update(ctx, e); err != nil {
		s.logger.Error("update education persist failed", zap.Error(err))
		return EducationResponse{}, err
	}

	return mapToResponse(*e), nil
}

func (s *service) Delete(ctx context.Context, guid string) error {
	if _, err := uuid.Parse(guid); err != nil {
		return educationerrors.ErrInvalidEducationID
	}

	exists, err := s.repo.IsExist(ctx, guid)
	if err != nil {
		return err
	}
	if !exists {
		return educationerrors.ErrEducationNotFound
	}

	if err := s.repo.Delete(ctx, guid); err != nil {
		s.logger.Error("delete education persist failed", zap.Error(err))
		return educationerrors.ErrEducationNotDeleted
	}

	return nil
}

func mapToResponse(e Education) EducationResponse {
	return EducationResponse{
		Guid:           e.ID.String(),
		Major:          e.Major,
		Degree:         e.Degree,
		Gpa:            e.Gpa,
		UniversityGuid: e.UniversityID.String(),
	}
}

func mapToListResponse(educations []Education) []EducationResponse {
	resp := make([]EducationResponse, len(educations))
	for i, e := range educations {
		resp[i] = mapToResponse(e)
	}
	return resp
}
