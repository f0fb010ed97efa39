package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"strconv"
	"time"

	employeeerrors "go-booking/internal/employee/errors"
	"go-booking/internal/shared/apperror"
	"go-booking/internal/shared/contextutil"
	"go-booking/internal/shared/counter"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// NIK issuance: counter value n maps to NIK 111110+n, so the first employee
// gets 111111 and every next one increments the previous.
const nikBase = 111110

const NikCounterType = "employee_nik"

const OptionsCacheKey = "employees:options"

type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetOptions(ctx context.Context) ([]EmployeeResponse, error)
	GetByGuid(ctx context.Context, guid string) (EmployeeResponse, error)
	GetDetails(ctx context.Context) ([]EmployeeEducationResponse, error)
	Update(ctx context.Context, guid string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, guid string) error
}

type service struct {
	db      *sql.DB
	repo    Repository
	counter counter.Repository
	rdb     *redis.Client
	sf      *singleflight.Group
	logger  *zap.Logger
}

func NewService(db *sql.DB, repo Repository, counterRepo counter.Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		counter: counterRepo,
		rdb:     rdb,
		sf:      &singleflight.Group{},
		logger:  l,
	}
}

func FormatNik(counterValue int64) string {
	return strconv.FormatInt(nikBase+counterValue, 10)
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
	)

	birthDate, hiringDate, gender, err := parseProfile(req.BirthDate, req.HiringDate, req.Gender)
	if err != nil {
		s.logger.Warn("create employee validation failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	nextVal, err := s.counter.GetNextValue(ctx, NikCounterType)
	if err != nil {
		s.logger.Error("create employee nik issuance failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	empl := &Employee{
		ID:          uuid.New(),
		Nik:         FormatNik(nextVal),
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		BirthDate:   birthDate,
		Gender:      gender,
		HiringDate:  hiringDate,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
	}

	if err := qtx.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create employee commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateOptionsCache(ctx)

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_guid", empl.ID.String()),
		zap.String("nik", empl.Nik),
	)

	return mapToResponse(*empl), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	employees, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(employees), nil
}

func (s *service) GetOptions(ctx context.Context) ([]EmployeeResponse, error) {
	// 1. Cek Redis
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, OptionsCacheKey).Result(); err == nil {
			var resp []EmployeeResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// 2. Singleflight agar traffic tinggi tidak menumpuk query yang sama
	v, err, _ := s.sf.Do(OptionsCacheKey, func() (interface{}, error) {
		employees, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := mapToListResponse(employees)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, OptionsCacheKey, jsonData, 1*time.Hour)
			}
		}

		return resp, nil
	})

	if err != nil {
		return nil, err
	}

	return v.([]EmployeeResponse), nil
}

func (s *service) GetByGuid(ctx context.Context, guid string) (EmployeeResponse, error) {
	if _, err := uuid.Parse(guid); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	empl, err := s.repo.FindByGuid(ctx, guid)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*empl), nil
}

func (s *service) GetDetails(ctx context.Context) ([]EmployeeEducationResponse, error) {
	rows, err := s.repo.FindAllWithEducation(ctx)
	if err != nil {
		s.logger.Error("get employee details failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	resp := make([]EmployeeEducationResponse, len(rows))
	for i, row := range rows {
		fullName := row.FirstName
		if row.LastName != "" {
			fullName = row.FirstName + " " + row.LastName
		}
		resp[i] = EmployeeEducationResponse{
			Guid:           row.ID,
			Nik:            row.Nik,
			FullName:       fullName,
			BirthDate:      row.BirthDate.Format("2006-01-02"),
			Gender:         row.Gender,
			HiringDate:     row.HiringDate.Format("2006-01-02"),
			Email:          row.Email,
			PhoneNumber:    row.PhoneNumber,
			Major:          row.Major,
			Degree:         row.Degree,
			Gpa:            row.Gpa,
			UniversityName: row.UniversityName,
		}
	}
	return resp, nil
}

func (s *service) Update(ctx context.Context, guid string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	s.logger.Debug("update employee requested", zap.String("employee_guid", guid))

	if _, err := uuid.Parse(guid); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	birthDate, hiringDate, gender, err := parseProfile(req.BirthDate, req.HiringDate, req.Gender)
	if err != nil {
		return EmployeeResponse{}, err
	}

	exists, err := s.repo.IsExist(ctx, guid)
	if err != nil {
		return EmployeeResponse{}, err
	}
	if !exists {
		return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
	}

	// CreatedAt asli dipertahankan; NIK tidak pernah berubah setelah terbit
	empl, err := s.repo.FindByGuid(ctx, guid)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	empl.FirstName = req.FirstName
	empl.LastName = req.LastName
	empl.BirthDate = birthDate
	empl.Gender = gender
	empl.HiringDate = hiringDate
	empl.Email = req.Email
	empl.PhoneNumber = req.PhoneNumber

	if err := s.repo.Update(ctx, empl); err != nil {
		s.logger.Error("update employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.invalidateOptionsCache(ctx)

	s.logger.Info("update employee success", zap.String("employee_guid", guid))
	return mapToResponse(*empl), nil
}

func (s *service) Delete(ctx context.Context, guid string) error {
	if _, err := uuid.Parse(guid); err != nil {
		return employeeerrors.ErrInvalidEmployeeID
	}

	exists, err := s.repo.IsExist(ctx, guid)
	if err != nil {
		return err
	}
	if !exists {
		return employeeerrors.ErrEmployeeNotFound
	}

	if err := s.repo.Delete(ctx, guid); err != nil {
		s.logger.Error("delete employee persist failed", zap.Error(err))
		return employeeerrors.ErrEmployeeNotDeleted
	}

	s.invalidateOptionsCache(ctx)

	s.logger.Info("delete employee success", zap.String("employee_guid", guid))
	return nil
}

func (s *service) invalidateOptionsCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, OptionsCacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate employee options cache",
			zap.Error(err),
			zap.String("key", OptionsCacheKey),
		)
	}
}

func parseProfile(birthDate, hiringDate string, gender *int16) (time.Time, time.Time, Gender, error) {
	birth, err := parseDate(birthDate)
	if err != nil {
		return time.Time{}, time.Time{}, 0, err
	}
	hiring, err := parseDate(hiringDate)
	if err != nil {
		return time.Time{}, time.Time{}, 0, err
	}
	if gender == nil || (*gender != int16(GenderFemale) && *gender != int16(GenderMale)) {
		return time.Time{}, time.Time{}, 0, apperror.InvalidField("Gender")
	}
	return birth, hiring, Gender(*gender), nil
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, employeeerrors.ErrInvalidDateFormat
	}
	return t, nil
}

func mapToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		Guid:        e.ID.String(),
		Nik:         e.Nik,
		FirstName:   e.FirstName,
		LastName:    e.LastName,
		BirthDate:   e.BirthDate.Format("2006-01-02"),
		Gender:      int16(e.Gender),
		HiringDate:  e.HiringDate.Format("2006-01-02"),
		Email:       e.Email,
		PhoneNumber: e.PhoneNumber,
	}
}

func mapToListResponse(employees []Employee) []EmployeeResponse {
	resp := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		resp[i] = mapToResponse(e)
	}
	return resp
}
