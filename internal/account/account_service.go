package account

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	accounterrors "go-booking/internal/account/errors"
	"go-booking/internal/education"
	"go-booking/internal/employee"
	employeeerrors "go-booking/internal/employee/errors"
	"go-booking/internal/events"
	"go-booking/internal/mailer"
	"go-booking/internal/messaging/kafka"
	"go-booking/internal/role"
	"go-booking/internal/shared/apperror"
	"go-booking/internal/shared/contextutil"
	"go-booking/internal/shared/counter"
	"go-booking/internal/university"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Setiap akun baru otomatis mendapat role ini. Role harus sudah di-seed.
const defaultRoleName = "User"

const otpTTL = 5 * time.Minute

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (RegisterResponse, error)
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	ForgetPassword(ctx context.Context, req ForgetPasswordRequest) error
	ChangePassword(ctx context.Context, req ChangePasswordRequest) error
	GetAll(ctx context.Context) ([]AccountResponse, error)
	GetByGuid(ctx context.Context, guid string) (AccountResponse, error)
	Create(ctx context.Context, req CreateAccountRequest) (AccountResponse, error)
	Update(ctx context.Context, guid string, req UpdateAccountRequest) (AccountResponse, error)
	Delete(ctx context.Context, guid string) error
}

type Deps struct {
	DB           *sql.DB
	Accounts     Repository
	AccountRoles RoleRepository
	Roles        role.Repository
	Employees    employee.Repository
	Universities university.Repository
	Educations   education.Repository
	Counter      counter.Repository
	Outbox       kafka.OutboxRepository
	Mail         mailer.Dispatcher
	Tokens       TokenIssuer
}

type service struct {
	deps   Deps
	logger *zap.Logger
}

func NewService(deps Deps, logger ...*zap.Logger) Service {
	l := zap.L().Named("account.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("account.service")
	}
	return &service{deps: deps, logger: l}
}

// Register membuat employee, education, university (kalau belum ada),
// account, dan role default dalam satu transaksi. Event account_registered
// ikut ditulis ke outbox di transaksi yang sama.
func (s *service) Register(ctx context.Context, req RegisterRequest) (RegisterResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("register requested", zap.String("request_id", rid), zap.String("email", req.Email))

	if req.Password != req.ConfirmPassword {
		return RegisterResponse{}, accounterrors.ErrPasswordMismatch
	}

	birthDate, err := parseDate(req.BirthDate, "BirthDate")
	if err != nil {
		return RegisterResponse{}, err
	}
	hiringDate, err := parseDate(req.HiringDate, "HiringDate")
	if err != nil {
		return RegisterResponse{}, err
	}
	if req.Gender == nil || (*req.Gender != int16(employee.GenderFemale) && *req.Gender != int16(employee.GenderMale)) {
		return RegisterResponse{}, apperror.InvalidField("Gender")
	}

	hashed, err := HashPassword(req.Password)
	if err != nil {
		s.logger.Error("register hash password failed", zap.Error(err))
		return RegisterResponse{}, err
	}

	defaultRole, err := s.deps.Roles.FindByName(ctx, defaultRoleName)
	if err != nil {
		s.logger.Error("register default role lookup failed", zap.Error(err))
		return RegisterResponse{}, err
	}

	tx, err := s.deps.DB.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("register begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return RegisterResponse{}, err
	}
	defer tx.Rollback()

	emplTx := s.deps.Employees.WithTx(tx)
	uniTx := s.deps.Universities.WithTx(tx)
	eduTx := s.deps.Educations.WithTx(tx)
	accTx := s.deps.Accounts.WithTx(tx)
	accRoleTx := s.deps.AccountRoles.WithTx(tx)
	outboxTx := s.deps.Outbox.WithTx(tx)

	nextVal, err := s.deps.Counter.GetNextValue(ctx, employee.NikCounterType)
	if err != nil {
		s.logger.Error("register nik issuance failed", zap.Error(err))
		return RegisterResponse{}, err
	}

	empl := &employee.Employee{
		ID:          uuid.New(),
		Nik:         employee.FormatNik(nextVal),
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		BirthDate:   birthDate,
		Gender:      employee.Gender(*req.Gender),
		HiringDate:  hiringDate,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
	}
	if err := emplTx.Create(ctx, empl); err != nil {
		s.logger.Error("register create employee failed", zap.Error(err))
		return RegisterResponse{}, err
	}

	uni, err := uniTx.FindByCodeAndName(ctx, req.UniversityCode, req.UniversityName)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return RegisterResponse{}, err
		}
		uni = &university.University{
			ID:   uuid.New(),
			Code: req.UniversityCode,
			Name: req.UniversityName,
		}
		if err := uniTx.Create(ctx, uni); err != nil {
			s.logger.Error("register create university failed", zap.Error(err))
			return RegisterResponse{}, err
		}
	}

	edu := &education.Education{
		ID:           empl.ID,
		Major:        req.Major,
		Degree:       req.Degree,
		Gpa:          req.Gpa,
		UniversityID: uni.ID,
	}
	if err := eduTx.Create(ctx, edu); err != nil {
		s.logger.Error("register create education failed", zap.Error(err))
		return RegisterResponse{}, err
	}

	acc := &Account{
		ID:          empl.ID,
		Password:    hashed,
		Otp:         0,
		IsUsed:      true,
		ExpiredTime: time.Now(),
	}
	if err := accTx.Create(ctx, acc); err != nil {
		s.logger.Error("register create account failed", zap.Error(err))
		return RegisterResponse{}, err
	}

	accRole := &AccountRole{
		ID:        uuid.New(),
		AccountID: acc.ID,
		RoleID:    defaultRole.ID,
	}
	if err := accRoleTx.Create(ctx, accRole); err != nil {
		s.logger.Error("register create account role failed", zap.Error(err))
		return RegisterResponse{}, err
	}

	event := events.AccountRegisteredEvent{
		EventType:  events.AccountRegisteredEventType,
		AccountID:  acc.ID.String(),
		Email:      empl.Email,
		FullName:   empl.FullName(),
		OccurredAt: time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return RegisterResponse{}, err
	}
	outboxEvent := kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     rid,
		AggregateType: "account",
		AggregateID:   acc.ID.String(),
		EventType:     events.AccountRegisteredEventType,
		Topic:         events.AccountRegisteredTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}
	if err := kafka.ValidateOutboxEvent(outboxEvent); err != nil {
		return RegisterResponse{}, err
	}
	if err := outboxTx.Create(ctx, outboxEvent); err != nil {
		s.logger.Error("register outbox write failed", zap.Error(err))
		return RegisterResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("register commit failed", zap.String("request_id", rid), zap.Error(err))
		return RegisterResponse{}, err
	}

	s.logger.Info("register success",
		zap.String("request_id", rid),
		zap.String("account_guid", acc.ID.String()),
		zap.String("nik", empl.Nik),
	)

	return RegisterResponse{
		Guid:     acc.ID.String(),
		Nik:      empl.Nik,
		FullName: empl.FullName(),
		Email:    empl.Email,
	}, nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	empl, err := s.deps.Employees.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LoginResponse{}, accounterrors.ErrEmailNotRegistered
		}
		return LoginResponse{}, err
	}

	acc, err := s.deps.Accounts.FindByGuid(ctx, empl.ID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LoginResponse{}, accounterrors.ErrAccountNotFound
		}
		return LoginResponse{}, err
	}
	if acc.IsDeleted {
		return LoginResponse{}, accounterrors.ErrAccountNotFound
	}

	if !VerifyPassword(acc.Password, req.Password) {
		s.logger.Warn("login rejected", zap.String("email", req.Email))
		return LoginResponse{}, accounterrors.ErrInvalidCredential
	}

	roles, err := s.deps.AccountRoles.FindRoleNamesByAccountGuid(ctx, acc.ID.String())
	if err != nil {
		return LoginResponse{}, err
	}

	token, err := s.deps.Tokens.Issue(TokenClaims{
		Guid:     acc.ID.String(),
		Nik:      empl.Nik,
		FullName: empl.FullName(),
		Email:    empl.Email,
		Roles:    roles,
	})
	if err != nil {
		s.logger.Error("login token issuance failed", zap.Error(err))
		return LoginResponse{}, accounterrors.ErrTokenGeneration
	}

	s.logger.Info("login success", zap.String("account_guid", acc.ID.String()))
	return LoginResponse{Token: token}, nil
}

func (s *service) ForgetPassword(ctx context.Context, req ForgetPasswordRequest) error {
	empl, err := s.deps.Employees.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return accounterrors.ErrEmailNotRegistered
		}
		return err
	}

	acc, err := s.deps.Accounts.FindByGuid(ctx, empl.ID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return accounterrors.ErrAccountNotFound
		}
		return err
	}

	otp := GenerateOtp()
	acc.Otp = otp
	acc.IsUsed = false
	acc.ExpiredTime = time.Now().Add(otpTTL)

	if err := s.deps.Accounts.Update(ctx, acc); err != nil {
		s.logger.Error("forget password persist failed", zap.Error(err))
		return accounterrors.ErrAccountNotUpdated
	}

	// Pengiriman mail fire-and-forget: OTP sudah tersimpan, kegagalan
	// SMTP tidak menggagalkan permintaan.
	if err := s.deps.Mail.SendOtp(ctx, empl.Email, empl.FullName(), otp); err != nil {
		s.logger.Error("forget password mail failed",
			zap.String("account_guid", acc.ID.String()),
			zap.Error(err),
		)
	}

	s.logger.Info("forget password otp issued", zap.String("account_guid", acc.ID.String()))
	return nil
}

// ChangePassword memeriksa OTP dengan urutan tetap: cocok dulu, lalu
// status pemakaian, baru kedaluwarsa.
func (s *service) ChangePassword(ctx context.Context, req ChangePasswordRequest) error {
	empl, err := s.deps.Employees.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return accounterrors.ErrEmailNotRegistered
		}
		return err
	}

	acc, err := s.deps.Accounts.FindByGuid(ctx, empl.ID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return accounterrors.ErrAccountNotFound
		}
		return err
	}

	if req.Otp == nil || acc.Otp != *req.Otp {
		return accounterrors.ErrOtpMismatch
	}
	if acc.IsUsed {
		return accounterrors.ErrOtpAlreadyUsed
	}
	if time.Now().After(acc.ExpiredTime) {
		return accounterrors.ErrOtpExpired
	}

	hashed, err := HashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	acc.Password = hashed
	acc.IsUsed = true

	if err := s.deps.Accounts.Update(ctx, acc); err != nil {
		s.logger.Error("change password persist failed", zap.Error(err))
		return accounterrors.ErrAccountNotUpdated
	}

	s.logger.Info("change password success", zap.String("account_guid", acc.ID.String()))
	return nil
}

func (s *service) GetAll(ctx context.Context) ([]AccountResponse, error) {
	accounts, err := s.deps.Accounts.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(accounts), nil
}

func (s *service) GetByGuid(ctx context.Context, guid string) (AccountResponse, error) {
	if _, err := uuid.Parse(guid); err != nil {
		return AccountResponse{}, accounterrors.ErrInvalidAccountID
	}

	acc, err := s.deps.Accounts.FindByGuid(ctx, guid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AccountResponse{}, accounterrors.ErrAccountNotFound
		}
		return AccountResponse{}, err
	}
	return mapToResponse(*acc), nil
}

func (s *service) Create(ctx context.Context, req CreateAccountRequest) (AccountResponse, error) {
	emplGuid, err := uuid.Parse(req.EmployeeGuid)
	if err != nil {
		return AccountResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	emplExists, err := s.deps.Employees.IsExist(ctx, req.EmployeeGuid)
	if err != nil {
		return AccountResponse{}, err
	}
	if !emplExists {
		return AccountResponse{}, employeeerrors.ErrEmployeeNotFound
	}

	accExists, err := s.deps.Accounts.IsExist(ctx, req.EmployeeGuid)
	if err != nil {
		return AccountResponse{}, err
	}
	if accExists {
		return AccountResponse{}, accounterrors.ErrAccountAlreadyExists
	}

	hashed, err := HashPassword(req.Password)
	if err != nil {
		return AccountResponse{}, err
	}

	acc := &Account{
		ID:          emplGuid,
		Password:    hashed,
		Otp:         0,
		IsUsed:      true,
		ExpiredTime: time.Now(),
	}
	if err := s.deps.Accounts.Create(ctx, acc); err != nil {
		s.logger.Error("create account persist failed", zap.Error(err))
		return AccountResponse{}, err
	}

	return mapToResponse(*acc), nil
}

func (s *service) Update(ctx context.Context, guid string, req UpdateAccountRequest) (AccountResponse, error) {
	if _, err := uuid.Parse(guid); err != nil {
		return AccountResponse{}, accounterrors.ErrInvalidAccountID
	}

	exists, err := s.deps.Accounts.IsExist(ctx, guid)
	if err != nil {
		return AccountResponse{}, err
	}
	if !exists {
		return AccountResponse{}, accounterrors.ErrAccountNotFound
	}

	// CreatedAt dan state OTP dipertahankan, hanya password yang diganti
	acc, err := s.deps.Accounts.FindByGuid(ctx, guid)
	if err != nil {
		return AccountResponse{}, err
	}

	hashed, err := HashPassword(req.Password)
	if err != nil {
		return AccountResponse{}, err
	}
	acc.Password = hashed

	if err := s.deps.Accounts.Update(ctx, acc); err != nil {
		s.logger.Error("update account persist failed", zap.Error(err))
		return AccountResponse{}, accounterrors.ErrAccountNotUpdated
	}

	return mapToResponse(*acc), nil
}

func (s *service) Delete(ctx context.Context, guid string) error {
	if _, err := uuid.Parse(guid); err != nil {
		return accounterrors.ErrInvalidAccountID
	}

	exists, err := s.deps.Accounts.IsExist(ctx, guid)
	if err != nil {
		return err
	}
	if !exists {
		return accounterrors.ErrAccountNotFound
	}

	if err := s.deps.AccountRoles.DeleteByAccountGuid(ctx, guid); err != nil {
		s.logger.Error("delete account roles failed", zap.Error(err))
		return accounterrors.ErrAccountNotDeleted
	}
	if err := s.deps.Accounts.Delete(ctx, guid); err != nil {
		s.logger.Error("delete account persist failed", zap.Error(err))
		return accounterrors.ErrAccountNotDeleted
	}

	s.logger.Info("delete account success", zap.String("account_guid", guid))
	return nil
}

func parseDate(v, field string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, apperror.InvalidField(field)
	}
	return t, nil
}

func mapToResponse(a Account) AccountResponse {
	return AccountResponse{
		Guid:        a.ID.String(),
		IsUsed:      a.IsUsed,
		ExpiredTime: a.ExpiredTime.Format(time.RFC3339),
		IsDeleted:   a.IsDeleted,
	}
}

func mapToListResponse(accounts []Account) []AccountResponse {
	resp := make([]AccountResponse, len(accounts))
	for i, a := range accounts {
		resp[i] = mapToResponse(a)
	}
	return resp
}
