package booking

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	bookingerrors "go-booking/internal/booking/errors"
	"go-booking/internal/employee"
	employeeerrors "go-booking/internal/employee/errors"
	"go-booking/internal/events"
	"go-booking/internal/messaging/kafka"
	"go-booking/internal/room"
	roomerrors "go-booking/internal/room/errors"
	"go-booking/internal/shared/apperror"
	"go-booking/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	Create(ctx context.Context, req CreateBookingRequest) (BookingResponse, error)
	GetAll(ctx context.Context) ([]BookingResponse, error)
	GetByGuid(ctx context.Context, guid string) (BookingResponse, error)
	Update(ctx context.Context, guid string, req UpdateBookingRequest) (BookingResponse, error)
	Delete(ctx context.Context, guid string) error
	BookingsDetail(ctx context.Context) ([]BookingDetailResponse, error)
	BookingDetail(ctx context.Context, guid string) (BookingDetailResponse, error)
	BookingToday(ctx context.Context) ([]BookingDetailResponse, error)
	BookingDuration(ctx context.Context) ([]BookingLengthResponse, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	rooms     room.Repository
	employees employee.Repository
	outbox    kafka.OutboxRepository
	logger    *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	rooms room.Repository,
	employees employee.Repository,
	outbox kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("booking.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("booking.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		rooms:     rooms,
		employees: employees,
		outbox:    outbox,
		logger:    l,
	}
}

func (s *service) Create(ctx context.Context, req CreateBookingRequest) (BookingResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	startDate, endDate, status, err := parseSchedule(req.StartDate, req.EndDate, req.Status)
	if err != nil {
		return BookingResponse{}, err
	}

	roomExists, err := s.rooms.IsExist(ctx, req.RoomGuid)
	if err != nil {
		return BookingResponse{}, err
	}
	if !roomExists {
		return BookingResponse{}, roomerrors.ErrRoomNotFound
	}

	emplExists, err := s.employees.IsExist(ctx, req.EmployeeGuid)
	if err != nil {
		return BookingResponse{}, err
	}
	if !emplExists {
		return BookingResponse{}, employeeerrors.ErrEmployeeNotFound
	}

	roomGuid := uuid.MustParse(req.RoomGuid)
	emplGuid := uuid.MustParse(req.EmployeeGuid)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create booking begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return BookingResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	outboxTx := s.outbox.WithTx(tx)

	b := &Booking{
		ID:         uuid.New(),
		StartDate:  startDate,
		EndDate:    endDate,
		Status:     status,
		Remarks:    req.Remarks,
		RoomID:     roomGuid,
		EmployeeID: emplGuid,
	}
	if err := qtx.Create(ctx, b); err != nil {
		s.logger.Error("create booking persist failed", zap.Error(err))
		return BookingResponse{}, err
	}

	event := events.BookingCreatedEvent{
		EventType:  events.BookingCreatedEventType,
		BookingID:  b.ID.String(),
		RoomID:     b.RoomID.String(),
		EmployeeID: b.EmployeeID.String(),
		StartDate:  b.StartDate,
		EndDate:    b.EndDate,
		OccurredAt: time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return BookingResponse{}, err
	}
	outboxEvent := kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     rid,
		AggregateType: "booking",
		AggregateID:   b.ID.String(),
		EventType:     events.BookingCreatedEventType,
		Topic:         events.BookingCreatedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}
	if err := outboxTx.Create(ctx, outboxEvent); err != nil {
		s.logger.Error("create booking outbox write failed", zap.Error(err))
		return BookingResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create booking commit failed", zap.String("request_id", rid), zap.Error(err))
		return BookingResponse{}, err
	}

	s.logger.Info("create booking success",
		zap.String("request_id", rid),
		zap.String("booking_guid", b.ID.String()),
	)
	return mapToResponse(*b), nil
}

func (s *service) GetAll(ctx context.Context) ([]BookingResponse, error) {
	bookings, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(bookings), nil
}

func (s *service) GetByGuid(ctx context.Context, guid string) (BookingResponse, error) {
	if _, err := uuid.Parse(guid); err != nil {
		return BookingResponse{}, bookingerrors.ErrInvalidBookingID
	}

	b, err := s.repo.FindByGuid(ctx, guid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return BookingResponse{}, bookingerrors.ErrBookingNotFound
		}
		return BookingResponse{}, err
	}
	return mapToResponse(*b), nil
}

func (s *service) Update(ctx context.Context, guid string, req UpdateBookingRequest) (BookingResponse, error) {
	if _, err := uuid.Parse(guid); err != nil {
		return BookingResponse{}, bookingerrors.ErrInvalidBookingID
	}

	startDate, endDate, status, err := parseSchedule(req.StartDate, req.EndDate, req.Status)
	if err != nil {
		return BookingResponse{}, err
	}

	exists, err := s.repo.IsExist(ctx, guid)
	if err != nil {
		return BookingResponse{}, err
	}
	if !exists {
		return BookingResponse{}, bookingerrors.ErrBookingNotFound
	}

	roomExists, err := s.rooms.IsExist(ctx, req.RoomGuid)
	if err != nil {
		return BookingResponse{}, err
	}
	if !roomExists {
		return BookingResponse{}, roomerrors.ErrRoomNotFound
	}

	emplExists, err := s.employees.IsExist(ctx, req.EmployeeGuid)
	if err != nil {
		return BookingResponse{}, err
	}
	if !emplExists {
		return BookingResponse{}, employeeerrors.ErrEmployeeNotFound
	}

	// CreatedAt asli dipertahankan
	b, err := s.repo.FindByGuid(ctx, guid)
	if err != nil {
		return BookingResponse{}, err
	}

	b.StartDate = startDate
	b.EndDate = endDate
	b.Status = status
	b.Remarks = req.Remarks
	b.RoomID = uuid.MustParse(req.RoomGuid)
	b.EmployeeID = uuid.MustParse(req.EmployeeGuid)

	if err := s.repo.Update(ctx, b); err != nil {
		s.logger.Error("update booking persist failed", zap.Error(err))
		return BookingResponse{}, bookingerrors.ErrBookingNotUpdated
	}

	return mapToResponse(*b), nil
}

func (s *service) Delete(ctx context.Context, guid string) error {
	if _, err := uuid.Parse(guid); err != nil {
		return bookingerrors.ErrInvalidBookingID
	}

	exists, err := s.repo.IsExist(ctx, guid)
	if err != nil {
		return err
	}
	if !exists {
		return bookingerrors.ErrBookingNotFound
	}

	if err := s.repo.Delete(ctx, guid); err != nil {
		s.logger.Error("delete booking persist failed", zap.Error(err))
		return bookingerrors.ErrBookingNotDeleted
	}

	return nil
}

// BookingsDetail mengembalikan nil kalau belum ada booking sama sekali;
// slice kosong berarti ada booking tetapi join-nya tidak menghasilkan baris.
func (s *service) BookingsDetail(ctx context.Context) ([]BookingDetailResponse, error) {
	bookings, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(bookings) == 0 {
		return nil, nil
	}

	rows, err := s.repo.FindAllDetails(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]BookingDetailResponse, len(rows))
	for i, row := range rows {
		resp[i] = mapDetailRow(row)
	}
	return resp, nil
}

func (s *service) BookingDetail(ctx context.Context, guid string) (BookingDetailResponse, error) {
	if _, err := uuid.Parse(guid); err != nil {
		return BookingDetailResponse{}, bookingerrors.ErrInvalidBookingID
	}

	details, err := s.BookingsDetail(ctx)
	if err != nil {
		return BookingDetailResponse{}, err
	}

	for _, d := range details {
		if d.Guid == guid {
			return d, nil
		}
	}
	return BookingDetailResponse{}, bookingerrors.ErrBookingNotFound
}

// BookingToday menyaring booking yang sedang berjalan hari ini: tanggal
// mulai dibandingkan dengan awal hari, tanggal selesai dengan waktu saat
// ini.
func (s *service) BookingToday(ctx context.Context) ([]BookingDetailResponse, error) {
	bookings, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(bookings) == 0 {
		return nil, nil
	}

	rows, err := s.repo.FindAllDetails(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	resp := make([]BookingDetailResponse, 0, len(rows))
	for _, row := range rows {
		if !row.StartDate.After(today) && !row.EndDate.Before(now) {
			resp = append(resp, mapDetailRow(row))
		}
	}
	return resp, nil
}

// BookingDuration menghitung lama pemakaian per booking; hari Sabtu dan
// Minggu tidak dihitung. Nil saat belum ada booking.
func (s *service) BookingDuration(ctx context.Context) ([]BookingLengthResponse, error) {
	rows, err := s.repo.FindAllWithRoom(ctx)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	resp := make([]BookingLengthResponse, len(rows))
	for i, row := range rows {
		days, hours := formatDuration(weekdayDuration(row.StartDate, row.EndDate))
		resp[i] = BookingLengthResponse{
			RoomGuid:      row.RoomID,
			RoomName:      row.RoomName,
			BookingLength: fmt.Sprintf("%d days %d hours", days, hours),
		}
	}
	return resp, nil
}

func parseSchedule(start, end string, status *int16) (time.Time, time.Time, Status, error) {
	startDate, err := time.Parse(time.RFC3339, start)
	if err != nil {
		return time.Time{}, time.Time{}, 0, apperror.InvalidField("StartDate")
	}
	endDate, err := time.Parse(time.RFC3339, end)
	if err != nil {
		return time.Time{}, time.Time{}, 0, apperror.InvalidField("EndDate")
	}
	if status == nil || !Status(*status).Valid() {
		return time.Time{}, time.Time{}, 0, bookingerrors.ErrInvalidStatus
	}
	return startDate, endDate, Status(*status), nil
}

func mapDetailRow(row BookingDetailRow) BookingDetailResponse {
	fullName := row.FirstName
	if row.LastName != "" {
		fullName = row.FirstName + " " + row.LastName
	}
	return BookingDetailResponse{
		Guid:      row.ID,
		BookedNik: row.Nik,
		BookedBy:  fullName,
		RoomName:  row.RoomName,
		StartDate: row.StartDate.Format(time.RFC3339),
		EndDate:   row.EndDate.Format(time.RFC3339),
		Status:    Status(row.Status).String(),
		Remarks:   row.Remarks,
	}
}

func mapToResponse(b Booking) BookingResponse {
	return BookingResponse{
		Guid:         b.ID.String(),
		StartDate:    b.StartDate.Format(time.RFC3339),
		EndDate:      b.EndDate.Format(time.RFC3339),
		Status:       int16(b.Status),
		StatusName:   b.Status.String(),
		Remarks:      b.Remarks,
		RoomGuid:     b.RoomID.String(),
		EmployeeGuid: b.EmployeeID.String(),
	}
}

func mapToListResponse(bookings []Booking) []BookingResponse {
	resp := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		resp[i] = mapToResponse(b)
	}
	return resp
}
