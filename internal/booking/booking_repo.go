package booking

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

// BookingDetailRow is the raw projection of booking ⨝ employee ⨝ room
// used by the detail reports.
type BookingDetailRow struct {
	ID        string
	Nik       string
	FirstName string
	LastName  string
	RoomName  string
	StartDate time.Time
	EndDate   time.Time
	Status    int16
	Remarks   string
}

// BookingRoomRow feeds the duration report.
type BookingRoomRow struct {
	RoomID    string
	RoomName  string
	StartDate time.Time
	EndDate   time.Time
}

//go:generate mockgen -source=booking_repo.go -destination=mock/booking_repo_mock.go -package=mock

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	FindAll(ctx context.Context) ([]Booking, error)
	FindByGuid(ctx context.Context, guid string) (*Booking, error)
	Create(ctx context.Context, b *Booking) error
	Update(ctx context.Context, b *Booking) error
	Delete(ctx context.Context, guid string) error
	IsExist(ctx context.Context, guid string) (bool, error)
	FindAllDetails(ctx context.Context) ([]BookingDetailRow, error)
	FindAllWithRoom(ctx context.Context) ([]BookingRoomRow, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) FindAll(ctx context.Context) ([]Booking, error) {
	var bookings []Booking
	err := r.db.WithContext(ctx).Order("start_date ASC").Find(&bookings).Error
	return bookings, err
}

func (r *repository) FindByGuid(ctx context.Context, guid string) (*Booking, error) {
	var b Booking
	err := r.db.WithContext(ctx).First(&b, "id = ?", guid).Error
	return &b, err
}

func (r *repository) Create(ctx context.Context, b *Booking) error {
	if r.tx != nil {
		_, err := r.tx.ExecContext(ctx, `
			INSERT INTO bookings (id, start_date, end_date, status, remarks, room_id, employee_id, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())
		`, b.ID, b.StartDate, b.EndDate, b.Status, b.Remarks, b.RoomID, b.EmployeeID)
		return err
	}
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *repository) Update(ctx context.Context, b *Booking) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *repository) Delete(ctx context.Context, guid string) error {
	return r.db.WithContext(ctx).Delete(&Booking{}, "id = ?", guid).Error
}

func (r *repository) IsExist(ctx context.Context, guid string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Booking{}).
		Where("id = ?", guid).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) FindAllDetails(ctx context.Context) ([]BookingDetailRow, error) {
	var rows []BookingDetailRow
	err := r.db.WithContext(ctx).
		Table("bookings b").
		Select(`b.id::text AS id, e.nik, e.first_name, e.last_name, r.name AS room_name,
			b.start_date, b.end_date, b.status, b.remarks`).
		Joins("JOIN employees e ON e.id = b.employee_id").
		Joins("JOIN rooms r ON r.id = b.room_id").
		Order("b.start_date ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) FindAllWithRoom(ctx context.Context) ([]BookingRoomRow, error) {
	var rows []BookingRoomRow
	err := r.db.WithContext(ctx).
		Table("bookings b").
		Select(`r.id::text AS room_id, r.name AS room_name, b.start_date, b.end_date`).
		Joins("JOIN rooms r ON r.id = b.room_id").
		Order("b.start_date ASC").
		Scan(&rows).Error
	return rows, err
}
