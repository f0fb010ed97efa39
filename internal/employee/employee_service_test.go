package employee_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"go-booking/internal/employee"
	employeeerrors "go-booking/internal/employee/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeEmployeeRepo struct {
	byGuid  map[string]*employee.Employee
	created []*employee.Employee
	updated []*employee.Employee
	deleted []string
	details []employee.EmployeeEducationRow
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{byGuid: map[string]*employee.Employee{}}
}

func (f *fakeEmployeeRepo) WithTx(tx *sql.Tx) employee.Repository { return f }

func (f *fakeEmployeeRepo) FindAll(ctx context.Context) ([]employee.Employee, error) {
	out := make([]employee.Employee, 0, len(f.byGuid))
	for _, e := range f.byGuid {
		out = append(out, *e)
	}
	return out, nil
}

func (f *fakeEmployeeRepo) FindByGuid(ctx context.Context, guid string) (*employee.Employee, error) {
	e, ok := f.byGuid[guid]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *e
	return &cp, nil
}

func (f *fakeEmployeeRepo) FindByEmail(ctx context.Context, email string) (*employee.Employee, error) {
	for _, e := range f.byGuid {
		if e.Email == email {
			return e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, e *employee.Employee) error {
	f.created = append(f.created, e)
	f.byGuid[e.ID.String()] = e
	return nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, e *employee.Employee) error {
	f.updated = append(f.updated, e)
	f.byGuid[e.ID.String()] = e
	return nil
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, guid string) error {
	f.deleted = append(f.deleted, guid)
	delete(f.byGuid, guid)
	return nil
}

func (f *fakeEmployeeRepo) IsExist(ctx context.Context, guid string) (bool, error) {
	_, ok := f.byGuid[guid]
	return ok, nil
}

func (f *fakeEmployeeRepo) FindAllWithEducation(ctx context.Context) ([]employee.EmployeeEducationRow, error) {
	return f.details, nil
}

type fakeCounterRepo struct {
	next int64
}

func (f *fakeCounterRepo) GetNextValue(ctx context.Context, counterType string) (int64, error) {
	f.next++
	return f.next, nil
}

func int16Ptr(v int16) *int16 { return &v }

func validCreateRequest() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		FirstName:   "Budi",
		LastName:    "Santoso",
		BirthDate:   "1995-04-12",
		Gender:      int16Ptr(1),
		HiringDate:  "2023-01-09",
		Email:       "budi@example.com",
		PhoneNumber: "081234567890",
	}
}

func TestFormatNik(t *testing.T) {
	assert.Equal(t, "111111", employee.FormatNik(1))
	assert.Equal(t, "111112", employee.FormatNik(2))
	assert.Equal(t, "111209", employee.FormatNik(99))
}

func TestEmployeeService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("sukses menerbitkan nik berurut dalam transaksi", func(t *testing.T) {
		db, sqlMock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		sqlMock.ExpectBegin()
		sqlMock.ExpectCommit()

		repo := newFakeEmployeeRepo()
		svc := employee.NewService(db, repo, &fakeCounterRepo{}, nil)

		resp, err := svc.Create(ctx, validCreateRequest())

		assert.NoError(t, err)
		assert.Equal(t, "111111", resp.Nik)
		assert.Equal(t, "Budi", resp.FirstName)
		assert.Len(t, repo.created, 1)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("format tanggal salah ditolak sebelum transaksi", func(t *testing.T) {
		db, sqlMock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		repo := newFakeEmployeeRepo()
		svc := employee.NewService(db, repo, &fakeCounterRepo{}, nil)

		req := validCreateRequest()
		req.BirthDate = "12/04/1995"

		_, err = svc.Create(ctx, req)

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidDateFormat)
		assert.Empty(t, repo.created)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("gender di luar 0 atau 1 ditolak", func(t *testing.T) {
		db, _, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		svc := employee.NewService(db, newFakeEmployeeRepo(), &fakeCounterRepo{}, nil)

		req := validCreateRequest()
		req.Gender = int16Ptr(7)

		_, err = svc.Create(ctx, req)
		assert.Error(t, err)
	})
}

func seedEmployee(repo *fakeEmployeeRepo) *employee.Employee {
	e := &employee.Employee{
		ID:          uuid.New(),
		Nik:         "111111",
		FirstName:   "Budi",
		LastName:    "Santoso",
		BirthDate:   time.Date(1995, 4, 12, 0, 0, 0, 0, time.UTC),
		Gender:      employee.GenderMale,
		HiringDate:  time.Date(2023, 1, 9, 0, 0, 0, 0, time.UTC),
		Email:       "budi@example.com",
		PhoneNumber: "081234567890",
		CreatedAt:   time.Date(2023, 1, 9, 8, 0, 0, 0, time.UTC),
	}
	repo.byGuid[e.ID.String()] = e
	return e
}

func TestEmployeeService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("nik dan created_at tidak berubah", func(t *testing.T) {
		repo := newFakeEmployeeRepo()
		existing := seedEmployee(repo)

		svc := employee.NewService(nil, repo, &fakeCounterRepo{}, nil)

		resp, err := svc.Update(ctx, existing.ID.String(), employee.UpdateEmployeeRequest{
			FirstName:   "Budiman",
			LastName:    "Santoso",
			BirthDate:   "1995-04-12",
			Gender:      int16Ptr(1),
			HiringDate:  "2023-01-09",
			Email:       "budiman@example.com",
			PhoneNumber: "081234567890",
		})

		assert.NoError(t, err)
		assert.Equal(t, "Budiman", resp.FirstName)
		assert.Equal(t, "111111", resp.Nik)

		assert.Len(t, repo.updated, 1)
		assert.Equal(t, existing.CreatedAt, repo.updated[0].CreatedAt)
		assert.Equal(t, "111111", repo.updated[0].Nik)
	})

	t.Run("employee tidak ditemukan", func(t *testing.T) {
		repo := newFakeEmployeeRepo()
		svc := employee.NewService(nil, repo, &fakeCounterRepo{}, nil)

		_, err := svc.Update(ctx, uuid.New().String(), employee.UpdateEmployeeRequest{
			FirstName:   "Budi",
			BirthDate:   "1995-04-12",
			Gender:      int16Ptr(1),
			HiringDate:  "2023-01-09",
			Email:       "budi@example.com",
			PhoneNumber: "081234567890",
		})

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}

func TestEmployeeService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("sukses", func(t *testing.T) {
		repo := newFakeEmployeeRepo()
		existing := seedEmployee(repo)

		svc := employee.NewService(nil, repo, &fakeCounterRepo{}, nil)

		err := svc.Delete(ctx, existing.ID.String())

		assert.NoError(t, err)
		assert.Equal(t, []string{existing.ID.String()}, repo.deleted)
	})

	t.Run("guid tidak valid", func(t *testing.T) {
		svc := employee.NewService(nil, newFakeEmployeeRepo(), &fakeCounterRepo{}, nil)

		err := svc.Delete(ctx, "bukan-uuid")
		assert.ErrorIs(t, err, employeeerrors.ErrInvalidEmployeeID)
	})

	t.Run("tidak ditemukan", func(t *testing.T) {
		svc := employee.NewService(nil, newFakeEmployeeRepo(), &fakeCounterRepo{}, nil)

		err := svc.Delete(ctx, uuid.New().String())
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}

func TestEmployeeService_GetDetails(t *testing.T) {
	ctx := context.Background()

	repo := newFakeEmployeeRepo()
	repo.details = []employee.EmployeeEducationRow{
		{
			ID:             uuid.New().String(),
			Nik:            "111111",
			FirstName:      "Budi",
			LastName:       "Santoso",
			BirthDate:      time.Date(1995, 4, 12, 0, 0, 0, 0, time.UTC),
			Gender:         1,
			HiringDate:     time.Date(2023, 1, 9, 0, 0, 0, 0, time.UTC),
			Email:          "budi@example.com",
			PhoneNumber:    "081234567890",
			Major:          "Informatika",
			Degree:         "S1",
			Gpa:            3.5,
			UniversityName: "Universitas Indonesia",
		},
		{
			ID:        uuid.New().String(),
			Nik:       "111112",
			FirstName: "Sari",
		},
	}

	svc := employee.NewService(nil, repo, &fakeCounterRepo{}, nil)

	resp, err := svc.GetDetails(ctx)

	assert.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, "Budi Santoso", resp[0].FullName)
	assert.Equal(t, "1995-04-12", resp[0].BirthDate)
	assert.Equal(t, "Universitas Indonesia", resp[0].UniversityName)
	// Tanpa nama belakang, full name hanya nama depan
	assert.Equal(t, "Sari", resp[1].FullName)
}
