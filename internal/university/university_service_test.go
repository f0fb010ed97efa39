package university_test

import (
	"context"
	"database/sql"
	"testing"

	"go-booking/internal/university"
	universityerrors "go-booking/internal/university/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeUniversityRepo struct {
	universities []university.University
	created      []*university.University
	deleted      []string
}

func (f *fakeUniversityRepo) WithTx(tx *sql.Tx) university.Repository { return f }

func (f *fakeUniversityRepo) FindAll(ctx context.Context) ([]university.University, error) {
	return f.universities, nil
}

func (f *fakeUniversityRepo) FindByGuid(ctx context.Context, guid string) (*university.University, error) {
	for i := range f.universities {
		if f.universities[i].ID.String() == guid {
			return &f.universities[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUniversityRepo) FindByCodeAndName(ctx context.Context, code, name string) (*university.University, error) {
	for i := range f.universities {
		if f.universities[i].Code == code && f.universities[i].Name == name {
			return &f.universities[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUniversityRepo) Create(ctx context.Context, u *university.University) error {
	f.created = append(f.created, u)
	f.universities = append(f.universities, *u)
	return nil
}

func (f *fakeUniversityRepo) Update(ctx context.Context, u *university.University) error { return nil }

func (f *fakeUniversityRepo) Delete(ctx context.Context, guid string) error {
	f.deleted = append(f.deleted, guid)
	return nil
}

func (f *fakeUniversityRepo) IsExist(ctx context.Context, guid string) (bool, error) {
	for i := range f.universities {
		if f.universities[i].ID.String() == guid {
			return true, nil
		}
	}
	return false, nil
}

func TestUniversityService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("sukses", func(t *testing.T) {
		repo := &fakeUniversityRepo{}
		svc := university.NewService(repo)

		resp, err := svc.Create(ctx, university.CreateUniversityRequest{
			Code: "UI",
			Name: "Universitas Indonesia",
		})

		assert.NoError(t, err)
		assert.Equal(t, "UI", resp.Code)
		assert.Len(t, repo.created, 1)
	})

	t.Run("pasangan code dan name yang sama ditolak", func(t *testing.T) {
		repo := &fakeUniversityRepo{
			universities: []university.University{
				{ID: uuid.New(), Code: "UI", Name: "Universitas Indonesia"},
			},
		}
		svc := university.NewService(repo)

		_, err := svc.Create(ctx, university.CreateUniversityRequest{
			Code: "UI",
			Name: "Universitas Indonesia",
		})

		assert.ErrorIs(t, err, universityerrors.ErrUniversityAlreadyExists)
		assert.Empty(t, repo.created)
	})

	t.Run("code sama tapi name beda tetap boleh", func(t *testing.T) {
		repo := &fakeUniversityRepo{
			universities: []university.University{
				{ID: uuid.New(), Code: "UI", Name: "Universitas Indonesia"},
			},
		}
		svc := university.NewService(repo)

		_, err := svc.Create(ctx, university.CreateUniversityRequest{
			Code: "UI",
			Name: "Universitas Islam",
		})

		assert.NoError(t, err)
		assert.Len(t, repo.created, 1)
	})
}

func TestUniversityService_GetByGuid(t *testing.T) {
	ctx := context.Background()

	existing := university.University{ID: uuid.New(), Code: "UI", Name: "Universitas Indonesia"}
	svc := university.NewService(&fakeUniversityRepo{
		universities: []university.University{existing},
	})

	t.Run("ditemukan", func(t *testing.T) {
		resp, err := svc.GetByGuid(ctx, existing.ID.String())
		assert.NoError(t, err)
		assert.Equal(t, "Universitas Indonesia", resp.Name)
	})

	t.Run("tidak ditemukan", func(t *testing.T) {
		_, err := svc.GetByGuid(ctx, uuid.New().String())
		assert.ErrorIs(t, err, universityerrors.ErrUniversityNotFound)
	})

	t.Run("guid tidak valid", func(t *testing.T) {
		_, err := svc.GetByGuid(ctx, "bukan-uuid")
		assert.ErrorIs(t, err, universityerrors.ErrInvalidUniversityID)
	})
}

func TestUniversityService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("tidak ditemukan", func(t *testing.T) {
		svc := university.NewService(&fakeUniversityRepo{})
		err := svc.Delete(ctx, uuid.New().String())
		assert.ErrorIs(t, err, universityerrors.ErrUniversityNotFound)
	})

	t.Run("sukses", func(t *testing.T) {
		existing := university.University{ID: uuid.New(), Code: "UI", Name: "Universitas Indonesia"}
		repo := &fakeUniversityRepo{universities: []university.University{existing}}
		svc := university.NewService(repo)

		err := svc.Delete(ctx, existing.ID.String())

		assert.NoError(t, err)
		assert.Equal(t, []string{existing.ID.String()}, repo.deleted)
	})
}
