package room_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"go-booking/internal/room"
	roomerrors "go-booking/internal/room/errors"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRoomRepo struct {
	rooms       []room.Room
	findAllErr  error
	findAllHits int
	created     []*room.Room
	deleted     []string
}

func (f *fakeRoomRepo) WithTx(tx *sql.Tx) room.Repository { return f }

func (f *fakeRoomRepo) FindAll(ctx context.Context) ([]room.Room, error) {
	f.findAllHits++
	if f.findAllErr != nil {
		return nil, f.findAllErr
	}
	return f.rooms, nil
}

func (f *fakeRoomRepo) FindByGuid(ctx context.Context, guid string) (*room.Room, error) {
	for i := range f.rooms {
		if f.rooms[i].ID.String() == guid {
			return &f.rooms[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRoomRepo) Create(ctx context.Context, r *room.Room) error {
	f.created = append(f.created, r)
	f.rooms = append(f.rooms, *r)
	return nil
}

func (f *fakeRoomRepo) Update(ctx context.Context, r *room.Room) error { return nil }

func (f *fakeRoomRepo) Delete(ctx context.Context, guid string) error {
	f.deleted = append(f.deleted, guid)
	return nil
}

func (f *fakeRoomRepo) IsExist(ctx context.Context, guid string) (bool, error) {
	for i := range f.rooms {
		if f.rooms[i].ID.String() == guid {
			return true, nil
		}
	}
	return false, nil
}

func intPtr(v int) *int { return &v }

func TestRoomService_GetAll(t *testing.T) {
	ctx := context.Background()

	meetingRoom := room.Room{ID: uuid.New(), Name: "Ruang Rapat A", Floor: 3}

	t.Run("cache hit tidak menyentuh database", func(t *testing.T) {
		repo := &fakeRoomRepo{rooms: []room.Room{meetingRoom}}
		rdb, mock := redismock.NewClientMock()

		cached, err := json.Marshal([]room.RoomResponse{
			{Guid: meetingRoom.ID.String(), Name: meetingRoom.Name, Floor: meetingRoom.Floor},
		})
		assert.NoError(t, err)
		mock.ExpectGet(room.ListCacheKey).SetVal(string(cached))

		svc := room.NewService(repo, rdb)
		resp, err := svc.GetAll(ctx)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "Ruang Rapat A", resp[0].Name)
		assert.Zero(t, repo.findAllHits)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("cache miss mengisi cache dengan ttl 30 menit", func(t *testing.T) {
		repo := &fakeRoomRepo{rooms: []room.Room{meetingRoom}}
		rdb, mock := redismock.NewClientMock()

		expected, err := json.Marshal([]room.RoomResponse{
			{Guid: meetingRoom.ID.String(), Name: meetingRoom.Name, Floor: meetingRoom.Floor},
		})
		assert.NoError(t, err)

		mock.ExpectGet(room.ListCacheKey).RedisNil()
		mock.ExpectSet(room.ListCacheKey, expected, 30*time.Minute).SetVal("OK")

		svc := room.NewService(repo, rdb)
		resp, err := svc.GetAll(ctx)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, 1, repo.findAllHits)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("cache korup dibuang lalu fallback ke database", func(t *testing.T) {
		repo := &fakeRoomRepo{rooms: []room.Room{meetingRoom}}
		rdb, mock := redismock.NewClientMock()

		expected, err := json.Marshal([]room.RoomResponse{
			{Guid: meetingRoom.ID.String(), Name: meetingRoom.Name, Floor: meetingRoom.Floor},
		})
		assert.NoError(t, err)

		mock.ExpectGet(room.ListCacheKey).SetVal("bukan-json{")
		mock.ExpectDel(room.ListCacheKey).SetVal(1)
		mock.ExpectSet(room.ListCacheKey, expected, 30*time.Minute).SetVal("OK")

		svc := room.NewService(repo, rdb)
		resp, err := svc.GetAll(ctx)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, 1, repo.findAllHits)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("tanpa redis tetap jalan", func(t *testing.T) {
		repo := &fakeRoomRepo{rooms: []room.Room{meetingRoom}}
		svc := room.NewService(repo, nil)

		resp, err := svc.GetAll(ctx)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
	})
}

func TestRoomService_CacheInvalidation(t *testing.T) {
	ctx := context.Background()

	t.Run("create menghapus cache daftar", func(t *testing.T) {
		repo := &fakeRoomRepo{}
		rdb, mock := redismock.NewClientMock()
		mock.ExpectDel(room.ListCacheKey).SetVal(1)

		svc := room.NewService(repo, rdb)
		resp, err := svc.Create(ctx, room.CreateRoomRequest{Name: "Ruang Tenang", Floor: intPtr(2)})

		assert.NoError(t, err)
		assert.Equal(t, "Ruang Tenang", resp.Name)
		assert.Equal(t, 2, resp.Floor)
		assert.Len(t, repo.created, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("delete menghapus cache daftar", func(t *testing.T) {
		existing := room.Room{ID: uuid.New(), Name: "Ruang Lama", Floor: 1}
		repo := &fakeRoomRepo{rooms: []room.Room{existing}}
		rdb, mock := redismock.NewClientMock()
		mock.ExpectDel(room.ListCacheKey).SetVal(1)

		svc := room.NewService(repo, rdb)
		err := svc.Delete(ctx, existing.ID.String())

		assert.NoError(t, err)
		assert.Equal(t, []string{existing.ID.String()}, repo.deleted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRoomService_GetByGuid(t *testing.T) {
	ctx := context.Background()

	existing := room.Room{ID: uuid.New(), Name: "Ruang Rapat A", Floor: 3}
	repo := &fakeRoomRepo{rooms: []room.Room{existing}}
	svc := room.NewService(repo, nil)

	t.Run("ditemukan", func(t *testing.T) {
		resp, err := svc.GetByGuid(ctx, existing.ID.String())
		assert.NoError(t, err)
		assert.Equal(t, existing.ID.String(), resp.Guid)
	})

	t.Run("tidak ditemukan", func(t *testing.T) {
		_, err := svc.GetByGuid(ctx, uuid.New().String())
		assert.ErrorIs(t, err, roomerrors.ErrRoomNotFound)
	})

	t.Run("guid tidak valid", func(t *testing.T) {
		_, err := svc.GetByGuid(ctx, "bukan-uuid")
		assert.ErrorIs(t, err, roomerrors.ErrInvalidRoomID)
	})
}
