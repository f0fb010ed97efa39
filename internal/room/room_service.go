package room

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	roomerrors "go-booking/internal/room/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	ListCacheKey = "rooms:list"
	listCacheTTL = 30 * time.Minute
)

type Service interface {
	Create(ctx context.Context, req CreateRoomRequest) (RoomResponse, error)
	GetAll(ctx context.Context) ([]RoomResponse, error)
	GetByGuid(ctx context.Context, guid string) (RoomResponse, error)
	Update(ctx context.Context, guid string, req UpdateRoomRequest) (RoomResponse, error)
	Delete(ctx context.Context, guid string) error
}

type service struct {
	repo   Repository
	cache  *redis.Client
	group  singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, cache *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("room.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("room.service")
	}
	return &service{repo: repo, cache: cache, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateRoomRequest) (RoomResponse, error) {
	room := &Room{
		ID:    uuid.New(),
		Name:  req.Name,
		Floor: *req.Floor,
	}

	if err := s.repo.Create(ctx, room); err != nil {
		s.logger.Error("create room persist failed", zap.Error(err))
		return RoomResponse{}, mapRepositoryError(err)
	}

	s.invalidateListCache(ctx)

	return mapToResponse(*room), nil
}

func (s *service) GetAll(ctx context.Context) ([]RoomResponse, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, ListCacheKey).Result()
		if err == nil {
			var resp []RoomResponse
			if jsonErr := json.Unmarshal([]byte(cached), &resp); jsonErr == nil {
				return resp, nil
			}
			// Cache korup, buang dan ambil dari DB.
			s.cache.Del(ctx, ListCacheKey)
		} else if !errors.Is(err, redis.Nil) {
			s.logger.Warn("room list cache read failed", zap.Error(err))
		}
	}

	v, err, _ := s.group.Do(ListCacheKey, func() (interface{}, error) {
		rooms, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, err
		}
		resp := mapToListResponse(rooms)

		if s.cache != nil {
			if payload, jsonErr := json.Marshal(resp); jsonErr == nil {
				if setErr := s.cache.Set(ctx, ListCacheKey, payload, listCacheTTL).Err(); setErr != nil {
					s.logger.Warn("room list cache write failed", zap.Error(setErr))
				}
			}
		}
		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]RoomResponse), nil
}

func (s *service) GetByGuid(ctx context.Context, guid string) (RoomResponse, error) {
	if _, err := uuid.Parse(guid); err != nil {
		return RoomResponse{}, roomerrors.ErrInvalidRoomID
	}

	room, err := s.repo.FindByGuid(ctx, guid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RoomResponse{}, roomerrors.ErrRoomNotFound
		}
		return RoomResponse{}, err
	}
	return mapToResponse(*room), nil
}

func (s *service) Update(ctx context.Context, guid string, req UpdateRoomRequest) (RoomResponse, error) {
	if _, err := uuid.Parse(guid); err != nil {
		return RoomResponse{}, roomerrors.ErrInvalidRoomID
	}

	exists, err := s.repo.IsExist(ctx, guid)
	if err != nil {
		return RoomResponse{}, err
	}
	if !exists {
		return RoomResponse{}, roomerrors.ErrRoomNotFound
	}

	room, err := s.repo.FindByGuid(ctx, guid)
	if err != nil {
		return RoomResponse{}, err
	}

	room.Name = req.Name
	room.Floor = *req.Floor

	if err := s.repo.Update(ctx, room); err != nil {
		s.logger.Error("update room persist failed", zap.Error(err))
		return RoomResponse{}, mapRepositoryError(err)
	}

	s.invalidateListCache(ctx)

	return mapToResponse(*room), nil
}

func (s *service) Delete(ctx context.Context, guid string) error {
	if _, err := uuid.Parse(guid); err != nil {
		return roomerrors.ErrInvalidRoomID
	}

	exists, err := s.repo.IsExist(ctx, guid)
	if err != nil {
		return err
	}
	if !exists {
		return roomerrors.ErrRoomNotFound
	}

	if err := s.repo.Delete(ctx, guid); err != nil {
		s.logger.Error("delete room persist failed", zap.Error(err))
		return roomerrors.ErrRoomNotDeleted
	}

	s.invalidateListCache(ctx)

	return nil
}

func (s *service) invalidateListCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, ListCacheKey).Err(); err != nil {
		s.logger.Warn("room list cache invalidation failed", zap.Error(err))
	}
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return roomerrors.ErrRoomAlreadyExists
	}
	if strings.Contains(strings.ToLower(err.Error()), "duplicate key value") {
		return roomerrors.ErrRoomAlreadyExists
	}

	return err
}

func mapToResponse(room Room) RoomResponse {
	return RoomResponse{
		Guid:  room.ID.String(),
		Name:  room.Name,
		Floor: room.Floor,
	}
}

func mapToListResponse(rooms []Room) []RoomResponse {
	resp := make([]RoomResponse, len(rooms))
	for i, room := range rooms {
		resp[i] = mapToResponse(room)
	}
	return resp
}
