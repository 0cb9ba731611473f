package usecase

import (
	"context"
	"fmt"
	"time"

	"stayease/internal/data/entity"
	"stayease/internal/data/repository"
	"stayease/internal/dto/request"
	"stayease/internal/dto/response"
	"stayease/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RoomService interface {
	GetAllRooms(ctx context.Context) ([]response.RoomResponse, error)
	GetRoom(ctx context.Context, roomID string) (*response.RoomResponse, error)
	CreateRoom(ctx context.Context, req *request.CreateRoomRequest) (*response.RoomResponse, error)
	UpdateRoom(ctx context.Context, roomID string, req *request.UpdateRoomRequest) (*response.RoomResponse, error)
	DeleteRoom(ctx context.Context, roomID string) error
}

type roomService struct {
	roomRepo repository.RoomRepository
	log      *zap.Logger
}

func NewRoomService(roomRepo repository.RoomRepository, log *zap.Logger) RoomService {
	return &roomService{
		roomRepo: roomRepo,
		log:      log.With(zap.String("service", "room")),
	}
}

func (s *roomService) GetAllRooms(ctx context.Context) ([]response.RoomResponse, error) {
	rooms, err := s.roomRepo.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get rooms", zap.Error(err))
		return nil, fmt.Errorf("failed to get rooms")
	}

	items := make([]response.RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		items = append(items, response.RoomToResponse(room))
	}

	return items, nil
}

func (s *roomService) GetRoom(ctx context.Context, roomID string) (*response.RoomResponse, error) {
	id, err := uuid.Parse(roomID)
	if err != nil {
		return nil, fmt.Errorf("invalid room ID")
	}

	room, err := s.roomRepo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find room", zap.Error(err), zap.String("room_id", roomID))
		return nil, fmt.Errorf("failed to get room")
	}
	if room == nil {
		return nil, fmt.Errorf("room not found")
	}

	resp := response.RoomToResponse(room)
	return &resp, nil
}

func (s *roomService) CreateRoom(ctx context.Context, req *request.CreateRoomRequest) (*response.RoomResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("CreateRoom validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	room := &entity.Room{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		TypeName:      req.TypeName,
		Description:   req.Description,
		PricePerNight: req.PricePerNight,
		BedType:       entity.BedType(req.BedType),
		HasAC:         req.HasAC,
		HasFan:        req.HasFan,
		TotalRooms:    req.TotalRooms,
		ImageURL:      req.ImageURL,
	}

	if err := s.roomRepo.Create(ctx, room); err != nil {
		s.log.Error("Failed to create room", zap.Error(err), zap.String("type_name", req.TypeName))
		return nil, fmt.Errorf("failed to create room")
	}

	s.log.Info("Room created",
		zap.String("room_id", room.ID.String()),
		zap.String("type_name", room.TypeName))

	resp := response.RoomToResponse(room)
	return &resp, nil
}

func (s *roomService) UpdateRoom(ctx context.Context, roomID string, req *request.UpdateRoomRequest) (*response.RoomResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("UpdateRoom validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(roomID)
	if err != nil {
		return nil, fmt.Errorf("invalid room ID")
	}

	room, err := s.roomRepo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find room", zap.Error(err), zap.String("room_id", roomID))
		return nil, fmt.Errorf("failed to get room")
	}
	if room == nil {
		return nil, fmt.Errorf("room not found")
	}

	room.TypeName = req.TypeName
	room.Description = req.Description
	room.PricePerNight = req.PricePerNight
	room.BedType = entity.BedType(req.BedType)
	room.HasAC = req.HasAC
	room.HasFan = req.HasFan
	room.TotalRooms = req.TotalRooms
	room.ImageURL = req.ImageURL
	room.UpdatedAt = time.Now()

	if err := s.roomRepo.Update(ctx, room); err != nil {
		s.log.Error("Failed to update room", zap.Error(err), zap.String("room_id", roomID))
		return nil, err
	}

	s.log.Info("Room updated", zap.String("room_id", roomID))

	resp := response.RoomToResponse(room)
	return &resp, nil
}

func (s *roomService) DeleteRoom(ctx context.Context, roomID string) error {
	id, err := uuid.Parse(roomID)
	if err != nil {
		return fmt.Errorf("invalid room ID")
	}

	if err := s.roomRepo.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete room", zap.Error(err), zap.String("room_id", roomID))
		return err
	}

	return nil
}
