package usecase_test

import (
	"context"
	"testing"

	"stayease/internal/data/entity"
	"stayease/internal/dto/request"
	"stayease/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newRoomService(f *fixture) usecase.RoomService {
	return usecase.NewRoomService(f.repo.Room, zap.NewNop())
}

func TestRoomService_CreateRoom(t *testing.T) {
	f := newFixture()
	svc := newRoomService(f)

	resp, err := svc.CreateRoom(context.Background(), &request.CreateRoomRequest{
		TypeName:      "Superior",
		PricePerNight: 500000,
		BedType:       "queen",
		HasAC:         true,
		TotalRooms:    4,
	})

	require.NoError(t, err)
	assert.Equal(t, "Superior", resp.TypeName)
	assert.Equal(t, entity.BedTypeQueen, resp.BedType)
	assert.True(t, resp.Available)
}

func TestRoomService_CreateRoom_Validation(t *testing.T) {
	f := newFixture()
	svc := newRoomService(f)

	tests := []struct {
		name string
		req  request.CreateRoomRequest
	}{
		{"zero price", request.CreateRoomRequest{TypeName: "Superior", PricePerNight: 0, BedType: "queen"}},
		{"unknown bed type", request.CreateRoomRequest{TypeName: "Superior", PricePerNight: 500000, BedType: "bunk"}},
		{"missing type name", request.CreateRoomRequest{PricePerNight: 500000, BedType: "queen"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateRoom(context.Background(), &tt.req)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "validation failed")
		})
	}
}

func TestRoomService_SoldOutRoomIsNotAvailable(t *testing.T) {
	f := newFixture()
	room := f.seedRoom("Deluxe", 400000, 0)
	svc := newRoomService(f)

	resp, err := svc.GetRoom(context.Background(), room.ID.String())
	require.NoError(t, err)
	assert.False(t, resp.Available)
}

func TestRoomService_UpdateRoom(t *testing.T) {
	f := newFixture()
	room := f.seedRoom("Deluxe", 400000, 2)
	svc := newRoomService(f)

	resp, err := svc.UpdateRoom(context.Background(), room.ID.String(), &request.UpdateRoomRequest{
		TypeName:      "Deluxe Twin",
		PricePerNight: 450000,
		BedType:       "double",
		HasAC:         true,
		HasFan:        true,
		TotalRooms:    3,
	})

	require.NoError(t, err)
	assert.Equal(t, "Deluxe Twin", resp.TypeName)
	assert.Equal(t, int64(450000), resp.PricePerNight)
}

func TestRoomService_DeleteRoom(t *testing.T) {
	f := newFixture()
	room := f.seedRoom("Deluxe", 400000, 2)
	svc := newRoomService(f)

	require.NoError(t, svc.DeleteRoom(context.Background(), room.ID.String()))

	_, err := svc.GetRoom(context.Background(), room.ID.String())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	rooms, err := svc.GetAllRooms(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rooms)
}

func TestRoomService_GetRoom_InvalidID(t *testing.T) {
	f := newFixture()
	svc := newRoomService(f)

	_, err := svc.GetRoom(context.Background(), "not-a-uuid")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid room ID")
}
