package domain

import (
	"context"
	"math/rand"
)

type Seat struct {
	ID         int    `json:"id"`
	SeatTypeID int    `json:"seatTypeId"`
	RoomID     int    `json:"roomId"`
	Row        string `json:"row"`
	SeatNumber int    `json:"seatNumber"`
	XPosition  int    `json:"xPosition"`
	YPosition  int    `json:"yPosition"`
	Available  bool   `json:"isAvailable"`
}

// Selection is the ordered set of seats the session user has tentatively
// chosen. Membership is keyed by seat id and insertion order is preserved,
// though nothing downstream depends on the order beyond the seat count.
type Selection []Seat

// Toggle adds the seat if absent and removes it if present. Seats that are
// not available never enter the selection; toggling one is a no-op.
func (s Selection) Toggle(seat Seat) Selection {
	if !seat.Available {
		return s
	}

	for i, v := range s {
		if v.ID == seat.ID {
			return append(s[:i:i], s[i+1:]...)
		}
	}

	return append(s, seat)
}

func (s Selection) Contains(seatID int) bool {
	for _, v := range s {
		if v.ID == seatID {
			return true
		}
	}

	return false
}

const (
	fallbackRows         = "ABCDE"
	fallbackSeatsPerRow  = 8
	fallbackAvailability = 0.7
)

// FallbackSeatGrid generates the stand-in seat map used when the upstream
// inventory cannot be reached, so the ordering flow stays exercisable without
// a live backend. The seed is mixed with the room id: the same pair always
// produces the same grid.
func FallbackSeatGrid(roomID int, seed int64) []Seat {
	rng := rand.New(rand.NewSource(seed + int64(roomID)))
	seats := make([]Seat, 0, len(fallbackRows)*fallbackSeatsPerRow)

	id := 1
	for y := 0; y < len(fallbackRows); y++ {
		for x := 1; x <= fallbackSeatsPerRow; x++ {
			seats = append(seats, Seat{
				ID:         id,
				RoomID:     roomID,
				Row:        string(fallbackRows[y]),
				SeatNumber: x,
				XPosition:  x,
				YPosition:  y + 1,
				Available:  rng.Float64() < fallbackAvailability,
			})
			id++
		}
	}

	return seats
}

type SeatService interface {
	GetSeatsByRoom(ctx context.Context, roomID int) ([]Seat, error)
}

type SelectionRepository interface {
	Get(ctx context.Context, sessionID string) (Selection, error)
	Save(ctx context.Context, sessionID string, selection Selection) error
	Delete(ctx context.Context, sessionID string) error
}
