package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinetix/api"
	"cinetix/internal/domain"
	"cinetix/internal/mocks"
	"cinetix/internal/validator"
)

var testRoomSeats = []domain.Seat{
	{ID: 1, RoomID: 4, Row: "A", SeatNumber: 1, XPosition: 1, YPosition: 1, Available: true},
	{ID: 2, RoomID: 4, Row: "A", SeatNumber: 2, XPosition: 2, YPosition: 1, Available: false},
	{ID: 3, RoomID: 4, Row: "B", SeatNumber: 1, XPosition: 1, YPosition: 2, Available: true},
}

func seatServiceReturning(seats []domain.Seat, err error) *mocks.MockSeatService {
	return &mocks.MockSeatService{
		GetSeatsByRoomFunc: func(ctx context.Context, roomID int) ([]domain.Seat, error) {
			return seats, err
		},
	}
}

func TestGetSeatMapByRoomHandler(t *testing.T) {
	t.Run("groups live inventory into rows", func(t *testing.T) {
		app := newTestApplication(func(a *application) {
			a.seatService = seatServiceReturning(testRoomSeats, nil)
		})

		w, r := executeRequest(t, http.MethodGet, "/rooms/4/seats", nil)
		r = setupTestSession(t, app, withUrlParam(r, "roomId", "4"), 0)

		app.GetSeatMapByRoom(w, r)

		require.Equal(t, http.StatusOK, w.Code)

		var resp api.SeatMapResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))

		assert.Equal(t, 4, resp.RoomId)
		assert.False(t, resp.Fallback)
		require.Len(t, resp.SeatRows, 2)
		assert.Equal(t, "A", resp.SeatRows[0].Row)
		assert.Len(t, resp.SeatRows[0].Seats, 2)
		assert.Equal(t, "B", resp.SeatRows[1].Row)
		assert.False(t, resp.SeatRows[0].Seats[0].Selected)
		assert.False(t, resp.SeatRows[0].Seats[1].Available)
	})

	t.Run("overlays the session selection", func(t *testing.T) {
		app := newTestApplication(func(a *application) {
			a.seatService = seatServiceReturning(testRoomSeats, nil)
		})

		w, r := executeRequest(t, http.MethodGet, "/rooms/4/seats", nil)
		r = setupTestSession(t, app, withUrlParam(r, "roomId", "4"), 0)

		sessionID := app.sessionManager.Token(r.Context())
		err := app.selectionRepo.Save(r.Context(), sessionID, domain.Selection{testRoomSeats[2]})
		require.NoError(t, err)

		app.GetSeatMapByRoom(w, r)

		require.Equal(t, http.StatusOK, w.Code)

		var resp api.SeatMapResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))

		assert.False(t, resp.SeatRows[0].Seats[0].Selected)
		assert.True(t, resp.SeatRows[1].Seats[0].Selected)
	})

	t.Run("serves the fallback grid when inventory is unreachable", func(t *testing.T) {
		app := newTestApplication(func(a *application) {
			a.seatService = seatServiceReturning(nil, errors.New("connection refused"))
		})

		w, r := executeRequest(t, http.MethodGet, "/rooms/4/seats", nil)
		r = setupTestSession(t, app, withUrlParam(r, "roomId", "4"), 0)

		app.GetSeatMapByRoom(w, r)

		require.Equal(t, http.StatusOK, w.Code)

		var resp api.SeatMapResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))

		assert.True(t, resp.Fallback)
		require.Len(t, resp.SeatRows, 5)
		for _, row := range resp.SeatRows {
			assert.Len(t, row.Seats, 8)
		}
	})

	t.Run("serves the fallback grid for a malformed room id", func(t *testing.T) {
		app := newTestApplication()

		w, r := executeRequest(t, http.MethodGet, "/rooms/abc/seats", nil)
		r = setupTestSession(t, app, withUrlParam(r, "roomId", "abc"), 0)

		app.GetSeatMapByRoom(w, r)

		require.Equal(t, http.StatusOK, w.Code)

		var resp api.SeatMapResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))

		assert.Equal(t, 0, resp.RoomId)
		assert.True(t, resp.Fallback)
	})
}

func TestToggleSeatHandler(t *testing.T) {
	tests := []struct {
		name           string
		input          api.ToggleSeatRequest
		seatService    *mocks.MockSeatService
		wantStatus     int
		wantErrMessage string
		wantCount      int
	}{
		{
			name:           "should fail when room ID is missing",
			input:          api.ToggleSeatRequest{SeatId: 1},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: validator.ErrRequired,
		},
		{
			name:           "should fail when seat ID is negative",
			input:          api.ToggleSeatRequest{RoomId: 4, SeatId: -1},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: fmt.Sprintf(validator.ErrGreaterThan, "0"),
		},
		{
			name:           "should fail when seat does not exist in the room",
			input:          api.ToggleSeatRequest{RoomId: 4, SeatId: 99},
			seatService:    seatServiceReturning(testRoomSeats, nil),
			wantStatus:     http.StatusNotFound,
			wantErrMessage: "The requested resource not found",
		},
		{
			name:        "should add an available seat to the selection",
			input:       api.ToggleSeatRequest{RoomId: 4, SeatId: 1},
			seatService: seatServiceReturning(testRoomSeats, nil),
			wantStatus:  http.StatusOK,
			wantCount:   1,
		},
		{
			name:        "should ignore a toggle on an unavailable seat",
			input:       api.ToggleSeatRequest{RoomId: 4, SeatId: 2},
			seatService: seatServiceReturning(testRoomSeats, nil),
			wantStatus:  http.StatusOK,
			wantCount:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApplication(func(a *application) {
				if tt.seatService != nil {
					a.seatService = tt.seatService
				}
			})

			w, r := executeRequest(t, http.MethodPost, "/selection/toggle", tt.input)
			r = setupTestSession(t, app, r, 0)

			app.ToggleSeat(w, r)

			assert.Equal(t, tt.wantStatus, w.Code)
			checkErrorResponse(t, w, tt.wantStatus, tt.wantErrMessage)

			if tt.wantStatus == http.StatusOK {
				var resp api.SelectionResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, tt.wantCount, resp.Count)
			}
		})
	}

	t.Run("second toggle removes the seat", func(t *testing.T) {
		app := newTestApplication(func(a *application) {
			a.seatService = seatServiceReturning(testRoomSeats, nil)
		})

		input := api.ToggleSeatRequest{RoomId: 4, SeatId: 1}

		w, r := executeRequest(t, http.MethodPost, "/selection/toggle", input)
		r = setupTestSession(t, app, r, 0)
		app.ToggleSeat(w, r)
		require.Equal(t, http.StatusOK, w.Code)

		w, r2 := executeRequest(t, http.MethodPost, "/selection/toggle", input)
		r2 = r2.WithContext(r.Context())
		app.ToggleSeat(w, r2)

		require.Equal(t, http.StatusOK, w.Code)

		var resp api.SelectionResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, 0, resp.Count)
		assert.Empty(t, resp.Seats)
	})

	t.Run("toggles against the fallback grid when inventory is unreachable", func(t *testing.T) {
		app := newTestApplication(func(a *application) {
			a.seatService = seatServiceReturning(nil, errors.New("connection refused"))
		})

		grid := domain.FallbackSeatGrid(5, app.config.order.fallbackSeed)
		var available domain.Seat
		for _, seat := range grid {
			if seat.Available {
				available = seat
				break
			}
		}
		require.NotZero(t, available.ID)

		w, r := executeRequest(t, http.MethodPost, "/selection/toggle", api.ToggleSeatRequest{RoomId: 5, SeatId: available.ID})
		r = setupTestSession(t, app, r, 0)

		app.ToggleSeat(w, r)

		require.Equal(t, http.StatusOK, w.Code)

		var resp api.SelectionResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, 1, resp.Count)
		assert.Equal(t, available.ID, resp.Seats[0].Id)
	})
}

func TestGetSelectionHandler(t *testing.T) {
	app := newTestApplication()

	w, r := executeRequest(t, http.MethodGet, "/selection", nil)
	r = setupTestSession(t, app, r, 0)

	sessionID := app.sessionManager.Token(r.Context())
	err := app.selectionRepo.Save(r.Context(), sessionID, domain.Selection{testRoomSeats[0]})
	require.NoError(t, err)

	app.GetSelection(w, r)

	require.Equal(t, http.StatusOK, w.Code)

	var resp api.SelectionResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, 1, resp.Count)
	assert.True(t, resp.Seats[0].Selected)
}

func TestClearSelectionHandler(t *testing.T) {
	app := newTestApplication()

	w, r := executeRequest(t, http.MethodDelete, "/selection", nil)
	r = setupTestSession(t, app, r, 0)

	sessionID := app.sessionManager.Token(r.Context())
	err := app.selectionRepo.Save(r.Context(), sessionID, domain.Selection{testRoomSeats[0]})
	require.NoError(t, err)

	app.ClearSelection(w, r)

	require.Equal(t, http.StatusNoContent, w.Code)

	selection, err := app.selectionRepo.Get(r.Context(), sessionID)
	require.NoError(t, err)
	assert.Empty(t, selection)
}
