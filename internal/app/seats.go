package app

import (
	"net/http"

	"cinetix/api"
	"cinetix/internal/domain"
)

// GetSeatMapByRoom returns the seat map for a room, with the session's
// current selection overlaid. When the upstream inventory cannot be reached,
// or the room id is missing or malformed, a seeded fallback grid is served so
// the ordering flow stays usable without a live backend.
func (app *application) GetSeatMapByRoom(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	seats, roomId, fallback := app.fetchSeats(r)
	if fallback {
		logger.Warn("seat inventory unavailable, serving fallback grid", "room_id", roomId)
	}

	sessionID := app.sessionManager.Token(r.Context())
	selection, err := app.selectionRepo.Get(r.Context(), sessionID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.SeatMapResponse{
		RoomId:   roomId,
		Fallback: fallback,
		SeatRows: toSeatRows(seats, selection),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) fetchSeats(r *http.Request) ([]domain.Seat, int, bool) {
	roomId, ok := urlParamInt(r, "roomId")
	if !ok {
		return domain.FallbackSeatGrid(0, app.config.order.fallbackSeed), 0, true
	}

	seats, err := app.seatService.GetSeatsByRoom(r.Context(), roomId)
	if err != nil {
		return domain.FallbackSeatGrid(roomId, app.config.order.fallbackSeed), roomId, true
	}

	return seats, roomId, false
}

func (app *application) GetSelection(w http.ResponseWriter, r *http.Request) {
	sessionID := app.sessionManager.Token(r.Context())

	selection, err := app.selectionRepo.Get(r.Context(), sessionID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toSelectionResponse(selection), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// ToggleSeat flips the membership of a seat in the session's selection.
// Toggling a seat that is not available is a no-op: the current selection is
// returned unchanged.
func (app *application) ToggleSeat(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.ToggleSeatRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	seats, err := app.seatService.GetSeatsByRoom(r.Context(), input.RoomId)
	if err != nil {
		logger.Warn("seat inventory unavailable, toggling against fallback grid", "room_id", input.RoomId)
		seats = domain.FallbackSeatGrid(input.RoomId, app.config.order.fallbackSeed)
	}

	var seat *domain.Seat
	for i := range seats {
		if seats[i].ID == input.SeatId {
			seat = &seats[i]
			break
		}
	}

	if seat == nil {
		app.notFoundResponse(w, r)
		return
	}

	sessionID := app.sessionManager.Token(r.Context())
	selection, err := app.selectionRepo.Get(r.Context(), sessionID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	if !seat.Available {
		logger.Warn("toggle attempt on unavailable seat", "seat_id", seat.ID)
	}

	selection = selection.Toggle(*seat)

	err = app.selectionRepo.Save(r.Context(), sessionID, selection)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toSelectionResponse(selection), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) ClearSelection(w http.ResponseWriter, r *http.Request) {
	sessionID := app.sessionManager.Token(r.Context())

	err := app.selectionRepo.Delete(r.Context(), sessionID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toSeatRows(seats []domain.Seat, selection domain.Selection) []api.SeatRow {
	// Seats arrive sorted by row and seat number, so a single pass groups them.
	seatRows := []api.SeatRow{}

	for _, seat := range seats {
		apiSeat := toApiSeat(seat, selection.Contains(seat.ID))

		if n := len(seatRows); n > 0 && seatRows[n-1].Row == seat.Row {
			seatRows[n-1].Seats = append(seatRows[n-1].Seats, apiSeat)
			continue
		}

		seatRows = append(seatRows, api.SeatRow{
			Row:   seat.Row,
			Seats: []api.Seat{apiSeat},
		})
	}

	return seatRows
}

func toSelectionResponse(selection domain.Selection) api.SelectionResponse {
	seats := make([]api.Seat, len(selection))
	for i, seat := range selection {
		seats[i] = toApiSeat(seat, true)
	}

	return api.SelectionResponse{
		Seats: seats,
		Count: len(seats),
	}
}

func toApiSeat(seat domain.Seat, selected bool) api.Seat {
	return api.Seat{
		Id:        seat.ID,
		Row:       seat.Row,
		Number:    seat.SeatNumber,
		XPosition: seat.XPosition,
		YPosition: seat.YPosition,
		Available: seat.Available,
		Selected:  selected,
	}
}
