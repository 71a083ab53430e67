package app

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	qrcode "github.com/skip2/go-qrcode"

	"cinetix/api"
	"cinetix/internal/domain"
)

// CreateOrder aggregates the session's seat selection and concession cart,
// together with the showtime context from the request, into the checkout
// payload. Nothing is validated here: an empty selection, an empty cart, or
// both are all legal orders.
func (app *application) CreateOrder(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.CreateOrderRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	ticket := domain.TicketContext{
		ScheduleID:  input.ScheduleId,
		MovieTitle:  input.MovieTitle,
		TheaterName: input.TheaterName,
		Showtime:    input.Showtime,
		SeatPrice:   app.lookupSeatPrice(r, input.MovieId, input.ScheduleId),
	}

	sessionID := app.sessionManager.Token(r.Context())

	selection, err := app.selectionRepo.Get(r.Context(), sessionID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	cart, err := app.cartRepo.Get(r.Context(), sessionID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	payload, err := domain.NewCheckoutPayload(ticket, selection, cart.Lines)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	order := &domain.Order{
		Payload: payload,
		Status:  domain.OrderStatusReviewing,
	}

	err = app.orderRepo.Save(r.Context(), sessionID, order)
	if err != nil {
		logger.Error("failed to save order draft", "error", err)
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, app.toOrderResponse(order), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// lookupSeatPrice sources the per-seat price from the showtime catalog. Any
// failure degrades to zero, which makes checkout fall back to the configured
// default price.
func (app *application) lookupSeatPrice(r *http.Request, movieId, scheduleId int) decimal.Decimal {
	if movieId < 1 || scheduleId < 1 {
		return decimal.Zero
	}

	schedules, err := app.movieService.GetSchedulesByMovie(r.Context(), movieId)
	if err != nil {
		app.contextGetLogger(r).Warn("could not source seat price from catalog", "schedule_id", scheduleId, "error", err)
		return decimal.Zero
	}

	for _, schedule := range schedules {
		if schedule.ID == scheduleId {
			return schedule.Price
		}
	}

	return decimal.Zero
}

// GetOrder returns the current order draft with its computed totals. The
// payload parts are decoded defensively: a corrupt part collapses to its
// empty default and the rest still prices normally.
func (app *application) GetOrder(w http.ResponseWriter, r *http.Request) {
	sessionID := app.sessionManager.Token(r.Context())

	order, err := app.orderRepo.Get(r.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrOrderNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, app.toOrderResponse(order), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// ConfirmOrder moves the draft from REVIEWING to CONFIRMED, renders the
// confirmation artifact as a QR code, and discards the session's order state.
// The transition is one-way: there is no cancel endpoint, and a second
// confirm finds no order.
func (app *application) ConfirmOrder(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)
	sessionID := app.sessionManager.Token(r.Context())

	order, err := app.orderRepo.Get(r.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrOrderNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	ticket, seats, lines := order.Payload.Decode()
	totals := domain.CalculateTotals(ticket, seats, lines, app.config.order.baseTicketPrice)
	confirmation := domain.NewConfirmation(ticket, seats, lines, totals, time.Now())

	confirmationJSON, err := json.Marshal(confirmation)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	qrPng, err := qrcode.Encode(string(confirmationJSON), qrcode.Medium, 256)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	// The order is committed from the storefront's point of view; drop the
	// composition state so the session starts clean.
	ctx := r.Context()
	err = errors.Join(
		app.orderRepo.Delete(ctx, sessionID),
		app.cartRepo.Delete(ctx, sessionID),
		app.selectionRepo.Delete(ctx, sessionID),
	)
	if err != nil {
		logger.Error("failed to clear order state after confirmation", "error", err)
	}

	resp := api.ConfirmationResponse{
		OrderRef:   confirmation.OrderRef,
		ScheduleId: confirmation.ScheduleID,
		Seats:      toApiConfirmationSeats(confirmation.Seats),
		Items:      toApiConfirmationItems(confirmation.Items),
		Total:      confirmation.Total,
		IssuedAt:   confirmation.IssuedAt,
		Status:     string(domain.OrderStatusConfirmed),
		QrCodePng:  base64.StdEncoding.EncodeToString(qrPng),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) toOrderResponse(order *domain.Order) api.OrderResponse {
	ticket, seats, lines := order.Payload.Decode()
	totals := domain.CalculateTotals(ticket, seats, lines, app.config.order.baseTicketPrice)

	apiSeats := make([]api.Seat, len(seats))
	for i, seat := range seats {
		apiSeats[i] = toApiSeat(seat, true)
	}

	apiLines := make([]api.CartLine, len(lines))
	for i, line := range lines {
		apiLines[i] = api.CartLine{
			Id:       line.ID,
			Name:     line.Name,
			Price:    line.Price,
			Quantity: line.Quantity,
		}
	}

	return api.OrderResponse{
		Status:          string(order.Status),
		MovieTitle:      ticket.MovieTitle,
		TheaterName:     ticket.TheaterName,
		Showtime:        ticket.Showtime,
		ScheduleId:      ticket.ScheduleID,
		Seats:           apiSeats,
		Concessions:     apiLines,
		TicketTotal:     totals.Tickets.StringFixed(2),
		ConcessionTotal: totals.Concessions.StringFixed(2),
		FinalTotal:      totals.Final.StringFixed(2),
	}
}

func toApiConfirmationSeats(seats []domain.ConfirmationSeat) []api.ConfirmationSeat {
	apiSeats := make([]api.ConfirmationSeat, len(seats))
	for i, seat := range seats {
		apiSeats[i] = api.ConfirmationSeat{
			Row:    seat.Row,
			Number: seat.Number,
		}
	}

	return apiSeats
}

func toApiConfirmationItems(items []domain.ConfirmationItem) []api.ConfirmationItem {
	apiItems := make([]api.ConfirmationItem, len(items))
	for i, item := range items {
		apiItems[i] = api.ConfirmationItem{
			Id:       item.ID,
			Quantity: item.Quantity,
		}
	}

	return apiItems
}
