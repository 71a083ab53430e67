package domain

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TicketContext carries the showtime details captured when the order was
// aggregated: enough to label the order and price its seats without another
// round-trip to the catalog.
type TicketContext struct {
	ScheduleID  int             `json:"scheduleId"`
	MovieTitle  string          `json:"movieTitle"`
	TheaterName string          `json:"theaterName"`
	Showtime    string          `json:"showtime"`
	SeatPrice   decimal.Decimal `json:"seatPrice"`
}

// CheckoutPayload is the serialized bundle handed from the order composition
// steps to the checkout calculator. Each part is an independently JSON-encoded
// string, so a corrupt part degrades to its empty default on decode without
// taking the others down with it. Absent parts are encoded as empty values,
// never null.
type CheckoutPayload struct {
	Ticket        string `json:"ticket"`
	SelectedSeats string `json:"selectedSeats"`
	Concessions   string `json:"concessions"`
}

func NewCheckoutPayload(ticket TicketContext, seats Selection, lines []CartLine) (CheckoutPayload, error) {
	if seats == nil {
		seats = Selection{}
	}
	if lines == nil {
		lines = []CartLine{}
	}

	ticketJSON, err := json.Marshal(ticket)
	if err != nil {
		return CheckoutPayload{}, err
	}

	seatsJSON, err := json.Marshal(seats)
	if err != nil {
		return CheckoutPayload{}, err
	}

	linesJSON, err := json.Marshal(lines)
	if err != nil {
		return CheckoutPayload{}, err
	}

	return CheckoutPayload{
		Ticket:        string(ticketJSON),
		SelectedSeats: string(seatsJSON),
		Concessions:   string(linesJSON),
	}, nil
}

// Decode parses the three parts independently. A part that fails to parse
// degrades to its empty default; the other parts are unaffected and no error
// is surfaced.
func (p CheckoutPayload) Decode() (TicketContext, Selection, []CartLine) {
	var ticket TicketContext
	var parsedTicket TicketContext
	if err := json.Unmarshal([]byte(p.Ticket), &parsedTicket); err == nil {
		ticket = parsedTicket
	}

	seats := Selection{}
	var parsedSeats Selection
	if err := json.Unmarshal([]byte(p.SelectedSeats), &parsedSeats); err == nil && parsedSeats != nil {
		seats = parsedSeats
	}

	lines := []CartLine{}
	var parsedLines []CartLine
	if err := json.Unmarshal([]byte(p.Concessions), &parsedLines); err == nil && parsedLines != nil {
		lines = parsedLines
	}

	return ticket, seats, lines
}

// OrderTotals is the derived price breakdown. It is computed on demand and
// never stored.
type OrderTotals struct {
	Tickets     decimal.Decimal
	Concessions decimal.Decimal
	Final       decimal.Decimal
}

// CalculateTotals prices the order: seat count times the per-seat price from
// the ticket context (falling back to the configured default when the
// schedule carried no price), plus price times quantity per cart line.
func CalculateTotals(ticket TicketContext, seats Selection, lines []CartLine, defaultSeatPrice decimal.Decimal) OrderTotals {
	seatPrice := ticket.SeatPrice
	if seatPrice.IsZero() {
		seatPrice = defaultSeatPrice
	}

	tickets := seatPrice.Mul(decimal.NewFromInt(int64(len(seats))))

	concessions := decimal.Zero
	for _, line := range lines {
		concessions = concessions.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	return OrderTotals{
		Tickets:     tickets,
		Concessions: concessions,
		Final:       tickets.Add(concessions),
	}
}

type OrderStatus string

const (
	OrderStatusReviewing OrderStatus = "REVIEWING"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
)

// Order is the session-scoped order draft: the aggregated payload plus its
// review state. The state moves one way, from REVIEWING to CONFIRMED.
type Order struct {
	Payload CheckoutPayload `json:"payload"`
	Status  OrderStatus     `json:"status"`
}

type ConfirmationSeat struct {
	Row    string `json:"row"`
	Number int    `json:"number"`
}

type ConfirmationItem struct {
	ID       int `json:"id"`
	Quantity int `json:"quantity"`
}

// Confirmation is the minimal artifact encoded for scan-based pickup
// verification: identifiers and quantities only, never the full seat or
// product records.
type Confirmation struct {
	OrderRef   string             `json:"orderRef"`
	ScheduleID int                `json:"scheduleId"`
	Seats      []ConfirmationSeat `json:"seats"`
	Items      []ConfirmationItem `json:"items"`
	Total      string             `json:"total"`
	IssuedAt   time.Time          `json:"issuedAt"`
}

func NewConfirmation(ticket TicketContext, seats Selection, lines []CartLine, totals OrderTotals, issuedAt time.Time) Confirmation {
	confirmationSeats := make([]ConfirmationSeat, 0, len(seats))
	for _, seat := range seats {
		confirmationSeats = append(confirmationSeats, ConfirmationSeat{
			Row:    seat.Row,
			Number: seat.SeatNumber,
		})
	}

	items := make([]ConfirmationItem, 0, len(lines))
	for _, line := range lines {
		if line.Quantity == 0 {
			continue
		}

		items = append(items, ConfirmationItem{
			ID:       line.ID,
			Quantity: line.Quantity,
		})
	}

	return Confirmation{
		OrderRef:   uuid.New().String(),
		ScheduleID: ticket.ScheduleID,
		Seats:      confirmationSeats,
		Items:      items,
		Total:      totals.Final.StringFixed(2),
		IssuedAt:   issuedAt,
	}
}

type OrderRepository interface {
	Get(ctx context.Context, sessionID string) (*Order, error)
	Save(ctx context.Context, sessionID string, order *Order) error
	Delete(ctx context.Context, sessionID string) error
}
