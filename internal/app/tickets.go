package app

import (
	"net/http"
	"time"

	"cinetix/api"
)

// GetUserTickets returns the purchase history of the session user from the
// upstream ticketing backend.
func (app *application) GetUserTickets(w http.ResponseWriter, r *http.Request) {
	userId := app.contextGetUserId(r)

	tickets, err := app.ticketService.GetTicketsByUser(r.Context(), userId)
	if err != nil {
		app.upstreamErrorResponse(w, r, err)
		return
	}

	apiTickets := make([]api.Ticket, len(tickets))
	for i, ticket := range tickets {
		apiTickets[i] = api.Ticket{
			Id:         ticket.ID,
			ScheduleId: ticket.ScheduleID,
			MovieTitle: ticket.MovieTitle,
			Seat:       ticket.Seat,
			CreatedAt:  ticket.CreatedAt.Format(time.RFC3339),
		}
	}

	resp := api.TicketListResponse{
		Tickets: apiTickets,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
