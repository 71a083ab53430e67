package app

import (
	"net/http"

	"cinetix/api"
	"cinetix/internal/domain"
)

func (app *application) GetTheaters(w http.ResponseWriter, r *http.Request) {
	var theaters []domain.Theater
	var err error

	if r.URL.Query().Get("active") == "true" {
		theaters, err = app.theaterService.GetActiveTheaters(r.Context())
	} else {
		theaters, err = app.theaterService.GetTheaters(r.Context())
	}

	if err != nil {
		app.upstreamErrorResponse(w, r, err)
		return
	}

	apiTheaters := make([]api.Theater, len(theaters))
	for i, theater := range theaters {
		apiTheaters[i] = api.Theater{
			Id:      theater.ID,
			Name:    theater.Name,
			Address: theater.Address,
			City:    theater.City,
			Phone:   theater.Phone,
			Active:  theater.Active,
		}
	}

	resp := api.TheaterListResponse{
		Theaters: apiTheaters,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
