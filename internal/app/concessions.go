package app

import (
	"errors"
	"net/http"

	"cinetix/api"
	"cinetix/internal/domain"
)

var errInvalidProductID = errors.New("product ID must be a positive integer")

func (app *application) GetConcessions(w http.ResponseWriter, r *http.Request) {
	items, err := app.concessionService.GetProducts(r.Context())
	if err != nil {
		app.upstreamErrorResponse(w, r, err)
		return
	}

	apiItems := make([]api.ConcessionItem, len(items))
	for i, item := range items {
		apiItems[i] = api.ConcessionItem{
			Id:    item.ID,
			Name:  item.Name,
			Price: item.Price,
			Image: item.Image,
		}
	}

	resp := api.ConcessionListResponse{
		Items: apiItems,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetCart(w http.ResponseWriter, r *http.Request) {
	sessionID := app.sessionManager.Token(r.Context())

	cart, err := app.cartRepo.Get(r.Context(), sessionID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiCart(cart), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// AdjustPending moves the not-yet-committed quantity for a product up or
// down. The quantity is clamped at zero; there is no upper bound.
func (app *application) AdjustPending(w http.ResponseWriter, r *http.Request) {
	var input api.AdjustPendingRequest

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

	sessionID := app.sessionManager.Token(r.Context())
	cart, err := app.cartRepo.Get(r.Context(), sessionID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	cart.AdjustPending(input.ProductId, input.Delta)

	err = app.cartRepo.Save(r.Context(), sessionID, cart)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiCart(cart), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// CommitItem folds a product's pending quantity into the committed cart
// lines. Committing with a zero pending quantity changes nothing.
func (app *application) CommitItem(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.CommitItemRequest

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

	items, err := app.concessionService.GetProducts(r.Context())
	if err != nil {
		app.upstreamErrorResponse(w, r, err)
		return
	}

	var item *domain.ConcessionItem
	for i := range items {
		if items[i].ID == input.ProductId {
			item = &items[i]
			break
		}
	}

	if item == nil {
		logger.Warn("commit attempt for unknown product", "product_id", input.ProductId)
		app.notFoundResponse(w, r)
		return
	}

	sessionID := app.sessionManager.Token(r.Context())
	cart, err := app.cartRepo.Get(r.Context(), sessionID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	cart.Commit(*item)

	err = app.cartRepo.Save(r.Context(), sessionID, cart)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiCart(cart), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) RemoveCartLine(w http.ResponseWriter, r *http.Request) {
	productId, ok := urlParamInt(r, "productId")
	if !ok {
		app.badRequestResponse(w, r, errInvalidProductID)
		return
	}

	sessionID := app.sessionManager.Token(r.Context())
	cart, err := app.cartRepo.Get(r.Context(), sessionID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	cart.RemoveLine(productId)

	err = app.cartRepo.Save(r.Context(), sessionID, cart)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiCart(cart), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toApiCart(cart *domain.Cart) api.CartResponse {
	lines := make([]api.CartLine, len(cart.Lines))
	for i, line := range cart.Lines {
		lines[i] = api.CartLine{
			Id:       line.ID,
			Name:     line.Name,
			Price:    line.Price,
			Quantity: line.Quantity,
		}
	}

	return api.CartResponse{
		Lines:   lines,
		Pending: cart.Pending,
		Total:   cart.Total().StringFixed(2),
	}
}
