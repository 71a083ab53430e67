package app

import (
	"context"
	"errors"
	"net/http"

	"cinetix/api"
	"cinetix/internal/domain"
)

func (app *application) Login(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	userId := app.sessionManager.GetInt(r.Context(), SessionKeyUserId.String())
	if userId != 0 {
		resp := api.AlreadyLoggedInResponse{
			Message: "You are already logged in",
		}

		err := app.writeJSON(w, http.StatusOK, resp, nil)
		if err != nil {
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	var input api.LoginRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	// Empty fields are rejected here, before any upstream round-trip, with
	// the same generic message a credential mismatch produces.
	err = app.validator.Struct(input)
	if err != nil {
		logger.Warn("login validation failed")
		app.invalidCredentialsResponse(w, r)
		return
	}

	user, err := app.authService.Login(r.Context(), input.Username, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			logger.Warn("login attempt with invalid credentials")
			app.invalidCredentialsResponse(w, r)
		default:
			logger.Error("upstream login failed", "error", err)
			app.upstreamErrorResponse(w, r, err)
		}

		return
	}

	oldSessionId := app.sessionManager.Token(r.Context())

	// To help prevent session fixation attacks we should renew the session token after any privilege level change.
	// https://github.com/OWASP/CheatSheetSeries/blob/master/cheatsheets/Session_Management_Cheat_Sheet.md#renew-the-session-id-after-any-privilege-level-change
	err = app.sessionManager.RenewToken(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	newSessionId := app.sessionManager.Token(r.Context())
	err = app.migrateSessionData(r.Context(), oldSessionId, newSessionId)
	if err != nil {
		logger.Error(
			"failed to migrate session data",
			"error", err,
			"oldSessionId", oldSessionId,
			"newSessionId", newSessionId,
		)
	}

	err = app.putSessionUser(r, user)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toUserResponse(user), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// migrateSessionData carries the in-progress order composition state from the
// pre-login session to the renewed one, so logging in mid-flow does not drop
// the chosen seats or the cart.
func (app *application) migrateSessionData(ctx context.Context, oldSessionId, newSessionId string) error {
	selection, err := app.selectionRepo.Get(ctx, oldSessionId)
	if err != nil {
		return err
	}

	if len(selection) > 0 {
		if err := app.selectionRepo.Save(ctx, newSessionId, selection); err != nil {
			return err
		}
	}

	cart, err := app.cartRepo.Get(ctx, oldSessionId)
	if err != nil {
		return err
	}

	if len(cart.Lines) > 0 || len(cart.Pending) > 0 {
		if err := app.cartRepo.Save(ctx, newSessionId, cart); err != nil {
			return err
		}
	}

	order, err := app.orderRepo.Get(ctx, oldSessionId)
	if err != nil && !errors.Is(err, domain.ErrOrderNotFound) {
		return err
	}

	if order != nil {
		if err := app.orderRepo.Save(ctx, newSessionId, order); err != nil {
			return err
		}
	}

	return errors.Join(
		app.selectionRepo.Delete(ctx, oldSessionId),
		app.cartRepo.Delete(ctx, oldSessionId),
		app.orderRepo.Delete(ctx, oldSessionId),
	)
}

func (app *application) RegisterUser(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.RegisterRequest

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

	user, err := app.authService.Register(r.Context(), domain.Registration{
		Username: input.Username,
		Email:    input.Email,
		FullName: input.FullName,
		Password: input.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserAlreadyExists):
			logger.Warn("registration attempt for existing account")
			// do not return the info of existence of the account to avoid user enumeration attacks
			app.badRequestResponse(w, r, errors.New("invalid input data"))
		default:
			logger.Error("upstream registration failed", "error", err)
			app.upstreamErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusCreated, toUserResponse(user), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) Logout(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	userId := app.sessionManager.GetInt(r.Context(), SessionKeyUserId.String())
	if userId == 0 {
		app.notFoundResponse(w, r)
		return
	}

	// Best effort; the local session is torn down regardless.
	err := app.authService.Logout(r.Context())
	if err != nil {
		logger.Warn("upstream logout failed", "error", err)
	}

	err = app.sessionManager.Destroy(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toUserResponse(user *domain.User) api.UserResponse {
	return api.UserResponse{
		Id:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		FullName: user.FullName,
		Role:     user.Role,
	}
}
