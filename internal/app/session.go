package app

import (
	"encoding/json"
	"net/http"

	"cinetix/internal/domain"
)

type sessionKey string

const (
	SessionKeyUserId = sessionKey("userID")
	SessionKeyUser   = sessionKey("user")
	SessionKeyGuest  = sessionKey("guest")
)

func (s sessionKey) String() string {
	return string(s)
}

func (app *application) contextGetUserId(r *http.Request) int {
	userId, ok := r.Context().Value(SessionKeyUserId).(int)
	if !ok {
		panic("missing user id from context")
	}

	return userId
}

// sessionUser returns the current-user record stored in the session on login.
func (app *application) sessionUser(r *http.Request) (*domain.User, bool) {
	raw := app.sessionManager.GetString(r.Context(), SessionKeyUser.String())
	if raw == "" {
		return nil, false
	}

	var user domain.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, false
	}

	return &user, true
}

func (app *application) putSessionUser(r *http.Request, user *domain.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}

	app.sessionManager.Put(r.Context(), SessionKeyUserId.String(), user.ID)
	app.sessionManager.Put(r.Context(), SessionKeyUser.String(), string(data))

	return nil
}
