package app

import (
	"net/http"
)

// GetCurrentUser serves the user record captured in the session at login.
func (app *application) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	user, ok := app.sessionUser(r)
	if !ok {
		// Authenticated session without a user record: the session predates
		// the record format or the stored value is corrupt. Treat as logged
		// out and make the client re-authenticate.
		app.sessionManager.Destroy(r.Context())
		app.unauthorizedAccessResponse(w, r)
		return
	}

	err := app.writeJSON(w, http.StatusOK, toUserResponse(user), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
