package app

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequireAuthentication(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userId := r.Context().Value(SessionKeyUserId)
		assert.Equal(t, 1, userId)

		w.WriteHeader(http.StatusOK)
	})

	t.Run("blocks anonymous sessions", func(t *testing.T) {
		app := newTestApplication()

		w, r := executeRequest(t, http.MethodGet, "/users/me", nil)
		r = setupTestSession(t, app, r, 0)

		app.requireAuthentication(next).ServeHTTP(w, r)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		checkErrorResponse(t, w, http.StatusUnauthorized, "You must be logged in to access this resource")
	})

	t.Run("passes authenticated sessions through with the user id", func(t *testing.T) {
		app := newTestApplication()

		w, r := executeRequest(t, http.MethodGet, "/users/me", nil)
		r = setupTestSession(t, app, r, 1)

		app.requireAuthentication(next).ServeHTTP(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRecoverPanic(t *testing.T) {
	app := newTestApplication()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("something went wrong")
	})

	w, r := executeRequest(t, http.MethodGet, "/movies", nil)

	app.recoverPanic(next).ServeHTTP(w, r)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "close", w.Header().Get("Connection"))
}
