package backend

import (
	"context"
	"errors"
	"net/http"

	"cinetix/internal/domain"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Password string `json:"password"`
}

// Login exchanges credentials for the user record. The upstream API does not
// distinguish unknown users from wrong passwords, and neither do we.
func (c *Client) Login(ctx context.Context, username, password string) (*domain.User, error) {
	var user domain.User

	err := c.post(ctx, "login", "/authentication/login", loginRequest{
		Username: username,
		Password: password,
	}, &user)
	if err != nil {
		var backendErr *Error
		if errors.As(err, &backendErr) && backendErr.Kind == KindStatus {
			switch backendErr.StatusCode {
			case http.StatusBadRequest, http.StatusUnauthorized, http.StatusNotFound:
				return nil, domain.ErrInvalidCredentials
			}
		}

		return nil, err
	}

	return &user, nil
}

func (c *Client) Register(ctx context.Context, registration domain.Registration) (*domain.User, error) {
	var user domain.User

	err := c.post(ctx, "register", "/authentication/register", registerRequest{
		Username: registration.Username,
		Email:    registration.Email,
		FullName: registration.FullName,
		Password: registration.Password,
	}, &user)
	if err != nil {
		var backendErr *Error
		if errors.As(err, &backendErr) && backendErr.StatusCode == http.StatusConflict {
			return nil, domain.ErrUserAlreadyExists
		}

		return nil, err
	}

	return &user, nil
}

func (c *Client) Logout(ctx context.Context) error {
	return c.post(ctx, "logout", "/authentication/logout", nil, nil)
}
