package api

import (
	"context"

	"github.com/dmitrijs2005/ecgdesk/internal/client/models"
)

// AuthAPI wraps the authentication endpoints.
type AuthAPI struct {
	gw *Gateway
}

func NewAuthAPI(gw *Gateway) *AuthAPI {
	return &AuthAPI{gw: gw}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type,omitempty"`
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name,omitempty"`
}

// Login exchanges credentials for a bearer token.
func (a *AuthAPI) Login(ctx context.Context, email, password string) (string, error) {
	var out loginResponse
	resp, err := a.gw.http.R().
		SetContext(ctx).
		SetBody(loginRequest{Email: email, Password: password}).
		SetResult(&out).
		Post(loginPath)
	if err := a.gw.wrap(resp, err); err != nil {
		return "", err
	}
	return out.AccessToken, nil
}

// Register creates an account and returns the created profile. It does not
// authenticate: the caller must still log in.
func (a *AuthAPI) Register(ctx context.Context, email, password, fullName string) (*models.User, error) {
	var out models.User
	resp, err := a.gw.http.R().
		SetContext(ctx).
		SetBody(registerRequest{Email: email, Password: password, FullName: fullName}).
		SetResult(&out).
		Post(registerPath)
	if err := a.gw.wrap(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

// Me fetches the profile of the user owning the current credential.
func (a *AuthAPI) Me(ctx context.Context) (*models.User, error) {
	var out models.User
	resp, err := a.gw.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/auth/me")
	if err := a.gw.wrap(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout notifies the service. The client-side teardown does not depend on
// this call succeeding.
func (a *AuthAPI) Logout(ctx context.Context) error {
	resp, err := a.gw.http.R().
		SetContext(ctx).
		Post("/auth/logout")
	return a.gw.wrap(resp, err)
}
