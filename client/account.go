package client

import (
	"context"
	"net/http"

	"github.com/adarsh5347/impacthub-client/session"
)

const (
	loginPath       = "/api/auth/login"
	currentUserPath = "/api/auth/current-user"
)

// AccountAPI talks to the backend's authentication endpoints. It implements
// session.Backend, closing the loop between the session store and the
// resilient transport.
type AccountAPI struct {
	c *Client
}

var _ session.Backend = (*AccountAPI)(nil)

func NewAccountAPI(c *Client) *AccountAPI {
	return &AccountAPI{c: c}
}

// Credentials is the login request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	UserType string `json:"userType,omitempty"`
}

// Login authenticates against the backend and returns the raw, heterogeneous
// login response for session.Store.ApplyLoginResponse to normalize.
func (a *AccountAPI) Login(ctx context.Context, creds Credentials) (session.LoginResponse, error) {
	var resp session.LoginResponse
	if err := a.c.PostJSON(ctx, loginPath, creds, &resp); err != nil {
		return session.LoginResponse{}, err
	}
	return resp, nil
}

// CurrentUser resolves the profile behind a specific token. The token is set
// explicitly rather than read from the session store, because restore calls
// this while the store is still resolving.
func (a *AccountAPI) CurrentUser(ctx context.Context, token string) (*session.Profile, error) {
	req, err := a.c.NewRequest(ctx, http.MethodGet, currentUserPath, nil)
	if err != nil {
		return nil, err
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := a.c.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var profile session.Profile
	if err := decodeResponse(resp, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}
