// Package client is the resilient HTTP layer every backend call goes
// through. It injects the session's bearer credential and retries transient
// failures on idempotent methods. When the backend rejects the credential
// with a 401, the whole process is de-authenticated.
package client

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/adarsh5347/impacthub-client/guard"
	"github.com/adarsh5347/impacthub-client/internal/config"
)

// Sessions is the slice of the session store the client needs: the current
// credential, and the ability to clear it.
type Sessions interface {
	Token() string
	Logout()
}

// Navigator is implemented by the UI shell's router. Location reports the
// currently rendered destination; Navigate forces a full navigation.
type Navigator interface {
	Location() string
	Navigate(destination string)
}

// Client wraps an http.Client with credential injection, bounded retry and
// global de-authentication. One instance is shared process-wide.
type Client struct {
	baseURL    string
	http       *http.Client
	retryDelay time.Duration
	retryLimit int

	sessions Sessions
	nav      Navigator

	mu            sync.Mutex
	deauthed      bool
	deauthedToken string
}

// New creates a Client from configuration. Bind the session store and router
// with BindSessions / BindNavigator once they exist; until then requests go
// out anonymously and 401 handling only logs.
func New(cfg config.APIConfig) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.GetBaseURL(), "/"),
		http:       &http.Client{Timeout: cfg.GetRequestTimeout()},
		retryDelay: cfg.GetRetryDelay(),
		retryLimit: cfg.GetRetryLimit(),
	}
}

// BindSessions attaches the session store the client reads credentials from
// and logs out on credential rejection.
func (c *Client) BindSessions(s Sessions) {
	c.sessions = s
}

// BindNavigator attaches the router used for the forced login redirect.
func (c *Client) BindNavigator(n Navigator) {
	c.nav = n
}

// Do dispatches a request. A bearer credential is attached when the session
// has one and the caller did not set its own Authorization header. Idempotent
// requests that fail at the transport level or with a status of 500 or above
// are re-issued once after a fixed delay; if the retry fails too, the
// original failure is surfaced. Any 401 triggers global de-authentication;
// the response is still returned so the caller can react locally.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	tok := ""
	if c.sessions != nil {
		tok = c.sessions.Token()
	}
	if tok != "" && req.Header.Get("Authorization") == "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	if req.Header.Get("X-Request-ID") == "" {
		req.Header.Set("X-Request-ID", uuid.NewString())
	}

	resp, err := c.dispatch(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		c.handleUnauthorized(req.Header.Get("Authorization"))
	}
	return resp, nil
}

// dispatch runs the bounded retry loop. The budget is deliberately a loop
// with an attempt counter, not recursion.
func (c *Client) dispatch(req *http.Request) (*http.Response, error) {
	attempts := 1
	// A consumed body that cannot be re-issued rules out a retry.
	if idempotent(req.Method) && (req.Body == nil || req.GetBody != nil) {
		attempts += c.retryLimit
	}

	var firstResp *http.Response
	var firstErr error

	for attempt := 0; attempt < attempts; attempt++ {
		attemptReq := req
		if attempt > 0 {
			select {
			case <-req.Context().Done():
				return nil, req.Context().Err()
			case <-time.After(c.retryDelay):
			}

			clone := req.Clone(req.Context())
			if req.GetBody != nil {
				body, err := req.GetBody()
				if err != nil {
					break
				}
				clone.Body = body
			}
			attemptReq = clone
			log.Debug().
				Str("method", req.Method).
				Str("url", req.URL.String()).
				Int("attempt", attempt+1).
				Msg("client: retrying request")
		}

		resp, err := c.http.Do(attemptReq)
		if err == nil && resp.StatusCode < http.StatusInternalServerError {
			if firstResp != nil {
				firstResp.Body.Close()
			}
			return resp, nil
		}

		if attempt == 0 {
			firstResp, firstErr = resp, err
		} else if resp != nil {
			resp.Body.Close()
		}
	}

	return firstResp, firstErr
}

// handleUnauthorized performs the global de-authentication: one Logout and
// one forced navigation to the login destination, de-duplicated across
// concurrent rejections of the same credential. No redirect is issued when
// the shell is already on the login destination.
func (c *Client) handleUnauthorized(credential string) {
	c.mu.Lock()
	// Further rejections of an already-rejected credential, and of
	// anonymous requests racing the logout, are swallowed. A different
	// credential (a later login) trips the de-auth again.
	if c.deauthed && (credential == "" || credential == c.deauthedToken) {
		c.mu.Unlock()
		return
	}
	c.deauthed = true
	c.deauthedToken = credential
	c.mu.Unlock()

	log.Warn().Msg("client: credential rejected, clearing session")
	if c.sessions != nil {
		c.sessions.Logout()
	}
	if c.nav != nil && c.nav.Location() != guard.DestLogin {
		c.nav.Navigate(guard.DestLogin)
	}
}

// idempotent reports whether a method is safe to retry automatically.
// Mutating methods never are, to avoid duplicate side effects.
func idempotent(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	default:
		return false
	}
}
