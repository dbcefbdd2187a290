package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/ecgdesk/internal/client/repositories/credentials"
	"github.com/dmitrijs2005/ecgdesk/internal/common"
	"github.com/dmitrijs2005/ecgdesk/internal/logging"
)

const (
	loginPath    = "/auth/login"
	registerPath = "/auth/register"
)

// TokenSource supplies the current bearer credential. The gateway reads it
// on every outbound request so a token written mid-flight is picked up by
// the next call and a cleared one is never re-sent.
type TokenSource interface {
	Token() string
}

// Invalidator receives the authorization-denied signal. The session store
// implements it; hosts observe the teardown through the store's event, not
// through the gateway itself.
type Invalidator interface {
	Invalidate()
}

// Gateway mediates every request to the ECG service.
type Gateway struct {
	http *resty.Client
	log  logging.Logger
}

// NewGateway builds the shared HTTP client. All endpoint wrappers must be
// constructed from the same Gateway so the credential and 401 policy apply
// uniformly.
func NewGateway(baseURL string, timeout time.Duration, tokens TokenSource, repo credentials.Repository, sessions Invalidator, log logging.Logger) *Gateway {
	c := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	c.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		if t := tokens.Token(); t != "" {
			req.SetAuthToken(t)
		}
		req.SetHeader(common.RequestIDHeader, uuid.NewString())
		return nil
	})

	c.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		if resp.StatusCode() != http.StatusUnauthorized || isAuthEntry(resp.Request) {
			return nil
		}

		// Teardown runs before the rejected result reaches the caller.
		ctx := resp.Request.Context()
		if err := repo.Clear(ctx); err != nil {
			log.Error(ctx, "erasing rejected credential", "error", err)
		}
		sessions.Invalidate()
		log.Warn(ctx, "authorization rejected, session invalidated", "path", requestPath(resp.Request))
		return nil
	})

	return &Gateway{http: c, log: log}
}

func requestPath(req *resty.Request) string {
	if req.RawRequest != nil && req.RawRequest.URL != nil {
		return req.RawRequest.URL.Path
	}
	return req.URL
}

// isAuthEntry reports whether the request targets login or registration.
// A 401 on those endpoints stays local to the caller: the user simply
// is not logged in yet.
func isAuthEntry(req *resty.Request) bool {
	p := requestPath(req)
	return strings.HasSuffix(p, loginPath) || strings.HasSuffix(p, registerPath)
}
