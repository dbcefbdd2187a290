package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/dmitrijs2005/ecgdesk/internal/common"
)

// APIError is a non-2xx response that is not authorization-related.
// It unwraps to common.ErrServer for errors.Is matching.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.Status, e.Detail)
}

func (e *APIError) Unwrap() error {
	return common.ErrServer
}

type errorBody struct {
	Detail string `json:"detail"`
}

// wrap maps a settled request onto the error taxonomy. err is the transport
// error from resty (nil unless the request never produced a response).
func (g *Gateway) wrap(resp *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	if resp.IsSuccess() {
		return nil
	}

	detail := errorDetail(resp)

	switch resp.StatusCode() {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s", common.ErrUnauthorized, detail)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", common.ErrNotFound, detail)
	default:
		return &APIError{Status: resp.StatusCode(), Detail: detail}
	}
}

// errorDetail extracts the server-provided detail message, falling back to
// the HTTP status line when the body carries none.
func errorDetail(resp *resty.Response) string {
	var body errorBody
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Detail != "" {
		return body.Detail
	}
	return resp.Status()
}
