// Package apiclient is the typed HTTP client for the remote analysis and
// auth collaborator. It owns the session cookie, normalizes error handling
// and reports transport reachability to an optional listener.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// requestTimeout bounds every outbound call to the collaborator.
const requestTimeout = 30 * time.Second

// StatusListener receives transport-level reachability transitions. HTTP
// status codes are not connectivity signals; only whether the collaborator
// answered at all.
type StatusListener interface {
	SetOnline(online bool)
}

// Client performs typed HTTP calls against the collaborator. The zero value
// is not usable; construct with New.
type Client struct {
	baseURL  string
	http     *http.Client
	log      *zap.Logger
	listener StatusListener
}

// New constructs a Client for the given collaborator base URL. The cookie
// jar carries the session credential on every request. listener may be nil.
func New(baseURL string, log *zap.Logger, listener StatusListener) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Jar:     jar,
			Timeout: requestTimeout,
		},
		log:      log,
		listener: listener,
	}, nil
}

// SetStatusListener installs the reachability listener. Intended for
// startup wiring, before the client is shared between goroutines.
func (c *Client) SetStatusListener(l StatusListener) {
	c.listener = l
}

// reportOnline pushes a transport outcome to the listener, if any.
func (c *Client) reportOnline(online bool) {
	if c.listener != nil {
		c.listener.SetOnline(online)
	}
}

// do performs one JSON request against the collaborator and returns the
// response body on 2xx. Non-2xx responses become a typed *APIError; 401s
// are expected during normal operation and are logged at debug, everything
// else at error.
func (c *Client) do(ctx context.Context, method, path string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.reportOnline(false)
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()
	c.reportOnline(true)

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := newAPIError(resp.StatusCode, respBody)
		if resp.StatusCode == http.StatusUnauthorized {
			// Normal when the user is not signed in, keep it quiet.
			c.log.Debug("collaborator returned 401",
				zap.String("method", method),
				zap.String("path", path),
			)
		} else {
			c.log.Error("collaborator request failed",
				zap.String("method", method),
				zap.String("path", path),
				zap.Int("status", resp.StatusCode),
				zap.String("detail", apiErr.Detail),
			)
		}
		return nil, apiErr
	}

	return respBody, nil
}

// getJSON performs a GET and decodes the response into out.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	body, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, out)
}

// postJSON performs a POST and decodes the response into out when out is
// non-nil.
func (c *Client) postJSON(ctx context.Context, path string, in, out any) error {
	body, err := c.do(ctx, http.MethodPost, path, in)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(body, out)
}

// HealthCheck returns the collaborator status. It never returns an error:
// any failure degrades to the fixed error snapshot so the home view always
// has something to render.
func (c *Client) HealthCheck(ctx context.Context) Health {
	var h Health
	if err := c.getJSON(ctx, "/health", &h); err != nil {
		c.log.Debug("health check failed", zap.Error(err))
		return degradedHealth()
	}
	return h
}

// AnalyzeText submits text for analysis and returns the structured result.
// Non-2xx responses surface as *APIError for the view to map.
func (c *Client) AnalyzeText(ctx context.Context, text string) (Analysis, error) {
	var a Analysis
	if err := c.postJSON(ctx, "/api/analysis/analyze", analyzeRequest{Text: text}, &a); err != nil {
		return Analysis{}, err
	}
	return a, nil
}

// GetHistory returns one page of past analyses, most recent first as
// delivered by the collaborator. It never returns an error: any failure
// yields an empty slice.
func (c *Client) GetHistory(ctx context.Context, page, limit int) []Analysis {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))

	var hp HistoryPage
	if err := c.getJSON(ctx, "/api/analysis/history?"+q.Encode(), &hp); err != nil {
		c.log.Error("history fetch failed", zap.Error(err))
		return []Analysis{}
	}
	if hp.Items == nil {
		return []Analysis{}
	}
	return hp.Items
}

// GetAnalysisByID fetches a single analysis. Unknown ids surface as a 404
// *APIError.
func (c *Client) GetAnalysisByID(ctx context.Context, id string) (Analysis, error) {
	var a Analysis
	if err := c.getJSON(ctx, "/api/analysis/history/"+url.PathEscape(id), &a); err != nil {
		return Analysis{}, err
	}
	return a, nil
}

// Login authenticates with the collaborator. The session cookie lands in
// the jar on success.
func (c *Client) Login(ctx context.Context, email, password string) (AuthResponse, error) {
	var ar AuthResponse
	err := c.postJSON(ctx, "/api/auth/login", loginRequest{Email: email, Password: password}, &ar)
	if err != nil {
		return AuthResponse{}, err
	}
	return ar, nil
}

// Register creates an account. fullName may be empty.
func (c *Client) Register(ctx context.Context, email, password, fullName string) (AuthResponse, error) {
	var ar AuthResponse
	req := registerRequest{Email: email, Password: password, FullName: fullName}
	if err := c.postJSON(ctx, "/api/auth/register", req, &ar); err != nil {
		return AuthResponse{}, err
	}
	return ar, nil
}

// Logout tells the collaborator to drop the session. Best effort: callers
// clear local state regardless of the outcome.
func (c *Client) Logout(ctx context.Context) error {
	return c.postJSON(ctx, "/api/auth/logout", nil, nil)
}

// CurrentUser resolves the authenticated user, or nil when there is none.
// A 401 means "not signed in" and is not an error; any other failure is
// logged and also mapped to nil, so this never returns an error.
func (c *Client) CurrentUser(ctx context.Context) *User {
	var u User
	err := c.getJSON(ctx, "/api/auth/me", &u)
	if err == nil {
		return &u
	}
	if IsStatus(err, http.StatusUnauthorized) {
		return nil
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		// HTTP failures are already logged in do; cover transport errors.
		c.log.Error("current user lookup failed", zap.Error(err))
	}
	return nil
}

// ResendConfirmation asks the collaborator to resend the account
// confirmation email. Used from the login-error recovery path.
func (c *Client) ResendConfirmation(ctx context.Context, email string) error {
	return c.postJSON(ctx, "/api/auth/resend-confirmation", resendRequest{Email: email}, nil)
}
