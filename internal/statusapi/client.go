package statusapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/seclab/labstatus/internal/model"
)

var errNoCredentials = errors.New("API credentials not configured")

// Notifier is told about every accepted status change.
type Notifier interface {
	Notify(model.Status) bool
}

// Client talks to the lab status API.
type Client struct {
	apiURL   string
	user     string
	pass     string
	client   *http.Client
	notifier Notifier
	log      *slog.Logger
}

type Option func(*Client)

func WithCredentials(user, pass string) Option {
	return func(c *Client) {
		c.user = user
		c.pass = pass
	}
}

// WithNotifier sets the webhook notifier. A nil Notifier disables notification.
func WithNotifier(n Notifier) Option {
	return func(c *Client) { c.notifier = n }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.log = l }
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.client = hc }
}

func New(apiURL string, opts ...Option) *Client {
	c := &Client{
		apiURL: apiURL,
		client: &http.Client{Timeout: 30 * time.Second},
		log:    slog.Default(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// --- HTTP helpers ---

func (c *Client) doJSON(method string, body any, auth bool) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request: %w", err)
		}
		bodyReader = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, c.apiURL, bodyReader)
	if err != nil {
		return nil, err
	}
	if auth {
		req.SetBasicAuth(c.user, c.pass)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.client.Do(req)
}

func decodeResponse[T any](resp *http.Response) (T, error) {
	defer resp.Body.Close()
	var zero T

	if resp.StatusCode != http.StatusOK {
		return zero, fmt.Errorf("API error %d", resp.StatusCode)
	}

	var wrapper struct {
		Data *T `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&wrapper); err != nil {
		return zero, fmt.Errorf("decoding response: %w", err)
	}
	if wrapper.Data == nil {
		return zero, fmt.Errorf("decoding response: missing data")
	}
	return *wrapper.Data, nil
}

// --- API response types ---

type apiStatus struct {
	Status string `json:"status"`
}

// --- Operations ---

// Fetch returns the current status, or model.StatusError when the API is
// unreachable or answers with anything but a 200 carrying a status.
func (c *Client) Fetch() model.Status {
	resp, err := c.doJSON(http.MethodGet, nil, false)
	if err != nil {
		c.log.Warn("status fetch failed", "err", err)
		return model.StatusError
	}
	as, err := decodeResponse[apiStatus](resp)
	if err != nil {
		c.log.Warn("status fetch failed", "status_code", resp.StatusCode, "err", err)
		return model.StatusError
	}
	if err := model.ValidateStatus(model.Status(as.Status)); err != nil {
		c.log.Warn("status fetch failed", "err", err)
		return model.StatusError
	}
	c.log.Debug("status fetched", "status", as.Status)
	return model.Status(as.Status)
}

// SubmitResult reports both side effects of a status change.
type SubmitResult struct {
	Submitted bool
	// Notified is true when the webhook accepted the message or no webhook is configured.
	Notified bool
}

// OK reports whether the change was accepted and announced.
func (r SubmitResult) OK() bool {
	return r.Submitted && r.Notified
}

// Submit posts a status change. An empty color is filled from the color table.
func (c *Client) Submit(label model.Status, color string) SubmitResult {
	req, err := model.NewRequest(label, color)
	if err != nil {
		c.log.Warn("status submit rejected", "err", err)
		return SubmitResult{}
	}
	if err := c.post(req); err != nil {
		c.log.Warn("status submit failed", "status", req.Label, "color", req.Color, "err", err)
		return SubmitResult{}
	}
	c.log.Info("status submitted", "status", req.Label, "color", req.Color)

	res := SubmitResult{Submitted: true, Notified: true}
	if c.notifier != nil {
		res.Notified = c.notifier.Notify(label)
	}
	return res
}

func (c *Client) post(req model.Request) error {
	if c.user == "" || c.pass == "" {
		return errNoCredentials
	}
	resp, err := c.doJSON(http.MethodPost, req, true)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("API error %d", resp.StatusCode)
	}
	return nil
}
