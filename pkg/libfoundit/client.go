package libfoundit

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"path"

	"github.com/pkg/errors"
)

type (
	// A Client defines all interactions that can be performed on a foundit server.
	Client interface {
		// Health returns the status of the server.
		Health() (Health, error)
		// ListLostItems returns all the reports, newest first.
		ListLostItems() ([]LostItem, error)
		// CreateLostItem reports a lost item and returns the stored report.
		CreateLostItem(params LostItemParams) (LostItem, error)
	}

	client struct {
		http     *http.Client
		endpoint string
	}
)

// NewDefaultClient returns a new Client with default HTTP client.
func NewDefaultClient(endpoint string) (Client, error) {
	return NewClient(http.DefaultClient, endpoint)
}

// NewClient returns a new Client.
func NewClient(c *http.Client, endpoint string) (Client, error) {
	_, err := url.Parse(endpoint)
	return &client{endpoint: endpoint, http: c}, errors.Wrap(err, "could not parse endpoint")
}

func (c *client) Health() (Health, error) {
	var health Health
	err := c.do(http.MethodGet, "/api/health", nil, &health)
	return health, err
}

func (c *client) ListLostItems() ([]LostItem, error) {
	items := []LostItem{}
	err := c.do(http.MethodGet, "/api/lost-items", nil, &items)
	return items, err
}

func (c *client) CreateLostItem(params LostItemParams) (LostItem, error) {
	var item LostItem

	body, err := json.Marshal(params)
	if err != nil {
		return item, errors.Wrap(err, "could not serialize lost item")
	}

	err = c.do(http.MethodPost, "/api/lost-items", bytes.NewReader(body), &item)
	return item, err
}

func (c *client) do(method, p string, body io.Reader, v any) error {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return errors.Wrap(err, "could not parse endpoint")
	}
	u.Path = path.Join(u.Path, p)

	//
	// Build request
	req, err := http.NewRequest(method, u.String(), body)
	if err != nil {
		return errors.Wrap(err, "could not build request")
	}
	req.Close = true
	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Accept", "application/json")

	//
	// Perform request
	res, err := c.http.Do(req)
	if err != nil {
		return errors.Wrap(err, "could not perform request")
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		return parseAPIError(res.Body, res.StatusCode)
	}

	//
	// Process response
	dec := json.NewDecoder(res.Body)
	return errors.Wrap(dec.Decode(v), "could not parse response")
}
