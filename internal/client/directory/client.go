// Package directory fetches employee records from the remote employee API
// and enriches them into the shape the dashboard consumes.
package directory

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/atinyakov/staffdeck/internal/models"
)

// ErrNotFound is returned by Get when the API reports no such employee.
var ErrNotFound = errors.New("employee not found")

// DefaultLimit is the collection page size requested by the dashboard.
const DefaultLimit = 20

// Client talks to the employee API. All calls honor ctx so a navigation
// away cancels the in-flight fetch and discards its result.
type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a client for the API at baseURL. httpClient may be nil, in
// which case http.DefaultClient is used.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: baseURL, http: httpClient}
}

// List fetches up to limit employees and enhances each record.
func (c *Client) List(ctx context.Context, limit int) ([]models.Employee, error) {
	url := c.baseURL + "/employees?limit=" + strconv.Itoa(limit)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch employees: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch employees: unexpected status %s", resp.Status)
	}

	var body struct {
		Employees []models.Employee `json:"employees"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode employees: %w", err)
	}

	out := make([]models.Employee, len(body.Employees))
	for i, e := range body.Employees {
		out[i] = Enhance(e)
	}
	return out, nil
}

// Get fetches a single employee by id.
func (c *Client) Get(ctx context.Context, id int) (models.Employee, error) {
	url := c.baseURL + "/employees/" + strconv.Itoa(id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return models.Employee{}, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return models.Employee{}, fmt.Errorf("fetch employee %d: %w", id, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return models.Employee{}, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return models.Employee{}, fmt.Errorf("fetch employee %d: unexpected status %s", id, resp.Status)
	}

	var e models.Employee
	if err := json.NewDecoder(resp.Body).Decode(&e); err != nil {
		return models.Employee{}, fmt.Errorf("decode employee %d: %w", id, err)
	}
	return Enhance(e), nil
}

// Create validates and submits a new employee record, returning the created
// record as reported by the API.
func (c *Client) Create(ctx context.Context, r models.CreateEmployeeRequest) (models.Employee, error) {
	if err := ValidateCreate(r); err != nil {
		return models.Employee{}, err
	}

	b, err := json.Marshal(r)
	if err != nil {
		return models.Employee{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/employees", bytes.NewReader(b))
	if err != nil {
		return models.Employee{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return models.Employee{}, fmt.Errorf("create employee: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return models.Employee{}, fmt.Errorf("create employee: unexpected status %s", resp.Status)
	}

	var e models.Employee
	if err := json.NewDecoder(resp.Body).Decode(&e); err != nil {
		return models.Employee{}, fmt.Errorf("decode created employee: %w", err)
	}
	return Enhance(e), nil
}
