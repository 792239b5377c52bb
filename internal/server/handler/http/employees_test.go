package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/atinyakov/staffdeck/internal/dataset"
	"github.com/atinyakov/staffdeck/internal/models"
)

func newTestServer() *httptest.Server {
	handler := NewEmployeeHandler(dataset.New())
	return httptest.NewServer(NewRouter(handler, zap.NewNop()))
}

func TestList(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	tests := []struct {
		name      string
		query     string
		wantCode  int
		wantCount int
	}{
		{"all records", "", http.StatusOK, 20},
		{"limited", "?limit=5", http.StatusOK, 5},
		{"limit larger than set", "?limit=100", http.StatusOK, 20},
		{"invalid limit", "?limit=abc", http.StatusBadRequest, 0},
		{"negative limit", "?limit=-1", http.StatusBadRequest, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := http.Get(srv.URL + "/employees" + tc.query)
			if err != nil {
				t.Fatalf("GET failed: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tc.wantCode {
				t.Fatalf("status = %d; want %d", resp.StatusCode, tc.wantCode)
			}
			if tc.wantCode != http.StatusOK {
				return
			}
			var body struct {
				Employees []models.Employee `json:"employees"`
			}
			if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
				t.Fatalf("decode failed: %v", err)
			}
			if len(body.Employees) != tc.wantCount {
				t.Errorf("count = %d; want %d", len(body.Employees), tc.wantCount)
			}
		})
	}
}

func TestGet(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/employees/7")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d; want 200", resp.StatusCode)
	}
	var e models.Employee
	if err := json.NewDecoder(resp.Body).Decode(&e); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if e.ID != 7 {
		t.Errorf("id = %d; want 7", e.ID)
	}
	if e.Performance != nil {
		t.Error("upstream records must not carry performance data")
	}
}

func TestGet_NotFound(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/employees/999")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d; want 404", resp.StatusCode)
	}
}

func TestCreate(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	tests := []struct {
		name        string
		contentType string
		body        string
		wantCode    int
	}{
		{
			name:        "valid",
			contentType: "application/json",
			body:        `{"firstName":"Jane","lastName":"Doe","email":"jane@example.com","phone":"+1 555 0101","age":34,"address":{"address":"1 Main St","city":"Springfield","state":"IL"},"company":{"name":"Tech Solutions","department":"Engineering","title":"Engineer"}}`,
			wantCode:    http.StatusCreated,
		},
		{
			name:        "invalid JSON",
			contentType: "application/json",
			body:        `not json`,
			wantCode:    http.StatusBadRequest,
		},
		{
			name:        "missing required fields",
			contentType: "application/json",
			body:        `{"firstName":"Jane"}`,
			wantCode:    http.StatusBadRequest,
		},
		{
			name:        "wrong content type",
			contentType: "text/plain",
			body:        `{}`,
			wantCode:    http.StatusUnsupportedMediaType,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := http.Post(srv.URL+"/employees", tc.contentType, strings.NewReader(tc.body))
			if err != nil {
				t.Fatalf("POST failed: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tc.wantCode {
				t.Fatalf("status = %d; want %d", resp.StatusCode, tc.wantCode)
			}
			if tc.wantCode != http.StatusCreated {
				return
			}
			var created models.Employee
			if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
				t.Fatalf("decode failed: %v", err)
			}
			if created.ID != 21 {
				t.Errorf("assigned id = %d; want 21 (after the 20 seeded records)", created.ID)
			}
			if created.FirstName != "Jane" {
				t.Errorf("firstName = %q; want Jane", created.FirstName)
			}
		})
	}
}
