package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fabworks-cad/fastener-resolver/internal/assemble"
	"github.com/fabworks-cad/fastener-resolver/internal/geometry"
	"github.com/fabworks-cad/fastener-resolver/internal/mcmaster"
	"github.com/fabworks-cad/fastener-resolver/internal/models"
	"github.com/fabworks-cad/fastener-resolver/internal/resolver"
	"github.com/fabworks-cad/fastener-resolver/internal/sizes"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	enum, err := geometry.NewTableEnumerator()
	if err != nil {
		t.Fatalf("Failed to load size tables: %v", err)
	}
	index := sizes.Build(enum)
	catalog := mcmaster.NewCatalog([]mcmaster.Match{
		{SpecKey: "screw|shcs|iso4762|M6-1|L20", PN: "91292A135", Description: "Socket head screw"},
	})
	return New(resolver.New(index), index, mcmaster.NewStore(catalog))
}

func TestHandleChat(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest("POST", "/api/chat", strings.NewReader(`{"message":"M6x1, 20mm socket screw"}`))
	w := httptest.NewRecorder()
	handler.HandleChat(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var response assemble.Response
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(response.Items) != 1 {
		t.Fatalf("Expected 1 item, got %d", len(response.Items))
	}
	item := response.Items[0]
	if item.Status != models.StatusResolved {
		t.Errorf("Expected resolved status, got %s", item.Status)
	}
	if item.McMasterPN != "91292A135" {
		t.Errorf("Expected vendor PN attached, got %q", item.McMasterPN)
	}
	if !strings.HasPrefix(response.Message, "Here's what I understood:") {
		t.Errorf("Unexpected message: %s", response.Message)
	}
	if len(response.ValidSizes) == 0 {
		t.Error("Expected valid sizes in the response")
	}
}

func TestHandleChatRejectsBadRequests(t *testing.T) {
	handler := newTestHandler(t)

	tests := []struct {
		name   string
		method string
		body   string
		code   int
	}{
		{"wrong method", "GET", "", http.StatusMethodNotAllowed},
		{"invalid json", "POST", "{", http.StatusBadRequest},
		{"empty message", "POST", `{"message":"  "}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/api/chat", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			handler.HandleChat(w, req)
			if w.Code != tt.code {
				t.Errorf("Expected %d, got %d", tt.code, w.Code)
			}
		})
	}
}

func TestHandleCatalog(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest("GET", "/api/catalog", nil)
	w := httptest.NewRecorder()
	handler.HandleCatalog(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	var body struct {
		Families    []map[string]string `json:"families"`
		ValidSizes  []string            `json:"valid_sizes"`
		VendorParts int                 `json:"vendor_parts"`
	}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(body.Families) != 5 {
		t.Errorf("Expected 5 supported pairs, got %d", len(body.Families))
	}
	if body.VendorParts != 1 {
		t.Errorf("Expected 1 vendor part, got %d", body.VendorParts)
	}
	if len(body.ValidSizes) == 0 {
		t.Error("Expected valid sizes in the response")
	}
}
