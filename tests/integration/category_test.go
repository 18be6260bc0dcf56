package integration

import (
	"net/http"
	"testing"
)

func TestCategoryLifecycle(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.post(t, "/api/v1/categories/", map[string]any{
		"name":          "m25",
		"purchase_rate": "20",
		"sale_rate":     "22",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.StatusCode, body)
	}

	var created struct {
		ID           string `json:"id"`
		Name         string `json:"name"`
		Series       string `json:"series"`
		Denomination int64  `json:"denomination"`
	}
	decodeJSON(t, body, &created)

	if created.Name != "M25" {
		t.Errorf("expected normalized name M25, got %q", created.Name)
	}
	if created.Series != "M" || created.Denomination != 25 {
		t.Errorf("expected series M denomination 25, got %s/%d", created.Series, created.Denomination)
	}

	// Duplicate names conflict, regardless of case.
	resp, body = env.post(t, "/api/v1/categories/", map[string]any{
		"name":          "M25",
		"purchase_rate": "20",
		"sale_rate":     "22",
	})
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", resp.StatusCode, body)
	}

	resp, body = env.get(t, "/api/v1/categories/"+created.ID)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, body)
	}

	var fetched struct {
		Name string `json:"name"`
	}
	decodeJSON(t, body, &fetched)
	if fetched.Name != "M25" {
		t.Errorf("expected M25, got %q", fetched.Name)
	}

	if resp := env.delete(t, "/api/v1/categories/"+created.ID); resp.StatusCode != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.StatusCode)
	}

	resp, _ = env.get(t, "/api/v1/categories/"+created.ID)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", resp.StatusCode)
	}
}

func TestCategoryValidation(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name string
		body map[string]any
	}{
		{name: "unknown series", body: map[string]any{"name": "X25"}},
		{name: "missing denomination", body: map[string]any{"name": "M"}},
		{name: "negative rate", body: map[string]any{"name": "M25", "purchase_rate": "-1", "sale_rate": "5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := env.post(t, "/api/v1/categories/", tt.body)
			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("expected 400, got %d: %s", resp.StatusCode, body)
			}
		})
	}
}
