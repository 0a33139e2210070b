//go:build integration
// +build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"os"
	"testing"
	"time"
)

var baseURL = getenv("E2E_BASE_URL", "http://localhost:8080")

func TestSystem_E2E(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	waitReady(t, ctx, baseURL+"/readyz")

	var page struct {
		Products []map[string]any `json:"products"`
		Total    int              `json:"total"`
	}
	doJSON(t, http.MethodGet, baseURL+"/api/products", nil, &page, 200)
	if page.Total == 0 || len(page.Products) == 0 {
		t.Fatalf("empty catalog: total=%d", page.Total)
	}

	var product map[string]any
	doJSON(t, http.MethodGet, baseURL+"/api/products/1", nil, &product, 200)
	if product["name"] != "Wireless Headphones" {
		t.Fatalf("product 1 = %#v", product)
	}

	var sr struct {
		Total int `json:"total"`
	}
	doJSON(t, http.MethodGet, baseURL+"/api/search?q=head", nil, &sr, 200)
	if sr.Total == 0 {
		t.Fatalf("search found nothing")
	}

	// Anonymous visits to a protected page bounce to login.
	{
		resp := doRaw(t, http.MethodGet, baseURL+"/dashboard", nil)
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusTemporaryRedirect {
			t.Fatalf("anonymous dashboard status=%d", resp.StatusCode)
		}
	}

	var loginResp struct {
		Token string `json:"token"`
	}
	doJSON(t, http.MethodPost, baseURL+"/api/auth/login", map[string]any{
		"email":    "alice@example.com",
		"password": "password123",
	}, &loginResp, 200)
	if loginResp.Token == "" {
		t.Fatalf("empty token")
	}

	doJSONAuth(t, http.MethodGet, baseURL+"/dashboard", loginResp.Token, nil, nil, 200)

	// The cookie path works too, the way a browser would hold the session.
	{
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/dashboard", nil)
		if err != nil {
			t.Fatalf("new request: %v", err)
		}
		req.AddCookie(&http.Cookie{Name: "auth_token", Value: loginResp.Token})

		client := &http.Client{Timeout: 5 * time.Second}
		resp, err := client.Do(req)
		if err != nil {
			t.Fatalf("dashboard via cookie: %v", err)
		}
		_ = resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("dashboard via cookie status=%d", resp.StatusCode)
		}
	}

	var created map[string]any
	doJSON(t, http.MethodPost, baseURL+"/api/products", map[string]any{
		"name":        "E2E Probe",
		"description": "created by the system test",
		"price":       1.23,
		"category":    "electronics",
		"stock":       1,
	}, &created, 201)

	id, _ := created["id"].(string)
	if id == "" {
		t.Fatalf("created product id missing: %#v", created)
	}

	doJSON(t, http.MethodGet, baseURL+"/api/products/"+id, nil, nil, 200)

	var removed map[string]any
	doJSON(t, http.MethodDelete, baseURL+"/api/products/"+id, nil, &removed, 200)
	if removed["id"] != id {
		t.Fatalf("delete returned %#v", removed)
	}

	doJSON(t, http.MethodGet, baseURL+"/api/products/"+id, nil, nil, 404)

	// Legacy listing path is a permanent redirect onto the API.
	{
		resp := doRaw(t, http.MethodGet, baseURL+"/old-products", nil)
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusPermanentRedirect {
			t.Fatalf("old-products status=%d", resp.StatusCode)
		}
		if loc := resp.Header.Get("Location"); loc != "/api/products" {
			t.Fatalf("old-products location=%s", loc)
		}
	}
}

func waitReady(t *testing.T, ctx context.Context, url string) {
	t.Helper()
	client := &http.Client{Timeout: 2 * time.Second}

	deadline := time.Now().Add(60 * time.Second)
	for time.Now().Before(deadline) {
		req, _ := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		resp, err := client.Do(req)
		if err == nil && resp != nil && resp.StatusCode == 200 {
			_ = resp.Body.Close()
			return
		}
		if resp != nil {
			_ = resp.Body.Close()
		}
		time.Sleep(500 * time.Millisecond)
	}
	t.Fatalf("service not ready: %s", url)
}

// doRaw issues one request without following redirects.
func doRaw(t *testing.T, method, url string, body []byte) *http.Response {
	t.Helper()

	req, err := http.NewRequest(method, url, bytes.NewReader(body))
	if err != nil {
		t.Fatalf("new request: %v", err)
	}

	client := &http.Client{
		Timeout: 5 * time.Second,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	return resp
}

func doJSON(t *testing.T, method, url string, body any, out any, want int) {
	t.Helper()
	doJSONAuth(t, method, url, "", body, out, want)
}

func doJSONAuth(t *testing.T, method, url, token string, body any, out any, want int) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != want {
		t.Fatalf("%s %s: status=%d want=%d", method, url, resp.StatusCode, want)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode response: %v", err)
		}
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
