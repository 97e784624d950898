package client

import (
	"context"
	"net/http"
	"testing"
	"time"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func TestWithHTTPTimeout(t *testing.T) {
	c := &Client{http: &http.Client{}}
	if err := WithHTTPTimeout(5 * time.Second)(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.http.Timeout != 5*time.Second {
		t.Fatal("http timeout not set")
	}
	if err := WithHTTPTimeout(0)(c); err == nil {
		t.Fatal("expected error for zero timeout")
	}
}

func TestWithTimezone(t *testing.T) {
	c := &Client{http: &http.Client{}}
	if err := WithTimezone("Europe/Helsinki")(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.norm == nil || c.norm.Location().String() != "Europe/Helsinki" {
		t.Fatal("normalizer not configured")
	}
	if err := WithTimezone("Not/AZone")(c); err == nil {
		t.Fatal("expected error for bad zone")
	}
}

func TestWithRetry_Validation(t *testing.T) {
	c := &Client{http: &http.Client{}}
	if err := WithRetry(0)(c); err == nil {
		t.Fatal("expected error for attempts < 1")
	}
	if err := WithRetry(3)(c); err != nil || c.retryAttempts != 3 {
		t.Fatalf("retry attempts not set: %v", err)
	}
}

func TestWithDebugLogging_WrapsTransport(t *testing.T) {
	var called bool
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		called = true
		return &http.Response{StatusCode: 200, Body: http.NoBody, Header: make(http.Header)}, nil
	})
	c := New("http://example.com", WithHTTPClient(&http.Client{Transport: rt}), WithDebugLogging(true))
	if _, ok := c.http.Transport.(*debugTransport); !ok {
		t.Fatal("expected debugTransport to be installed")
	}
	req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, "http://example.com", http.NoBody)
	if _, err := c.http.Do(req); err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if !called {
		t.Fatal("base transport not invoked")
	}
}

func TestNew_AutoEnableDebugViaEnv(t *testing.T) {
	t.Setenv("PT_DEBUG", "true")
	c := New("http://example.com")
	if _, ok := c.http.Transport.(*debugTransport); !ok {
		t.Fatal("expected debugTransport when PT_DEBUG=true")
	}
}
