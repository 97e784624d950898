package httperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestRequestError_Category(t *testing.T) {
	t.Parallel()
	cases := []struct {
		code int
		want ErrorCategory
	}{
		{400, Irrecoverable},
		{404, Irrecoverable},
		{408, Recoverable},
		{429, Recoverable},
		{500, Recoverable},
		{502, Recoverable},
	}
	for _, tc := range cases {
		e := &RequestError{Operation: "list customers", StatusCode: tc.code, Status: fmt.Sprintf("%d x", tc.code)}
		if got := e.Category(); got != tc.want {
			t.Fatalf("%d: got %v want %v", tc.code, got, tc.want)
		}
	}
}

func TestRequestError_MessageCarriesSnippet(t *testing.T) {
	t.Parallel()
	e := &RequestError{Operation: "list customers", StatusCode: 502, Status: "502 Bad Gateway", Snippet: "upstream down"}
	msg := e.Error()
	if msg != "list customers: request failed 502 502 Bad Gateway: upstream down" {
		t.Fatalf("message: %q", msg)
	}
}

func TestIsIrrecoverable(t *testing.T) {
	t.Parallel()
	if !IsIrrecoverable(&RequestError{StatusCode: 404}) {
		t.Fatal("404 must be irrecoverable")
	}
	if IsIrrecoverable(&RequestError{StatusCode: 500}) {
		t.Fatal("500 must be recoverable")
	}
	if !IsIrrecoverable(&UnexpectedContentTypeError{ContentType: "text/html"}) {
		t.Fatal("content-type misconfiguration must be irrecoverable")
	}
	if IsIrrecoverable(errors.New("dial tcp: refused")) {
		t.Fatal("plain network errors must stay recoverable")
	}
	wrapped := fmt.Errorf("outer: %w", &RequestError{StatusCode: 400})
	if !IsIrrecoverable(wrapped) {
		t.Fatal("classification must survive wrapping")
	}
}

func TestIsNotFound(t *testing.T) {
	t.Parallel()
	if !IsNotFound(&RequestError{StatusCode: 404}) {
		t.Fatal("expected not-found")
	}
	if IsNotFound(&RequestError{StatusCode: 500}) {
		t.Fatal("unexpected not-found")
	}
	if IsNotFound(errors.New("boom")) {
		t.Fatal("unexpected not-found for plain error")
	}
}
