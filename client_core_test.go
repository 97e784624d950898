package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func jsonHandler(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

func TestNew_PanicsOnEmptyBaseURL(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	New("")
}

func TestNew_TrimsTrailingSlash(t *testing.T) {
	t.Parallel()
	c := New("http://example.com/api/")
	if c.BaseURL() != "http://example.com/api" {
		t.Fatalf("base url: %q", c.BaseURL())
	}
}

func TestListCustomers_ThroughClient(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(jsonHandler(http.StatusOK,
		`{"_embedded":{"customers":[{"firstname":"Ada","lastname":"Lovelace"}]}}`))
	defer srv.Close()

	c := New(srv.URL, WithHTTPClient(srv.Client()))
	got, err := c.ListCustomers(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].DisplayName() != "Ada Lovelace" {
		t.Fatalf("customers: %+v", got)
	}
}

func TestCreateTraining_PublishesTrainingsChanged(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(jsonHandler(http.StatusCreated, `{"id":1,"activity":"Run"}`))
	defer srv.Close()

	c := New(srv.URL, WithHTTPClient(srv.Client()))
	var notices []Notice
	sub := c.OnTrainingsChanged(func(n Notice) { notices = append(notices, n) })
	defer sub.Cancel()

	form := TrainingForm{Date: "2024-06-01T10:00", Activity: "Run", Duration: 30, Customer: srv.URL + "/customers/1"}
	if _, err := c.CreateTraining(context.Background(), form); err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(notices) != 1 || notices[0].Topic != TopicTrainingsChanged {
		t.Fatalf("notices: %+v", notices)
	}
}

func TestDeleteTraining_FailureDoesNotPublish(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(jsonHandler(http.StatusNotFound, `{}`))
	defer srv.Close()

	c := New(srv.URL, WithHTTPClient(srv.Client()))
	fired := false
	defer c.OnTrainingsChanged(func(Notice) { fired = true }).Cancel()

	err := c.DeleteTraining(context.Background(), "9")
	var re *RequestError
	if !errors.As(err, &re) || re.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 RequestError, got %v", err)
	}
	if fired {
		t.Fatal("failed mutation must not notify views")
	}
}

func TestCustomerMutations_PublishCustomersChanged(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		_, _ = w.Write([]byte(`{"id":1,"firstname":"Ada","lastname":"Lovelace"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, WithHTTPClient(srv.Client()))
	count := 0
	defer c.OnCustomersChanged(func(Notice) { count++ }).Cancel()

	ctx := context.Background()
	form := CustomerForm{Firstname: "Ada", Lastname: "Lovelace"}
	if _, err := c.CreateCustomer(ctx, form); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := c.UpdateCustomer(ctx, "1", form); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := c.DeleteCustomer(ctx, "1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected 3 notices, got %d", count)
	}
}

func TestWithRetry_RecoversFromServerErrors(t *testing.T) {
	t.Parallel()
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := New(srv.URL, WithHTTPClient(srv.Client()), WithRetry(5))
	got, err := c.ListTrainings(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 0 || atomic.LoadInt32(&calls) != 3 {
		t.Fatalf("expected success on third call, calls=%d", calls)
	}
}

func TestWithRetry_FailsFastOnClientError(t *testing.T) {
	t.Parallel()
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	c := New(srv.URL, WithHTTPClient(srv.Client()), WithRetry(5))
	_, err := c.ListTrainings(context.Background())
	var re *RequestError
	if !errors.As(err, &re) || re.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 RequestError, got %v", err)
	}
	if atomic.LoadInt32(&calls) != 1 {
		t.Fatalf("client error must not retry, calls=%d", calls)
	}
}

func TestCalendarEvents_ThroughClient(t *testing.T) {
	t.Parallel()
	body := `[{"date":"2024-06-01T10:00","activity":"Run","duration":90,
		"customer":{"firstname":"Ada","lastname":"Lovelace"}}]`
	srv := httptest.NewServer(jsonHandler(http.StatusOK, body))
	defer srv.Close()

	c := New(srv.URL, WithHTTPClient(srv.Client()), WithTimezone("Europe/Helsinki"))
	got, err := c.CalendarEvents(context.Background())
	if err != nil {
		t.Fatalf("calendar: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Run / Ada Lovelace" {
		t.Fatalf("events: %+v", got)
	}
	if got[0].End.Sub(got[0].Start).Minutes() != 90 {
		t.Fatalf("window: %v", got[0].End.Sub(got[0].Start))
	}
}

func TestActivityTotals_ThroughClient(t *testing.T) {
	t.Parallel()
	body := `[{"activity":"Run","duration":30},{"activity":"Run","duration":"45,5"},{"activity":"Yoga","duration":20}]`
	srv := httptest.NewServer(jsonHandler(http.StatusOK, body))
	defer srv.Close()

	c := New(srv.URL, WithHTTPClient(srv.Client()))
	got, err := c.ActivityTotals(context.Background())
	if err != nil {
		t.Fatalf("totals: %v", err)
	}
	if len(got) != 2 || got[0].Activity != "Run" || got[0].Minutes != 75.5 || got[1].Minutes != 20 {
		t.Fatalf("totals: %+v", got)
	}
}
