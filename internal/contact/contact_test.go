package contact

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/verte-zerg/termfolio/internal/model"
)

func validForm() model.ContactForm {
	return model.ContactForm{Name: "Ada", Email: "ada@example.com", Message: "Hello there"}
}

func endpoint(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(ClientOptions{Endpoint: srv.URL, AccessKey: "key-123", Timeout: 2 * time.Second})
}

func TestSubmitSuccessClearsForm(t *testing.T) {
	var got map[string]string
	client := endpoint(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("unexpected content type %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		_, _ = w.Write([]byte(`{"success": true, "message": "ok"}`))
	})
	s := NewSubmitter(client)
	s.SetForm(validForm())

	res := s.Submit(context.Background())
	if res.Outcome != OutcomeSent || res.Err != nil {
		t.Fatalf("expected sent, got %+v", res)
	}
	if !s.Form().Empty() {
		t.Fatalf("expected form cleared, got %+v", s.Form())
	}
	if s.InFlight() {
		t.Fatalf("expected affordance re-enabled")
	}
	if got["access_key"] != "key-123" || got["name"] != "Ada" || got["email"] != "ada@example.com" || got["message"] != "Hello there" {
		t.Fatalf("unexpected payload: %v", got)
	}
}

func TestSubmitRejectedKeepsForm(t *testing.T) {
	client := endpoint(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"success": false, "message": "invalid key"}`))
	})
	s := NewSubmitter(client)
	s.SetForm(validForm())

	res := s.Submit(context.Background())
	if res.Outcome != OutcomeFailed || !errors.Is(res.Err, ErrRejected) {
		t.Fatalf("expected rejected failure, got %+v", res)
	}
	if s.Form() != validForm() {
		t.Fatalf("expected form preserved, got %+v", s.Form())
	}
}

func TestSubmitTransportErrorKeepsForm(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	s := NewSubmitter(NewClient(ClientOptions{Endpoint: url, AccessKey: "k", Timeout: time.Second}))
	s.SetForm(validForm())
	res := s.Submit(context.Background())
	if res.Outcome != OutcomeFailed || res.Err == nil {
		t.Fatalf("expected transport failure, got %+v", res)
	}
	if s.Form() != validForm() || s.InFlight() {
		t.Fatalf("expected preserved form and idle submitter")
	}
}

func TestSubmitNonOKStatusFails(t *testing.T) {
	client := endpoint(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"success": true}`))
	})
	s := NewSubmitter(client)
	s.SetForm(validForm())
	if res := s.Submit(context.Background()); res.Outcome != OutcomeFailed {
		t.Fatalf("expected failure on 500, got %+v", res)
	}
}

func TestSubmitMissingSuccessFieldFails(t *testing.T) {
	client := endpoint(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"ok": true}`))
	})
	s := NewSubmitter(client)
	s.SetForm(validForm())
	if res := s.Submit(context.Background()); res.Outcome != OutcomeFailed {
		t.Fatalf("expected failure without success flag, got %+v", res)
	}
}

func TestMissingAccessKeyFailsAtSubmission(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
	}))
	t.Cleanup(srv.Close)
	s := NewSubmitter(NewClient(ClientOptions{Endpoint: srv.URL}))
	s.SetForm(validForm())
	res := s.Submit(context.Background())
	if !errors.Is(res.Err, ErrMissingAccessKey) {
		t.Fatalf("expected missing key error, got %+v", res)
	}
	if calls != 0 {
		t.Fatalf("no request should be made without an access key")
	}
}

func TestInvalidFormBlocksBeforeNetwork(t *testing.T) {
	calls := 0
	client := endpoint(t, func(w http.ResponseWriter, _ *http.Request) {
		calls++
		_, _ = w.Write([]byte(`{"success": true}`))
	})
	cases := []model.ContactForm{
		{Name: "", Email: "a@b.co", Message: "m"},
		{Name: "n", Email: "not-an-email", Message: "m"},
		{Name: "n", Email: "a@b.co", Message: "   "},
	}
	for _, form := range cases {
		s := NewSubmitter(client)
		s.SetForm(form)
		res := s.Submit(context.Background())
		var verr *ValidationError
		if res.Outcome != OutcomeInvalid || !errors.As(res.Err, &verr) {
			t.Fatalf("expected validation failure for %+v, got %+v", form, res)
		}
		if s.Form() != form {
			t.Fatalf("validation must not modify the form")
		}
	}
	if calls != 0 {
		t.Fatalf("expected no requests, got %d", calls)
	}
}

func TestBeginPreventsDuplicateSubmission(t *testing.T) {
	s := NewSubmitter(nil)
	s.SetForm(validForm())
	if _, err := s.Begin(); err != nil {
		t.Fatalf("begin: %v", err)
	}
	if s.Label() != LabelSending {
		t.Fatalf("expected sending label, got %q", s.Label())
	}
	if _, err := s.Begin(); !errors.Is(err, ErrInFlight) {
		t.Fatalf("expected in-flight error, got %v", err)
	}
	if res := s.Submit(context.Background()); res.Outcome != OutcomeBusy {
		t.Fatalf("expected busy outcome, got %+v", res)
	}
	res := s.Finish(nil)
	if res.Outcome != OutcomeSent || s.Label() != LabelIdle {
		t.Fatalf("expected idle after finish, got %+v", res)
	}
}

func TestValidateTrimsFields(t *testing.T) {
	form, err := Validate(model.ContactForm{Name: "  Ada ", Email: " ada@example.com ", Message: "\nhi\n"})
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if form != validFormWith("hi") {
		t.Fatalf("unexpected normalized form %+v", form)
	}
}

func validFormWith(message string) model.ContactForm {
	f := validForm()
	f.Message = message
	return f
}
