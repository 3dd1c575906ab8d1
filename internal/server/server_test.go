package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/hemicycle/pkg/errors"
	"github.com/matzehuels/hemicycle/pkg/pipeline"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{})
	srv := httptest.NewServer(New(pipeline.NewRunner(nil, nil, logger), logger).Routes())
	t.Cleanup(srv.Close)
	return srv
}

func readBody(t *testing.T, res *http.Response) string {
	t.Helper()
	defer res.Body.Close()
	b, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return string(b)
}

func decodeError(t *testing.T, body string) errorResponse {
	t.Helper()
	var e errorResponse
	if err := json.Unmarshal([]byte(body), &e); err != nil {
		t.Fatalf("decode error body %q: %v", body, err)
	}
	return e
}

func TestHealth(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	res, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", res.StatusCode)
	}
	if body := readBody(t, res); body != "ok" {
		t.Fatalf("expected body %q, got %q", "ok", body)
	}
}

func TestForm(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	res, err := http.Get(srv.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	body := readBody(t, res)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", res.StatusCode)
	}
	if !strings.Contains(body, `name="inputlist"`) {
		t.Error("form should have an inputlist field")
	}
}

func TestFormSubmit(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	res, err := http.PostForm(srv.URL+"/", url.Values{"inputlist": {"Party A, 33; Party B, 22, #99FF99"}})
	if err != nil {
		t.Fatal(err)
	}
	body := readBody(t, res)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", res.StatusCode, body)
	}
	if ct := res.Header.Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("Content-Type = %q", ct)
	}
	if n := strings.Count(body, "<circle "); n != 55 {
		t.Errorf("got %d circles, want 55", n)
	}
	if !strings.Contains(body, `id="Party B"`) {
		t.Error("missing Party B group")
	}
}

func TestFormSubmitError(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	res, err := http.PostForm(srv.URL+"/", url.Values{"inputlist": {"A, -1, #ff0000"}})
	if err != nil {
		t.Fatal(err)
	}
	body := readBody(t, res)
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", res.StatusCode)
	}
	if !strings.Contains(body, "INVALID_SEAT_COUNT") {
		t.Errorf("form should show the error code:\n%s", body)
	}
	if !strings.Contains(body, `value="A, -1, #ff0000"`) {
		t.Error("form should keep the submitted input")
	}
}

func TestDiagramQuery(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	q := url.Values{"parties": {"A, 2, #ff0000; B, 1, #00ff00"}}
	res, err := http.Get(srv.URL + "/api/v1/diagram?" + q.Encode())
	if err != nil {
		t.Fatal(err)
	}
	body := readBody(t, res)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", res.StatusCode, body)
	}
	if !strings.Contains(body, `<circle cx="298.43" cy="140.00" r="40.00"/>`) {
		t.Errorf("unexpected svg:\n%s", body)
	}
	if res.Header.Get("X-Seats") != "3" {
		t.Errorf("X-Seats = %q, want 3", res.Header.Get("X-Seats"))
	}
	if res.Header.Get(HeaderRequestID) == "" {
		t.Error("response should carry a request id")
	}
}

func TestDiagramQueryJSONFormat(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	q := url.Values{"parties": {"A, 5; B, 7"}, "format": {"json"}, "palette": {"spaced"}, "seed": {"3"}}
	res, err := http.Get(srv.URL + "/api/v1/diagram?" + q.Encode())
	if err != nil {
		t.Fatal(err)
	}
	body := readBody(t, res)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", res.StatusCode, body)
	}
	if ct := res.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	var out struct {
		TotalSeats int    `json:"total_seats"`
		Palette    string `json:"palette"`
		Seed       uint64 `json:"seed"`
	}
	if err := json.Unmarshal([]byte(body), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.TotalSeats != 12 || out.Palette != "spaced" || out.Seed != 3 {
		t.Errorf("got %+v", out)
	}
}

func TestDiagramJSON(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	req := `{"parties":[{"name":"A","seats":1,"color":"#ff0000"}]}`
	res, err := http.Post(srv.URL+"/api/v1/diagram", "application/json", strings.NewReader(req))
	if err != nil {
		t.Fatal(err)
	}
	body := readBody(t, res)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", res.StatusCode, body)
	}
	if !strings.Contains(body, `<circle cx="223.75" cy="55.00" r="40.00"/>`) {
		t.Errorf("unexpected svg:\n%s", body)
	}
}

func TestDiagramErrors(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	tests := []struct {
		name   string
		query  url.Values
		body   string
		status int
		code   errors.Code
	}{
		{"capacity", url.Values{"parties": {"A, 9405, #ff0000"}}, "", http.StatusUnprocessableEntity, errors.ErrCodeCapacityExceeded},
		{"no seats", url.Values{"parties": {""}}, "", http.StatusBadRequest, errors.ErrCodeInvalidSeatCount},
		{"color", url.Values{"parties": {"A, 3, #12345"}}, "", http.StatusBadRequest, errors.ErrCodeInvalidColor},
		{"malformed", url.Values{"parties": {"A, 3, #123456, extra"}}, "", http.StatusBadRequest, errors.ErrCodeMalformedRecord},
		{"format", url.Values{"parties": {"A, 3"}, "format": {"gif"}}, "", http.StatusBadRequest, errors.ErrCodeInvalidFormat},
		{"palette", url.Values{"parties": {"A, 3"}, "palette": {"rainbow"}}, "", http.StatusBadRequest, errors.ErrCodeInvalidInput},
		{"seed", url.Values{"parties": {"A, 3"}, "seed": {"-4"}}, "", http.StatusBadRequest, errors.ErrCodeInvalidInput},
		{"body", nil, "{", http.StatusBadRequest, errors.ErrCodeInvalidInput},
		{"body empty color", nil, `{"parties":[{"name":"A","seats":3,"color":""}]}`, http.StatusBadRequest, errors.ErrCodeInvalidColor},
		{"body overflow", nil, `{"parties":[{"name":"A","seats":9223372036854775807},{"name":"B","seats":9223372036854775807},{"name":"C","seats":5,"color":"#ff0000"}]}`, http.StatusUnprocessableEntity, errors.ErrCodeCapacityExceeded},
		{"body seats", nil, `{"parties":[{"name":"A","seats":-2}]}`, http.StatusBadRequest, errors.ErrCodeInvalidSeatCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var res *http.Response
			var err error
			if tt.query != nil {
				res, err = http.Get(srv.URL + "/api/v1/diagram?" + tt.query.Encode())
			} else {
				res, err = http.Post(srv.URL+"/api/v1/diagram", "application/json", strings.NewReader(tt.body))
			}
			if err != nil {
				t.Fatal(err)
			}
			body := readBody(t, res)
			if res.StatusCode != tt.status {
				t.Fatalf("status = %d, want %d: %s", res.StatusCode, tt.status, body)
			}
			if e := decodeError(t, body); e.Code != string(tt.code) || e.Error == "" {
				t.Errorf("error = %+v, want code %s", e, tt.code)
			}
		})
	}
}

func TestRequestIDPropagates(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/health", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	res.Body.Close()
	if got := res.Header.Get(HeaderRequestID); got != "abc-123" {
		t.Errorf("X-Request-ID = %q, want abc-123", got)
	}
}

func TestNotFound(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	res, err := http.Get(srv.URL + "/nope")
	if err != nil {
		t.Fatal(err)
	}
	body := readBody(t, res)
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", res.StatusCode)
	}
	if e := decodeError(t, body); e.Code != "NOT_FOUND" {
		t.Errorf("code = %q", e.Code)
	}
}

func TestStatusFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		code errors.Code
		want int
	}{
		{errors.ErrCodeMalformedRecord, 400},
		{errors.ErrCodeInvalidSeatCount, 400},
		{errors.ErrCodeInvalidColor, 400},
		{errors.ErrCodeInvalidInput, 400},
		{errors.ErrCodeInvalidFormat, 400},
		{errors.ErrCodeCapacityExceeded, 422},
		{errors.ErrCodeInternal, 500},
		{"", 500},
	}
	for _, tt := range tests {
		if got := statusFor(tt.code); got != tt.want {
			t.Errorf("statusFor(%q) = %d, want %d", tt.code, got, tt.want)
		}
	}
}
