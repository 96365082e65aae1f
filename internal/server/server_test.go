package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/az-ai-labs/en-itn/normalize"
	"github.com/az-ai-labs/en-itn/tagger"
	"github.com/gorilla/websocket"
)

func newTestServer(t *testing.T) (*httptest.Server, *normalize.Engine) {
	t.Helper()
	e := normalize.New()
	ts := httptest.NewServer(New(e, nil).Handler())
	t.Cleanup(ts.Close)
	return ts, e
}

func do(t *testing.T, method, url, contentType, body string) (int, []byte) {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return resp.StatusCode, data
}

func decodeInto(t *testing.T, data []byte, v any) {
	t.Helper()
	if err := json.Unmarshal(data, v); err != nil {
		t.Fatalf("decoding %q: %v", data, err)
	}
}

func TestTextEndpoints(t *testing.T) {
	t.Parallel()

	ts, _ := newTestServer(t)
	tests := []struct {
		path string
		body string
		want string
	}{
		{"/v1/normalize", `{"text":"twenty one"}`, "21"},
		{"/v1/normalize", `{"text":"twenty one apples"}`, "twenty one apples"},
		{"/v1/sentence", `{"text":"I have twenty one apples"}`, "I have 21 apples"},
		{"/v1/sentence", `{"text":"I have twenty one apples","max_span":1}`, "I have 20 1 apples"},
	}

	for _, tt := range tests {
		t.Run(tt.path+" "+tt.body, func(t *testing.T) {
			t.Parallel()
			status, data := do(t, http.MethodPost, ts.URL+tt.path, "application/json", tt.body)
			if status != http.StatusOK {
				t.Fatalf("status = %d, body %s", status, data)
			}
			var resp textResponse
			decodeInto(t, data, &resp)
			if resp.Written != tt.want {
				t.Errorf("written = %q, want %q", resp.Written, tt.want)
			}
		})
	}
}

func TestExtractEndpoint(t *testing.T) {
	t.Parallel()

	ts, _ := newTestServer(t)
	status, data := do(t, http.MethodPost, ts.URL+"/v1/extract", "application/json", `{"text":"I paid five dollars"}`)
	if status != http.StatusOK {
		t.Fatalf("status = %d, body %s", status, data)
	}
	var resp extractResponse
	decodeInto(t, data, &resp)
	if len(resp.Matches) != 1 {
		t.Fatalf("matches = %+v, want one", resp.Matches)
	}
	m := resp.Matches[0]
	if m.Written != "$5" || m.Category != tagger.CategoryMoney || m.Start != 7 || m.End != 19 {
		t.Errorf("match = %+v", m)
	}
	if !bytes.Contains(data, []byte(`"category":"Money"`)) {
		t.Errorf("category not encoded by name: %s", data)
	}

	_, data = do(t, http.MethodPost, ts.URL+"/v1/extract", "application/json", `{"text":"hello"}`)
	if !bytes.Contains(data, []byte(`"matches":[]`)) {
		t.Errorf("empty matches not encoded as []: %s", data)
	}
}

func TestBadRequests(t *testing.T) {
	t.Parallel()

	ts, _ := newTestServer(t)
	tests := []struct {
		name string
		body string
	}{
		{"empty", ""},
		{"malformed", `{"text":`},
		{"unknown field", `{"txt":"one"}`},
		{"wrong type", `{"text":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			status, data := do(t, http.MethodPost, ts.URL+"/v1/normalize", "application/json", tt.body)
			if status != http.StatusBadRequest {
				t.Errorf("status = %d, want 400 (body %s)", status, data)
			}
			var resp map[string]string
			decodeInto(t, data, &resp)
			if resp["error"] == "" {
				t.Error("error message missing")
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	t.Parallel()

	ts, _ := newTestServer(t)
	if status, _ := do(t, http.MethodGet, ts.URL+"/v1/normalize", "", ""); status != http.StatusMethodNotAllowed {
		t.Errorf("GET /v1/normalize status = %d, want 405", status)
	}
}

func TestRulesEndpoints(t *testing.T) {
	t.Parallel()

	ts, e := newTestServer(t)

	status, data := do(t, http.MethodPut, ts.URL+"/v1/rules", "application/json", `{"spoken":"gee pee tee","written":"GPT"}`)
	if status != http.StatusOK {
		t.Fatalf("PUT status = %d, body %s", status, data)
	}
	if got := e.Normalize("gee pee tee"); got != "GPT" {
		t.Errorf("rule not applied: %q", got)
	}

	toml := "[[rule]]\nspoken = \"en vee link\"\nwritten = \"NVLink\"\n"
	status, data = do(t, http.MethodPut, ts.URL+"/v1/rules", "application/toml; charset=utf-8", toml)
	if status != http.StatusOK {
		t.Fatalf("PUT toml status = %d, body %s", status, data)
	}

	status, data = do(t, http.MethodGet, ts.URL+"/v1/rules", "", "")
	if status != http.StatusOK {
		t.Fatalf("GET status = %d", status)
	}
	var list rulesResponse
	decodeInto(t, data, &list)
	if list.Count != 2 || len(list.Rules) != 2 {
		t.Errorf("rules = %+v, want 2", list)
	}

	_, data = do(t, http.MethodGet, ts.URL+"/v1/rules?format=toml", "", "")
	if !bytes.Contains(data, []byte(`written = "NVLink"`)) {
		t.Errorf("TOML listing = %s", data)
	}

	status, _ = do(t, http.MethodDelete, ts.URL+"/v1/rules/"+url.PathEscape("gee pee tee"), "", "")
	if status != http.StatusOK {
		t.Errorf("DELETE status = %d", status)
	}
	status, _ = do(t, http.MethodDelete, ts.URL+"/v1/rules/"+url.PathEscape("gee pee tee"), "", "")
	if status != http.StatusNotFound {
		t.Errorf("second DELETE status = %d, want 404", status)
	}

	status, _ = do(t, http.MethodDelete, ts.URL+"/v1/rules", "", "")
	if status != http.StatusOK || e.RuleCount() != 0 {
		t.Errorf("clear status = %d, count = %d", status, e.RuleCount())
	}

	status, _ = do(t, http.MethodPut, ts.URL+"/v1/rules", "application/json", `{"spoken":"  ","written":"x"}`)
	if status != http.StatusBadRequest {
		t.Errorf("empty spoken status = %d, want 400", status)
	}
	status, _ = do(t, http.MethodPut, ts.URL+"/v1/rules", "application/toml", "[[rule]\n")
	if status != http.StatusBadRequest {
		t.Errorf("bad toml status = %d, want 400", status)
	}
}

func TestHealthAndVersion(t *testing.T) {
	t.Parallel()

	ts, _ := newTestServer(t)
	status, data := do(t, http.MethodGet, ts.URL+"/healthz", "", "")
	if status != http.StatusOK || !bytes.Contains(data, []byte(`"ok"`)) {
		t.Errorf("healthz = %d %s", status, data)
	}
	_, data = do(t, http.MethodGet, ts.URL+"/v1/version", "", "")
	var v map[string]string
	decodeInto(t, data, &v)
	if v["version"] != normalize.Version() {
		t.Errorf("version = %q", v["version"])
	}
}

func TestRequestIDHeader(t *testing.T) {
	t.Parallel()

	ts, _ := newTestServer(t)
	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.Header.Get("X-Request-ID") == "" {
		t.Error("X-Request-ID header missing")
	}
}

func TestStream(t *testing.T) {
	t.Parallel()

	ts, _ := newTestServer(t)
	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/v1/stream"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	resp.Body.Close()
	defer conn.Close()

	inputs := []struct {
		text string
		want string
	}{
		{"I have twenty one apples", "I have 21 apples"},
		{"five dollars and fifty cents for the coffee", "$5.50 for the coffee"},
		{"hello world", "hello world"},
	}
	for i, in := range inputs {
		if err := conn.WriteMessage(websocket.TextMessage, []byte(in.text)); err != nil {
			t.Fatalf("write: %v", err)
		}
		var msg StreamMessage
		if err := conn.ReadJSON(&msg); err != nil {
			t.Fatalf("read: %v", err)
		}
		if msg.Seq != i+1 || msg.Written != in.want || msg.Text != in.text {
			t.Errorf("message %d = %+v, want written %q", i, msg, in.want)
		}
	}

	if err := conn.WriteMessage(websocket.BinaryMessage, []byte{1, 2}); err != nil {
		t.Fatalf("write binary: %v", err)
	}
	var msg StreamMessage
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read: %v", err)
	}
	if msg.Error == "" {
		t.Error("binary message was not rejected")
	}

	_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}
