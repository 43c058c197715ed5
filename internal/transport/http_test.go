package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/rpggio/scholarships/internal/domain/activity"
	"github.com/rpggio/scholarships/internal/domain/finder"
	"github.com/rpggio/scholarships/internal/domain/recommend"
	"github.com/rpggio/scholarships/internal/domain/scholarship"
	"github.com/stretchr/testify/require"
)

type testHandler struct {
	method string
	err    error
}

func (h *testHandler) Handle(_ context.Context, method string, params json.RawMessage) (any, error) {
	h.method = method
	if h.err != nil {
		return nil, h.err
	}
	return map[string]string{"method": method, "params": string(params)}, nil
}

type memoryActivity struct {
	mu      sync.Mutex
	entries []activity.ActivityEntry
}

func (m *memoryActivity) LogActivity(_ context.Context, entry *activity.ActivityEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, *entry)
	return nil
}

func (m *memoryActivity) GetRecentActivity(_ context.Context, opts activity.ListActivityOptions) ([]activity.ActivityEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []activity.ActivityEntry
	for _, e := range m.entries {
		if opts.ActivityType != nil && e.ActivityType != *opts.ActivityType {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

var fixedToday = scholarship.MustDate(2024, time.December, 1)

type testEnv struct {
	server   *httptest.Server
	rpc      *testHandler
	activity *memoryActivity
}

func newTestEnv(t *testing.T, gen recommend.Generator) *testEnv {
	t.Helper()

	records, err := scholarship.LoadCatalog(scholarship.CatalogSCU)
	require.NoError(t, err)
	store := scholarship.NewMemoryStore(records)

	env := &testEnv{rpc: &testHandler{}, activity: &memoryActivity{}}
	router := NewServer(Config{
		RPC:          env.rpc,
		Finder:       finder.NewService(store, store, nil, nil),
		Recommender:  recommend.NewService(gen, nil, time.Second, nil),
		Activity:     env.activity,
		MCP:          http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusAccepted) }),
		Today:        func() scholarship.Date { return fixedToday },
		UpcomingDays: 30,
	})
	env.server = httptest.NewServer(router)
	t.Cleanup(env.server.Close)
	return env
}

func (e *testEnv) get(t *testing.T, path string) *http.Response {
	t.Helper()
	resp, err := http.Get(e.server.URL + path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func (e *testEnv) post(t *testing.T, path, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(e.server.URL+path, "application/json", bytes.NewBufferString(body))
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestHTTPServer_Health(t *testing.T) {
	env := newTestEnv(t, nil)

	resp := env.get(t, "/health")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, resp.Header.Get(RequestIDHeader))
}

func TestHTTPServer_RequestIDEchoed(t *testing.T) {
	env := newTestEnv(t, nil)

	req, err := http.NewRequest(http.MethodGet, env.server.URL+"/health", nil)
	require.NoError(t, err)
	req.Header.Set(RequestIDHeader, "req-123")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, "req-123", resp.Header.Get(RequestIDHeader))
}

func TestHTTPServer_RPC(t *testing.T) {
	env := newTestEnv(t, nil)

	resp := env.post(t, "/rpc", `{"jsonrpc":"2.0","method":"lookup_date","params":{"date":"2024-12-20"},"id":1}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "lookup_date", env.rpc.method)

	body := decode[Response](t, resp)
	require.Nil(t, body.Error)
	require.Equal(t, float64(1), body.ID)
}

func TestHTTPServer_RPCParseError(t *testing.T) {
	env := newTestEnv(t, nil)

	resp := env.post(t, "/rpc", `{not json`)
	body := decode[Response](t, resp)
	require.NotNil(t, body.Error)
	require.Equal(t, ErrParseCode, body.Error.Code)
}

func TestHTTPServer_RPCHandlerError(t *testing.T) {
	env := newTestEnv(t, nil)
	env.rpc.err = codedErr{code: "INVALID_DATE", message: "bad date", hint: "use YYYY-MM-DD"}

	resp := env.post(t, "/rpc", `{"jsonrpc":"2.0","method":"lookup_date","id":"a"}`)
	body := decode[Response](t, resp)
	require.NotNil(t, body.Error)
	require.Equal(t, ErrInvalidParams, body.Error.Code)
	require.Equal(t, "bad date", body.Error.Message)
}

func TestHTTPServer_MCPMounted(t *testing.T) {
	env := newTestEnv(t, nil)

	resp := env.post(t, "/mcp", `{}`)
	require.Equal(t, http.StatusAccepted, resp.StatusCode)
}
