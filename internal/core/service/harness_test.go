package service

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/catalogadmin/console/internal/core/domain"
	"github.com/catalogadmin/console/internal/infrastructure/apiclient"
	"github.com/catalogadmin/console/internal/pkg/validation"
)

type viewMessage struct {
	form    domain.Form
	message string
}

type recordingView struct {
	mu        sync.Mutex
	lists     map[domain.ResourceKind][][]domain.Entity
	errors    []viewMessage
	successes []string
	panels    []domain.Panel
}

func newRecordingView() *recordingView {
	return &recordingView{lists: make(map[domain.ResourceKind][][]domain.Entity)}
}

func (v *recordingView) RenderList(kind domain.ResourceKind, items []domain.Entity) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.lists[kind] = append(v.lists[kind], items)
}

func (v *recordingView) ShowError(form domain.Form, message string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.errors = append(v.errors, viewMessage{form: form, message: message})
}

func (v *recordingView) ShowSuccess(message string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.successes = append(v.successes, message)
}

func (v *recordingView) SwitchPanel(panel domain.Panel) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.panels = append(v.panels, panel)
}

func (v *recordingView) renders(kind domain.ResourceKind) [][]domain.Entity {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.lists[kind]
}

func (v *recordingView) lastError() viewMessage {
	v.mu.Lock()
	defer v.mu.Unlock()
	if len(v.errors) == 0 {
		return viewMessage{}
	}
	return v.errors[len(v.errors)-1]
}

type apiCall struct {
	method string
	path   string
	auth   string
	body   string
}

// fakeAPI records every request and answers from per-route handlers.
// Unrouted GETs answer with an empty list.
type fakeAPI struct {
	mu     sync.Mutex
	calls  []apiCall
	routes map[string]http.HandlerFunc
}

func (f *fakeAPI) handle(route string, h http.HandlerFunc) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.routes[route] = h
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	route := r.Method + " " + r.URL.Path

	f.mu.Lock()
	f.calls = append(f.calls, apiCall{
		method: r.Method,
		path:   r.URL.Path,
		auth:   r.Header.Get("Authorization"),
		body:   string(body),
	})
	h := f.routes[route]
	f.mu.Unlock()

	r.Body = io.NopCloser(bytes.NewReader(body))
	if h != nil {
		h(w, r)
		return
	}
	if r.Method == http.MethodGet {
		w.Write([]byte(`[]`))
		return
	}
	w.WriteHeader(http.StatusCreated)
	w.Write([]byte(`{}`))
}

func (f *fakeAPI) recorded() []apiCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]apiCall(nil), f.calls...)
}

func (f *fakeAPI) count(method, path string) int {
	n := 0
	for _, c := range f.recorded() {
		if c.method == method && c.path == path {
			n++
		}
	}
	return n
}

type harness struct {
	api     *fakeAPI
	server  *httptest.Server
	view    *recordingView
	session *Session
	catalog *Catalog
	access  *Access
	logs    *syncBuffer
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) count(substr string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return strings.Count(b.buf.String(), substr)
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	api := &fakeAPI{routes: make(map[string]http.HandlerFunc)}
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	client, err := apiclient.New(apiclient.Config{BaseURL: srv.URL}, zerolog.Nop())
	if err != nil {
		t.Fatalf("apiclient.New: %v", err)
	}

	logs := &syncBuffer{}
	logger := zerolog.New(logs)
	view := newRecordingView()
	session := NewSession()
	valid := validation.New()
	catalog := NewCatalog(client, session, view, valid, logger)
	access := NewAccess(client, session, view, valid, catalog, logger)

	return &harness{
		api:     api,
		server:  srv,
		view:    view,
		session: session,
		catalog: catalog,
		access:  access,
		logs:    logs,
	}
}

func (h *harness) loginAs(t *testing.T, token string) {
	t.Helper()
	h.session.SetCredential(token)
}

func writeJSON(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}
}
