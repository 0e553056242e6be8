//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/vocab-helper/internal/app"
	"github.com/heartmarshall/vocab-helper/internal/config"
)

// hostPage serves a single flashcard whose word and side can be changed
// between polls.
type hostPage struct {
	mu      sync.Mutex
	word    string
	flipped bool
}

func (h *hostPage) set(word string, flipped bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.word, h.flipped = word, flipped
}

func (h *hostPage) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	word, flipped := h.word, h.flipped
	h.mu.Unlock()

	class := "flashcard"
	if flipped {
		class += " flipped"
	}
	w.Header().Set("Content-Type", "text/html")
	fmt.Fprintf(w, `<html><body><div class="flashcard-container"><div class=%q><span class="flashcard-word">%s</span></div></div></body></html>`, class, word)
}

// lookupStubs fakes the definition and pronunciation sources. Only words in
// glosses are known; every request is counted per word.
type lookupStubs struct {
	glosses map[string]string
	hits    sync.Map // word -> *atomic.Int64
}

func (s *lookupStubs) count(word string) {
	v, _ := s.hits.LoadOrStore(word, new(atomic.Int64))
	v.(*atomic.Int64).Add(1)
}

func (s *lookupStubs) hitsFor(word string) int64 {
	v, ok := s.hits.Load(word)
	if !ok {
		return 0
	}
	return v.(*atomic.Int64).Load()
}

func (s *lookupStubs) google(w http.ResponseWriter, r *http.Request) {
	word := strings.TrimSuffix(r.URL.Query().Get("q"), " define")
	s.count(word)
	gloss, ok := s.glosses[word]
	if !ok {
		io.WriteString(w, "<html><body>no results</body></html>")
		return
	}
	fmt.Fprintf(w, `<html><body><div class="VNOU7b"><span class="XGaHQb YrbPuc">adjective</span><span lang="bn">%s</span></div></body></html>`, gloss)
}

func (s *lookupStubs) freedict(w http.ResponseWriter, r *http.Request) {
	// Pronunciations are never known, so every result has absent audio.
	http.NotFound(w, r)
}

type testEnv struct {
	Host    *hostPage
	Stubs   *lookupStubs
	BaseURL string
	Out     *syncBuffer
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

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func freePort(t *testing.T) int {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := l.Addr().(*net.TCPAddr).Port
	require.NoError(t, l.Close())
	return port
}

// startWatch runs app.Watch in static mode against stub servers. journalDSN
// may be empty.
func startWatch(t *testing.T, glosses map[string]string, journalDSN string) *testEnv {
	t.Helper()

	host := &hostPage{}
	hostSrv := httptest.NewServer(host)
	t.Cleanup(hostSrv.Close)

	stubs := &lookupStubs{glosses: glosses}
	mux := http.NewServeMux()
	mux.HandleFunc("/search", stubs.google)
	mux.HandleFunc("/dict/", stubs.freedict)
	lookupSrv := httptest.NewServer(mux)
	t.Cleanup(lookupSrv.Close)

	port := freePort(t)
	cfg := &config.Config{
		Host: config.HostConfig{
			Mode:              config.HostModeStatic,
			URL:               hostSrv.URL,
			ContainerSelector: ".flashcard-container",
			WordSelector:      ".flashcard-word",
			CardSelector:      ".flashcard",
			RevealedClass:     "flipped",
			PollInterval:      10 * time.Millisecond,
		},
		Lookup: config.LookupConfig{
			GoogleBaseURL:   lookupSrv.URL,
			Language:        "bn",
			BlockSelector:   "div.VNOU7b",
			POSSelector:     ".XGaHQb.YrbPuc",
			FreeDictBaseURL: lookupSrv.URL + "/dict",
			Timeout:         5 * time.Second,
		},
		Server: config.ServerConfig{
			Enabled:         true,
			Host:            "127.0.0.1",
			Port:            port,
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    5 * time.Second,
			IdleTimeout:     5 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		Journal: config.JournalConfig{DSN: journalDSN, MaxConns: 2},
		Log:     config.LogConfig{Level: "debug", Format: "json"},
	}
	require.NoError(t, cfg.Validate())

	out := &syncBuffer{}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Watch(ctx, cfg, out, logger) }()
	t.Cleanup(func() {
		cancel()
		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(10 * time.Second):
			t.Error("watch did not stop")
		}
	})

	env := &testEnv{
		Host:    host,
		Stubs:   stubs,
		BaseURL: fmt.Sprintf("http://127.0.0.1:%d", port),
		Out:     out,
	}
	env.waitLive(t)
	return env
}

func (e *testEnv) waitLive(t *testing.T) {
	t.Helper()
	require.Eventually(t, func() bool {
		resp, err := http.Get(e.BaseURL + "/live")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond, "status server never came up")
}

func (e *testEnv) getJSON(t *testing.T, path string, v any) int {
	t.Helper()
	resp, err := http.Get(e.BaseURL + path)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
	return resp.StatusCode
}

type currentBody struct {
	Lookup struct {
		State   string `json:"state"`
		Word    string `json:"word"`
		Fetches int    `json:"fetches"`
	} `json:"lookup"`
	Display struct {
		Visible bool `json:"visible"`
		Result  *struct {
			Word     string `json:"word"`
			Meanings []struct {
				PartOfSpeech string   `json:"part_of_speech"`
				Glosses      []string `json:"glosses"`
			} `json:"meanings"`
			Pronunciation *struct{} `json:"pronunciation"`
		} `json:"result"`
	} `json:"display"`
}

func (e *testEnv) current(t *testing.T) currentBody {
	t.Helper()
	var body currentBody
	e.getJSON(t, "/api/current", &body)
	return body
}
