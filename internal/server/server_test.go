package server

import (
	"math/rand"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/example/ineqquest/internal/database"
	"github.com/example/ineqquest/internal/generator"
	"github.com/example/ineqquest/internal/session"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	t.Setenv("DATABASE_URL", "")
	require.NoError(t, database.Connect(t.TempDir()))
	t.Cleanup(func() { database.Close() })

	gen := generator.NewWithRand(rand.New(rand.NewSource(1)))
	store := session.NewStore(gen, time.Hour)
	return New(DefaultConfig(), zap.NewNop().Sugar(), store, gen)
}

// do runs a request through the full handler chain, carrying the
// session cookie when one is given.
func do(s *Server, method, target string, cookie *http.Cookie, form url.Values) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	s.httpSrv.Handler.ServeHTTP(rec, req)
	return rec
}

func sessionCookieFrom(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionCookie {
			return c
		}
	}
	t.Fatal("no session cookie set")
	return nil
}

func TestActivityPageStartsSession(t *testing.T) {
	s := newTestServer(t)

	rec := do(s, http.MethodGet, "/", nil, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Solve the inequality")
	cookie := sessionCookieFrom(t, rec)
	assert.NotEmpty(t, cookie.Value)

	// The new session is persisted right away.
	snap, err := s.sessions.GetByID(cookie.Value)
	require.NoError(t, err)
	assert.Zero(t, snap.Score)
}

func TestActivityCookieIsSticky(t *testing.T) {
	s := newTestServer(t)

	rec := do(s, http.MethodGet, "/", nil, nil)
	cookie := sessionCookieFrom(t, rec)
	tr, ok := s.store.Get(cookie.Value)
	require.True(t, ok)
	prompt := tr.Current.Prompt

	rec = do(s, http.MethodGet, "/", cookie, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), prompt)
	assert.Empty(t, rec.Result().Cookies(), "no new cookie for a live session")
}

func TestActivityUnknownPathIs404(t *testing.T) {
	s := newTestServer(t)
	rec := do(s, http.MethodGet, "/nope", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSubmitCorrectAnswerFlow(t *testing.T) {
	s := newTestServer(t)

	rec := do(s, http.MethodGet, "/", nil, nil)
	cookie := sessionCookieFrom(t, rec)
	tr, ok := s.store.Get(cookie.Value)
	require.True(t, ok)

	rec = do(s, http.MethodPost, "/submit", cookie,
		url.Values{"answer": {tr.Current.Solution.String()}})

	require.Equal(t, http.StatusSeeOther, rec.Code)
	loc, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "Correct! +1 point", loc.Query().Get("msg"))
	assert.Equal(t, "good", loc.Query().Get("kind"))

	assert.Equal(t, 1, tr.Score)

	// Attempt row and session snapshot are stored.
	attempts, err := s.attempts.GetBySession(tr.ID)
	require.NoError(t, err)
	require.Len(t, attempts, 1)
	assert.True(t, attempts[0].Correct)

	snap, err := s.sessions.GetByID(tr.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, snap.Score)
}

func TestSubmitMalformedAnswerFlow(t *testing.T) {
	s := newTestServer(t)

	rec := do(s, http.MethodGet, "/", nil, nil)
	cookie := sessionCookieFrom(t, rec)
	tr, _ := s.store.Get(cookie.Value)

	rec = do(s, http.MethodPost, "/submit", cookie, url.Values{"answer": {"???"}})

	require.Equal(t, http.StatusSeeOther, rec.Code)
	loc, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "bad", loc.Query().Get("kind"))
	assert.Zero(t, tr.Score)

	attempts, err := s.attempts.GetBySession(tr.ID)
	require.NoError(t, err)
	require.Len(t, attempts, 1)
	assert.False(t, attempts[0].Correct)
}

func TestSubmitGetRedirectsHome(t *testing.T) {
	s := newTestServer(t)
	rec := do(s, http.MethodGet, "/submit", nil, nil)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestNextSwitchesTopic(t *testing.T) {
	s := newTestServer(t)

	rec := do(s, http.MethodGet, "/", nil, nil)
	cookie := sessionCookieFrom(t, rec)
	tr, _ := s.store.Get(cookie.Value)

	rec = do(s, http.MethodPost, "/next", cookie, url.Values{"topic": {"quadratic"}})

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, generator.TopicQuadratic, tr.Topic)
	assert.Equal(t, generator.TopicQuadratic, tr.Current.Topic)
}

func TestNextUnknownTopicFallsBack(t *testing.T) {
	s := newTestServer(t)

	rec := do(s, http.MethodGet, "/", nil, nil)
	cookie := sessionCookieFrom(t, rec)
	tr, _ := s.store.Get(cookie.Value)

	do(s, http.MethodPost, "/next", cookie, url.Values{"topic": {"geometry"}})

	assert.Equal(t, generator.TopicAny, tr.Topic)
}

func TestResetIssuesFreshSession(t *testing.T) {
	s := newTestServer(t)

	rec := do(s, http.MethodGet, "/", nil, nil)
	first := sessionCookieFrom(t, rec)

	rec = do(s, http.MethodGet, "/reset", first, nil)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	second := sessionCookieFrom(t, rec)
	assert.NotEqual(t, first.Value, second.Value)
}

func TestRevealShowsSolutionAndPlot(t *testing.T) {
	s := newTestServer(t)

	rec := do(s, http.MethodGet, "/", nil, nil)
	cookie := sessionCookieFrom(t, rec)
	tr, _ := s.store.Get(cookie.Value)

	rec = do(s, http.MethodGet, "/?reveal=1", cookie, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, tr.Current.Solution.String())
	assert.Contains(t, body, "data:image/png;base64,")
}

func TestExplorePage(t *testing.T) {
	s := newTestServer(t)

	rec := do(s, http.MethodGet, "/explore", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(s, http.MethodPost, "/explore", nil,
		url.Values{"inequalities": {"|x - 2| < 3\nx^2 - 5x + 6 > 0\nnot math"}})
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "(-1, 5)")
	assert.Contains(t, body, "(-∞, 2) U (3, ∞)")
	// Two valid lines produce a combined solution section.
	assert.Contains(t, body, "Common solution")
	assert.Contains(t, body, "(-1, 2)")
}

func TestExportPDF(t *testing.T) {
	s := newTestServer(t)

	rec := do(s, http.MethodGet, "/", nil, nil)
	cookie := sessionCookieFrom(t, rec)

	rec = do(s, http.MethodGet, "/export/pdf", cookie, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")
	assert.True(t, strings.HasPrefix(rec.Body.String(), "%PDF-"))
}

func TestExportXLSX(t *testing.T) {
	s := newTestServer(t)

	rec := do(s, http.MethodGet, "/", nil, nil)
	cookie := sessionCookieFrom(t, rec)
	tr, _ := s.store.Get(cookie.Value)
	do(s, http.MethodPost, "/submit", cookie,
		url.Values{"answer": {tr.Current.Solution.String()}})

	rec = do(s, http.MethodGet, "/export/xlsx", cookie, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		rec.Header().Get("Content-Type"))
	// XLSX files are zip archives.
	assert.True(t, strings.HasPrefix(rec.Body.String(), "PK"))
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATA_DIR", "/tmp/quest")
	t.Setenv("SESSION_TTL_MINUTES", "10")
	t.Setenv("OPEN_BROWSER", "false")

	cfg := ConfigFromEnv()

	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, "/tmp/quest", cfg.DataDir)
	assert.Equal(t, 10*time.Minute, cfg.SessionTTL)
	assert.False(t, cfg.OpenBrowser)
	assert.Equal(t, "http://localhost:9000", cfg.URL())
}
