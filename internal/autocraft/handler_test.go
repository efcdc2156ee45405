package autocraft

import (
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antonguzun/lazy-crafter/internal/catalog"
	"github.com/antonguzun/lazy-crafter/internal/craft"
	"github.com/antonguzun/lazy-crafter/internal/estimation"
	"github.com/antonguzun/lazy-crafter/internal/metrics"
	"github.com/antonguzun/lazy-crafter/internal/parser"
	"github.com/antonguzun/lazy-crafter/internal/testing/fixture"
	"github.com/antonguzun/lazy-crafter/internal/testing/leaktest"
	"github.com/antonguzun/lazy-crafter/internal/translation"
)

func newTestService(t *testing.T) craft.Service {
	t.Helper()
	c, err := catalog.New(fixture.Tables(), translation.NewResolver(fixture.Translations()))
	require.NoError(t, err)
	p, err := parser.New(c)
	require.NoError(t, err)
	return craft.NewService(c, p, estimation.New(c), nil)
}

func bootsItem(base string, mods ...string) string {
	return "Item Class: Boots\nRarity: Rare\nGale Stride\n" + base + "\n--------\nItem Level: 84\n--------\n" +
		strings.Join(mods, "\n") + "\n"
}

func sessionURL(t *testing.T, srvURL, itemBase, mods string) string {
	t.Helper()
	u, err := url.Parse(srvURL)
	require.NoError(t, err)
	u.Scheme = "ws"
	q := u.Query()
	q.Set(ParamItemBase, itemBase)
	q.Set(ParamMods, mods)
	u.RawQuery = q.Encode()
	return u.String()
}

func dial(t *testing.T, target string) *websocket.Conn {
	t.Helper()
	conn, resp, err := websocket.DefaultDialer.Dial(target, nil)
	if resp != nil {
		resp.Body.Close()
	}
	require.NoError(t, err)
	return conn
}

func TestServeHTTP_RejectsBadInput(t *testing.T) {
	h := NewHandler(newTestService(t), Config{})

	tests := []struct {
		name       string
		query      string
		wantStatus int
	}{
		{"no params", "", http.StatusBadRequest},
		{"no mods", "?item_base=Carnal+Boots", http.StatusBadRequest},
		{"blank mods", "?item_base=Carnal+Boots&mods=,+,", http.StatusBadRequest},
		{"unknown base", "?item_base=Nope&mods=IncreasedLife4", http.StatusNotFound},
		{"unknown mod", "?item_base=Carnal+Boots&mods=Nope", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ws"+tt.query, nil))
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestSameOriginOrLocal(t *testing.T) {
	tests := []struct {
		name   string
		host   string
		origin string
		want   bool
	}{
		{"no origin", "example.com", "", true},
		{"same host", "crafter.example:8080", "http://crafter.example:8080", true},
		{"same host other case", "Crafter.Example", "https://crafter.example", true},
		{"localhost page", "127.0.0.1:8080", "http://localhost:3000", true},
		{"loopback ip page", "127.0.0.1:8080", "http://127.0.0.1:5173", true},
		{"ipv6 loopback page", "[::1]:8080", "http://[::1]:3000", true},
		{"foreign page", "127.0.0.1:8080", "http://evil.example", false},
		{"same name other port", "crafter.example:8080", "http://crafter.example:9090", false},
		{"opaque origin", "127.0.0.1:8080", "null", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/ws", nil)
			r.Host = tt.host
			if tt.origin != "" {
				r.Header.Set("Origin", tt.origin)
			}
			assert.Equal(t, tt.want, SameOriginOrLocal(r))
		})
	}
}

func TestSession_RejectsForeignOrigin(t *testing.T) {
	srv := httptest.NewServer(NewHandler(newTestService(t), Config{}))
	defer srv.Close()

	header := http.Header{"Origin": []string{"http://evil.example"}}
	conn, resp, err := websocket.DefaultDialer.Dial(sessionURL(t, srv.URL, fixture.CarnalBoots, "IncreasedLife4"), header)
	require.ErrorIs(t, err, websocket.ErrBadHandshake)
	assert.Nil(t, conn)
	require.NotNil(t, resp)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestParseTargets(t *testing.T) {
	assert.Equal(t, []string{"A", "B"}, ParseTargets(" A, ,B,"))
	assert.Nil(t, ParseTargets(""))
}

func TestSession(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)
	sessionsBefore := testutil.ToFloat64(metrics.AutocraftSessions)

	srv := httptest.NewServer(NewHandler(newTestService(t), Config{}))
	conn := dial(t, sessionURL(t, srv.URL, fixture.CarnalBoots, "IncreasedLife4,MovementVelocity3"))

	require.Eventually(t, func() bool {
		return testutil.ToFloat64(metrics.AutocraftSessions) == sessionsBefore+1
	}, time.Second, 10*time.Millisecond)

	steps := []struct {
		name    string
		send    func() error
		want    CheckResult
		wantErr string
	}{
		{
			name: "partial roll",
			send: func() error {
				return conn.WriteJSON(CheckRequest{Text: bootsItem(fixture.CarnalBoots, "+45 to maximum Life")})
			},
			want: CheckResult{Mods: []string{"IncreasedLife4"}, Missing: []string{"MovementVelocity3"}},
		},
		{
			name: "better rolls count",
			send: func() error {
				return conn.WriteJSON(CheckRequest{Text: bootsItem(fixture.CarnalBoots,
					"+60 to maximum Life", "26% increased Movement Speed")})
			},
			want: CheckResult{Matched: true, Mods: []string{"IncreasedLife5", "MovementVelocity4"}, Missing: []string{}},
		},
		{
			name:    "malformed message keeps the session",
			send:    func() error { return conn.WriteMessage(websocket.TextMessage, []byte("not json")) },
			wantErr: ErrMsgMalformed,
		},
		{
			name:    "empty text",
			send:    func() error { return conn.WriteJSON(CheckRequest{}) },
			wantErr: ErrMsgEmptyText,
		},
		{
			name:    "not an item",
			send:    func() error { return conn.WriteJSON(CheckRequest{Text: "hello"}) },
			wantErr: "no item class",
		},
		{
			name: "other base",
			send: func() error {
				return conn.WriteJSON(CheckRequest{Text: bootsItem(fixture.RingmailBoots, "+45 to maximum Life")})
			},
			wantErr: "session is crafting Carnal Boots",
		},
	}

	for _, step := range steps {
		require.NoError(t, step.send(), step.name)

		var got CheckResult
		require.NoError(t, conn.ReadJSON(&got), step.name)

		if step.wantErr != "" {
			assert.Contains(t, got.Error, step.wantErr, step.name)
			assert.False(t, got.Matched, step.name)
			assert.Equal(t, []string{"IncreasedLife4", "MovementVelocity3"}, got.Missing, step.name)
			continue
		}
		assert.Equal(t, step.want, got, step.name)
	}

	require.NoError(t, conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")))
	conn.Close()

	require.Eventually(t, func() bool {
		return testutil.ToFloat64(metrics.AutocraftSessions) == sessionsBefore
	}, time.Second, 10*time.Millisecond)

	srv.Close()
	checker.Check(2)
}

func TestSession_DropsSilentClient(t *testing.T) {
	cfg := Config{PongWait: 100 * time.Millisecond, PingPeriod: 30 * time.Millisecond}
	srv := httptest.NewServer(NewHandler(newTestService(t), cfg))
	defer srv.Close()

	conn := dial(t, sessionURL(t, srv.URL, fixture.CarnalBoots, "IncreasedLife4"))
	defer conn.Close()

	// Pongs are only sent while reading, so this client looks dead to the server
	time.Sleep(400 * time.Millisecond)

	_ = conn.SetReadDeadline(time.Now().Add(time.Second))
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			var netErr net.Error
			if errors.As(err, &netErr) {
				assert.False(t, netErr.Timeout(), "server should have closed the connection")
			}
			return
		}
	}
}
