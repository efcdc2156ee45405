package autocraft

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/antonguzun/lazy-crafter/internal/logger"
	"github.com/antonguzun/lazy-crafter/internal/matcher"
	"github.com/antonguzun/lazy-crafter/internal/metrics"
)

// CheckRequest is one rolled item sent by the client
type CheckRequest struct {
	Text string `json:"text"`
}

// CheckResult tells the client whether to stop rolling
type CheckResult struct {
	Matched bool     `json:"matched"`
	Mods    []string `json:"mods"`
	Missing []string `json:"missing"`
	Error   string   `json:"error"`
}

type session struct {
	conn    *websocket.Conn
	matcher *matcher.Matcher
	service Service
	cfg     Config
}

func newSession(conn *websocket.Conn, m *matcher.Matcher, svc Service, cfg Config) *session {
	return &session{conn: conn, matcher: m, service: svc, cfg: cfg}
}

// run answers checks until the client leaves and returns how many it answered.
// Bad items are reported in-band and never end the session.
func (s *session) run(ctx context.Context) int {
	log := logger.FromContext(ctx)

	s.conn.SetReadLimit(s.cfg.ReadLimit)
	_ = s.conn.SetReadDeadline(time.Now().Add(s.cfg.PongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(s.cfg.PongWait))
	})

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go s.keepAlive(done, &wg)
	defer func() {
		close(done)
		wg.Wait()
		_ = s.conn.Close()
	}()

	checks := 0
	for {
		_, payload, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn(LogMsgReadFailed, "error", err)
			}
			return checks
		}

		var req CheckRequest
		var res CheckResult
		if err := json.Unmarshal(payload, &req); err != nil {
			log.Debug(LogMsgBadMessage, "error", err)
			res = s.failure(ErrMsgMalformed)
		} else {
			res = s.check(ctx, req.Text)
		}

		_ = s.conn.SetWriteDeadline(time.Now().Add(s.cfg.WriteWait))
		if err := s.conn.WriteJSON(res); err != nil {
			log.Warn(LogMsgWriteFailed, "error", err)
			return checks
		}
		checks++
	}
}

// keepAlive pings the client so dead connections hit the read deadline
func (s *session) keepAlive(done <-chan struct{}, wg *sync.WaitGroup) {
	defer wg.Done()

	ticker := time.NewTicker(s.cfg.PingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			// WriteControl is safe alongside the writer in run
			if err := s.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(s.cfg.WriteWait)); err != nil {
				return
			}
		}
	}
}

func (s *session) check(ctx context.Context, text string) CheckResult {
	if text == "" {
		return s.failure(ErrMsgEmptyText)
	}

	item, err := s.service.ParseItem(ctx, text)
	if err != nil {
		return s.failure(err.Error())
	}
	if item.ItemBaseName != s.matcher.ItemBase() {
		return s.failure(fmt.Sprintf(ErrFmtBaseMismatch, item.ItemBaseName, s.matcher.ItemBase()))
	}

	res := CheckResult{
		Matched: s.matcher.Matches(item.Mods),
		Mods:    item.Mods,
		Missing: s.matcher.Missing(item.Mods),
	}
	if res.Mods == nil {
		res.Mods = []string{}
	}
	if res.Matched {
		metrics.AutocraftChecks.WithLabelValues(metrics.ResultMatched).Inc()
	} else {
		metrics.AutocraftChecks.WithLabelValues(metrics.ResultMissed).Inc()
	}
	return res
}

func (s *session) failure(msg string) CheckResult {
	metrics.AutocraftChecks.WithLabelValues(metrics.ResultError).Inc()
	return CheckResult{Mods: []string{}, Missing: s.matcher.Targets(), Error: msg}
}
