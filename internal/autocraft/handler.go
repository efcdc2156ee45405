// Package autocraft serves websocket sessions that check each rolled item
// against a fixed set of target mods.
package autocraft

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/antonguzun/lazy-crafter/internal/domain"
	"github.com/antonguzun/lazy-crafter/internal/logger"
	"github.com/antonguzun/lazy-crafter/internal/matcher"
	"github.com/antonguzun/lazy-crafter/internal/metrics"
)

// Service is the part of the crafting service a session uses
type Service interface {
	ParseItem(ctx context.Context, raw string) (*domain.ParsedItem, error)
	NewMatcher(ctx context.Context, itemBase string, targets []string) (*matcher.Matcher, error)
}

// Config tunes connection keep-alive. Zero values take the defaults, and a
// nil CheckOrigin falls back to SameOriginOrLocal.
type Config struct {
	WriteWait   time.Duration
	PongWait    time.Duration
	PingPeriod  time.Duration
	ReadLimit   int64
	CheckOrigin func(r *http.Request) bool
}

func (c Config) withDefaults() Config {
	if c.WriteWait <= 0 {
		c.WriteWait = DefaultWriteWait
	}
	if c.PongWait <= 0 {
		c.PongWait = DefaultPongWait
	}
	if c.PingPeriod <= 0 || c.PingPeriod >= c.PongWait {
		c.PingPeriod = (c.PongWait * 9) / 10
	}
	if c.ReadLimit <= 0 {
		c.ReadLimit = DefaultReadLimit
	}
	if c.CheckOrigin == nil {
		c.CheckOrigin = SameOriginOrLocal
	}
	return c
}

// SameOriginOrLocal accepts requests without an Origin header, from the
// serving host, or from a loopback page.
func SameOriginOrLocal(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil || u.Host == "" {
		return false
	}
	if strings.EqualFold(u.Host, r.Host) {
		return true
	}
	host := u.Hostname()
	if strings.EqualFold(host, "localhost") {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}

// Handler upgrades requests to auto-craft sessions
type Handler struct {
	service  Service
	cfg      Config
	upgrader websocket.Upgrader
}

// NewHandler creates a session handler backed by svc
func NewHandler(svc Service, cfg Config) *Handler {
	cfg = cfg.withDefaults()
	return &Handler{
		service: svc,
		cfg:     cfg,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     cfg.CheckOrigin,
		},
	}
}

// ParseTargets splits the comma separated mods parameter, dropping blanks
func ParseTargets(raw string) []string {
	var targets []string
	for _, key := range strings.Split(raw, modsSeparator) {
		if key = strings.TrimSpace(key); key != "" {
			targets = append(targets, key)
		}
	}
	return targets
}

// ServeHTTP resolves the targets before upgrading so bad input gets a plain HTTP error
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContext(ctx)

	itemBase := strings.TrimSpace(r.URL.Query().Get(ParamItemBase))
	targets := ParseTargets(r.URL.Query().Get(ParamMods))
	if itemBase == "" || len(targets) == 0 {
		http.Error(w, ErrMsgMissingParams, http.StatusBadRequest)
		return
	}

	m, err := h.service.NewMatcher(ctx, itemBase, targets)
	if err != nil {
		status := statusFor(err)
		if status >= http.StatusInternalServerError {
			log.Error(ErrMsgSessionFailure, "item_base", itemBase, "error", err)
			http.Error(w, ErrMsgSessionFailure, status)
			return
		}
		http.Error(w, err.Error(), status)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// The upgrader has already replied
		log.Warn(LogMsgUpgradeFailed, "error", err)
		return
	}

	metrics.AutocraftSessions.Inc()
	defer metrics.AutocraftSessions.Dec()

	log.Info(LogMsgSessionOpened, "item_base", itemBase, "targets", m.Targets())
	checks := newSession(conn, m, h.service, h.cfg).run(context.WithoutCancel(ctx))
	log.Info(LogMsgSessionClosed, "item_base", itemBase, "checks", checks)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrItemBaseNotFound), errors.Is(err, domain.ErrModNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrNoModsSelected), errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
