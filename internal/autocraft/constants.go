package autocraft

import "time"

// Query parameters of the session endpoint
const (
	ParamItemBase = "item_base"
	ParamMods     = "mods"
	modsSeparator = ","
)

// Connection defaults
const (
	DefaultWriteWait  = 10 * time.Second
	DefaultPongWait   = 60 * time.Second
	DefaultPingPeriod = (DefaultPongWait * 9) / 10
	DefaultReadLimit  = 64 << 10
)

// Log messages
const (
	LogMsgSessionOpened = "Auto-craft session opened"
	LogMsgSessionClosed = "Auto-craft session closed"
	LogMsgUpgradeFailed = "Websocket upgrade failed"
	LogMsgReadFailed    = "Auto-craft read failed"
	LogMsgWriteFailed   = "Auto-craft write failed"
	LogMsgBadMessage    = "Discarding malformed auto-craft message"
)

// Client facing messages
const (
	ErrMsgMissingParams  = "item_base and mods query parameters are required"
	ErrMsgMalformed      = "message must be a JSON object with a text field"
	ErrMsgEmptyText      = "item text is empty"
	ErrFmtBaseMismatch   = "item is a %s, session is crafting %s"
	ErrMsgSessionFailure = "failed to start auto-craft session"
)
