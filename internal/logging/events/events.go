// Package events groups the structured trace emitters used across the
// application. Each subsystem owns one typed tracer so call sites stay
// greppable and the payload keys stay consistent.
package events

import "github.com/remtui/rem/internal/logging"

type AppTracer struct{}

type UITracer struct{}

type SearchTracer struct{}

type KeysTracer struct{}

type StoreTracer struct{}

type CommandTracer struct{}

var (
	App     = AppTracer{}
	UI      = UITracer{}
	Search  = SearchTracer{}
	Keys    = KeysTracer{}
	Store   = StoreTracer{}
	Command = CommandTracer{}
)

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Permission(status string) {
	logging.Trace("app.permission", map[string]interface{}{"status": status})
}

func (UITracer) ViewChange(from, to string) {
	logging.Trace("ui.view", map[string]interface{}{"from": from, "to": to})
}

func (UITracer) Cursor(view string, cursor int) {
	logging.Trace("ui.cursor", map[string]interface{}{"view": view, "cursor": cursor})
}

func (UITracer) Intent(kind string) {
	logging.Trace("ui.intent", map[string]interface{}{"kind": kind})
}

func (UITracer) Status(message string) {
	logging.Trace("ui.status", map[string]interface{}{"message": message})
}

func (SearchTracer) Start(scope string) {
	logging.Trace("search.start", map[string]interface{}{"scope": scope})
}

func (SearchTracer) Query(query string) {
	logging.Trace("search.query", map[string]interface{}{"query": query})
}

func (SearchTracer) Exit(kept bool) {
	logging.Trace("search.exit", map[string]interface{}{"kept": kept})
}

func (SearchTracer) Clear() {
	logging.Trace("search.clear", nil)
}

func (KeysTracer) Chord(key string) {
	logging.Trace("keys.chord", map[string]interface{}{"key": key})
}

func (StoreTracer) Loaded(kind string, count int) {
	logging.Trace("store.loaded", map[string]interface{}{"kind": kind, "count": count})
}

func (StoreTracer) Error(op string, err error) {
	if err == nil {
		return
	}
	logging.Trace("store.error", map[string]interface{}{"op": op, "error": err.Error()})
}

func (StoreTracer) LocalSetterInGlobalScope() {
	logging.Trace("store.local-setter-global-scope", nil)
}

func (CommandTracer) Queue(op string) {
	logging.Trace("command.queue", map[string]interface{}{"op": op})
}

func (CommandTracer) Result(op, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"op": op, "type": msgType})
}

func (CommandTracer) Error(op string, err error) {
	if err == nil {
		return
	}
	logging.Trace("command.error", map[string]interface{}{"op": op, "error": err.Error()})
}
