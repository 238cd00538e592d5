// Package flash implements one-shot notifications that survive a
// redirect: a handler adds a message, the next rendered page drains
// and displays it.  Messages ride in the cookie session managed by
// echo-contrib/session.
package flash

import (
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

// SessionName is the cookie session carrying the flash messages.
const SessionName = "gig_directory"

const (
	successKey = "success"
	errorKey   = "error"
)

// Message is one pending notification.  Kind is "success" or "error"
// and selects the styling in the flash partial.
type Message struct {
	Kind string
	Text string
}

// Success queues a success notification for the next rendered page.
func Success(c echo.Context, text string) {
	add(c, successKey, text)
}

// Error queues an error notification for the next rendered page.
func Error(c echo.Context, text string) {
	add(c, errorKey, text)
}

func add(c echo.Context, key, text string) {
	sess, err := session.Get(SessionName, c)
	if err != nil {
		c.Logger().Warnf("flash: session unavailable: %v", err)
		return
	}
	sess.AddFlash(text, key)
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		c.Logger().Warnf("flash: save failed: %v", err)
	}
}

// Pop drains every pending message, errors first.  Draining marks the
// messages as consumed, so it must only be called by the handler that
// is about to render them.
func Pop(c echo.Context) []Message {
	sess, err := session.Get(SessionName, c)
	if err != nil {
		return nil
	}
	var out []Message
	for _, v := range sess.Flashes(errorKey) {
		if s, ok := v.(string); ok {
			out = append(out, Message{Kind: "error", Text: s})
		}
	}
	for _, v := range sess.Flashes(successKey) {
		if s, ok := v.(string); ok {
			out = append(out, Message{Kind: "success", Text: s})
		}
	}
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		c.Logger().Warnf("flash: save failed: %v", err)
	}
	return out
}
