package flash_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gig-directory/internal/flash"
)

// sessionContext builds an echo context with the cookie session
// middleware applied, so flash.Get sees a live session.
func sessionContext(t *testing.T) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := session.Middleware(sessions.NewCookieStore([]byte("test-secret")))
	h := mw(func(echo.Context) error { return nil })
	require.NoError(t, h(c))
	return c
}

func TestFlashRoundTrip(t *testing.T) {
	c := sessionContext(t)

	flash.Success(c, "it worked")
	flash.Error(c, "it broke")
	flash.Success(c, "again")

	msgs := flash.Pop(c)
	require.Len(t, msgs, 3)

	// Errors drain first, then successes in insertion order.
	assert.Equal(t, flash.Message{Kind: "error", Text: "it broke"}, msgs[0])
	assert.Equal(t, flash.Message{Kind: "success", Text: "it worked"}, msgs[1])
	assert.Equal(t, flash.Message{Kind: "success", Text: "again"}, msgs[2])
}

func TestFlashPopDrains(t *testing.T) {
	c := sessionContext(t)

	flash.Success(c, "once")
	require.Len(t, flash.Pop(c), 1)
	assert.Empty(t, flash.Pop(c))
}

func TestFlashPopEmpty(t *testing.T) {
	c := sessionContext(t)
	assert.Empty(t, flash.Pop(c))
}
