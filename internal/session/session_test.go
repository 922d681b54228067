package session_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	appErrors "github.com/commercekit/storefront/internal/errors"
	"github.com/commercekit/storefront/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCodec(t *testing.T) *session.Codec {
	t.Helper()

	codec, err := session.NewCodec("test-secret", false)
	require.NoError(t, err)

	return codec
}

func writtenCookie(t *testing.T, rr *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()

	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)

	return cookies[0]
}

func TestNewCodec_RequiresSecret(t *testing.T) {
	codec, err := session.NewCodec("", false)

	require.Error(t, err)
	assert.Nil(t, codec)

	appErr, ok := appErrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, appErrors.ErrCodeConfiguration, appErr.Code)
}

func TestRoundTrip(t *testing.T) {
	codec := newCodec(t)

	rr := httptest.NewRecorder()
	codec.Write(rr, session.Session{CartID: "cart_123"})

	cookie := writtenCookie(t, rr)
	assert.Equal(t, session.CookieName, cookie.Name)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, "/", cookie.Path)

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.AddCookie(cookie)

	sess := codec.Decode(req)
	assert.Equal(t, "cart_123", sess.CartID)
	assert.False(t, sess.IsEmpty())
}

func TestDecode_MissingCookie(t *testing.T) {
	codec := newCodec(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)

	sess := codec.Decode(req)
	assert.True(t, sess.IsEmpty())
}

func TestDecode_RejectsTamperedValue(t *testing.T) {
	codec := newCodec(t)

	rr := httptest.NewRecorder()
	codec.Write(rr, session.Session{CartID: "cart_123"})
	cookie := writtenCookie(t, rr)

	payload, sig, found := strings.Cut(cookie.Value, ".")
	require.True(t, found)

	t.Run("Altered Payload", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "x" + payload + "." + sig})

		assert.True(t, codec.Decode(req).IsEmpty())
	})

	t.Run("Altered Signature", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: payload + "." + sig + "x"})

		assert.True(t, codec.Decode(req).IsEmpty())
	})

	t.Run("No Separator", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: payload})

		assert.True(t, codec.Decode(req).IsEmpty())
	})

	t.Run("Wrong Secret", func(t *testing.T) {
		other, err := session.NewCodec("another-secret", false)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(cookie)

		assert.True(t, other.Decode(req).IsEmpty())
	})
}

func TestClear(t *testing.T) {
	codec := newCodec(t)

	rr := httptest.NewRecorder()
	codec.Clear(rr)

	cookie := writtenCookie(t, rr)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}
