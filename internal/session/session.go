package session

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	appErrors "github.com/commercekit/storefront/internal/errors"
)

// CookieName is the single session cookie this system sets.
const CookieName = "session"

var ErrInvalid = errors.New("invalid session cookie")

// Session is the typed content of the signed cookie. The cart id is the only
// key this system stores.
type Session struct {
	CartID string `json:"cartId,omitempty"`
}

func (s Session) IsEmpty() bool {
	return s.CartID == ""
}

// Codec is a pure encode/decode pair over the signed session cookie. It keeps
// no per-request state and is safe to share across handlers.
type Codec struct {
	secret []byte
	secure bool
}

func NewCodec(secret string, secure bool) (*Codec, error) {
	if secret == "" {
		return nil, appErrors.ConfigurationError("SESSION_SECRET environment variable is not set")
	}

	return &Codec{secret: []byte(secret), secure: secure}, nil
}

// Decode reads the session cookie from the request. A missing, tampered or
// otherwise garbled cookie decodes to the empty session; only the signature
// check distinguishes those cases and neither is an error the routes care
// about.
func (c *Codec) Decode(r *http.Request) Session {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return Session{}
	}

	session, err := c.decodeValue(cookie.Value)
	if err != nil {
		return Session{}
	}

	return session
}

// Write serializes the session into a Set-Cookie header on the response.
func (c *Codec) Write(w http.ResponseWriter, session Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    c.encodeValue(session),
		Path:     "/",
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Clear expires the session cookie on the client.
func (c *Codec) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// value format: base64url(json payload) + "." + base64url(hmac-sha256 of payload)
func (c *Codec) encodeValue(session Session) string {
	payload, _ := json.Marshal(session)
	encoded := base64.RawURLEncoding.EncodeToString(payload)

	return encoded + "." + c.sign(encoded)
}

func (c *Codec) decodeValue(value string) (Session, error) {
	encoded, sig, found := strings.Cut(value, ".")
	if !found || encoded == "" {
		return Session{}, ErrInvalid
	}

	if !hmac.Equal([]byte(c.sign(encoded)), []byte(sig)) {
		return Session{}, ErrInvalid
	}

	payload, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return Session{}, ErrInvalid
	}

	var session Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return Session{}, ErrInvalid
	}

	return session, nil
}

func (c *Codec) sign(payload string) string {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write([]byte(payload))

	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
