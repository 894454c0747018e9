package server

import (
	"fmt"
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/joseph-ayodele/homepage/internal/common"
)

const (
	sessionName = "homepage_session"
	loggedInKey = "logged_in"
)

// NewSessionStore returns a signed cookie store keyed by secret.
func NewSessionStore(secret string, secure bool) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

// authorize returns nil when the request's session carries logged_in=true and an
// error wrapping common.ErrUnauthorized otherwise.
// Nothing in this server sets the flag; it is written by an external login flow.
func (s *Server) authorize(r *http.Request) error {
	sess, err := s.sessions.Get(r, sessionName)
	if err != nil {
		return fmt.Errorf("%w: invalid session cookie: %v", common.ErrUnauthorized, err)
	}
	if loggedIn, _ := sess.Values[loggedInKey].(bool); !loggedIn {
		return fmt.Errorf("%w: session is not logged in", common.ErrUnauthorized)
	}
	return nil
}
