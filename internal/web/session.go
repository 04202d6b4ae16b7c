package web

import (
	"net/http"

	"github.com/google/uuid"
)

// SessionCookie holds the table ID of a browser
const SessionCookie = "bj_session"

const sessionMaxAge = 7 * 24 * 60 * 60

// sessionID returns the caller's table ID, issuing a new cookie when the
// request has none or carries a malformed one
func (s *Server) sessionID(w http.ResponseWriter, r *http.Request) string {
	if cookie, err := r.Cookie(SessionCookie); err == nil {
		if id, err := uuid.Parse(cookie.Value); err == nil {
			return id.String()
		}
	}

	id := uuid.New().String()
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    id,
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		Secure:   s.opts.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}
