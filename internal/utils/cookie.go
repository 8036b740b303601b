package utils

import "net/http"

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "session"

// SessionCookie builds the session cookie for a token valid for maxAge
// seconds.
func SessionCookie(token string, maxAge int, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	}
}

// ClearSessionCookie builds a cookie that makes the browser drop the
// session.
func ClearSessionCookie(secure bool) *http.Cookie {
	c := SessionCookie("", 0, secure)
	c.MaxAge = -1
	return c
}

// SessionToken returns the raw session token of r, or "" if there is none.
func SessionToken(r *http.Request) string {
	c, err := r.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}
	return c.Value
}
