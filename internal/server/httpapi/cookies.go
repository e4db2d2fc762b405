package httpapi

import (
	"net/http"
	"time"
)

// Cookie contract: both cookies are Secure, SameSite=Strict, Path=/.
// Only the token cookie is HttpOnly; the address cookie carries public
// material the frontend is allowed to read.
const (
	sessionCookieName = "session_token"
	addressCookieName = "wallet_address"
)

func setSessionCookies(w http.ResponseWriter, token, address string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     addressCookieName,
		Value:    address,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	})
}

// clearSessionCookies expires both cookies with the same flags they were set
// with. MaxAge: -1 writes Max-Age=0 on the wire, which removes the cookie
// immediately.
func clearSessionCookies(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     addressCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	})
}
