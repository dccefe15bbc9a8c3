package configs

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/session"
)

var sessionStore *session.Store

// SetupSession oturum deposunu kurar ve döndürür. Tekil olarak tutulur;
// tüm istekler aynı store üzerinden çalışmalıdır.
func SetupSession() *session.Store {
	if sessionStore != nil {
		return sessionStore
	}
	sessionStore = session.New(session.Config{
		Expiration:     time.Duration(GetEnvInt("SESSION_LIFETIME_HOURS", 72)) * time.Hour,
		KeyLookup:      "cookie:kartoteka_session",
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
		CookieSecure:   GetEnvBool("SESSION_COOKIE_SECURE", false),
	})
	return sessionStore
}

// SetupCSRF form gönderimlerini koruyan CSRF middleware'ini kurar.
func SetupCSRF() fiber.Handler {
	return csrf.New(csrf.Config{
		KeyLookup:      "form:csrf_token",
		CookieName:     "kartoteka_csrf",
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
		Expiration:     2 * time.Hour,
		ContextKey:     "csrf_token",
	})
}
