package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/chynybekuuludastan/adstudio/internal/session"
)

// SessionCookie is the cookie holding the browser session id
const SessionCookie = "adstudio_session"

// LocalSessionID is the Locals key of the session id, also visible to websocket handlers
const LocalSessionID = "sessionID"

const localWorkspace = "workspace"

const defaultCookieAge = 24 * time.Hour

// SessionConfig configures the session middleware
type SessionConfig struct {
	Registry *session.Registry
	Secure   bool

	// TTL is the cookie lifetime
	TTL time.Duration
}

// Session attaches the workspace of the browser session to the request,
// issuing a new session id when the cookie is missing or malformed.
func Session(cfg SessionConfig) fiber.Handler {
	if cfg.TTL <= 0 {
		cfg.TTL = defaultCookieAge
	}

	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Cookies(SessionCookie))
		if err != nil {
			id = uuid.New()
		}

		// Refresh the cookie so active sessions keep their id
		c.Cookie(&fiber.Cookie{
			Name:     SessionCookie,
			Value:    id.String(),
			Path:     "/",
			Expires:  time.Now().Add(cfg.TTL),
			Secure:   cfg.Secure,
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})

		c.Locals(LocalSessionID, id.String())
		c.Locals(localWorkspace, cfg.Registry.Get(id.String()))

		return c.Next()
	}
}

// SessionID returns the session id set by Session
func SessionID(c *fiber.Ctx) string {
	id, _ := c.Locals(LocalSessionID).(string)
	return id
}

// Workspace returns the workspace set by Session
func Workspace(c *fiber.Ctx) *session.Workspace {
	w, _ := c.Locals(localWorkspace).(*session.Workspace)
	return w
}
