// Package theme holds the light/dark preference kept in a browser cookie.
package theme

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// CookieName is the cookie that stores the preference
const CookieName = "theme"

const (
	valueDark  = "dark"
	valueLight = "light"
	cookieAge  = 365 * 24 * time.Hour
)

// Preference is the theme flag; true means dark
type Preference bool

const (
	Light Preference = false
	Dark  Preference = true
)

// Parse reads a stored value; anything other than "dark" is light
func Parse(value string) Preference {
	return Preference(value == valueDark)
}

// String returns the stored value
func (p Preference) String() string {
	if p {
		return valueDark
	}
	return valueLight
}

// Toggle flips the preference
func (p Preference) Toggle() Preference {
	return !p
}

// RootClass is the class attribute applied to the document root
func (p Preference) RootClass() string {
	if p {
		return valueDark
	}
	return ""
}

// FromRequest reads the preference from the request cookie
func FromRequest(c *fiber.Ctx) Preference {
	return Parse(c.Cookies(CookieName))
}

// Save writes the preference back to the client
func Save(c *fiber.Ctx, p Preference, secure bool) {
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    p.String(),
		Path:     "/",
		Expires:  time.Now().Add(cookieAge),
		Secure:   secure,
		HTTPOnly: false,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// ToggleRequest flips the preference of the current request, saves it and returns it
func ToggleRequest(c *fiber.Ctx, secure bool) Preference {
	next := FromRequest(c).Toggle()
	Save(c, next, secure)
	return next
}
