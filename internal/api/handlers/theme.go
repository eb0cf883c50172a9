package handlers

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/chynybekuuludastan/adstudio/internal/service/theme"
)

// ThemeHandler flips the light/dark preference
type ThemeHandler struct {
	SecureCookie bool
}

// NewThemeHandler creates a new theme handler
func NewThemeHandler(secureCookie bool) *ThemeHandler {
	return &ThemeHandler{SecureCookie: secureCookie}
}

// Toggle flips the theme and sends the browser back where it came from
func (h *ThemeHandler) Toggle(c *fiber.Ctx) error {
	theme.ToggleRequest(c, h.SecureCookie)
	return c.Redirect(backPath(c.Get(fiber.HeaderReferer)), fiber.StatusSeeOther)
}

// ToggleJSON flips the theme and returns the new preference
// @Summary Toggle the theme
// @Description Flip the light/dark preference stored in the theme cookie
// @Tags theme
// @Produce json
// @Success 200 {object} api.SuccessResponse{data=api.ThemeResponse} "New theme"
// @Router /theme/toggle [post]
func (h *ThemeHandler) ToggleJSON(c *fiber.Ctx) error {
	pref := theme.ToggleRequest(c, h.SecureCookie)
	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"theme":      pref.String(),
			"root_class": pref.RootClass(),
		},
	})
}

// backPath keeps only the local path of a referer so redirects stay on this site
func backPath(referer string) string {
	u, err := url.Parse(referer)
	if err != nil || !strings.HasPrefix(u.Path, "/") || strings.HasPrefix(u.Path, "//") || strings.Contains(u.Path, `\`) {
		return "/"
	}
	if u.RawQuery != "" {
		return u.Path + "?" + u.RawQuery
	}
	return u.Path
}
