package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/chynybekuuludastan/adstudio/internal/service/backend"
	"github.com/chynybekuuludastan/adstudio/internal/service/lifecycle"
	"github.com/chynybekuuludastan/adstudio/internal/service/theme"
	"github.com/chynybekuuludastan/adstudio/internal/web/ui"
	"github.com/chynybekuuludastan/adstudio/internal/web/views"
)

// ClipLinker builds browser links to generated clips
type ClipLinker interface {
	DownloadURL(clipPath string) string
	StreamURL(clipPath string) string
}

// Notices shown after a redirect
const (
	noticeBusy           = "busy"
	noticeNothingToRetry = "nothing-to-retry"
)

var notices = map[string]string{
	noticeBusy:           "A request is already in progress. Please wait for it to finish.",
	noticeNothingToRetry: "There is nothing to retry.",
}

// loadingRefreshSeconds is how often a loading page reloads itself without JS
const loadingRefreshSeconds = 3

// render renders view into the main layout with the shell data every page needs
func render(c *fiber.Ctx, view, title string, data fiber.Map) error {
	pref := theme.FromRequest(c)

	data["Title"] = title
	data["RootClass"] = pref.RootClass()
	data["Dark"] = bool(pref)
	data["Nav"] = ui.NavItems(c.Path())
	if _, ok := data["Notice"]; !ok {
		data["Notice"] = notices[c.Query("notice")]
	}

	return c.Render(view, data, views.Layout)
}

// panelView is the part of a panel snapshot the page templates need
type panelView struct {
	State     lifecycle.State
	Input     string
	Loading   bool
	Failed    bool
	Message   string
	Retryable bool
	RetryPath string
}

func newPanelView[Req, Res any](snap lifecycle.Snapshot[Req, Res], input, retryPath string) panelView {
	return panelView{
		State:     snap.State,
		Input:     input,
		Loading:   snap.State == lifecycle.StateLoading,
		Failed:    snap.State == lifecycle.StateError,
		Message:   snap.Message,
		Retryable: snap.Retryable,
		RetryPath: retryPath,
	}
}

// liveData marks a page as waiting on a panel so it refreshes itself
func liveData(data fiber.Map, pv panelView) fiber.Map {
	if pv.Loading {
		data["Refresh"] = loadingRefreshSeconds
		data["Live"] = true
	}
	return data
}

// redirectAfter answers a form submission with a 303 back to path. Validation
// failures are already on the panel and need no notice.
func redirectAfter(c *fiber.Ctx, path string, err error) error {
	switch {
	case err == nil, backend.KindOf(err) == backend.KindValidation:
		return c.Redirect(path, fiber.StatusSeeOther)
	case errors.Is(err, lifecycle.ErrBusy):
		return c.Redirect(path+"?notice="+noticeBusy, fiber.StatusSeeOther)
	case errors.Is(err, lifecycle.ErrNotRetryable):
		return c.Redirect(path+"?notice="+noticeNothingToRetry, fiber.StatusSeeOther)
	case errors.Is(err, lifecycle.ErrClosed):
		return fiber.NewError(fiber.StatusServiceUnavailable, "Your session has expired, please reload the page")
	default:
		return err
	}
}
