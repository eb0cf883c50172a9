// Package session keeps the per-browser request panels of the Upload and Ad
// Creatives pages. Workspaces are created on first use, restored from the
// snapshot store when the session id is known, and closed after a period of
// inactivity, which cancels any request still in flight.
package session

import (
	"context"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/chynybekuuludastan/adstudio/internal/models"
	"github.com/chynybekuuludastan/adstudio/internal/service/backend"
	"github.com/chynybekuuludastan/adstudio/internal/service/lifecycle"
)

// Panel names
const (
	PanelUpload      = "upload"
	PanelAdCreatives = "ad-creatives"
)

// Panels lists every panel name
var Panels = []string{PanelUpload, PanelAdCreatives}

type (
	UploadPanel         = lifecycle.Panel[models.AnalysisRequest, models.AnalysisResult]
	UploadSnapshot      = lifecycle.Snapshot[models.AnalysisRequest, models.AnalysisResult]
	AdCreativesPanel    = lifecycle.Panel[models.LocalVideoRequest, models.AdCreativeResult]
	AdCreativesSnapshot = lifecycle.Snapshot[models.LocalVideoRequest, models.AdCreativeResult]
)

// Backend is the processing service used by the panels
type Backend interface {
	Analyze(ctx context.Context, req models.AnalysisRequest) (*models.AnalysisResult, error)
	ProcessLocalVideo(ctx context.Context, req models.LocalVideoRequest) (*models.AdCreativeResult, error)
}

// Event describes a panel transition
type Event struct {
	SessionID string          `json:"-"`
	Panel     string          `json:"panel"`
	State     lifecycle.State `json:"state"`
	Version   uint64          `json:"version"`
}

// Notifier receives panel transitions
type Notifier interface {
	Notify(event Event)
}

// Workspace holds the panels of one browser session
type Workspace struct {
	ID          string
	Upload      *UploadPanel
	AdCreatives *AdCreativesPanel

	lastSeen  atomic.Int64
	autoOnce  sync.Once
	closeOnce sync.Once
}

// Touch marks the workspace as used now
func (w *Workspace) Touch() {
	w.lastSeen.Store(time.Now().UnixNano())
}

// LastSeen returns the time of the last Touch
func (w *Workspace) LastSeen() time.Time {
	return time.Unix(0, w.lastSeen.Load())
}

// AutoSubmit sends filePath on the Ad Creatives panel the first time it is
// called for an idle panel. It reports whether a request was started.
func (w *Workspace) AutoSubmit(filePath string) bool {
	if filePath == "" {
		return false
	}

	started := false
	w.autoOnce.Do(func() {
		if w.AdCreatives.Snapshot().State != lifecycle.StateIdle {
			return
		}
		started = w.AdCreatives.Submit(models.LocalVideoRequest{FilePath: filePath}) == nil
	})
	return started
}

// Close cancels in-flight requests of both panels
func (w *Workspace) Close() {
	w.closeOnce.Do(func() {
		w.Upload.Close()
		w.AdCreatives.Close()
	})
}

func newWorkspace(ctx context.Context, id string, b Backend) *Workspace {
	upload := lifecycle.New[models.AnalysisRequest, models.AnalysisResult](ctx, PanelUpload, b.Analyze, backend.ValidateAnalysisRequest)
	adCreatives := lifecycle.New[models.LocalVideoRequest, models.AdCreativeResult](ctx, PanelAdCreatives, b.ProcessLocalVideo, backend.ValidateLocalVideoRequest)

	w := &Workspace{ID: id, Upload: upload, AdCreatives: adCreatives}
	w.Touch()
	return w
}

// persist saves every transition of p and forwards it to notifier
func persist[Req, Res any](r *Registry, sessionID string, p *lifecycle.Panel[Req, Res]) {
	p.OnChange(func(snap lifecycle.Snapshot[Req, Res]) {
		if r.store != nil {
			ctx, cancel := context.WithTimeout(r.ctx, r.storeTimeout)
			if err := r.store.Save(ctx, sessionID, snap.Panel, snap); err != nil {
				log.Printf("[ERROR] save snapshot session=%s panel=%s: %v", sessionID, snap.Panel, err)
			}
			cancel()
		}

		if snap.State == lifecycle.StateError {
			log.Printf("[INFO] panel %s of session %s failed (%s): %s", snap.Panel, sessionID, snap.ErrorKind, snap.Message)
		}

		if r.notifier != nil {
			r.notifier.Notify(Event{SessionID: sessionID, Panel: snap.Panel, State: snap.State, Version: snap.Version})
		}
	})
}

// restore seeds p from the store when a snapshot exists
func restore[Req, Res any](r *Registry, sessionID string, p *lifecycle.Panel[Req, Res]) {
	if r.store == nil {
		return
	}

	ctx, cancel := context.WithTimeout(r.ctx, r.storeTimeout)
	defer cancel()

	var snap lifecycle.Snapshot[Req, Res]
	ok, err := r.store.Load(ctx, sessionID, p.Name(), &snap)
	if err != nil {
		log.Printf("[ERROR] load snapshot session=%s panel=%s: %v", sessionID, p.Name(), err)
		return
	}
	if ok {
		p.Restore(snap)
	}
}
