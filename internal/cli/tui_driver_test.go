package cli

import (
	"context"
	"testing"

	"github.com/alexanderramin/cutcoach/internal/app"
	"github.com/alexanderramin/cutcoach/internal/domain"
	"github.com/alexanderramin/cutcoach/internal/teatest"
)

// TestDriver wraps teatest.Driver with cutcoach-specific inspection methods.
// It provides access to appModel internals (session, focus) that the
// generic driver can't see.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver creates a TestDriver from a test App.
// It constructs the appModel, sets terminal size, and drains Init().
func NewTestDriver(t *testing.T, a *App) *TestDriver {
	t.Helper()

	m := newAppModel(context.Background(), a)
	d := teatest.New(t, m, teatest.WithSize(120, 40))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

// ── High-level helpers ───────────────────────────────────────────────────────

// Intake types path into the reference input and submits it.
func (d *TestDriver) Intake(path string) {
	d.T.Helper()
	d.Type(path)
	d.PressEnter()
}

// ── inspection ───────────────────────────────────────────────────────────────

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// Session returns the model's current session.
func (d *TestDriver) Session() app.Session {
	return d.appModel().session
}

// Stage returns the displayed stage.
func (d *TestDriver) Stage() domain.Stage {
	return d.Session().Stage()
}

// Focus returns the focused input.
func (d *TestDriver) Focus() focusField {
	return d.appModel().focus
}

// IsQuitting returns whether the app has signaled a quit.
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}
