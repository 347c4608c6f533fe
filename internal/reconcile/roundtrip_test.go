package reconcile

import (
	"testing"

	"github.com/mj1618/winlayout/internal/capture"
	"github.com/mj1618/winlayout/internal/model"
	"github.com/mj1618/winlayout/internal/platform"
	"github.com/mj1618/winlayout/internal/platform/platformtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaptureThenRestoreReproducesLayout(t *testing.T) {
	h := newHarness()
	d := h.desktop
	editor := d.Open(`C:\Apps\editor.exe`, platform.Bounds{Left: 10, Top: 20, Right: 810, Bottom: 620})
	browser := d.Add(&platformtest.Window{
		Path:   `C:\Apps\browser.exe`,
		Bounds: platform.Bounds{Left: 0, Top: 0, Right: 1920, Bottom: 1040},
		State:  model.Maximized,
	})
	chat := d.Add(&platformtest.Window{
		Path:             `C:\Apps\chat.exe`,
		Bounds:           platform.Bounds{Left: 1000, Top: 100, Right: 1400, Bottom: 900},
		State:            model.Minimized,
		RestoreMaximized: true,
	})

	saved, err := capture.New(d, nil).Capture("desk")
	require.NoError(t, err)
	require.Len(t, saved.Windows, 3)

	for _, w := range []platform.Handle{editor, browser, chat} {
		win := d.Window(w)
		win.Bounds = platform.Bounds{Left: 300, Top: 300, Right: 500, Bottom: 500}
		win.State = model.Normal
	}

	result, err := h.reconciler().Restore(saved, Options{MaxAttempts: 2})
	require.NoError(t, err)
	assert.True(t, result.Complete())
	assert.Empty(t, d.Launched, "every application was already running")

	assert.Equal(t, model.Normal, d.Window(editor).State)
	assert.Equal(t, model.Maximized, d.Window(browser).State)
	assert.Equal(t, model.Minimized, d.Window(chat).State)

	again, err := capture.New(d, nil).Capture("desk")
	require.NoError(t, err)
	assert.Equal(t, saved, again)
}
