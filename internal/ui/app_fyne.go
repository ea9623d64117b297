//go:build fyne && cgo

/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package ui

import (
	"context"
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/layout"
	fstorage "fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"gopresent/internal/config"
	"gopresent/internal/document"
	"gopresent/internal/history"
	"gopresent/internal/icons"
	applog "gopresent/internal/log"
	"gopresent/internal/pdf"
	"gopresent/internal/render"
	"gopresent/internal/telemetry"
	"gopresent/internal/timer"
	"gopresent/internal/version"
)

// Run starts the dual-window presentation UI. path may be empty, in which
// case a file chooser is shown first.
func Run(path string) error {
	cfg, cfgErr := config.Load()
	if cfgErr != nil {
		cfg = config.Defaults()
	}
	applog.Init(logOptions(cfg.Logging))
	telemetry.NewDefault(telemetryConfig(cfg))

	l := applog.WithComponent("ui")
	l.Info("starting UI")
	if cfgErr != nil {
		l.Warn("config load failed, using defaults", slog.Any("err", cfgErr))
	}

	fyneApp := app.NewWithID("gopresent")
	c := &controller{
		app:     fyneApp,
		log:     l,
		cfg:     cfg,
		cache:   render.New(cfg.Render.CacheSlots),
		tmr:     timer.New(),
		warmReq: make(chan warmJob, 1),
		done:    make(chan struct{}),
	}

	if res := icons.Load(); len(res) > 0 {
		fyneApp.SetIcon(res[0])
	}
	if hp, err := config.HistoryPath(); err == nil {
		if st, err := history.Open(hp); err == nil {
			c.hist = st
		} else {
			l.Warn("recents unavailable", slog.Any("err", err))
		}
	}
	telemetry.AppStarted()

	c.buildContentWindow()
	c.buildPresenterWindow()

	prefs := fyneApp.Preferences()
	cw := prefs.IntWithFallback("content.width", cfg.Display.ContentWidth)
	ch := prefs.IntWithFallback("content.height", cfg.Display.ContentHeight)
	pw := prefs.IntWithFallback("presenter.width", cfg.Display.PresenterWidth)
	ph := prefs.IntWithFallback("presenter.height", cfg.Display.PresenterHeight)
	c.contentWin.Resize(fyne.NewSize(float32(cw), float32(ch)))
	c.presenterWin.Resize(fyne.NewSize(float32(pw), float32(ph)))

	go c.warmLoop()
	go c.tickLoop(time.Duration(cfg.Display.TickMs) * time.Millisecond)

	c.contentWin.Show()
	if cfg.Display.StartFullscreen {
		c.contentWin.SetFullScreen(true)
	}

	if path != "" {
		if err := c.openDocument(path); err != nil {
			c.startupError(err)
		}
	} else {
		c.showOpenDialog(true)
	}

	c.presenterWin.ShowAndRun()

	close(c.done)
	if c.hist != nil {
		_ = c.hist.Close()
	}
	c.warmMu.Lock()
	c.warmDoc = nil
	c.warmMu.Unlock()
	if c.doc != nil {
		_ = c.doc.Close()
	}
	return c.runErr
}

// viewRole selects which slide and split a pane shows.
type viewRole int

const (
	roleContent viewRole = iota
	roleCurrent
	roleNext
)

type controller struct {
	app  fyne.App
	log  *slog.Logger
	cfg  config.AppConfig
	doc  *document.Document
	tmr  *timer.Timer
	hist *history.Store

	cache *render.Cache

	contentWin   fyne.Window
	presenterWin fyne.Window

	contentView *slideView
	currentView *slideView
	nextView    *slideView

	pageLabel *tappableLabel
	pageBox   *fyne.Container
	jump      *jumpEntry
	nextLabel *widget.Label
	elapsed   *widget.Label
	clock     *widget.Label

	notes bool

	warmReq chan warmJob
	// warmMu guards warmDoc, the only document the prerender goroutine may
	// rasterize from. Every render happens under warmMu, so swapping warmDoc
	// out waits for an in-flight render and fences off the stale job.
	warmMu  sync.Mutex
	warmDoc *document.Document

	done     chan struct{}
	quitOnce sync.Once
	runErr   error
}

// warmJob is a prerender request: the document it was computed against and
// the cache keys to fill. Keys are computed on the UI thread; the prerender
// goroutine never touches widgets or controller state.
type warmJob struct {
	doc  *document.Document
	keys []render.Key
}

func (c *controller) buildContentWindow() {
	w := c.app.NewWindow("gopresent")
	c.contentView = newSlideView(c, roleContent)
	w.SetContent(c.contentView)
	w.Canvas().SetOnTypedKey(c.handleKey)
	w.SetCloseIntercept(c.quit)
	c.contentWin = w
}

func (c *controller) buildPresenterWindow() {
	w := c.app.NewWindow("gopresent: Presenter")
	c.currentView = newSlideView(c, roleCurrent)
	c.nextView = newSlideView(c, roleNext)
	c.elapsed = widget.NewLabel(formatElapsed(0, false))
	c.clock = widget.NewLabel(formatClock(time.Now()))
	c.nextLabel = widget.NewLabel("--")

	c.pageLabel = newTappableLabel("-/-", c.startQuickJump)
	c.jump = newJumpEntry(c.finishQuickJump, c.cancelQuickJump)
	c.pageBox = container.NewStack(c.pageLabel)

	left := container.NewBorder(nil, container.NewCenter(c.pageBox), nil, nil, c.currentView)
	right := container.NewBorder(container.NewCenter(c.nextLabel), nil, nil, nil, c.nextView)
	split := container.NewHSplit(left, right)
	split.SetOffset(0.65)

	bottom := container.NewHBox(
		layout.NewSpacer(),
		widget.NewLabel("Elapsed:"), c.elapsed,
		layout.NewSpacer(),
		widget.NewLabel("Clock:"), c.clock,
		layout.NewSpacer(),
	)

	w.SetContent(container.NewBorder(nil, bottom, nil, nil, split))
	w.SetMainMenu(c.buildMenu(w))
	w.Canvas().SetOnTypedKey(c.handleKey)
	w.SetCloseIntercept(c.quit)
	c.presenterWin = w
}

func (c *controller) buildMenu(w fyne.Window) *fyne.MainMenu {
	openItem := fyne.NewMenuItem("Open…", func() { c.showOpenDialog(false) })
	openItem.Shortcut = &desktop.CustomShortcut{KeyName: fyne.KeyO, Modifier: fyne.KeyModifierControl}
	quitItem := fyne.NewMenuItem("Quit", c.quit)
	quitItem.Shortcut = &desktop.CustomShortcut{KeyName: fyne.KeyQ, Modifier: fyne.KeyModifierControl}

	fileItems := []*fyne.MenuItem{openItem}
	if recents := c.recentItems(); len(recents) > 0 {
		sub := fyne.NewMenuItem("Open Recent", nil)
		sub.ChildMenu = fyne.NewMenu("", recents...)
		fileItems = append(fileItems, sub)
	}
	fileItems = append(fileItems, fyne.NewMenuItemSeparator(), quitItem)
	fileMenu := fyne.NewMenu("File", fileItems...)

	presMenu := fyne.NewMenu("Presentation",
		fyne.NewMenuItem("Next Slide", func() { c.withDoc(func(d *document.Document) { d.GotoNext() }) }),
		fyne.NewMenuItem("Previous Slide", func() { c.withDoc(func(d *document.Document) { d.GotoPrev() }) }),
		fyne.NewMenuItem("First Slide", func() { c.withDoc(func(d *document.Document) { d.GotoHome() }) }),
		fyne.NewMenuItem("Last Slide", func() { c.withDoc(func(d *document.Document) { d.GotoEnd() }) }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Pause/Resume Timer", c.togglePause),
		fyne.NewMenuItem("Reset Timer", c.resetTimer),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Toggle Notes Mode", c.toggleNotes),
		fyne.NewMenuItem("Toggle Fullscreen", c.toggleFullscreen),
	)

	aboutItem := fyne.NewMenuItem("About gopresent", func() {
		exe, _ := os.Executable()
		info := fmt.Sprintf("gopresent\nVersion: %s\nOS: %s\nArch: %s\nGo: %s\nExecutable: %s",
			version.String(), runtime.GOOS, runtime.GOARCH, runtime.Version(), exe)
		dialog.ShowInformation("About", info, w)
	})
	helpMenu := fyne.NewMenu("Help", aboutItem)

	return fyne.NewMainMenu(fileMenu, presMenu, helpMenu)
}

func (c *controller) recentItems() []*fyne.MenuItem {
	if c.hist == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	entries, err := c.hist.Recent(ctx, 8)
	if err != nil {
		return nil
	}
	var items []*fyne.MenuItem
	for _, e := range entries {
		p := e.Path
		items = append(items, fyne.NewMenuItem(filepath.Base(p), func() {
			if err := c.openDocument(p); err != nil {
				dialog.ShowError(err, c.presenterWin)
			}
		}))
	}
	return items
}

// showOpenDialog lets the user pick a PDF. When required is true (startup
// without a file argument) a cancelled dialog ends the application, matching
// a presentation tool that has nothing to show.
func (c *controller) showOpenDialog(required bool) {
	fd := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, c.presenterWin)
			return
		}
		if rc == nil {
			if required && c.doc == nil {
				c.fail(fmt.Errorf("no presentation selected"))
			}
			return
		}
		p := rc.URI().Path()
		_ = rc.Close()
		if err := c.openDocument(p); err != nil {
			dialog.ShowError(err, c.presenterWin)
			if required && c.doc == nil {
				c.fail(err)
			}
		}
	}, c.presenterWin)
	fd.SetFilter(fstorage.NewExtensionFileFilter([]string{".pdf"}))
	fd.Show()
}

func (c *controller) openDocument(path string) error {
	src, err := pdf.Open(path)
	if err != nil {
		return err
	}
	doc, err := document.New(src, path)
	if err != nil {
		return err
	}
	c.warmMu.Lock()
	old := c.doc
	c.warmDoc = doc
	c.warmMu.Unlock()
	if old != nil {
		_ = old.Close()
	}
	c.doc = doc
	c.cache.Purge()

	switch c.cfg.General.Notes {
	case config.NotesOn:
		c.notes = true
	case config.NotesOff:
		c.notes = false
	default:
		c.notes = doc.HasNotes()
	}

	doc.OnPageChange(func(unpause bool) {
		if unpause {
			c.tmr.Unpause()
		}
		c.refresh()
		c.requestWarm()
	})

	c.tmr.Reset()
	c.contentWin.SetTitle(doc.Title())
	c.presenterWin.SetTitle(doc.Title() + " — Presenter")
	c.log.Info("presentation opened",
		slog.String("path", path),
		slog.Int("pages", doc.PageCount()),
		slog.Bool("notes", c.notes))
	telemetry.DocumentOpened(doc.PageCount(), c.notes)
	if c.hist != nil {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		if err := c.hist.Touch(ctx, path, doc.Title(), doc.PageCount()); err != nil {
			c.log.Warn("record recent failed", slog.Any("err", err))
		}
		cancel()
		c.presenterWin.SetMainMenu(c.buildMenu(c.presenterWin))
	}
	c.refresh()
	c.requestWarm()
	return nil
}

// refresh redraws both windows after any state change. Must run on the UI
// thread.
func (c *controller) refresh() {
	c.contentView.update()
	c.currentView.update()
	c.nextView.update()
	if c.doc != nil {
		c.pageLabel.SetText(formatPageLabel(c.doc.CurrentIndex(), c.doc.PageCount()))
		c.nextLabel.SetText(formatNextLabel(c.doc.CurrentIndex(), c.doc.PageCount()))
	}
	c.cancelQuickJump()
}

func (c *controller) withDoc(fn func(*document.Document)) {
	if c.doc == nil {
		return
	}
	fn(c.doc)
}

func (c *controller) togglePause() {
	running := c.tmr.SwitchPause()
	c.log.Debug("timer toggled", slog.Bool("running", running))
	c.updateTimeLabels()
}

func (c *controller) resetTimer() {
	c.tmr.Reset()
	c.updateTimeLabels()
}

func (c *controller) toggleNotes() {
	if c.doc == nil {
		return
	}
	c.notes = !c.notes
	c.cache.Purge()
	c.refresh()
	c.requestWarm()
}

func (c *controller) toggleFullscreen() {
	c.contentWin.SetFullScreen(!c.contentWin.FullScreen())
}

func (c *controller) updateTimeLabels() {
	c.elapsed.SetText(formatElapsed(c.tmr.Elapsed(), c.tmr.Running()))
	c.clock.SetText(formatClock(time.Now()))
}

func (c *controller) handleKey(ev *fyne.KeyEvent) {
	switch ev.Name {
	case fyne.KeyRight, fyne.KeyDown, fyne.KeyPageDown, fyne.KeySpace:
		c.withDoc(func(d *document.Document) { d.GotoNext() })
	case fyne.KeyLeft, fyne.KeyUp, fyne.KeyPageUp, fyne.KeyBackspace:
		c.withDoc(func(d *document.Document) { d.GotoPrev() })
	case fyne.KeyHome:
		c.withDoc(func(d *document.Document) { d.GotoHome() })
	case fyne.KeyEnd:
		c.withDoc(func(d *document.Document) { d.GotoEnd() })
	case fyne.KeyF, fyne.KeyF11:
		c.toggleFullscreen()
	case fyne.KeyEscape:
		if c.contentWin.FullScreen() {
			c.contentWin.SetFullScreen(false)
		}
	case fyne.KeyP:
		c.togglePause()
	case fyne.KeyR:
		c.resetTimer()
	case fyne.KeyN:
		c.toggleNotes()
	case fyne.KeyG:
		c.startQuickJump()
	case fyne.KeyQ:
		c.quit()
	}
}

// Quick jump: tapping the slide counter swaps it for an entry field.
func (c *controller) startQuickJump() {
	if c.doc == nil {
		return
	}
	c.jump.SetText(formatPageLabel(c.doc.CurrentIndex(), c.doc.PageCount()))
	c.pageBox.Objects = []fyne.CanvasObject{c.jump}
	c.pageBox.Refresh()
	c.presenterWin.Canvas().Focus(c.jump)
}

func (c *controller) finishQuickJump(text string) {
	if c.doc != nil {
		if idx, ok := parseQuickJump(text, c.doc.PageCount()); ok {
			c.doc.Goto(idx)
		}
	}
	c.cancelQuickJump()
}

func (c *controller) cancelQuickJump() {
	if len(c.pageBox.Objects) == 1 && c.pageBox.Objects[0] == c.pageLabel {
		return
	}
	c.pageBox.Objects = []fyne.CanvasObject{c.pageLabel}
	c.pageBox.Refresh()
	c.presenterWin.Canvas().Unfocus()
}

func (c *controller) quit() {
	c.quitOnce.Do(func() {
		prefs := c.app.Preferences()
		cs := c.contentWin.Canvas().Size()
		ps := c.presenterWin.Canvas().Size()
		prefs.SetInt("content.width", int(cs.Width))
		prefs.SetInt("content.height", int(cs.Height))
		prefs.SetInt("presenter.width", int(ps.Width))
		prefs.SetInt("presenter.height", int(ps.Height))
		c.app.Quit()
	})
}

func (c *controller) fail(err error) {
	c.runErr = err
	c.quit()
}

// startupError reports that the file named on the command line could not be
// opened. The dialog stays on screen so the user sees the reason; dismissing
// it ends the application with the error.
func (c *controller) startupError(err error) dialog.Dialog {
	c.runErr = err
	d := dialog.NewError(err, c.presenterWin)
	d.SetOnClosed(c.quit)
	d.Show()
	return d
}

// tickLoop drives the elapsed and clock labels and picks up pane resizes.
func (c *controller) tickLoop(interval time.Duration) {
	if interval <= 0 {
		interval = 250 * time.Millisecond
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-c.done:
			return
		case <-t.C:
			fyne.Do(func() {
				c.updateTimeLabels()
				c.contentView.updateIfResized()
				c.currentView.updateIfResized()
				c.nextView.updateIfResized()
			})
		}
	}
}

// requestWarm hands the prerender goroutine the slides around the current one
// so navigation hits the cache. The cache keys are computed here, on the UI
// thread, where pane sizes and canvas scale may be read; the goroutine only
// rasterizes. A still-pending request is replaced by the newer one.
func (c *controller) requestWarm() {
	doc := c.doc
	if doc == nil {
		return
	}
	idx := doc.CurrentIndex()
	views := []*slideView{c.contentView, c.currentView, c.nextView}
	var keys []render.Key
	for off := -2; off <= 4; off++ {
		i := idx + off
		if i < 0 || i >= doc.PageCount() {
			continue
		}
		page, err := doc.Page(i)
		if err != nil {
			continue
		}
		for _, v := range views {
			if key, ok := v.keyFor(page); ok {
				keys = append(keys, key)
			}
		}
	}
	if len(keys) == 0 {
		return
	}
	select {
	case <-c.warmReq:
	default:
	}
	select {
	case c.warmReq <- warmJob{doc: doc, keys: keys}:
	default:
	}
}

func (c *controller) warmLoop() {
	for {
		select {
		case <-c.done:
			return
		case job := <-c.warmReq:
			c.warm(job)
		}
	}
}

// warm rasterizes the requested slides into the cache. Each render runs under
// warmMu and only while the job's document is still the active one, so a
// document being replaced is never used after it is closed.
func (c *controller) warm(job warmJob) {
	for _, key := range job.keys {
		if _, hit := c.cache.Get(key); hit {
			continue
		}
		c.warmMu.Lock()
		if c.warmDoc != job.doc {
			c.warmMu.Unlock()
			return
		}
		page, err := job.doc.Page(key.Page)
		if err != nil {
			c.warmMu.Unlock()
			continue
		}
		img, err := page.Render(key.Mode, key.W, key.H)
		c.warmMu.Unlock()
		if err != nil {
			c.log.Debug("prerender failed", slog.Int("page", key.Page), slog.Any("err", err))
			continue
		}
		c.cache.Put(key, img)
	}
}

// slideView shows one rasterized slide, letterboxed on a black background.
// Pointer and scroll input map to link following and navigation.
type slideView struct {
	widget.BaseWidget
	ctl      *controller
	role     viewRole
	img      *canvas.Image
	lastSize fyne.Size
	overLink bool
}

func newSlideView(c *controller, role viewRole) *slideView {
	v := &slideView{ctl: c, role: role}
	v.img = canvas.NewImageFromImage(nil)
	v.img.FillMode = canvas.ImageFillContain
	v.ExtendBaseWidget(v)
	return v
}

// page returns the slide this pane currently shows, nil when there is none.
func (v *slideView) page() *document.Page {
	doc := v.ctl.doc
	if doc == nil {
		return nil
	}
	if v.role == roleNext {
		return doc.Next()
	}
	return doc.Current()
}

// mode returns the page split for this pane under the active notes setting.
func (v *slideView) mode() document.Mode {
	if !v.ctl.notes {
		return document.ModeFull
	}
	switch v.role {
	case roleContent, roleNext:
		return document.ModeContent
	default:
		return document.ModeNotes
	}
}

// keyFor computes the cache key this pane would use for page at its present
// size. ok is false while the pane has no usable size yet.
func (v *slideView) keyFor(page *document.Page) (render.Key, bool) {
	sz := v.Size()
	if sz.Width < 1 || sz.Height < 1 || page == nil {
		return render.Key{}, false
	}
	scale := 1.0
	if cv := fyne.CurrentApp().Driver().CanvasForObject(v); cv != nil {
		scale = float64(cv.Scale())
	}
	mode := v.mode()
	w, h := slidePixels(float64(sz.Width), float64(sz.Height), page.AspectRatio(mode), scale)
	return render.Key{Page: page.Index(), Mode: mode, W: w, H: h}, true
}

// update redraws the pane from the cache, rendering on a miss. Runs on the
// UI thread.
func (v *slideView) update() {
	v.lastSize = v.Size()
	page := v.page()
	if page == nil {
		v.img.Image = nil
		v.img.Refresh()
		return
	}
	key, ok := v.keyFor(page)
	if !ok {
		return
	}
	img, hit := v.ctl.cache.Get(key)
	if !hit {
		var err error
		img, err = page.Render(key.Mode, key.W, key.H)
		if err != nil {
			v.ctl.log.Error("render failed", slog.Int("page", key.Page), slog.Any("err", err))
			return
		}
		v.ctl.cache.Put(key, img)
	}
	v.img.Image = img
	v.img.Refresh()
}

func (v *slideView) updateIfResized() {
	if v.Size() != v.lastSize {
		v.update()
	}
}

func (v *slideView) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(color.Black)
	return &slideViewRenderer{view: v, bg: bg, objects: []fyne.CanvasObject{bg, v.img}}
}

// linkUnder resolves the link below a pane position, nil when there is none.
func (v *slideView) linkUnder(pos fyne.Position) *document.Link {
	page := v.page()
	if page == nil {
		return nil
	}
	sz := v.Size()
	mode := v.mode()
	nx, ny, ok := paneToSlide(float64(pos.X), float64(pos.Y), float64(sz.Width), float64(sz.Height), page.AspectRatio(mode))
	if !ok {
		return nil
	}
	return page.LinkAt(mode, nx, ny)
}

func (v *slideView) Tapped(e *fyne.PointEvent) {
	l := v.linkUnder(e.Position)
	if l == nil {
		return
	}
	if l.Dest < 0 {
		v.ctl.log.Debug("link without navigable destination ignored")
		return
	}
	v.ctl.withDoc(func(d *document.Document) { d.Goto(l.Dest) })
}

func (v *slideView) Scrolled(e *fyne.ScrollEvent) {
	v.ctl.withDoc(func(d *document.Document) {
		if e.Scrolled.DY < 0 || e.Scrolled.DX < 0 {
			d.GotoNext()
		} else if e.Scrolled.DY > 0 || e.Scrolled.DX > 0 {
			d.GotoPrev()
		}
	})
}

func (v *slideView) MouseIn(e *desktop.MouseEvent) { v.MouseMoved(e) }

func (v *slideView) MouseMoved(e *desktop.MouseEvent) {
	v.overLink = v.linkUnder(e.Position) != nil
}

func (v *slideView) MouseOut() { v.overLink = false }

func (v *slideView) Cursor() desktop.Cursor {
	if v.overLink {
		return desktop.PointerCursor
	}
	return desktop.DefaultCursor
}

type slideViewRenderer struct {
	view    *slideView
	bg      *canvas.Rectangle
	objects []fyne.CanvasObject
}

func (r *slideViewRenderer) Destroy()                     {}
func (r *slideViewRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *slideViewRenderer) MinSize() fyne.Size           { return fyne.NewSize(160, 120) }
func (r *slideViewRenderer) Refresh()                     { canvas.Refresh(r.view) }

func (r *slideViewRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)
	r.bg.Move(fyne.NewPos(0, 0))
	r.view.img.Resize(size)
	r.view.img.Move(fyne.NewPos(0, 0))
}

// tappableLabel is the slide counter; tapping it opens the quick-jump entry.
type tappableLabel struct {
	widget.Label
	onTapped func()
}

func newTappableLabel(text string, onTapped func()) *tappableLabel {
	l := &tappableLabel{onTapped: onTapped}
	l.ExtendBaseWidget(l)
	l.SetText(text)
	return l
}

func (l *tappableLabel) Tapped(*fyne.PointEvent) {
	if l.onTapped != nil {
		l.onTapped()
	}
}

// jumpEntry accepts a slide number; Escape or losing focus cancels.
type jumpEntry struct {
	widget.Entry
	onCancel func()
}

func newJumpEntry(onSubmit func(string), onCancel func()) *jumpEntry {
	e := &jumpEntry{onCancel: onCancel}
	e.OnSubmitted = onSubmit
	e.ExtendBaseWidget(e)
	return e
}

func (e *jumpEntry) TypedKey(ev *fyne.KeyEvent) {
	if ev.Name == fyne.KeyEscape {
		if e.onCancel != nil {
			e.onCancel()
		}
		return
	}
	e.Entry.TypedKey(ev)
}

func (e *jumpEntry) FocusLost() {
	e.Entry.FocusLost()
	if e.onCancel != nil {
		e.onCancel()
	}
}
