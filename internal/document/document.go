/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package document models a loaded presentation: an immutable sequence of
// pages plus the current page index. Navigation is always clamped into range;
// an actual index change notifies the registered page-change callback.
package document

import (
	"image"
	"log/slog"
	"path/filepath"
	"strings"

	applog "gopresent/internal/log"
)

// notesRatioThreshold is the first-page width/height ratio above which a
// document is assumed to use the side-by-side notes layout. Regular slides
// top out around 16:9 (~1.78); a double-wide 4:3 page is ~2.67.
const notesRatioThreshold = 1.9

// Source is the PDF-library boundary the document model depends on. The
// production implementation lives in internal/pdf; tests substitute fakes.
type Source interface {
	// PageCount returns the number of pages, always >= 0.
	PageCount() int
	// PageSize returns the page box of page i in page units (points).
	PageSize(i int) (w, h float64, err error)
	// PageLinks returns the link annotations of page i, normalized to the
	// full page with a top-left origin.
	PageLinks(i int) ([]Link, error)
	// RenderPage rasterizes page i to exactly pxW x pxH pixels.
	RenderPage(i, pxW, pxH int) (image.Image, error)
	// Close releases the underlying file handles.
	Close() error
}

// Document is an open presentation. Not safe for concurrent mutation; all
// navigation happens on the UI dispatch thread.
type Document struct {
	src     Source
	path    string
	pages   []Page
	current int

	onPageChange func(unpause bool)
	log          *slog.Logger
}

// New builds a Document on top of an open Source. It fails with a *LoadError
// when the source has no pages or a page size cannot be read.
func New(src Source, path string) (*Document, error) {
	n := src.PageCount()
	if n <= 0 {
		return nil, &LoadError{Path: path, Reason: "document has no pages"}
	}
	d := &Document{
		src:  src,
		path: path,
		log:  applog.WithComponent("document"),
	}
	d.pages = make([]Page, n)
	for i := 0; i < n; i++ {
		w, h, err := src.PageSize(i)
		if err != nil {
			return nil, &LoadError{Path: path, Reason: "read page size", Err: err}
		}
		d.pages[i] = Page{doc: d, index: i, width: w, height: h}
	}
	d.log.Info("document loaded", slog.String("path", path), slog.Int("pages", n))
	return d, nil
}

// Close releases the underlying source.
func (d *Document) Close() error { return d.src.Close() }

// Path returns the filesystem path the document was opened from.
func (d *Document) Path() string { return d.path }

// Title returns a display name derived from the file name.
func (d *Document) Title() string {
	base := filepath.Base(d.path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// PageCount returns the number of pages.
func (d *Document) PageCount() int { return len(d.pages) }

// CurrentIndex returns the current 0-based page index.
func (d *Document) CurrentIndex() int { return d.current }

// Page returns the page at index i, or a *OutOfRangeError when i is outside
// [0, count).
func (d *Document) Page(i int) (*Page, error) {
	if i < 0 || i >= len(d.pages) {
		return nil, &OutOfRangeError{Index: i, Count: len(d.pages)}
	}
	return &d.pages[i], nil
}

// Current returns the current page.
func (d *Document) Current() *Page { return &d.pages[d.current] }

// Next returns the page after the current one, or nil at the last page.
func (d *Document) Next() *Page {
	if d.current+1 >= len(d.pages) {
		return nil
	}
	return &d.pages[d.current+1]
}

// HasNotes reports whether the document appears to use the side-by-side
// notes layout, judged from the first page's aspect ratio. Heuristic only;
// used to pick a default display mode.
func (d *Document) HasNotes() bool {
	p := d.pages[0]
	if p.height <= 0 {
		return false
	}
	return p.width/p.height > notesRatioThreshold
}

// OnPageChange registers the callback invoked after every actual index
// change. unpause tells the controller whether the change should also start
// the presentation timer.
func (d *Document) OnPageChange(fn func(unpause bool)) { d.onPageChange = fn }

// Goto clamps i into range and navigates to it.
func (d *Document) Goto(i int) { d.goTo(i, true) }

// GotoNext advances one page; a no-op on the last page.
func (d *Document) GotoNext() { d.goTo(d.current+1, true) }

// GotoPrev goes back one page; a no-op on the first page.
func (d *Document) GotoPrev() { d.goTo(d.current-1, true) }

// GotoHome jumps to the first page.
func (d *Document) GotoHome() { d.goTo(0, true) }

// GotoEnd jumps to the last page.
func (d *Document) GotoEnd() { d.goTo(len(d.pages)-1, true) }

func (d *Document) goTo(i int, unpause bool) {
	if i < 0 {
		i = 0
	}
	if i >= len(d.pages) {
		i = len(d.pages) - 1
	}
	if i == d.current {
		return
	}
	d.current = i
	d.log.Debug("page change", slog.Int("page", i))
	if d.onPageChange != nil {
		d.onPageChange(unpause)
	}
}
