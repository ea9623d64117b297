/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package document

import (
	"fmt"
	"image"
	"image/draw"
)

// Mode selects which part of a page a pane displays.
type Mode int

const (
	// ModeFull displays the whole page.
	ModeFull Mode = iota
	// ModeContent displays the left half of a notes-layout page.
	ModeContent
	// ModeNotes displays the right half of a notes-layout page.
	ModeNotes
)

// Link is a clickable region on a page. Coordinates are normalized to the
// full page in [0,1]x[0,1] with a top-left origin. Dest is the 0-based target
// page index, or -1 when the destination does not resolve to a page (for
// example an external URI).
type Link struct {
	X, Y, W, H float64
	Dest       int
}

// contains reports whether the full-page normalized point is inside the link
// rectangle.
func (l Link) contains(nx, ny float64) bool {
	return nx >= l.X && nx <= l.X+l.W && ny >= l.Y && ny <= l.Y+l.H
}

// Page is one page of an open document. Values are owned by the Document and
// remain valid for its lifetime.
type Page struct {
	doc    *Document
	index  int
	width  float64
	height float64

	links       []Link
	linksLoaded bool
}

// Index returns the 0-based page index.
func (p *Page) Index() int { return p.index }

// Size returns the page box in page units (points).
func (p *Page) Size() (w, h float64) { return p.width, p.height }

// AspectRatio returns the width/height ratio of the part of the page shown
// in the given mode: the full page for ModeFull, half the width otherwise.
func (p *Page) AspectRatio(mode Mode) float64 {
	if p.height <= 0 {
		return 1
	}
	if mode == ModeFull {
		return p.width / p.height
	}
	return p.width / 2 / p.height
}

// Links returns the page's link annotations, fetching them from the source on
// first use. A source failure is logged and treated as "no links".
func (p *Page) Links() []Link {
	if !p.linksLoaded {
		links, err := p.doc.src.PageLinks(p.index)
		if err != nil {
			p.doc.log.Warn("link extraction failed", "page", p.index, "err", err)
			links = nil
		}
		p.links = links
		p.linksLoaded = true
	}
	return p.links
}

// LinkAt returns the first link containing the point (nx, ny), which is
// normalized to the pane displaying the page in the given mode, or nil. Since
// half modes show only half the page, pane coordinates are mapped onto the
// full page before hit-testing.
func (p *Page) LinkAt(mode Mode, nx, ny float64) *Link {
	if nx < 0 || nx > 1 || ny < 0 || ny > 1 {
		return nil
	}
	switch mode {
	case ModeContent:
		nx = nx / 2
	case ModeNotes:
		nx = 0.5 + nx/2
	}
	for i := range p.Links() {
		if p.links[i].contains(nx, ny) {
			return &p.links[i]
		}
	}
	return nil
}

// Render rasterizes the part of the page selected by mode to exactly w x h
// pixels. Half modes render the full page at double width and crop.
func (p *Page) Render(mode Mode, w, h int) (image.Image, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("render page %d: invalid size %dx%d", p.index, w, h)
	}
	if mode == ModeFull {
		return p.doc.src.RenderPage(p.index, w, h)
	}
	full, err := p.doc.src.RenderPage(p.index, 2*w, h)
	if err != nil {
		return nil, err
	}
	switch mode {
	case ModeNotes:
		return cropImage(full, image.Rect(w, 0, 2*w, h)), nil
	default:
		return cropImage(full, image.Rect(0, 0, w, h)), nil
	}
}

// cropImage extracts a sub-rectangle, sharing pixels when the source supports
// SubImage and copying otherwise.
func cropImage(img image.Image, r image.Rectangle) image.Image {
	r = r.Add(img.Bounds().Min)
	if s, ok := img.(interface {
		SubImage(image.Rectangle) image.Image
	}); ok {
		return s.SubImage(r)
	}
	dst := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(dst, dst.Bounds(), img, r.Min, draw.Src)
	return dst
}
