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
	"errors"
	"image"
	"image/color"
	"testing"
)

// fakeSource implements Source for tests. Pages are filled with a solid color
// whose red channel encodes the column so crops can be verified.
type fakeSource struct {
	sizes  [][2]float64
	links  map[int][]Link
	closed bool
}

func (f *fakeSource) PageCount() int { return len(f.sizes) }

func (f *fakeSource) PageSize(i int) (float64, float64, error) {
	if i < 0 || i >= len(f.sizes) {
		return 0, 0, errors.New("bad index")
	}
	return f.sizes[i][0], f.sizes[i][1], nil
}

func (f *fakeSource) PageLinks(i int) ([]Link, error) { return f.links[i], nil }

func (f *fakeSource) RenderPage(i, w, h int) (image.Image, error) {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(255 * x / w), A: 255})
		}
	}
	return img, nil
}

func (f *fakeSource) Close() error { f.closed = true; return nil }

func regularDoc(t *testing.T, pages int) *Document {
	t.Helper()
	src := &fakeSource{}
	for i := 0; i < pages; i++ {
		src.sizes = append(src.sizes, [2]float64{612, 792})
	}
	d, err := New(src, "/tmp/regular.pdf")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return d
}

func notesDoc(t *testing.T, pages int) *Document {
	t.Helper()
	src := &fakeSource{}
	for i := 0; i < pages; i++ {
		src.sizes = append(src.sizes, [2]float64{1600, 600}) // double-wide
	}
	d, err := New(src, "/tmp/notes.pdf")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return d
}

func TestNewRejectsEmptyDocument(t *testing.T) {
	_, err := New(&fakeSource{}, "/tmp/empty.pdf")
	var le *LoadError
	if !errors.As(err, &le) {
		t.Fatalf("expected *LoadError for empty document, got %v", err)
	}
}

func TestGotoClamps(t *testing.T) {
	d := regularDoc(t, 10)
	cases := []struct{ req, want int }{
		{0, 0}, {5, 5}, {9, 9}, {10, 9}, {100, 9}, {-1, 0}, {-50, 0},
	}
	for _, c := range cases {
		d.Goto(c.req)
		if got := d.CurrentIndex(); got != c.want {
			t.Fatalf("Goto(%d): index = %d, want %d", c.req, got, c.want)
		}
	}
}

func TestNextPrevEdges(t *testing.T) {
	d := regularDoc(t, 3)
	d.GotoEnd()
	d.GotoNext()
	if d.CurrentIndex() != 2 {
		t.Fatalf("GotoNext at last page moved to %d", d.CurrentIndex())
	}
	d.GotoHome()
	d.GotoPrev()
	if d.CurrentIndex() != 0 {
		t.Fatalf("GotoPrev at first page moved to %d", d.CurrentIndex())
	}
}

func TestHomeEndFromAnywhere(t *testing.T) {
	d := regularDoc(t, 7)
	for start := 0; start < 7; start++ {
		d.Goto(start)
		d.GotoEnd()
		if d.CurrentIndex() != 6 {
			t.Fatalf("GotoEnd from %d: index = %d", start, d.CurrentIndex())
		}
		d.Goto(start)
		d.GotoHome()
		if d.CurrentIndex() != 0 {
			t.Fatalf("GotoHome from %d: index = %d", start, d.CurrentIndex())
		}
	}
}

func TestNextPageNilAtEnd(t *testing.T) {
	d := regularDoc(t, 2)
	if d.Next() == nil {
		t.Fatalf("Next() should not be nil at page 0 of 2")
	}
	d.GotoEnd()
	if d.Next() != nil {
		t.Fatalf("Next() should be nil at the last page")
	}
}

func TestPageOutOfRange(t *testing.T) {
	d := regularDoc(t, 4)
	if _, err := d.Page(3); err != nil {
		t.Fatalf("Page(3) unexpected error: %v", err)
	}
	_, err := d.Page(4)
	var oor *OutOfRangeError
	if !errors.As(err, &oor) {
		t.Fatalf("expected *OutOfRangeError, got %v", err)
	}
	if oor.Index != 4 || oor.Count != 4 {
		t.Fatalf("error fields = %+v", oor)
	}
	if _, err := d.Page(-1); err == nil {
		t.Fatalf("Page(-1) should fail")
	}
}

func TestOnPageChangeFiresOnlyOnActualChange(t *testing.T) {
	d := regularDoc(t, 5)
	var calls int
	var lastUnpause bool
	d.OnPageChange(func(unpause bool) { calls++; lastUnpause = unpause })

	d.Goto(0) // same index, clamped: no notification
	if calls != 0 {
		t.Fatalf("no-op navigation should not notify, got %d calls", calls)
	}
	d.GotoNext()
	if calls != 1 || !lastUnpause {
		t.Fatalf("expected one unpausing notification, calls=%d unpause=%v", calls, lastUnpause)
	}
	d.GotoEnd()
	d.GotoNext() // clamp no-op
	if calls != 2 {
		t.Fatalf("clamped no-op should not notify, calls=%d", calls)
	}
}

func TestHasNotesHeuristic(t *testing.T) {
	if regularDoc(t, 10).HasNotes() {
		t.Fatalf("regular 612x792 document misdetected as notes layout")
	}
	wide := notesDoc(t, 10)
	if !wide.HasNotes() {
		t.Fatalf("double-wide first page should report notes layout")
	}
}

func TestAspectRatioByMode(t *testing.T) {
	d := notesDoc(t, 1)
	p := d.Current()
	full := p.AspectRatio(ModeFull)
	half := p.AspectRatio(ModeContent)
	if full != 1600.0/600.0 {
		t.Fatalf("full ratio = %v", full)
	}
	if half != 800.0/600.0 {
		t.Fatalf("half ratio = %v", half)
	}
	if p.AspectRatio(ModeNotes) != half {
		t.Fatalf("notes half ratio should equal content half ratio")
	}
	// Toggling mode never moves the index.
	if d.CurrentIndex() != 0 {
		t.Fatalf("aspect ratio queries must not change the index")
	}
}

func TestLinkAt(t *testing.T) {
	src := &fakeSource{
		sizes: [][2]float64{{612, 792}, {612, 792}, {612, 792}},
		links: map[int][]Link{
			0: {
				{X: 0.1, Y: 0.1, W: 0.2, H: 0.1, Dest: 2},
				{X: 0.6, Y: 0.6, W: 0.3, H: 0.3, Dest: -1},
			},
		},
	}
	d, err := New(src, "/tmp/links.pdf")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	p := d.Current()

	if l := p.LinkAt(ModeFull, 0.2, 0.15); l == nil || l.Dest != 2 {
		t.Fatalf("point inside first link not found: %+v", l)
	}
	if l := p.LinkAt(ModeFull, 0.5, 0.5); l != nil {
		t.Fatalf("point outside all links returned %+v", l)
	}
	if l := p.LinkAt(ModeFull, -0.1, 0.5); l != nil {
		t.Fatalf("point outside the pane returned %+v", l)
	}

	// Page without links always misses.
	p1, _ := d.Page(1)
	if l := p1.LinkAt(ModeFull, 0.2, 0.15); l != nil {
		t.Fatalf("page without links returned %+v", l)
	}
}

func TestLinkAtHalfModes(t *testing.T) {
	// Link on the right half of a double-wide page.
	src := &fakeSource{
		sizes: [][2]float64{{1600, 600}},
		links: map[int][]Link{0: {{X: 0.75, Y: 0.4, W: 0.1, H: 0.2, Dest: 0}}},
	}
	d, err := New(src, "/tmp/halves.pdf")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	p := d.Current()
	// In notes mode the right half fills the pane: pane x 0.5..0.7 maps to
	// page x 0.75..0.85.
	if l := p.LinkAt(ModeNotes, 0.6, 0.5); l == nil {
		t.Fatalf("link on notes half not hit through pane coordinates")
	}
	// The content pane shows the left half, which has no links.
	if l := p.LinkAt(ModeContent, 0.6, 0.5); l != nil {
		t.Fatalf("content half should not hit a notes-half link, got %+v", l)
	}
}

func TestRenderHalfModesCrop(t *testing.T) {
	d := notesDoc(t, 1)
	p := d.Current()

	left, err := p.Render(ModeContent, 100, 60)
	if err != nil {
		t.Fatalf("Render content: %v", err)
	}
	right, err := p.Render(ModeNotes, 100, 60)
	if err != nil {
		t.Fatalf("Render notes: %v", err)
	}
	lb, rb := left.Bounds(), right.Bounds()
	if lb.Dx() != 100 || lb.Dy() != 60 || rb.Dx() != 100 || rb.Dy() != 60 {
		t.Fatalf("crop sizes wrong: left=%v right=%v", lb, rb)
	}
	// The fake render gradient increases left to right, so the right crop
	// must be strictly brighter than the left one at the same position.
	lr, _, _, _ := left.At(lb.Min.X+50, lb.Min.Y+30).RGBA()
	rr, _, _, _ := right.At(rb.Min.X+50, rb.Min.Y+30).RGBA()
	if rr <= lr {
		t.Fatalf("right crop should come from the brighter half: left=%d right=%d", lr, rr)
	}
}

func TestRenderRejectsBadSize(t *testing.T) {
	d := regularDoc(t, 1)
	if _, err := d.Current().Render(ModeFull, 0, 10); err == nil {
		t.Fatalf("expected error for zero width")
	}
}

func TestTitleAndClose(t *testing.T) {
	d := regularDoc(t, 1)
	if d.Title() != "regular" {
		t.Fatalf("Title = %q", d.Title())
	}
	src := d.src.(*fakeSource)
	if err := d.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if !src.closed {
		t.Fatalf("Close did not reach the source")
	}
}
