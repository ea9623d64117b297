/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package pdf is the rendering-library boundary. Document structure (page
// boxes, link annotations, destinations) is read with the pure-Go
// github.com/ledongthuc/pdf reader; rasterization goes through MuPDF via
// github.com/gen2brain/go-fitz and therefore needs cgo. Builds without cgo
// still parse documents but fail on render.
package pdf

import (
	"fmt"
	"image"
	"os"

	lpdf "github.com/ledongthuc/pdf"

	"gopresent/internal/document"
)

// File implements document.Source for a PDF on disk.
type File struct {
	path string
	f    *os.File
	r    *lpdf.Reader

	raster rasterizer

	// pageFP maps a page dictionary fingerprint to its 0-based index, built
	// lazily for destination resolution.
	pageFP map[string]int
}

var _ document.Source = (*File)(nil)

// Open parses the PDF at path and prepares the rasterizer. Failures are
// reported as *document.LoadError.
func Open(path string) (*File, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, &document.LoadError{Path: path, Reason: "file not found", Err: err}
	}
	osf, r, err := lpdf.Open(path)
	if err != nil {
		return nil, &document.LoadError{Path: path, Reason: "not a readable PDF", Err: err}
	}
	f := &File{path: path, f: osf, r: r}
	raster, err := newRasterizer(path, f.PageSize)
	if err != nil {
		_ = osf.Close()
		return nil, &document.LoadError{Path: path, Reason: "open renderer", Err: err}
	}
	f.raster = raster
	return f, nil
}

// Close releases the reader and the rasterizer.
func (f *File) Close() error {
	var first error
	if f.raster != nil {
		if err := f.raster.close(); err != nil {
			first = err
		}
	}
	if f.f != nil {
		if err := f.f.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// PageCount returns the number of pages.
func (f *File) PageCount() int { return f.r.NumPage() }

// PageSize returns the media box of page i (0-based) in points.
func (f *File) PageSize(i int) (float64, float64, error) {
	if i < 0 || i >= f.r.NumPage() {
		return 0, 0, fmt.Errorf("page %d out of range", i)
	}
	box := inherited(f.r.Page(i+1).V, "MediaBox")
	llx, lly, urx, ury, ok := rectValues(box)
	if !ok {
		return 0, 0, fmt.Errorf("page %d: missing or malformed MediaBox", i)
	}
	return urx - llx, ury - lly, nil
}

// PageLinks extracts the page's link annotations, normalized to [0,1]x[0,1]
// with a top-left origin. Unresolvable destinations (external URIs, unknown
// named destinations) carry Dest = -1.
func (f *File) PageLinks(i int) ([]document.Link, error) {
	if i < 0 || i >= f.r.NumPage() {
		return nil, fmt.Errorf("page %d out of range", i)
	}
	page := f.r.Page(i + 1)
	box := inherited(page.V, "MediaBox")
	llx, lly, urx, ury, ok := rectValues(box)
	if !ok || urx <= llx || ury <= lly {
		return nil, fmt.Errorf("page %d: missing or malformed MediaBox", i)
	}
	pw, ph := urx-llx, ury-lly

	annots := page.V.Key("Annots")
	if annots.Kind() != lpdf.Array {
		return nil, nil
	}
	var links []document.Link
	for j := 0; j < annots.Len(); j++ {
		a := annots.Index(j)
		if a.Kind() != lpdf.Dict || a.Key("Subtype").Name() != "Link" {
			continue
		}
		x0, y0, x1, y1, ok := rectValues(a.Key("Rect"))
		if !ok {
			continue
		}
		if x0 > x1 {
			x0, x1 = x1, x0
		}
		if y0 > y1 {
			y0, y1 = y1, y0
		}
		dest := f.annotDest(a)
		links = append(links, document.Link{
			X:    (x0 - llx) / pw,
			Y:    (ury - y1) / ph, // PDF rects are bottom-up
			W:    (x1 - x0) / pw,
			H:    (y1 - y0) / ph,
			Dest: dest,
		})
	}
	return links, nil
}

// RenderPage rasterizes page i to exactly w x h pixels.
func (f *File) RenderPage(i, w, h int) (image.Image, error) {
	return f.raster.render(i, w, h)
}

// annotDest resolves a link annotation's target page index: a direct /Dest
// entry or a /GoTo action. Anything else yields -1.
func (f *File) annotDest(a lpdf.Value) int {
	if d := a.Key("Dest"); !d.IsNull() {
		return f.resolveDest(d)
	}
	act := a.Key("A")
	if act.Kind() == lpdf.Dict && act.Key("S").Name() == "GoTo" {
		return f.resolveDest(act.Key("D"))
	}
	return -1
}

// resolveDest turns an explicit destination array or a named destination into
// a 0-based page index, or -1.
func (f *File) resolveDest(v lpdf.Value) int {
	switch v.Kind() {
	case lpdf.Array:
		if v.Len() == 0 {
			return -1
		}
		first := v.Index(0)
		switch first.Kind() {
		case lpdf.Integer:
			// Some producers store the page number directly.
			n := int(first.Int64())
			if n >= 0 && n < f.r.NumPage() {
				return n
			}
			return -1
		case lpdf.Dict:
			return f.pageIndexOf(first)
		}
	case lpdf.Name:
		return f.resolveNamed(v.Name())
	case lpdf.String:
		return f.resolveNamed(v.RawString())
	}
	return -1
}

// resolveNamed looks up a named destination in the document catalog: first
// the legacy /Dests dictionary, then the /Names/Dests name tree.
func (f *File) resolveNamed(name string) int {
	root := f.r.Trailer().Key("Root")
	if d := root.Key("Dests"); d.Kind() == lpdf.Dict {
		if dv := d.Key(name); !dv.IsNull() {
			return f.resolveDest(destValue(dv))
		}
	}
	if tree := root.Key("Names").Key("Dests"); tree.Kind() == lpdf.Dict {
		if dv, ok := lookupNameTree(tree, name, 0); ok {
			return f.resolveDest(destValue(dv))
		}
	}
	return -1
}

// destValue unwraps destination dictionaries of the form << /D [...] >>.
func destValue(v lpdf.Value) lpdf.Value {
	if v.Kind() == lpdf.Dict {
		return v.Key("D")
	}
	return v
}

// lookupNameTree walks a PDF name tree looking for name. Depth is bounded to
// guard against reference cycles in malformed files.
func lookupNameTree(node lpdf.Value, name string, depth int) (lpdf.Value, bool) {
	if depth > 32 || node.Kind() != lpdf.Dict {
		return lpdf.Value{}, false
	}
	if names := node.Key("Names"); names.Kind() == lpdf.Array {
		for i := 0; i+1 < names.Len(); i += 2 {
			if names.Index(i).RawString() == name {
				return names.Index(i + 1), true
			}
		}
	}
	if kids := node.Key("Kids"); kids.Kind() == lpdf.Array {
		for i := 0; i < kids.Len(); i++ {
			if v, ok := lookupNameTree(kids.Index(i), name, depth+1); ok {
				return v, true
			}
		}
	}
	return lpdf.Value{}, false
}

// pageIndexOf maps a resolved page dictionary back to its 0-based index by
// comparing formatted fingerprints (the reader keeps indirect references
// unresolved in the formatted output, so fingerprints are stable and unique
// per page object).
func (f *File) pageIndexOf(pageDict lpdf.Value) int {
	if f.pageFP == nil {
		f.pageFP = make(map[string]int, f.r.NumPage())
		for i := 0; i < f.r.NumPage(); i++ {
			f.pageFP[f.r.Page(i+1).V.String()] = i
		}
	}
	if i, ok := f.pageFP[pageDict.String()]; ok {
		return i
	}
	return -1
}

// inherited resolves a page attribute that may live on an ancestor Pages
// node, per the PDF page tree inheritance rules.
func inherited(v lpdf.Value, key string) lpdf.Value {
	for depth := 0; depth < 64 && v.Kind() == lpdf.Dict; depth++ {
		if r := v.Key(key); !r.IsNull() {
			return r
		}
		v = v.Key("Parent")
	}
	return lpdf.Value{}
}

// rectValues reads a 4-number PDF rectangle.
func rectValues(v lpdf.Value) (a, b, c, d float64, ok bool) {
	if v.Kind() != lpdf.Array || v.Len() != 4 {
		return 0, 0, 0, 0, false
	}
	nums := make([]float64, 4)
	for i := 0; i < 4; i++ {
		n, ok := numValue(v.Index(i))
		if !ok {
			return 0, 0, 0, 0, false
		}
		nums[i] = n
	}
	return nums[0], nums[1], nums[2], nums[3], true
}

func numValue(v lpdf.Value) (float64, bool) {
	switch v.Kind() {
	case lpdf.Integer:
		return float64(v.Int64()), true
	case lpdf.Real:
		return v.Float64(), true
	}
	return 0, false
}
