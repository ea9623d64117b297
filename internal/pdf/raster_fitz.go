//go:build cgo

/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package pdf

import (
	"fmt"
	"image"
	"sync"

	"github.com/gen2brain/go-fitz"
	xdraw "golang.org/x/image/draw"
)

// rasterizer rasterizes a single page to a fixed pixel size.
type rasterizer interface {
	render(page, w, h int) (image.Image, error)
	close() error
}

// fitzRaster renders through MuPDF. go-fitz documents are not safe for
// concurrent use, so render calls serialize on the mutex (the UI thread and
// the prerender goroutine share one File).
type fitzRaster struct {
	mu     sync.Mutex
	doc    *fitz.Document
	sizeOf func(i int) (w, h float64, err error)
}

func newRasterizer(path string, sizeOf func(i int) (w, h float64, err error)) (rasterizer, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("mupdf open: %w", err)
	}
	return &fitzRaster{doc: doc, sizeOf: sizeOf}, nil
}

func (r *fitzRaster) render(page, w, h int) (image.Image, error) {
	pw, _, err := r.sizeOf(page)
	if err != nil {
		return nil, err
	}
	if pw <= 0 {
		return nil, fmt.Errorf("render page %d: zero-width page", page)
	}
	dpi := 72 * float64(w) / pw

	r.mu.Lock()
	img, err := r.doc.ImageDPI(page, dpi)
	r.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("render page %d: %w", page, err)
	}
	// MuPDF rounds the pixmap size; scale to the exact pane size.
	if b := img.Bounds(); b.Dx() == w && b.Dy() == h {
		return img, nil
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return dst, nil
}

func (r *fitzRaster) close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.doc.Close()
}
