//go:build !cgo

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
)

// rasterizer rasterizes a single page to a fixed pixel size.
type rasterizer interface {
	render(page, w, h int) (image.Image, error)
	close() error
}

// noRaster keeps document parsing available in CGO-free builds (tests, CI)
// while rendering reports a clear error.
type noRaster struct{}

func newRasterizer(string, func(int) (float64, float64, error)) (rasterizer, error) {
	return noRaster{}, nil
}

func (noRaster) render(page, w, h int) (image.Image, error) {
	return nil, fmt.Errorf("page rendering requires cgo (MuPDF); rebuild with CGO_ENABLED=1")
}

func (noRaster) close() error { return nil }
