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

// fitRect computes the letterboxed rectangle a slide of the given aspect
// ratio (width/height) occupies inside a pane, in pane coordinates.
func fitRect(paneW, paneH, aspect float64) (x, y, w, h float64) {
	if paneW <= 0 || paneH <= 0 || aspect <= 0 {
		return 0, 0, 0, 0
	}
	w = paneW
	h = w / aspect
	if h > paneH {
		h = paneH
		w = h * aspect
	}
	x = (paneW - w) / 2
	y = (paneH - h) / 2
	return x, y, w, h
}

// paneToSlide maps a pointer position in pane coordinates onto normalized
// slide coordinates in [0,1], taking letterboxing into account. ok is false
// when the position falls on the letterbox bars.
func paneToSlide(px, py, paneW, paneH, aspect float64) (nx, ny float64, ok bool) {
	x, y, w, h := fitRect(paneW, paneH, aspect)
	if w <= 0 || h <= 0 {
		return 0, 0, false
	}
	nx = (px - x) / w
	ny = (py - y) / h
	if nx < 0 || nx > 1 || ny < 0 || ny > 1 {
		return 0, 0, false
	}
	return nx, ny, true
}

// slidePixels returns the pixel size to rasterize at so the slide fills the
// fitted rectangle at the given device scale.
func slidePixels(paneW, paneH, aspect, scale float64) (pxW, pxH int) {
	_, _, w, h := fitRect(paneW, paneH, aspect)
	if scale <= 0 {
		scale = 1
	}
	pxW = int(w*scale + 0.5)
	pxH = int(h*scale + 0.5)
	if pxW < 1 {
		pxW = 1
	}
	if pxH < 1 {
		pxH = 1
	}
	return pxW, pxH
}
