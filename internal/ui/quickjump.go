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
	"strconv"
	"strings"
)

// parseQuickJump extracts the target slide from the text typed into the slide
// counter. The counter shows "current/total", so anything from a "/" on is
// ignored, which lets the user edit just the number in front. The typed value
// is 1-based; the returned index is 0-based and clamped to the document.
func parseQuickJump(text string, count int) (int, bool) {
	if count <= 0 {
		return 0, false
	}
	if i := strings.IndexByte(text, '/'); i >= 0 {
		text = text[:i]
	}
	text = strings.TrimSpace(text)
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, false
	}
	n-- // 1-based entry
	if n < 0 {
		n = 0
	}
	if n >= count {
		n = count - 1
	}
	return n, true
}
