/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package ui implements the dual-window presentation shell: a content window
// shown to the audience and a presenter window with the current slide, a
// preview of the next one, a talk timer and a wall clock.
package ui

import (
	"fmt"
	"time"
)

// formatElapsed renders the talk timer as MM:SS, with a pause marker when the
// timer is not running. Hours fold into the minutes field.
func formatElapsed(d time.Duration, running bool) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	s := fmt.Sprintf("%02d:%02d", total/60, total%60)
	if !running {
		s += " (pause)"
	}
	return s
}

// formatClock renders the wall clock as HH:MM:SS.
func formatClock(t time.Time) string {
	return t.Format("15:04:05")
}

// formatPageLabel renders the slide counter shown under the current slide.
func formatPageLabel(index, count int) string {
	return fmt.Sprintf("%d/%d", index+1, count)
}

// formatNextLabel renders the label above the next-slide preview. Past the
// last slide there is nothing to preview.
func formatNextLabel(index, count int) string {
	if index+1 >= count {
		return "--"
	}
	return formatPageLabel(index+1, count)
}
