/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package timer implements the presentation timer: a wall-clock elapsed
// counter that can pause and resume without losing continuity.
package timer

import "time"

// Timer starts paused with zero elapsed time. It is driven from the UI
// dispatch thread only.
type Timer struct {
	now     func() time.Time
	start   time.Time
	elapsed time.Duration
	running bool
}

// New returns a paused timer at zero.
func New() *Timer { return &Timer{now: time.Now} }

// Running reports whether the timer is counting.
func (t *Timer) Running() bool { return t.running }

// Elapsed returns the accumulated presentation time. While running it keeps
// growing; while paused it is frozen.
func (t *Timer) Elapsed() time.Duration {
	if t.running {
		return t.now().Sub(t.start)
	}
	return t.elapsed
}

// SwitchPause toggles between paused and running. On resume the start
// timestamp is shifted so the displayed elapsed time continues seamlessly.
// It returns the new running state.
func (t *Timer) SwitchPause() bool {
	if t.running {
		t.elapsed = t.now().Sub(t.start)
		t.running = false
	} else {
		t.start = t.now().Add(-t.elapsed)
		t.running = true
	}
	return t.running
}

// Unpause starts the timer if it is paused; a no-op otherwise. Called on page
// navigation so the counter starts with the first slide change.
func (t *Timer) Unpause() {
	if !t.running {
		t.start = t.now().Add(-t.elapsed)
		t.running = true
	}
}

// Reset sets the elapsed time back to zero without changing the
// paused/running state.
func (t *Timer) Reset() {
	t.start = t.now()
	t.elapsed = 0
}
