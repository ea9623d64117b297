/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package timer

import (
	"testing"
	"time"
)

// fakeClock lets tests advance time deterministically.
type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestTimer(c *fakeClock) *Timer { return &Timer{now: c.now} }

func TestStartsPausedAtZero(t *testing.T) {
	c := &fakeClock{t: time.Unix(1000, 0)}
	tm := newTestTimer(c)
	if tm.Running() {
		t.Fatalf("new timer must be paused")
	}
	c.advance(10 * time.Second)
	if tm.Elapsed() != 0 {
		t.Fatalf("paused timer accumulated %v", tm.Elapsed())
	}
}

func TestPauseFreezesAndResumeContinues(t *testing.T) {
	c := &fakeClock{t: time.Unix(1000, 0)}
	tm := newTestTimer(c)

	tm.Unpause()
	c.advance(5 * time.Second)
	if tm.SwitchPause() {
		t.Fatalf("SwitchPause should report paused")
	}
	// Wall clock keeps moving while paused; elapsed does not.
	c.advance(42 * time.Second)
	if got := tm.Elapsed(); got != 5*time.Second {
		t.Fatalf("elapsed while paused = %v, want 5s", got)
	}

	if !tm.SwitchPause() {
		t.Fatalf("SwitchPause should report running")
	}
	c.advance(3 * time.Second)
	if got := tm.Elapsed(); got != 8*time.Second {
		t.Fatalf("elapsed after resume = %v, want 8s", got)
	}
}

func TestUnpauseIsIdempotent(t *testing.T) {
	c := &fakeClock{t: time.Unix(1000, 0)}
	tm := newTestTimer(c)
	tm.Unpause()
	c.advance(2 * time.Second)
	tm.Unpause() // already running: must not reset the start point
	if got := tm.Elapsed(); got != 2*time.Second {
		t.Fatalf("elapsed = %v, want 2s", got)
	}
}

func TestResetKeepsRunningState(t *testing.T) {
	c := &fakeClock{t: time.Unix(1000, 0)}
	tm := newTestTimer(c)

	// Reset while paused: stays paused, elapsed zero.
	tm.Unpause()
	c.advance(4 * time.Second)
	tm.SwitchPause()
	tm.Reset()
	if tm.Running() || tm.Elapsed() != 0 {
		t.Fatalf("reset while paused: running=%v elapsed=%v", tm.Running(), tm.Elapsed())
	}

	// Reset while running: keeps counting from zero.
	tm.Unpause()
	c.advance(6 * time.Second)
	tm.Reset()
	if !tm.Running() {
		t.Fatalf("reset must not pause a running timer")
	}
	c.advance(1 * time.Second)
	if got := tm.Elapsed(); got != 1*time.Second {
		t.Fatalf("elapsed after running reset = %v, want 1s", got)
	}
}
