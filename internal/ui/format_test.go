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
	"testing"
	"time"
)

func TestFormatElapsed(t *testing.T) {
	cases := []struct {
		d       time.Duration
		running bool
		want    string
	}{
		{0, false, "00:00 (pause)"},
		{0, true, "00:00"},
		{65 * time.Second, true, "01:05"},
		{65 * time.Second, false, "01:05 (pause)"},
		{61 * time.Minute, true, "61:00"},
		{-3 * time.Second, true, "00:00"},
	}
	for _, c := range cases {
		if got := formatElapsed(c.d, c.running); got != c.want {
			t.Errorf("formatElapsed(%v, %v) = %q, want %q", c.d, c.running, got, c.want)
		}
	}
}

func TestFormatClock(t *testing.T) {
	at := time.Date(2025, 6, 1, 14, 3, 9, 0, time.UTC)
	if got := formatClock(at); got != "14:03:09" {
		t.Fatalf("formatClock = %q", got)
	}
}

func TestFormatPageLabels(t *testing.T) {
	if got := formatPageLabel(0, 12); got != "1/12" {
		t.Fatalf("formatPageLabel = %q", got)
	}
	if got := formatNextLabel(0, 12); got != "2/12" {
		t.Fatalf("formatNextLabel = %q", got)
	}
	if got := formatNextLabel(11, 12); got != "--" {
		t.Fatalf("formatNextLabel at end = %q", got)
	}
	if got := formatNextLabel(0, 1); got != "--" {
		t.Fatalf("formatNextLabel single page = %q", got)
	}
}
