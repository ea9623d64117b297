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

import "testing"

func TestParseQuickJump(t *testing.T) {
	cases := []struct {
		text  string
		count int
		want  int
		ok    bool
	}{
		{"5", 10, 4, true},
		{"5/10", 10, 4, true},
		{" 5 /10", 10, 4, true},
		{"1", 10, 0, true},
		{"0", 10, 0, true},  // clamped up
		{"99", 10, 9, true}, // clamped down
		{"-3", 10, 0, true}, // clamped up
		{"abc", 10, 0, false},
		{"", 10, 0, false},
		{"/10", 10, 0, false},
		{"3", 0, 0, false},
	}
	for _, c := range cases {
		got, ok := parseQuickJump(c.text, c.count)
		if got != c.want || ok != c.ok {
			t.Errorf("parseQuickJump(%q, %d) = (%d, %v), want (%d, %v)", c.text, c.count, got, ok, c.want, c.ok)
		}
	}
}
