/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package icons

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writePNG(t *testing.T, path string) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, 4, 4))); err != nil {
		t.Fatalf("encode: %v", err)
	}
}

func TestLoadFromEnvDir(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "gopresent-64.png"))
	writePNG(t, filepath.Join(dir, "gopresent-128.png"))
	if err := os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv(EnvPixmapDir, dir)

	res := Load()
	if len(res) != 2 {
		t.Fatalf("len = %d, want 2 (non-png files skipped)", len(res))
	}
	// Sorted by name.
	if res[0].Name() != "gopresent-128.png" || res[1].Name() != "gopresent-64.png" {
		t.Fatalf("unexpected order: %s, %s", res[0].Name(), res[1].Name())
	}
	if len(res[0].Content()) == 0 {
		t.Fatalf("empty resource content")
	}
}

func TestLoadMissingDirIsNil(t *testing.T) {
	t.Setenv(EnvPixmapDir, filepath.Join(t.TempDir(), "nope"))
	if res := loadDir(os.Getenv(EnvPixmapDir)); res != nil {
		t.Fatalf("expected nil for missing dir, got %d", len(res))
	}
}
