/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package icons locates the application window icons shipped alongside the
// binary. Missing icons are never fatal, windows simply fall back to the
// toolkit default.
package icons

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"fyne.io/fyne/v2"

	applog "gopresent/internal/log"
	"log/slog"
)

// EnvPixmapDir overrides the icon search path, mainly for development trees.
const EnvPixmapDir = "GPR_PIXMAP_DIR"

// searchDirs lists the candidate pixmap directories in priority order.
func searchDirs() []string {
	var dirs []string
	if d := strings.TrimSpace(os.Getenv(EnvPixmapDir)); d != "" {
		dirs = append(dirs, d)
	}
	if exe, err := os.Executable(); err == nil {
		base := filepath.Dir(exe)
		dirs = append(dirs,
			filepath.Join(base, "share", "pixmaps"),
			filepath.Join(filepath.Dir(base), "share", "pixmaps"),
		)
	}
	dirs = append(dirs,
		"/usr/local/share/pixmaps/gopresent",
		"/usr/share/pixmaps/gopresent",
	)
	return dirs
}

// Load returns all PNG icons found in the first pixmap directory that yields
// any, sorted by file name so multi-size sets stay in a stable order.
func Load() []fyne.Resource {
	l := applog.WithComponent("icons")
	for _, dir := range searchDirs() {
		res := loadDir(dir)
		if len(res) > 0 {
			l.Debug("icons loaded", slog.String("dir", dir), slog.Int("count", len(res)))
			return res
		}
	}
	l.Debug("no icons found")
	return nil
}

func loadDir(dir string) []fyne.Resource {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), ".png") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	var out []fyne.Resource
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil || len(data) == 0 {
			continue
		}
		out = append(out, fyne.NewStaticResource(name, data))
	}
	return out
}
