/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopresent/internal/crash"
	applog "gopresent/internal/log"
	"gopresent/internal/ui"
	"gopresent/internal/version"
)

func usage() {
	fmt.Println("gopresent — dual-window PDF presentation viewer")
	fmt.Printf("Version: %s\n", version.String())
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  gopresent [file.pdf]                 Open a presentation (file chooser when omitted)")
	fmt.Println("  gopresent version|-v|--version       Show version")
}

func main() {
	// initialize structured logging using environment defaults
	applog.Init(applog.FromEnv())
	l := applog.WithComponent("cli")
	defer crash.Recover()

	args := os.Args
	l.Debug("start", slog.Int("args", len(args)))

	path := ""
	if len(args) > 1 {
		switch args[1] {
		case "version", "--version", "-v":
			fmt.Println("gopresent — dual-window PDF presentation viewer")
			fmt.Println(version.String())
			return
		case "help", "--help", "-h":
			usage()
			return
		default:
			abs, err := filepath.Abs(args[1])
			if err != nil {
				fmt.Println("Error:", err)
				os.Exit(2)
			}
			path = abs
		}
	}

	if err := ui.Run(path); err != nil {
		l.Error("ui failed", slog.Any("err", err))
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
