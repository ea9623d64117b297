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
	"gopresent/internal/config"
	applog "gopresent/internal/log"
	"gopresent/internal/telemetry"
)

// logOptions maps the logging section of the user config onto logger options.
// The config loader has already merged file values and GPR_LOG_* overrides.
func logOptions(lc config.LoggingConfig) applog.Options {
	return applog.Options{
		Level:     lc.Level,
		Format:    lc.Format,
		AddSource: lc.Source,
		File:      lc.File,
	}
}

// telemetryConfig applies the user's persisted opt-in choice on top of the
// env-derived telemetry settings. Endpoint URLs only ever come from the
// environment; the config file cannot redirect uploads.
func telemetryConfig(cfg config.AppConfig) telemetry.Config {
	tc := telemetry.FromEnv()
	if cfg.General.TelemetryOptIn {
		tc.OptIn = true
	}
	return tc
}
