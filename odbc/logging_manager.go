// Copyright (c) 2025 ADBC Drivers Contributors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//         http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Wrapper around a DriverManager to add logging for debug purposes.  This is
// only enabled when compiling with the assert build tag; otherwise everything
// is a pass-through (to avoid logging overhead and potentially logging
// something sensitive, such as a connection string in a DSN description).

//go:build !assert

package odbc

import (
	"context"
	"log/slog"
)

type LoggingManager struct {
	Manager DriverManager
	Logger  *slog.Logger
}

func (lm *LoggingManager) AllocEnv() (Handle, Return) {
	return lm.Manager.AllocEnv()
}

func (lm *LoggingManager) FreeEnv(env Handle) Return {
	return lm.Manager.FreeEnv(env)
}

func (lm *LoggingManager) Drivers(ctx context.Context, env Handle, dir FetchDirection, description, attributes []byte) (int16, int16, Return) {
	return lm.Manager.Drivers(ctx, env, dir, description, attributes)
}

func (lm *LoggingManager) DataSources(ctx context.Context, env Handle, dir FetchDirection, name, description []byte) (int16, int16, Return) {
	return lm.Manager.DataSources(ctx, env, dir, name, description)
}

func (lm *LoggingManager) Diagnostics(ht HandleType, h Handle) []DiagRecord {
	return lm.Manager.Diagnostics(ht, h)
}
