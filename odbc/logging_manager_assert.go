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

//go:build assert

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
	h, ret := lm.Manager.AllocEnv()
	lm.Logger.Debug("LoggingManager.AllocEnv", slog.Any("handle", h), slog.String("ret", ret.String()))
	return h, ret
}

func (lm *LoggingManager) FreeEnv(env Handle) Return {
	ret := lm.Manager.FreeEnv(env)
	lm.Logger.Debug("LoggingManager.FreeEnv", slog.Any("handle", env), slog.String("ret", ret.String()))
	return ret
}

func (lm *LoggingManager) Drivers(ctx context.Context, env Handle, dir FetchDirection, description, attributes []byte) (int16, int16, Return) {
	descLen, attrLen, ret := lm.Manager.Drivers(ctx, env, dir, description, attributes)
	lm.Logger.DebugContext(ctx, "LoggingManager.Drivers",
		slog.String("dir", dir.String()),
		slog.Int("descLen", int(descLen)),
		slog.Int("attrLen", int(attrLen)),
		slog.String("ret", ret.String()))
	return descLen, attrLen, ret
}

func (lm *LoggingManager) DataSources(ctx context.Context, env Handle, dir FetchDirection, name, description []byte) (int16, int16, Return) {
	nameLen, descLen, ret := lm.Manager.DataSources(ctx, env, dir, name, description)
	lm.Logger.DebugContext(ctx, "LoggingManager.DataSources",
		slog.String("dir", dir.String()),
		slog.Int("nameLen", int(nameLen)),
		slog.Int("descLen", int(descLen)),
		slog.String("ret", ret.String()))
	return nameLen, descLen, ret
}

func (lm *LoggingManager) Diagnostics(ht HandleType, h Handle) []DiagRecord {
	records := lm.Manager.Diagnostics(ht, h)
	if len(records) > 0 {
		lm.Logger.Info("LoggingManager.Diagnostics", slog.Any("records", records))
	}
	return records
}
