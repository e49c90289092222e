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

package odbc

import (
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/adbc-drivers/odbc"

// EnvironmentOption configures an Environment (logger, tracer…).
type EnvironmentOption func(*envConfig)

type envConfig struct {
	logger *slog.Logger
	tracer trace.Tracer
}

func defaultEnvConfig() envConfig {
	return envConfig{
		logger: slog.Default(),
		tracer: otel.Tracer(instrumentationName),
	}
}

// WithLogger sets the logger used for driver manager calls.
func WithLogger(logger *slog.Logger) EnvironmentOption {
	return func(c *envConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithTracerProvider sets where enumeration spans are recorded.  The
// default is the global provider.
func WithTracerProvider(tp trace.TracerProvider) EnvironmentOption {
	return func(c *envConfig) {
		if tp != nil {
			c.tracer = tp.Tracer(instrumentationName)
		}
	}
}
