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

package driverbase

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/apache/arrow-adbc/go/adbc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	// EnvTracesExporter selects the exporter when none is passed explicitly.
	EnvTracesExporter = "OTEL_TRACES_EXPORTER"
	// EnvOTLPProtocol selects between gRPC and HTTP for the otlp exporter.
	EnvOTLPProtocol = "OTEL_EXPORTER_OTLP_PROTOCOL"

	TracesExporterNone    = "none"
	TracesExporterOTLP    = "otlp"
	TracesExporterConsole = "console"
)

// TracerProviderOptions configures NewTracerProvider.
type TracerProviderOptions struct {
	// Exporter is one of the TracesExporter* values.  Empty means read
	// EnvTracesExporter, and "none" if that is unset too.
	Exporter string
	// Protocol is "grpc" or "http/protobuf" for the otlp exporter.  Empty
	// means read EnvOTLPProtocol, defaulting to grpc.
	Protocol string
	// ConsoleWriter receives console spans.  Defaults to os.Stdout.
	ConsoleWriter io.Writer
}

// NewTracerProvider builds an SDK tracer provider with the exporter named by
// opts.  Additional provider options (e.g. a resource) are passed through.
func NewTracerProvider(ctx context.Context, opts TracerProviderOptions, extra ...sdktrace.TracerProviderOption) (*sdktrace.TracerProvider, error) {
	exporter := opts.Exporter
	if exporter == "" {
		exporter = os.Getenv(EnvTracesExporter)
	}

	var spanExporter sdktrace.SpanExporter
	switch strings.ToLower(strings.TrimSpace(exporter)) {
	case "", TracesExporterNone:
		return sdktrace.NewTracerProvider(extra...), nil
	case TracesExporterOTLP:
		protocol := opts.Protocol
		if protocol == "" {
			protocol = os.Getenv(EnvOTLPProtocol)
		}
		var err error
		switch protocol {
		case "", "grpc":
			spanExporter, err = otlptracegrpc.New(ctx)
		case "http/protobuf":
			spanExporter, err = otlptracehttp.New(ctx)
		default:
			return nil, adbc.Error{
				Code: adbc.StatusInvalidArgument,
				Msg:  "[driverbase] unsupported OTLP protocol: " + protocol,
			}
		}
		if err != nil {
			return nil, adbc.Error{
				Code: adbc.StatusIO,
				Msg:  "[driverbase] failed to create OTLP exporter: " + err.Error(),
			}
		}
	case TracesExporterConsole:
		w := opts.ConsoleWriter
		if w == nil {
			w = os.Stdout
		}
		exp, err := stdouttrace.New(stdouttrace.WithWriter(w))
		if err != nil {
			return nil, adbc.Error{
				Code: adbc.StatusInternal,
				Msg:  "[driverbase] failed to create console exporter: " + err.Error(),
			}
		}
		spanExporter = exp
	default:
		return nil, adbc.Error{
			Code: adbc.StatusInvalidArgument,
			Msg:  "[driverbase] unsupported traces exporter: " + exporter,
		}
	}

	extra = append(extra, sdktrace.WithBatcher(spanExporter))
	return sdktrace.NewTracerProvider(extra...), nil
}
