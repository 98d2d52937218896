package database

import "go.opentelemetry.io/otel"

var tracer = otel.GetTracerProvider().Tracer("table_reservations/pkg/database")
