// Package logger builds slog loggers and provides attribute helpers with
// consistent keys for the HTTP stack.
//
// # Basic Usage
//
//	import "github.com/dmitrymomot/sark/core/logger"
//
//	// Development: text, debug level, source locations
//	log := logger.New(logger.WithDevelopment("sark"))
//
//	// Production: JSON, info level
//	log := logger.New(logger.WithProduction("sark"))
//
//	// Custom
//	log := logger.New(
//		logger.WithLevel(slog.LevelWarn),
//		logger.WithJSONFormatter(),
//		logger.WithOutput(os.Stderr),
//		logger.WithAttr(slog.String("region", "eu-1")),
//	)
//
// # Attribute Helpers
//
// Helpers that take optional values return an empty slog.Attr for nil or
// empty input, which slog omits:
//
//	log.Info("request handled",
//		logger.RequestID(id),
//		logger.Method("GET"),
//		logger.Path("/greet/Bob"),
//		logger.Route("/greet/:name"),
//		logger.StatusCode(200),
//		logger.Latency(time.Since(start)),
//	)
//
//	log.Error("dispatch failed", logger.Error(err)) // safe when err == nil
//
// # Testing
//
// Write to a buffer to assert on output:
//
//	var buf bytes.Buffer
//	log := logger.New(logger.WithJSONFormatter(), logger.WithOutput(&buf))
//
// Use Nop when a component requires a logger but output is irrelevant.
package logger
