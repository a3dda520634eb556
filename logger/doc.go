// Package logger provides structured logging for streamkit using zerolog.
//
// It supports JSON and console output, level configuration, and
// component-scoped loggers with structured fields.
//
// # Usage
//
//	log := logger.WithComponent("httpclient")
//	log.Info("exchange completed", logger.Fields("status", 200))
package logger
