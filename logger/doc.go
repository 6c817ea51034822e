// Package logger provides structured logging on top of zerolog.
//
// A Logger carries a service name and optional component tag; child loggers
// are cheap and immutable. A package-level global logger backs the
// convenience functions so libraries can log without plumbing.
//
//	log := logger.NewDefault("rpckit")
//	log.WithComponent("rpc.echo").Warn("call rejected", logger.Fields("error", err))
package logger
