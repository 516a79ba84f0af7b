// Package logfactory builds pre-configured, named loggers over rs/zerolog
// with console and/or file output, optional daily file rotation, and
// handler deduplication across a dotted naming hierarchy.
//
// Key features
//   - One-call construction: console, plain-file, or day-rotating sinks,
//     all sharing a single formatter and severity threshold
//   - Dotted-name logger hierarchy with record propagation to ancestor
//     handlers, backed by an injectable registry
//   - Type-based handler deduplication and parent collapse, so repeated
//     construction never produces duplicate emission through the hierarchy
//   - LogContext values that bind fixed extra fields (e.g. a request id)
//     to every call made through them
//
// Typical usage
//
//	logger, err := logfactory.New(logfactory.DefaultConfig("svc.api"))
//	if err != nil {
//		panic(err)
//	}
//	logger.Info("started", logfactory.Fields{"port": 8080})
//
//	gen, _ := logfactory.NewContextGenerator(logfactory.DefaultConfig("svc.worker"))
//	ctx := gen.Bind(logfactory.Fields{"request_id": rid})
//	ctx.Info("processing request")
package logfactory
