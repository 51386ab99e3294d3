// Package log defines structured protocol event logging for the
// configuration engine.
//
// The engine emits an Event for every Config message it handles in either
// direction and for every topology mutation it applies. Applications
// choose where events go by providing a Logger: NoopLogger discards them,
// SlogAdapter forwards them to a standard slog.Logger for console
// debugging, FileLogger appends them to a CBOR capture file, and
// MultiLogger fans out to several sinks at once.
package log
