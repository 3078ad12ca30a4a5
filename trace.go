package sax

import "log/slog"

// the null logger is a logger that does nothing
var nullLogger = slog.New(slog.DiscardHandler)

// trace returns the logger registered via WithTraceLogger, or the
// null logger.
func (p *Parser) trace() *slog.Logger {
	if p.tlog != nil {
		return p.tlog
	}
	return nullLogger
}
