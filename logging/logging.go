package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// New builds the process logger: logfmt or json lines with ts and caller,
// dropping records below lvl (debug, info, warn, error).
func New(w io.Writer, format string, lvl string) (log.Logger, error) {
	w = log.NewSyncWriter(w)

	var logger log.Logger
	switch strings.ToLower(format) {
	case "", "logfmt":
		logger = log.NewLogfmtLogger(w)
	case "json":
		logger = log.NewJSONLogger(w)
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}

	option, err := allow(lvl)
	if err != nil {
		return nil, err
	}
	logger = level.NewFilter(logger, option)
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
	return logger, nil
}

func allow(lvl string) (level.Option, error) {
	switch strings.ToLower(lvl) {
	case "debug":
		return level.AllowDebug(), nil
	case "", "info":
		return level.AllowInfo(), nil
	case "warn":
		return level.AllowWarn(), nil
	case "error":
		return level.AllowError(), nil
	}
	return nil, fmt.Errorf("unknown log level %q", lvl)
}
