// Package logger builds the zap loggers used by the command line tools.
package logger

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	Path string
	// If Path is a file, Mode will determine how the log file is managed.
	// FileModeAppend is the default if value is undefined.
	Mode    FileMode
	Level   zapcore.Level
	DevMode bool
}

// New returns a logger configured by conf along with a function that
// closes the file it writes to.  The close function is a no-op for the
// standard streams and for rotated logs.
func New(conf Config) (*zap.Logger, func() error, error) {
	w, err := OpenFile(conf.Path, conf.Mode)
	if err != nil {
		return nil, nil, err
	}
	closer := func() error { return nil }
	if c, ok := w.(io.Closer); ok {
		closer = c.Close
	}
	var opts []zap.Option
	if conf.DevMode {
		opts = append(opts, zap.Development())
	}
	core := zapcore.NewCore(jsonEncoder(), w, conf.Level)
	return zap.New(core, opts...), closer, nil
}

func jsonEncoder() zapcore.Encoder {
	conf := zap.NewProductionEncoderConfig()
	conf.CallerKey = ""
	return zapcore.NewJSONEncoder(conf)
}
