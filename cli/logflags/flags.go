package logflags

import (
	"flag"

	"github.com/brimdata/calc/pkg/logger"
	"go.uber.org/zap"
)

// Flags configures the process logger.  It satisfies cli.Initializer so
// the logger is opened along with the other flag groups.
type Flags struct {
	Config   logger.Config
	logger   *zap.Logger
	closeLog func() error
}

func (f *Flags) SetFlags(fs *flag.FlagSet) {
	fs.BoolVar(&f.Config.DevMode, "log.devmode", false, "development mode (if enabled dpanic level logs will cause a panic)")
	f.Config.Level = zap.InfoLevel
	fs.Var(&f.Config.Level, "log.level", "logging level")
	fs.StringVar(&f.Config.Path, "log.path", "stderr", "path to send logs (values: stderr, stdout, /dev/null, path in file system)")
	f.Config.Mode = logger.FileModeTruncate
	fs.Var(&f.Config.Mode, "log.filemode", "logger file write mode (values: append, truncate, rotate)")
}

func (f *Flags) Init() error {
	l, closeLog, err := logger.New(f.Config)
	if err != nil {
		return err
	}
	f.logger = l
	f.closeLog = closeLog
	return nil
}

// Close flushes the logger and closes its log file.  The logger must not
// be used afterward.
func (f *Flags) Close() error {
	if f.logger == nil {
		return nil
	}
	f.logger.Sync()
	f.logger = nil
	return f.closeLog()
}

// Logger returns the logger opened by Init, or a no-op logger if Init has
// not succeeded.
func (f *Flags) Logger() *zap.Logger {
	if f.logger == nil {
		return zap.NewNop()
	}
	return f.logger
}
