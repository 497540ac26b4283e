package tracker

import (
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds the console logger used for diagnostics. Output goes to
// stderr so it never interleaves with the tables written to stdout.
func NewLogger(conf LogConfig) (*zap.Logger, error) {
	level := zapcore.WarnLevel
	if err := level.Set(strings.ToLower(conf.Level)); err != nil {
		level = zapcore.WarnLevel
	}

	zapConf := zap.NewDevelopmentConfig()
	zapConf.Level = zap.NewAtomicLevelAt(level)
	zapConf.Development = false
	zapConf.DisableStacktrace = true
	zapConf.OutputPaths = []string{"stderr"}
	zapConf.ErrorOutputPaths = []string{"stderr"}

	logger, err := zapConf.Build()
	if err != nil {
		return nil, err
	}
	return logger.With(zap.String("session", uuid.NewString())), nil
}
