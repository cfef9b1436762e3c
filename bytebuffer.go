// Package bytebuffer implements a bit-addressable cursor over an in-memory
// byte buffer.
//
// A Cursor couples an owned byte store with a single position measured in
// bits, so callers can read and write integers of arbitrary width (1 to 64
// bits) at arbitrary bit granularity, as well as whole bytes, without byte
// boundaries ever being a special case. The byte index and the bit-within-byte
// index are never stored separately; both are derived from the one absolute
// bit offset on every access, which makes the classic "bit position reached 8"
// bug unrepresentable.
//
// Bits within a byte are consumed and produced most-significant-bit first.
// Given the buffer {0x8f}, ReadBits(4) returns 0x08 (the high nibble) and a
// following ReadBits(4) returns 0x0f.
//
// Byte-oriented operations (ReadByte, WriteBytes, ...) insist on byte
// alignment and fail with ErrMisaligned otherwise; use the bit API when the
// cursor sits inside a byte. An LSB-first consumption mode could be added as
// an explicit constructor option if a bitstream format needs it, but only
// MSB-first is implemented.
//
// Some examples on using the API are implemented as executable go programs in
// the `examples` subdirectory.
package bytebuffer

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Version is the last tagged version of the package
const Version = "1.0.0"

var logging bool
var logWriters = []zapcore.WriteSyncer{os.Stdout}
var logger *zap.Logger
var zapEncoderConfig = zapcore.EncoderConfig{
	TimeKey:        "ts",
	LevelKey:       "level",
	NameKey:        "logger",
	CallerKey:      "caller",
	MessageKey:     "msg",
	StacktraceKey:  "stacktrace",
	EncodeLevel:    zapcore.LowercaseLevelEncoder,
	EncodeTime:     zapcore.ISO8601TimeEncoder,
	EncodeDuration: zapcore.SecondsDurationEncoder,
}

func initLogging() {
	logging = false
	initializeLogger()
}

// EnableLogging enables logging if true is passed and disables it if false
// is passed.
func EnableLogging(enable bool) {
	logging = enable
}

// AddLogWriter adds a new io.Writer as a target for writing
// logs.
func AddLogWriter(writer io.Writer) {
	logWriters = append(logWriters, zapcore.AddSync(writer))
	initializeLogger()
}

// SetLogWriters will set the passed io.Writer instances as targets for
// writing logs.
func SetLogWriters(writers ...io.Writer) {
	writesyncers := make([]zapcore.WriteSyncer, 0, len(writers))
	for _, w := range writers {
		writesyncers = append(writesyncers, zapcore.AddSync(w))
	}

	logWriters = writesyncers
	initializeLogger()
}

func initializeLogger() {
	ws := zap.CombineWriteSyncers(logWriters...)
	logger = zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(zapEncoderConfig),
		ws, zapcore.InfoLevel,
	))
}

// init maintains a central location of all things that happen when the package
// is initialized instead of everything being scattered in multiple source files
func init() {
	initLogging()
}
