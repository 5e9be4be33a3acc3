package logger

// Kind is a runtime-constructed log-kind descriptor: a named, colored
// severity that producers log under. Declare kinds once as package-level
// values and call their bound methods:
//
//	var Deploy = logger.NewKind(25, "DEPLOY", "\x1b[32m")
//
//	Deploy.Log("rollout finished")
//
// Kind is a small value type; copying it is free and it is safe for
// concurrent use from any goroutine.
type Kind struct {
	level int
	name  string
	color string
}

// NewKind creates a descriptor with the given severity level, short
// heading, and ANSI color escape (may be empty for uncolored output).
func NewKind(level int, name, color string) Kind {
	return Kind{level: level, name: name, color: color}
}

// Level returns the kind's severity level.
func (k Kind) Level() int { return k.level }

// Name returns the kind's short heading.
func (k Kind) Name() string { return k.name }

// Color returns the kind's ANSI color escape.
func (k Kind) Color() string { return k.color }

// Active reports whether this kind currently passes the default
// runtime's severity gate. Use it to skip expensive work that only feeds
// a log message.
func (k Kind) Active() bool { return IsActive(k.level) }

// Log submits a message under this kind via the default runtime. The
// drop-on-failure error is intentionally discarded; producers that want
// to observe delivery failures use logger.Log directly.
func (k Kind) Log(msg string) { _ = Log(k, msg) }

// Logf is Log with fmt-style formatting, rendered only if the gate
// passes.
func (k Kind) Logf(format string, args ...interface{}) { _ = Logf(k, format, args...) }

// Predefined kinds covering the common severity ladder. The levels are
// spaced so applications can slot their own kinds in between, and the
// colors follow the usual terminal conventions.
var (
	Debug    = NewKind(0, "DEBUG", "\x1b[36m")
	Info     = NewKind(10, "INFO", "\x1b[37m")
	Warn     = NewKind(20, "WARN", "\x1b[33m")
	Error    = NewKind(30, "ERROR", "\x1b[31m")
	Critical = NewKind(40, "CRITICAL", "\x1b[35m")
)
