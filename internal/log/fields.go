package log

import (
	"time"

	"go.uber.org/zap"
)

// Field is a structured logging field, aliased so call sites do not
// import zap directly.
type Field = zap.Field

func String(key, val string) Field {
	return zap.String(key, val)
}

func Int(key string, val int) Field {
	return zap.Int(key, val)
}

func Bool(key string, val bool) Field {
	return zap.Bool(key, val)
}

func Duration(key string, val time.Duration) Field {
	return zap.Duration(key, val)
}

func Any(key string, val any) Field {
	return zap.Any(key, val)
}

// Cause attaches err under the "error" key.
func Cause(err error) Field {
	return zap.Error(err)
}
