package logger

import (
	"go.uber.org/zap/zapcore"
)

// DBCore is a custom zap core that forwards entries to the Mongo writer
// while still writing to the wrapped console core.
type DBCore struct {
	zapcore.Core
	writer *DBLogWriter
}

func NewDBCore(baseCore zapcore.Core, writer *DBLogWriter) zapcore.Core {
	return &DBCore{
		Core:   baseCore,
		writer: writer,
	}
}

func (c *DBCore) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	// Only warn and above go to the database; info/debug stay on console.
	if entry.Level >= zapcore.WarnLevel {
		var path, userID string

		enc := zapcore.NewMapObjectEncoder()
		for _, f := range fields {
			f.AddTo(enc)
			switch f.Key {
			case "path":
				path = f.String
			case "user_id":
				userID = f.String
			}
		}

		c.writer.AddLog(LogEntry{
			Level:   entry.Level,
			Message: entry.Message,
			Path:    path,
			UserID:  userID,
			Caller:  entry.Caller.Function,
		})
	}

	return c.Core.Write(entry, fields)
}

func (c *DBCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}
