package logfields

import (
	"log/slog"
	"time"
)

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRunID            = "run_id"
	KeyStage            = "stage"
	KeyState            = "state"
	KeyDurationMS       = "duration_ms"
	KeyPath             = "path"
	KeyDir              = "dir"
	KeyTag              = "tag"
	KeyProject          = "project"
	KeyCommand          = "command"
	KeyExitCode         = "exit_code"
	KeyLanguageVersion  = "language_version"
	KeyFrameworkVersion = "framework_version"
	KeyError            = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func RunID(id string) slog.Attr           { return slog.String(KeyRunID, id) }
func Stage(name string) slog.Attr         { return slog.String(KeyStage, name) }
func State(s string) slog.Attr            { return slog.String(KeyState, s) }
func Path(p string) slog.Attr             { return slog.String(KeyPath, p) }
func Dir(d string) slog.Attr              { return slog.String(KeyDir, d) }
func Tag(t string) slog.Attr              { return slog.String(KeyTag, t) }
func Project(p string) slog.Attr          { return slog.String(KeyProject, p) }
func Command(c string) slog.Attr          { return slog.String(KeyCommand, c) }
func ExitCode(code int) slog.Attr         { return slog.Int(KeyExitCode, code) }
func LanguageVersion(v string) slog.Attr  { return slog.String(KeyLanguageVersion, v) }
func FrameworkVersion(v string) slog.Attr { return slog.String(KeyFrameworkVersion, v) }
func Duration(d time.Duration) slog.Attr {
	return slog.Float64(KeyDurationMS, float64(d.Microseconds())/1000)
}
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
