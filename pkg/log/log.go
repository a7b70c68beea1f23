// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package log

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/walteh/tidydir/pkg/organize"
)

// 🎨 Display configuration
const (
	fileIndent    = 4  // spaces to indent file entries
	nameWidth     = 35 // Base width for filename
	categoryWidth = 15 // Width for category
)

// 🎯 Logger writes user-facing console lines and mirrors them to zerolog
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	mu      sync.Mutex
	base    string // directory the console paths are shown relative to
}

// 🏭 New creates a new logger
func New(console io.Writer, zlog zerolog.Logger) *Logger {
	return &Logger{
		zlog:    zlog,
		console: console,
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// 📂 StartDirectory prints the header for a directory run; later move lines are shown relative to dir
func (l *Logger) StartDirectory(ctx context.Context, dir string, files int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.base = dir

	fmt.Fprintf(l.console, "[organizing %s]\n", color.New(color.FgCyan).Sprint(dir))
	fmt.Fprintf(l.console, "%s %s\n",
		color.New(color.FgMagenta).Sprint("◆"),
		color.New(color.Faint).Sprintf("%d files", files))

	l.zlog.Info().
		Str("directory", dir).
		Int("files", files).
		Msg("starting directory")
}

// 📝 MoveStarted prints one line per move, before the move happens
func (l *Logger) MoveStarted(ctx context.Context, mv organize.Move) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintln(l.console, l.formatMove(mv))

	l.zlog.Info().
		Str("source", mv.Source).
		Str("destination", mv.Destination).
		Str("category", mv.Category).
		Msgf("Moving %s to %s ...", mv.Source, mv.Destination)
}

// 📝 formatMove formats a move for display
func (l *Logger) formatMove(mv organize.Move) string {
	return fmt.Sprintf("%s%s %s %s %s",
		fmt.Sprintf("%*s", fileIndent, ""),
		color.New(color.FgGreen).Sprint("➜"),
		fmt.Sprintf("%-*s", nameWidth, l.rel(mv.Source)),
		color.New(color.FgBlue).Sprint(fmt.Sprintf("%-*s", categoryWidth, mv.Category)),
		l.rel(mv.Destination))
}

func (l *Logger) rel(path string) string {
	if l.base == "" {
		return path
	}
	r, err := filepath.Rel(l.base, path)
	if err != nil {
		return path
	}
	return r
}

// 📊 Summary prints the outcome of a run
func (l *Logger) Summary(ctx context.Context, result *organize.Result) {
	if result == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintf(l.console, "\n%s moved %s, skipped %s, failed %s (%s)\n",
		color.New(color.Bold).Sprint("summary"),
		color.New(color.FgGreen).Sprint(len(result.Moved)),
		color.New(color.FgYellow).Sprint(len(result.Skipped)),
		color.New(color.FgRed).Sprint(len(result.Failed)),
		humanize.Bytes(uint64(result.Bytes)))

	for _, mv := range result.Skipped {
		fmt.Fprintf(l.console, "%s%s %s\n", fmt.Sprintf("%*s", fileIndent, ""), color.New(color.FgYellow).Sprint("-"), l.rel(mv.Source))
	}
	for _, mv := range result.Failed {
		fmt.Fprintf(l.console, "%s%s %s\n", fmt.Sprintf("%*s", fileIndent, ""), color.New(color.FgRed).Sprint("✗"), l.rel(mv.Source))
	}

	l.zlog.Info().
		Str("directory", l.base).
		Int("moved", len(result.Moved)).
		Int("skipped", len(result.Skipped)).
		Int("failed", len(result.Failed)).
		Int64("bytes", result.Bytes).
		Msg("directory complete")
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	name := color.New(color.Bold, color.FgCyan).Sprint("tidydir")
	fmt.Fprintf(l.console, "\n%s %s\n\n", name, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Success logs a success message
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "✅ %s\n", color.New(color.FgGreen).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Error logs an error message
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "❌ %s\n", color.New(color.FgRed).Sprint(msg))
	l.zlog.Error().Msg(msg)
}

// 📝 Info logs an info message
func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "ℹ️  %s\n", color.New(color.FgCyan).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}

// 📝 Successf logs a formatted success message
func (l *Logger) Successf(format string, args ...interface{}) {
	l.Success(fmt.Sprintf(format, args...))
}
