// Package log provides structured logging of commands, errors, and
// diagnostic information to per-category JSON log files.
package log

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"mindflow/src/pkg/model"
)

// Fields carries structured key/value pairs attached to a log message.
type Fields map[string]any

// logMessage is a message queued for the logging goroutine.
type logMessage struct {
	level   LogLevel
	content string
	fields  Fields
	ctx     context.Context
}

// Logger writes command, error, and info log files asynchronously
// through a buffered channel and a single worker goroutine.
type Logger struct {
	commandLogger *slog.Logger
	errorLogger   *slog.Logger
	infoLogger    *slog.Logger
	commandFile   *os.File
	errorFile     *os.File
	infoFile      *os.File
	logChan       chan logMessage
	done          chan struct{}
	wg            sync.WaitGroup
	minLevel      LogLevel
}

// NewLogger creates a new Logger instance writing to the log folder and
// file names given in the configuration. Messages above minLevel are
// discarded before they reach the channel.
func NewLogger(cfg *model.Config, minLevel LogLevel) (*Logger, error) {
	if err := os.MkdirAll(cfg.LogFolder, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	commandFile, err := os.OpenFile(filepath.Join(cfg.LogFolder, cfg.CommandLog), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open command log file: %w", err)
	}

	errorFile, err := os.OpenFile(filepath.Join(cfg.LogFolder, cfg.ErrorLog), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		commandFile.Close()
		return nil, fmt.Errorf("failed to open error log file: %w", err)
	}

	infoFile, err := os.OpenFile(filepath.Join(cfg.LogFolder, cfg.InfoLog), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		commandFile.Close()
		errorFile.Close()
		return nil, fmt.Errorf("failed to open info log file: %w", err)
	}

	logger := &Logger{
		commandLogger: slog.New(slog.NewJSONHandler(commandFile, &slog.HandlerOptions{Level: slog.LevelInfo})),
		errorLogger:   slog.New(slog.NewJSONHandler(errorFile, &slog.HandlerOptions{Level: slog.LevelWarn})),
		infoLogger:    slog.New(slog.NewJSONHandler(infoFile, &slog.HandlerOptions{Level: slog.LevelDebug})),
		commandFile:   commandFile,
		errorFile:     errorFile,
		infoFile:      infoFile,
		logChan:       make(chan logMessage, 100),
		done:          make(chan struct{}),
		minLevel:      minLevel,
	}

	logger.wg.Add(1)
	go logger.processLogs()

	return logger, nil
}

// processLogs routes queued messages to the appropriate slog logger.
func (l *Logger) processLogs() {
	defer l.wg.Done()
	for {
		select {
		case msg := <-l.logChan:
			l.write(msg)
		case <-l.done:
			// Drain whatever is still queued before exiting.
			for {
				select {
				case msg := <-l.logChan:
					l.write(msg)
				default:
					return
				}
			}
		}
	}
}

func (l *Logger) write(msg logMessage) {
	attrs := make([]slog.Attr, 0, len(msg.fields))
	for k, v := range msg.fields {
		attrs = append(attrs, slog.Any(k, v))
	}
	switch msg.level {
	case LevelCommand:
		l.commandLogger.LogAttrs(msg.ctx, slog.LevelInfo, msg.content, attrs...)
	case LevelError, LevelWarn:
		l.errorLogger.LogAttrs(msg.ctx, msg.level.toSlogLevel(), msg.content, attrs...)
	default:
		l.infoLogger.LogAttrs(msg.ctx, msg.level.toSlogLevel(), msg.content, attrs...)
	}
}

// log queues a message unless it is filtered out by the minimum level.
func (l *Logger) log(ctx context.Context, level LogLevel, content string, fields Fields) {
	if level > l.minLevel && level != LevelCommand && level != LevelError {
		return
	}
	select {
	case l.logChan <- logMessage{level: level, content: content, fields: fields, ctx: ctx}:
	case <-l.done:
	}
}

// Command logs an executed command to the command log.
func (l *Logger) Command(ctx context.Context, content string, fields Fields) {
	l.log(ctx, LevelCommand, content, fields)
}

// Error logs an error to the error log.
func (l *Logger) Error(ctx context.Context, content string, fields Fields) {
	l.log(ctx, LevelError, content, fields)
}

// Warn logs a warning to the error log.
func (l *Logger) Warn(ctx context.Context, content string, fields Fields) {
	l.log(ctx, LevelWarn, content, fields)
}

// Info logs an informational message to the info log.
func (l *Logger) Info(ctx context.Context, content string, fields Fields) {
	l.log(ctx, LevelInfo, content, fields)
}

// Debug logs a diagnostic message to the info log.
func (l *Logger) Debug(ctx context.Context, content string, fields Fields) {
	l.log(ctx, LevelDebug, content, fields)
}

// Close stops the logging goroutine and closes all log files.
func (l *Logger) Close() error {
	close(l.done)
	l.wg.Wait()

	if err := l.commandFile.Close(); err != nil {
		return fmt.Errorf("failed to close command log file: %w", err)
	}
	if err := l.errorFile.Close(); err != nil {
		return fmt.Errorf("failed to close error log file: %w", err)
	}
	if err := l.infoFile.Close(); err != nil {
		return fmt.Errorf("failed to close info log file: %w", err)
	}
	return nil
}
