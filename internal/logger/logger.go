package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"academicHub/internal/api/middleware"
	"academicHub/internal/config"
)

// ServiceName попадает в каждую запись лога
const ServiceName = "academic_hub"

const timeFormat = "15:04:05 02.01.2006"

// Setup настраивает глобальный zerolog логгер под окружение:
// debug пишет всё в stdout, test только предупреждения, prod пишет в файл APP_LOG_PATH.
func Setup(envConf *config.Config) *zerolog.Logger {
	zerolog.SetGlobalLevel(levelFor(envConf.ProductionType))
	zerolog.TimeFieldFormat = timeFormat
	zerolog.CallerMarshalFunc = shortCaller

	writer, err := newWriter(envConf)
	if err != nil {
		// без файла пишем в stdout
		writer = os.Stdout
	}

	l := zerolog.New(writer).
		With().
		Caller().
		Timestamp().
		Str("service", ServiceName).
		Logger()

	log.Logger = l

	if err != nil {
		log.Warn().Err(err).Str("log_path", envConf.LogPath).Msg("failed to open log file, writing to stdout")
	}
	log.Info().Str("production_type", envConf.ProductionType).Msg("logger setup complete")

	return &l
}

func levelFor(productionType string) zerolog.Level {
	switch productionType {
	case "debug":
		return zerolog.DebugLevel
	case "test":
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}

// newWriter открывает файл логов в prod, в остальных режимах stdout
func newWriter(envConf *config.Config) (io.Writer, error) {
	if envConf.ProductionType != "prod" {
		return os.Stdout, nil
	}
	if envConf.LogPath == "" {
		return nil, fmt.Errorf("log path is not set")
	}

	if err := os.MkdirAll(filepath.Dir(envConf.LogPath), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	f, err := os.OpenFile(envConf.LogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

// shortCaller оставляет пакет и файл: service/teamRequest.go:42
func shortCaller(_ uintptr, file string, line int) string {
	parts := strings.Split(file, "/")
	if len(parts) > 2 {
		file = strings.Join(parts[len(parts)-2:], "/")
	}
	return fmt.Sprintf("%s:%d", file, line)
}

// GetRequestID достаёт ID запроса, положенный LoggerMiddleware
func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(middleware.RequestIDKey).(string); ok {
		return requestID
	}
	return "unknown"
}
