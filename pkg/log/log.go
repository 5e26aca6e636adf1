package log

import (
	"context"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Fields é um alias para logrus.Fields
type Fields logrus.Fields

// Logger é o subconjunto de logrus usado pelos handlers e middlewares
type Logger interface {
	WithField(key string, value interface{}) Logger
	WithFields(fields Fields) Logger
	WithError(err error) Logger

	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Warnf(format string, args ...interface{})
	Error(args ...interface{})
}

type contextKey string

// CorrelationIDKey guarda o ID de correlação da requisição no contexto
const CorrelationIDKey contextKey = "correlation_id"
const correlationIDField = "correlation_id"

type logger struct {
	entry *logrus.Entry
}

// L é o logger global, sobre o logger padrão do logrus
var L Logger = &logger{entry: logrus.NewEntry(logrus.StandardLogger())}

// IsDevelopment retorna verdadeiro se estamos em ambiente de desenvolvimento
func IsDevelopment() bool {
	env := os.Getenv("APP_ENV")
	return env == "" || env == "development" || env == "dev"
}

// SetupTestLogger deixa o logrus em modo texto, nível debug, e recria L
func SetupTestLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{PadLevelText: true})
	logrus.SetLevel(logrus.DebugLevel)
	logrus.SetReportCaller(false)

	L = &logger{entry: logrus.NewEntry(logrus.StandardLogger())}
}

// developmentFields são os únicos campos mantidos com APP_ENV de desenvolvimento,
// além dos prefixados com selection_
var developmentFields = map[string]struct{}{
	correlationIDField: {},
	"method":           {},
	"path":             {},
	"status_code":      {},
	"duration_ms":      {},
	"error":            {},
	"chart":            {},
	"dataset_id":       {},
	"source":           {},
	"stack_trace":      {},
}

func keepField(key string) bool {
	if !IsDevelopment() {
		return true
	}
	_, ok := developmentFields[key]
	return ok || strings.HasPrefix(key, "selection_")
}

func (l *logger) WithField(key string, value interface{}) Logger {
	if !keepField(key) {
		return l
	}
	return &logger{entry: l.entry.WithField(key, value)}
}

func (l *logger) WithFields(fields Fields) Logger {
	kept := make(logrus.Fields, len(fields))
	for k, v := range fields {
		if keepField(k) {
			kept[k] = v
		}
	}
	if len(kept) == 0 {
		return l
	}
	return &logger{entry: l.entry.WithFields(kept)}
}

func (l *logger) WithError(err error) Logger {
	return &logger{entry: l.entry.WithError(err)}
}

func (l *logger) Debug(args ...interface{}) { l.entry.Debug(args...) }
func (l *logger) Info(args ...interface{})  { l.entry.Info(args...) }
func (l *logger) Warn(args ...interface{})  { l.entry.Warn(args...) }
func (l *logger) Error(args ...interface{}) { l.entry.Error(args...) }

func (l *logger) Warnf(format string, args ...interface{}) {
	l.entry.Warnf(format, args...)
}

// WithCorrelationID adiciona um ID de correlação ao contexto
func WithCorrelationID(ctx context.Context) (context.Context, string) {
	correlationID := uuid.New().String()
	return context.WithValue(ctx, CorrelationIDKey, correlationID), correlationID
}

// GetCorrelationID obtém o ID de correlação do contexto
func GetCorrelationID(ctx context.Context) string {
	if correlationID, ok := ctx.Value(CorrelationIDKey).(string); ok {
		return correlationID
	}
	return ""
}

// ForContext retorna L com o ID de correlação da requisição, quando houver
func ForContext(ctx context.Context) Logger {
	if id := GetCorrelationID(ctx); id != "" {
		return L.WithField(correlationIDField, id)
	}
	return L
}
