package server

import "go.uber.org/zap"

// WebSocketLogger provides structured logging for realtime channel events.
type WebSocketLogger struct {
	logger *zap.Logger
}

// NewWebSocketLogger creates a new realtime channel logger.
func NewWebSocketLogger() *WebSocketLogger {
	return &WebSocketLogger{
		logger: zap.L().With(zap.String("component", "websocket")),
	}
}

// Info logs an info level event.
func (l *WebSocketLogger) Info(event string, clientID string, fields ...zap.Field) {
	allFields := append([]zap.Field{
		zap.String("event", event),
		zap.String("client_id", clientID),
	}, fields...)
	l.logger.Info("websocket_event", allFields...)
}

// Warn logs a warning level event.
func (l *WebSocketLogger) Warn(event string, clientID string, fields ...zap.Field) {
	allFields := append([]zap.Field{
		zap.String("event", event),
		zap.String("client_id", clientID),
	}, fields...)
	l.logger.Warn("websocket_warning", allFields...)
}

// Error logs an error level event.
func (l *WebSocketLogger) Error(event string, clientID string, err error, fields ...zap.Field) {
	allFields := append([]zap.Field{
		zap.String("event", event),
		zap.String("client_id", clientID),
		zap.Error(err),
	}, fields...)
	l.logger.Error("websocket_error", allFields...)
}
