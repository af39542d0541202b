package logger

import (
	"time"

	"go.uber.org/zap"
)

// =================================================================================
// HTTP
// =================================================================================

func RequestID(v string) zap.Field { return zap.String("request_id", v) }

func Method(v string) zap.Field { return zap.String("method", v) }

func Path(v string) zap.Field { return zap.String("path", v) }

// Route es el patrón chi que resolvió el request (ej: /products/{id}).
func Route(v string) zap.Field { return zap.String("route", v) }

func Status(v int) zap.Field { return zap.Int("status", v) }

func Duration(v time.Duration) zap.Field { return zap.Duration("duration", v) }

func Bytes(v int) zap.Field { return zap.Int("bytes", v) }

func ClientIP(v string) zap.Field { return zap.String("client_ip", v) }

func UserAgent(v string) zap.Field { return zap.String("user_agent", v) }

// ErrorCode es el código de AppError devuelto al cliente.
func ErrorCode(v string) zap.Field { return zap.String("error_code", v) }

// =================================================================================
// NEGOCIO
// =================================================================================

// Username identifica al sujeto autenticado. Nunca loguear contraseñas.
func Username(v string) zap.Field { return zap.String("username", v) }

func Role(v string) zap.Field { return zap.String("role", v) }

func UserID(v string) zap.Field { return zap.String("user_id", v) }

func ProductID(v string) zap.Field { return zap.String("product_id", v) }

func CategoryID(v string) zap.Field { return zap.String("category_id", v) }

// =================================================================================
// SISTEMA
// =================================================================================

// Component: módulo (ej: "product", "auth", "pg").
func Component(v string) zap.Field { return zap.String("component", v) }

func Op(v string) zap.Field { return zap.String("op", v) }

// Layer: "handler", "usecase", "repository", "middleware".
func Layer(v string) zap.Field { return zap.String("layer", v) }

func Err(err error) zap.Field { return zap.Error(err) }

func Count(v int) zap.Field { return zap.Int("count", v) }

func String(key, v string) zap.Field { return zap.String(key, v) }
