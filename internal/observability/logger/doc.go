// Package logger provee un logger Zap singleton con scoping por contexto.
//
//   - Singleton: una sola instancia global inicializada con Init().
//   - Context scoping: cada request lleva su logger con request_id,
//     method, path y, si hay identidad, username.
//   - Entornos: "dev" consola con colores, "prod" JSON, "test" descarta todo.
//
// Inicialización (una vez en main.go):
//
//	logger.Init(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})
//	defer logger.Sync()
//
// En usecases y handlers:
//
//	log := logger.From(ctx).With(logger.Layer("usecase"), logger.Op("CreateProduct"))
//	log.Info("product created", logger.ProductID(id))
package logger
