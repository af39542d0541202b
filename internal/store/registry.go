// Package store provee el registry de adaptadores de almacenamiento.
//
// Cada adapter se registra en su init() y se elige por nombre desde la
// config (storage.driver). El binario importa los adapters que soporta:
//
//	import (
//	    _ "github.com/dropDatabas3/mantenimiento/internal/store/adapters/memory"
//	    _ "github.com/dropDatabas3/mantenimiento/internal/store/adapters/pg"
//	)
package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/dropDatabas3/mantenimiento/internal/domain/repository"
)

// Adapter representa un adaptador capaz de crear repositorios.
type Adapter interface {
	// Name retorna el nombre del adapter (ej: "memory", "postgres").
	Name() string

	// Connect establece conexión con el almacenamiento.
	Connect(ctx context.Context, cfg AdapterConfig) (AdapterConnection, error)
}

// AdapterConnection representa una conexión activa.
type AdapterConnection interface {
	Name() string
	Ping(ctx context.Context) error
	Close() error

	// ─── Repositorios ───

	Categories() repository.CategoryRepository
	Products() repository.ProductRepository
	Users() repository.UserRepository
}

// MigratableConnection es opcional: la implementan las conexiones SQL.
type MigratableConnection interface {
	MigrationExecutor() SQLExecutor
}

// AdapterConfig configuración para conectar a un almacenamiento.
type AdapterConfig struct {
	// Name del adapter: "memory", "postgres"
	Name string

	// DSN connection string (ignorado por memory)
	DSN string

	// Pool settings
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// ─── Registry Global ───

var (
	registryMu sync.RWMutex
	adapters   = make(map[string]Adapter)
)

// RegisterAdapter registra un adapter en el registry global.
// Llamar en init() de cada adapter.
func RegisterAdapter(a Adapter) {
	registryMu.Lock()
	defer registryMu.Unlock()

	name := a.Name()
	if _, exists := adapters[name]; exists {
		panic(fmt.Sprintf("adapter: %q already registered", name))
	}
	adapters[name] = a
}

// GetAdapter obtiene un adapter por nombre.
func GetAdapter(name string) (Adapter, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	a, ok := adapters[name]
	return a, ok
}

// ListAdapters retorna los nombres registrados, ordenados.
func ListAdapters() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(adapters))
	for name := range adapters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// OpenAdapter abre una conexión usando el adapter especificado en la config.
func OpenAdapter(ctx context.Context, cfg AdapterConfig) (AdapterConnection, error) {
	a, ok := GetAdapter(cfg.Name)
	if !ok {
		return nil, fmt.Errorf("adapter: %q not registered (available: %v)", cfg.Name, ListAdapters())
	}
	return a.Connect(ctx, cfg)
}
