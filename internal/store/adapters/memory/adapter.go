// Package memory implementa un adapter en memoria para store.
//
// Pensado para desarrollo y tests: los datos viven mientras viva el proceso.
// Cada repositorio protege su mapa con un RWMutex, así Save, DeleteByID y
// ExistsByID son atómicos por id. La secuencia exists→delete de los casos de
// uso no lo es.
package memory

import (
	"context"

	"github.com/dropDatabas3/mantenimiento/internal/domain/repository"
	"github.com/dropDatabas3/mantenimiento/internal/store"
)

func init() {
	store.RegisterAdapter(&memoryAdapter{})
}

type memoryAdapter struct{}

func (a *memoryAdapter) Name() string { return "memory" }

// Connect retorna una conexión nueva y vacía en cada llamada.
func (a *memoryAdapter) Connect(_ context.Context, _ store.AdapterConfig) (store.AdapterConnection, error) {
	return NewConnection(), nil
}

// Connection agrupa los repositorios en memoria.
type Connection struct {
	categories *CategoryRepo
	products   *ProductRepo
	users      *UserRepo
}

// NewConnection crea una conexión con repositorios vacíos.
func NewConnection() *Connection {
	return &Connection{
		categories: NewCategoryRepo(),
		products:   NewProductRepo(),
		users:      NewUserRepo(),
	}
}

func (c *Connection) Name() string               { return "memory" }
func (c *Connection) Ping(context.Context) error { return nil }
func (c *Connection) Close() error               { return nil }

func (c *Connection) Categories() repository.CategoryRepository { return c.categories }
func (c *Connection) Products() repository.ProductRepository    { return c.products }
func (c *Connection) Users() repository.UserRepository          { return c.users }
