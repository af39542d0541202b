package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/dropDatabas3/mantenimiento/internal/domain/model"
	"github.com/dropDatabas3/mantenimiento/internal/domain/repository"
)

// table es un mapa id→entidad protegido por RWMutex. Conserva el orden de
// inserción para que FindAll sea estable.
type table[T any] struct {
	mu    sync.RWMutex
	rows  map[uuid.UUID]T
	order map[uuid.UUID]uint64
	seq   uint64
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: map[uuid.UUID]T{}, order: map[uuid.UUID]uint64{}}
}

func (t *table[T]) all() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	ids := make([]uuid.UUID, 0, len(t.rows))
	for id := range t.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return t.order[ids[i]] < t.order[ids[j]] })

	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, t.rows[id])
	}
	return out
}

func (t *table[T]) get(id uuid.UUID) (T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, repository.ErrNotFound
	}
	return v, nil
}

func (t *table[T]) exists(id uuid.UUID) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.rows[id]
	return ok
}

// putLocked requiere t.mu tomado en escritura.
func (t *table[T]) putLocked(id uuid.UUID, v T) {
	if _, ok := t.rows[id]; !ok {
		t.seq++
		t.order[id] = t.seq
	}
	t.rows[id] = v
}

func (t *table[T]) put(id uuid.UUID, v T) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.putLocked(id, v)
}

func (t *table[T]) remove(id uuid.UUID) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; !ok {
		return repository.ErrNotFound
	}
	delete(t.rows, id)
	delete(t.order, id)
	return nil
}

// ─── Categories ───

type CategoryRepo struct{ t *table[model.Category] }

func NewCategoryRepo() *CategoryRepo { return &CategoryRepo{t: newTable[model.Category]()} }

func (r *CategoryRepo) FindAll(ctx context.Context) ([]model.Category, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.t.all(), nil
}

func (r *CategoryRepo) FindByID(ctx context.Context, id uuid.UUID) (model.Category, error) {
	if err := ctx.Err(); err != nil {
		return model.Category{}, err
	}
	return r.t.get(id)
}

func (r *CategoryRepo) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return r.t.exists(id), nil
}

func (r *CategoryRepo) Save(ctx context.Context, c model.Category) (model.Category, error) {
	if err := ctx.Err(); err != nil {
		return model.Category{}, err
	}
	if c.ID() == uuid.Nil {
		c = c.WithID(uuid.New())
	}
	r.t.put(c.ID(), c)
	return c, nil
}

func (r *CategoryRepo) DeleteByID(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.t.remove(id)
}

// ─── Products ───

type ProductRepo struct{ t *table[model.Product] }

func NewProductRepo() *ProductRepo { return &ProductRepo{t: newTable[model.Product]()} }

func (r *ProductRepo) FindAll(ctx context.Context) ([]model.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.t.all(), nil
}

func (r *ProductRepo) FindByID(ctx context.Context, id uuid.UUID) (model.Product, error) {
	if err := ctx.Err(); err != nil {
		return model.Product{}, err
	}
	return r.t.get(id)
}

func (r *ProductRepo) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return r.t.exists(id), nil
}

func (r *ProductRepo) Save(ctx context.Context, p model.Product) (model.Product, error) {
	if err := ctx.Err(); err != nil {
		return model.Product{}, err
	}
	if p.ID() == uuid.Nil {
		p = p.WithID(uuid.New())
	}
	r.t.put(p.ID(), p)
	return p, nil
}

func (r *ProductRepo) DeleteByID(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.t.remove(id)
}

// ─── Users ───

// UserRepo mantiene además un índice username→id. La comparación de
// username es exacta (sensible a mayúsculas), igual que en postgres.
type UserRepo struct {
	t      *table[model.User]
	byName map[string]uuid.UUID // protegido por t.mu
}

func NewUserRepo() *UserRepo {
	return &UserRepo{t: newTable[model.User](), byName: map[string]uuid.UUID{}}
}

func (r *UserRepo) FindAll(ctx context.Context) ([]model.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.t.all(), nil
}

func (r *UserRepo) FindByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	if err := ctx.Err(); err != nil {
		return model.User{}, err
	}
	return r.t.get(id)
}

func (r *UserRepo) FindByUsername(ctx context.Context, username string) (model.User, error) {
	if err := ctx.Err(); err != nil {
		return model.User{}, err
	}
	username = strings.TrimSpace(username)

	r.t.mu.RLock()
	defer r.t.mu.RUnlock()
	id, ok := r.byName[username]
	if !ok {
		return model.User{}, repository.ErrNotFound
	}
	return r.t.rows[id], nil
}

func (r *UserRepo) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return r.t.exists(id), nil
}

// Save chequea la unicidad del username y escribe bajo el mismo lock.
func (r *UserRepo) Save(ctx context.Context, u model.User) (model.User, error) {
	if err := ctx.Err(); err != nil {
		return model.User{}, err
	}
	if u.ID() == uuid.Nil {
		u = u.WithID(uuid.New())
	}

	r.t.mu.Lock()
	defer r.t.mu.Unlock()

	if owner, ok := r.byName[u.Username()]; ok && owner != u.ID() {
		return model.User{}, repository.ErrConflict
	}
	if prev, ok := r.t.rows[u.ID()]; ok && prev.Username() != u.Username() {
		delete(r.byName, prev.Username())
	}
	r.byName[u.Username()] = u.ID()
	r.t.putLocked(u.ID(), u)
	return u, nil
}

func (r *UserRepo) DeleteByID(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.t.mu.Lock()
	defer r.t.mu.Unlock()

	prev, ok := r.t.rows[id]
	if !ok {
		return repository.ErrNotFound
	}
	delete(r.byName, prev.Username())
	delete(r.t.rows, id)
	delete(r.t.order, id)
	return nil
}
