package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service implements the five catalog operations over a Store. It is
// stateless after construction; every call is single-attempt and fail-fast.
type Service struct {
	Store Store
	Log   *zap.Logger

	// Now is the timestamp source; nil means time.Now.
	Now func() time.Time
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}

func (s *Service) logError(msg string, err error, fields ...zap.Field) {
	if s.Log != nil {
		s.Log.Error(msg, append(fields, zap.Error(err))...)
	}
}

// List returns every product in the catalog. An empty table is an empty
// slice, never an error.
func (s *Service) List(ctx context.Context) ([]Product, *Error) {
	products, err := s.Store.Scan(ctx)
	if err != nil {
		s.logError("list products failed", err)
		return nil, internalErr("Error al listar productos", err)
	}
	if products == nil {
		products = []Product{}
	}
	return products, nil
}

// Get returns the product with the given id verbatim.
func (s *Service) Get(ctx context.Context, id string) (Product, *Error) {
	if id == "" {
		return Product{}, validationErr("ID del producto requerido")
	}

	p, ok, err := s.Store.Get(ctx, id)
	if err != nil {
		s.logError("get product failed", err, zap.String("id", id))
		return Product{}, internalErr("Error al obtener producto", err)
	}
	if !ok {
		return Product{}, notFoundErr("Producto no encontrado")
	}
	return p, nil
}

// Create persists a new product. Only presence of name and price is checked;
// description, category and image_url default to empty strings.
func (s *Service) Create(ctx context.Context, in ProductInput) (Product, *Error) {
	if in.Name == nil || in.Price == nil {
		return Product{}, validationErr("Nombre y precio son requeridos")
	}

	now := s.now()
	p := Product{
		ID:          uuid.NewString(),
		Name:        *in.Name,
		Description: in.Description,
		Price:       float64(*in.Price),
		Category:    in.Category,
		Stock:       in.Stock,
		ImageURL:    in.ImageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.Store.Put(ctx, p); err != nil {
		s.logError("create product failed", err, zap.String("id", p.ID))
		return Product{}, internalErr("Error al crear producto", err)
	}
	return p, nil
}

// Update applies the patch to an existing product. The existence read and
// the write are two round-trips with no transaction between them;
// last-write-wins is accepted. updated_at is always refreshed, even for an
// empty patch.
func (s *Service) Update(ctx context.Context, id string, patch ProductPatch) (Product, *Error) {
	if id == "" {
		return Product{}, validationErr("ID del producto requerido")
	}

	p, ok, err := s.Store.Get(ctx, id)
	if err != nil {
		s.logError("update read failed", err, zap.String("id", id))
		return Product{}, internalErr("Error al actualizar producto", err)
	}
	if !ok {
		return Product{}, notFoundErr("Producto no encontrado")
	}

	patch.Apply(&p)
	p.UpdatedAt = s.now()

	if err := s.Store.Put(ctx, p); err != nil {
		s.logError("update write failed", err, zap.String("id", id))
		return Product{}, internalErr("Error al actualizar producto", err)
	}
	return p, nil
}

// Delete removes the product unconditionally. Deleting an id that does not
// exist still succeeds.
func (s *Service) Delete(ctx context.Context, id string) *Error {
	if id == "" {
		return validationErr("ID del producto requerido")
	}

	if err := s.Store.Delete(ctx, id); err != nil {
		s.logError("delete product failed", err, zap.String("id", id))
		return internalErr("Error al eliminar producto", err)
	}
	return nil
}
