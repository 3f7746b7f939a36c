package breeds

import "context"

type Repository interface {
	List(ctx context.Context) ([]Breed, error)
	GetByID(ctx context.Context, id int64) (Breed, error)

	// Vote suma un voto si la raza existe o la crea con votes en default.
	// Debe ser atómico: dos votos concurrentes a una raza nueva dejan una sola fila.
	Vote(ctx context.Context, name string, imageURL *string) (Breed, error)

	DeleteByID(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context) (int64, error)
}
