package memory

import (
	"context"
	"sort"
	"sync"

	"breed-registry/internal/domain/breeds"
)

// breedRepo es el adapter de dev/tests. Un solo mutex hace que Vote sea
// atómico igual que el upsert de Postgres.
type breedRepo struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]breeds.Breed
	byName map[string]int64
}

func NewBreedRepo() breeds.Repository {
	return &breedRepo{
		nextID: 1,
		byID:   make(map[int64]breeds.Breed),
		byName: make(map[string]int64),
	}
}

func (r *breedRepo) List(ctx context.Context) ([]breeds.Breed, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]breeds.Breed, 0, len(r.byID))
	for _, b := range r.byID {
		out = append(out, b)
	}

	// votes desc, id asc para empates (igual que el ORDER BY de Postgres)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Votes != out[j].Votes {
			return out[i].Votes > out[j].Votes
		}
		return out[i].ID < out[j].ID
	})

	return out, nil
}

func (r *breedRepo) GetByID(ctx context.Context, id int64) (breeds.Breed, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.byID[id]
	if !ok {
		return breeds.Breed{}, breeds.ErrNotFound
	}
	return b, nil
}

func (r *breedRepo) Vote(ctx context.Context, name string, imageURL *string) (breeds.Breed, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if id, ok := r.byName[name]; ok {
		b := r.byID[id]
		b.Votes++
		r.byID[id] = b
		return b, nil
	}

	b := breeds.Breed{
		ID:       r.nextID,
		Name:     name,
		ImageURL: cloneString(imageURL),
	}
	r.nextID++
	r.byID[b.ID] = b
	r.byName[name] = b.ID
	return b, nil
}

func (r *breedRepo) DeleteByID(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.byID[id]
	if !ok {
		return breeds.ErrNotFound
	}
	delete(r.byID, id)
	delete(r.byName, b.Name)
	return nil
}

// DeleteAll no reinicia nextID, igual que una secuencia SERIAL.
func (r *breedRepo) DeleteAll(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := int64(len(r.byID))
	r.byID = make(map[int64]breeds.Breed)
	r.byName = make(map[string]int64)
	return n, nil
}

// copia para que el caller no pueda mutar lo guardado
func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
