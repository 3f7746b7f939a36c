package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"breed-registry/internal/domain/breeds"
)

type BreedsRepo struct {
	db *sql.DB
}

func NewBreedsRepo(db *sql.DB) *BreedsRepo {
	return &BreedsRepo{db: db}
}

func (r *BreedsRepo) List(ctx context.Context) ([]breeds.Breed, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, breed, image_url, votes
		FROM breeds
		ORDER BY votes DESC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list breeds: %w", err)
	}
	defer rows.Close()

	out := make([]breeds.Breed, 0)
	for rows.Next() {
		b, err := scanBreed(rows)
		if err != nil {
			return nil, fmt.Errorf("scan breed: %w", err)
		}
		out = append(out, b)
	}

	return out, rows.Err()
}

func (r *BreedsRepo) GetByID(ctx context.Context, id int64) (breeds.Breed, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, breed, image_url, votes
		FROM breeds
		WHERE id = $1
	`, id)

	b, err := scanBreed(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return breeds.Breed{}, breeds.ErrNotFound
		}
		return breeds.Breed{}, fmt.Errorf("get breed %d: %w", id, err)
	}
	return b, nil
}

// Vote es un único upsert: el UNIQUE(breed) resuelve la carrera entre
// dos votos concurrentes a la misma raza nueva. Si ya existe, image_url
// no se pisa.
func (r *BreedsRepo) Vote(ctx context.Context, name string, imageURL *string) (breeds.Breed, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO breeds (breed, image_url)
		VALUES ($1, $2)
		ON CONFLICT (breed) DO UPDATE
		SET votes = breeds.votes + 1
		RETURNING id, breed, image_url, votes
	`, name, imageURL)

	b, err := scanBreed(row)
	if err != nil {
		return breeds.Breed{}, fmt.Errorf("vote breed %q: %w", name, err)
	}
	return b, nil
}

func (r *BreedsRepo) DeleteByID(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM breeds WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete breed %d: %w", id, err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return breeds.ErrNotFound
	}
	return nil
}

func (r *BreedsRepo) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM breeds`)
	if err != nil {
		return 0, fmt.Errorf("delete all breeds: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanBreed(s scanner) (breeds.Breed, error) {
	var b breeds.Breed
	var img sql.NullString
	if err := s.Scan(&b.ID, &b.Name, &img, &b.Votes); err != nil {
		return breeds.Breed{}, err
	}
	if img.Valid {
		s := img.String
		b.ImageURL = &s
	}
	return b, nil
}
