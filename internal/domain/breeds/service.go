package breeds

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List devuelve las razas ordenadas por votos (desc).
func (s *Service) List(ctx context.Context) ([]Breed, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = make([]Breed, 0)
	}
	return items, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (Breed, error) {
	return s.repo.GetByID(ctx, id)
}

type VoteInput struct {
	Breed    string
	ImageURL *string
}

// Vote: si la raza ya existe suma 1 voto, si no la crea.
// El match es por el texto exacto de breed (sin normalizar); image_url
// solo se usa al crear.
func (s *Service) Vote(ctx context.Context, in VoteInput) (Breed, error) {
	if strings.TrimSpace(in.Breed) == "" {
		return Breed{}, ErrInvalidInput
	}
	return s.repo.Vote(ctx, in.Breed, in.ImageURL)
}

func (s *Service) DeleteByID(ctx context.Context, id int64) error {
	return s.repo.DeleteByID(ctx, id)
}

func (s *Service) DeleteAll(ctx context.Context) (int64, error) {
	return s.repo.DeleteAll(ctx)
}
