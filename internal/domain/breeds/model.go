package breeds

// Breed representa una fila de la tabla breeds.
// Breed (el nombre) es la clave natural usada por el voto.
type Breed struct {
	ID       int64
	Name     string
	ImageURL *string // nil = NULL
	Votes    int
}
