package breeds

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"breed-registry/internal/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const (
	statusSuccess = "success"
	statusFail    = "fail"

	msgBreedNotFound = "Could not find a breed with that id identifier"
	msgInvalidID     = "id must be an integer"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/breeds", func(br chi.Router) {
		br.Get("/", listBreedsHandler(svc))
		br.Post("/", voteBreedHandler(svc))
		br.Delete("/", deleteAllBreedsHandler(svc))

		br.Get("/{id}", getBreedHandler(svc))
		br.Delete("/{id}", deleteBreedHandler(svc))
	})
}

// envelope es el wrapper {status, data} de todas las respuestas.
type envelope struct {
	Status string `json:"status"`
	Data   any    `json:"data,omitempty"`
}

type breedResponse struct {
	ID       int64   `json:"id"`
	Breed    string  `json:"breed"`
	ImageURL *string `json:"image_url"`
	Votes    int     `json:"votes"`
}

type breedsListData struct {
	BreedsList []breedResponse `json:"breedsList"`
}

type voteRequest struct {
	Breed    string  `json:"breed"`
	ImageURL *string `json:"image_url"`
}

// listBreedsHandler godoc
// @Summary Listar razas
// @Description Devuelve todas las razas ordenadas por votos (desc).
// @Tags breeds
// @Produce json
// @Success 200 {object} envelope{data=breedsListData}
// @Failure 500 {object} envelope
// @Router /breeds [get]
func listBreedsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			internalError(w, r, "list breeds", err)
			return
		}

		out := make([]breedResponse, 0, len(items))
		for _, b := range items {
			out = append(out, toBreedResponse(b))
		}

		writeJSON(w, http.StatusOK, envelope{
			Status: statusSuccess,
			Data:   breedsListData{BreedsList: out},
		})
	}
}

// getBreedHandler godoc
// @Summary Obtener raza por id
// @Tags breeds
// @Produce json
// @Param id path int true "ID de la raza"
// @Success 200 {object} envelope{data=breedResponse}
// @Failure 400 {object} envelope "id no numérico"
// @Failure 404 {object} envelope "Could not find a breed with that id identifier"
// @Router /breeds/{id} [get]
func getBreedHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}

		b, err := svc.GetByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				writeNotFound(w)
				return
			}
			internalError(w, r, "get breed", err)
			return
		}

		writeJSON(w, http.StatusOK, envelope{Status: statusSuccess, Data: toBreedResponse(b)})
	}
}

// voteBreedHandler godoc
// @Summary Votar (o crear) una raza
// @Description Si la raza existe suma un voto; si no, la crea con 0 votos. Operación atómica. image_url solo se usa al crear.
// @Tags breeds
// @Accept json
// @Produce json
// @Param payload body voteRequest true "Raza e imagen"
// @Success 200 {object} envelope{data=breedResponse}
// @Failure 400 {object} envelope "invalid json / breed requerido"
// @Router /breeds [post]
func voteBreedHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req voteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, envelope{
				Status: statusFail,
				Data:   map[string]string{"body": "invalid json"},
			})
			return
		}

		b, err := svc.Vote(r.Context(), VoteInput{
			Breed:    req.Breed,
			ImageURL: req.ImageURL,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				writeJSON(w, http.StatusBadRequest, envelope{
					Status: statusFail,
					Data:   map[string]string{"breed": "breed is required"},
				})
				return
			}
			internalError(w, r, "vote breed", err)
			return
		}

		middleware.Logger(r.Context()).Debug("breed voted",
			zap.Int64("breed_id", b.ID),
			zap.Int("votes", b.Votes),
		)

		writeJSON(w, http.StatusOK, envelope{Status: statusSuccess, Data: toBreedResponse(b)})
	}
}

// deleteBreedHandler godoc
// @Summary Borrar raza por id
// @Tags breeds
// @Produce json
// @Param id path int true "ID de la raza"
// @Success 200 {object} envelope
// @Failure 400 {object} envelope "id no numérico"
// @Failure 404 {object} envelope "Could not find a breed with that id identifier"
// @Router /breeds/{id} [delete]
func deleteBreedHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}

		if err := svc.DeleteByID(r.Context(), id); err != nil {
			if errors.Is(err, ErrNotFound) {
				writeNotFound(w)
				return
			}
			internalError(w, r, "delete breed", err)
			return
		}

		writeJSON(w, http.StatusOK, envelope{Status: statusSuccess})
	}
}

// deleteAllBreedsHandler godoc
// @Summary Borrar todas las razas
// @Tags breeds
// @Produce json
// @Success 200 {object} envelope
// @Router /breeds [delete]
func deleteAllBreedsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n, err := svc.DeleteAll(r.Context())
		if err != nil {
			internalError(w, r, "delete all breeds", err)
			return
		}

		middleware.Logger(r.Context()).Info("breeds deleted", zap.Int64("rows", n))
		writeJSON(w, http.StatusOK, envelope{Status: statusSuccess})
	}
}

// parseID rechaza ids no enteros con 400 antes de tocar la DB.
func parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, envelope{
			Status: statusFail,
			Data:   map[string]string{"id": msgInvalidID},
		})
		return 0, false
	}
	return id, true
}

func writeNotFound(w http.ResponseWriter) {
	writeJSON(w, http.StatusNotFound, envelope{
		Status: statusFail,
		Data:   map[string]string{"id": msgBreedNotFound},
	})
}

func internalError(w http.ResponseWriter, r *http.Request, op string, err error) {
	middleware.Logger(r.Context()).Error(op+" failed", zap.Error(err))
	middleware.WriteInternalError(w)
}

func toBreedResponse(b Breed) breedResponse {
	return breedResponse{
		ID:       b.ID,
		Breed:    b.Name,
		ImageURL: b.ImageURL,
		Votes:    b.Votes,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
