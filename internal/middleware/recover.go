package middleware

import (
	"encoding/json"
	"net/http"
	"runtime/debug"

	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Recover reemplaza a chi/middleware.Recoverer: además de no tumbar el
// proceso, responde con el mismo envelope 500 que los handlers.
// Si el handler ya escribió headers o body, solo loguea: no se puede
// cambiar el status a mitad de respuesta.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww, ok := w.(chimw.WrapResponseWriter)
		if !ok {
			ww = chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		}

		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			written := ww.Status() != 0 || ww.BytesWritten() > 0
			Logger(r.Context()).Error("panic recovered",
				zap.Any("panic", rec),
				zap.Bool("response_started", written),
				zap.ByteString("stack", debug.Stack()),
			)
			if !written {
				WriteInternalError(ww)
			}
		}()

		next.ServeHTTP(ww, r)
	})
}

// WriteInternalError escribe el 500 uniforme. No expone el error original.
func WriteInternalError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status": "fail",
		"data":   map[string]string{"message": "internal server error"},
	})
}
