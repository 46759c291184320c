package httpx

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
)

// JSON writes v as JSON with the given status code. Encoding errors are
// dropped because the status line has already been sent.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// JSONError writes {"error": message}.
func JSONError(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}

// Created writes v with 201 and a Location header naming the new resource
// under the collection path of r.
func Created(w http.ResponseWriter, r *http.Request, id int64, v any) {
	w.Header().Set("Location", strings.TrimSuffix(r.URL.Path, "/")+"/"+strconv.FormatInt(id, 10))
	JSON(w, http.StatusCreated, v)
}

// NoContent writes an empty 204 response.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
