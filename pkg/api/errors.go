package api

import (
	"encoding/json"
	"fmt"
	"net/http"
)

type Error struct {
	err  string
	code int
}

var (
	NotFound            = Error{err: "Session not found", code: http.StatusNotFound}
	BadRequest          = Error{err: "Invalid form", code: http.StatusBadRequest}
	Conflict            = Error{err: "Not available on the current screen", code: http.StatusConflict}
	InternalServerError = Error{err: "Something went wrong", code: http.StatusInternalServerError}
)

func SendError(w http.ResponseWriter, err Error) {
	body, _ := json.Marshal(map[string]string{"error": err.err})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(err.code)
	fmt.Fprint(w, string(body))
}

func sendJSON(w http.ResponseWriter, code int, v any) {
	resp, err := json.Marshal(v)
	if err != nil {
		SendError(w, InternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	fmt.Fprintln(w, string(resp))
}
