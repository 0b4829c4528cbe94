package handler

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"truedoc-admin/internal/usecase"
	"truedoc-admin/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

var errInvalidQuery = errors.New("invalid query parameter")

func uuidVar(r *http.Request, name string) (uuid.UUID, error) {
	return uuid.Parse(mux.Vars(r)[name])
}

// queryInt returns 0 for a missing key so the paginator can apply its default
func queryInt(q url.Values, key string) (int, error) {
	v := q.Get(key)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errInvalidQuery
	}
	return n, nil
}

func pageParams(q url.Values) (page, limit int, err error) {
	if page, err = queryInt(q, "page"); err != nil {
		return 0, 0, err
	}
	if limit, err = queryInt(q, "limit"); err != nil {
		return 0, 0, err
	}
	return page, limit, nil
}

// failure writes the response for errors shared by every usecase.
// fallback is the message of a plain 500.
func failure(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrLookupFailed):
		response.ServiceUnavailable(w, "Data store is unavailable, please retry")
	case errors.Is(err, usecase.ErrPlansPartiallyReplaced):
		response.InternalServerError(w, "Insurance plans were removed but the new selection could not be saved")
	default:
		response.InternalServerError(w, fallback)
	}
}
