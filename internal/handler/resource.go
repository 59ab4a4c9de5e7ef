// internal/handler/resource.go
package handler

import (
	"context"
	"net/http"
)

// crudRepository is the shape every entity repository exposes. M is the
// row type, C and U the create and update payloads.
type crudRepository[M, C, U any] interface {
	List(ctx context.Context) ([]M, error)
	Get(ctx context.Context, id uint) (*M, error)
	Create(ctx context.Context, in C) (*M, error)
	Update(ctx context.Context, id uint, in U) (*M, error)
	Delete(ctx context.Context, id uint) error
}

// Resource serves the five CRUD endpoints for one entity family. The
// families share request and response handling end to end; only the
// repository, the display name, and the create presence message differ.
type Resource[M, C, U any] struct {
	repo crudRepository[M, C, U]

	// name appears in "<name> not found" responses for bad route ids.
	name string

	// requiredMsg is returned when a create payload is missing required
	// fields, e.g. "Please provide organization name".
	requiredMsg string
}

func NewResource[M, C, U any](repo crudRepository[M, C, U], name, requiredMsg string) *Resource[M, C, U] {
	return &Resource[M, C, U]{repo: repo, name: name, requiredMsg: requiredMsg}
}

func (h *Resource[M, C, U]) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.repo.List(r.Context())
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithList(w, len(rows), rows)
}

func (h *Resource[M, C, U]) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, h.name)
	if !ok {
		return
	}
	row, err := h.repo.Get(r.Context(), id)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithData(w, http.StatusOK, row)
}

func (h *Resource[M, C, U]) Create(w http.ResponseWriter, r *http.Request) {
	var in C
	if !decodeBody(w, r, &in) {
		return
	}
	if err := validate.Struct(in); err != nil {
		respondWithError(w, http.StatusBadRequest, h.requiredMsg)
		return
	}
	row, err := h.repo.Create(r.Context(), in)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithData(w, http.StatusCreated, row)
}

func (h *Resource[M, C, U]) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, h.name)
	if !ok {
		return
	}
	var in U
	if !decodeBody(w, r, &in) {
		return
	}
	row, err := h.repo.Update(r.Context(), id, in)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithData(w, http.StatusOK, row)
}

func (h *Resource[M, C, U]) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, h.name)
	if !ok {
		return
	}
	if err := h.repo.Delete(r.Context(), id); err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithData(w, http.StatusOK, struct{}{})
}
