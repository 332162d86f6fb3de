package handler

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/GrammoRPG_Go/internal/crud"
	"github.com/osse101/GrammoRPG_Go/internal/logger"
)

const paramID = "id"

// EntityHandlers serves the CRUD routes of one entity over a crud.Service
type EntityHandlers[E any, In any, ID comparable] struct {
	entity  string
	svc     crud.Service[E, In, ID]
	names   crud.NameLookup[E]
	parseID IDParser[ID]
}

// NewEntityHandlers creates handlers for entity. names may be nil, in which
// case the by-name route is not mounted.
func NewEntityHandlers[E any, In any, ID comparable](
	entity string,
	svc crud.Service[E, In, ID],
	names crud.NameLookup[E],
	parseID IDParser[ID],
) *EntityHandlers[E, In, ID] {
	return &EntityHandlers[E, In, ID]{entity: entity, svc: svc, names: names, parseID: parseID}
}

// Routes returns a router to mount under the entity's collection path
func (h *EntityHandlers[E, In, ID]) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.HandleList)
	r.Post("/", h.HandleCreate)
	if h.names != nil {
		r.Get("/by-name", h.HandleGetByName)
	}
	r.Route("/{"+paramID+"}", func(r chi.Router) {
		r.Get("/", h.HandleGet)
		r.Put("/", h.HandleUpdate)
		r.Delete("/", h.HandleDelete)
	})
	return r
}

func (h *EntityHandlers[E, In, ID]) HandleList(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.GetAll(r.Context())
	if err != nil {
		respondServiceError(w, r, h.entity, "List", err)
		return
	}
	if items == nil {
		items = []E{}
	}
	respondJSON(w, http.StatusOK, items)
}

func (h *EntityHandlers[E, In, ID]) HandleGetByName(w http.ResponseWriter, r *http.Request) {
	name, ok := GetQueryParam(r, w, "name")
	if !ok {
		return
	}
	found, err := h.names.GetByName(r.Context(), name)
	if err != nil {
		respondServiceError(w, r, h.entity, "Get by name", err)
		return
	}
	if found == nil {
		h.respondNotFound(w)
		return
	}
	respondJSON(w, http.StatusOK, found)
}

func (h *EntityHandlers[E, In, ID]) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	found, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, h.entity, "Get", err)
		return
	}
	if found == nil {
		h.respondNotFound(w)
		return
	}
	respondJSON(w, http.StatusOK, found)
}

func (h *EntityHandlers[E, In, ID]) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in In
	if err := DecodeAndValidateRequest(r, w, &in, "Create "+h.entity); err != nil {
		return
	}
	created, err := h.svc.Add(r.Context(), in)
	if err != nil {
		respondServiceError(w, r, h.entity, "Create", err)
		return
	}
	if created == nil {
		// inserted but not readable; treat as a storage inconsistency
		RespondError(w, http.StatusInternalServerError, ErrMsgGenericServerError)
		return
	}
	logger.FromContext(r.Context()).Debug("Entity created", "entity", h.entity)
	respondJSON(w, http.StatusCreated, created)
}

func (h *EntityHandlers[E, In, ID]) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	var in In
	if err := DecodeAndValidateRequest(r, w, &in, "Update "+h.entity); err != nil {
		return
	}
	updated, err := h.svc.Update(r.Context(), id, in)
	if err != nil {
		respondServiceError(w, r, h.entity, "Update", err)
		return
	}
	if updated == nil {
		h.respondNotFound(w)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

func (h *EntityHandlers[E, In, ID]) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	deleted, err := h.svc.Delete(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, h.entity, "Delete", err)
		return
	}
	if !deleted {
		h.respondNotFound(w)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *EntityHandlers[E, In, ID]) pathID(w http.ResponseWriter, r *http.Request) (ID, bool) {
	raw := chi.URLParam(r, paramID)
	id, err := h.parseID(raw)
	if err != nil {
		logger.FromContext(r.Context()).Warn("Invalid id", "entity", h.entity, "id", raw)
		RespondError(w, http.StatusBadRequest, ErrMsgInvalidID)
		var zero ID
		return zero, false
	}
	return id, true
}

func (h *EntityHandlers[E, In, ID]) respondNotFound(w http.ResponseWriter) {
	RespondError(w, http.StatusNotFound, fmt.Sprintf(ErrMsgNotFound, h.entity))
}
