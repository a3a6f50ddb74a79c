package http

import (
	"net/http"

	"github.com/MKhiriev/client-keeper/internal/utils"
	"github.com/MKhiriev/client-keeper/models"
)

func (h *Handler) listClients(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrMissingUserID)
		return
	}

	clients, err := h.services.ClientsService.List(r.Context(), ownerID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if clients == nil {
		clients = []models.Client{}
	}
	writeJSON(w, r, http.StatusOK, clients)
}

func (h *Handler) getClient(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrMissingUserID)
		return
	}

	client, err := h.services.ClientsService.Get(r.Context(), ownerID, pathParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, client)
}

func (h *Handler) getClientByEmail(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrMissingUserID)
		return
	}

	client, err := h.services.ClientsService.GetByEmail(r.Context(), ownerID, pathParam(r, "email"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, client)
}

func (h *Handler) createClient(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrMissingUserID)
		return
	}

	var data models.ClientData
	if err := decodeJSON(r, &data); err != nil {
		writeError(w, r, err)
		return
	}

	client, err := h.services.ClientsService.Create(r.Context(), ownerID, data)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, client)
}

func (h *Handler) replaceClient(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrMissingUserID)
		return
	}

	var data models.ClientData
	if err := decodeJSON(r, &data); err != nil {
		writeError(w, r, err)
		return
	}

	client, err := h.services.ClientsService.Replace(r.Context(), ownerID, pathParam(r, "id"), data)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, client)
}

func (h *Handler) patchClient(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrMissingUserID)
		return
	}

	var patch models.ClientPatch
	if err := decodeJSON(r, &patch); err != nil {
		writeError(w, r, err)
		return
	}

	client, err := h.services.ClientsService.Patch(r.Context(), ownerID, pathParam(r, "id"), patch)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, client)
}

func (h *Handler) deleteClient(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrMissingUserID)
		return
	}

	msg, err := h.services.ClientsService.Delete(r.Context(), ownerID, pathParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, msg)
}
