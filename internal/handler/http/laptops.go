// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-equip-keeper/internal/logger"
	"github.com/MKhiriev/go-equip-keeper/internal/utils"
	"github.com/MKhiriev/go-equip-keeper/models"
)

func (h *Handler) listLaptops(w http.ResponseWriter, r *http.Request) {
	laptops, err := h.services.LaptopService.ListLaptops(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("listing laptops failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, laptops, http.StatusOK)
}

func (h *Handler) createLaptop(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var input models.LaptopInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteMessage(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	laptop, err := h.services.LaptopService.CreateLaptop(r.Context(), input)
	if err != nil {
		log.Err(err).Msg("creating laptop failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, laptop, http.StatusCreated)
}

func (h *Handler) updateLaptop(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	id := chi.URLParam(r, "id")

	var input models.LaptopInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteMessage(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	laptop, err := h.services.LaptopService.UpdateLaptop(r.Context(), id, input)
	if err != nil {
		log.Err(err).Str("laptop_id", id).Msg("updating laptop failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, laptop, http.StatusOK)
}

func (h *Handler) deleteLaptop(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.services.LaptopService.DeleteLaptop(r.Context(), id); err != nil {
		logger.FromRequest(r).Err(err).Str("laptop_id", id).Msg("deleting laptop failed")
		writeError(w, err)
		return
	}

	logger.FromRequest(r).Info().Str("actor", actor(r)).Str("laptop_id", id).Msg("laptop deleted")
	utils.WriteMessage(w, "Laptop deleted successfully", http.StatusOK)
}

func (h *Handler) distributeLaptop(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.DistributeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteMessage(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	laptop, err := h.services.LaptopService.DistributeLaptop(r.Context(), req)
	if err != nil {
		log.Err(err).Str("laptop_id", req.LaptopID).Msg("distributing laptop failed")
		writeError(w, err)
		return
	}

	log.Info().Str("actor", actor(r)).Str("laptop_id", laptop.ID).Str("assignee", req.UserEmail).Msg("laptop distributed")
	utils.WriteJSON(w, models.LaptopResponse{Laptop: laptop, Message: "Laptop distributed successfully"}, http.StatusOK)
}

func (h *Handler) returnLaptop(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.ReturnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteMessage(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	laptop, err := h.services.LaptopService.ReturnLaptop(r.Context(), req)
	if err != nil {
		log.Err(err).Str("laptop_id", req.LaptopID).Msg("returning laptop failed")
		writeError(w, err)
		return
	}

	log.Info().Str("actor", actor(r)).Str("laptop_id", laptop.ID).Msg("laptop returned")
	utils.WriteJSON(w, models.LaptopResponse{Laptop: laptop, Message: "Laptop returned successfully"}, http.StatusOK)
}

// actor is the email of the authenticated caller, set by the auth middleware.
func actor(r *http.Request) string {
	email, _ := utils.GetUserEmailFromContext(r.Context())
	return email
}
