package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-user-directory/internal/app"
	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/MKhiriev/go-user-directory/internal/utils"
	"github.com/MKhiriev/go-user-directory/models"
)

// listUsers answers a device pull with every user of the directory.
func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	users, err := h.services.DirectoryService.ListUsers(ctx)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listUsers").Msg("error listing users")
		http.Error(w, messageFromError(err), statusFromError(err))
		return
	}
	if users == nil {
		users = []models.RemoteUser{}
	}

	deviceID, _ := utils.GetDeviceIDFromContext(ctx)
	log.Info().Str("func", "*Handler.listUsers").Str("device_id", deviceID).Int("users", len(users)).Msg("users pulled")

	utils.WriteJSON(w, models.PullResponse{Users: users, Length: len(users)}, http.StatusOK)
}

func (h *Handler) provisionUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.ProvisionUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.provisionUser").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	user, err := h.services.DirectoryService.ProvisionUser(r.Context(), req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.provisionUser").Msg("error provisioning user")
		http.Error(w, messageFromError(err), statusFromError(err))
		return
	}

	utils.WriteJSON(w, user, http.StatusCreated)
}
