package auth

import (
	"encoding/json"
	"net/http"

	"github.com/rudraprotapchakraborty/hotel-management-server/middleware"
	"github.com/rudraprotapchakraborty/hotel-management-server/utils"

	"github.com/julienschmidt/httprouter"
)

// Handler mints access tokens for the client.
type Handler struct {
	auth *middleware.Auth
}

func NewHandler(auth *middleware.Auth) *Handler {
	return &Handler{auth: auth}
}

// IssueToken signs whatever claims object the client presents and
// returns it as a bearer token valid for one hour. POST /jwt.
func (h *Handler) IssueToken(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var payload map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondWithAppError(w, utils.NewError(utils.KindBadRequest, "Invalid JSON payload"))
		return
	}

	token, err := h.auth.MintToken(payload)
	if err != nil {
		utils.RespondWithAppError(w, utils.NewError(utils.KindInternal, "Failed to sign token"))
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"token": token})
}
