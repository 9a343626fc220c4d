package memberships

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/rudraprotapchakraborty/hotel-management-server/db"
	"github.com/rudraprotapchakraborty/hotel-management-server/models"
	"github.com/rudraprotapchakraborty/hotel-management-server/rdx"
	"github.com/rudraprotapchakraborty/hotel-management-server/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const listCacheKey = "memberships:all"

type Handler struct {
	memberships *mongo.Collection
	cache       *rdx.Cache
}

func NewHandler(database *db.Database, cache *rdx.Cache) *Handler {
	return &Handler{memberships: database.MembershipCollection, cache: cache}
}

// GetMemberships lists the membership catalog. The collection is seeded
// out of band and never mutated here, so the cached copy only ages out.
// GET /membership.
func (h *Handler) GetMemberships(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if cached, err := h.cache.RdxGet(listCacheKey); err == nil && cached != "" {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(cached))
		return
	}

	memberships, err := utils.FindAndDecode[models.Membership](ctx, h.memberships, bson.M{})
	if err != nil {
		log.Println("GetMemberships Find error:", err)
		utils.RespondWithAppError(w, utils.NewError(utils.KindInternal, err.Error()))
		return
	}

	if data, err := json.Marshal(memberships); err == nil {
		h.cache.RdxSet(listCacheKey, string(data))
	}

	utils.RespondWithJSON(w, http.StatusOK, memberships)
}

// GetMembership fetches one catalog entry by id. GET /membership/:id.
func (h *Handler) GetMembership(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.RespondWithAppError(w, utils.NewError(utils.KindBadRequest, "Invalid membership id"))
		return
	}

	var membership models.Membership
	err = h.memberships.FindOne(r.Context(), bson.M{"_id": id}).Decode(&membership)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithAppError(w, utils.NewError(utils.KindNotFound, "Membership not found"))
		return
	}
	if err != nil {
		utils.RespondWithAppError(w, utils.NewError(utils.KindInternal, err.Error()))
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, membership)
}
