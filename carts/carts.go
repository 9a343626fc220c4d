package carts

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/rudraprotapchakraborty/hotel-management-server/db"
	"github.com/rudraprotapchakraborty/hotel-management-server/models"
	"github.com/rudraprotapchakraborty/hotel-management-server/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Handler struct {
	carts *mongo.Collection
}

func NewHandler(database *db.Database) *Handler {
	return &Handler{carts: database.CartCollection}
}

// AddToCart inserts a cart item with a price snapshot. No auth; the
// storefront adds items before the visitor signs in. POST /carts.
func (h *Handler) AddToCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var item models.CartItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		log.Println("AddToCart decode error:", err)
		utils.RespondWithAppError(w, utils.NewError(utils.KindBadRequest, "Invalid JSON payload"))
		return
	}

	if item.MealID == "" && item.Name == "" {
		utils.RespondWithAppError(w, utils.NewError(utils.KindBadRequest, "Missing or invalid fields"))
		return
	}
	item.AddedAt = time.Now()

	res, err := h.carts.InsertOne(ctx, item)
	if err != nil {
		log.Println("AddToCart InsertOne error:", err)
		utils.RespondWithAppError(w, utils.NewError(utils.KindInternal, err.Error()))
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"insertedId": res.InsertedID})
}

// GetCart returns the cart items for the email in the query string.
// GET /carts?email=.
func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	email := r.URL.Query().Get("email")
	filter := bson.M{"email": email}

	items, err := utils.FindAndDecode[models.CartItem](ctx, h.carts, filter)
	if err != nil {
		log.Println("GetCart Find error:", err)
		utils.RespondWithAppError(w, utils.NewError(utils.KindInternal, "Could not retrieve cart"))
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, items)
}

// DeleteCartItem removes one cart item by id. There is deliberately no
// ownership check against the caller. DELETE /carts/:id.
func (h *Handler) DeleteCartItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.RespondWithAppError(w, utils.NewError(utils.KindBadRequest, "Invalid cart id"))
		return
	}

	res, err := h.carts.DeleteOne(r.Context(), bson.M{"_id": id})
	if err != nil {
		log.Println("DeleteCartItem DeleteOne error:", err)
		utils.RespondWithAppError(w, utils.NewError(utils.KindInternal, err.Error()))
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"deletedCount": res.DeletedCount})
}
