package meals

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/rudraprotapchakraborty/hotel-management-server/db"
	"github.com/rudraprotapchakraborty/hotel-management-server/models"
	"github.com/rudraprotapchakraborty/hotel-management-server/mq"
	"github.com/rudraprotapchakraborty/hotel-management-server/rdx"
	"github.com/rudraprotapchakraborty/hotel-management-server/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Handler struct {
	meals  *mongo.Collection
	cache  *rdx.Cache
	events *mq.Emitter
}

func NewHandler(database *db.Database, cache *rdx.Cache, events *mq.Emitter) *Handler {
	return &Handler{meals: database.MealCollection, cache: cache, events: events}
}

// BuildFilter combines the present criteria with logical AND. The price
// clause is always present; everything else is omitted when absent.
func BuildFilter(opts utils.QueryOptions) bson.M {
	filter := bson.M{
		"price": bson.M{"$gte": opts.MinPrice, "$lte": opts.MaxPrice},
	}
	if opts.Search != "" {
		filter["name"] = bson.M{"$regex": opts.Search, "$options": "i"}
	}
	if opts.Category != "" {
		filter["category"] = opts.Category
	}
	if opts.Upcoming != nil {
		filter["upcoming"] = *opts.Upcoming
	}
	return filter
}

// GetMeals lists meals with search, filters, and pagination. Results
// come back in natural collection order. GET /meal.
func (h *Handler) GetMeals(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	opts := utils.ParseQueryOptions(r)
	filter := BuildFilter(opts)
	findOpts := options.Find().SetSkip(opts.Skip()).SetLimit(int64(opts.Limit))

	meals, err := utils.FindAndDecode[models.Meal](ctx, h.meals, filter, findOpts)
	if err != nil {
		log.Println("GetMeals Find error:", err)
		utils.RespondWithAppError(w, utils.NewError(utils.KindInternal, err.Error()))
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, meals)
}

// GetMeal fetches one meal by id, read-through cached. GET /meal/:id.
func (h *Handler) GetMeal(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	idHex := ps.ByName("id")
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		utils.RespondWithAppError(w, utils.NewError(utils.KindBadRequest, "Invalid meal id"))
		return
	}

	cacheKey := fmt.Sprintf("meal:%s", idHex)
	if cached, err := h.cache.RdxGet(cacheKey); err == nil && cached != "" {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(cached))
		return
	}

	var meal models.Meal
	err = h.meals.FindOne(r.Context(), bson.M{"_id": id}).Decode(&meal)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithAppError(w, utils.NewError(utils.KindNotFound, "Meal not found"))
		return
	}
	if err != nil {
		utils.RespondWithAppError(w, utils.NewError(utils.KindInternal, err.Error()))
		return
	}

	if mealJSON, err := json.Marshal(meal); err == nil {
		h.cache.RdxSet(cacheKey, string(mealJSON))
	}

	utils.RespondWithJSON(w, http.StatusOK, meal)
}

// CreateMeal inserts a new meal. Admin only. POST /meal.
func (h *Handler) CreateMeal(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	var meal models.Meal
	if err := json.NewDecoder(r.Body).Decode(&meal); err != nil {
		utils.RespondWithAppError(w, utils.NewError(utils.KindBadRequest, "Invalid JSON: "+err.Error()))
		return
	}
	if meal.Name == "" {
		utils.RespondWithAppError(w, utils.NewError(utils.KindBadRequest, "Name is required"))
		return
	}
	if meal.Price < 0 {
		utils.RespondWithAppError(w, utils.NewError(utils.KindBadRequest, "Price must be non-negative"))
		return
	}

	res, err := h.meals.InsertOne(ctx, meal)
	if err != nil {
		log.Println("CreateMeal InsertOne error:", err)
		utils.RespondWithAppError(w, utils.NewError(utils.KindInternal, err.Error()))
		return
	}

	h.events.Emit(ctx, "meal-created", models.Index{
		EntityType: "meal", EntityId: fmt.Sprint(res.InsertedID), Method: "POST",
	})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"insertedId": res.InsertedID})
}

// BuildUpdate translates a MealUpdate into the $set/$inc/$push clauses
// of a single UpdateOne.
func BuildUpdate(body models.MealUpdate) bson.M {
	set := bson.M{}
	if body.Name != nil {
		set["name"] = *body.Name
	}
	if body.Category != nil {
		set["category"] = *body.Category
	}
	if body.Price != nil {
		set["price"] = *body.Price
	}
	if body.Recipe != nil {
		set["recipe"] = *body.Recipe
	}
	if body.Image != nil {
		set["image"] = *body.Image
	}
	if body.Upcoming != nil {
		set["upcoming"] = *body.Upcoming
	}

	update := bson.M{}
	if len(set) > 0 {
		update["$set"] = set
	}
	if body.Likes != 0 {
		update["$inc"] = bson.M{"likes": body.Likes}
	}
	if body.Review != nil {
		update["$push"] = bson.M{"reviews": *body.Review}
	}
	return update
}

// UpdateMeal applies a partial update; field replacement, a likes
// increment, and a review append may all land in the same call.
// Admin only. PATCH /meal/:id.
func (h *Handler) UpdateMeal(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	idHex := ps.ByName("id")
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		utils.RespondWithAppError(w, utils.NewError(utils.KindBadRequest, "Invalid meal id"))
		return
	}

	var body models.MealUpdate
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithAppError(w, utils.NewError(utils.KindBadRequest, "Invalid JSON: "+err.Error()))
		return
	}

	update := BuildUpdate(body)
	if len(update) == 0 {
		utils.RespondWithAppError(w, utils.NewError(utils.KindBadRequest, "No updatable fields in request"))
		return
	}

	res, err := h.meals.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		log.Println("UpdateMeal UpdateOne error:", err)
		utils.RespondWithAppError(w, utils.NewError(utils.KindInternal, err.Error()))
		return
	}
	if res.MatchedCount == 0 {
		utils.RespondWithAppError(w, utils.NewError(utils.KindNotFound, "Meal not found"))
		return
	}

	h.cache.RdxDel(fmt.Sprintf("meal:%s", idHex))
	h.events.Emit(ctx, "meal-updated", models.Index{
		EntityType: "meal", EntityId: idHex, Method: "PATCH",
	})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"modifiedCount": res.ModifiedCount})
}

// DeleteMeal removes a meal. Admin only. DELETE /meal/:id.
func (h *Handler) DeleteMeal(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	idHex := ps.ByName("id")
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		utils.RespondWithAppError(w, utils.NewError(utils.KindBadRequest, "Invalid meal id"))
		return
	}

	res, err := h.meals.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		log.Println("DeleteMeal DeleteOne error:", err)
		utils.RespondWithAppError(w, utils.NewError(utils.KindInternal, err.Error()))
		return
	}

	h.cache.RdxDel(fmt.Sprintf("meal:%s", idHex))
	h.events.Emit(ctx, "meal-deleted", models.Index{
		EntityType: "meal", EntityId: idHex, Method: "DELETE",
	})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"deletedCount": res.DeletedCount})
}
