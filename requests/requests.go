package requests

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/rudraprotapchakraborty/hotel-management-server/db"
	"github.com/rudraprotapchakraborty/hotel-management-server/models"
	"github.com/rudraprotapchakraborty/hotel-management-server/mq"
	"github.com/rudraprotapchakraborty/hotel-management-server/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type Handler struct {
	requests *mongo.Collection
	events   *mq.Emitter
}

func NewHandler(database *db.Database, events *mq.Emitter) *Handler {
	return &Handler{requests: database.RequestCollection, events: events}
}

// CreateRequest appends a meal request. All four fields must be present
// and non-empty; nothing is persisted otherwise. POST /requests.
func (h *Handler) CreateRequest(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var req models.MealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithAppError(w, utils.NewError(utils.KindBadRequest, "Invalid JSON payload"))
		return
	}

	if req.Email == "" || req.MealName == "" || req.Image == "" || req.Time == "" {
		utils.RespondWithAppError(w, utils.NewError(utils.KindBadRequest, "email, mealName, image and time are required"))
		return
	}

	if req.Status == "" {
		req.Status = "pending"
	}
	req.CreatedAt = time.Now()

	res, err := h.requests.InsertOne(ctx, req)
	if err != nil {
		log.Println("CreateRequest InsertOne error:", err)
		utils.RespondWithAppError(w, utils.NewError(utils.KindInternal, err.Error()))
		return
	}

	h.events.Emit(ctx, "request-submitted", models.Index{
		EntityType: "request", EntityId: req.MealName, Method: "POST",
	})

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"insertedId": res.InsertedID})
}

// GetRequests returns the full append-only log. GET /requests.
func (h *Handler) GetRequests(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	reqs, err := utils.FindAndDecode[models.MealRequest](ctx, h.requests, bson.M{})
	if err != nil {
		log.Println("GetRequests Find error:", err)
		utils.RespondWithAppError(w, utils.NewError(utils.KindInternal, err.Error()))
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, reqs)
}
