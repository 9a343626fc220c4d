package reviews

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/rudraprotapchakraborty/hotel-management-server/db"
	"github.com/rudraprotapchakraborty/hotel-management-server/models"
	"github.com/rudraprotapchakraborty/hotel-management-server/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type Handler struct {
	reviews *mongo.Collection
}

func NewHandler(database *db.Database) *Handler {
	return &Handler{reviews: database.ReviewsCollection}
}

// GetReviews returns every review document. GET /reviews.
func (h *Handler) GetReviews(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	reviews, err := utils.FindAndDecode[models.Review](ctx, h.reviews, bson.M{})
	if err != nil {
		log.Println("GetReviews Find error:", err)
		utils.RespondWithAppError(w, utils.NewError(utils.KindInternal, "Failed to retrieve reviews"))
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, reviews)
}
