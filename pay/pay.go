package pay

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/rudraprotapchakraborty/hotel-management-server/db"
	"github.com/rudraprotapchakraborty/hotel-management-server/models"
	"github.com/rudraprotapchakraborty/hotel-management-server/mq"
	"github.com/rudraprotapchakraborty/hotel-management-server/stripe"
	"github.com/rudraprotapchakraborty/hotel-management-server/utils"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Handler covers payment history, intent creation, and checkout.
type Handler struct {
	payments *mongo.Collection
	carts    *mongo.Collection
	adapter  *stripe.Adapter
	events   *mq.Emitter
}

func NewHandler(database *db.Database, adapter *stripe.Adapter, events *mq.Emitter) *Handler {
	return &Handler{
		payments: database.PaymentCollection,
		carts:    database.CartCollection,
		adapter:  adapter,
		events:   events,
	}
}

// GetPayments lists the caller's payment history. Callers may only read
// their own. GET /payments/:email.
func (h *Handler) GetPayments(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	email := ps.ByName("email")
	if email != utils.GetEmailFromRequest(r) {
		utils.RespondWithAppError(w, utils.NewError(utils.KindForbidden, "Unauthorized request"))
		return
	}

	payments, err := utils.FindAndDecode[models.Payment](ctx, h.payments, bson.M{"email": email})
	if err != nil {
		log.Println("GetPayments Find error:", err)
		utils.RespondWithAppError(w, utils.NewError(utils.KindInternal, err.Error()))
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, payments)
}

// CreatePaymentIntent converts the price to cents and asks the provider
// for an intent. POST /create-payment-intent.
func (h *Handler) CreatePaymentIntent(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var body struct {
		Price float64 `json:"price"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithAppError(w, utils.NewError(utils.KindBadRequest, "Invalid JSON payload"))
		return
	}
	if body.Price <= 0 {
		utils.RespondWithAppError(w, utils.NewError(utils.KindBadRequest, "Price must be positive"))
		return
	}

	intent, err := h.adapter.CreateIntent(stripe.AmountInCents(body.Price))
	if err != nil {
		log.Println("CreatePaymentIntent adapter error:", err)
		utils.RespondWithAppError(w, utils.NewError(utils.KindInternal, err.Error()))
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"clientSecret": intent.ClientSecret})
}

// CartObjectIDs converts the hex cart ids from the request body,
// dropping anything that is not a valid ObjectID.
func CartObjectIDs(hexIDs []string) []primitive.ObjectID {
	ids := make([]primitive.ObjectID, 0, len(hexIDs))
	for _, hex := range hexIDs {
		id, err := primitive.ObjectIDFromHex(hex)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// RecordPayment inserts the payment document, then clears the carts it
// names in one bulk delete. The two writes are not transactional: if
// the delete fails the payment stays recorded with its cart ids intact,
// and the response carries deletedCount so the client can see it.
// POST /payments.
func (h *Handler) RecordPayment(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var payment models.Payment
	if err := json.NewDecoder(r.Body).Decode(&payment); err != nil {
		utils.RespondWithAppError(w, utils.NewError(utils.KindBadRequest, "Invalid JSON payload"))
		return
	}
	if payment.Email == "" {
		utils.RespondWithAppError(w, utils.NewError(utils.KindBadRequest, "Email is required"))
		return
	}

	if payment.TransactionID == "" {
		payment.TransactionID = uuid.New().String()
	}
	if payment.Status == "" {
		payment.Status = "pending"
	}
	payment.Date = time.Now()

	res, err := h.payments.InsertOne(ctx, payment)
	if err != nil {
		log.Println("RecordPayment InsertOne error:", err)
		utils.RespondWithAppError(w, utils.NewError(utils.KindInternal, err.Error()))
		return
	}

	var deleted int64
	if ids := CartObjectIDs(payment.CartIDs); len(ids) > 0 {
		delRes, err := h.carts.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
		if err != nil {
			log.Println("RecordPayment DeleteMany error:", err)
		} else {
			deleted = delRes.DeletedCount
		}
	}

	h.events.Emit(ctx, "payment-recorded", models.Index{
		EntityType: "payment", EntityId: payment.TransactionID, Method: "POST",
	})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"insertedId":   res.InsertedID,
		"deletedCount": deleted,
	})
}
