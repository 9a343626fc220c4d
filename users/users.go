package users

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
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
	users *mongo.Collection
}

func NewHandler(database *db.Database) *Handler {
	return &Handler{users: database.UserCollection}
}

// GetUsers returns every user document. Admin only. GET /users.
func (h *Handler) GetUsers(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	users, err := utils.FindAndDecode[models.User](ctx, h.users, bson.M{})
	if err != nil {
		log.Println("GetUsers Find error:", err)
		utils.RespondWithAppError(w, utils.NewError(utils.KindInternal, err.Error()))
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, users)
}

// GetUserSubtree dispatches the GET /users/ subtree. The router's radix
// tree cannot hold a static "admin" segment next to the email wildcard,
// so both shapes are registered as one catch-all and split here:
//
//	/users/:email       -> user document by email
//	/users/admin/:email -> admin probe
func (h *Handler) GetUserSubtree(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	rest := strings.Trim(ps.ByName("rest"), "/")
	parts := strings.Split(rest, "/")

	switch {
	case len(parts) == 1 && parts[0] != "":
		h.getUserByEmail(w, r, parts[0])
	case len(parts) == 2 && parts[0] == "admin" && parts[1] != "":
		h.checkAdmin(w, r, parts[1])
	default:
		utils.RespondWithAppError(w, utils.NewError(utils.KindNotFound, "Not found"))
	}
}

// getUserByEmail returns a single user. Callers may only read their own
// record.
func (h *Handler) getUserByEmail(w http.ResponseWriter, r *http.Request, email string) {
	if email != utils.GetEmailFromRequest(r) {
		utils.RespondWithAppError(w, utils.NewError(utils.KindForbidden, "Unauthorized request"))
		return
	}

	var user models.User
	err := h.users.FindOne(r.Context(), bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithAppError(w, utils.NewError(utils.KindNotFound, "User not found"))
		return
	}
	if err != nil {
		utils.RespondWithAppError(w, utils.NewError(utils.KindInternal, err.Error()))
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, user)
}

// checkAdmin reports whether the caller's account has the admin role.
// A missing user document reads as not-admin, not as an error.
func (h *Handler) checkAdmin(w http.ResponseWriter, r *http.Request, email string) {
	if email != utils.GetEmailFromRequest(r) {
		utils.RespondWithAppError(w, utils.NewError(utils.KindForbidden, "Unauthorized request"))
		return
	}

	admin := false
	var user models.User
	err := h.users.FindOne(r.Context(), bson.M{"email": email}).Decode(&user)
	if err == nil {
		admin = user.IsAdmin()
	} else if err != mongo.ErrNoDocuments {
		utils.RespondWithAppError(w, utils.NewError(utils.KindInternal, err.Error()))
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]bool{"admin": admin})
}

// CreateUser inserts a user unless the email is already registered.
// POST /users, open to unauthenticated sign-in flows.
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil || user.Email == "" {
		utils.RespondWithAppError(w, utils.NewError(utils.KindBadRequest, "Email is required"))
		return
	}

	count, err := h.users.CountDocuments(ctx, bson.M{"email": user.Email})
	if err != nil {
		log.Println("CreateUser CountDocuments error:", err)
		utils.RespondWithAppError(w, utils.NewError(utils.KindInternal, err.Error()))
		return
	}
	if count > 0 {
		utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "User already exists"})
		return
	}

	if user.Role == "" {
		user.Role = "user"
	}
	user.CreatedAt = time.Now()

	res, err := h.users.InsertOne(ctx, user)
	if err != nil {
		// The unique email index can still race two concurrent sign-ins.
		if mongo.IsDuplicateKeyError(err) {
			utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "User already exists"})
			return
		}
		log.Println("CreateUser InsertOne error:", err)
		utils.RespondWithAppError(w, utils.NewError(utils.KindInternal, err.Error()))
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"insertedId": res.InsertedID})
}

// PromoteUser sets the role field to admin. Admin only.
// PATCH /users/admin/:id.
func (h *Handler) PromoteUser(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.RespondWithAppError(w, utils.NewError(utils.KindBadRequest, "Invalid user id"))
		return
	}

	res, err := h.users.UpdateOne(r.Context(),
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"role": models.RoleAdmin}},
	)
	if err != nil {
		log.Println("PromoteUser UpdateOne error:", err)
		utils.RespondWithAppError(w, utils.NewError(utils.KindInternal, err.Error()))
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"modifiedCount": res.ModifiedCount})
}

// DeleteUser removes a user document by id. Admin only.
// DELETE /users/:id.
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.RespondWithAppError(w, utils.NewError(utils.KindBadRequest, "Invalid user id"))
		return
	}

	res, err := h.users.DeleteOne(r.Context(), bson.M{"_id": id})
	if err != nil {
		log.Println("DeleteUser DeleteOne error:", err)
		utils.RespondWithAppError(w, utils.NewError(utils.KindInternal, err.Error()))
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"deletedCount": res.DeletedCount})
}
