package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rudraprotapchakraborty/hotel-management-server/globals"
	"github.com/rudraprotapchakraborty/hotel-management-server/models"
	"github.com/rudraprotapchakraborty/hotel-management-server/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const tokenTTL = time.Hour

// JWT claims
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Auth verifies bearer tokens and gates admin routes. The user lookup
// for the admin gate costs one database round trip per protected call.
type Auth struct {
	secret []byte
	users  *mongo.Collection
}

func NewAuth(secret []byte, users *mongo.Collection) *Auth {
	return &Auth{secret: secret, users: users}
}

// MintToken signs the presented claims with a one hour expiry.
func (a *Auth) MintToken(payload map[string]interface{}) (string, error) {
	claims := jwt.MapClaims{}
	for k, v := range payload {
		claims[k] = v
	}
	now := time.Now()
	claims["iat"] = jwt.NewNumericDate(now)
	claims["exp"] = jwt.NewNumericDate(now.Add(tokenTTL))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.secret)
}

// Authenticate rejects requests without a valid bearer token and puts
// the caller's email on the request context.
func (a *Auth) Authenticate(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		tokenString := r.Header.Get("Authorization")
		if tokenString == "" {
			utils.RespondWithAppError(w, utils.NewError(utils.KindUnauthorized, "Missing token"))
			return
		}

		if len(tokenString) < 8 || !strings.HasPrefix(tokenString, "Bearer ") {
			utils.RespondWithAppError(w, utils.NewError(utils.KindUnauthorized, "Invalid token format"))
			return
		}

		claims, err := a.ValidateJWT(tokenString)
		if err != nil {
			utils.RespondWithAppError(w, utils.NewError(utils.KindUnauthorized, "Invalid token"))
			return
		}

		ctx := context.WithValue(r.Context(), globals.EmailKey, claims.Email)
		next(w, r.WithContext(ctx), ps)
	}
}

// VerifyAdmin loads the caller's user document and rejects anyone whose
// role is not admin. Must run after Authenticate.
func (a *Auth) VerifyAdmin(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		email := utils.GetEmailFromRequest(r)
		if email == "" {
			utils.RespondWithAppError(w, utils.NewError(utils.KindUnauthorized, "Missing token"))
			return
		}

		var user models.User
		err := a.users.FindOne(r.Context(), bson.M{"email": email}).Decode(&user)
		if err != nil || !user.IsAdmin() {
			utils.RespondWithAppError(w, utils.NewError(utils.KindForbidden, "Forbidden"))
			return
		}

		next(w, r, ps)
	}
}

// ValidateJWT parses "Bearer <token>" and returns the decoded claims.
func (a *Auth) ValidateJWT(tokenString string) (*Claims, error) {
	if len(tokenString) < 8 {
		return nil, fmt.Errorf("invalid token")
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString[7:], claims, func(token *jwt.Token) (any, error) {
		return a.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("unauthorized: %w", err)
	}
	return claims, nil
}
