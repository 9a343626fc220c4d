package routes

import (
	"github.com/rudraprotapchakraborty/hotel-management-server/auth"
	"github.com/rudraprotapchakraborty/hotel-management-server/carts"
	"github.com/rudraprotapchakraborty/hotel-management-server/meals"
	"github.com/rudraprotapchakraborty/hotel-management-server/memberships"
	"github.com/rudraprotapchakraborty/hotel-management-server/middleware"
	"github.com/rudraprotapchakraborty/hotel-management-server/pay"
	"github.com/rudraprotapchakraborty/hotel-management-server/ratelim"
	"github.com/rudraprotapchakraborty/hotel-management-server/requests"
	"github.com/rudraprotapchakraborty/hotel-management-server/reviews"
	"github.com/rudraprotapchakraborty/hotel-management-server/users"

	"github.com/julienschmidt/httprouter"
)

func AddAuthRoutes(router *httprouter.Router, rl *ratelim.RateLimiter, h *auth.Handler) {
	router.POST("/jwt", rl.Limit(h.IssueToken))
}

func AddUserRoutes(router *httprouter.Router, rl *ratelim.RateLimiter, a *middleware.Auth, h *users.Handler) {
	router.GET("/users", a.Authenticate(a.VerifyAdmin(h.GetUsers)))
	// catch-all: /users/:email and /users/admin/:email, see users.GetUserSubtree
	router.GET("/users/*rest", a.Authenticate(h.GetUserSubtree))
	router.POST("/users", rl.Limit(h.CreateUser))
	router.PATCH("/users/admin/:id", a.Authenticate(a.VerifyAdmin(h.PromoteUser)))
	router.DELETE("/users/:id", a.Authenticate(a.VerifyAdmin(h.DeleteUser)))
}

func AddMealRoutes(router *httprouter.Router, rl *ratelim.RateLimiter, a *middleware.Auth, h *meals.Handler) {
	router.GET("/meal", h.GetMeals)
	router.GET("/meal/:id", h.GetMeal)
	router.POST("/meal", rl.Limit(a.Authenticate(a.VerifyAdmin(h.CreateMeal))))
	router.PATCH("/meal/:id", a.Authenticate(a.VerifyAdmin(h.UpdateMeal)))
	router.DELETE("/meal/:id", a.Authenticate(a.VerifyAdmin(h.DeleteMeal)))
}

func AddReviewsRoutes(router *httprouter.Router, h *reviews.Handler) {
	router.GET("/reviews", h.GetReviews)
}

func AddCartRoutes(router *httprouter.Router, rl *ratelim.RateLimiter, h *carts.Handler) {
	router.GET("/carts", h.GetCart)
	router.POST("/carts", rl.Limit(h.AddToCart))
	router.DELETE("/carts/:id", h.DeleteCartItem)
}

func AddMembershipRoutes(router *httprouter.Router, h *memberships.Handler) {
	router.GET("/membership", h.GetMemberships)
	router.GET("/membership/:id", h.GetMembership)
}

func AddRequestRoutes(router *httprouter.Router, rl *ratelim.RateLimiter, a *middleware.Auth, h *requests.Handler) {
	router.POST("/requests", rl.Limit(a.Authenticate(h.CreateRequest)))
	router.GET("/requests", a.Authenticate(h.GetRequests))
}

func AddPayRoutes(router *httprouter.Router, rl *ratelim.RateLimiter, a *middleware.Auth, h *pay.Handler) {
	router.GET("/payments/:email", a.Authenticate(h.GetPayments))
	router.POST("/create-payment-intent", rl.Limit(a.Authenticate(h.CreatePaymentIntent)))
	router.POST("/payments", rl.Limit(a.Authenticate(h.RecordPayment)))
}
