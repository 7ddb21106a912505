package routes

import (
	"vastra/auth"
	"vastra/cart"
	"vastra/catalog"
	"vastra/checkout"
	"vastra/middleware"
	"vastra/orders"
	"vastra/ratelim"

	"github.com/julienschmidt/httprouter"
)

// Deps bundles the handlers wired up in main.
type Deps struct {
	Auth     *auth.Handler
	Catalog  *catalog.Handler
	Cart     *cart.Handler
	Coupons  *cart.CouponHandler
	Checkout *checkout.Handler
	Orders   *orders.Handler
}

func AddAuthRoutes(router *httprouter.Router, rl *ratelim.RateLimiter, d *Deps) {
	router.POST("/api/auth/login", rl.Limit(d.Auth.Login))
	router.POST("/api/auth/logout", d.Auth.Logout)
	router.GET("/api/auth/session", d.Auth.Session)
}

func AddCatalogRoutes(router *httprouter.Router, _ *ratelim.RateLimiter, d *Deps) {
	router.GET("/api/products", d.Catalog.GetProducts)
	router.GET("/api/products/:slug", d.Catalog.GetProduct)
	router.GET("/api/categories", d.Catalog.GetCategories)
	router.GET("/api/price-buckets", d.Catalog.GetPriceBuckets)
}

func AddCartRoutes(router *httprouter.Router, _ *ratelim.RateLimiter, d *Deps) {
	router.GET("/api/cart", d.Cart.GetCart)
	router.POST("/api/cart/items", d.Cart.AddItem)
	router.PUT("/api/cart/items/:itemkey", d.Cart.SetQuantity)
	router.DELETE("/api/cart/items/:itemkey", d.Cart.RemoveItem)
	router.DELETE("/api/cart", d.Cart.ClearCart)

	router.POST("/api/coupons/validate", d.Coupons.ValidateCoupon)
}

func AddCheckoutRoutes(router *httprouter.Router, rl *ratelim.RateLimiter, d *Deps) {
	router.GET("/api/checkout", d.Checkout.GetState)
	router.POST("/api/checkout/address", d.Checkout.SubmitAddress)
	router.POST("/api/checkout/payment", rl.Limit(d.Checkout.SubmitPayment))
	router.POST("/api/checkout/edit-address", d.Checkout.EditAddress)
}

func AddOrderRoutes(router *httprouter.Router, _ *ratelim.RateLimiter, d *Deps) {
	// bearer tokens work here too, for API clients without a cookie jar
	router.GET("/api/orders", middleware.OptionalAuth(d.Orders.ListOrders))
	router.GET("/api/orders/:orderid", middleware.OptionalAuth(d.Orders.GetOrder))
	router.GET("/api/orders/:orderid/receipt", middleware.OptionalAuth(d.Orders.Receipt))
}
