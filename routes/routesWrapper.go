package routes

import (
	"vastra/ratelim"

	"github.com/julienschmidt/httprouter"
)

func RoutesWrapper(router *httprouter.Router, rl *ratelim.RateLimiter, d *Deps) {
	AddAuthRoutes(router, rl, d)
	AddCatalogRoutes(router, rl, d)
	AddCartRoutes(router, rl, d)
	AddCheckoutRoutes(router, rl, d)
	AddOrderRoutes(router, rl, d)
}
