package routes

import (
	"techzone/admin"
	"techzone/auth"
	"techzone/cart"
	"techzone/middleware"
	"techzone/orders"
	"techzone/products"
	"techzone/profile"
	"techzone/ratelim"
	"techzone/search"
	"techzone/wishlist"

	"github.com/julienschmidt/httprouter"
)

func AddAuthRoutes(router *httprouter.Router) {
	router.POST("/api/auth/register", ratelim.RateLimit(auth.Register))
	router.POST("/api/auth/login", ratelim.RateLimit(auth.Login))
	router.POST("/api/auth/logout", middleware.Authenticate(auth.LogoutUser))
	router.POST("/api/auth/token/refresh", ratelim.RateLimit(middleware.Authenticate(auth.RefreshToken)))
}

func AddProductRoutes(router *httprouter.Router) {
	router.GET("/api/products", ratelim.RateLimit(products.GetProducts))
	// The :id position doubles as the literal "slug" prefix; see
	// products.GetProductBySlug.
	router.GET("/api/products/:id", products.GetProductByID)
	router.GET("/api/products/:id/:slug", products.GetProductBySlug)

	router.POST("/api/products", middleware.AdminOnly(products.CreateProduct))
	router.PUT("/api/products/:id", middleware.AdminOnly(products.UpdateProduct))
}

func AddCartRoutes(router *httprouter.Router) {
	router.GET("/api/cart", middleware.Authenticate(cart.GetCart))
	router.POST("/api/cart", middleware.Authenticate(cart.AddToCart))
	router.PUT("/api/cart/:id", middleware.Authenticate(cart.UpdateQuantityHandler))
	router.DELETE("/api/cart/:id", middleware.Authenticate(cart.RemoveFromCart))
	router.DELETE("/api/cart", middleware.Authenticate(cart.ClearCart))
}

func AddWishlistRoutes(router *httprouter.Router) {
	router.GET("/api/wishlist", middleware.Authenticate(wishlist.GetWishlist))
	router.POST("/api/wishlist/toggle", middleware.Authenticate(wishlist.ToggleWishlist))
}

func AddOrderRoutes(router *httprouter.Router) {
	// Checkout works for guests too; auth is attached when present.
	router.POST("/api/orders", ratelim.RateLimit(middleware.OptionalAuth(orders.PlaceOrder)))
	router.GET("/api/user/orders", middleware.Authenticate(orders.GetUserOrders))
	router.GET("/api/user/orders/:id/receipt", middleware.Authenticate(orders.OrderReceipt))
}

func AddAdminRoutes(router *httprouter.Router) {
	router.GET("/api/admin/orders", middleware.AdminOnly(admin.GetAllOrders))
	router.PUT("/api/admin/orders/:id/status", middleware.AdminOnly(admin.UpdateOrderStatus))
}

func AddProfileRoutes(router *httprouter.Router) {
	router.GET("/api/user/profile", middleware.Authenticate(profile.GetProfile))
	router.PUT("/api/user/profile", middleware.Authenticate(profile.EditProfile))
}

func AddSearchRoutes(router *httprouter.Router) {
	router.GET("/api/ac", search.Autocompleter)
}
