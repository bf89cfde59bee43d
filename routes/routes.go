package routes

import (
	"net/http"

	"sartor/auth"
	"sartor/cart"
	"sartor/catalog"
	"sartor/imagefit"
	"sartor/lookbook"
	"sartor/middleware"
	"sartor/orderfeed"
	"sartor/orders"
	"sartor/ratelim"
	"sartor/recent"
	"sartor/whatsapp"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/productpic/*filepath", http.Dir("static/productpic"))
	router.ServeFiles("/static/lookbook/*filepath", http.Dir("static/lookbook"))
}

func AddAuthRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/auth/register", rl.Limit(auth.Register))
	router.POST("/api/auth/login", rl.Limit(auth.Login))
	router.POST("/api/auth/logout", middleware.Authenticate(auth.LogoutUser))
	router.POST("/api/auth/token/refresh", rl.Limit(middleware.Authenticate(auth.RefreshToken)))
}

func AddCatalogRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/products", catalog.GetProducts)
	router.GET("/api/products/:productid", catalog.GetProduct)
	router.POST("/api/products", rl.Limit(middleware.AdminOnly(catalog.CreateProduct)))
	router.PUT("/api/products/:productid", middleware.AdminOnly(catalog.EditProduct))
	router.DELETE("/api/products/:productid", middleware.AdminOnly(catalog.DeleteProduct))
	router.POST("/api/products/:productid/image", rl.Limit(middleware.AdminOnly(imagefit.UploadProductImage)))
}

func AddCartRoutes(router *httprouter.Router, carts *cart.Manager, rl *ratelim.RateLimiter) {
	router.GET("/api/cart", carts.GetCart)
	router.POST("/api/cart", rl.Limit(carts.AddToCart))
	router.PUT("/api/cart", rl.Limit(carts.UpdateCartItem))
	router.DELETE("/api/cart/:productid", carts.RemoveCartItem)
	router.DELETE("/api/cart", carts.ClearCart)
}

func AddOrderRoutes(router *httprouter.Router, api *orders.API, rl *ratelim.RateLimiter) {
	router.POST("/api/orders", rl.Limit(api.CreateOrder))
	router.GET("/api/track/:ordernumber", rl.Limit(api.TrackOrder))
	router.GET("/api/orders", middleware.AdminOnly(api.GetOrders))
	router.PUT("/api/orders/:orderid/status", middleware.AdminOnly(api.UpdateStatus))
	router.DELETE("/api/orders/:orderid", middleware.AdminOnly(api.DeleteOrder))
	router.GET("/api/orders/:orderid/invoice", middleware.AdminOnly(api.Invoice))
}

func AddWhatsAppRoutes(router *httprouter.Router, api *whatsapp.API, rl *ratelim.RateLimiter) {
	router.GET("/api/whatsapp/product/:productid", rl.Limit(api.ProductLink))
	router.GET("/api/whatsapp/checkout", rl.Limit(api.CheckoutLink))
	router.GET("/api/whatsapp/checkout/qr", rl.Limit(api.CheckoutQR))
}

func AddRecentRoutes(router *httprouter.Router) {
	router.POST("/api/recent/:productid", recent.RecordView)
	router.GET("/api/recent", recent.GetRecent)
}

func AddLookbookRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/lookbook", lookbook.GetPosts)
	router.POST("/api/lookbook", rl.Limit(middleware.AdminOnly(lookbook.CreatePost)))
	router.PUT("/api/lookbook/:postid", middleware.AdminOnly(lookbook.EditPost))
	router.DELETE("/api/lookbook/:postid", middleware.AdminOnly(lookbook.DeletePost))
}

func AddOrderFeedRoutes(router *httprouter.Router, hub *orderfeed.Hub) {
	router.GET("/ws/orders", orderfeed.WebSocketHandler(hub))
}
