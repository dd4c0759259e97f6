package routes

import (
	"emporia/auth"
	"emporia/blogs"
	"emporia/cart"
	"emporia/coupons"
	"emporia/enquiries"
	"emporia/middleware"
	"emporia/orders"
	"emporia/products"
	"emporia/ratelim"
	"emporia/taxonomy"
	"emporia/users"

	"github.com/julienschmidt/httprouter"
)

func AddAuthRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/auth/register", rl.Limit(auth.Register))
	router.POST("/api/auth/login", rl.Limit(auth.Login))
	router.POST("/api/auth/refresh", rl.Limit(auth.RefreshToken))
	router.POST("/api/auth/logout", auth.Logout)
}

func AddUserRoutes(router *httprouter.Router) {
	router.GET("/api/users", middleware.AdminOnly(users.GetUsers))
	router.GET("/api/users/:id", middleware.Authenticate(users.GetUser))
	router.PUT("/api/users", middleware.Authenticate(users.UpdateUser))
	router.DELETE("/api/users/:id", middleware.AdminOnly(users.DeleteUser))
	router.PUT("/api/users/:id/block", middleware.AdminOnly(users.BlockUser))
	router.PUT("/api/users/:id/unblock", middleware.AdminOnly(users.UnblockUser))
}

func AddProductRoutes(router *httprouter.Router) {
	router.POST("/api/products", middleware.AdminOnly(products.CreateProduct))
	router.GET("/api/products", products.GetProducts)
	router.GET("/api/products/:id", products.GetProduct)
	router.PUT("/api/products/:id", middleware.AdminOnly(products.UpdateProduct))
	router.DELETE("/api/products/:id", middleware.AdminOnly(products.DeleteProduct))

	// wishlist and ratings live on their own subtrees; httprouter does
	// not allow static siblings under /api/products/:id
	router.GET("/api/wishlist", middleware.Authenticate(users.GetWishlist))
	router.PUT("/api/wishlist", middleware.Authenticate(products.ToggleWishlist))
	router.PUT("/api/ratings", middleware.Authenticate(products.RateProduct))
}

func AddBlogRoutes(router *httprouter.Router) {
	router.POST("/api/blogs", middleware.AdminOnly(blogs.CreateBlog))
	router.GET("/api/blogs", middleware.OptionalAuth(blogs.GetBlogs))
	router.GET("/api/blogs/:id", middleware.OptionalAuth(blogs.GetBlog))
	router.PUT("/api/blogs/:id", middleware.AdminOnly(blogs.UpdateBlog))
	router.DELETE("/api/blogs/:id", middleware.AdminOnly(blogs.DeleteBlog))
	router.PUT("/api/blogs/:id/like", middleware.Authenticate(blogs.LikeBlog))
	router.PUT("/api/blogs/:id/dislike", middleware.Authenticate(blogs.DislikeBlog))
}

func AddTaxonomyRoutes(router *httprouter.Router) {
	router.POST("/api/categories", middleware.AdminOnly(taxonomy.CreateCategory))
	router.GET("/api/categories", taxonomy.GetCategories)
	router.GET("/api/categories/:id", taxonomy.GetCategory)
	router.PUT("/api/categories/:id", middleware.AdminOnly(taxonomy.UpdateCategory))
	router.DELETE("/api/categories/:id", middleware.AdminOnly(taxonomy.DeleteCategory))

	router.POST("/api/blog-categories", middleware.AdminOnly(taxonomy.CreateBlogCategory))
	router.GET("/api/blog-categories", taxonomy.GetBlogCategories)
	router.GET("/api/blog-categories/:id", taxonomy.GetBlogCategory)
	router.PUT("/api/blog-categories/:id", middleware.AdminOnly(taxonomy.UpdateBlogCategory))
	router.DELETE("/api/blog-categories/:id", middleware.AdminOnly(taxonomy.DeleteBlogCategory))

	router.POST("/api/brands", middleware.AdminOnly(taxonomy.CreateBrand))
	router.GET("/api/brands", taxonomy.GetBrands)
	router.GET("/api/brands/:id", taxonomy.GetBrand)
	router.PUT("/api/brands/:id", middleware.AdminOnly(taxonomy.UpdateBrand))
	router.DELETE("/api/brands/:id", middleware.AdminOnly(taxonomy.DeleteBrand))

	router.POST("/api/colors", middleware.AdminOnly(taxonomy.CreateColor))
	router.GET("/api/colors", taxonomy.GetColors)
	router.GET("/api/colors/:id", taxonomy.GetColor)
	router.PUT("/api/colors/:id", middleware.AdminOnly(taxonomy.UpdateColor))
	router.DELETE("/api/colors/:id", middleware.AdminOnly(taxonomy.DeleteColor))
}

func AddCouponRoutes(router *httprouter.Router) {
	router.POST("/api/coupons", middleware.AdminOnly(coupons.CreateCoupon))
	router.GET("/api/coupons", middleware.AdminOnly(coupons.GetCoupons))
	router.GET("/api/coupons/:id", middleware.AdminOnly(coupons.GetCoupon))
	router.PUT("/api/coupons/:id", middleware.AdminOnly(coupons.UpdateCoupon))
	router.DELETE("/api/coupons/:id", middleware.AdminOnly(coupons.DeleteCoupon))
}

func AddEnquiryRoutes(router *httprouter.Router) {
	router.POST("/api/enquiries", enquiries.CreateEnquiry)
	router.GET("/api/enquiries", middleware.AdminOnly(enquiries.GetEnquiries))
	router.GET("/api/enquiries/:id", middleware.AdminOnly(enquiries.GetEnquiry))
	router.PUT("/api/enquiries/:id", middleware.AdminOnly(enquiries.UpdateEnquiry))
	router.DELETE("/api/enquiries/:id", middleware.AdminOnly(enquiries.DeleteEnquiry))
}

func AddCartRoutes(router *httprouter.Router) {
	router.POST("/api/cart", middleware.Authenticate(cart.BuildCart))
	router.GET("/api/cart", middleware.Authenticate(cart.GetCart))
	router.DELETE("/api/cart", middleware.Authenticate(cart.EmptyCart))
	router.POST("/api/cart/applycoupon", middleware.Authenticate(cart.ApplyCoupon))
}

func AddOrderRoutes(router *httprouter.Router) {
	router.POST("/api/orders", middleware.Authenticate(orders.PlaceOrder))
	router.GET("/api/orders", middleware.Authenticate(orders.GetOrders))
	router.GET("/api/admin/orders", middleware.AdminOnly(orders.GetAllOrders))
	router.GET("/api/orders/:id/invoice", middleware.Authenticate(orders.OrderInvoice))
	router.PUT("/api/orders/:id/status", middleware.AdminOnly(orders.UpdateOrderStatus))
}
