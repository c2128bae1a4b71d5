package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/th3akash/taste-haven-backend/controllers"
	"github.com/th3akash/taste-haven-backend/ws"
)

func RegisterRoutes(
	r *gin.Engine,
	orderCtl *controllers.OrderController,
	payCtl *controllers.PaymentController,
	aiCtl *controllers.AIController,
	chefCtl *controllers.ChefController,
	wsHandler *ws.Handler,
) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Taste Haven backend is live and working!"})
	})

	// Payments (Razorpay)
	r.POST("/create-order", payCtl.CreateOrder)
	r.POST("/verify-payment", payCtl.VerifyPayment)

	// Orders
	r.POST("/place-order", orderCtl.PlaceOnline)
	r.POST("/place-cod-order", orderCtl.PlaceCOD)

	// AI recommendations
	r.POST("/ai/todays-special", aiCtl.TodaysSpecial)
	r.GET("/get-weather", aiCtl.GetWeather)

	// Chef roster
	r.POST("/add-chef", chefCtl.AddChef)
	r.DELETE("/delete-chef/:email", chefCtl.DeleteChef)
	r.GET("/chef-users", chefCtl.ListChefs)

	// Realtime
	r.GET("/ws/chef", wsHandler.Chef)
	r.GET("/ws/menu", wsHandler.Menu)
	r.GET("/ws/popular-choices-updates", wsHandler.PopularChoices)
	r.GET("/ws/kitchen", wsHandler.Kitchen)
}
