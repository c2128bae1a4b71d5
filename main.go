package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/google/generative-ai-go/genai"
	razorpay "github.com/razorpay/razorpay-go"
	"google.golang.org/api/option"

	"github.com/th3akash/taste-haven-backend/configs"
	"github.com/th3akash/taste-haven-backend/controllers"
	"github.com/th3akash/taste-haven-backend/middlewares"
	"github.com/th3akash/taste-haven-backend/repository"
	"github.com/th3akash/taste-haven-backend/routes"
	"github.com/th3akash/taste-haven-backend/services"
	"github.com/th3akash/taste-haven-backend/ws"
)

func main() {
	cfg := configs.LoadConfig()

	// Firebase: orders, menu, chef roster + chef identities
	configs.ConnectFirebase(cfg)

	// Razorpay
	rzp := razorpay.NewClient(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)

	// Gemini
	ctx := context.Background()
	genaiClient, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiAPIKey))
	if err != nil {
		log.Fatalf("gemini init failed: %v", err)
	}
	defer genaiClient.Close()

	// Realtime hub
	hub := ws.NewHub()

	// Repositories
	orderRepo := repository.NewOrderRepository(configs.Database())
	menuRepo := repository.NewMenuRepository(configs.Database())
	chefRepo := repository.NewChefRepository(configs.Auth(), configs.Database())

	// Services
	orderSvc := services.NewOrderService(orderRepo, hub)
	paySvc := services.NewPaymentService(rzp.Order, hub, cfg.RazorpayKeyID, cfg.RazorpayKeySecret)
	aiSvc := services.NewAIService(services.NewGeminiGenerator(genaiClient), menuRepo)
	chefSvc := services.NewChefService(chefRepo, chefRepo)

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware(cfg.AllowedOrigin))

	routes.RegisterRoutes(r,
		controllers.NewOrderController(orderSvc),
		controllers.NewPaymentController(paySvc),
		controllers.NewAIController(aiSvc),
		controllers.NewChefController(chefSvc),
		ws.NewHandler(hub),
	)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("🚀 Server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
