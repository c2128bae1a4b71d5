package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/th3akash/taste-haven-backend/entity"
	"github.com/th3akash/taste-haven-backend/services"
)

type AIController struct {
	Service *services.AIService
}

func NewAIController(svc *services.AIService) *AIController {
	return &AIController{Service: svc}
}

type specialReq struct {
	Weather string   `json:"weather"`
	Temp    *float64 `json:"temp"`
}

// POST /ai/todays-special
func (ctl *AIController) TodaysSpecial(c *gin.Context) {
	// body is optional; defaults mirror the kiosk's fixed location
	var req specialReq
	_ = c.ShouldBindJSON(&req)

	weather := req.Weather
	if weather == "" {
		weather = "clear"
	}
	temp := 30.0
	if req.Temp != nil {
		temp = *req.Temp
	}

	recommendation := ctl.Service.WeatherRecommendation(c.Request.Context(), weather, temp)
	c.JSON(http.StatusOK, gin.H{"recommendation": recommendation})
}

// GET /get-weather — fixed-city weather card. The recommendation call only
// warms the model; the frontend discards it.
func (ctl *AIController) GetWeather(c *gin.Context) {
	const (
		city    = "Varanasi"
		weather = "clear"
		temp    = 30.0
	)

	_ = ctl.Service.WeatherRecommendation(c.Request.Context(), weather, temp)

	c.JSON(http.StatusOK, entity.WeatherInfo{
		City:               city,
		TemperatureCelsius: temp,
		Description:        weather,
		Humidity:           60,
		WindSpeedKmph:      12.5,
	})
}
