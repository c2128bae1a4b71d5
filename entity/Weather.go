package entity

// WeatherInfo is the /get-weather response.
type WeatherInfo struct {
	City               string  `json:"city"`
	TemperatureCelsius float64 `json:"temperature_celsius"`
	Description        string  `json:"description"`
	Humidity           int     `json:"humidity"`
	WindSpeedKmph      float64 `json:"wind_speed_kmph"`
}
