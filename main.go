package main

import (
	"github.com/StayNest/booking_service/config"
	"github.com/StayNest/booking_service/internal/api"
)

func main() {
	cfg := config.LoadConfig()
	api.StartServer(cfg)
}
