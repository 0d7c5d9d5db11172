package main

import (
	"github.com/ChamodyaGanepola/ai-powered-diet-and-fitness-planner-sub000/config"
	"github.com/ChamodyaGanepola/ai-powered-diet-and-fitness-planner-sub000/routes"
)

func main() {
	config.LoadEnv()
	config.InitDB()
	r := routes.SetupRouter()
	r.Run(":" + config.Port)
}
