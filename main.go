package main

import (
	"io"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"route-viz-server/config"
	"route-viz-server/handlers"
	"route-viz-server/services"
)

// log init
func init() {
	logDir := "./logs"
	os.MkdirAll(logDir, 0755)

	fileLogger := &lumberjack.Logger{
		Filename:   logDir + "/route-server.log",
		MaxSize:    100, // MB
		MaxBackups: 7,
		MaxAge:     30, // days
		Compress:   true,
	}

	// Both file and stdout, so the service stays observable under systemd.
	log.SetOutput(io.MultiWriter(os.Stdout, fileLogger))
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	log.SetLevel(log.InfoLevel)
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, using default environment variables")
	}

	cfg := config.Load("route_server_config.toml")

	addr := cfg.Server.ListenAddr
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}

	routeService := services.NewRouteService()
	historyService := services.NewHistoryService(cfg.History.Capacity)
	handler := handlers.NewRouteHandler(routeService, historyService)

	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"*"}
	r.Use(cors.New(corsConfig))

	handler.RegisterRoutes(r)

	log.Infof("Route visualizer server starting on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
