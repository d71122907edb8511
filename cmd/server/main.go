package main

import (
	"log"
	"net/http"

	"mirastore-be/internal/cart"
	"mirastore-be/internal/config"
	"mirastore-be/internal/db"
	"mirastore-be/internal/httpapi"
	"mirastore-be/internal/logger"
	"mirastore-be/internal/order"
	"mirastore-be/internal/product"
	"mirastore-be/internal/report"
	"mirastore-be/internal/user"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	productRepo := product.NewRepository(database)
	productSvc := product.NewService(productRepo)

	userRepo := user.NewRepository(database)
	userSvc := user.NewService(userRepo)

	cartRepo := cart.NewRepository(database)
	cartSvc := cart.NewService(cartRepo, productRepo)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo)

	reportRepo := report.NewRepository(database)
	reportSvc := report.NewService(reportRepo)

	router := httpapi.NewRouter(productSvc, cartSvc, orderSvc, reportSvc, userSvc)

	log.Printf("server running at http://localhost:%s/", cfg.AppPort)
	log.Fatal(http.ListenAndServe(":"+cfg.AppPort, router))
}
