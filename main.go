package main

import (
	"log"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/charliez07/mini-market/db"
	"github.com/charliez07/mini-market/handler"
	"github.com/charliez07/mini-market/usecase"
)

func main() {
	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	store := db.NewFileItemStore(getEnv("ITEMS_FILE", "data/items.json"))
	h := &handler.Handler{Items: usecase.NewItemUsecase(store)}

	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "API is running")
	})

	e.GET("/api/items", h.GetPublicItems)
	e.POST("/api/items", h.CreateItem)
	e.PUT("/api/items/:itemID/book", h.BookItem)
	e.GET("/api/items/my-selling/:seller", h.GetSellerItems)
	e.GET("/api/items/my-buying/:buyer", h.GetBuyerItems)
	e.PUT("/api/items/:itemID/sold", h.MarkItemSold)
	e.PUT("/api/items/:itemID/cancel", h.CancelBooking)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	port := getEnv("PORT", "5001")
	if err := e.Start(":" + port); err != nil {
		log.Fatal(err)
	}
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
