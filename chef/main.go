package main

import (
	"context"
	"io"
	"log"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/aichef/ai-chef/config"
)

type Chef struct {
	config   *config.Config
	handler  *Handler
	upgrader websocket.Upgrader
}

func main() {
	cfg := config.LoadConfig()

	ctx := context.Background()

	generator, err := NewGenerator(ctx, cfg.Google, cfg.Generation)
	if err != nil {
		log.Fatal(err)
	}

	history, err := NewHistory(cfg.History.Path)
	if err != nil {
		log.Fatal(err)
	}
	defer history.Close()

	events, err := NewNatsClient(&cfg.Nats)
	if err != nil {
		log.Fatal(err)
	}
	defer events.Close()

	handler, err := NewHandler(generator, history, events, cfg.Nats.GenerationsSubject)
	if err != nil {
		log.Fatal(err)
	}

	chef := &Chef{
		handler:  handler,
		config:   cfg,
		upgrader: websocket.Upgrader{},
	}

	if err := chef.Run(); err != nil {
		log.Fatalf("failed to run the chef service: %v", err)
	}
}

func (a *Chef) Run() error {
	r := gin.Default()

	r.StaticFile("/", "web/index.html")

	r.GET("/options", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"cuisines":            Cuisines,
			"dietary_preferences": DietaryPreferences,
			"wine_preferences":    WinePreferences,
			"defaults": gin.H{
				"allergy":     DefaultAllergy,
				"ingredient1": DefaultIngredient1,
				"ingredient2": DefaultIngredient2,
				"ingredient3": DefaultIngredient3,
			},
		})
	})

	r.POST("/recipes", func(ctx *gin.Context) {
		var req RecipeRequest

		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		result, err := a.handler.GenerateRecipes(ctx, req, nil)
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		ctx.JSON(http.StatusOK, result)
	})

	r.GET("/recipes/stream", func(ctx *gin.Context) {
		var req RecipeRequest
		if err := ctx.ShouldBindQuery(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		w, r := ctx.Writer, ctx.Request
		c, err := a.upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("upgrade:", err)
			return
		}
		defer c.Close()

		resultChan := a.handler.StreamRecipes(ctx, req)
		for {
			select {
			case <-ctx.Request.Context().Done():
				return
			case result := <-resultChan:
				if result == nil {
					return
				}
				if result.Err != nil {
					if result.Err == io.EOF {
						return
					}
					if err := c.WriteJSON(WebSocketsMessage{Type: "error", Data: result.Err.Error()}); err != nil {
						slog.Error("failed to write to ws connection", "error", err)
					}
					return
				}

				if err := c.WriteJSON(result.Msg); err != nil {
					slog.Error("failed to write to ws connection", "error", err)
					return
				}
			}
		}
	})

	r.GET("/history", func(ctx *gin.Context) {
		limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

		generations, err := a.handler.Recent(ctx, limit)
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		ctx.JSON(http.StatusOK, generations)
	})

	return r.Run(a.config.Server.Address())
}
