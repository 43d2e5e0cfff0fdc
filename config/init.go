package config

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"

	"hotelbooking/middleware"
	"hotelbooking/services/notification"
)

func InitApp(ctx context.Context, cfg *Config) (*gin.Engine, *melody.Melody, *cron.Cron, error) {
	if cfg.App.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	configCors := cors.DefaultConfig()
	configCors.AddAllowHeaders("Authorization", middleware.SessionHeader, "Idempotency-Key")
	configCors.AddExposeHeaders(middleware.SessionHeader)
	configCors.AllowCredentials = true
	configCors.AllowAllOrigins = false
	configCors.AllowOriginFunc = func(origin string) bool {
		return true
	}
	router.Use(cors.New(configCors))

	router.SetTrustedProxies(nil)

	if err := initComponents(ctx, cfg); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to initialize components: %v", err)
	}

	m := melody.New()

	c := cron.New()

	return router, m, c, nil
}

func initComponents(ctx context.Context, cfg *Config) error {
	if err := ConnectDB(cfg); err != nil {
		return err
	}

	var err error
	RedisClient, err = ConnectRedis(ctx, cfg.Redis)
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %v", err)
	}

	log.Println("All components initialized successfully")
	return nil
}

// InitWebSocket gắn kết nối websocket với session của client (?sessionId= hoặc header X-Session-ID)
func InitWebSocket(router *gin.Engine, m *melody.Melody) {
	router.GET("/ws", func(c *gin.Context) {
		sessionID := c.Query("sessionId")
		if sessionID == "" {
			sessionID = c.GetHeader(middleware.SessionHeader)
		}
		if sessionID == "" {
			sessionID = uuid.NewString()
		}
		m.HandleRequestWithKeys(c.Writer, c.Request, map[string]interface{}{
			notification.SessionKey: sessionID,
		})
	})
	log.Println("WebSocket initialized successfully")
}
