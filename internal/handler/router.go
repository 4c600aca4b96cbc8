package handler

import (
	"particleapi/internal/service"
	"particleapi/pkg/idgen"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// SetupRouter 配置路由
func SetupRouter(particleService *service.ParticleService, log zerolog.Logger, ids *idgen.Snowflake, mode string) *gin.Engine {
	if mode == "" {
		mode = gin.ReleaseMode
	}
	gin.SetMode(mode)

	r := gin.New()

	// 允许任意来源，响应头固定返回 *
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", RequestIDHeader},
		ExposeHeaders:   []string{RequestIDHeader},
	}))
	r.Use(RequestIDMiddleware(ids))
	r.Use(LoggerMiddleware(log))
	r.Use(RecoveryMiddleware(log))

	h := NewHandler(particleService)

	r.GET("/", h.Welcome)

	particles := r.Group("/particles")
	{
		particles.GET("", h.ListParticles)
		particles.POST("", h.CreateParticle)
		particles.GET("/:id", h.GetParticle)
		particles.PUT("/:id", h.UpdateParticle)
		particles.DELETE("/:id", h.DeleteParticle)
	}

	r.GET("/health", h.Health)

	return r
}
