package app

import (
	"github.com/yungbote/notebook-gallery-backend/internal/logger"
	"github.com/yungbote/notebook-gallery-backend/internal/utils"
)

type Config struct {
	JWTSecretKey string
	Port         string
}

func LoadConfig(log *logger.Logger) Config {
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	port := utils.GetEnv("PORT", "8080", log)
	return Config{
		JWTSecretKey: jwtSecretKey,
		Port:         port,
	}
}
