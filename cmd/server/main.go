package main

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"short-video-backend/cmd/config"
	"short-video-backend/pkg/auth"
	"short-video-backend/pkg/database"
	"short-video-backend/pkg/handlers"
	"short-video-backend/pkg/kakao"
	"short-video-backend/pkg/repository"
	"short-video-backend/pkg/service"
)

func main() {
	config.Load()
	database.Init()

	tokens := auth.NewTokenProvider(config.JWTSecret, config.TokenTTL)
	kakaoClient := kakao.NewClient(config.KakaoBaseURL, config.HTTPTimeout)

	users := service.NewUserService(repository.NewUsers(database.DB), tokens, kakaoClient)
	videos := service.NewVideoService(database.DB)

	r := gin.Default()
	handlers.New(users, videos, tokens).RegisterRoutes(r)

	if err := r.Run(config.ServerAddr); err != nil {
		logrus.Fatal("server stopped: ", err)
	}
}
