package config

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var (
	ServerAddr string

	DBDialect string
	DBDSN     string

	JWTSecret string
	TokenTTL  time.Duration

	AWSRegion string
	S3Bucket  string

	KakaoBaseURL string
	HTTPTimeout  time.Duration
)

func Load() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("cmd/config/")

	viper.SetDefault("server.addr", ":8080")
	viper.SetDefault("db.dialect", "sqlite3")
	viper.SetDefault("db.dsn", "backend.db")
	viper.SetDefault("jwt.ttl_minutes", 60)
	viper.SetDefault("kakao.base_url", "https://kapi.kakao.com")
	viper.SetDefault("http.timeout_seconds", 5)

	if err := viper.ReadInConfig(); err != nil {
		logrus.Warnf("config file not read, using defaults: %s", err)
	}

	ServerAddr = viper.GetString("server.addr")
	DBDialect = viper.GetString("db.dialect")
	DBDSN = viper.GetString("db.dsn")
	JWTSecret = viper.GetString("jwt.secret")
	TokenTTL = time.Duration(viper.GetInt("jwt.ttl_minutes")) * time.Minute
	AWSRegion = viper.GetString("aws.region")
	S3Bucket = viper.GetString("aws.s3_bucket")
	KakaoBaseURL = viper.GetString("kakao.base_url")
	HTTPTimeout = time.Duration(viper.GetInt("http.timeout_seconds")) * time.Second
}
