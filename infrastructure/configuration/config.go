package configuration

import (
	"fmt"
	"os"
	"strconv"

	"vidhub/infrastructure/logger"

	"github.com/spf13/viper"
)

type Config struct {
	App         App         `json:"app"`
	Database    Database    `json:"database"`
	RedisClient RedisClient `json:"redisClient"`
	Media       Media       `json:"media"`
	Seed        bool        `json:"seed"`
}

type App struct {
	Port      int    `json:"port"`
	SecretKey string `json:"secretKey"`
}

type Database struct {
	Mongo Db `json:"mongo"`
}

type Db struct {
	Name     string `json:"name"`
	Host     string `json:"host"`
	Port     string `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
}

type RedisClient struct {
	Host     string `json:"host"`
	Port     string `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type Media struct {
	Endpoint  string `json:"endpoint"`
	AccessKey string `json:"accessKey"`
	SecretKey string `json:"secretKey"`
	Bucket    string `json:"bucket"`
	PublicURL string `json:"publicURL"`
	UseSSL    bool   `json:"useSSL"`
}

var C Config

func init() {
	LoadConfig()
	initDatabase(&C)
	initApp(&C)
}

func LoadConfig() {
	name := getConfig()
	viper.SetConfigName(name)
	viper.SetConfigType("json")
	viper.AddConfigPath(".")
	viper.AddConfigPath("../")
	viper.AddConfigPath("../../")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logger.GetLogger().Warn("Config file not found")
		} else {
			logger.GetLogger().WithField("error", err).Error("Error reading config file")
		}
	}

	if err := viper.Unmarshal(&C); err != nil {
		logger.GetLogger().WithField("error", err).Error("Viper unable to decode into struct")
	}
	logger.GetLogger().WithField("config", name).Info("Config set up successfully")
}

func getConfig() string {
	name := "config"
	env := os.Getenv("ENV")
	if env != "" {
		name = fmt.Sprintf("%s-%s", name, env)
	}
	return name
}

func initDatabase(C *Config) {
	if C.Database.Mongo.Name == "" {
		C.Database.Mongo.Name = os.Getenv("MONGO_DB_NAME")
	}
	if C.Database.Mongo.Name == "" {
		C.Database.Mongo.Name = "vidhub"
	}
	if C.Database.Mongo.Host == "" {
		C.Database.Mongo.Host = os.Getenv("MONGO_HOST")
	}
	if C.Database.Mongo.Host == "" {
		C.Database.Mongo.Host = "localhost"
	}
	if C.Database.Mongo.Port == "" {
		C.Database.Mongo.Port = os.Getenv("MONGO_PORT")
	}
	if C.Database.Mongo.Port == "" {
		C.Database.Mongo.Port = "27017"
	}
	if C.Database.Mongo.User == "" {
		C.Database.Mongo.User = os.Getenv("MONGO_USER")
	}
	if C.Database.Mongo.Password == "" {
		C.Database.Mongo.Password = os.Getenv("MONGO_PASSWORD")
	}

	if C.RedisClient.Host == "" {
		C.RedisClient.Host = os.Getenv("REDIS_HOST")
	}
	if C.RedisClient.Port == "" {
		if v := os.Getenv("REDIS_PORT"); v != "" {
			C.RedisClient.Port = v
		} else {
			C.RedisClient.Port = "6379"
		}
	}

	if C.Media.Endpoint == "" {
		C.Media.Endpoint = os.Getenv("MEDIA_ENDPOINT")
	}
	if C.Media.AccessKey == "" {
		C.Media.AccessKey = os.Getenv("MEDIA_ACCESS_KEY")
	}
	if C.Media.SecretKey == "" {
		C.Media.SecretKey = os.Getenv("MEDIA_SECRET_KEY")
	}
	if C.Media.Bucket == "" {
		if v := os.Getenv("MEDIA_BUCKET"); v != "" {
			C.Media.Bucket = v
		} else {
			C.Media.Bucket = "vidhub-media"
		}
	}
	if C.Media.PublicURL == "" {
		C.Media.PublicURL = os.Getenv("MEDIA_PUBLIC_URL")
	}
}

func initApp(C *Config) {
	// SECRET_KEY from environment overrides config for JWT signing.
	if v := os.Getenv("SECRET_KEY"); v != "" {
		C.App.SecretKey = v
	}
	if v := os.Getenv("APP_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			C.App.Port = p
		}
	} else if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			C.App.Port = p
		}
	}
	if C.App.Port == 0 {
		C.App.Port = 5000
	}
	if v := os.Getenv("SEED"); v == "true" || v == "1" {
		C.Seed = true
	}
	if C.App.SecretKey == "" {
		logger.GetLogger().Warn("App.SecretKey not set; JWT authentication will fail. Provide SECRET_KEY via environment.")
	}
}
