package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

const envPrefix = "BLOGLIST"

type ServerConfig struct {
	Addr    string
	Timeout time.Duration
}

type MongoConfig struct {
	URI        string
	Database   string
	Collection string
}

type MySQLConfig struct {
	DSN string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type JWTConfig struct {
	PrivateKey string
	PublicKey  string
	TTL        time.Duration
}

type CORSConfig struct {
	Origins []string
}

type Config struct {
	Server ServerConfig
	Mongo  MongoConfig
	MySQL  MySQLConfig
	Redis  RedisConfig
	JWT    JWTConfig
	CORS   CORSConfig
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", "127.0.0.1:3003")
	v.SetDefault("server.timeout", 15*time.Second)
	v.SetDefault("mongo.uri", "mongodb://localhost:27017")
	v.SetDefault("mongo.database", "bloglist")
	v.SetDefault("mongo.collection", "blogs")
	v.SetDefault("mysql.dsn", "root:root@tcp(localhost:3306)/bloglist?parseTime=true&charset=utf8mb4")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("jwt.private_key", "key.rsa")
	v.SetDefault("jwt.public_key", "key.rsa.pub")
	v.SetDefault("jwt.ttl", time.Hour)
	v.SetDefault("cors.origins", []string{"*"})
}

// Load reads defaults, then the optional file, then BLOGLIST_* environment
// variables. Later sources win.
func Load(file string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	return &Config{
		Server: ServerConfig{
			Addr:    v.GetString("server.addr"),
			Timeout: v.GetDuration("server.timeout"),
		},
		Mongo: MongoConfig{
			URI:        v.GetString("mongo.uri"),
			Database:   v.GetString("mongo.database"),
			Collection: v.GetString("mongo.collection"),
		},
		MySQL: MySQLConfig{
			DSN: v.GetString("mysql.dsn"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("redis.addr"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		JWT: JWTConfig{
			PrivateKey: v.GetString("jwt.private_key"),
			PublicKey:  v.GetString("jwt.public_key"),
			TTL:        v.GetDuration("jwt.ttl"),
		},
		CORS: CORSConfig{
			Origins: v.GetStringSlice("cors.origins"),
		},
	}, nil
}
