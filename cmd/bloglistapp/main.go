package main

import (
	"context"
	"database/sql"
	"flag"
	"io/ioutil"
	"log"
	"net/http"
	"time"

	"bloglist/pkg/blogs"
	"bloglist/pkg/config"
	"bloglist/pkg/handlers"
	"bloglist/pkg/middleware"
	"bloglist/pkg/service"
	"bloglist/pkg/session"
	"bloglist/pkg/user"

	"github.com/go-chi/cors"
	"github.com/go-redis/redis/v8"
	_ "github.com/go-sql-driver/mysql"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

func main() {
	var configFile string
	flag.StringVar(&configFile, "config", "", "path to a config file, optional")
	flag.Parse()

	cfg, err := config.Load(configFile)
	if err != nil {
		log.Fatal(err)
	}

	app := &Application{Config: cfg}
	app.Run()
}

type Application struct {
	Config *config.Config

	HTTPServer *http.Server
}

func (a *Application) Run() {
	zapLogger, _ := zap.NewProduction()
	defer zapLogger.Sync() // flushes buffer, if any
	logger := zapLogger.Sugar()

	rdb := redis.NewClient(&redis.Options{
		Addr:     a.Config.Redis.Addr,
		Password: a.Config.Redis.Password,
		DB:       a.Config.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Fatalf("redis: %v", err)
	}

	privateKeyBytes, err := ioutil.ReadFile(a.Config.JWT.PrivateKey)
	if err != nil {
		logger.Fatal(err)
	}

	publicKeyBytes, err := ioutil.ReadFile(a.Config.JWT.PublicKey)
	if err != nil {
		logger.Fatal(err)
	}

	smJWT, err := session.NewSessionsJWTManager(privateKeyBytes, publicKeyBytes)
	if err != nil {
		logger.Fatal(err)
	}

	sm := session.NewSessionManagerRedis(rdb, smJWT)

	db, err := sql.Open("mysql", a.Config.MySQL.DSN)
	if err != nil {
		logger.Fatal(err)
	}
	defer db.Close()

	if err = db.PingContext(ctx); err != nil {
		logger.Fatalf("mysql: %v", err)
	}

	userRepo := user.NewUserRepoSQL(db)
	if err = userRepo.Migrate(ctx); err != nil {
		logger.Fatal(err)
	}

	client, err := blogs.NewMongoClient(ctx, a.Config.Mongo.URI)
	if err != nil {
		logger.Fatal(err)
	}
	defer client.Disconnect(context.Background())

	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		logger.Fatalf("mongo: %v", err)
	}

	blogsRepo := blogs.NewBlogsRepoMongo(client.Database(a.Config.Mongo.Database), a.Config.Mongo.Collection)

	auth := service.NewAuthenticator(sm, userRepo, a.Config.JWT.TTL)
	blogHandler := &handlers.BlogHandler{
		Blogs:  &service.BlogService{Blogs: blogsRepo, Users: userRepo, Auth: auth, Logger: logger},
		Logger: logger,
	}
	userHandler := &handlers.UserHandler{
		Users:    &service.UserService{Users: userRepo, Blogs: blogsRepo},
		Sessions: auth,
		Logger:   logger,
	}

	srv := &http.Server{
		Handler:      NewHandler(logger, a.Config.CORS.Origins, blogHandler, userHandler),
		Addr:         a.Config.Server.Addr,
		WriteTimeout: a.Config.Server.Timeout,
		ReadTimeout:  a.Config.Server.Timeout,
	}
	a.HTTPServer = srv

	logger.Infof("Started server at %s", srv.Addr)
	logger.Fatal(srv.ListenAndServe())
}

// NewHandler builds the routes and wraps them in the middleware chain.
func NewHandler(logger *zap.SugaredLogger, origins []string, bh *handlers.BlogHandler, uh *handlers.UserHandler) http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/posts", bh.List).Methods(http.MethodGet)
	r.HandleFunc("/posts", bh.Create).Methods(http.MethodPost)
	r.HandleFunc("/posts/summary", bh.Summary).Methods(http.MethodGet)
	r.HandleFunc("/posts/{id}", bh.Delete).Methods(http.MethodDelete)
	r.HandleFunc("/posts/{id}", bh.UpdateLikes).Methods(http.MethodPatch)

	r.HandleFunc("/users", uh.Register).Methods(http.MethodPost)
	r.HandleFunc("/users", uh.List).Methods(http.MethodGet)
	r.HandleFunc("/login", uh.Login).Methods(http.MethodPost)
	r.HandleFunc("/logout", uh.Logout).Methods(http.MethodPost)

	r.NotFoundHandler = http.HandlerFunc(handlers.NotFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(handlers.NotFound)

	h := middleware.TokenExtractor(r)
	h = middleware.Log(logger, h)
	h = middleware.Recover(logger, h)

	return cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	})(h)
}
