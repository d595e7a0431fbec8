package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	mysqlRepo "github.com/shopway/shopway/internal/repository/mysql"
	redisRepo "github.com/shopway/shopway/internal/repository/redis"
	"github.com/shopway/shopway/internal/workers"

	"github.com/joho/godotenv"
	"github.com/shopway/shopway/internal/rest"
	"github.com/shopway/shopway/internal/rest/middleware"
	"github.com/shopway/shopway/internal/usecase/brand"
	"github.com/shopway/shopway/internal/usecase/category"
	"github.com/shopway/shopway/internal/usecase/comment"
	"github.com/shopway/shopway/internal/usecase/notification"
	"github.com/shopway/shopway/internal/usecase/product"
	"github.com/shopway/shopway/internal/usecase/user"
)

const (
	defaultTimeout     = 30
	defaultAddress     = ":9090"
	defaultCacheDB     = 0
	dbMaxRetry         = 10
	dbRetryIntervalSec = 2
)

func init() {
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}
}

func main() {
	//prepare database
	dbHost := os.Getenv("DATABASE_HOST")
	dbPort := os.Getenv("DATABASE_PORT")
	dbUser := os.Getenv("DATABASE_USER")
	dbPass := os.Getenv("DATABASE_PASS")
	dbName := os.Getenv("DATABASE_NAME")
	connection := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", dbUser, dbPass, dbHost, dbPort, dbName)
	val := url.Values{}
	val.Add("parseTime", "1")
	val.Add("loc", "UTC")
	dsn := fmt.Sprintf("%s?%s", connection, val.Encode())

	var (
		db  *gorm.DB
		err error
	)

	for i := range dbMaxRetry {
		db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Printf("failed to open connection to database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
		} else {
			sqlDB, err := db.DB()
			if err != nil {
				log.Printf("failed to get sql.DB from gorm.DB (attempt %d/%d): %v", i+1, dbMaxRetry, err)
				continue
			}
			err = sqlDB.Ping()
			if err == nil {
				break
			}
			log.Printf("failed to ping database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
			_ = sqlDB.Close()
		}

		time.Sleep(dbRetryIntervalSec * time.Second)
	}

	if err != nil {
		log.Fatal("could not connect to database after retries:", err)
	}

	defer func() {
		sqlDB, err := db.DB()
		if err != nil {
			log.Fatal("got error when getting sql.DB from gorm.DB", err)
		}
		if err := sqlDB.Close(); err != nil {
			log.Fatal("got error when closing the DB connection", err)
		}
	}()

	// prepare redis, used as the realtime notification channel
	cacheHost := os.Getenv("CACHE_HOST")
	cachePort := os.Getenv("CACHE_PORT")
	cachePass := os.Getenv("CACHE_PASS")
	cacheDBStr := os.Getenv("CACHE_DB")
	cacheDB, err := strconv.Atoi(cacheDBStr)
	if err != nil {
		log.Println("failed to parse cacheDB, using default cacheDB")
		cacheDB = defaultCacheDB
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cacheHost + ":" + cachePort,
		Password: cachePass,
		DB:       cacheDB,
	})
	defer func() {
		err = client.Close()
		if err != nil {
			log.Fatal("got error when closing the redis connection", err)
		}
	}()

	_, err = client.Ping(context.Background()).Result()
	if err != nil {
		log.Fatal("failed to open connection to redis", err)
		return
	}

	// prepare gin
	route := gin.Default()
	route.Use(middleware.CORS())
	timeoutStr := os.Getenv("CONTEXT_TIMEOUT")
	timeout, err := strconv.Atoi(timeoutStr)
	if err != nil {
		log.Println("failed to parse timeout, using default timeout")
		timeout = defaultTimeout
	}
	timeoutContext := time.Duration(timeout) * time.Second
	route.Use(middleware.SetRequestContextWithTimeout(timeoutContext))

	// Prepare Repository
	userRepo := mysqlRepo.NewUserRepository(db)
	commentRepo := mysqlRepo.NewCommentRepository(db)
	productRepo := mysqlRepo.NewProductRepository(db)
	categoryRepo := mysqlRepo.NewCategoryRepository(db)
	brandRepo := mysqlRepo.NewBrandRepository(db)
	notifRepo := mysqlRepo.NewNotificationRepository(db)
	publisher := redisRepo.NewNotificationPublisher(client)

	// Start worker
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	notifier := workers.NewReplyNotifier(notifRepo, publisher)
	go notifier.Start(ctx)

	// Build service Layer
	jwtSecret := []byte(os.Getenv("JWT_SECRET"))
	jwtTTLStr := os.Getenv("JWT_EXPIRE_HOURS")
	jwtTTL, err := strconv.Atoi(jwtTTLStr)
	if err != nil {
		log.Println("failed to parse JWT TTL, using default 24 hours")
		jwtTTL = 24
	}
	userSvc := user.NewService(userRepo, jwtSecret, time.Duration(jwtTTL)*time.Hour)
	productSvc := product.NewService(productRepo, categoryRepo, brandRepo)
	categorySvc := category.NewService(categoryRepo)
	brandSvc := brand.NewService(brandRepo)
	commentSvc := comment.NewService(commentRepo, userRepo, productRepo, notifier)
	notifSvc := notification.NewService(notifRepo, userRepo)

	userHandler := rest.NewUserHandler(userSvc)
	productHandler := rest.NewProductHandler(productSvc)
	categoryHandler := rest.NewCategoryHandler(categorySvc)
	brandHandler := rest.NewBrandHandler(brandSvc)
	commentHandler := rest.NewCommentHandler(commentSvc)
	notifHandler := rest.NewNotificationHandler(notifSvc)

	authMiddleware := middleware.AuthMiddleware(string(jwtSecret))

	// Register routes
	route.POST("/register", userHandler.Register)
	route.POST("/login", userHandler.Login)

	route.GET("/products", productHandler.Search)
	route.GET("/products/:id", productHandler.GetByID)
	route.GET("/categories", categoryHandler.FetchAll)
	route.GET("/categories/:slug", categoryHandler.GetBySlug)
	route.GET("/brands", brandHandler.FetchAll)
	route.GET("/brands/:slug", brandHandler.GetBySlug)

	route.GET("/comments/product", commentHandler.ListByProduct)
	route.GET("/comments/:id", commentHandler.GetByID)
	route.GET("/comments/:id/replies", commentHandler.ListReplies)

	authorized := route.Group("/")
	authorized.Use(authMiddleware)
	{
		authorized.GET("/comments/my-comments", commentHandler.ListMine)
		authorized.POST("/comments", commentHandler.Create)
		authorized.PUT("/comments/:id", commentHandler.Update)
		authorized.DELETE("/comments/:id", commentHandler.Delete)

		authorized.GET("/notifications", notifHandler.List)
		authorized.PUT("/notifications/:id/read", notifHandler.MarkRead)
	}

	admin := route.Group("/")
	admin.Use(authMiddleware, middleware.AdminOnly())
	{
		admin.DELETE("/comments/admin/:id", commentHandler.AdminDelete)
		admin.GET("/comments/admin/all", commentHandler.AdminListAll)
		admin.GET("/comments/admin/by-product", commentHandler.AdminGroupByProduct)
		admin.GET("/comments/admin/products-by-category/:categorySlug", commentHandler.AdminProductsByCategory)
		admin.POST("/comments/admin/reply/:id", commentHandler.AdminReply)

		admin.POST("/admin/products", productHandler.Store)
		admin.PUT("/admin/products/:id", productHandler.Update)
		admin.DELETE("/admin/products/:id", productHandler.Delete)
		admin.POST("/admin/products/:id/stock", productHandler.AdjustStock)

		admin.POST("/admin/categories", categoryHandler.Store)
		admin.PUT("/admin/categories/:id", categoryHandler.Update)
		admin.DELETE("/admin/categories/:id", categoryHandler.Delete)

		admin.POST("/admin/brands", brandHandler.Store)
		admin.PUT("/admin/brands/:id", brandHandler.Update)
		admin.DELETE("/admin/brands/:id", brandHandler.Delete)
	}

	// Start Server
	address := os.Getenv("SERVER_ADDRESS")
	if address == "" {
		address = defaultAddress
	}
	srv := &http.Server{
		Addr:    address,
		Handler: route,
	}
	go func() {
		log.Printf("Server is running on %s\n", address)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err) // nolint
		}
	}()

	// shutdown
	<-ctx.Done()
	log.Println("Shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Println("Waiting for worker to cleanup...")
	time.Sleep(2 * time.Second)

	log.Println("Server exiting")
}
