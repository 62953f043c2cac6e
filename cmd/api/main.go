package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"bugstore/pkg/customer"
	customerpg "bugstore/pkg/customer/postgres"
	"bugstore/pkg/logger"
	"bugstore/pkg/order"
	orderpg "bugstore/pkg/order/postgres"
	"bugstore/pkg/otel"
	"bugstore/pkg/product"
	productpg "bugstore/pkg/product/postgres"
	"bugstore/pkg/product/rediscache"
)

var (
	customers *customer.Handler
	products  *product.Handler
	orders    *order.Handler
	tracer    trace.Tracer
)

const productCacheTTL = 5 * time.Minute

var schema = []string{
	"CREATE TABLE IF NOT EXISTS customers (id TEXT PRIMARY KEY, name TEXT, email TEXT, phone TEXT, birth_date TIMESTAMPTZ)",
	"CREATE TABLE IF NOT EXISTS products (id TEXT PRIMARY KEY, title TEXT, description TEXT, slug TEXT, price NUMERIC)",
	"CREATE TABLE IF NOT EXISTS orders (id TEXT PRIMARY KEY, customer_id TEXT, created_at TIMESTAMPTZ)",
	"CREATE TABLE IF NOT EXISTS order_lines (id TEXT PRIMARY KEY, order_id TEXT, product_id TEXT, quantity INT, total NUMERIC)",
}

// @title BugStore API
// @version 1.0
// @description API for managing customers, products and orders
// @host localhost:8080
// @BasePath /
func main() {
	logger.Init()
	defer logger.Sync()

	tp, shutdown, err := otel.InitTracing(otel.Config{
		ServiceName: "bugstore",
		Endpoint:    os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		Probability: 1.0,
	})
	if err != nil {
		logger.Log.Fatal("init tracing", zap.Error(err))
	}
	defer shutdown(context.Background())
	tracer = tp.Tracer("bugstore")

	db, err := sql.Open("postgres", os.Getenv("DATABASE_URL"))
	if err != nil {
		logger.Log.Fatal("db connect", zap.Error(err))
	}
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			logger.Log.Fatal("create table", zap.Error(err))
		}
	}

	redisClient := redis.NewClient(&redis.Options{Addr: os.Getenv("REDIS_ADDR")})

	productRepo := rediscache.New(productpg.New(db), redisClient, productCacheTTL)
	customerRepo := customerpg.New(db)
	orderRepo := orderpg.New(db)

	customers = customer.NewHandler(customerRepo)
	products = product.NewHandler(productRepo)
	orders = order.NewHandler(orderRepo, productRepo)

	r := mux.NewRouter()
	r.Use(traceMiddleware)
	r.HandleFunc("/", healthHandler).Methods(http.MethodGet)

	c := r.PathPrefix("/v1/customers").Subrouter()
	c.HandleFunc("", listCustomersHandler).Methods(http.MethodGet)
	c.HandleFunc("", createCustomerHandler).Methods(http.MethodPost)
	c.HandleFunc("/{id}", getCustomerHandler).Methods(http.MethodGet)
	c.HandleFunc("/{id}", updateCustomerHandler).Methods(http.MethodPut)
	c.HandleFunc("/{id}", deleteCustomerHandler).Methods(http.MethodDelete)

	p := r.PathPrefix("/v1/products").Subrouter()
	p.HandleFunc("", listProductsHandler).Methods(http.MethodGet)
	p.HandleFunc("", createProductHandler).Methods(http.MethodPost)
	p.HandleFunc("/{id}", getProductHandler).Methods(http.MethodGet)
	p.HandleFunc("/{id}", updateProductHandler).Methods(http.MethodPut)
	p.HandleFunc("/{id}", deleteProductHandler).Methods(http.MethodDelete)

	o := r.PathPrefix("/v1/orders").Subrouter()
	o.HandleFunc("", createOrderHandler).Methods(http.MethodPost)
	o.HandleFunc("/{id}", getOrderHandler).Methods(http.MethodGet)

	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	logger.Log.Info("listening", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, r); err != nil {
		logger.Log.Error("server closed", zap.Error(err))
	}
}

// healthHandler reports service liveness.
// @Summary Health check
// @Produce json
// @Success 200
// @Router / [get]
func healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "OK"})
}

func traceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := otel.InjectTracing(r.Context(), tracer)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
