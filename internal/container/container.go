package container

import (
	"log/slog"
	"time"

	"github.com/midtrans/midtrans-go/snap"
	"github.com/redis/go-redis/v9"
	"github.com/supabase-community/supabase-go"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/alhijaztravel/safarbay/internal/cache"
	"github.com/alhijaztravel/safarbay/internal/gateway"
	"github.com/alhijaztravel/safarbay/internal/models"
	"github.com/alhijaztravel/safarbay/internal/services"
)

// welcome banners are abandoned if the user never opens the dashboard
const welcomeFlagTTL = 24 * time.Hour

// Container holds all application dependencies
type Container struct {
	Logger *slog.Logger
	// Database clients
	SupabaseClient *supabase.Client
	MongoDBClient  *mongo.Client
	RedisClient    *redis.Client

	ProfileRepo models.ProfileRepo
	TokenSource gateway.TokenSource

	PackageService  *services.PackageService
	IdentityService *services.IdentityService
	BookingService  *services.BookingService
	CheckoutService *services.CheckoutService
}

// NewContainer creates a new dependency injection container
func NewContainer(
	logger *slog.Logger,
	supabaseClient *supabase.Client,
	mongoDBClient *mongo.Client,
	redisClient *redis.Client,
	snapClient *snap.Client,
) *Container {
	// Initialize repositories
	supa := models.SupabaseNewRepo(supabaseClient)
	store := models.MongodbNewRepo(mongoDBClient)

	tokens := gateway.NewSnapTokenSource(snapClient)
	welcomeFlags := cache.NewWelcomeFlagStore(redisClient, welcomeFlagTTL)

	packageService := services.NewPackageService(store)
	identityService := services.NewIdentityService(supa, store, logger)
	bookingService := services.NewBookingService(store, welcomeFlags, logger)
	checkoutService := services.NewCheckoutService(store, tokens, identityService, bookingService, logger)

	return &Container{
		Logger:          logger,
		SupabaseClient:  supabaseClient,
		MongoDBClient:   mongoDBClient,
		RedisClient:     redisClient,
		ProfileRepo:     store,
		TokenSource:     tokens,
		PackageService:  packageService,
		IdentityService: identityService,
		BookingService:  bookingService,
		CheckoutService: checkoutService,
	}
}
