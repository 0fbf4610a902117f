package main

import (
	"context"
	"os"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/Svathna/KG-ALL-backend/cmd/internal/domain/policy"
	"github.com/Svathna/KG-ALL-backend/cmd/internal/domain/sqlite"
	"github.com/Svathna/KG-ALL-backend/cmd/internal/domain/sqlite/repository"
	"github.com/Svathna/KG-ALL-backend/cmd/internal/http/handler"
	"github.com/Svathna/KG-ALL-backend/cmd/internal/http/middleware"
	"github.com/Svathna/KG-ALL-backend/cmd/internal/infrastructure/aws/storage"
	"github.com/Svathna/KG-ALL-backend/cmd/internal/service"
	"github.com/Svathna/KG-ALL-backend/cmd/internal/service/jobs"
	"github.com/Svathna/KG-ALL-backend/cmd/internal/utils"
	"github.com/Svathna/KG-ALL-backend/cmd/internal/utils/uid"
	"github.com/Svathna/KG-ALL-backend/cmd/internal/utils/validators"
)

const envVarsPrefix = "/kgall/prod/"

func main() {
	validate := validator.New()
	registerValidators(validate)

	// Loads env vars depending on environment
	if os.Getenv("GO_ENV") == "production" {
		loadProdEnv() // AWS SSM Parameter Store
	} else {
		// Loads from .env
		err := godotenv.Load()
		if err != nil {
			panic(err)
		}
	}

	if err := utils.InitSigner(os.Getenv("JWT_SECRET")); err != nil {
		panic(err)
	}
	uid.Init(machineID())

	// Init SQLite
	db, err := sqlite.Init()
	if err != nil {
		panic(err)
	}

	// Init S3 client
	s3Client, err := storage.NewStorageClient()
	if err != nil {
		panic(err)
	}

	// Getting repos
	userRepo := repository.NewUserRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	taxRepo := repository.NewTaxHistoryRepository(db)
	requestRepo := repository.NewRequestRepository(db)
	mocRepo := repository.NewMocRepository(db)
	dotRepo := repository.NewDotRepository(db)
	docRepo := repository.NewDocRepository(db)
	planRepo := repository.NewServicePlanRepository(db)
	maintenanceRepo := repository.NewMaintenanceRepository(db)

	// Getting services
	userService := service.NewUserService(userRepo, companyRepo, validate)
	companyService := service.NewCompanyService(companyRepo, validate)
	taxService := service.NewTaxService(taxRepo, companyRepo, validate)
	requestService := service.NewRequestService(requestRepo, companyRepo, policy.NewRequestPolicy(), validate)
	mocService := service.NewMocService(mocRepo, companyRepo, validate)
	dotService := service.NewDotService(dotRepo, companyRepo, validate)
	docService := service.NewDocService(docRepo, companyRepo, s3Client, validate)
	planService := service.NewServicePlanService(planRepo, validate)

	// Getting handlers
	userRoutes := handler.NewUserRoute(userService)
	companyRoutes := handler.NewCompanyRoute(companyService)
	taxRoutes := handler.NewTaxRoute(taxService)
	requestRoutes := handler.NewRequestRoute(requestService)
	mocRoutes := handler.NewMocRoute(mocService)
	dotRoutes := handler.NewDotRoute(dotService)
	docRoutes := handler.NewDocRoute(docService)
	planRoutes := handler.NewServicePlanRoute(planService)
	utilRoutes := handler.NewUtilRoute()

	authConfig := &middleware.AuthMiddlewareConfig{UserRepo: userRepo}
	auth := middleware.NewAuthMiddleware(authConfig)
	admin := middleware.NewAdminMiddleware(authConfig)

	// Tombstone sweeper
	go jobs.NewTombstoneCleaner(maintenanceRepo).Start(context.Background())

	e := echo.New()
	e.Use(echomiddleware.CORS())
	e.Use(echomiddleware.BodyLimit("30M"))

	// Users
	e.POST("/api/user/login", userRoutes.Login)
	e.POST("/api/user/admin/login", userRoutes.AdminLogin)
	e.GET("/api/user", userRoutes.GetUsers, admin)
	e.GET("/api/user/current", userRoutes.GetCurrentUser, auth)
	e.GET("/api/user/current/safe", userRoutes.GetCurrentUserSafe, auth)
	e.GET("/api/user/:id", userRoutes.GetUser, admin)
	e.POST("/api/user", userRoutes.CreateUser, admin)
	e.PATCH("/api/user/:id", userRoutes.UpdateUser, admin)
	e.PATCH("/api/user/password/:id", userRoutes.ChangePassword, auth)
	e.DELETE("/api/user/:id", userRoutes.DeleteUser, admin)

	// Companies
	e.GET("/api/company", companyRoutes.GetCompanies, admin)
	e.GET("/api/company/:id", companyRoutes.GetCompany, auth)
	e.POST("/api/company", companyRoutes.CreateCompany, admin)
	e.PATCH("/api/company/:id", companyRoutes.UpdateCompany, admin)
	e.DELETE("/api/company/:id", companyRoutes.DeleteCompany, admin)

	// Tax histories
	e.GET("/api/tax/:id", taxRoutes.GetTaxHistory, auth)
	e.POST("/api/tax", taxRoutes.CreateTaxHistory, admin)
	e.PATCH("/api/tax/:id", taxRoutes.UpdateTaxHistory, admin)
	e.POST("/api/tax/month", taxRoutes.UpsertMonth, admin)
	e.POST("/api/tax/year", taxRoutes.ReplaceYears, admin)
	e.DELETE("/api/tax/:id/month/:year/:month", taxRoutes.RemoveMonth, admin)

	// Requests
	e.GET("/api/request", requestRoutes.GetPendingRequests, admin)
	e.GET("/api/request/:id", requestRoutes.GetRequest, auth)
	e.GET("/api/request/company/:id", requestRoutes.GetPendingByCompany, auth)
	e.POST("/api/request", requestRoutes.CreateRequest, auth)
	e.PATCH("/api/request/:id", requestRoutes.UpdateStatus, admin)
	e.DELETE("/api/request/:id", requestRoutes.DeleteRequest, auth)

	// MOC registrations
	e.GET("/api/moc/:id", mocRoutes.GetMoc, auth)
	e.POST("/api/moc", mocRoutes.CreateMoc, admin)
	e.PATCH("/api/moc/:id", mocRoutes.UpdateMoc, admin)

	// DOT registrations
	e.GET("/api/dot/:id", dotRoutes.GetDot, auth)
	e.POST("/api/dot", dotRoutes.CreateDot, admin)
	e.PATCH("/api/dot/:id", dotRoutes.UpdateDot, admin)

	// Documents
	e.GET("/api/doc/:id", docRoutes.GetDoc, auth)
	e.POST("/api/doc", docRoutes.SaveDoc, admin)
	e.POST("/api/doc/upload", docRoutes.UploadDocFile, admin)
	e.DELETE("/api/doc/:id", docRoutes.DeleteDoc, admin)

	// Service plans
	e.GET("/api/service", planRoutes.GetCurrentPlan, auth)
	e.GET("/api/service/:id", planRoutes.GetPlan, auth)
	e.POST("/api/service", planRoutes.CreatePlan, admin)

	// Docker Compose healthcheck
	e.GET("/health", utilRoutes.Health)

	if err := e.Start(":7070"); err != nil {
		panic(err)
	}
}

func registerValidators(validate *validator.Validate) {
	_ = validate.RegisterValidation("hasupper", validators.HasUpper)
	_ = validate.RegisterValidation("haslower", validators.HasLower)
	_ = validate.RegisterValidation("hasdigit", validators.HasDigit)
	_ = validate.RegisterValidation("hasspecial", validators.HasSpecial)
	_ = validate.RegisterValidation("nospaces", validators.NoWhiteSpaces)
}

func machineID() int64 {
	raw := os.Getenv("MACHINE_ID")
	if raw == "" {
		return 1
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		log.Fatalf("invalid MACHINE_ID %q: %v", raw, err)
	}
	return id
}

func loadProdEnv() {
	ctx := context.Background()
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion("us-east-2"))
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	client := ssm.NewFromConfig(cfg)
	out, err := client.GetParametersByPath(ctx, &ssm.GetParametersByPathInput{
		Path:           aws.String(envVarsPrefix),
		WithDecryption: aws.Bool(true),
		Recursive:      aws.Bool(true),
	})
	if err != nil {
		log.Fatalf("unable to load prod environment, %v", err)
	}

	prefixLength := len(envVarsPrefix)
	// Export vars
	for _, param := range out.Parameters {
		key := (*param.Name)[prefixLength:]
		value := *param.Value
		enverr := os.Setenv(key, value)
		if enverr != nil {
			log.Fatalf("unable to set environment variable, %v", enverr)
		}
	}
	log.Debugf("loaded %d prod environment variables", len(out.Parameters))
}
