package main

import (
	"fmt"
	"os"
	"sync"

	"folioBackend/auth"
	"folioBackend/config"
	"folioBackend/domain/library"
	"folioBackend/domain/literature"
	"folioBackend/domain/user"
	"folioBackend/test"
	"folioBackend/utils"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Load environment variables from .env file if present
	_ = godotenv.Load()

	cmdArgs := utils.ParseArguments()
	isDevMode := *cmdArgs.DevelopmentMode

	log.SetTimeFormat("[2006-01-02 15:04:05]")

	if isDevMode {
		log.SetReportCaller(true)
	}

	folioConfig := config.Load(*cmdArgs.ConfigFile)
	authManager := auth.CreateAuthManager(folioConfig)

	db := connectToDatabase(*cmdArgs.UseLocalDatabase, folioConfig)
	migrateDatabase(db)

	if isDevMode {
		test.GenerateTestData(db)
	}

	var (
		userRepository = user.CreateRepository(db)
		userService    = user.CreateService(userRepository, authManager)
		userHandler    = user.CreateHandler(userService)

		libraryRepository = library.CreateRepository(db)
		libraryService    = library.CreateService(libraryRepository, userRepository)
		libraryHandler    = library.CreateHandler(libraryService)

		literatureRepository = literature.CreateRepository(db)
		literatureService    = literature.CreateService(literatureRepository, libraryRepository, userRepository)
		literatureHandler    = literature.CreateHandler(literatureService)
	)

	gin.SetMode(gin.ReleaseMode)
	webServer := gin.Default()

	user.RegisterRoutes(webServer, userHandler, authManager)
	literature.RegisterRoutes(webServer, literatureHandler, authManager)
	library.RegisterRoutes(webServer, libraryHandler, authManager)

	var serverWaitGroup sync.WaitGroup
	connection := fmt.Sprintf("%s:%d", folioConfig.Server.Host, folioConfig.Server.Port)

	serverWaitGroup.Add(1)
	go startWebServer(webServer, connection, &serverWaitGroup)

	log.Info("Folio API is ready to serve calls!", "conn", connection)
	serverWaitGroup.Wait()
}

func connectToDatabase(useLocalDatabase bool, config *config.FolioConfig) *gorm.DB {
	var (
		db  *gorm.DB
		err error
	)

	if useLocalDatabase {
		log.Info("Connecting to local SQLite database", "path", config.Database.LocalFile)

		db, err = gorm.Open(sqlite.Open(config.Database.LocalFile), &gorm.Config{})
	} else {
		connection := fmt.Sprintf("%s@%s:%d/%s", config.Database.User, config.Database.Host, config.Database.Port, config.Database.Database)
		log.Info("Connecting to remote PostgreSQL database", "conn", connection)

		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%d",
			config.Database.Host,
			config.Database.User,
			os.Getenv("FOLIO_DATABASE_PASSWORD"),
			config.Database.Database,
			config.Database.Port,
		)
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	if err != nil {
		log.Fatalf("Failed to connect to database: %s", err.Error())
		os.Exit(1)
	}

	return db
}

func migrateDatabase(db *gorm.DB) {
	if err := db.AutoMigrate(&user.User{}, &library.Library{}, &literature.Literature{}); err != nil {
		log.Fatalf("Failed to migrate database: %s", err.Error())
		os.Exit(1)
	}
}

func startWebServer(server *gin.Engine, socket string, waitGroup *sync.WaitGroup) {
	defer waitGroup.Done()

	if err := server.Run(socket); err != nil {
		log.Fatalf("Failed to start web server on %s: %s", socket, err.Error())
	}
}
