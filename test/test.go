package test

import (
	"path/filepath"
	"testing"

	"folioBackend/auth"
	"folioBackend/config"
	"folioBackend/domain/library"
	"folioBackend/domain/literature"
	"folioBackend/domain/user"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Fixed uuids so tests can reference the seeded records directly.
const (
	AliceUserId = "11111111-1111-1111-1111-111111111111"
	BobUserId   = "22222222-2222-2222-2222-222222222222"

	// Owned by Alice
	GoBookId = "aaaaaaaa-0000-0000-0000-000000000001"
	// Owned by Bob
	RaftPaperId = "bbbbbbbb-0000-0000-0000-000000000001"

	// Alice's libraries: the first contains the Raft paper, the second is empty
	DistSysLibraryId     = "cccccccc-0000-0000-0000-000000000001"
	ReadingListLibraryId = "cccccccc-0000-0000-0000-000000000002"
	// Bob's library, contains the Go book
	CompilersLibraryId = "dddddddd-0000-0000-0000-000000000001"

	AlicePassword = "alice-secret"
	BobPassword   = "bob-secret"
)

// GenerateTestData resets the schema and seeds two users, two literature
// items and three libraries with one membership each way across owners.
func GenerateTestData(db *gorm.DB) {
	db.Exec("DROP TABLE IF EXISTS library_literatures")
	db.Exec("DROP TABLE IF EXISTS libraries")
	db.Exec("DROP TABLE IF EXISTS literatures")
	db.Exec("DROP TABLE IF EXISTS users")

	if err := db.AutoMigrate(&user.User{}, &library.Library{}, &literature.Literature{}); err != nil {
		panic("Failed to migrate test schema: " + err.Error())
	}

	alice := user.User{
		UUID:         AliceUserId,
		Username:     "alice",
		PasswordHash: mustHash(AlicePassword),
	}
	bob := user.User{
		UUID:         BobUserId,
		Username:     "bob",
		PasswordHash: mustHash(BobPassword),
	}
	db.Create(&alice)
	db.Create(&bob)

	distSys := library.Library{
		UUID:        DistSysLibraryId,
		Name:        "Distributed Systems",
		Description: "Consensus and replication",
		Creator:     alice,
	}
	readingList := library.Library{
		UUID:    ReadingListLibraryId,
		Name:    "Reading List",
		Creator: alice,
	}
	compilers := library.Library{
		UUID:    CompilersLibraryId,
		Name:    "Compilers",
		Creator: bob,
	}
	db.Create(&distSys)
	db.Create(&readingList)
	db.Create(&compilers)

	db.Create(&literature.Literature{
		UUID:           GoBookId,
		Title:          "The Go Programming Language",
		Authors:        "Alan A. A. Donovan, Brian W. Kernighan",
		Description:    "Reference for the Go language",
		Url:            "https://www.gopl.io",
		LiteratureType: literature.TypeBook,
		Creator:        alice,
		Libraries:      []*library.Library{&compilers},
	})

	db.Create(&literature.Literature{
		UUID:           RaftPaperId,
		Title:          "In Search of an Understandable Consensus Algorithm",
		Authors:        "Diego Ongaro, John Ousterhout",
		Description:    "The Raft paper",
		LiteratureType: literature.TypeConferencePaper,
		Creator:        bob,
		Libraries:      []*library.Library{&distSys},
	})
}

// SetupTestServer wires the full engine against a fresh throwaway database
// with seeded data and a real auth manager issuing HS256 tokens.
func SetupTestServer(t *testing.T) (*gin.Engine, auth.AuthManager, *gorm.DB) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "folio-test.db")), &gorm.Config{})
	require.NoError(t, err)

	GenerateTestData(db)

	testConfig := &config.FolioConfig{
		Auth: config.AuthConfig{
			EnableNative: true,
		},
	}
	authManager := auth.CreateAuthManager(testConfig)

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

	router := gin.New()

	user.RegisterRoutes(router, userHandler, authManager)
	literature.RegisterRoutes(router, literatureHandler, authManager)
	library.RegisterRoutes(router, libraryHandler, authManager)

	return router, authManager, db
}

// AccessTokenFor mints a valid access token for one of the seeded users.
func AccessTokenFor(t *testing.T, authManager auth.AuthManager, userId string, username string) string {
	t.Helper()

	token, err := authManager.CreateAccessToken(auth.AuthenticatedUser{
		UserId:   userId,
		Username: username,
	})
	require.NoError(t, err)

	return token
}

func mustHash(password string) string {
	hash, err := auth.HashPassword(password)
	if err != nil {
		panic("Failed to hash seed password: " + err.Error())
	}

	return hash
}
