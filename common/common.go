package common

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
)

// Bytes!
const (
	KibiByte int64 = 1024
	MebiByte int64 = 1024 * KibiByte
	GibiByte int64 = 1024 * MebiByte
	TebiByte int64 = 1024 * GibiByte
)

// DefaultPricePerTB is the on-demand analysis list price used when a project
// has no pricing configured.
const DefaultPricePerTB = 5.0

var (
	// ProjectID is the GCP project hosting the service's Firestore database.
	ProjectID string

	GAEService string

	GAEVersion string

	// Production flag indicating if the app is running the production backend.
	Production bool

	// IsLocalhost flag indicating if the app is running on localhost.
	IsLocalhost bool
)

func init() {
	initEnvVariables()
}

func initEnvVariables() {
	IsLocalhost = gin.Mode() != gin.ReleaseMode

	ProjectID = GetEnv("GOOGLE_CLOUD_PROJECT", "")
	if ProjectID == "" {
		if !IsLocalhost {
			log.Fatalln("environment variable GOOGLE_CLOUD_PROJECT is not set")
		}

		ProjectID = "querylens-dev"
	}
	GAEService = GetEnv("GAE_SERVICE", "querylens-api")
	GAEVersion = GetEnv("GAE_VERSION", "localhost")

	if value := os.Getenv("FIRESTORE_EMULATOR_HOST"); value != "" {
		log.Printf("Using Firestore Emulator: %s", value)
	}

	Production = !IsLocalhost
}

// GetEnv returns the value of the environment variable named by key,
// or fallback when it is unset or empty.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}

	return fallback
}
