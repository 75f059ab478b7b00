package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/kelseyhightower/envconfig"
	log "github.com/sirupsen/logrus"
)

const DEVELOPMENT = "development"
const STAGING = "staging"
const PRODUCTION = "production"

type DBConf struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	User     string `json:"user"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// APIConf holds the IHC attribution API credentials. All values are sourced
// from the environment, never from flags, so they stay out of process listings.
type APIConf struct {
	Endpoint   string `envconfig:"IHC_API_URL"`
	Key        string `envconfig:"IHC_API_KEY"`
	ConvTypeID string `envconfig:"IHC_CONV_TYPE_ID"`
}

type Configuration struct {
	AppName string `json:"app_name"`
	Env     string `json:"env"`
	DBInfo  DBConf `json:"db"`
}

type Services struct {
	Db *gorm.DB
}

var configuration *Configuration
var services = &Services{}
var initLoggingOnce sync.Once

// InitConf stores the configuration and sets up process-wide logging.
// Logging is configured exactly once per process, regardless of how many
// components initialize.
func InitConf(config *Configuration) {
	configuration = config
	initLoggingOnce.Do(initLogging)
}

func initLogging() {
	// Log as JSON instead of the default ASCII formatter.
	log.SetFormatter(&log.JSONFormatter{})

	if IsDevelopment() {
		log.SetLevel(log.DebugLevel)
	}
}

func InitDB(dbConf DBConf) error {
	db, err := gorm.Open("postgres", fmt.Sprintf("host=%s port=%d user=%s dbname=%s password=%s sslmode=disable",
		dbConf.Host,
		dbConf.Port,
		dbConf.User,
		dbConf.Name,
		dbConf.Password))
	if err != nil {
		log.WithFields(log.Fields{"err": err}).Error("Failed db initialization.")
		return err
	}

	// Connection pooling and logging.
	db.DB().SetMaxIdleConns(10)
	db.DB().SetMaxOpenConns(100)
	db.LogMode(IsDevelopment())

	services.Db = db
	log.Info("Db service initialized.")
	return nil
}

// LoadAPIConf reads the IHC API credentials from the environment and validates
// them before any network or db activity happens.
func LoadAPIConf() (*APIConf, error) {
	var conf APIConf
	if err := envconfig.Process("", &conf); err != nil {
		return nil, err
	}

	missing := make([]string, 0)
	if conf.Endpoint == "" {
		missing = append(missing, "IHC_API_URL")
	}
	if conf.Key == "" {
		missing = append(missing, "IHC_API_KEY")
	}
	if conf.ConvTypeID == "" {
		missing = append(missing, "IHC_CONV_TYPE_ID")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return &conf, nil
}

func GetConfig() *Configuration {
	return configuration
}

func GetServices() *Services {
	return services
}

func IsDevelopment() bool {
	return configuration != nil && configuration.Env == DEVELOPMENT
}
