package main

// Creates the five fixed tables of the attribution pipeline.
// Example usage on terminal:
// go run scripts/run_db_create/run_db_create.go --env=development --db_pass=...

import (
	"flag"
	"fmt"

	log "github.com/sirupsen/logrus"

	C "attribution/config"
	"attribution/model/model"
)

func main() {
	env := flag.String("env", "development", "")
	dbHost := flag.String("db_host", "localhost", "")
	dbPort := flag.Int("db_port", 5432, "")
	dbUser := flag.String("db_user", "attribution", "")
	dbName := flag.String("db_name", "attribution", "")
	dbPass := flag.String("db_pass", "", "")

	flag.Parse()

	if *env != C.DEVELOPMENT &&
		*env != C.STAGING &&
		*env != C.PRODUCTION {
		err := fmt.Errorf("env [ %s ] not recognised", *env)
		panic(err)
	}

	config := &C.Configuration{
		AppName: "run_db_create",
		Env:     *env,
		DBInfo: C.DBConf{
			Host:     *dbHost,
			Port:     *dbPort,
			User:     *dbUser,
			Name:     *dbName,
			Password: *dbPass,
		},
	}

	C.InitConf(config)
	if err := C.InitDB(config.DBInfo); err != nil {
		log.WithError(err).Fatal("Failed to initialize db in db create.")
	}

	db := C.GetServices().Db
	defer db.Close()

	// Create session_sources table.
	if err := db.CreateTable(&model.SessionSource{}).Error; err != nil {
		log.WithFields(log.Fields{"err": err}).Error("session_sources table creation failed.")
	} else {
		log.Info("Created session_sources table.")
	}

	// Create conversions table.
	if err := db.CreateTable(&model.Conversion{}).Error; err != nil {
		log.WithFields(log.Fields{"err": err}).Error("conversions table creation failed.")
	} else {
		log.Info("Created conversions table.")
	}

	// Create session_costs table.
	if err := db.CreateTable(&model.SessionCost{}).Error; err != nil {
		log.WithFields(log.Fields{"err": err}).Error("session_costs table creation failed.")
	} else {
		log.Info("Created session_costs table.")
	}

	// Create attribution_customer_journey table. The composite primary key is
	// the conflict target of the loader's upsert.
	if err := db.CreateTable(&model.AttributionRecord{}).Error; err != nil {
		log.WithFields(log.Fields{"err": err}).Error("attribution_customer_journey table creation failed.")
	} else {
		log.Info("Created attribution_customer_journey table.")
	}

	// Create channel_reporting table.
	if err := db.CreateTable(&model.ChannelReporting{}).Error; err != nil {
		log.WithFields(log.Fields{"err": err}).Error("channel_reporting table creation failed.")
	} else {
		log.Info("Created channel_reporting table.")
	}
}
