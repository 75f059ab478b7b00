package main

import (
	"flag"
	"fmt"

	log "github.com/sirupsen/logrus"

	C "attribution/config"
	U "attribution/util"

	"attribution/task/attribution"
)

func main() {
	env := flag.String("env", "development", "")
	dbHost := flag.String("db_host", "localhost", "")
	dbPort := flag.Int("db_port", 5432, "")
	dbUser := flag.String("db_user", "attribution", "")
	dbName := flag.String("db_name", "attribution", "")
	dbPass := flag.String("db_pass", "", "")

	startDate := flag.String("start_date", "", "Report start date (YYYY-MM-DD). Defaults to the last 30 days.")
	endDate := flag.String("end_date", "", "Report end date (YYYY-MM-DD), inclusive.")

	transformedDataPath := flag.String("transformed_data_path", "data/output/transformed_data.json", "")
	apiResponsePath := flag.String("api_response_path", "data/output/api_response.json", "")
	channelReportPath := flag.String("channel_report_path", "data/output/channel_report.csv", "")

	flag.Parse()

	if *env != C.DEVELOPMENT &&
		*env != C.STAGING &&
		*env != C.PRODUCTION {
		err := fmt.Errorf("env [ %s ] not recognised", *env)
		panic(err)
	}

	config := &C.Configuration{
		AppName: "run_attribution",
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

	apiConf, err := C.LoadAPIConf()
	if err != nil {
		log.WithError(err).Fatal("Missing IHC API configuration.")
	}

	if err := C.InitDB(config.DBInfo); err != nil {
		log.WithError(err).Fatal("Failed to initialize db in attribution run.")
	}
	defer C.GetServices().Db.Close()

	if *startDate == "" && *endDate == "" {
		*startDate, *endDate = U.GetDefaultDateRange()
		log.WithFields(log.Fields{
			"start_date": *startDate,
			"end_date":   *endDate,
		}).Info("Using default date range.")
	}

	client := attribution.NewClient(apiConf.Endpoint, apiConf.Key)
	err = attribution.RunAttribution(client, apiConf.ConvTypeID, attribution.Options{
		StartDate:           *startDate,
		EndDate:             *endDate,
		TransformedDataPath: *transformedDataPath,
		APIResponsePath:     *apiResponsePath,
		ChannelReportPath:   *channelReportPath,
	})
	if err != nil {
		log.WithError(err).Fatal("Attribution pipeline failed.")
	}

	log.Info("Successfully completed attribution run.")
}
