// Command export dumps the patient record set from the configured
// storage backend as CSV, for operators without access to the HTTP
// export endpoint.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/brsaude/patient-intake/cmd/mainconfig"
	appconfig "github.com/brsaude/patient-intake/internal/config"
	"github.com/brsaude/patient-intake/internal/patients"
	"github.com/brsaude/patient-intake/pkg/logging"
)

func main() {
	out := flag.String("o", "", "write CSV to this file instead of stdout")
	asJSON := flag.Bool("json", false, "dump the raw record set as JSON instead of CSV")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := appconfig.Load()
	logger := logging.New(cfg.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	repo, err := mainconfig.BuildRepository(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to build storage repository", "error", err)
		os.Exit(1)
	}

	set, err := repo.Load(ctx)
	if err != nil {
		logger.Error("failed to load patients", "error", err)
		os.Exit(1)
	}

	var payload string
	if *asJSON {
		payload, err = marshalSet(set)
		if err != nil {
			logger.Error("failed to encode patients", "error", err)
			os.Exit(1)
		}
	} else {
		payload = patients.ToCSV(set)
	}

	if *out == "" {
		fmt.Println(payload)
		return
	}
	if err := os.WriteFile(*out, []byte(payload), 0o644); err != nil {
		logger.Error("failed to write output file", "path", *out, "error", err)
		os.Exit(1)
	}
	logger.Info("export written", "path", *out, "records", len(set))
}

func marshalSet(set []patients.Patient) (string, error) {
	data, err := json.MarshalIndent(set, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
