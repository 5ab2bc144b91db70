// Command resolve registers flights and prints resolved paths without
// going through the HTTP API.
//
//	resolve -register BAW117 -date 2024-03-01
//	resolve -id <flight-id> [-force]
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"air/atlas/internal/api"
	"air/atlas/internal/config"
	"air/atlas/internal/logging"
	"air/atlas/internal/metrics"
	"air/atlas/internal/services"

	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	register := flag.String("register", "", "flight code to register, e.g. BAW117")
	date := flag.String("date", "", "flight date (YYYY-MM-DD) for -register")
	id := flag.String("id", "", "flight id to resolve")
	force := flag.Bool("force", false, "rebuild the path even if a stored one is still valid")
	flag.Parse()

	if (*register == "") == (*id == "") {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load configuration: %v", err)
	}
	if err := logging.Init(cfg.AppEnv); err != nil {
		log.Fatalf("initialize logger: %v", err)
	}

	code := 0
	if err := run(cfg, *register, *date, *id, *force); err != nil {
		logging.Error("resolve failed", "error", err)
		fmt.Fprintln(os.Stderr, err)
		code = 1
	}
	logging.Close()
	os.Exit(code)
}

// run owns every resource it opens so they are released on any return path.
func run(cfg *config.Config, register, date, id string, force bool) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	deps, err := api.InitDependencies(ctx, cfg, metrics.NewMetricsRegistry(prometheus.NewRegistry()))
	if err != nil {
		return fmt.Errorf("initialize dependencies: %w", err)
	}
	defer deps.Close()

	if register != "" {
		ref, err := deps.Services.Registration.RegisterFlight(ctx, register, date)
		if err != nil {
			return fmt.Errorf("register %s: %w", register, err)
		}
		fmt.Println(ref.ID)
		return nil
	}

	res, err := deps.Services.FlightPaths.Resolve(ctx, id, services.ResolveOptions{ForceRefresh: force})
	if err != nil {
		return fmt.Errorf("resolve %s: %w", id, err)
	}
	if res.Status == services.ResolutionInvalid {
		return fmt.Errorf("flight %s is invalid: %s", id, res.Reason)
	}
	fmt.Print(res.Path)
	return nil
}
