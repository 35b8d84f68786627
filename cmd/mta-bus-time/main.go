package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/sync/errgroup"

	"github.com/chintito4ever/mta-bus-time/bustime"
	"github.com/chintito4ever/mta-bus-time/config"
	"github.com/chintito4ever/mta-bus-time/handlers"
	"github.com/chintito4ever/mta-bus-time/internal"
	"github.com/chintito4ever/mta-bus-time/sensor"
)

func main() {
	mode := flag.String("mode", "serve", "serve|oneshot")
	cfgPath := flag.String("config", "", "path to config.yml")
	port := flag.Int("port", 0, "HTTP port (overrides config)")
	flag.Parse()

	internal.InitLogging()
	if err := config.LoadAppConfig(*cfgPath); err != nil {
		log.Fatalf("config: %v", err)
	}
	cfg := config.Config
	if *port > 0 {
		cfg.Server.Port = *port
	}

	client := bustime.NewClient(
		cfg.BusTime.BaseURL,
		cfg.BusTime.APIKey,
		cfg.BusTime.OperatorRef,
		time.Duration(cfg.BusTime.TimeoutMS)*time.Millisecond,
		nil,
	)
	entities := buildEntities(client, cfg)

	switch *mode {
	case "oneshot":
		if err := runOneshot(entities); err != nil {
			log.Fatalf("oneshot: %v", err)
		}
	case "serve":
		if err := runServe(entities, cfg); err != nil {
			log.Fatalf("serve: %v", err)
		}
	default:
		log.Fatalf("unknown mode %q", *mode)
	}
}

// buildEntities turns the configured departures into sensors. A lone
// departure fetches directly; a group shares one throttled cache so a single
// update cycle costs one provider pass.
func buildEntities(client *bustime.Client, cfg config.AppConfig) []sensor.Entity {
	departures := config.ResolveDepartures(cfg)
	targets := make([]bustime.Target, 0, len(departures))
	for _, d := range departures {
		targets = append(targets, bustime.Target{
			Name:          d.Name,
			MonitoringRef: d.MonitoringRef,
			LineRef:       d.Route,
		})
	}

	if len(targets) == 1 && len(cfg.Departures) == 0 {
		return []sensor.Entity{sensor.NewStopSensor(client, targets[0], nil)}
	}

	interval := time.Duration(cfg.BusTime.RefreshIntervalS) * time.Second
	cache := bustime.NewStopCache(client, targets, interval, nil)
	entities := make([]sensor.Entity, 0, len(targets))
	for _, t := range targets {
		entities = append(entities, sensor.NewDepartureSensor(cache, t, nil))
	}
	return entities
}

func runOneshot(entities []sensor.Entity) error {
	ctx := context.Background()
	now := time.Now()
	out := make([]map[string]any, 0, len(entities))
	for _, e := range entities {
		e.Update(ctx, now)
		out = append(out, map[string]any{
			"name":       e.Name(),
			"state":      e.State(),
			"attributes": e.Attributes(),
		})
	}
	buf, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(buf))
	return nil
}

func runServe(entities []sensor.Entity, cfg config.AppConfig) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r := mux.NewRouter()
	handlers.RegisterRoutes(r, entities)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	interval := time.Duration(cfg.BusTime.RefreshIntervalS) * time.Second

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		updateAll(ctx, entities)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				updateAll(ctx, entities)
			}
		}
	})
	g.Go(func() error {
		errCh := make(chan error, 1)
		go func() {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				errCh <- err
			}
		}()
		log.Printf("server listening on %s", srv.Addr)
		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Printf("server shutdown error: %v", err)
			}
			return nil
		}
	})
	return g.Wait()
}

func updateAll(ctx context.Context, entities []sensor.Entity) {
	now := time.Now()
	for _, e := range entities {
		e.Update(ctx, now)
	}
}
