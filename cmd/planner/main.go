package main

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"

	"trip-planner/internal/adapters/cache"
	"trip-planner/internal/adapters/geocode"
	"trip-planner/internal/adapters/mapview"
	"trip-planner/internal/adapters/tripapi"
	"trip-planner/internal/config"
	"trip-planner/internal/domain"
	"trip-planner/internal/platform/db"
	"trip-planner/internal/ports"
	"trip-planner/internal/services"
)

// main is the planner composition root.
// It wires the backend client, caches, geocoder and map snapshot behind
// ports, starts the sync engine and hands control to the command shell.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.LoadConfig(config.Get("CONFIG_PATH", "config.yml"))
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	routeCache, placeCache, closeCaches, err := buildCaches(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer closeCaches()

	client, err := tripapi.NewClient(
		cfg.Backend.BaseURL,
		routeCache,
		time.Duration(cfg.Backend.TimeoutMS)*time.Millisecond,
	)
	if err != nil {
		log.Fatal(err)
	}

	// The token comes from the backend once at startup. Without it the
	// map snapshot and reverse geocoding degrade; routing still works.
	token, err := client.MapboxToken(ctx)
	if err != nil {
		log.Printf("mapbox token unavailable: %v", err)
		token = ""
	}

	var geocoder ports.Geocoder
	if token != "" {
		g, err := geocode.NewMapboxGeocoder(cfg.Mapbox.GeocodeURL, token, placeCache)
		if err != nil {
			log.Printf("reverse geocoding disabled: %v", err)
		} else {
			geocoder = g
		}
	} else {
		log.Println("reverse geocoding disabled: no mapbox token")
	}

	view := mapview.NewGeoJSONView(cfg.Snapshot.Path, token)
	view.OnClick(func(at domain.Coordinates) {
		fmt.Println(describePosition(ctx, geocoder, at))
	})

	engine := services.NewRouteSyncEngine(client, client)

	go renderLoop(engine, view)

	if err := engine.Refresh(ctx); err != nil {
		log.Printf("initial marker load failed: %v", err)
	}

	runShell(ctx, engine, view)
}

// renderLoop redraws the snapshot after every published change. Marker
// styling is recomputed from scratch each time and the view replaces
// its whole feature set per render, so no state leaks between renders.
func renderLoop(engine *services.RouteSyncEngine, view ports.MapView) {
	for range engine.Updates() {
		snap := engine.Snapshot()

		view.SetMarkers(services.PresentMarkers(snap.Stops, snap.CurrentStop))
		if snap.RouteAvailable() {
			view.SetRouteLine(snap.Route.Geometry)
			log.Printf("route updated stops=%d legs=%d distance=%dm duration=%ds",
				len(snap.Stops), len(snap.Route.Legs),
				snap.Route.TotalDistanceMeters, snap.Route.TotalDurationSeconds)
		} else {
			view.SetRouteLine(nil)
		}
	}
}

// buildCaches picks the cache backing store from configuration. The
// returned closer is a no-op for drivers without a connection to hold.
func buildCaches(ctx context.Context, cfg *config.AppConfig) (ports.RouteCache, ports.PlaceCache, func(), error) {
	ttl := time.Duration(cfg.Cache.RouteTTLMS) * time.Millisecond

	switch cfg.Cache.Driver {
	case "", "none":
		return nil, nil, func() {}, nil

	case "sqlite":
		conn, err := sql.Open("sqlite", cfg.Cache.Path)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("open cache database %q: %w", cfg.Cache.Path, err)
		}
		if err := conn.Ping(); err != nil {
			conn.Close()
			return nil, nil, nil, fmt.Errorf("verify cache database %q: %w", cfg.Cache.Path, err)
		}
		if err := cache.InitSchema(conn); err != nil {
			conn.Close()
			return nil, nil, nil, err
		}
		return cache.NewSqliteRouteCache(conn, ttl), cache.NewSqlitePlaceCache(conn), func() { conn.Close() }, nil

	case "postgres":
		databaseURL := os.Getenv("DATABASE_URL")
		if strings.TrimSpace(databaseURL) == "" {
			return nil, nil, nil, errors.New("cache driver postgres requires DATABASE_URL")
		}
		conn, err := db.Open(ctx, databaseURL)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := cache.InitSchema(conn); err != nil {
			conn.Close()
			return nil, nil, nil, err
		}
		return cache.NewSQLRouteCache(conn, ttl), cache.NewSQLPlaceCache(conn), func() { conn.Close() }, nil

	case "redis":
		client := redis.NewClient(&redis.Options{Addr: cfg.Cache.RedisAddr})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, nil, nil, fmt.Errorf("verify redis at %q: %w", cfg.Cache.RedisAddr, err)
		}
		// Redis holds routes only; place lookups go to the API each time.
		return cache.NewRedisRouteCache(client, ttl), nil, func() { client.Close() }, nil
	}

	return nil, nil, nil, fmt.Errorf("unknown cache driver %q", cfg.Cache.Driver)
}

const shellHelp = `commands:
  stops              list stops; * marks the current stop
  route              show the active route with instructions
  next               advance to the next stop
  start <address>    make the stop with this address the start location
  delete <address>   remove the stop with this address
  where <lat,lng>    look up a map position
  fly <lat,lng>      center the snapshot on a position
  refresh            reload markers from the backend
  quit`

func runShell(ctx context.Context, engine *services.RouteSyncEngine, view *mapview.GeoJSONView) {
	fmt.Println(shellHelp)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		command, arg := splitCommand(line)

		switch command {
		case "stops":
			printStops(engine.Snapshot())

		case "route":
			printRoute(engine.Snapshot())

		case "next":
			if !engine.AdvanceCurrentStop() {
				fmt.Println("cannot advance: no current route or already at the last stop")
				continue
			}
			snap := engine.Snapshot()
			if snap.CurrentStop < len(snap.Stops) {
				view.FlyTo(snap.Stops[snap.CurrentStop].Coords)
			}

		case "start":
			if arg == "" {
				fmt.Println("usage: start <address>")
				continue
			}
			if !engine.SetStartLocation(ctx, arg) {
				fmt.Printf("no stop with address %q\n", arg)
			}

		case "delete":
			if arg == "" {
				fmt.Println("usage: delete <address>")
				continue
			}
			if err := engine.Delete(ctx, arg); err != nil {
				log.Printf("delete failed: %v", err)
			}

		case "where":
			at, err := parseLatLng(arg)
			if err != nil {
				fmt.Println("usage: where <lat,lng>")
				continue
			}
			view.Click(at)

		case "fly":
			at, err := parseLatLng(arg)
			if err != nil {
				fmt.Println("usage: fly <lat,lng>")
				continue
			}
			view.FlyTo(at)

		case "refresh":
			if err := engine.Refresh(ctx); err != nil {
				log.Printf("refresh failed: %v", err)
			}

		case "help":
			fmt.Println(shellHelp)

		case "quit", "exit":
			return

		default:
			fmt.Printf("unknown command %q (try help)\n", command)
		}
	}
}

func splitCommand(line string) (command, arg string) {
	parts := strings.SplitN(line, " ", 2)
	command = parts[0]
	if len(parts) == 2 {
		arg = strings.TrimSpace(parts[1])
	}
	return command, arg
}

func printStops(snap services.Snapshot) {
	if len(snap.Stops) == 0 {
		fmt.Println("no stops loaded")
		return
	}

	for i, s := range snap.Stops {
		marker := " "
		if i == snap.CurrentStop {
			marker = "*"
		}
		fmt.Printf("%s %2d. %s (%.5f,%.5f)\n", marker, i+1, s.Address, s.Coords.Lat, s.Coords.Lon)
	}
}

func printRoute(snap services.Snapshot) {
	if !snap.RouteAvailable() {
		fmt.Println("no route available")
		return
	}

	route := snap.Route
	for i, leg := range route.Legs {
		fmt.Printf("leg %d: %s -> %s (%s, %s)\n",
			i+1, leg.StartAddress, leg.EndAddress, leg.DistanceText, leg.DurationText)
		for _, step := range leg.Steps {
			fmt.Printf("    %s (%s)\n", step.Instruction, step.DistanceText)
		}
	}
	fmt.Printf("total: %dm over %d legs, about %ds of travel\n",
		route.TotalDistanceMeters, len(route.Legs), route.TotalDurationSeconds)
}

func describePosition(ctx context.Context, geocoder ports.Geocoder, at domain.Coordinates) string {
	position := fmt.Sprintf("%.5f,%.5f", at.Lat, at.Lon)
	if geocoder == nil {
		return "clicked " + position
	}

	place, err := geocoder.ReverseGeocode(ctx, at)
	if err != nil {
		log.Printf("reverse geocode failed: %v", err)
		return "clicked " + position
	}
	return "clicked " + position + ": " + place
}

// parseLatLng reads the shell position format, latitude first, matching
// the wire format of the directions endpoints.
func parseLatLng(raw string) (domain.Coordinates, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != 2 {
		return domain.Coordinates{}, fmt.Errorf("position %q must be lat,lng", raw)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("position %q: invalid latitude", raw)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("position %q: invalid longitude", raw)
	}

	return domain.Coordinates{Lon: lng, Lat: lat}, nil
}
