// Command worm-server exposes worm sessions over WebSocket
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/lixenwraith/worms/config"
	"github.com/lixenwraith/worms/network"
)

var (
	configPath = flag.String("config", "", "Path to TOML config file")
	addrFlag   = flag.String("addr", "", "Listen address, overrides config")
	debugFlag  = flag.Bool("debug", false, "Write logs to logs/worm-server.log")
	schemaFlag = flag.Bool("schema", false, "Print the protocol JSON schema and exit")
)

// networkConfig maps the loaded settings onto the network package defaults
func networkConfig(cfg *config.Config, addr string) *network.Config {
	nc := network.DefaultConfig()
	nc.Address = cfg.Server.Address
	nc.ReadTimeout = cfg.Server.ReadTimeout
	nc.WriteTimeout = cfg.Server.WriteTimeout
	nc.PingInterval = cfg.Server.PingInterval
	nc.ReadLimit = cfg.Server.ReadLimit
	if addr != "" {
		nc.Address = addr
	}
	return nc
}

func main() {
	flag.Parse()

	if *schemaFlag {
		data, err := network.MarshalSchema()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to build schema: %v\n", err)
			os.Exit(1)
		}
		os.Stdout.Write(data)
		return
	}

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := network.NewServer(networkConfig(cfg, *addrFlag))
	if err := srv.ListenAndServe(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Printf("server: %v", err)
		os.Exit(1)
	}
	log.Printf("server stopped")
}
