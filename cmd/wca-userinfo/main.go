package main

import (
	"flag"
	"log/slog"
	"wca-userinfo/lib/serviceutil"
	"wca-userinfo/services/wcaprofile"
)

func main() {
	verbose := flag.Bool("v", false, "Enable verbose logging/instrumentation.")
	configPath := flag.String("config", "config.json5", "Path to the config file.")
	flag.Parse()

	ctx := serviceutil.SignalContext()

	InitTelemetry(ctx, *verbose)

	cfg, err := loadConfig(*configPath, ".env")
	if err != nil {
		serviceutil.Fatal("read config", err)
	}

	client, err := wcaprofile.NewClient(cfg.ClientOptions())
	if err != nil {
		serviceutil.Fatal("init wca client", err)
	}

	slog.Info("hosting wca-userinfo server", "port", cfg.Port, "upstream", client.BaseUrl.String())
	err = serviceutil.StartHttpServer(ctx, cfg.Port, wcaprofile.NewHandler(client))
	if err != nil {
		serviceutil.Fatal("serve http", err)
	}
}
