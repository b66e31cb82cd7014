package main

import (
	"context"
	"log/slog"
	"wca-userinfo/lib/restyutil"
	"wca-userinfo/lib/serviceutil"
	"wca-userinfo/lib/telemetry"
	"wca-userinfo/services/wcaprofile"
)

func InitTelemetry(ctx context.Context, verbose bool) {
	telemetry.InitSlog(verbose)

	if verbose {
		slog.DebugContext(ctx, "verbose logging enabled")
	}

	t, err := telemetry.SetupFromEnv(ctx, "wca-userinfo")
	if err != nil {
		serviceutil.Fatal("setup telemetry", err)
	}
	go func() {
		<-ctx.Done()
		t.Shutdown(context.Background())
	}()
	telemetry.InstrumentPerfStats(ctx)

	if !verbose {
		return
	}

	out, err := restyutil.NewFilesystemOutput(".dev/resty/wcaprofile")
	if err != nil {
		slog.WarnContext(ctx, "failed to create resty output directory", "err", err)
		return
	}
	wcaprofile.SetRestyInstrumentOutput(out)
}
