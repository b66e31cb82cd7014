package main

import (
	"context"
	"wca-userinfo/cmd/wca-cli/commands"
	"wca-userinfo/lib/telemetry"
)

func main() {
	telemetry.InitSlog(false)
	commands.ExecuteContext(context.Background())
}
