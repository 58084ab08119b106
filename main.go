package main

import (
	"os"
	"time"

	"faultcode-go/apperror"
	"faultcode-go/errcode"
	"faultcode-go/x/logx"
)

func main() {
	logx.Init(os.Stdout)
	apperror.SetHandler(apperror.SaveAndStop)

	logx.Info("boot")

	// Periodic health probe; a non-success code halts through the fault plane.
	tick := time.NewTicker(1 * time.Second)
	defer tick.Stop()

	for range tick.C {
		apperror.Check(healthCheck())
		logx.Info("heartbeat")
	}
}

// healthCheck stands in for a real subsystem probe.
func healthCheck() errcode.Code { return errcode.Success }
