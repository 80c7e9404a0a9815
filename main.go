package main

import (
	"fmt"
	"os"
)

const version = "0.1.0"

func main() {
	cli := parseArgs(os.Args[1:])

	switch cli.mode {
	case probeMode:
		checkf(runProbe(), "probe failed")
	case monitorMode:
		checkf(runMonitor(), "monitor failed")
	case versionMode:
		fmt.Println("padkit", version)
	}
}

func checkf(err error, format string, args ...any) {
	if err == nil {
		return
	}

	fmt.Fprintf(os.Stderr, "fatal error:")
	fmt.Fprintf(os.Stderr, "\n\t%s: %s\n", fmt.Sprintf(format, args...), err)
	os.Exit(1)
}
