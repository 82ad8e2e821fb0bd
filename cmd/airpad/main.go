// Package main starts the AirPad host server.
package main

import "flag"

// main is the entrypoint for the AirPad host server.
func main() {
	addr := flag.String("addr", "", "Listen address override (host:port)")
	flag.Parse()

	if err := run(*addr); err != nil {
		logFatal(err)
	}
}
