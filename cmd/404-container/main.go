// Command 404-container is a minimal TCP responder: it reads at most one
// request line per connection, classifies it against a fixed rule set and
// answers with a canned status line before closing the connection.
package main

import (
	"log"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/Aeron/404-container/pkg/server"
)

const defaultPort = 8080

func main() {
	// The first SIGHUP, SIGINT or SIGTERM exits immediately. In-flight
	// connections are not drained; a restart may truncate responses.
	go func() {
		signals := make(chan os.Signal, 1)
		signal.Notify(signals, syscall.SIGHUP, os.Interrupt, syscall.SIGTERM)
		<-signals
		log.Println("Quitting")
		os.Exit(0)
	}()

	port := defaultPort
	if value, ok := os.LookupEnv("PORT"); ok {
		parsed, err := strconv.ParseUint(value, 10, 16)
		if err != nil {
			log.Fatalf("Invalid port %q; Quitting", value)
		}
		port = int(parsed)
	}

	addr := net.JoinHostPort("0.0.0.0", strconv.Itoa(port))

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatalf("Cannot listen on %s: %v", addr, err)
	}
	log.Printf("Listening on %s", addr)

	// The listener bound above owns the address; Config.Addr only matters
	// for ListenAndServe.
	srv := server.New(server.Config{})
	if err := srv.Serve(ln); err != nil {
		log.Fatal(err)
	}
}
