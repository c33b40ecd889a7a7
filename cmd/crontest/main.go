package main

import (
	"log"
	"net/http"
	"os"

	"github.com/ricksege/AnsibleDev/internal/listener"
)

func main() {
	// the startup line must be exactly "Server running" on stdout
	stdout := log.New(os.Stdout, "", 0)

	// bind errors land here too: net.Listen reports them as "listen tcp :3000: ..."
	if err := listener.Start(stdout); err != nil && err != http.ErrServerClosed {
		log.Fatalf("crontest: %v", err)
	}
}
