// Package listener owns the process-wide socket of the cron test endpoint.
//
// The socket is bound before anything is announced, so once the startup line
// has been written a client can connect without being refused: pending
// connections wait in the kernel backlog until Serve starts accepting.
package listener

import (
	"io"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/ricksege/AnsibleDev/internal/probe"
)

const (
	Port = "3000"
	Addr = ":" + Port
)

// StartupLine is written once to the startup logger after a successful bind.
const StartupLine = "Server running"

// Listener is a bound socket plus the HTTP server answering on it.
type Listener struct {
	ln  net.Listener
	srv *http.Server
}

// NewHandler routes every method and every path to probe.Handler.
func NewHandler() http.Handler {
	h := http.HandlerFunc(probe.Handler)

	// SkipClean keeps mux from redirecting paths like "//a/../b".
	r := mux.NewRouter().SkipClean(true)
	r.PathPrefix("/").Handler(h)
	r.NotFoundHandler = h
	r.MethodNotAllowedHandler = h
	return r
}

// Listen binds addr and, on success, writes StartupLine to logger. Bind
// errors are returned as-is from net.Listen and nothing is logged.
func Listen(addr string, logger *log.Logger) (*Listener, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}

	srv := &http.Server{
		Handler:      NewHandler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		// "OPTIONS *" goes to the router too, not net/http's built-in reply
		DisableGeneralOptionsHandler: true,
		// connection-level errors are absorbed silently
		ErrorLog: log.New(io.Discard, "", 0),
	}

	logger.Println(StartupLine)
	return &Listener{ln: ln, srv: srv}, nil
}

func (l *Listener) Addr() net.Addr {
	return l.ln.Addr()
}

// Serve blocks answering connections, one goroutine each. It returns
// http.ErrServerClosed after Close, or the accept error that stopped it.
func (l *Listener) Serve() error {
	return l.srv.Serve(l.ln)
}

// Close drops the socket and every open connection immediately.
func (l *Listener) Close() error {
	err := l.srv.Close()
	// Serve may not have started tracking ln yet.
	_ = l.ln.Close()
	return err
}

// Start binds Addr on all interfaces and serves until a fatal error.
func Start(logger *log.Logger) error {
	l, err := Listen(Addr, logger)
	if err != nil {
		return err
	}
	return l.Serve()
}
