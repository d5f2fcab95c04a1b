package spectate

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/lixenwraith/spacewar/constants"
)

// Server exposes a Hub at GET /ws and throttles publishing to the broadcast interval
type Server struct {
	Hub *Hub

	srv      *http.Server
	ln       net.Listener
	interval time.Duration
	last     time.Time
}

// Start listens on addr and serves the feed in the background
// Listen errors are returned immediately
func Start(addr string) (*Server, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("spectate listen %s: %w", addr, err)
	}

	hub := NewHub(constants.SpectateSendBuffer, constants.SpectateWriteTimeout)
	mux := http.NewServeMux()
	mux.Handle("GET /ws", hub)

	s := &Server{
		Hub:      hub,
		srv:      &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second},
		ln:       ln,
		interval: constants.SpectateBroadcastInterval,
	}
	go func() {
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("spectate server: %v", err)
		}
	}()
	log.Printf("spectate feed on ws://%s/ws", ln.Addr())
	return s, nil
}

// Addr returns the bound listen address
func (s *Server) Addr() net.Addr {
	return s.ln.Addr()
}

// Offer publishes the frame if the broadcast interval has elapsed since the last publish
// build is only called when a frame is due
func (s *Server) Offer(now time.Time, build func() Frame) {
	if !s.last.IsZero() && now.Sub(s.last) < s.interval {
		return
	}
	s.last = now
	f := build()
	if err := s.Hub.Publish(&f); err != nil {
		log.Printf("spectate publish: %v", err)
	}
}

// Shutdown disconnects spectators and stops the listener
func (s *Server) Shutdown(ctx context.Context) error {
	s.Hub.Close()
	return s.srv.Shutdown(ctx)
}
