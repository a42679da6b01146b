package main

import (
	"github.com/matryer/way"
)

const URI_SNAPSHOT = "/snapshot"
const URI_EVENTS = "/events"
const URI_HEALTH = "/healthz"

func (s *Server) routes() {
	s.router = way.NewRouter()
	s.router.HandleFunc("GET", URI_SNAPSHOT, s.Runner.HandleSnapshot())
	s.router.HandleFunc("GET", URI_EVENTS, s.Runner.HandleEvents())
	s.router.HandleFunc("GET", URI_HEALTH, s.Runner.HandleHealth())
}
