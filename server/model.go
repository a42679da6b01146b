package server

import (
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/toxicgrid/model"
)

// Runner drives one headless Simulation from a single goroutine (Loop)
// and fans its events out to websocket subscribers.
type Runner struct {
	Sim           *model.Simulation
	Clock         *model.Clock
	FrameInterval time.Duration
	StepInterval  time.Duration
	Upgrader      *websocket.Upgrader
	Log           *log.Entry

	subscribers map[uuid.UUID]*Subscriber
	subscribe   chan *Subscriber
	unsubscribe chan uuid.UUID
	snapshots   chan chan model.Snapshot
	done        chan struct{}
}

type SubscriberState int

const (
	SS_NEW SubscriberState = iota + 1
	SS_LIVE
	SS_CLOSED
)

// Subscriber is one websocket client of /events. Only the Runner's loop
// touches State and Dropped.
type Subscriber struct {
	Id     uuid.UUID
	State  SubscriberState
	Codec  Codec
	Conn   *websocket.Conn
	Events chan model.Event

	Dropped          int
	DebugOutMessages int
	DebugLastPing    time.Time
	DebugPings       int
}
