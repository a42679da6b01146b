package server

import (
	"context"
	"encoding/json"
	"math/rand"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/toxicgrid/model"
)

const subscriberBuffer = 64

// NewRunner lays out a populated simulation without any drawing surface.
func NewRunner(cfg model.Config, settings Settings) *Runner {
	sim := model.New(cfg, settings.Width, settings.Height, nil, rand.New(rand.NewSource(settings.Seed)))
	sim.Populate()
	return &Runner{
		Sim:           sim,
		Clock:         model.NewClock(sim, cfg.StepInterval),
		FrameInterval: time.Second / 60,
		StepInterval:  cfg.StepInterval,
		Upgrader:      &websocket.Upgrader{},
		Log:           log.WithField("component", "runner"),
		subscribers:   make(map[uuid.UUID]*Subscriber),
		subscribe:     make(chan *Subscriber),
		unsubscribe:   make(chan uuid.UUID),
		snapshots:     make(chan chan model.Snapshot),
		done:          make(chan struct{}),
	}
}

// Loop owns the simulation until ctx is done, then tears it down and
// closes every subscription.
func (r *Runner) Loop(ctx context.Context) {
	r.Log.Infof("Runner.Loop starting %dx%d", r.Sim.Geometry.Cols, r.Sim.Geometry.Rows)
	frames := time.NewTicker(r.FrameInterval)
	defer frames.Stop()
	steps := time.NewTicker(r.StepInterval)
	defer steps.Stop()
	r.Clock.Start(time.Now())
	for {
		select {
		case now := <-frames.C:
			r.Clock.Frame(now)
		case <-steps.C:
			r.Clock.Interval()
			r.publish(r.Sim.DrainEvents())
		case reply := <-r.snapshots:
			reply <- r.Sim.Snapshot()
		case sub := <-r.subscribe:
			sub.State = SS_LIVE
			r.subscribers[sub.Id] = sub
			r.Log.Infof("subscriber %s joined (%s)", sub.Id, sub.Codec.Name())
		case id := <-r.unsubscribe:
			r.drop(id)
		case <-ctx.Done():
			r.Clock.Stop()
			r.Sim.Teardown()
			for id := range r.subscribers {
				r.drop(id)
			}
			close(r.done)
			r.Log.Info("Runner.Loop ENDED")
			return
		}
	}
}

// publish never blocks the loop: a subscriber whose buffer is full loses
// the event.
func (r *Runner) publish(events []model.Event) {
	for _, sub := range r.subscribers {
		for _, e := range events {
			select {
			case sub.Events <- e:
			default:
				sub.Dropped++
				r.Log.Warnf("subscriber %s full, dropping %s event (%d dropped)", sub.Id, e.Kind, sub.Dropped)
			}
		}
	}
}

func (r *Runner) drop(id uuid.UUID) {
	sub, found := r.subscribers[id]
	if !found {
		return
	}
	delete(r.subscribers, id)
	sub.State = SS_CLOSED
	close(sub.Events)
	r.Log.Infof("subscriber %s left", id)
}

// Snapshot asks the loop for the current state.
func (r *Runner) Snapshot(ctx context.Context) (model.Snapshot, error) {
	reply := make(chan model.Snapshot, 1)
	select {
	case r.snapshots <- reply:
	case <-r.done:
		return model.Snapshot{}, ErrStopped
	case <-ctx.Done():
		return model.Snapshot{}, ctx.Err()
	}
	return <-reply, nil
}

// Subscribe registers a new subscriber whose Events channel is closed when
// it is unsubscribed or the loop stops.
func (r *Runner) Subscribe(ctx context.Context, codec Codec, conn *websocket.Conn) (*Subscriber, error) {
	sub := &Subscriber{
		Id:     uuid.New(),
		State:  SS_NEW,
		Codec:  codec,
		Conn:   conn,
		Events: make(chan model.Event, subscriberBuffer),
	}
	select {
	case r.subscribe <- sub:
		return sub, nil
	case <-r.done:
		return nil, ErrStopped
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Unsubscribe is a no-op for unknown ids and after the loop stopped.
func (r *Runner) Unsubscribe(id uuid.UUID) {
	select {
	case r.unsubscribe <- id:
	case <-r.done:
	}
}

func (r *Runner) HandleSnapshot() http.HandlerFunc {
	timeout := 200 * time.Millisecond
	return func(w http.ResponseWriter, req *http.Request) {
		ctx, cancel := context.WithTimeout(req.Context(), timeout)
		defer cancel()
		snapshot, err := r.Snapshot(ctx)
		if err != nil {
			r.Log.Warnf("HandleSnapshot %v", err)
			if err == ErrStopped {
				w.WriteHeader(HTTP_SERVER_ERR)
			} else {
				w.WriteHeader(HTTP_TIMEOUT)
			}
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(snapshot); err != nil {
			r.Log.Warnf("HandleSnapshot encode %v", err)
		}
	}
}

func (r *Runner) HandleEvents() http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		codec, err := ParseCodec(req.URL.Query().Get("codec"))
		if err != nil {
			http.Error(w, err.Error(), HTTP_BAD_REQUEST)
			return
		}
		con, err := r.Upgrader.Upgrade(w, req, nil)
		if err != nil {
			// Upgrade has already replied
			r.Log.Printf("HandleEvents websocket upgrade err %v", err)
			return
		}
		defer con.Close()

		sub, err := r.Subscribe(req.Context(), codec, con)
		if err != nil {
			r.Log.Warnf("HandleEvents subscribe %v", err)
			return
		}
		go r.LoopChannelRead(sub)
		r.LoopChannelWrite(sub)
		r.Unsubscribe(sub.Id)
	}
}

func (r *Runner) HandleHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(HTTP_SUCCESS)
		w.Write([]byte("ok"))
	}
}

// LoopChannelRead only watches the connection: the feed is read-only, so
// anything a client sends is discarded, and a read error ends the
// subscription.
func (r *Runner) LoopChannelRead(sub *Subscriber) {
	conn := sub.Conn
	conn.SetPingHandler(
		func(message string) error {
			err := conn.WriteControl(websocket.PongMessage, []byte(message), time.Now().Add(time.Second))
			sub.DebugLastPing = time.Now()
			sub.DebugPings++
			if err == websocket.ErrCloseSent {
				return nil
			} else if e, ok := err.(net.Error); ok && e.Temporary() {
				return nil
			}
			return err
		})
	for {
		if _, _, err := conn.NextReader(); err != nil {
			r.Log.Debugf("LoopChannelRead %s ended: %v", sub.Id, err)
			break
		}
	}
	r.Unsubscribe(sub.Id)
}

// LoopChannelWrite writes one frame per event until the subscription is
// closed or the connection fails.
func (r *Runner) LoopChannelWrite(sub *Subscriber) {
	for e := range sub.Events {
		w, err := sub.Conn.NextWriter(websocket.BinaryMessage)
		if err != nil {
			r.Log.Warnf("LoopChannelWrite %s cant get writer %v", sub.Id, err)
			return
		}
		if err = sub.Codec.Encode(w, e); err != nil {
			r.Log.Warnf("LoopChannelWrite %s cant encode %v", sub.Id, err)
			return
		}
		if err = w.Close(); err != nil {
			r.Log.Warnf("LoopChannelWrite %s cant flush %v", sub.Id, err)
			return
		}
		sub.DebugOutMessages++
	}
	sub.Conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(time.Second))
}
