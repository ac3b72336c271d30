// Peregrine - Travel and Leave Management
// Copyright 2026 Peregrine Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/peregrine-app/peregrine

package websocket

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/peregrine-app/peregrine/internal/logging"
	"github.com/peregrine-app/peregrine/internal/metrics"
)

// Message types pushed to clients.
const (
	MessageTypePing         = "ping"
	MessageTypePong         = "pong"
	MessageTypeTripCreated  = "trip_created"
	MessageTypeTripUpdated  = "trip_updated"
	MessageTypeTripDeleted  = "trip_deleted"
	MessageTypeLeaveUpdated = "leave_updated"
	MessageTypeStatsUpdate  = "stats_update"
)

// Message is one typed payload sent to every connected client.
type Message struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Hub owns the set of connected clients and fans broadcasts out to
// them.
type Hub struct {
	mu         sync.RWMutex
	clients    map[*Client]bool
	broadcast  chan Message
	Register   chan *Client
	Unregister chan *Client
}

// NewHub creates an idle hub. Call Run to start processing.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan Message, 256),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
	}
}

// Run processes registrations and broadcasts until ctx is canceled,
// then closes every client and returns ctx.Err().
func (h *Hub) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			closed := h.closeAllClients()
			logging.Info().
				Str("component", "websocket-hub").
				Int("clients_closed", closed).
				Msg("websocket hub stopped")
			return ctx.Err()

		case client := <-h.Register:
			h.mu.Lock()
			h.clients[client] = true
			total := len(h.clients)
			h.mu.Unlock()
			metrics.WebSocketConnections.Inc()
			logging.Info().Int("total_clients", total).Msg("websocket client connected")

		case client := <-h.Unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				metrics.WebSocketConnections.Dec()
			}
			total := len(h.clients)
			h.mu.Unlock()
			logging.Info().Int("total_clients", total).Msg("websocket client disconnected")

		case msg := <-h.broadcast:
			h.broadcastToClients(msg)
		}
	}
}

// broadcastToClients delivers msg to every client in ID order. Clients
// whose send buffer is full are dropped.
func (h *Hub) broadcastToClients(msg Message) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients := make([]*Client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	sort.Slice(clients, func(i, j int) bool { return clients[i].id < clients[j].id })

	var toRemove []*Client
	for _, c := range clients {
		select {
		case c.send <- msg:
			metrics.WebSocketMessagesSent.Inc()
		default:
			toRemove = append(toRemove, c)
		}
	}
	for _, c := range toRemove {
		close(c.send)
		delete(h.clients, c)
		metrics.WebSocketConnections.Dec()
	}
}

func (h *Hub) closeAllClients() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	closed := len(h.clients)
	for c := range h.clients {
		close(c.send)
		delete(h.clients, c)
		metrics.WebSocketConnections.Dec()
	}
	return closed
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Broadcast queues a typed message for every client. The message is
// dropped with a warning when the hub is backed up.
func (h *Hub) Broadcast(messageType string, data interface{}) {
	select {
	case h.broadcast <- Message{Type: messageType, Data: data}:
	default:
		logging.Warn().Str("message_type", messageType).Msg("broadcast channel full, dropping message")
	}
}

// TripEventData accompanies trip_created/updated/deleted messages.
type TripEventData struct {
	TripID    string `json:"trip_id"`
	UserID    string `json:"user_id"`
	Timestamp string `json:"timestamp"`
}

// BroadcastTripEvent notifies clients that a trip changed.
func (h *Hub) BroadcastTripEvent(messageType, tripID, userID string) {
	h.Broadcast(messageType, TripEventData{
		TripID:    tripID,
		UserID:    userID,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// StatsEventData accompanies stats_update messages.
type StatsEventData struct {
	Timestamp string `json:"timestamp"`
}

// BroadcastStatsUpdate tells clients that derived statistics, geometry,
// and badges changed and should be refetched.
func (h *Hub) BroadcastStatsUpdate() {
	h.Broadcast(MessageTypeStatsUpdate, StatsEventData{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// LeaveEventData accompanies leave_updated messages.
type LeaveEventData struct {
	RequestID string `json:"request_id"`
	UserID    string `json:"user_id"`
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// BroadcastLeaveUpdate notifies clients that a leave request changed.
func (h *Hub) BroadcastLeaveUpdate(requestID, userID, status string) {
	h.Broadcast(MessageTypeLeaveUpdated, LeaveEventData{
		RequestID: requestID,
		UserID:    userID,
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
