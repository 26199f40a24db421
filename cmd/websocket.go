package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"rentalBack/internal/models"
)

const (
	wsReadLimit     = 1 << 20
	wsReadDeadline  = 120 * time.Second
	wsWriteDeadline = 5 * time.Second
	wsPingInterval  = 15 * time.Second
)

type directNotification struct {
	userID int
	note   models.MessageNotification
}

type unreg struct {
	userID int
	conn   *websocket.Conn
}

type Client struct {
	ID     int
	Socket *websocket.Conn
}

type WebSocketManager struct {
	clients    map[int]*websocket.Conn
	direct     chan directNotification
	register   chan Client
	unregister chan unreg
}

func NewWebSocketManager() *WebSocketManager {
	return &WebSocketManager{
		clients:    make(map[int]*websocket.Conn),
		direct:     make(chan directNotification, 64),
		register:   make(chan Client),
		unregister: make(chan unreg),
	}
}

// NotifyUser queues a notification for delivery to a connected user.
// Never blocks the caller; overflow is dropped.
func (ws *WebSocketManager) NotifyUser(userID int, n models.MessageNotification) {
	select {
	case ws.direct <- directNotification{userID: userID, note: n}:
	default:
		log.Printf("ws queue full, dropping notification for user=%d", userID)
	}
}

// All operations on clients happen here and only here.
func (ws *WebSocketManager) Run() {
	for {
		select {
		case client := <-ws.register:
			// a user reconnecting replaces their previous socket
			if old, ok := ws.clients[client.ID]; ok && old != nil && old != client.Socket {
				_ = old.Close()
			}
			ws.clients[client.ID] = client.Socket
			log.Printf("ws register user=%d", client.ID)

		case u := <-ws.unregister:
			// remove only if the current socket still matches
			if cur, ok := ws.clients[u.userID]; ok && cur == u.conn {
				_ = cur.Close()
				delete(ws.clients, u.userID)
				log.Printf("ws unregister user=%d", u.userID)
			}

		case dn := <-ws.direct:
			if conn, ok := ws.clients[dn.userID]; ok {
				_ = conn.SetWriteDeadline(time.Now().Add(wsWriteDeadline))
				if err := conn.WriteJSON(dn.note); err != nil {
					log.Printf("ws send error to=%d: %v", dn.userID, err)
					_ = conn.Close()
					delete(ws.clients, dn.userID)
				}
			} else {
				log.Printf("ws skip: user=%d offline", dn.userID)
			}
		}
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin:       func(r *http.Request) bool { return true },
	ReadBufferSize:    1024,
	WriteBufferSize:   1024,
	EnableCompression: true,
}

// WebSocketHandler upgrades the connection and streams message
// notifications to the authenticated user until they disconnect.
func (app *application) WebSocketHandler(w http.ResponseWriter, r *http.Request) {
	email, ok := r.Context().Value("user_email").(string)
	if !ok || email == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	user, err := app.userService.GetUserByEmail(r.Context(), email)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("websocket upgrade error:", err)
		return
	}

	conn.SetReadLimit(wsReadLimit)
	_ = conn.SetReadDeadline(time.Now().Add(wsReadDeadline))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(wsReadDeadline))
	})

	app.wsManager.register <- Client{ID: user.ID, Socket: conn}

	go pingLoop(app.wsManager, conn, user.ID)
	go readUntilClose(app.wsManager, conn, user.ID)
}

func pingLoop(ws *WebSocketManager, conn *websocket.Conn, uid int) {
	t := time.NewTicker(wsPingInterval)
	defer t.Stop()
	for range t.C {
		_ = conn.SetWriteDeadline(time.Now().Add(wsWriteDeadline))
		if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
			_ = writeClose(conn, websocket.CloseGoingAway, "ping error")
			ws.unregister <- unreg{userID: uid, conn: conn}
			return
		}
	}
}

// The feed is one way. Incoming frames are drained only to detect
// the close handshake and to keep pong processing alive.
func readUntilClose(ws *WebSocketManager, conn *websocket.Conn, uid int) {
	defer func() {
		ws.unregister <- unreg{userID: uid, conn: conn}
	}()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func writeClose(conn *websocket.Conn, code int, reason string) error {
	_ = conn.SetWriteDeadline(time.Now().Add(wsWriteDeadline))
	return conn.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(code, reason),
		time.Now().Add(wsWriteDeadline),
	)
}
