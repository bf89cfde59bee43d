package orderfeed

import (
	"log"
	"net/http"

	"sartor/middleware"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// WebSocketHandler upgrades an admin dashboard connection. Browsers
// cannot set headers on WebSocket requests, so the token rides in the
// ?token= query param.
func WebSocketHandler(hub *Hub) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		claims, err := middleware.ValidateJWT("Bearer " + r.URL.Query().Get("token"))
		if err != nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		if middleware.AdminAuthorizer == nil || !middleware.AdminAuthorizer.IsAdmin(claims.Email) {
			http.Error(w, "Access denied", http.StatusForbidden)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("orderfeed upgrade:", err)
			return
		}

		client := &Client{Send: make(chan []byte, 64)}
		if !hub.add(client) {
			conn.Close()
			return
		}
		go writePump(conn, client)
		go readPump(conn, hub, client)
	}
}

func writePump(conn *websocket.Conn, c *Client) {
	defer conn.Close()
	for msg := range c.Send {
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			break
		}
	}
}

// readPump discards inbound frames; it exists to notice the close.
func readPump(conn *websocket.Conn, hub *Hub, c *Client) {
	defer func() {
		hub.remove(c)
		conn.Close()
	}()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
