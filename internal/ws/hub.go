package ws

// Hub fans accepted-bid events out to the clients watching each auction.
// All bookkeeping happens on the Run goroutine; the exported methods only
// move messages onto channels.
type Hub struct {
	subscribers map[string]map[*Client]bool

	register   chan *Client
	unregister chan *Client
	broadcast  chan *broadcastMessage
}

type broadcastMessage struct {
	auctionId string
	payload   []byte
}

func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[string]map[*Client]bool),
		register:    make(chan *Client),
		unregister:  make(chan *Client),
		broadcast:   make(chan *broadcastMessage, 256),
	}
}

// Run is the hub's main loop; start it in a goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			clients, ok := h.subscribers[client.auctionId]
			if !ok {
				clients = make(map[*Client]bool)
				h.subscribers[client.auctionId] = clients
			}
			clients[client] = true

		case client := <-h.unregister:
			if clients, ok := h.subscribers[client.auctionId]; ok {
				if clients[client] {
					delete(clients, client)
					close(client.send)
					if len(clients) == 0 {
						delete(h.subscribers, client.auctionId)
					}
				}
			}

		case message := <-h.broadcast:
			for client := range h.subscribers[message.auctionId] {
				select {
				case client.send <- message.payload:
				default:
					// Slow consumer; drop it rather than block the hub.
					delete(h.subscribers[message.auctionId], client)
					close(client.send)
				}
			}
		}
	}
}

func (h *Hub) Register(client *Client) {
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

func (h *Hub) Broadcast(auctionId string, payload []byte) {
	h.broadcast <- &broadcastMessage{auctionId: auctionId, payload: payload}
}
