package handler

import (
	"encoding/json"
	"log"
	"net/http"

	notify "github.com/bitly/go-notify"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/orcaswarm/orcaswarm/common/utils"
	"github.com/orcaswarm/orcaswarm/vizserver/types"
)

type wsincomingmessage struct {
	messageType int
	p           []byte
	err         error
}

// Simplified view of a frame, just enough to route it to the right sim
type simIdVizMessage struct {
	SimId string `json:"simId"`
}

type vizFrameMessage struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// Websocket streams the frames of one simulation to a watcher.
func Websocket(sims *types.VizSimMap) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		vizsim := sims.Get(vars["id"])

		if vizsim == nil {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte("SIM NOT FOUND !"))
			return
		}

		upgrader := websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		}

		c, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Print("upgrade:", err)
			return
		}

		watcher := types.NewWatcher(c)
		vizsim.SetWatcher(watcher)

		defer func(c *websocket.Conn) {
			vizsim.RemoveWatcher(watcher.GetId())
			c.Close()
		}(c)

		clientclosedsocket := make(chan bool)
		c.SetCloseHandler(func(code int, text string) error {
			clientclosedsocket <- true
			return nil
		})

		// Read incoming messages; mandatory to notice when the
		// websocket is closed client side.
		incomingmsg := make(chan wsincomingmessage)
		go func(client *websocket.Conn, ch chan wsincomingmessage) {
			messageType, p, err := client.ReadMessage()
			ch <- wsincomingmessage{messageType, p, err}
		}(c, incomingmsg)

		vizmsgchan := make(chan interface{})
		notify.Start("viz:message", vizmsgchan)
		defer notify.Stop("viz:message", vizmsgchan)

		for {
			select {
			case <-clientclosedsocket:
				{
					return
				}
			case msg := <-incomingmsg:
				{
					if msg.err != nil {
						return
					}
				}
			case vizmsg := <-vizmsgchan:
				{
					vizmsgString, ok := vizmsg.(string)
					utils.Assert(ok, "Failed to cast vizmessage into string")

					var routing simIdVizMessage
					err := json.Unmarshal([]byte(vizmsgString), &routing)
					utils.Check(err, "Failed to decode vizmessage")

					if vizsim.GetSim().GetId() != routing.SimId {
						continue
					}

					frame := vizFrameMessage{
						Type: "frame",
						Data: json.RawMessage(vizmsgString),
					}

					if err := c.WriteJSON(frame); err != nil {
						return
					}
				}
			}
		}
	}
}
