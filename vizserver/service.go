// Package vizserver exposes running simulations to browser clients:
// an HTTP index of simulations and a websocket per simulation
// streaming one frame per tick.
package vizserver

import (
	"log"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	apphandler "github.com/orcaswarm/orcaswarm/vizserver/handler"
	"github.com/orcaswarm/orcaswarm/vizserver/types"
)

type FetchSimsCbk func() ([]types.SimDescriptionInterface, error)

type VizService struct {
	addr      string
	fetchSims FetchSimsCbk
}

func NewVizService(addr string, fetchSims FetchSimsCbk) *VizService {
	return &VizService{
		addr:      addr,
		fetchSims: fetchSims,
	}
}

func (viz *VizService) ListenAndServe() error {
	sims, err := viz.fetchSims()
	if err != nil {
		return err
	}

	vizsims := types.NewVizSimMap()
	for _, sim := range sims {
		vizsims.Set(sim.GetId(), types.NewVizSim(sim))
	}

	logger := os.Stdout
	router := mux.NewRouter()

	router.Handle("/", handlers.CombinedLoggingHandler(logger,
		http.HandlerFunc(apphandler.Home(vizsims)),
	)).Methods("GET")

	router.Handle("/sim/{id:[a-zA-Z0-9\\-]+}/ws", handlers.CombinedLoggingHandler(logger,
		http.HandlerFunc(apphandler.Websocket(vizsims)),
	)).Methods("GET")

	log.Println("VIZ Listening on " + viz.addr)

	return http.ListenAndServe(viz.addr, router)
}
