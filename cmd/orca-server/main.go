package main

import (
	"flag"
	"log"
	"time"

	"github.com/orcaswarm/orcaswarm/common/healthcheck"
	"github.com/orcaswarm/orcaswarm/common/recording"
	"github.com/orcaswarm/orcaswarm/common/utils"
	"github.com/orcaswarm/orcaswarm/orca"
	"github.com/orcaswarm/orcaswarm/simserver"
	"github.com/orcaswarm/orcaswarm/vizserver"
	"github.com/orcaswarm/orcaswarm/vizserver/types"
)

func main() {
	scenarioName := flag.String("scenario", "square", "Name of the scenario to simulate")
	listenAddr := flag.String("listen-addr", ":8080", "Address serving the visualization")
	healthPort := flag.String("health-port", "", "Port serving the health endpoint; disabled when empty")
	seed := flag.Int64("seed", 0, "Seed for the solver's shuffle; 0 picks a time-based seed")
	speed := flag.Float64("speed", 1.0, "Initial speed factor of the simulation")
	recordFile := flag.String("record-file", "", "Destination file for recording the run")

	flag.Parse()

	log.Println("ORCA simulation server v" + utils.GetVersion())

	scenario, ok := orca.ScenarioByName(*scenarioName)
	utils.Assert(ok, "Unknown scenario "+*scenarioName)

	var recorder recording.Recorder = recording.MakeEmptyRecorder()
	if *recordFile != "" {
		recorder = recording.MakeSingleRunRecorder(*recordFile)
	}

	srv := simserver.NewServer(scenario, engineSeed(*seed), recorder)
	srv.SetSpeed(*speed)

	viz := vizserver.NewVizService(*listenAddr, func() ([]types.SimDescriptionInterface, error) {
		return []types.SimDescriptionInterface{srv}, nil
	})

	go func() {
		err := viz.ListenAndServe()
		utils.Check(err, "Failed to serve the visualization on "+*listenAddr)
	}()

	if *healthPort != "" {
		hc := healthcheck.NewHealthCheckServer(*healthPort)
		hc.Register("sim", func() (error, bool) {
			return nil, true
		})
		go hc.Listen()
	}

	go func() {
		<-utils.SignalHandler()
		utils.Debug("sighandler", "RECEIVED SHUTDOWN SIGNAL; closing.")
		srv.Stop()
	}()

	<-srv.Start()

	recorder.Close()
}

func engineSeed(seed int64) int64 {
	if seed == 0 {
		return time.Now().UnixNano()
	}

	return seed
}
