package handler

import (
	"encoding/json"
	"net/http"

	"github.com/orcaswarm/orcaswarm/common/utils"
	"github.com/orcaswarm/orcaswarm/vizserver/types"
)

type simSummary struct {
	Id         string `json:"id"`
	Name       string `json:"name"`
	Scenario   string `json:"scenario"`
	AgentCount int    `json:"agentCount"`
	Watchers   int    `json:"watchers"`
}

// Home lists the simulations available on this viz server.
func Home(sims *types.VizSimMap) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		summaries := make([]simSummary, 0)

		sims.Each(func(vizsim *types.VizSim) {
			sim := vizsim.GetSim()
			summaries = append(summaries, simSummary{
				Id:         sim.GetId(),
				Name:       sim.GetName(),
				Scenario:   sim.GetScenarioName(),
				AgentCount: sim.GetAgentCount(),
				Watchers:   vizsim.GetNumberWatchers(),
			})
		})

		data, err := json.Marshal(summaries)
		utils.Check(err, "Failed to marshal sim list")

		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
	}
}
