package types

import (
	"github.com/orcaswarm/orcaswarm/common/utils"
)

// SimDescriptionInterface is what the viz layer needs to know about a
// running simulation. The sim server implements it; the viz never
// touches the engine directly.
type SimDescriptionInterface interface {
	GetId() string
	GetName() string
	GetScenarioName() string
	GetAgentCount() int
	GetTau() float64
	GetDeltaT() float64
	GetArrivalThreshold() float64
}

type VizSim struct {
	sim  SimDescriptionInterface
	pool *WatcherMap
}

func NewVizSim(sim SimDescriptionInterface) *VizSim {
	return &VizSim{
		sim:  sim,
		pool: NewWatcherMap(),
	}
}

func (vizsim *VizSim) GetSim() SimDescriptionInterface {
	return vizsim.sim
}

type VizInitMessageData struct {
	Id               string  `json:"id"`
	Name             string  `json:"name"`
	Scenario         string  `json:"scenario"`
	AgentCount       int     `json:"agentCount"`
	Tau              float64 `json:"tau"`
	DeltaT           float64 `json:"deltaT"`
	ArrivalThreshold float64 `json:"arrivalThreshold"`
}

type VizInitMessage struct {
	Type string             `json:"type"`
	Data VizInitMessageData `json:"data"`
}

func (vizsim *VizSim) SetWatcher(watcher *Watcher) {
	vizsim.pool.Set(watcher.GetId(), watcher)

	initMsg := VizInitMessage{
		Type: "init",
		Data: VizInitMessageData{
			Id:               vizsim.sim.GetId(),
			Name:             vizsim.sim.GetName(),
			Scenario:         vizsim.sim.GetScenarioName(),
			AgentCount:       vizsim.sim.GetAgentCount(),
			Tau:              vizsim.sim.GetTau(),
			DeltaT:           vizsim.sim.GetDeltaT(),
			ArrivalThreshold: vizsim.sim.GetArrivalThreshold(),
		},
	}

	err := watcher.conn.WriteJSON(initMsg)
	if err != nil {
		utils.Debug("vizserver", "Could not send VizInitMessage JSON; "+err.Error())
	}
}

func (vizsim *VizSim) RemoveWatcher(watcherid string) {
	vizsim.pool.Remove(watcherid)
}

func (vizsim *VizSim) GetNumberWatchers() int {
	return vizsim.pool.Size()
}
