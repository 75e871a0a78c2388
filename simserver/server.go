// Package simserver drives an orca.Engine as a long-running
// simulation: it owns the iterate/sleep/move loop, the pause and speed
// knobs, frame recording and frame publication for watchers.
//
// The engine itself takes no locks; every engine call happens on the
// server's loop goroutine, and watchers only ever see frames published
// between steps.
package simserver

import (
	"encoding/json"
	"fmt"
	"log"
	"math"
	"sync"
	"sync/atomic"
	"time"

	notify "github.com/bitly/go-notify"
	petname "github.com/dustinkirkland/golang-petname"
	uuid "github.com/satori/go.uuid"
	"github.com/ttacon/chalk"

	"github.com/orcaswarm/orcaswarm/common/recording"
	"github.com/orcaswarm/orcaswarm/common/utils"
	"github.com/orcaswarm/orcaswarm/geom"
	"github.com/orcaswarm/orcaswarm/orca"
)

type AgentFrame struct {
	Id       int          `json:"id"`
	Position geom.Point   `json:"position"`
	Velocity geom.Vector2 `json:"velocity"`
	Radius   float64      `json:"radius"`
}

type Frame struct {
	SimId  string       `json:"simId"`
	Tick   uint64       `json:"tick"`
	Agents []AgentFrame `json:"agents"`
}

type Server struct {
	id       string
	name     string
	scenario orca.Scenario
	engine   *orca.Engine
	recorder recording.Recorder

	paused atomic.Bool
	speed  atomic.Uint64

	tick        uint64
	stopticking chan struct{}
	stoponce    sync.Once
}

func NewServer(scenario orca.Scenario, seed int64, recorder recording.Recorder) *Server {
	s := &Server{
		id:          uuid.NewV4().String(),
		name:        petname.Generate(2, "-"),
		scenario:    scenario,
		engine:      scenario.NewEngine(seed),
		recorder:    recorder,
		stopticking: make(chan struct{}),
	}

	s.SetSpeed(1.0)

	return s
}

func (s *Server) GetId() string {
	return s.id
}

func (s *Server) GetName() string {
	return s.name
}

func (s *Server) GetScenarioName() string {
	return s.scenario.Name
}

func (s *Server) GetAgentCount() int {
	return s.engine.AgentCount()
}

func (s *Server) GetTau() float64 {
	return s.engine.GetTau()
}

func (s *Server) GetDeltaT() float64 {
	return s.engine.GetDeltaT()
}

func (s *Server) GetArrivalThreshold() float64 {
	return s.engine.GetArrivalThreshold()
}

func (s *Server) GetEngine() *orca.Engine {
	return s.engine
}

// Pause/speed are driver state; the engine never consults them.

func (s *Server) TogglePause() bool {
	paused := !s.paused.Load()
	s.paused.Store(paused)
	return paused
}

func (s *Server) IsPaused() bool {
	return s.paused.Load()
}

func (s *Server) SetSpeed(speed float64) {
	s.speed.Store(math.Float64bits(speed))
}

func (s *Server) GetSpeed() float64 {
	return math.Float64frombits(s.speed.Load())
}

// Start launches the simulation loop and returns a channel that
// receives once the loop ends, whether by convergence, error or Stop.
func (s *Server) Start() chan interface{} {
	fmt.Print(chalk.Green)
	log.Println("Starting simulation "+s.name+" ("+s.scenario.Name+")", chalk.Reset)

	err := s.recorder.RecordMetadata(recording.RunMetadata{
		Id:               s.id,
		RunName:          s.name,
		Scenario:         s.scenario.Name,
		Date:             time.Now().Format(time.RFC3339),
		Tau:              s.engine.GetTau(),
		DeltaT:           s.engine.GetDeltaT(),
		ArrivalThreshold: s.engine.GetArrivalThreshold(),
		AgentCount:       s.engine.AgentCount(),
	})
	utils.Check(err, "Could not record run metadata")

	block := make(chan interface{})
	notify.Start("sim:stopped", block)

	go s.loop()

	return block
}

func (s *Server) Stop() {
	s.stoponce.Do(func() {
		close(s.stopticking)
	})
}

func (s *Server) loop() {
	for {
		select {
		case <-s.stopticking:
			log.Println("Received stop signal")
			notify.Post("sim:stopped", nil)
			return
		default:
		}

		if s.IsPaused() {
			time.Sleep(50 * time.Millisecond)
			continue
		}

		if err := s.DoTick(); err != nil {
			fmt.Print(chalk.Red)
			log.Println("Simulation halted:", err, chalk.Reset)
			utils.DebugWith("simserver", "simulation halted", utils.Context{
				"tick":  s.tick,
				"error": err.Error(),
			})
			notify.Post("sim:stopped", err)
			return
		}

		if s.engine.Converged() {
			s.engine.Finalize()
			fmt.Print(chalk.Green)
			log.Println("All agents have converged to their final destinations.", chalk.Reset)
			notify.Post("sim:stopped", nil)
			return
		}
	}
}

// DoTick runs one driver cycle: decide velocities, wait deltaT scaled
// by the speed knob, integrate positions, publish the frame.
func (s *Server) DoTick() error {
	s.tick++

	if s.tick%100 == 0 {
		fmt.Print(chalk.Yellow)
		log.Println("######## Tick #####", s.tick, chalk.Reset)
	}

	if err := s.engine.Iteration(); err != nil {
		return err
	}

	time.Sleep(time.Duration(float64(time.Second) * s.engine.GetDeltaT() / s.GetSpeed()))

	s.engine.MoveAgents(s.engine.GetDeltaT())

	frame := s.snapshot()

	data, err := json.Marshal(frame)
	utils.Check(err, "Could not marshal frame")

	if err := s.recorder.Record(string(data)); err != nil {
		return err
	}

	notify.PostTimeout("viz:message", string(data), time.Millisecond)

	return nil
}

func (s *Server) snapshot() Frame {
	agents := s.engine.GetAgents()

	frame := Frame{
		SimId:  s.id,
		Tick:   s.tick,
		Agents: make([]AgentFrame, 0, len(agents)),
	}

	for _, agent := range agents {
		frame.Agents = append(frame.Agents, AgentFrame{
			Id:       agent.GetId(),
			Position: agent.GetPosition(),
			Velocity: agent.GetVelocity(),
			Radius:   agent.GetRadius(),
		})
	}

	return frame
}
