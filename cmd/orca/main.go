package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/cheggaaa/pb"
	"github.com/ttacon/chalk"
	"github.com/urfave/cli"
	bettererrors "github.com/xtuc/better-errors"

	"github.com/orcaswarm/orcaswarm/common/recording"
	"github.com/orcaswarm/orcaswarm/common/utils"
	"github.com/orcaswarm/orcaswarm/common/utils/number"
	"github.com/orcaswarm/orcaswarm/orca"
)

const progressScale = 1000

func main() {
	app := makeapp()
	app.Run(os.Args)
}

func makeapp() *cli.App {
	app := cli.NewApp()
	app.Name = "orca"
	app.Usage = "Reciprocal collision avoidance simulations"
	app.Version = utils.GetVersion()

	app.Commands = []cli.Command{
		{
			Name:    "run",
			Aliases: []string{"r"},
			Usage:   "Run a scenario headless until every agent arrives",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "scenario", Value: "square", Usage: "Name of the scenario to simulate"},
				cli.Float64Flag{Name: "tau", Value: 0, Usage: "Collision lookahead horizon; 0 keeps the scenario's value"},
				cli.Float64Flag{Name: "deltat", Value: 0, Usage: "Simulation step; 0 keeps the scenario's value"},
				cli.Float64Flag{Name: "threshold", Value: 0, Usage: "Arrival threshold; 0 keeps the scenario's value"},
				cli.Int64Flag{Name: "seed", Value: 0, Usage: "Seed for the solver's shuffle; 0 picks a time-based seed"},
				cli.Float64Flag{Name: "speed", Value: 0, Usage: "Real-time speed factor; 0 runs as fast as possible"},
				cli.Uint64Flag{Name: "max-ticks", Value: 0, Usage: "Abort after this many ticks; 0 means no limit"},
				cli.StringFlag{Name: "record-file", Value: "", Usage: "Destination file for recording the run"},
				cli.BoolFlag{Name: "quiet", Usage: "Disable the progress bar"},
			},
			Action: func(c *cli.Context) error {
				runAction(c)
				return nil
			},
		},
		{
			Name:    "scenarios",
			Aliases: []string{"s"},
			Usage:   "List the available scenarios",
			Action: func(c *cli.Context) error {
				scenariosAction()
				return nil
			},
		},
	}

	return app
}

func runAction(c *cli.Context) {
	scenario, ok := orca.ScenarioByName(c.String("scenario"))
	if !ok {
		utils.FailWith(
			bettererrors.
				New("unknown scenario").
				SetContext("scenario", c.String("scenario")),
		)
	}

	if tau := c.Float64("tau"); tau > 0 {
		scenario.Tau = tau
	}

	if deltaT := c.Float64("deltat"); deltaT > 0 {
		scenario.DeltaT = deltaT
	}

	if threshold := c.Float64("threshold"); threshold > 0 {
		scenario.ArrivalThreshold = threshold
	}

	seed := c.Int64("seed")
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var recorder recording.Recorder = recording.MakeEmptyRecorder()
	if c.String("record-file") != "" {
		recorder = recording.MakeSingleRunRecorder(c.String("record-file"))
	}

	engine := scenario.NewEngine(seed)

	err := recorder.RecordMetadata(recording.RunMetadata{
		RunName:          scenario.Name,
		Scenario:         scenario.Name,
		Date:             time.Now().Format(time.RFC3339),
		Tau:              engine.GetTau(),
		DeltaT:           engine.GetDeltaT(),
		ArrivalThreshold: engine.GetArrivalThreshold(),
		AgentCount:       engine.AgentCount(),
	})
	utils.Check(err, "Could not record run metadata")

	var bar *pb.ProgressBar
	if !c.Bool("quiet") {
		bar = pb.New(progressScale)
		bar.ShowCounters = false
		bar.Start()
	}

	initialRemaining := maxRemainingDistance(engine)

	speed := c.Float64("speed")
	maxTicks := c.Uint64("max-ticks")

	ticks := uint64(0)
	for !engine.Converged() {
		if maxTicks > 0 && ticks >= maxTicks {
			utils.FailWith(
				bettererrors.
					New("simulation did not converge").
					SetContext("max-ticks", strconv.FormatUint(maxTicks, 10)),
			)
		}

		if err := engine.Iteration(); err != nil {
			utils.FailWith(
				bettererrors.
					New("simulation halted").
					SetContext("tick", strconv.FormatUint(ticks, 10)).
					With(err),
			)
		}

		if speed > 0 {
			time.Sleep(time.Duration(float64(time.Second) * engine.GetDeltaT() / speed))
		}

		engine.MoveAgents(engine.GetDeltaT())
		ticks++

		if bar != nil {
			progress := 1.0 - maxRemainingDistance(engine)/initialRemaining
			bar.Set(int(number.Constrain(progress, 0, 1) * progressScale))
		}

		if err := recorder.Record(frameLine(engine, ticks)); err != nil {
			utils.Check(err, "Could not record frame")
		}
	}

	engine.Finalize()

	if bar != nil {
		bar.Set(progressScale)
		bar.Finish()
	}

	recorder.Close()

	simulated := float64(ticks) * engine.GetDeltaT()
	fmt.Print(chalk.Green)
	fmt.Println("Converged after "+strconv.FormatUint(ticks, 10)+" ticks ("+number.FloatToStr(simulated, 2)+"s simulated)", chalk.Reset)
}

func scenariosAction() {
	for _, scenario := range orca.Scenarios() {
		fmt.Print(chalk.Cyan)
		fmt.Print(scenario.Name, chalk.Reset)
		fmt.Println(" - " + scenario.Description +
			" (" + strconv.Itoa(len(scenario.Agents)) + " agents" +
			", tau " + number.FloatToStr(scenario.Tau, 2) +
			", deltaT " + number.FloatToStr(scenario.DeltaT, 2) + ")")
	}
}

func maxRemainingDistance(engine *orca.Engine) float64 {
	max := 0.0
	for _, agent := range engine.GetAgents() {
		remaining := agent.GetDestination().From(agent.GetPosition()).Norm()
		if remaining > max {
			max = remaining
		}
	}

	return max
}

func frameLine(engine *orca.Engine, tick uint64) string {
	line := "{\"tick\":" + strconv.FormatUint(tick, 10) + ",\"agents\":["
	for i, agent := range engine.GetAgents() {
		if i > 0 {
			line += ","
		}

		line += "{\"id\":" + strconv.Itoa(agent.GetId()) +
			",\"position\":" + agent.GetPosition().MarshalJSONString() +
			",\"velocity\":" + agent.GetVelocity().MarshalJSONString() + "}"
	}

	return line + "]}"
}
