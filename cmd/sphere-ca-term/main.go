package main

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/integrii/flaggy"
	"github.com/logrusorgru/aurora"

	"sphere-ca/internal/core"
	_ "sphere-ca/internal/sims/briansbrain"
	_ "sphere-ca/internal/sims/life"
	"sphere-ca/pkg/sphere"
)

type options struct {
	sim    string
	side   int
	width  int
	height int
	steps  int
	tps    int
	seed   int
	plain  bool
}

func main() {
	opt := parseOptions()

	factory := core.Sims()[opt.sim]
	sim := factory(map[string]string{"side": strconv.Itoa(opt.side)})
	sim.Reset(int64(opt.seed))

	au := aurora.NewAurora(!opt.plain)
	pacer := core.NewPacer(opt.tps)

	printRunInfo(sim, opt)

	start := time.Now()
	done := 0
	for done < opt.steps {
		now := time.Now()
		for t := pacer.Ticks(now); t > 0 && done < opt.steps; t-- {
			sim.Step()
			done++
		}
		fmt.Print("\033[H\033[2J")
		fmt.Println(frameString(sim, opt.width, opt.height, au))
		fmt.Printf("step %d/%d\n", done, opt.steps)
		time.Sleep(pacer.Until(time.Now()))
	}

	printHashData(map[string]interface{}{
		"Steps":      done,
		"Total time": time.Since(start).Round(time.Millisecond),
		"Cells":      6 * opt.side * opt.side,
	})
}

func parseOptions() options {
	opt := options{
		sim:    "life",
		side:   64,
		width:  120,
		height: 40,
		steps:  200,
		tps:    20,
		seed:   42,
	}
	simNames := make([]string, 0, len(core.Sims()))
	for k := range core.Sims() {
		simNames = append(simNames, k)
	}
	sort.Strings(simNames)

	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.String(&opt.sim, "m", "sim", "Simulation to run ["+strings.Join(simNames, "|")+"]")
	flaggy.Int(&opt.side, "f", "side", "Cube face side length in cells")
	flaggy.Int(&opt.width, "x", "width", "Projection width in characters")
	flaggy.Int(&opt.height, "y", "height", "Projection height in characters")
	flaggy.Int(&opt.steps, "s", "steps", "Limit the simulation to this many generations")
	flaggy.Int(&opt.tps, "t", "tps", "Generations per second")
	flaggy.Int(&opt.seed, "r", "seed", "Seed for the initial generation")
	flaggy.Bool(&opt.plain, "p", "plain", "Render without ANSI colors")
	flaggy.Parse()

	if _, ok := core.Sims()[opt.sim]; !ok {
		flaggy.ShowHelpAndExit("unknown sim " + opt.sim)
	}
	return opt
}

// frameString renders one equirectangular frame of the sphere as text, one
// character per sample.
func frameString(sim core.Sim, w, h int, au aurora.Aurora) string {
	var b strings.Builder
	b.Grow((w + 1) * h * 4)
	for y := 0; y < h; y++ {
		lat := (float64(y)+0.5)/float64(h)*math.Pi - math.Pi/2
		for x := 0; x < w; x++ {
			lon := (float64(x) + 0.5) / float64(w) * 2 * math.Pi
			p, err := sphere.FromGeographic(sim.Side(), lat, lon)
			if err != nil {
				b.WriteByte(' ')
				continue
			}
			switch sim.At(p) {
			case 0:
				fmt.Fprint(&b, au.Faint("·"))
			case 1:
				fmt.Fprint(&b, au.White("█"))
			default:
				fmt.Fprint(&b, au.Yellow("▒"))
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func printRunInfo(sim core.Sim, opt options) {
	fmt.Println("Running configuration:")
	printHashData(map[string]interface{}{
		"Sim":        sim.Name(),
		"Face side":  opt.side,
		"Projection": fmt.Sprintf("%dx%d", opt.width, opt.height),
		"Steps":      opt.steps,
		"TPS":        opt.tps,
		"Seed":       opt.seed,
	})
}

func printHashData(d map[string]interface{}) {
	propNames := make([]string, 0, len(d))
	for k := range d {
		propNames = append(propNames, k)
	}
	sort.Strings(propNames)
	for _, propName := range propNames {
		fmt.Printf("  %s: %v\n", propName, d[propName])
	}
}
