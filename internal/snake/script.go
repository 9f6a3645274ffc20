package snake

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ScriptStep posts Cmd just before tick At runs.
type ScriptStep struct {
	At  uint64
	Cmd core.Command
}

var scriptCommands = map[string]core.Command{
	"up":    core.CmdTurnUp,
	"down":  core.CmdTurnDown,
	"left":  core.CmdTurnLeft,
	"right": core.CmdTurnRight,
	"pause": core.CmdTogglePause,
	"quit":  core.CmdQuit,
}

// ParseScript parses a comma-separated list of "tick:command" pairs, for
// example "3:down,7:left,20:pause". Ticks are 1-based. Steps are returned in
// tick order; steps sharing a tick keep their written order.
func ParseScript(s string) ([]ScriptStep, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	var steps []ScriptStep
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		at, name, ok := strings.Cut(field, ":")
		if !ok {
			return nil, fmt.Errorf("snake: script step %q: expected tick:command", field)
		}
		n, err := strconv.ParseUint(strings.TrimSpace(at), 10, 64)
		if err != nil || n == 0 {
			return nil, fmt.Errorf("snake: script step %q: bad tick", field)
		}
		cmd, ok := scriptCommands[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, fmt.Errorf("snake: script step %q: unknown command %q", field, name)
		}
		steps = append(steps, ScriptStep{At: n, Cmd: cmd})
	}

	sort.SliceStable(steps, func(i, j int) bool { return steps[i].At < steps[j].At })
	return steps, nil
}

// Replay leaves the welcome screen and runs ticks ticks headless, posting
// script commands before their tick. Paused ticks still count against the
// budget so a pause in the script can be resumed later. It stops early on quit.
func Replay(e *Engine, script []ScriptStep, ticks uint64) Snapshot {
	if e.State() == StateWelcome {
		e.HandleCommand(core.CmdAnyKey)
	}

	next := 0
	for t := uint64(1); t <= ticks; t++ {
		for next < len(script) && script[next].At <= t {
			e.HandleCommand(script[next].Cmd)
			next++
		}
		if e.Quit() {
			break
		}
		e.Tick()
	}
	return e.Snapshot()
}
