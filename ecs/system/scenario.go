package system

import (
	"fmt"
	"log"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/spritesim/ecs"
	"github.com/milk9111/spritesim/prefabs"
)

// ScenarioHost is what a scenario script may do to the scene.
type ScenarioHost interface {
	AddRandomSoldier() (ecs.Entity, error)
	KillRandomSoldier() bool
	LivingCount() int
}

// ScenarioSystem runs a tengo script's update(engine, state) once per frame.
// state is a map that survives between frames.
type ScenarioSystem struct {
	host       ScenarioHost
	scriptPath string
	compiled   *tengo.Compiled
	stateData  *tengo.Map
	failed     bool
}

const scenarioDispatchScript = `
update(__engine, __state)
`

// NewScenarioSystem compiles the script at scriptPath. An empty path gives a
// system that does nothing.
func NewScenarioSystem(host ScenarioHost, scriptPath string) (*ScenarioSystem, error) {
	s := &ScenarioSystem{host: host, scriptPath: strings.TrimSpace(scriptPath)}
	if s.scriptPath == "" {
		return s, nil
	}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// ScriptPath returns the script the system runs.
func (s *ScenarioSystem) ScriptPath() string {
	if s == nil {
		return ""
	}
	return s.scriptPath
}

// Reload recompiles the script and resets its state.
func (s *ScenarioSystem) Reload() error {
	if s == nil || s.scriptPath == "" {
		return nil
	}
	src, err := prefabs.LoadScript(s.scriptPath)
	if err != nil {
		return fmt.Errorf("scenario: load %q: %w", s.scriptPath, err)
	}
	compiled, err := compileScenario(src)
	if err != nil {
		return fmt.Errorf("scenario: compile %q: %w", s.scriptPath, err)
	}
	s.compiled = compiled
	s.stateData = &tengo.Map{Value: map[string]tengo.Object{}}
	s.failed = false
	return nil
}

func compileScenario(src []byte) (*tengo.Compiled, error) {
	script := tengo.NewScript([]byte(string(src) + "\n" + scenarioDispatchScript))
	_ = script.Add("__engine", map[string]any{})
	_ = script.Add("__state", map[string]any{})
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	return script.Compile()
}

func (s *ScenarioSystem) Update(w *ecs.World) {
	if s == nil || s.compiled == nil || s.failed || w == nil {
		return
	}
	engine := buildScenarioEngine(w, s.host)
	if err := s.run(engine); err != nil {
		// keep the scene running; a fixed script is picked up on reload
		log.Printf("scenario: %s: %v", s.scriptPath, err)
		s.failed = true
	}
}

func (s *ScenarioSystem) run(engine *tengo.ImmutableMap) error {
	if err := s.compiled.Set("__engine", engine); err != nil {
		return err
	}
	if err := s.compiled.Set("__state", s.stateData); err != nil {
		return err
	}
	return s.compiled.Run()
}

// State returns a copy of the script state as Go values.
func (s *ScenarioSystem) State() map[string]any {
	if s == nil || s.stateData == nil {
		return nil
	}
	out, _ := objectToAny(s.stateData).(map[string]any)
	return out
}

func buildScenarioEngine(w *ecs.World, host ScenarioHost) *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	values["now"] = &tengo.UserFunction{Name: "now", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Float{Value: w.Clock().Now}, nil
	}}

	values["spawn"] = &tengo.UserFunction{Name: "spawn", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if host == nil {
			return tengo.FalseValue, nil
		}
		if _, err := host.AddRandomSoldier(); err != nil {
			log.Printf("scenario: spawn: %v", err)
			return tengo.FalseValue, nil
		}
		return tengo.TrueValue, nil
	}}

	values["kill_random"] = &tengo.UserFunction{Name: "kill_random", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if host == nil || !host.KillRandomSoldier() {
			return tengo.FalseValue, nil
		}
		return tengo.TrueValue, nil
	}}

	values["alive"] = &tengo.UserFunction{Name: "alive", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if host == nil {
			return &tengo.Int{Value: 0}, nil
		}
		return &tengo.Int{Value: int64(host.LivingCount())}, nil
	}}

	values["log"] = &tengo.UserFunction{Name: "log", Value: func(args ...tengo.Object) (tengo.Object, error) {
		parts := make([]string, 0, len(args))
		for _, a := range args {
			parts = append(parts, objectAsString(a))
		}
		log.Printf("scenario: %s", strings.Join(parts, " "))
		return tengo.UndefinedValue, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func objectAsString(obj tengo.Object) string {
	if obj == nil {
		return ""
	}
	switch v := obj.(type) {
	case *tengo.String:
		return v.Value
	default:
		return strings.Trim(v.String(), "\"")
	}
}

func objectToAny(obj tengo.Object) any {
	if obj == nil {
		return nil
	}

	switch v := obj.(type) {
	case *tengo.String:
		return v.Value
	case *tengo.Int:
		return int(v.Value)
	case *tengo.Float:
		return v.Value
	case *tengo.Bool:
		return !v.IsFalsy()
	case *tengo.Array:
		out := make([]any, 0, len(v.Value))
		for _, item := range v.Value {
			out = append(out, objectToAny(item))
		}
		return out
	case *tengo.Map:
		out := make(map[string]any, len(v.Value))
		for k, item := range v.Value {
			out[k] = objectToAny(item)
		}
		return out
	case *tengo.ImmutableMap:
		out := make(map[string]any, len(v.Value))
		for k, item := range v.Value {
			out[k] = objectToAny(item)
		}
		return out
	case *tengo.Undefined:
		return nil
	default:
		return v.String()
	}
}
