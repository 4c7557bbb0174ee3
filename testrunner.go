package gesture

import (
	"encoding/json"
	"fmt"
	"math"
	"time"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action   string  `json:"action"`
	ID       int     `json:"id,omitempty"`
	X        float64 `json:"x,omitempty"`
	Y        float64 `json:"y,omitempty"`
	FromX    float64 `json:"fromX,omitempty"`
	FromY    float64 `json:"fromY,omitempty"`
	ToX      float64 `json:"toX,omitempty"`
	ToY      float64 `json:"toY,omitempty"`
	FromSpan float64 `json:"fromSpan,omitempty"`
	ToSpan   float64 `json:"toSpan,omitempty"`
	Radius   float64 `json:"radius,omitempty"`
	From     float64 `json:"from,omitempty"` // degrees
	To       float64 `json:"to,omitempty"`   // degrees
	Frames   int     `json:"frames,omitempty"`
	Ms       int     `json:"ms,omitempty"`
	Gestures []Kind  `json:"gestures,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

var testActions = map[string]bool{
	"press": true, "move": true, "release": true, "step": true, "cancel": true,
	"wait": true, "tap": true, "doubletap": true, "drag": true, "pinch": true,
	"rotate": true, "enable": true, "disable": true, "skip": true, "unskip": true,
}

// TestRunner replays a JSON script of synthetic input into a Recognizer.
// Each script step is executed by one call to Step; the events it produces
// are fed immediately.
type TestRunner struct {
	steps    []testStep
	cursor   int
	injector *Injector
	handled  int
}

// LoadTestScript parses a JSON test script:
//
//	{"steps": [
//		{"action": "tap", "x": 100, "y": 200},
//		{"action": "wait", "ms": 50},
//		{"action": "pinch", "x": 320, "y": 240, "fromSpan": 40, "toSpan": 120, "frames": 10}
//	]}
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if !testActions[st.Action] {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps, injector: NewInjector()}, nil
}

// Done reports whether all steps in the test script have been executed.
func (tr *TestRunner) Done() bool {
	return tr.cursor >= len(tr.steps)
}

// Handled returns how many fed events the recognizer reported as handled.
func (tr *TestRunner) Handled() int {
	return tr.handled
}

// Step executes the next script step against r.
func (tr *TestRunner) Step(r *Recognizer) error {
	if tr.Done() {
		return nil
	}
	st := tr.steps[tr.cursor]
	tr.cursor++

	in := tr.injector
	switch st.Action {
	case "press":
		in.Press(st.ID, st.X, st.Y)
	case "move":
		in.Move(st.ID, st.X, st.Y)
	case "release":
		in.Release(st.ID)
	case "step":
		in.Step()
	case "cancel":
		in.Cancel()
	case "wait":
		in.Wait(time.Duration(st.Ms) * time.Millisecond)
	case "tap":
		in.Tap(st.X, st.Y)
	case "doubletap":
		in.DoubleTap(st.X, st.Y, time.Duration(st.Ms)*time.Millisecond)
	case "drag":
		in.Drag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "pinch":
		in.Pinch(st.X, st.Y, st.FromSpan, st.ToSpan, st.Frames)
	case "rotate":
		in.Rotate(st.X, st.Y, st.Radius, st.From*math.Pi/180, st.To*math.Pi/180, st.Frames)
	case "enable":
		r.Enable(st.Gestures...)
	case "disable":
		r.Disable(st.Gestures...)
	case "skip":
		r.Skip(st.Gestures...)
	case "unskip":
		r.Unskip(st.Gestures...)
	}

	for _, ev := range in.Events() {
		h, err := r.ProcessEvent(ev)
		if err != nil {
			return fmt.Errorf("test script step %d (%s): %w", tr.cursor-1, st.Action, err)
		}
		if h {
			tr.handled++
		}
	}
	return nil
}

// Run executes all remaining steps.
func (tr *TestRunner) Run(r *Recognizer) error {
	for !tr.Done() {
		if err := tr.Step(r); err != nil {
			return err
		}
	}
	return nil
}
