package tween

import (
	"encoding/json"
	"fmt"
	"log"
)

// scriptStep represents a single action in a control script.
type scriptStep struct {
	Action string `json:"action"`
	Tween  string `json:"tween,omitempty"`
	Box    string `json:"box,omitempty"`
	Frames int    `json:"frames,omitempty"`
}

// script is the top-level JSON structure for a control script.
type script struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner plays a control script against a Stage, one step per Update,
// for automated testing of start/stop/restart sequences. Attach it with
// Stage.SetScript.
//
// Actions: "start", "stop" and "restart" (with "tween"), "wait" (with
// "frames") and "dispose" (with "box").
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
	err       error
}

// LoadScript parses a JSON control script and returns a ScriptRunner ready
// to be attached to a Stage via SetScript.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var sc script
	if err := json.Unmarshal(jsonData, &sc); err != nil {
		return nil, fmt.Errorf("parse control script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("parse control script: no steps")
	}
	for i, st := range sc.Steps {
		switch st.Action {
		case "start", "stop", "restart":
			if st.Tween == "" {
				return nil, fmt.Errorf("parse control script: step %d: %s needs a tween", i, st.Action)
			}
		case "dispose":
			if st.Box == "" {
				return nil, fmt.Errorf("parse control script: step %d: dispose needs a box", i)
			}
		case "wait":
		default:
			return nil, fmt.Errorf("parse control script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: sc.Steps}, nil
}

// SetScript attaches a ScriptRunner to the stage. The runner's step method is
// called from Stage.Update before frames are flushed.
func (s *Stage) SetScript(runner *ScriptRunner) {
	s.script = runner
}

// Done reports whether all steps in the script have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Err returns the error that stopped the script, if any.
func (r *ScriptRunner) Err() error {
	return r.err
}

// step advances the runner by one frame. Called from Stage.Update.
func (r *ScriptRunner) step(s *Stage) {
	if r.done {
		return
	}
	// Count down wait frames.
	if r.waitCount > 0 {
		r.waitCount--
		if r.waitCount == 0 && r.cursor >= len(r.steps) {
			r.done = true
		}
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "start", "stop", "restart":
		t := s.Tween(st.Tween)
		if t == nil {
			r.fail(fmt.Errorf("control script step %d: no tween %q", r.cursor-1, st.Tween))
			return
		}
		switch st.Action {
		case "start":
			t.Start()
		case "stop":
			t.Stop()
		case "restart":
			t.Restart()
		}
	case "dispose":
		if s.Box(st.Box) == nil {
			log.Printf("tween: control script step %d: no box %q to dispose", r.cursor-1, st.Box)
			break
		}
		s.RemoveBox(st.Box)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	// Check if we've reached the end after executing.
	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}

func (r *ScriptRunner) fail(err error) {
	r.err = err
	r.done = true
}
