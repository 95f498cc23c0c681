package pendulum

import (
	"encoding/json"
	"log"

	"github.com/pkg/errors"
)

// scriptStep represents a single action in a script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	Frames int     `json:"frames,omitempty"`
	Value  float64 `json:"value,omitempty"`
	Count  int     `json:"count,omitempty"`
}

// scriptFile is the top-level JSON structure for a script.
type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

var knownActions = map[string]bool{
	"wait":       true,
	"screenshot": true,
	"pause":      true,
	"resume":     true,
	"speed":      true,
	"regenerate": true,
	"clear":      true,
	"count":      true,
}

// Script sequences scene actions across frames, for recorded demos and
// automated visual checks. Attach to a Scene via SetScript.
//
//	{"steps": [
//		{"action": "wait", "frames": 120},
//		{"action": "screenshot", "label": "two-seconds"},
//		{"action": "speed", "value": 3},
//		{"action": "wait", "frames": 60},
//		{"action": "regenerate"}
//	]}
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON script and returns a Script ready to be
// attached to a Scene via SetScript.
func LoadScript(jsonData []byte) (*Script, error) {
	var file scriptFile
	if err := json.Unmarshal(jsonData, &file); err != nil {
		return nil, errors.Wrap(err, "parse script")
	}
	if len(file.Steps) == 0 {
		return nil, errors.New("parse script: no steps")
	}
	for i, st := range file.Steps {
		if !knownActions[st.Action] {
			return nil, errors.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: file.Steps}, nil
}

// SetScript attaches a Script to the scene. The script's step method is
// called from Scene.Update before the clock advances.
func (s *Scene) SetScript(script *Script) {
	s.script = script
}

// Done reports whether all steps in the script have been executed.
func (r *Script) Done() bool {
	return r.done
}

// Frames returns the number of frames the script needs to finish,
// counting one frame per step plus the extra frames of each wait.
func (r *Script) Frames() int {
	total := 0
	for _, st := range r.steps {
		total++
		if st.Action == "wait" && st.Frames > 1 {
			total += st.Frames - 1
		}
	}
	return total
}

// step advances the script by one frame. Called from Scene.Update.
func (r *Script) step(s *Scene) {
	if r.done {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	var err error
	switch st.Action {
	case "screenshot":
		s.Screenshot(st.Label)
	case "pause":
		s.Pause()
	case "resume":
		s.Resume()
	case "speed":
		err = s.SetSpeed(st.Value)
	case "regenerate":
		err = s.Regenerate()
	case "clear":
		s.Clear()
	case "count":
		err = s.SetCount(st.Count)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}
	if err != nil {
		log.Printf("pendulum: script step %d (%s): %v", r.cursor-1, st.Action, err)
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}
