// Package script implements the JSON scripting driver: a one-shot batch
// executor over an ordered array of step objects, each dispatched through a
// small Command registry (Command interface, a Result struct per labelled
// step, a registry() builder, one struct per verb) -- collapsed to a one-shot
// batch driver since there is no long-lived session or filesystem here, only
// nine cube-list slots; flags are reported per step in its Result.
package script

import "encoding/json"

// numSlots is the fixed slot count of the driver's slot array.
const numSlots = 9

// StringOrSlice decodes a JSON string or array of strings into a []string,
// since a step's "bcl" field may be either a single cube line or a list of
// cube lines.
type StringOrSlice []string

// UnmarshalJSON accepts either a JSON string or a JSON array of strings.
func (s *StringOrSlice) UnmarshalJSON(data []byte) error {
	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		*s = []string{one}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*s = many
	return nil
}

// Step is one element of the top-level JSON step array.
type Step struct {
	Cmd    string        `json:"cmd"`
	Slot   int           `json:"slot"`
	BCL    StringOrSlice `json:"bcl"`
	Expr   string        `json:"expr"`
	Label  string        `json:"label"`
	Label0 string        `json:"label0"`
}

// Result is one entry of the driver's output document, emitted for any step
// carrying a label or label0.
type Result struct {
	Step     int    `json:"step"`
	Label    string `json:"label,omitempty"`
	Empty    *bool  `json:"empty,omitempty"`
	Superset *bool  `json:"superset,omitempty"`
	Subset   *bool  `json:"subset,omitempty"`
	BCL      string `json:"bcl,omitempty"`
	Expr     string `json:"expr,omitempty"`
}

// Command is one verb of the closed command vocabulary: bcl2slot, show,
// intersection0, subtract0, equal0, exchange0, copy0.
type Command interface {
	Run(d *Driver, step Step, index int) (Result, error)
}

func registry() map[string]Command {
	return map[string]Command{
		"bcl2slot":      bcl2SlotCommand{},
		"show":          showCommand{},
		"intersection0": intersection0Command{},
		"subtract0":     subtract0Command{},
		"equal0":        equal0Command{},
		"exchange0":     exchange0Command{},
		"copy0":         copy0Command{},
	}
}
