package dropoff

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// NoEdge is the adjacency marker for a missing edge.
const NoEdge = "x"

const (
	COMPARATOR_GT  = "gt"
	COMPARATOR_GE  = "ge"
	OBJECTIVE_NONE = "none"
	OBJECTIVE_COST = "cost"
)

type Instance struct {
	Name    string `json:"name"`
	Comment string `json:"comment"`

	LocationCount int        `json:"number_of_locations"`
	HouseCount    int        `json:"number_of_houses"`
	Locations     []string   `json:"locations"`
	Houses        []string   `json:"houses"`
	Start         string     `json:"starting_location"`
	Adjacency     [][]Weight `json:"adjacency_matrix"`

	Solution *Solution `json:"solution,omitempty"`
}

type Solution struct {
	Tour        []string            `json:"tour"`
	Dropoffs    map[string][]string `json:"dropoffs"`
	DrivingCost float64             `json:"driving_cost"`
	WalkingCost float64             `json:"walking_cost"`
	Cost        float64             `json:"cost"`

	Time    string  `json:"time"`
	System  SysInfo `json:"system"`
	Comment string  `json:"comment"`
}

// SysInfo saves the basic system information
type SysInfo struct {
	Platform string
	CPU      string
	RAM      string
}

// Weight is a single adjacency cell: an edge weight or NoEdge.
type Weight struct {
	Value float64
	Edge  bool
}

func EdgeWeight(v float64) Weight {
	return Weight{Value: v, Edge: true}
}

func Missing() Weight {
	return Weight{}
}

// ParseWeight reads a cell token as it appears in input files.
func ParseWeight(tok string) (Weight, error) {
	if tok == NoEdge {
		return Missing(), nil
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return Weight{}, fmt.Errorf("%w: bad adjacency cell %q", ErrInvalidInput, tok)
	}
	return EdgeWeight(v), nil
}

func (w Weight) String() string {
	if !w.Edge {
		return NoEdge
	}
	return strconv.FormatFloat(w.Value, 'f', -1, 64)
}

func (w Weight) MarshalJSON() ([]byte, error) {
	if !w.Edge {
		return json.Marshal(NoEdge)
	}
	return []byte(w.String()), nil
}

func (w *Weight) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s != NoEdge {
			return fmt.Errorf("%w: bad adjacency cell %q", ErrInvalidInput, s)
		}
		*w = Missing()
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("%w: bad adjacency cell %s", ErrInvalidInput, string(data))
	}
	*w = EdgeWeight(v)
	return nil
}
