package manifest

import (
	"regexp"
	"strconv"
)

// meshPattern matches placed-agent mesh filenames. The pattern is anchored
// at the start of the name only; trailing characters after ".glb" do not
// disqualify a match.
var meshPattern = regexp.MustCompile(`^obj_mesh_placed_agent(\d+)_(\d+)\.glb`)

// Placement identifies a single placed mesh: the agent it belongs to and
// its position in that agent's sequence.
type Placement struct {
	Agent string
	Index int
}

// ParsePlacement extracts the agent identifier and placement index from a
// filename. It reports false for names that do not match the grammar. The
// agent identifier keeps its literal digit form (leading zeros preserved);
// the index is parsed as an integer for sorting.
func ParsePlacement(name string) (Placement, bool) {
	groups := meshPattern.FindStringSubmatch(name)
	if groups == nil {
		return Placement{}, false
	}
	index, err := strconv.Atoi(groups[2])
	if err != nil {
		return Placement{}, false
	}
	return Placement{Agent: groups[1], Index: index}, true
}
