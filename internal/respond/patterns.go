package respond

import "github.com/liminal-ware/querent/internal/environment"

// Pattern tables are read-only, process-wide constants. Each table has
// exactly five entries, indexed by pause or depth level minus one.

// #region pacing

// pausePatterns close every response, one to five tokens by pause level.
var pausePatterns = [5]string{
	".",
	". .",
	". . .",
	". . . .",
	". . . . .",
}

// #endregion pacing

// #region brackets

// containingPatterns wrap the reflected phrase by depth level.
var containingPatterns = [5][2]string{
	{"[ ", " ]"},
	{"| ", " |"},
	{"- ", " -"},
	{"( ", " )"},
	{"{ ", " }"},
}

// depthIndents push the focal phrase inward by depth level.
var depthIndents = [5]string{
	"",
	"  ",
	"    ",
	"      ",
	"        ",
}

// #endregion brackets

// #region prompts

// statePrompts owns five prompts per dialogue state, indexed by depth level.
var statePrompts = map[environment.State][5]string{
	environment.Settling: {
		"Take a moment to settle into this space",
		"Let your attention arrive here",
		"Notice where you are right now",
		"Let what is present become present",
		"Rest here for a breath before we continue",
	},
	environment.Expanding: {
		"What else is present?",
		"Where else does your attention move?",
		"What other aspects feel alive?",
		"What remains unspoken?",
		"What other threads emerge?",
	},
	environment.Containing: {
		"holding this",
		"keeping this within reach",
		"a boundary around what you carry",
		"this much, and no more, for now",
		"contained, not closed",
	},
	environment.Dwelling: {
		"staying with what's present",
		"remaining here a moment longer",
		"no need to move on yet",
		"letting this settle where it is",
		"dwelling, without conclusion",
	},
	environment.Emerging: {
		"What question begins to form?",
		"How might this question want to be asked?",
		"What shape does this query take?",
		"How does this question hold your situation?",
		"What query emerges from this exploration?",
	},
}

// #endregion prompts
