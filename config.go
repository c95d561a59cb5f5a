package nbaheat

import "github.com/hoopstats/nbaheat/gradient"

// DefaultGroups is the fixed partition of the NBA statistic columns.
var DefaultGroups = GroupTable{
	Offense: {"PTS", "FGM", "FGA", "FG_per", "3PM", "3PA", "3P_per",
		"FTM", "FTA", "FT_per", "AST"},
	Defense: {"OREB", "DREB", "REB", "STL", "BLK"},
	Other: {"AGE", "GP", "W", "L", "MIN", "TOV", "PF", "DD2", "TD3",
		"plus_minus"},
}

// GroupRamps holds one color gradient per statistic group, indexed by
// GroupKind.
type GroupRamps [numGroups]gradient.Gradient

// DefaultRamps holds the light sequential gradient of each group.
var DefaultRamps = GroupRamps{
	Offense: gradient.MustLight("#7495b9"),
	Defense: gradient.MustLight("#656684"),
	Other:   gradient.MustLight("#633a45"),
}

// labels maps internal column names to human-readable axis labels.
var labels = map[string]string{
	"AGE":        "Age",
	"GP":         "Games",
	"W":          "Wins",
	"L":          "Losses",
	"MIN":        "Minutes",
	"PTS":        "Points",
	"FGM":        "Field Goals Made",
	"FGA":        "Field Goals Attempted",
	"FG_per":     "Field Goal Percentage",
	"3PM":        "Three-Point Made",
	"3PA":        "Three-Point Attempted",
	"3P_per":     "Three-Point Percentage",
	"FTM":        "Free Throws Made",
	"FTA":        "Free Throws Attempted",
	"FT_per":     "Free Throw Percentage",
	"OREB":       "Offensive Rebounds",
	"DREB":       "Defensive Rebounds",
	"REB":        "Rebounds",
	"AST":        "Assists",
	"TOV":        "Turnovers",
	"STL":        "Steals",
	"BLK":        "Blocks",
	"PF":         "Personal Fouls",
	"DD2":        "Double doubles",
	"TD3":        "Triple doubles",
	"plus_minus": "Plus Minus",
}

// Label returns the display label of a statistic column, falling back
// to the internal name for unknown columns.
func Label(column string) string {
	if l, ok := labels[column]; ok {
		return l
	}
	return column
}
