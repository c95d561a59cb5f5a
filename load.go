package nbaheat

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Column names and delimiter of the reference dataset.
const (
	PlayerColumn = "PLAYER"
	TeamColumn   = "TEAM"

	Delimiter = ';'
)

// Load reads the delimited statistics file at path into a StatTable.
func Load(path string) (*StatTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f, path)
}

// Read parses a delimited statistics table with a header row. The
// PLAYER column keys the rows, the TEAM column is dropped, every other
// column must be numeric. The name is used in error messages only.
func Read(r io.Reader, name string) (*StatTable, error) {
	df := dataframe.ReadCSV(r,
		dataframe.WithDelimiter(Delimiter),
		dataframe.HasHeader(true),
	)
	if df.Err != nil {
		return nil, &ParseError{Name: name, Err: df.Err}
	}

	names := df.Names()
	if headerless(names) {
		return nil, &ParseError{Name: name, Err: errors.New("missing header row")}
	}
	has := func(want string) bool {
		for _, n := range names {
			if n == want {
				return true
			}
		}
		return false
	}
	if !has(PlayerColumn) {
		return nil, &SchemaError{Column: PlayerColumn}
	}
	if !has(TeamColumn) {
		return nil, &SchemaError{Column: TeamColumn}
	}

	players := df.Col(PlayerColumn).Records()
	if len(players) == 0 {
		return nil, &ParseError{Name: name, Err: errors.New("no data rows")}
	}
	seen := make(map[string]bool, len(players))
	for _, p := range players {
		if p == "" {
			return nil, &SchemaError{Column: PlayerColumn, Reason: "empty player name"}
		}
		if seen[p] {
			return nil, &SchemaError{
				Column: PlayerColumn,
				Reason: fmt.Sprintf("duplicate player %q", p),
			}
		}
		seen[p] = true
	}

	var columns []string
	for _, n := range names {
		if n == PlayerColumn || n == TeamColumn {
			continue
		}
		columns = append(columns, n)
	}
	if len(columns) == 0 {
		return nil, &ParseError{Name: name, Err: errors.New("no statistic columns")}
	}

	t := NewStatTable(players, columns)
	for c, colName := range columns {
		s := df.Col(colName)
		switch s.Type() {
		case series.Int, series.Float:
		default:
			return nil, &ParseError{
				Name:   name,
				Column: colName,
				Value:  firstNonNumeric(s.Records()),
			}
		}
		records := s.Records()
		for r, v := range s.Float() {
			if math.IsNaN(v) {
				return nil, &ParseError{
					Name:   name,
					Column: colName,
					Value:  records[r],
				}
			}
			t.Set(r, c, v)
		}
	}
	return t, nil
}

// headerless reports whether every header field parses as a number,
// i.e. the first line of the file was data, not a header.
func headerless(names []string) bool {
	for _, n := range names {
		if _, err := strconv.ParseFloat(n, 64); err != nil {
			return false
		}
	}
	return true
}

func firstNonNumeric(records []string) string {
	for _, rec := range records {
		if _, err := strconv.ParseFloat(rec, 64); err != nil {
			return rec
		}
	}
	if len(records) > 0 {
		return records[0]
	}
	return ""
}
