// Command nbaheat renders a categorical heatmap of NBA player
// statistics from a delimited text file.
//
// The single mode colors the whole table with one sequential ramp, the
// grouped mode reorders the columns into the offense, defense and
// other groups and colors each group with its own ramp:
//
//	nbaheat -data datasets/nba_top50_2016.txt -mode grouped -o nba.png
package main

import (
	"flag"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/hoopstats/nbaheat"
	"github.com/hoopstats/nbaheat/heatmap"
)

const title = "NBA's top 50 points leaders\nSeason 2015-16"

// bandWidth separates the encoded group bands; any value above 1 keeps
// them disjoint.
const bandWidth = 100

func main() {
	var (
		data = flag.String("data", "datasets/nba_top50_2016.txt",
			"path of the delimited statistics file")
		mode = flag.String("mode", "grouped",
			"render mode: single or grouped")
		out = flag.String("o", "nba-heatmap.png",
			"output image file (png, pdf or svg)")
	)
	flag.Parse()

	table, err := nbaheat.Load(*data)
	if err != nil {
		log.WithError(err).Fatal("load statistics")
	}

	norm, err := nbaheat.Normalize(table)
	if err != nil {
		log.WithError(err).Fatal("normalize statistics")
	}

	// Row 0 draws at the bottom of the plot, so ascending point order
	// puts the leading scorer topmost.
	players, err := nbaheat.OrderRows(norm, "PTS", true)
	if err != nil {
		log.WithError(err).Fatal("order players")
	}
	norm, err = norm.Arrange(players)
	if err != nil {
		log.WithError(err).Fatal("order players")
	}

	p := plot.New()
	p.Title.Text = title
	heatmap.DefaultStyle().Apply(p)

	switch *mode {
	case "single":
		err = renderSingle(p, norm)
	case "grouped":
		err = renderGrouped(p, norm)
	default:
		log.Fatalf("unknown mode %q, want single or grouped", *mode)
	}
	if err != nil {
		log.WithError(err).Fatal("render heatmap")
	}

	if err := p.Save(12*vg.Inch, 9*vg.Inch, *out); err != nil {
		log.WithError(err).Fatal("save plot")
	}
	log.WithFields(log.Fields{"mode": *mode, "file": *out}).Info("heatmap written")
}

// renderSingle draws the whole normalized table with one ramp, the
// columns in file order.
func renderSingle(p *plot.Plot, norm *nbaheat.StatTable) error {
	hm := plotter.NewHeatMap(heatmap.Grid{Table: norm},
		nbaheat.DefaultRamps[nbaheat.Offense].Palette(256))
	hm.Min, hm.Max = 0, 1
	p.Add(hm)
	labelAxes(p, norm)
	return nil
}

// renderGrouped reorders the columns into their groups, offsets every
// group into its own band and draws each band with its own ramp.
func renderGrouped(p *plot.Plot, norm *nbaheat.StatTable) error {
	asg, err := nbaheat.AssignGroups(norm.Columns, nbaheat.DefaultGroups)
	if err != nil {
		return err
	}
	norm, err = norm.Select(nbaheat.OrderColumns(asg))
	if err != nil {
		return err
	}
	enc, err := nbaheat.NewEncoder(bandWidth, nbaheat.DefaultRamps)
	if err != nil {
		return err
	}
	encoded, stops, err := enc.Encode(norm, asg)
	if err != nil {
		return err
	}
	p.Add(heatmap.NewMap(encoded, stops))
	labelAxes(p, encoded)
	return nil
}

func labelAxes(p *plot.Plot, t *nbaheat.StatTable) {
	cols := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		cols[i] = nbaheat.Label(c)
	}
	p.NominalX(cols...)
	p.NominalY(t.Players...)
}
