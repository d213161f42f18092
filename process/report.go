package process

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/esimov/linear"
	"github.com/esimov/linear/scene"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	cellStyle  = lipgloss.NewStyle().Padding(0, 1)
)

// Report renders the placements of a scene as a table. The last column tells
// whether the child fits entirely inside the scene container.
func Report(sc *scene.Scene, placements []linear.Placement) string {
	outside := make(map[int]bool)
	for _, i := range scene.Overflow(sc.Container.Rect(), placements) {
		outside[i] = true
	}

	rows := make([][]string, 0, len(placements))
	for i, p := range placements {
		name := ""
		if i < len(sc.Children) {
			name = sc.Children[i].Name
		}
		fits := "yes"
		if outside[i] {
			fits = "no"
		}
		rows = append(rows, []string{
			strconv.Itoa(i), name,
			formatFloat(p.X), formatFloat(p.Y),
			formatFloat(p.Width), formatFloat(p.Height),
			fits,
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style { return cellStyle }).
		Headers("#", "NAME", "X", "Y", "WIDTH", "HEIGHT", "FITS").
		Rows(rows...)

	return titleStyle.Render(sc.Title) + "\n" + t.String()
}

func formatFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}
