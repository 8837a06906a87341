package analysis

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	panelWidth  = 700
	panelHeight = 500
)

// SaveChart renders the two-panel performance comparison and writes it as a
// single PNG: raw sample distribution on the left, mean with 95% CI error
// bars on the right.
func SaveChart(dataset *Dataset, ranked []RankedStats, filename string) error {
	left, err := renderDistribution(dataset, ranked)
	if err != nil {
		return fmt.Errorf("failed to render distribution panel: %w", err)
	}

	right, err := renderMeans(ranked)
	if err != nil {
		return fmt.Errorf("failed to render mean/CI panel: %w", err)
	}

	combined := image.NewRGBA(image.Rect(0, 0, left.Bounds().Dx()+right.Bounds().Dx(), panelHeight))
	draw.Draw(combined, combined.Bounds(), image.White, image.Point{}, draw.Src)
	draw.Draw(combined, left.Bounds(), left, image.Point{}, draw.Over)
	draw.Draw(combined, right.Bounds().Add(image.Pt(left.Bounds().Dx(), 0)), right, image.Point{}, draw.Over)

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, combined); err != nil {
		return fmt.Errorf("failed to encode chart: %w", err)
	}
	return nil
}

// pointStyle returns a style that renders points only (no connecting line)
func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: 0,
		DotWidth:    4,
		DotColor:    col,
	}
}

// renderDistribution draws one column of sample points per language
func renderDistribution(dataset *Dataset, ranked []RankedStats) (image.Image, error) {
	series := make([]chart.Series, 0, len(ranked))
	ticks := make([]chart.Tick, 0, len(ranked)+2)
	ticks = append(ticks, chart.Tick{Value: 0, Label: ""})

	yMin, yMax := rangeLimits(ranked)

	for i, r := range ranked {
		x := float64(i + 1)
		samples := dataset.Samples[r.Language]

		xs := make([]float64, len(samples))
		ys := make([]float64, len(samples))
		for j, v := range samples {
			xs[j] = x
			ys[j] = v
		}
		// go-chart cannot size a range from a single point
		if len(samples) == 1 {
			xs = append(xs, x)
			ys = append(ys, samples[0])
		}

		series = append(series, chart.ContinuousSeries{
			Name:    r.Language,
			XValues: xs,
			YValues: ys,
			Style:   pointStyle(chart.GetDefaultColor(i)),
		})
		ticks = append(ticks, chart.Tick{Value: x, Label: r.Language})
	}
	ticks = append(ticks, chart.Tick{Value: float64(len(ranked) + 1), Label: ""})

	ch := chart.Chart{
		Title:  "Execution Time Distribution",
		Width:  panelWidth,
		Height: panelHeight,
		XAxis: chart.XAxis{
			Name:  "Language",
			Ticks: ticks,
			Range: &chart.ContinuousRange{Min: 0, Max: float64(len(ranked) + 1)},
		},
		YAxis: chart.YAxis{
			Name:  "Time (ms)",
			Range: &chart.ContinuousRange{Min: yMin, Max: yMax},
		},
		Series: series,
	}

	return renderPNG(ch)
}

// renderMeans draws mean points with vertical error bars spanning half the
// confidence interval width in each direction
func renderMeans(ranked []RankedStats) (image.Image, error) {
	series := make([]chart.Series, 0, len(ranked)+1)
	ticks := make([]chart.Tick, 0, len(ranked)+2)
	ticks = append(ticks, chart.Tick{Value: 0, Label: ""})

	yMin, yMax := rangeLimits(ranked)

	for i, r := range ranked {
		x := float64(i + 1)
		half := r.CIWidth / 2

		series = append(series, chart.ContinuousSeries{
			XValues: []float64{x, x},
			YValues: []float64{r.Mean - half, r.Mean + half},
			Style: chart.Style{
				StrokeWidth: 2,
				StrokeColor: chart.GetDefaultColor(i),
			},
		})
		ticks = append(ticks, chart.Tick{Value: x, Label: r.Language})
	}
	ticks = append(ticks, chart.Tick{Value: float64(len(ranked) + 1), Label: ""})

	meanXs := make([]float64, len(ranked))
	meanYs := make([]float64, len(ranked))
	for i, r := range ranked {
		meanXs[i] = float64(i + 1)
		meanYs[i] = r.Mean
	}
	if len(ranked) == 1 {
		meanXs = append(meanXs, meanXs[0])
		meanYs = append(meanYs, meanYs[0])
	}
	st := pointStyle(chart.ColorBlack)
	st.DotWidth = 6
	series = append(series, chart.ContinuousSeries{
		Name:    "Mean",
		XValues: meanXs,
		YValues: meanYs,
		Style:   st,
	})

	ch := chart.Chart{
		Title:  "Mean Execution Time with 95% CI",
		Width:  panelWidth,
		Height: panelHeight,
		XAxis: chart.XAxis{
			Name:  "Language",
			Ticks: ticks,
			Range: &chart.ContinuousRange{Min: 0, Max: float64(len(ranked) + 1)},
		},
		YAxis: chart.YAxis{
			Name:  "Time (ms)",
			Range: &chart.ContinuousRange{Min: yMin, Max: yMax},
		},
		Series: series,
	}

	return renderPNG(ch)
}

// rangeLimits computes a shared y-range with headroom, widened when the data
// is flat so the axis never degenerates.
func rangeLimits(ranked []RankedStats) (float64, float64) {
	yMin := ranked[0].Min
	yMax := ranked[0].Max
	for _, r := range ranked {
		// The CI can reach past the sample extremes for small n
		if r.CILower < yMin {
			yMin = r.CILower
		}
		if r.Min < yMin {
			yMin = r.Min
		}
		if r.CIUpper > yMax {
			yMax = r.CIUpper
		}
		if r.Max > yMax {
			yMax = r.Max
		}
	}

	pad := (yMax - yMin) * 0.05
	if pad == 0 {
		pad = 1
	}
	return yMin - pad, yMax + pad
}

func renderPNG(ch chart.Chart) (image.Image, error) {
	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return png.Decode(&buf)
}
