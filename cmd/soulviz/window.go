package main

import (
	"image/color"
	"image/png"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/iafilius/SoulPullViz/cmd/soulviz/uihelpers"
	"github.com/iafilius/SoulPullViz/src/logging"
)

// light theme wrapper so the window chrome matches the white chart
type lightTheme struct{}

func (l *lightTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	return theme.DefaultTheme().Color(name, theme.VariantLight)
}
func (l *lightTheme) Font(style fyne.TextStyle) fyne.Resource { return theme.DefaultTheme().Font(style) }
func (l *lightTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}
func (l *lightTheme) Size(name fyne.ThemeSizeName) float32 { return theme.DefaultTheme().Size(name) }

// windowDisplay opens an interactive window and blocks until it is closed.
type windowDisplay struct{}

func (windowDisplay) Show(c Chart) error {
	a := app.NewWithID("io.github.iafilius.soulpullviz")
	a.Settings().SetTheme(&lightTheme{})
	w := a.NewWindow(c.Title)

	b := c.Image.Bounds()
	ww, wh := uihelpers.ComputeWindowSize(b.Dx(), b.Dy())
	w.Resize(fyne.NewSize(ww, wh))

	img := canvas.NewImageFromImage(c.Image)
	img.FillMode = canvas.ImageFillContain
	img.SetMinSize(fyne.NewSize(float32(b.Dx())/3, float32(b.Dy())/3))

	saveBtn := widget.NewButton("Save PNG...", func() { exportChartPNG(w, c) })
	closeBtn := widget.NewButton("Close", w.Close)
	bar := container.NewHBox(layout.NewSpacer(), saveBtn, closeBtn)
	w.SetContent(container.NewBorder(nil, bar, nil, nil, img))
	w.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeyEscape {
			w.Close()
		}
	})
	w.ShowAndRun()
	return nil
}

// exportChartPNG asks for a destination and writes the chart as PNG.
func exportChartPNG(w fyne.Window, c Chart) {
	if c.Image == nil {
		dialog.ShowInformation("Export", "No chart to export.", w)
		return
	}
	fs := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil || wc == nil {
			return
		}
		defer wc.Close()
		if err := png.Encode(wc, c.Image); err != nil {
			logging.Errorf("export %s: %v", wc.URI().Path(), err)
			dialog.ShowError(err, w)
			return
		}
		logging.Infof("exported chart to %s", wc.URI().Path())
	}, w)
	fs.SetFileName(c.Name)
	fs.Show()
}
