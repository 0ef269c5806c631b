// Package dialogs provides application dialogs.
package dialogs

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/sriglab/sriggrid/pkg/layout"
	"github.com/sriglab/sriggrid/pkg/units"
)

// GridParamsDialog prompts for the grid spacing used when placing a
// via table onto the board. Values entered in inches are converted to
// millimeters before the result is handed to the callback.
type GridParamsDialog struct {
	window fyne.Window

	xStepEntry   *widget.Entry
	yStepEntry   *widget.Entry
	columnsEntry *widget.Entry
	unitSelect   *widget.Select
	errorLabel   *widget.Label

	onAccept func(layout.GridConfig)
}

// NewGridParamsDialog creates the dialog with the given defaults
// (steps in millimeters).
func NewGridParamsDialog(window fyne.Window, defaults layout.GridConfig, onAccept func(layout.GridConfig)) *GridParamsDialog {
	d := &GridParamsDialog{
		window:   window,
		onAccept: onAccept,
	}

	d.xStepEntry = widget.NewEntry()
	d.xStepEntry.SetText(fmt.Sprintf("%.3f", defaults.XStep))

	d.yStepEntry = widget.NewEntry()
	d.yStepEntry.SetText(fmt.Sprintf("%.3f", defaults.YStep))

	d.columnsEntry = widget.NewEntry()
	d.columnsEntry.SetText(strconv.Itoa(defaults.Columns))

	d.unitSelect = widget.NewSelect([]string{"mm", "inch"}, nil)
	d.unitSelect.SetSelected("mm")

	d.errorLabel = widget.NewLabel("")
	d.errorLabel.Hide()

	return d
}

// Show displays the dialog. The accept callback fires only when the
// entered values validate; invalid input keeps the dialog open with
// an inline message.
func (d *GridParamsDialog) Show() {
	form := widget.NewForm(
		widget.NewFormItem("X step", d.xStepEntry),
		widget.NewFormItem("Y step", d.yStepEntry),
		widget.NewFormItem("Columns", d.columnsEntry),
		widget.NewFormItem("Units", d.unitSelect),
	)

	content := container.NewVBox(
		widget.NewCard("Grid Spacing", "", form),
		d.errorLabel,
	)

	var dlg *dialog.CustomDialog
	apply := widget.NewButton("Place", func() {
		cfg, err := d.parse()
		if err != nil {
			d.errorLabel.SetText(err.Error())
			d.errorLabel.Show()
			return
		}
		dlg.Hide()
		if d.onAccept != nil {
			d.onAccept(cfg)
		}
	})
	cancel := widget.NewButton("Cancel", func() {
		dlg.Hide()
	})

	buttons := container.NewHBox(cancel, apply)
	dlg = dialog.NewCustomWithoutButtons("Grid Placement", container.NewVBox(content, buttons), d.window)
	dlg.Resize(fyne.NewSize(360, 320))
	dlg.Show()
}

func (d *GridParamsDialog) parse() (layout.GridConfig, error) {
	var cfg layout.GridConfig

	xStep, err := strconv.ParseFloat(d.xStepEntry.Text, 64)
	if err != nil {
		return cfg, fmt.Errorf("X step must be a number")
	}
	yStep, err := strconv.ParseFloat(d.yStepEntry.Text, 64)
	if err != nil {
		return cfg, fmt.Errorf("Y step must be a number")
	}
	columns, err := strconv.Atoi(d.columnsEntry.Text)
	if err != nil {
		return cfg, fmt.Errorf("columns must be an integer")
	}

	unit, err := units.ParseUnit(d.unitSelect.Selected)
	if err != nil {
		return cfg, err
	}

	cfg = layout.GridConfig{
		XStep:   unit.ToMM(xStep),
		YStep:   unit.ToMM(yStep),
		Columns: columns,
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
