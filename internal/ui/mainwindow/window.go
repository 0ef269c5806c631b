// Package mainwindow provides the main application window.
package mainwindow

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/sriglab/sriggrid/internal/ui/dialogs"
	"github.com/sriglab/sriggrid/internal/ui/preview"
	"github.com/sriglab/sriggrid/pkg/kicad/pcb"
	"github.com/sriglab/sriggrid/pkg/layout"
	"github.com/sriglab/sriggrid/pkg/viatable"
)

const prefKeyLastDir = "lastDirectory"

// MainWindow is the primary application window. It holds the loaded
// board and via table and drives placement through the grid dialog.
type MainWindow struct {
	fyne.Window
	app fyne.App
	log *slog.Logger

	boardPath string
	doc       *pcb.Document
	table     *viatable.Table

	preview   *preview.Grid
	statusBar *widget.Label
}

// New creates the main window.
func New(fyneApp fyne.App, log *slog.Logger) *MainWindow {
	win := fyneApp.NewWindow("SRIG Grid")

	mw := &MainWindow{
		Window: win,
		app:    fyneApp,
		log:    log,
	}

	mw.setupUI()
	mw.setupMenus()

	return mw
}

func (mw *MainWindow) setupUI() {
	mw.preview = preview.NewGrid()
	mw.statusBar = widget.NewLabel("Open a board and a via table to begin")

	content := container.NewBorder(
		nil,
		container.NewPadded(mw.statusBar),
		nil,
		nil,
		mw.preview.Container(),
	)

	mw.SetContent(content)
	mw.Resize(fyne.NewSize(720, 540))
	mw.preview.Resize(fyne.NewSize(720, 500))
}

func (mw *MainWindow) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Open Board...", mw.onOpenBoard),
		fyne.NewMenuItem("Open Via Table...", mw.onOpenTable),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Save Board", mw.onSaveBoard),
	)
	placeMenu := fyne.NewMenu("Place",
		fyne.NewMenuItem("Place Grid...", mw.onPlaceGrid),
	)
	mw.SetMainMenu(fyne.NewMainMenu(fileMenu, placeMenu))
}

func (mw *MainWindow) onOpenBoard() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		path := reader.URI().Path()
		doc, err := pcb.Load(path)
		if err != nil {
			dialog.ShowError(err, mw.Window)
			return
		}

		mw.doc = doc
		mw.boardPath = path
		mw.rememberDir(path)
		mw.log.Info("board loaded", "path", path, "footprints", len(doc.Footprints), "vias", len(doc.Vias))
		mw.setStatus(fmt.Sprintf("Board: %s (%d footprints, %d vias)", filepath.Base(path), len(doc.Footprints), len(doc.Vias)))
	}, mw.Window)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".kicad_pcb"}))
	mw.setStartDir(fd)
	fd.Show()
}

func (mw *MainWindow) onOpenTable() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		path := reader.URI().Path()
		table, err := viatable.ReadFile(path)
		if err != nil {
			dialog.ShowError(err, mw.Window)
			return
		}

		mw.table = table
		mw.rememberDir(path)
		mw.log.Info("via table loaded", "path", path, "records", table.Len())
		mw.setStatus(fmt.Sprintf("Via table: %s (%d records)", filepath.Base(path), table.Len()))
		mw.refreshPreview(layout.DefaultGridConfig())
	}, mw.Window)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".csv", ".json"}))
	mw.setStartDir(fd)
	fd.Show()
}

func (mw *MainWindow) onPlaceGrid() {
	if mw.doc == nil {
		dialog.ShowInformation("No Board", "Open a board file first.", mw.Window)
		return
	}
	if mw.table == nil {
		dialog.ShowInformation("No Via Table", "Open a via table first.", mw.Window)
		return
	}

	dlg := dialogs.NewGridParamsDialog(mw.Window, layout.DefaultGridConfig(), func(cfg layout.GridConfig) {
		result, err := layout.Place(mw.doc, mw.table, cfg, layout.DefaultPlaceOptions())
		if err != nil {
			dialog.ShowError(err, mw.Window)
			return
		}
		mw.refreshPreview(cfg)
		mw.log.Info("grid placed", "vias", result.Placed, "rows", result.Rows, "cols", result.Cols)
		mw.setStatus(fmt.Sprintf("Placed %d vias in a %dx%d grid; save the board to keep them", result.Placed, result.Rows, result.Cols))
	})
	dlg.Show()
}

func (mw *MainWindow) onSaveBoard() {
	if mw.doc == nil {
		dialog.ShowInformation("No Board", "Nothing to save.", mw.Window)
		return
	}
	if err := mw.doc.Save(mw.boardPath); err != nil {
		dialog.ShowError(err, mw.Window)
		return
	}
	mw.log.Info("board saved", "path", mw.boardPath)
	mw.setStatus("Saved " + filepath.Base(mw.boardPath))
}

func (mw *MainWindow) refreshPreview(cfg layout.GridConfig) {
	if mw.table == nil {
		return
	}
	placements, err := layout.Placements(mw.table, cfg)
	if err != nil {
		return
	}
	mw.preview.SetPlacements(placements)
}

func (mw *MainWindow) setStatus(msg string) {
	mw.statusBar.SetText(msg)
}

func (mw *MainWindow) rememberDir(path string) {
	mw.app.Preferences().SetString(prefKeyLastDir, filepath.Dir(path))
}

func (mw *MainWindow) setStartDir(fd *dialog.FileDialog) {
	dir := mw.app.Preferences().String(prefKeyLastDir)
	if dir == "" {
		return
	}
	uri := storage.NewFileURI(dir)
	if lister, err := storage.ListerForURI(uri); err == nil {
		fd.SetLocation(lister)
	}
}
