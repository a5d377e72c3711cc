package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/mesh-intelligence/favorites/internal/form"
	"github.com/mesh-intelligence/favorites/pkg/types"
)

// Window and layout constants.
const (
	Title        = "T-pop Favorites Record System"
	windowWidth  = 1100
	windowHeight = 700
	queueSize    = 16
)

// Action names used for status text and logging.
const (
	actionAdd    = "add"
	actionUpdate = "update"
	actionDelete = "delete"
	actionReload = "reload"
	actionClear  = "clear"
	actionSelect = "select"
)

// Window is the main application window.
type Window struct {
	win    fyne.Window
	ctrl   *form.Controller
	log    zerolog.Logger
	dbName string

	// Widgets and rows are only touched on the Fyne goroutine.
	inputs  map[form.Field]*widget.Entry
	buttons map[string]*widget.Button
	table   *widget.Table
	status  *widget.Label
	rows    []types.Entry

	// Controller calls run on one worker, in order.
	actions chan func()
	done    chan struct{}
	closed  bool
}

// New builds the main window for store on app. dbName is shown in the
// status bar.
func New(app fyne.App, store types.Store, dbName string, log zerolog.Logger) *Window {
	win := app.NewWindow(Title)
	return newWindow(win, store, newDialogConfirmer(win), dbName, log)
}

func newWindow(win fyne.Window, store types.Store, confirm form.Confirmer, dbName string, log zerolog.Logger) *Window {
	win.Resize(fyne.NewSize(windowWidth, windowHeight))

	w := &Window{
		win:     win,
		log:     log,
		dbName:  dbName,
		inputs:  make(map[form.Field]*widget.Entry, len(form.AllFields)),
		actions: make(chan func(), queueSize),
		done:    make(chan struct{}),
	}
	w.ctrl = form.NewController(store, confirm, log)
	w.ctrl.OnListChanged(w.showEntries)

	win.SetContent(w.build())
	win.SetOnClosed(w.stop)
	return w
}

// ShowAndRun loads the list, shows the window, and runs the Fyne event loop
// until the window closes.
func (w *Window) ShowAndRun() {
	go w.work()
	w.submit(actionReload, w.ctrl.Reload)
	w.win.ShowAndRun()
}

func (w *Window) build() fyne.CanvasObject {
	header := widget.NewLabelWithStyle(Title, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	cells := make([]fyne.CanvasObject, 0, 2*len(form.AllFields))
	for _, f := range form.AllFields {
		entry := widget.NewEntry()
		w.inputs[f] = entry
		cells = append(cells, widget.NewLabel(f.Label()), entry)
	}
	inputs := container.NewGridWithColumns(4, cells...)

	w.buttons = map[string]*widget.Button{
		actionAdd:    widget.NewButton("Add Entry", func() { w.submitWithFields(actionAdd, w.ctrl.Add) }),
		actionUpdate: widget.NewButton("Update Entry", func() { w.submitWithFields(actionUpdate, w.ctrl.Update) }),
		actionDelete: widget.NewButton("Delete Entry", func() { w.submitWithFields(actionDelete, w.ctrl.Delete) }),
		actionReload: widget.NewButton("View All", func() { w.submit(actionReload, w.ctrl.Reload) }),
		actionClear:  widget.NewButton("Clear Fields", func() { w.submit(actionClear, w.clearForm) }),
	}
	buttons := container.NewGridWithColumns(5,
		w.buttons[actionAdd],
		w.buttons[actionUpdate],
		w.buttons[actionDelete],
		w.buttons[actionReload],
		w.buttons[actionClear],
	)

	w.table = w.buildTable()
	w.status = widget.NewLabel(w.readyText())

	top := container.NewVBox(header, inputs, buttons)
	return container.NewBorder(top, w.status, nil, nil, w.table)
}

func (w *Window) buildTable() *widget.Table {
	table := widget.NewTable(
		func() (int, int) { return len(w.rows), len(columnTitles) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.TableCellID, cell fyne.CanvasObject) {
			label := cell.(*widget.Label)
			if id.Row < 0 || id.Row >= len(w.rows) {
				label.SetText("")
				return
			}
			label.SetText(cellText(w.rows[id.Row], id.Col))
		},
	)
	table.ShowHeaderRow = true
	table.CreateHeader = func() fyne.CanvasObject {
		return widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	}
	table.UpdateHeader = func(id widget.TableCellID, cell fyne.CanvasObject) {
		if id.Col >= 0 && id.Col < len(columnTitles) {
			cell.(*widget.Label).SetText(columnTitles[id.Col])
		}
	}
	for col := range columnTitles {
		table.SetColumnWidth(col, columnWidth)
	}
	table.OnSelected = func(id widget.TableCellID) {
		if id.Row < 0 || id.Row >= len(w.rows) {
			return
		}
		entryID := w.rows[id.Row].ID
		w.submit(actionSelect, func() error { return w.ctrl.Select(entryID) })
	}
	return table
}

func (w *Window) clearForm() error {
	w.ctrl.Clear()
	return nil
}

// submitWithFields copies the typed values into the controller before
// running fn, so the action sees exactly what is on screen.
func (w *Window) submitWithFields(action string, fn func() error) {
	values := make(map[form.Field]string, len(w.inputs))
	for f, entry := range w.inputs {
		values[f] = entry.Text
	}
	w.submit(action, func() error {
		for f, v := range values {
			w.ctrl.SetField(f, v)
		}
		return fn()
	})
}

// submit queues fn for the worker. Must be called on the Fyne goroutine.
// The send never blocks: while a confirmation is open the worker is waiting
// on this goroutine, so a full queue drops the action instead.
func (w *Window) submit(action string, fn func() error) {
	if w.closed {
		return
	}
	job := func() {
		err := fn()
		w.finish(action, err)
	}
	select {
	case w.actions <- job:
	default:
		w.log.Warn().Str("action", action).Msg("action queue full, dropped")
		w.status.SetText("Busy, try again | Database: " + w.dbName)
	}
}

func (w *Window) work() {
	defer close(w.done)
	for fn := range w.actions {
		fn()
	}
}

func (w *Window) stop() {
	if w.closed {
		return
	}
	w.closed = true
	close(w.actions)
}

// finish runs on the worker after an action. When the action rewrote the
// form it mirrors the controller's values into the inputs; otherwise what the
// user typed stays. Then it reports the outcome.
func (w *Window) finish(action string, err error) {
	values := w.ctrl.Fields()
	_, selected := w.ctrl.Selected()
	refill := err == nil && rewritesForm(action)

	var out outcome
	if err != nil {
		out = failure(action, err)
		w.log.Debug().Str("action", action).Err(err).Msg("action finished with error")
	} else {
		out = success(action)
	}

	fyne.Do(func() {
		if refill {
			w.setInputs(values)
		}
		if !selected {
			w.table.UnselectAll()
		}
		if action == actionSelect && err == nil {
			return
		}
		w.status.SetText(fmt.Sprintf("%s | Database: %s", out.status, w.dbName))
		w.showOutcome(out)
	})
}

// rewritesForm reports whether a successful action replaced the form values.
// Reload never touches them.
func rewritesForm(action string) bool {
	switch action {
	case actionAdd, actionUpdate, actionDelete, actionClear, actionSelect:
		return true
	default:
		return false
	}
}

func (w *Window) showOutcome(out outcome) {
	switch {
	case out.title == "":
	case out.isErr:
		body := container.NewHBox(widget.NewIcon(theme.ErrorIcon()), widget.NewLabel(out.text))
		dialog.ShowCustom(out.title, "OK", body, w.win)
	default:
		dialog.ShowInformation(out.title, out.text, w.win)
	}
}

func (w *Window) setInputs(values types.Fields) {
	w.inputs[form.FieldName].SetText(values.Name)
	w.inputs[form.FieldGroup].SetText(values.Group)
	w.inputs[form.FieldBias].SetText(values.Bias)
	w.inputs[form.FieldBiasWrecker].SetText(values.BiasWrecker)
	w.inputs[form.FieldSongCount].SetText(values.SongCount)
	w.inputs[form.FieldFavSong].SetText(values.FavSong)
	w.inputs[form.FieldFavAlbum].SetText(values.FavAlbum)
}

// showEntries is the controller's list listener; it runs on the worker.
func (w *Window) showEntries(entries []types.Entry) {
	fyne.Do(func() {
		w.rows = entries
		w.table.Refresh()
	})
}

func (w *Window) readyText() string {
	return "Ready | Database: " + w.dbName
}
