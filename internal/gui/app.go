package gui

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"resume-analyzer-desktop/internal/client"
	"resume-analyzer-desktop/internal/config"
	"resume-analyzer-desktop/internal/export"
	"resume-analyzer-desktop/internal/report"
	"resume-analyzer-desktop/internal/store"
	"resume-analyzer-desktop/internal/submit"
	"resume-analyzer-desktop/internal/upload"
)

const (
	submitLabel = "Analyze Resume"
	busyLabel   = "Processing..."

	// ratingRevealDelay defers the rating bar fill until the results view's
	// entrance animation has played.
	ratingRevealDelay = 500 * time.Millisecond
)

// App represents the main GUI application
type App struct {
	fyneApp    fyne.App
	mainWindow fyne.Window
	config     *config.Config
	logger     zerolog.Logger

	selection  *upload.Selection
	store      *store.ResultStore
	controller *submit.Controller

	// Form
	titleEntry    *widget.Entry
	dropBtn       *widget.Button
	fileNameLabel *widget.Label
	submitBtn     *widget.Button
	form          *fyne.Container

	// Busy indicator
	busy    *fyne.Container
	busyBar *widget.ProgressBarInfinite

	// Error banner
	errorBanner *fyne.Container
	errorLabel  *widget.Label

	// Results view
	resultsDialog  *dialog.CustomDialog
	nameLabel      *widget.Label
	emailLabel     *widget.Label
	ratingBar      *widget.ProgressBar
	ratingLabel    *widget.Label
	coreSkills     *fyne.Container
	softSkills     *fyne.Container
	improvementBox *fyne.Container
	upskillBox     *fyne.Container
}

// NewApp creates a new GUI application
func NewApp(cfg *config.Config, logger zerolog.Logger) *App {
	a := app.New()
	w := a.NewWindow("Resume Analyzer")
	w.Resize(fyne.NewSize(640, 560))

	guiApp := &App{
		fyneApp:    a,
		mainWindow: w,
		config:     cfg,
		logger:     logger,
		store:      store.NewResultStore(),
	}

	guiApp.selection = upload.NewSelection(guiApp.onSelectionChanged)

	analyzer := client.New(cfg.ServerURL,
		client.WithTimeout(time.Duration(cfg.RequestTimeoutSeconds)*time.Second),
		client.WithLogger(logger),
	)
	guiApp.controller = submit.NewController(analyzer, guiApp.store, &fyneView{app: guiApp}, logger)

	// Setup UI
	guiApp.setupUI()

	// Dropping files anywhere on the window selects the first one; extras
	// are ignored.
	w.SetOnDropped(func(_ fyne.Position, uris []fyne.URI) {
		if len(uris) == 0 {
			return
		}
		guiApp.selectPath(uris[0].Path())
	})

	return guiApp
}

// Run starts the GUI application
func (a *App) Run() {
	a.mainWindow.ShowAndRun()
}

// fyneView applies submission effects on the UI thread. Effects are queued in
// order, so the state machine's sequencing survives the thread hop.
type fyneView struct {
	app *App
}

func (v *fyneView) Apply(effect submit.Effect) {
	fyne.Do(func() {
		v.app.applyEffect(effect)
	})
}

func (a *App) applyEffect(effect submit.Effect) {
	switch effect.Kind {
	case submit.EffectDisableSubmit:
		a.submitBtn.Disable()
		a.submitBtn.SetText(busyLabel)
	case submit.EffectRestoreSubmit:
		a.submitBtn.SetText(submitLabel)
		a.submitBtn.Enable()
	case submit.EffectShowBusy:
		a.form.Hide()
		a.busy.Show()
		a.busyBar.Start()
	case submit.EffectHideBusy:
		a.busyBar.Stop()
		a.busy.Hide()
		a.form.Show()
	case submit.EffectShowError:
		a.errorLabel.SetText(effect.Message)
		a.errorBanner.Show()
	case submit.EffectHideError:
		a.errorBanner.Hide()
	case submit.EffectOpenResults:
		a.renderResults()
		a.resultsDialog.Show()
		a.scheduleRatingReveal()
	case submit.EffectCloseResults:
		a.resultsDialog.Hide()
	}
}

// setupUI initializes all UI components
func (a *App) setupUI() {
	header := widget.NewLabelWithStyle("Resume Analyzer", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	// Error banner, hidden until a submission fails
	a.errorLabel = widget.NewLabel("")
	a.errorLabel.Wrapping = fyne.TextWrapWord
	dismissBtn := widget.NewButton("Dismiss", a.handleDismissError)
	a.errorBanner = container.NewBorder(nil, nil, nil, dismissBtn, a.errorLabel)
	a.errorBanner.Hide()

	// Upload form
	a.titleEntry = widget.NewEntry()
	a.titleEntry.SetPlaceHolder(submit.DefaultJobTitle)

	a.dropBtn = widget.NewButton("Drop your resume here or click to browse", a.handleBrowse)
	a.fileNameLabel = widget.NewLabelWithStyle(upload.NoFileLabel, fyne.TextAlignCenter, fyne.TextStyle{})

	a.submitBtn = widget.NewButton(submitLabel, a.handleSubmit)
	a.submitBtn.Disable()

	a.form = container.NewVBox(
		widget.NewForm(widget.NewFormItem("Job Title", a.titleEntry)),
		a.dropBtn,
		a.fileNameLabel,
		a.submitBtn,
	)

	// Busy indicator, shown in place of the form while a request is in flight
	a.busyBar = widget.NewProgressBarInfinite()
	a.busyBar.Stop()
	a.busy = container.NewVBox(
		widget.NewLabelWithStyle("Analyzing your resume...", fyne.TextAlignCenter, fyne.TextStyle{}),
		a.busyBar,
	)
	a.busy.Hide()

	a.setupResultsView()

	content := container.NewVBox(
		header,
		widget.NewSeparator(),
		a.errorBanner,
		a.form,
		a.busy,
	)

	a.mainWindow.SetContent(container.NewPadded(content))
}

// setupResultsView builds the results dialog shown after a successful
// submission.
func (a *App) setupResultsView() {
	a.nameLabel = widget.NewLabel("")
	a.emailLabel = widget.NewLabel("")

	a.ratingBar = widget.NewProgressBar()
	a.ratingBar.TextFormatter = func() string { return "" }
	a.ratingLabel = widget.NewLabel("")

	a.coreSkills = container.NewHBox()
	a.softSkills = container.NewHBox()
	a.improvementBox = container.NewVBox()
	a.upskillBox = container.NewVBox()

	downloadBtn := widget.NewButton("Download Report", a.handleDownloadReport)
	exportBtn := widget.NewButton("Export to Excel", a.handleExportExcel)

	content := container.NewVScroll(container.NewVBox(
		widget.NewForm(
			widget.NewFormItem("Name", a.nameLabel),
			widget.NewFormItem("Email", a.emailLabel),
		),
		widget.NewSeparator(),
		widget.NewLabelWithStyle("Resume Rating", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewBorder(nil, nil, nil, a.ratingLabel, a.ratingBar),
		widget.NewSeparator(),
		widget.NewLabelWithStyle("Core Skills", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		a.coreSkills,
		widget.NewLabelWithStyle("Soft Skills", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		a.softSkills,
		widget.NewSeparator(),
		widget.NewLabelWithStyle("Areas for Improvement", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		a.improvementBox,
		widget.NewLabelWithStyle("Upskill Suggestions", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		a.upskillBox,
		widget.NewSeparator(),
		container.NewHBox(downloadBtn, exportBtn),
	))
	content.SetMinSize(fyne.NewSize(540, 440))

	a.resultsDialog = dialog.NewCustom("Analysis Results", "Close", content, a.mainWindow)
	a.resultsDialog.SetOnClosed(func() {
		a.controller.CloseResults()
	})
}

// renderResults populates the results view from the store. Rendering is a
// pure function of the stored result, so repeated calls produce identical
// output.
func (a *App) renderResults() {
	result := a.store.Get()

	a.nameLabel.SetText(orNotProvided(result.Name))
	a.emailLabel.SetText(orNotProvided(result.Email))

	// The bar stays empty until the reveal fires.
	a.ratingBar.SetValue(0)
	a.ratingLabel.SetText("")

	fillSkillTags(a.coreSkills, result.CoreSkills)
	fillSkillTags(a.softSkills, result.SoftSkills)

	fillFormattedText(a.improvementBox, report.FormatText(result.ImprovementAreas))
	fillFormattedText(a.upskillBox, report.FormatText(result.UpskillSuggestions))
}

// scheduleRatingReveal fills the rating bar after the reveal delay. The raw
// 0-10 rating drives the bar as a 0-100 percentage, so a rating of 7 fills 7%
// of the bar while the label reads "7/10".
func (a *App) scheduleRatingReveal() {
	rating := a.store.Get().ResumeRating
	time.AfterFunc(ratingRevealDelay, func() {
		fyne.Do(func() {
			a.ratingBar.SetValue(float64(rating) / 100)
			a.ratingLabel.SetText(report.RatingLabel(rating))
		})
	})
}

// onSelectionChanged reflects the selection slot in the form.
func (a *App) onSelectionChanged(label string, selected bool) {
	a.fileNameLabel.SetText(label)

	if selected && a.controller.State() != submit.StateSubmitting {
		a.submitBtn.Enable()
	} else if !selected {
		a.submitBtn.Disable()
	}
}

// handleBrowse opens the file picker. Canceling the picker clears the
// selection, matching the file-input behavior.
func (a *App) handleBrowse() {
	dialog.ShowFileOpen(func(uc fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.mainWindow)
			return
		}
		if uc == nil {
			a.selection.Clear()
			return
		}
		defer uc.Close()
		a.selectPath(uc.URI().Path())
	}, a.mainWindow)
}

func (a *App) selectPath(path string) {
	if err := a.selection.SelectPath(path); err != nil {
		a.logger.Warn().Err(err).Str("path", path).Msg("Could not select file")
		dialog.ShowError(err, a.mainWindow)
	}
}

// handleSubmit runs one submission in the background; all UI updates arrive
// through the view effects.
func (a *App) handleSubmit() {
	title := a.titleEntry.Text
	go func() {
		_ = a.controller.Submit(context.Background(), a.selection, title)
	}()
}

func (a *App) handleDismissError() {
	a.controller.DismissError()
}

// handleDownloadReport saves the plain-text report through a save dialog with
// the fixed report filename.
func (a *App) handleDownloadReport() {
	content := report.Build(a.store.Get(), time.Now())

	d := dialog.NewFileSave(func(uc fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.mainWindow)
			return
		}
		if uc == nil {
			return // User canceled
		}
		defer uc.Close()

		if _, err := uc.Write([]byte(content)); err != nil {
			dialog.ShowError(fmt.Errorf("failed to write report: %w", err), a.mainWindow)
			return
		}

		a.logger.Info().Str("path", uc.URI().Path()).Msg("Report saved")
	}, a.mainWindow)
	d.SetFileName(report.Filename)
	d.Show()
}

// handleExportExcel exports the current analysis and session history to an
// Excel workbook.
func (a *App) handleExportExcel() {
	timestamp := time.Now().Format("2006-01-02_150405")
	defaultName := fmt.Sprintf("resume_analysis_%s.xlsx", timestamp)

	d := dialog.NewFileSave(func(uc fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.mainWindow)
			return
		}
		if uc == nil {
			return // User canceled
		}
		defer uc.Close()

		outputPath := uc.URI().Path()
		if err := export.ExportToExcel(a.store.Get(), a.store.History(), outputPath); err != nil {
			dialog.ShowError(fmt.Errorf("failed to export: %w", err), a.mainWindow)
			return
		}

		dialog.ShowInformation("Success", "Results exported successfully to "+filepath.Base(outputPath), a.mainWindow)
	}, a.mainWindow)
	d.SetFileName(defaultName)
	d.Show()
}

func orNotProvided(value string) string {
	if value == "" {
		return report.NotProvided
	}
	return value
}

// fillSkillTags renders one tag per skill, in input order. Empty lists render
// nothing.
func fillSkillTags(box *fyne.Container, skills []string) {
	box.Objects = nil
	for _, skill := range skills {
		box.Add(widget.NewLabelWithStyle(skill, fyne.TextAlignCenter, fyne.TextStyle{Bold: true}))
	}
	box.Refresh()
}

// fillFormattedText renders a formatted free-text section as either a single
// wrapped paragraph or a bulleted list.
func fillFormattedText(box *fyne.Container, text report.FormattedText) {
	box.Objects = nil

	if text.Kind == report.TextParagraph {
		label := widget.NewLabel(text.Paragraph)
		label.Wrapping = fyne.TextWrapWord
		box.Add(label)
	} else {
		for _, item := range text.Items {
			label := widget.NewLabel("• " + item)
			label.Wrapping = fyne.TextWrapWord
			box.Add(label)
		}
	}

	box.Refresh()
}
