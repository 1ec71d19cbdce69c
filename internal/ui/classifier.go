package ui

import (
	"context"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/png-sorter/internal/i18n"
	"github.com/ytget/png-sorter/internal/model"
	"github.com/ytget/png-sorter/internal/platform"
)

// ClassifierScreen lets the user pick directories and run a batch
type ClassifierScreen struct {
	root *RootUI

	inputEntry       *widget.Entry
	transparentEntry *widget.Entry
	opaqueEntry      *widget.Entry
	browseButtons    []*widget.Button
	openButtons      []*widget.Button
	runBtn           *widget.Button
	statusLabel      *widget.Label

	dirLabels         []*widget.Label
	statsCard         *widget.Card
	transparentTitle  *widget.Label
	opaqueTitle       *widget.Label
	skippedTitle      *widget.Label
	transparentCount  *widget.Label
	opaqueCount       *widget.Label
	skippedCount      *widget.Label
	transparentOpenBx *fyne.Container
	opaqueOpenBx      *fyne.Container

	content fyne.CanvasObject
}

// NewClassifierScreen builds the classifier screen with directories loaded
// from settings
func NewClassifierScreen(root *RootUI) *ClassifierScreen {
	cs := &ClassifierScreen{root: root}

	cs.inputEntry = cs.newDirEntry(root.settings.GetInputDirectory())
	cs.transparentEntry = cs.newDirEntry(root.settings.GetTransparentDirectory())
	cs.opaqueEntry = cs.newDirEntry(root.settings.GetOpaqueDirectory())

	cs.dirLabels = []*widget.Label{widget.NewLabel(""), widget.NewLabel(""), widget.NewLabel("")}
	dirForm := container.New(layout.NewFormLayout(),
		cs.dirLabels[0], cs.withBrowse(cs.inputEntry),
		cs.dirLabels[1], cs.withBrowse(cs.transparentEntry),
		cs.dirLabels[2], cs.withBrowse(cs.opaqueEntry),
	)

	cs.transparentTitle = widget.NewLabel("")
	cs.opaqueTitle = widget.NewLabel("")
	cs.skippedTitle = widget.NewLabel("")
	cs.transparentCount = widget.NewLabel("0")
	cs.opaqueCount = widget.NewLabel("0")
	cs.skippedCount = widget.NewLabel("0")

	cs.transparentOpenBx = container.NewHBox(cs.transparentCount, cs.newOpenButton(cs.transparentEntry))
	cs.opaqueOpenBx = container.NewHBox(cs.opaqueCount, cs.newOpenButton(cs.opaqueEntry))

	cs.statsCard = widget.NewCard("", "", container.NewGridWithColumns(2,
		cs.transparentTitle, cs.transparentOpenBx,
		cs.opaqueTitle, cs.opaqueOpenBx,
		cs.skippedTitle, cs.skippedCount,
	))

	cs.runBtn = widget.NewButton("", cs.onRun)
	cs.runBtn.Importance = widget.HighImportance

	cs.statusLabel = widget.NewLabel("")
	cs.statusLabel.Alignment = fyne.TextAlignCenter
	cs.statusLabel.Truncation = fyne.TextTruncateEllipsis

	cs.content = container.NewVBox(
		dirForm,
		cs.statsCard,
		container.NewCenter(cs.runBtn),
		cs.statusLabel,
	)

	cs.RefreshTexts()
	setStatus(cs.statusLabel, root.localization.GetText(i18n.KeyReady), StatusNeutral)
	return cs
}

// Content returns the screen's canvas object
func (cs *ClassifierScreen) Content() fyne.CanvasObject {
	return cs.content
}

// RefreshTexts re-applies localized labels
func (cs *ClassifierScreen) RefreshTexts() {
	l := cs.root.localization
	titles := []string{
		l.GetText(i18n.KeyInputDirectory),
		l.GetText(i18n.KeyTransparentDirectory),
		l.GetText(i18n.KeyOpaqueDirectory),
	}
	for i, label := range cs.dirLabels {
		label.SetText(titles[i])
	}

	for _, btn := range cs.browseButtons {
		btn.SetText(l.GetText(i18n.KeyBrowse))
	}
	for _, btn := range cs.openButtons {
		btn.SetText(IconFolder + " " + l.GetText(i18n.KeyOpenFolder))
	}

	cs.statsCard.SetTitle(l.GetText(i18n.KeyResults))
	cs.transparentTitle.SetText(l.GetText(i18n.KeyTransparentFiles))
	cs.opaqueTitle.SetText(l.GetText(i18n.KeyOpaqueFiles))
	cs.skippedTitle.SetText(l.GetText(i18n.KeySkippedFiles))
	cs.runBtn.SetText(l.GetText(i18n.KeyRun))
}

func (cs *ClassifierScreen) newDirEntry(value string) *widget.Entry {
	entry := widget.NewEntry()
	entry.SetText(value)
	return entry
}

// withBrowse puts a folder picker button to the right of entry
func (cs *ClassifierScreen) withBrowse(entry *widget.Entry) fyne.CanvasObject {
	btn := widget.NewButton("", func() {
		picker := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
			if err != nil || uri == nil {
				return
			}
			entry.SetText(uri.Path())
		}, cs.root.window)

		if start := platform.BrowseStartDir(entry.Text); start != "" {
			if location, err := storage.ListerForURI(storage.NewFileURI(start)); err == nil {
				picker.SetLocation(location)
			}
		}
		picker.Show()
	})
	cs.browseButtons = append(cs.browseButtons, btn)
	return container.NewBorder(nil, nil, nil, btn, entry)
}

func (cs *ClassifierScreen) newOpenButton(entry *widget.Entry) *widget.Button {
	btn := widget.NewButton("", func() {
		dir := strings.TrimSpace(entry.Text)
		if err := platform.OpenFolderInManager(dir); err != nil {
			cs.root.logger.Warn("failed to open folder", zap.String("dir", dir), zap.Error(err))
			setStatus(cs.statusLabel, cs.root.localization.Format(i18n.KeyErrorPrefix, map[string]any{"Message": err.Error()}), StatusError)
		}
	})
	btn.Importance = widget.LowImportance
	cs.openButtons = append(cs.openButtons, btn)
	return btn
}

// directories returns the trimmed entry values, defaulting empty outputs
func (cs *ClassifierScreen) directories() (input, transparent, opaque string) {
	input = strings.TrimSpace(cs.inputEntry.Text)
	transparent = strings.TrimSpace(cs.transparentEntry.Text)
	if transparent == "" {
		transparent = model.ClassTransparent.DirName()
	}
	opaque = strings.TrimSpace(cs.opaqueEntry.Text)
	if opaque == "" {
		opaque = model.ClassOpaque.DirName()
	}
	return input, transparent, opaque
}

// onRun handles the run button
func (cs *ClassifierScreen) onRun() {
	l := cs.root.localization
	input, transparent, opaque := cs.directories()
	if input == "" {
		setStatus(cs.statusLabel, l.GetText(i18n.KeySelectInputDir), StatusError)
		return
	}

	cs.root.settings.SetInputDirectory(input)
	cs.root.settings.SetTransparentDirectory(transparent)
	cs.root.settings.SetOpaqueDirectory(opaque)

	setStatus(cs.statusLabel, l.GetText(i18n.KeyProcessing), StatusNeutral)
	cs.runBtn.Disable()

	cs.root.classifySvc.SetUpdateCallback(func(result *model.FileResult) {
		cs.root.onMain(func() {
			cs.statusLabel.SetText(l.Format(i18n.KeyProcessingFile, map[string]any{"Name": result.Name}))
		})
	})

	cs.root.background(func() {
		summary, err := cs.root.classifySvc.Run(context.Background(), input, transparent, opaque)

		cs.root.onMain(func() {
			defer cs.runBtn.Enable()
			cs.showSummary(summary)
			if err != nil {
				cs.root.logger.Error("classification failed", zap.Error(err))
				setStatus(cs.statusLabel, l.Format(i18n.KeyErrorPrefix, map[string]any{"Message": err.Error()}), StatusError)
				return
			}
			setStatus(cs.statusLabel, l.GetText(i18n.KeyDone), StatusSuccess)
		})
	})
}

// showSummary renders the counters of a run
func (cs *ClassifierScreen) showSummary(summary *model.Summary) {
	if summary == nil {
		return
	}
	cs.transparentCount.SetText(strconv.Itoa(summary.Transparent))
	cs.opaqueCount.SetText(strconv.Itoa(summary.Opaque))
	cs.skippedCount.SetText(strconv.Itoa(summary.Skipped))
}
