package ui

import (
	"fyne.io/fyne/v2/widget"
)

// StatusKind selects the color of the inline status line
type StatusKind int

const (
	StatusNeutral StatusKind = iota
	StatusError
	StatusSuccess
	StatusInfo
)

// importance maps a status kind onto a label importance
func (k StatusKind) importance() widget.Importance {
	switch k {
	case StatusError:
		return widget.DangerImportance
	case StatusSuccess:
		return widget.SuccessImportance
	case StatusInfo:
		return widget.HighImportance
	default:
		return widget.MediumImportance
	}
}

// setStatus updates a status label text and color
func setStatus(label *widget.Label, text string, kind StatusKind) {
	label.SetText(text)
	label.Importance = kind.importance()
	label.Refresh()
}
