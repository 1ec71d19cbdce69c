package ui

import (
	"context"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/png-sorter/internal/i18n"
	"github.com/ytget/png-sorter/internal/model"
)

// LoginScreen asks for a license key and verifies it remotely
type LoginScreen struct {
	root *RootUI

	keyLabel    *widget.Label
	keyEntry    *widget.Entry
	verifyBtn   *widget.Button
	expiryBtn   *widget.Button
	statusLabel *widget.Label
	content     fyne.CanvasObject
}

// NewLoginScreen builds the license screen
func NewLoginScreen(root *RootUI) *LoginScreen {
	ls := &LoginScreen{root: root}

	ls.keyLabel = widget.NewLabel("")
	ls.keyEntry = widget.NewEntry()
	ls.keyEntry.OnSubmitted = func(string) { ls.onVerify() }

	ls.verifyBtn = widget.NewButton("", ls.onVerify)
	ls.verifyBtn.Importance = widget.HighImportance
	ls.expiryBtn = widget.NewButton("", ls.onCheckExpiry)

	ls.statusLabel = widget.NewLabel("")
	ls.statusLabel.Alignment = fyne.TextAlignCenter
	ls.statusLabel.Wrapping = fyne.TextWrapWord

	ls.content = container.NewVBox(
		container.NewBorder(nil, nil, ls.keyLabel, nil, ls.keyEntry),
		ls.verifyBtn,
		ls.statusLabel,
		ls.expiryBtn,
	)

	ls.RefreshTexts()
	setStatus(ls.statusLabel, root.localization.GetText(i18n.KeyWaitingVerification), StatusNeutral)
	return ls
}

// Content returns the screen's canvas object
func (ls *LoginScreen) Content() fyne.CanvasObject {
	return ls.content
}

// RefreshTexts re-applies localized labels
func (ls *LoginScreen) RefreshTexts() {
	l := ls.root.localization
	ls.keyLabel.SetText(l.GetText(i18n.KeyLicenseKey))
	ls.verifyBtn.SetText(l.GetText(i18n.KeyVerify))
	ls.expiryBtn.SetText(l.GetText(i18n.KeyCheckExpiry))
}

// Reset clears the key and status, used after logout
func (ls *LoginScreen) Reset() {
	ls.keyEntry.SetText("")
	ls.setBusy(false)
	setStatus(ls.statusLabel, ls.root.localization.GetText(i18n.KeyWaitingVerification), StatusNeutral)
}

// key returns the key as typed; ok is false when it is blank
func (ls *LoginScreen) key() (key string, ok bool) {
	key = ls.keyEntry.Text
	return key, strings.TrimSpace(key) != ""
}

func (ls *LoginScreen) busy() bool {
	return ls.verifyBtn.Disabled()
}

func (ls *LoginScreen) setBusy(busy bool) {
	if busy {
		ls.verifyBtn.Disable()
		ls.expiryBtn.Disable()
		return
	}
	ls.verifyBtn.Enable()
	ls.expiryBtn.Enable()
}

// onVerify handles the verify button
func (ls *LoginScreen) onVerify() {
	if ls.busy() {
		return
	}
	l := ls.root.localization
	key, ok := ls.key()
	if !ok {
		setStatus(ls.statusLabel, l.GetText(i18n.KeyPleaseEnterKey), StatusError)
		return
	}

	ls.setBusy(true)
	setStatus(ls.statusLabel, l.GetText(i18n.KeyVerifying), StatusNeutral)

	session := &model.Session{Key: key, MachineID: ls.root.machineID, Version: ls.root.version}
	ls.root.background(func() {
		ctx, cancel := context.WithTimeout(context.Background(), LicenseCallTimeout)
		defer cancel()
		result := ls.root.licenseSvc.Login(ctx, session.Key, session.Version, session.MachineID)

		ls.root.onMain(func() {
			ls.setBusy(false)
			if !result.OK {
				setStatus(ls.statusLabel, l.Format(i18n.KeyVerificationFailed, map[string]any{"Message": result.Message}), StatusError)
				return
			}
			session.Token = result.Token
			ls.root.logger.Info("license verified", zap.String("machine_id", session.MachineID))
			ls.root.onLoggedIn(session)
		})
	})
}

// onCheckExpiry handles the expiry button
func (ls *LoginScreen) onCheckExpiry() {
	if ls.busy() {
		return
	}
	l := ls.root.localization
	key, ok := ls.key()
	if !ok {
		setStatus(ls.statusLabel, l.GetText(i18n.KeyPleaseEnterKey), StatusError)
		return
	}

	ls.setBusy(true)
	ls.root.background(func() {
		ctx, cancel := context.WithTimeout(context.Background(), LicenseCallTimeout)
		defer cancel()
		result := ls.root.licenseSvc.Expiry(ctx, key)

		ls.root.onMain(func() {
			ls.setBusy(false)
			if result.OK {
				setStatus(ls.statusLabel, l.Format(i18n.KeyExpiresAt, map[string]any{"Date": result.ExpiresAt}), StatusInfo)
				return
			}
			setStatus(ls.statusLabel, l.Format(i18n.KeyExpiryFailed, map[string]any{"Message": result.Message}), StatusError)
		})
	})
}
