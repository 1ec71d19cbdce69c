package ui

import (
	"fyne.io/fyne/v2"
	"go.uber.org/zap"

	"github.com/ytget/png-sorter/internal/classify"
	"github.com/ytget/png-sorter/internal/config"
	"github.com/ytget/png-sorter/internal/i18n"
	"github.com/ytget/png-sorter/internal/license"
	"github.com/ytget/png-sorter/internal/model"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *i18n.Localization
	logger       *zap.Logger

	licenseSvc  license.Authenticator
	classifySvc classify.Classifier

	version   string
	machineID string
	session   *model.Session

	login  *LoginScreen
	sorter *ClassifierScreen

	// background runs slow work off the UI goroutine, onMain brings results
	// back to it; tests replace both with direct calls
	background func(func())
	onMain     func(func())
}

// NewRootUI creates the UI and shows the license screen. localization may be
// shared with the license client so its messages follow the menu language;
// nil creates a private one.
func NewRootUI(window fyne.Window, app fyne.App, localization *i18n.Localization, licenseSvc license.Authenticator, classifySvc classify.Classifier, logger *zap.Logger, version string) *RootUI {
	return newRootUI(window, app, localization, licenseSvc, classifySvc, logger, version,
		func(f func()) { go f() },
		fyne.Do,
	)
}

func newRootUI(window fyne.Window, app fyne.App, localization *i18n.Localization, licenseSvc license.Authenticator, classifySvc classify.Classifier, logger *zap.Logger, version string, background, onMain func(func())) *RootUI {
	if logger == nil {
		logger = zap.NewNop()
	}
	if localization == nil {
		localization = i18n.NewLocalization()
	}

	settings := config.NewSettings(app)
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		logger:       logger,
		licenseSvc:   licenseSvc,
		classifySvc:  classifySvc,
		version:      version,
		machineID:    license.MachineID(),
		background:   background,
		onMain:       onMain,
	}

	ui.login = NewLoginScreen(ui)
	ui.createMenu()
	ui.showLogin()

	logger.Debug("UI setup completed", zap.String("language", localization.GetCurrentLanguage()))
	return ui
}

// Localization returns the UI localization manager
func (ui *RootUI) Localization() *i18n.Localization {
	return ui.localization
}

// Session returns the current license session, nil before login
func (ui *RootUI) Session() *model.Session {
	return ui.session
}

// showLogin switches the window to the license screen
func (ui *RootUI) showLogin() {
	ui.window.SetTitle(ui.localization.GetText(i18n.KeyLoginTitle))
	ui.window.SetContent(ui.login.Content())
	ui.window.Resize(fyne.NewSize(LoginWindowWidth, LoginWindowHeight))
}

// showClassifier switches the window to the classifier screen
func (ui *RootUI) showClassifier() {
	if ui.sorter == nil {
		ui.sorter = NewClassifierScreen(ui)
	}
	ui.window.SetTitle(ui.localization.GetText(i18n.KeyAppTitle))
	ui.window.SetContent(ui.sorter.Content())
	ui.window.Resize(fyne.NewSize(ClassifierWidth, ClassifierHeight))
}

// onLoggedIn is called by the login screen after a successful verification
func (ui *RootUI) onLoggedIn(session *model.Session) {
	ui.session = session
	ui.createMenu()
	ui.showClassifier()
}

// onLogout drops the session and returns to the license screen
func (ui *RootUI) onLogout() {
	ui.session = nil
	ui.login.Reset()
	ui.createMenu()
	ui.showLogin()
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	fileMenu := fyne.NewMenu(ui.localization.GetText(i18n.KeyFileMenu))
	if ui.session.Authenticated() {
		fileMenu.Items = append(fileMenu.Items,
			fyne.NewMenuItem(ui.localization.GetText(i18n.KeyLogout), ui.onLogout))
	}

	languageMenu := fyne.NewMenu(IconLanguage + " " + ui.localization.GetText(i18n.KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(fileMenu, languageMenu))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.login.RefreshTexts()
	if ui.sorter != nil {
		ui.sorter.RefreshTexts()
	}
	if ui.session.Authenticated() {
		ui.window.SetTitle(ui.localization.GetText(i18n.KeyAppTitle))
	} else {
		ui.window.SetTitle(ui.localization.GetText(i18n.KeyLoginTitle))
	}
}
