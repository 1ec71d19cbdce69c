package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// Language codes
const (
	LangSystem  = "system"
	LangEnglish = "en"
	LangChinese = "zh"
	LangRussian = "ru"
)

// Text keys for localization
const (
	KeyAppTitle             = "app_title"
	KeyLoginTitle           = "login_title"
	KeyLicenseKey           = "license_key"
	KeyVerify               = "verify"
	KeyCheckExpiry          = "check_expiry"
	KeyWaitingVerification  = "waiting_verification"
	KeyVerifying            = "verifying"
	KeyPleaseEnterKey       = "please_enter_key"
	KeyVerificationFailed   = "verification_failed"
	KeyLoginSuccess         = "login_success"
	KeyExpiresAt            = "expires_at"
	KeyExpiryFailed         = "expiry_failed"
	KeyNetworkError         = "network_error"
	KeyInputDirectory       = "input_directory"
	KeyTransparentDirectory = "transparent_directory"
	KeyOpaqueDirectory      = "opaque_directory"
	KeyBrowse               = "browse"
	KeyRun                  = "run"
	KeyReady                = "ready"
	KeyProcessing           = "processing"
	KeyProcessingFile       = "processing_file"
	KeyDone                 = "done"
	KeySelectInputDir       = "select_input_dir"
	KeyErrorPrefix          = "error_prefix"
	KeyResults              = "results"
	KeyTransparentFiles     = "transparent_files"
	KeyOpaqueFiles          = "opaque_files"
	KeySkippedFiles         = "skipped_files"
	KeyOpenFolder           = "open_folder"
	KeyFileMenu             = "file_menu"
	KeyLanguage             = "language"
	KeyLogout               = "logout"
	KeyCLIProcessingDir     = "cli_processing_dir"
	KeyCLIDone              = "cli_done"
	KeyCLITransparent       = "cli_transparent"
	KeyCLIOpaque            = "cli_opaque"
	KeyCLISkipped           = "cli_skipped"
	KeyCLIElapsed           = "cli_elapsed"
)

var supported = []language.Tag{language.English, language.Chinese, language.Russian}

// Localization manages UI text translations
type Localization struct {
	bundle          *goi18n.Bundle
	localizer       *goi18n.Localizer
	currentLanguage string
}

// NewLocalization creates a localization manager with all embedded locales
// loaded and English selected. It panics when an embedded locale is broken.
func NewLocalization() *Localization {
	bundle, err := loadBundle(localeFS)
	if err != nil {
		panic(fmt.Sprintf("i18n: embedded locales: %v", err))
	}

	l := &Localization{bundle: bundle}
	l.SetLanguage(LangEnglish)
	return l
}

// loadBundle parses every YAML file under locales/ in fsys
func loadBundle(fsys fs.FS) (*goi18n.Bundle, error) {
	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, err := fs.ReadDir(fsys, "locales")
	if err != nil {
		return nil, fmt.Errorf("failed to list locales: %w", err)
	}
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		name := path.Join("locales", f.Name())
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", name, err)
		}
		if _, err := bundle.ParseMessageFileBytes(data, f.Name()); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", name, err)
		}
	}
	return bundle, nil
}

// SetLanguage sets the current language. "system" resolves the language from
// the LANGUAGE / LC_ALL / LANG environment variables.
func (l *Localization) SetLanguage(lang string) {
	if lang == "" || lang == LangSystem {
		lang = SystemLanguage()
	}
	code := matchLanguage(lang)
	l.currentLanguage = code
	l.localizer = goi18n.NewLocalizer(l.bundle, code)
}

// GetText returns localized text for the given key, or the key itself when
// no translation exists.
func (l *Localization) GetText(key string) string {
	return l.Format(key, nil)
}

// Format returns localized text for the given key rendered with data.
func (l *Localization) Format(key string, data map[string]any) string {
	msg, err := l.localizer.Localize(&goi18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil && msg == "" {
		return key
	}
	return msg
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		LangEnglish: "English",
		LangChinese: "简体中文",
		LangRussian: "Русский",
	}
}

// SystemLanguage returns the language code from the process environment,
// falling back to English.
func SystemLanguage() string {
	for _, env := range []string{"LANGUAGE", "LC_ALL", "LANG"} {
		value := os.Getenv(env)
		if value == "" || value == "C" || value == "POSIX" {
			continue
		}
		// "zh_CN.UTF-8" or "ru_RU:en"
		value = strings.SplitN(value, ":", 2)[0]
		value = strings.SplitN(value, ".", 2)[0]
		return matchLanguage(strings.ReplaceAll(value, "_", "-"))
	}
	return LangEnglish
}

// matchLanguage maps any BCP 47 tag onto one of the supported base languages.
func matchLanguage(lang string) string {
	tag, err := language.Parse(lang)
	if err != nil {
		return LangEnglish
	}
	matcher := language.NewMatcher(supported)
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return LangEnglish
	}
	base, _ := supported[idx].Base()
	return base.String()
}
