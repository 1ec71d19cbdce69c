package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	"github.com/ytget/png-sorter/internal/classify"
	"github.com/ytget/png-sorter/internal/cli"
	"github.com/ytget/png-sorter/internal/config"
	"github.com/ytget/png-sorter/internal/i18n"
	"github.com/ytget/png-sorter/internal/license"
	"github.com/ytget/png-sorter/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.png-sorter"
	AppName = "PNG Sorter"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := cli.Execute(ctx, cli.Options{
		Version:   version,
		LaunchGUI: launchGUI,
	})
	stop()
	if err != nil {
		// cobra has already printed the error
		os.Exit(1)
	}
}

// launchGUI runs the desktop interface until its window is closed
func launchGUI(cfg *config.Config, localization *i18n.Localization, logger *zap.Logger) error {
	logger.Info("starting desktop interface", zap.String("version", version))

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(ui.LoginWindowWidth, ui.LoginWindowHeight))

	licenseSvc := license.NewClientWithBaseURL(cfg.License.BaseURL, cfg.License.Timeout, localization, logger)
	classifySvc := classify.NewService(logger)

	ui.NewRootUI(myWindow, myApp, localization, licenseSvc, classifySvc, logger, cfg.App.Version)

	myWindow.ShowAndRun()
	return nil
}
