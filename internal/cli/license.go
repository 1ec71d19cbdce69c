package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ytget/png-sorter/internal/i18n"
	"github.com/ytget/png-sorter/internal/license"
)

func newLicenseCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "license",
		Short: "Verify a license key or look up its expiry date",
	}

	cmd.PersistentFlags().String("key", "", "license key (or PNGSORTER_LICENSE_KEY)")
	cmd.PersistentFlags().String("base-url", "", "license server base URL")
	cmd.PersistentFlags().String("app-version", "", "application version reported at login")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "login",
			Short: "Verify a license key for this machine",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return rt.login(cmd)
			},
		},
		&cobra.Command{
			Use:   "expiry",
			Short: "Show the expiry date of a license key",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return rt.expiry(cmd)
			},
		},
	)
	return cmd
}

func (rt *runtime) client() *license.Client {
	return license.NewClientWithBaseURL(rt.cfg.License.BaseURL, rt.cfg.License.Timeout, rt.localization, rt.logger)
}

func (rt *runtime) licenseKey() (string, error) {
	if rt.cfg.License.Key == "" {
		return "", errors.New(rt.localization.GetText(i18n.KeyPleaseEnterKey))
	}
	return rt.cfg.License.Key, nil
}

func (rt *runtime) login(cmd *cobra.Command) error {
	key, err := rt.licenseKey()
	if err != nil {
		return err
	}

	session := license.NewSession(key, rt.cfg.App.Version)
	result := rt.client().Login(cmd.Context(), session.Key, session.Version, session.MachineID)
	if !result.OK {
		return errors.New(rt.localization.Format(i18n.KeyVerificationFailed, map[string]any{"Message": result.Message}))
	}

	fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render(rt.localization.Format(i18n.KeyLoginSuccess, map[string]any{"Token": result.Token})))
	return nil
}

func (rt *runtime) expiry(cmd *cobra.Command) error {
	key, err := rt.licenseKey()
	if err != nil {
		return err
	}

	result := rt.client().Expiry(cmd.Context(), key)
	if !result.OK {
		return errors.New(rt.localization.Format(i18n.KeyExpiryFailed, map[string]any{"Message": result.Message}))
	}

	fmt.Fprintln(cmd.OutOrStdout(), rt.localization.Format(i18n.KeyExpiresAt, map[string]any{"Date": result.ExpiresAt}))
	return nil
}
