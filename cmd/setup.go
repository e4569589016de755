package cmd

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/seclab/labstatus/internal/config"
)

type setupAnswers struct {
	APIURL  string
	APIUser string
	APIPass string
	Webhook string
}

// runSetupPrompt asks for the API endpoint and credentials on first run.
func runSetupPrompt(cfg *config.Config) error {
	stored, err := config.LoadFile(dataDir)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	ans := setupAnswers{APIUser: stored.APIUser, Webhook: stored.Webhook}

	err = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Status API URL").
				Value(&ans.APIURL).
				Validate(config.ValidateURL),
			huh.NewInput().
				Title("API user").
				Value(&ans.APIUser),
			huh.NewInput().
				Title("API password").
				EchoMode(huh.EchoModePassword).
				Value(&ans.APIPass),
			huh.NewInput().
				Title("Chat webhook URL (optional)").
				Value(&ans.Webhook).
				Validate(optionalURL),
		).Title("Welcome to labstatus!"),
	).Run()
	if err != nil {
		return fmt.Errorf("no status API configured: set API_URL or run labstatus in a terminal")
	}

	if err := saveSetup(dataDir, cfg, ans); err != nil {
		return err
	}
	fmt.Println("Saved settings to " + dataDir)
	return nil
}

// saveSetup writes the answers into config.yaml, keeping every other setting
// already in the file, and applies them to the running config. Environment
// values are never written to the file.
func saveSetup(dir string, cfg *config.Config, ans setupAnswers) error {
	stored, err := config.LoadFile(dir)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	stored.APIURL = ans.APIURL
	stored.APIUser = ans.APIUser
	stored.Webhook = ans.Webhook
	if ans.APIPass != "" {
		stored.APIPass = ans.APIPass
	}
	if err := config.Save(dir, stored); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	cfg.APIURL = ans.APIURL
	if ans.APIUser != "" {
		cfg.APIUser = ans.APIUser
	}
	if ans.APIPass != "" {
		cfg.APIPass = ans.APIPass
	}
	if ans.Webhook != "" {
		cfg.Webhook = ans.Webhook
	}
	return nil
}

func optionalURL(s string) error {
	if s == "" {
		return nil
	}
	return config.ValidateURL(s)
}
