// Package setup implements the terminal configuration wizard that writes
// config.gen.yaml for the console.
package setup

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/vadiminshakov/tradeconsole/config"
)

var (
	subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	special   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Background(highlight).
			Padding(1, 2).
			Bold(true).
			MarginBottom(1)

	stepStyle = lipgloss.NewStyle().
			Foreground(special).
			Bold(true).
			MarginTop(1)
)

// RunTUI launches the configuration wizard and writes config.gen.yaml.
func RunTUI() error {
	var (
		baseURL          string
		promptTimeout    string
		leverageTimeout  string
		healthTimeout    string
		transcriptDir    string
		recordTranscript bool
		confirm          bool
	)

	// defaults
	baseURL = "http://localhost:3030"
	healthTimeout = "5s"
	promptTimeout = "120s"
	leverageTimeout = "30s"
	transcriptDir = "./wal/transcript"
	recordTranscript = true

	fmt.Print("\033[H\033[2J") // Clear screen
	fmt.Println(headerStyle.Render("TRADECONSOLE CONFIG WIZARD"))
	fmt.Println(lipgloss.NewStyle().Foreground(subtle).Render("Point the console at your trading-automation API.\n"))

	fmt.Println(stepStyle.Render("STEP 1: API ENDPOINT"))
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Trading API Base URL").
				Description("The console probes <url>/health before starting").
				Value(&baseURL).
				Validate(func(s string) error {
					parsed, err := url.Parse(s)
					if err != nil || parsed.Scheme == "" || parsed.Host == "" {
						return fmt.Errorf("must be an absolute URL (e.g. http://localhost:3030)")
					}
					return nil
				}),
		),
	).Run()
	if err != nil {
		return err
	}

	fmt.Print("\033[H\033[2J")
	fmt.Println(headerStyle.Render("TRADECONSOLE CONFIG WIZARD"))
	fmt.Println(stepStyle.Render("STEP 2: TIMEOUTS"))
	err = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Health Probe Timeout").
				Description("Duration string (e.g. 5s)").
				Value(&healthTimeout).
				Validate(validateDuration),
			huh.NewInput().
				Title("Prompt Timeout").
				Description("Prompts may run multi-step automation on the server (e.g. 120s)").
				Value(&promptTimeout).
				Validate(validateDuration),
			huh.NewInput().
				Title("Leverage Update Timeout").
				Description("Duration string (e.g. 30s)").
				Value(&leverageTimeout).
				Validate(validateDuration),
		),
	).Run()
	if err != nil {
		return err
	}

	fmt.Print("\033[H\033[2J")
	fmt.Println(headerStyle.Render("TRADECONSOLE CONFIG WIZARD"))
	fmt.Println(stepStyle.Render("STEP 3: TRANSCRIPT"))
	err = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Record a session transcript?").
				Description("Commands and outcomes are appended to a local WAL, token values are redacted").
				Value(&recordTranscript),
			huh.NewInput().
				Title("Transcript Directory").
				Value(&transcriptDir),
		),
	).Run()
	if err != nil {
		return err
	}

	fmt.Print("\033[H\033[2J")
	fmt.Println(headerStyle.Render("TRADECONSOLE CONFIG WIZARD"))
	fmt.Println(stepStyle.Render("FINAL CONFIRMATION"))

	summary := fmt.Sprintf(
		"API: %s\nHealth timeout: %s\nPrompt timeout: %s\nLeverage timeout: %s\nTranscript: %s\n",
		baseURL, healthTimeout, promptTimeout, leverageTimeout, transcriptSummary(recordTranscript, transcriptDir),
	)
	fmt.Println(lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(1).Render(summary))

	err = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Save Configuration?").
				Affirmative("Yes, save").
				Negative("No, exit").
				Value(&confirm),
		),
	).Run()
	if err != nil {
		return err
	}

	if !confirm {
		return fmt.Errorf("setup cancelled by user")
	}

	fileCfg := config.FileConfig{
		BaseURL:            baseURL,
		HealthTimeoutStr:   healthTimeout,
		PromptTimeoutStr:   promptTimeout,
		LeverageTimeoutStr: leverageTimeout,
	}
	if recordTranscript {
		fileCfg.TranscriptDir = transcriptDir
	}

	data, err := yaml.Marshal(fileCfg)
	if err != nil {
		return fmt.Errorf("failed to generate yaml: %w", err)
	}

	filename := "config.gen.yaml"
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to save config file: %w", err)
	}

	fmt.Println(lipgloss.NewStyle().Foreground(special).Render(fmt.Sprintf("\n✓ Configuration saved to %s\nStart the console with --config %s", filename, filename)))
	return nil
}

func validateDuration(s string) error {
	_, err := time.ParseDuration(s)
	return err
}

func transcriptSummary(enabled bool, dir string) string {
	if !enabled {
		return "disabled"
	}
	return dir
}
