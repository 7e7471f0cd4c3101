package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abdullathedruid/termwidget/internal/canvas"
	"github.com/abdullathedruid/termwidget/internal/config"
	"github.com/abdullathedruid/termwidget/internal/logging"
	"github.com/abdullathedruid/termwidget/internal/textfield"
	"github.com/abdullathedruid/termwidget/internal/toggle"
	"github.com/abdullathedruid/termwidget/internal/ui"
)

// demoStates is the number of states of the multi-state demo toggles.
const demoStates = 3

var showPanel bool

var toggleMenuCmd = &cobra.Command{
	Use:   "togglemenu",
	Short: "Navigate a menu of toggles",
	Long: `Show a menu of toggles and a panel with their current states.

Up and down move the selection and wrap around. Left and right cycle a
multi-state toggle. Enter flips a switch or edits a text field. Items
marked (L) are locked. F1 quits; keys can be changed in the config file.`,
	RunE: runToggleMenu,
}

func init() {
	toggleMenuCmd.Flags().BoolVar(&showPanel, "panel", true, "Show the state panel when the config file does not place one")
}

func runToggleMenu(cmd *cobra.Command, args []string) error {
	cfg, done, err := setup()
	if err != nil {
		return err
	}
	defer done()

	term, err := canvas.NewTerminal()
	if err != nil {
		return err
	}
	details, err := runDemoMenu(cmd.Context(), term, cfg)
	term.Close()
	if err != nil {
		return err
	}

	summary := &ui.Summary{Title: "Toggle menu", Pass: true, Details: details}
	fmt.Println(summary.Render())
	return nil
}

// demoToggles builds the demo's toggles. Both text fields sit below the
// middle of the screen.
func demoToggles(c canvas.Canvas, cfg *config.Config) ([]*toggle.Toggle, error) {
	_, boundH := c.Size()
	tf := cfg.TextField
	fieldX, fieldY := 2, boundH/2+3

	volume, err := toggle.NewMulti("<Volume>(L)", 0, demoStates, true)
	if err != nil {
		return nil, err
	}
	frequency, err := toggle.NewMulti("<Frequency> (U)", 0, demoStates, false)
	if err != nil {
		return nil, err
	}
	frequency.Formatter = func(i int) string {
		return []string{"low", "mid", "high"}[i]
	}

	token, err := textfield.NewDefault(c, tf.MaxLength, tf.Height, tf.Width, fieldX, fieldY)
	if err != nil {
		return nil, err
	}
	name, err := textfield.NewDefault(c, tf.MaxLength+5, tf.Height, tf.Width, fieldX, fieldY)
	if err != nil {
		_ = token.Destroy()
		return nil, err
	}

	return []*toggle.Toggle{
		toggle.NewBool("[] Light(U)", true, false),
		volume,
		toggle.NewBool("[] Root (L)", false, true),
		frequency,
		toggle.NewField("Token-> (L)", token, true),
		toggle.NewField("Name-> (U)", name, false),
	}, nil
}

// demoPanel places the state panel to the right of the menu.
func demoPanel(toggles []*toggle.Toggle, menuCfg toggle.MenuConfig) toggle.PanelConfig {
	labels := make([]string, len(toggles))
	for i, t := range toggles {
		labels[i] = t.Label
	}
	return toggle.PanelConfig{
		Height: len(toggles) + 2,
		Width:  42,
		X:      menuCfg.X + ui.WidestLabel(labels) + 4,
		Y:      menuCfg.Y,
		Boxed:  true,
		Label:  "States",
	}
}

func runDemoMenu(ctx context.Context, c canvas.Canvas, cfg *config.Config) ([]ui.Detail, error) {
	log := logging.Named("demo")

	toggles, err := demoToggles(c, cfg)
	if err != nil {
		return nil, err
	}

	menuCfg := cfg.MenuConfig()
	if showPanel && !menuCfg.Panel.Enabled() {
		menuCfg.Panel = demoPanel(toggles, menuCfg)
	}
	menu, err := toggle.NewMenu(c, toggles, menuCfg)
	if err != nil {
		for _, t := range toggles {
			if fs, ok := t.State.(*toggle.FieldState); ok {
				_ = fs.Field.Destroy()
			}
		}
		return nil, err
	}
	defer func() {
		if err := menu.Destroy(); err != nil {
			log.Warn("destroying menu", zap.Error(err))
		}
	}()

	runErr := menu.Run(ctx)

	details := make([]ui.Detail, len(toggles))
	for i, t := range toggles {
		details[i] = ui.Detail{Key: t.Label, Value: t.Value()}
	}
	log.Info("toggle menu done", zap.Int("toggles", len(toggles)), zap.Error(runErr))
	return details, runErr
}
