package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abdullathedruid/termwidget/internal/canvas"
	"github.com/abdullathedruid/termwidget/internal/logging"
	"github.com/abdullathedruid/termwidget/internal/textfield"
	"github.com/abdullathedruid/termwidget/internal/ui"
)

var expectedText string

var textFieldCmd = &cobra.Command{
	Use:   "textfield",
	Short: "Read one line into a centred text field",
	Long: `Show a boxed text field in the middle of the screen and read one line.

The field rejects input beyond its maximum length with a short warning.
After Enter the entered text, its length and the lint result are printed.
The field passes linting when it is not empty and equals --expect.`,
	Example: `  # Default: the text must be "ciao"
  termwidget textfield

  # Expect another word
  termwidget textfield --expect hello`,
	RunE: runTextField,
}

func init() {
	textFieldCmd.Flags().StringVar(&expectedText, "expect", "ciao", "Text the field must equal to pass linting")
	rootCmd.Flags().StringVar(&expectedText, "expect", "ciao", "Text the field must equal to pass linting")
}

type textFieldResult struct {
	value string
	pass  bool
}

func runTextField(cmd *cobra.Command, args []string) error {
	cfg, done, err := setup()
	if err != nil {
		return err
	}
	defer done()

	term, err := canvas.NewTerminal()
	if err != nil {
		return err
	}
	result, err := captureLine(cmd.Context(), term, cfg.TextField.MaxLength, cfg.TextField.Height, cfg.TextField.Width)
	term.Close()
	if err != nil {
		return err
	}

	summary := &ui.Summary{Title: "Text field", Pass: result.pass}
	summary.AddDetail("You entered", result.value).
		AddDetail("len", strconv.Itoa(len([]rune(result.value)))).
		AddDetail("Lint result", passFail(result.pass))
	fmt.Println(summary.Render())
	return nil
}

// captureLine runs a centred field on c and returns what was typed.
func captureLine(ctx context.Context, c canvas.Canvas, maxLength, height, width int) (textFieldResult, error) {
	log := logging.Named("demo")

	boundW, boundH := c.Size()
	x, y := ui.CenteredOrigin(boundW, boundH, width, height)
	field, err := textfield.New(c, textfield.Options{
		MaxLength: maxLength,
		Height:    height,
		Width:     width,
		X:         max(x, 0),
		Y:         max(y, 0),
		Linters:   []textfield.Linter{textfield.NotEmpty(), textfield.Equals(expectedText)},
	})
	if err != nil {
		return textFieldResult{}, err
	}
	defer func() {
		if err := field.Destroy(); err != nil {
			log.Warn("destroying text field", zap.Error(err))
		}
	}()

	if err := field.Use(ctx); err != nil {
		return textFieldResult{}, err
	}

	res := textFieldResult{value: field.Value(), pass: field.Lint()}
	log.Info("text field done", zap.String("value", res.value), zap.Bool("lint", res.pass))
	return res, nil
}

func passFail(ok bool) string {
	if ok {
		return "pass"
	}
	return "fail"
}
