package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/registro/internal/form"
	"github.com/javiermolinar/registro/internal/tui/view"
)

// maxRuleWidth caps the separator on wide terminals.
const maxRuleWidth = 60

func (a *App) validateCmd() *cobra.Command {
	var data form.Data
	var noColor bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a registration without opening the form",
		Long: `Run the registration checks once and print the resulting alert.

Every field is required. ID and phone must contain only digits and the
email must look like name@domain.tld. Exits non-zero when validation fails.

Example:
  registro validate --id 123 --name "Ana Pérez" --phone 3001234567 --email ana@example.com`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}
			cmd.SilenceUsage = true
			return runValidate(cmd.OutOrStdout(), data, termWidth())
		},
	}

	cmd.Flags().StringVar(&data.ID, "id", "", "National ID (digits only)")
	cmd.Flags().StringVar(&data.FullName, "name", "", "Full name")
	cmd.Flags().StringVar(&data.Phone, "phone", "", "Phone number (digits only)")
	cmd.Flags().StringVar(&data.Email, "email", "", "Email address")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")

	return cmd
}

// runValidate submits data through a fresh controller and prints the alert.
func runValidate(w io.Writer, data form.Data, width int) error {
	c := form.NewController()
	for _, f := range form.Fields {
		c.SetField(f, data.Get(f))
	}

	printAlert(w, c.Submit(), width)
	if err := c.Err(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// printAlert writes an alert as a colored block.
func printAlert(w io.Writer, state form.AlertState, width int) {
	if !state.Visible {
		return
	}
	if width > maxRuleWidth || width <= 0 {
		width = maxRuleWidth
	}

	c := colorForKind(state.Kind)
	title := state.Kind.Icon() + " " + view.LiteralText(state.Title)

	fmt.Fprintf(w, "\n  %s\n", c.Sprint(title))
	fmt.Fprintln(w, formatMuted(strings.Repeat("─", width)))
	for _, line := range strings.Split(view.LiteralText(state.Message), "\n") {
		if line == "" {
			fmt.Fprintln(w)
			continue
		}
		fmt.Fprintf(w, "  %s\n", line)
	}
	fmt.Fprintln(w)
}
