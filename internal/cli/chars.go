package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/linealabs/code39/pkg/code39"
)

// charsCommand creates the chars command listing the supported repertoire.
func (c *CLI) charsCommand() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "chars",
		Short: "List the supported Code 39 characters",
		Long: `Chars prints the 42 user-enterable Code 39 characters together with
their nine-element wide/narrow patterns. The '*' start/stop sentinel is
reserved and not listed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if plain {
				fmt.Fprintln(cmd.OutOrStdout(), strings.Join(code39.SupportedCharacters(), ""))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), charsTable())
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "print the bare character list without a table")

	return cmd
}

// charsTable renders the repertoire as a bordered terminal table.
func charsTable() string {
	headerStyle := StyleTitle
	rowStyle := lipgloss.NewStyle().Foreground(colorWhite)

	rows := make([][]string, 0, 42)
	for _, ch := range code39.SupportedCharacters() {
		p, _ := code39.Lookup([]rune(ch)[0])
		display := ch
		if ch == " " {
			display = "<space>"
		}
		rows = append(rows, []string{display, patternString(p)})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleDim).
		Headers("Char", "Pattern (W=wide, n=narrow)").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			return rowStyle
		})

	return t.Render()
}

// patternString formats a pattern as alternating bar/space width classes.
func patternString(p code39.Pattern) string {
	var b strings.Builder
	for _, wide := range p {
		if wide {
			b.WriteByte('W')
		} else {
			b.WriteByte('n')
		}
	}
	return b.String()
}
