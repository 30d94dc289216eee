package render

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/params"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

var (
	labelStyle   = color.New(color.Faint)
	valueStyle   = color.New(color.FgWhite, color.Bold)
	addressStyle = color.New(color.FgCyan)
	targetStyle  = color.New(color.FgYellow, color.Bold)
	headerStyle  = color.New(color.Bold, color.FgHiWhite)
)

// FormatWarning formats a warning message with the warning icon
func FormatWarning(message string) string {
	return color.New(color.FgYellow).Sprintf("⚠️  %s", message)
}

// FormatError formats an error message with the error icon
func FormatError(message string) string {
	// Extract just the error message part (after the last colon if it's an error chain)
	parts := strings.Split(message, ": ")
	msg := parts[len(parts)-1]

	// Capitalize first letter
	if len(msg) > 0 {
		msg = strings.ToUpper(msg[:1]) + msg[1:]
	}

	return color.New(color.FgRed).Sprintf("❌ %s", msg)
}

// FormatSuccess formats a success message with the success icon
func FormatSuccess(message string) string {
	return color.New(color.FgGreen).Sprintf("✅ %s", message)
}

// FormatEther renders a wei amount in native units with four decimals
func FormatEther(wei *big.Int) string {
	if wei == nil {
		return "0"
	}
	value := new(big.Float).Quo(new(big.Float).SetInt(wei), big.NewFloat(params.Ether))
	return value.Text('f', 4)
}

// renderKeyValues renders label/value rows as a borderless two-column table
func renderKeyValues(rows []table.Row) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Options.SeparateRows = false
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateHeader = false
	t.Style().Options.SeparateColumns = false
	t.Style().Box = table.BoxStyle{
		PaddingLeft:  "  ",
		PaddingRight: "   ",
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft},
	})
	t.AppendRows(rows)
	return t.Render()
}

func row(label string, value string) table.Row {
	return table.Row{labelStyle.Sprint(label), value}
}

func tokenLabel(symbol, name string) string {
	if name == "" || name == symbol {
		return valueStyle.Sprint(symbol)
	}
	return fmt.Sprintf("%s (%s)", valueStyle.Sprint(symbol), name)
}
