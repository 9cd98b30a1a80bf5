package bot

import (
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// printStartupInfo prints initial startup information
func (b *TradingBot) printStartupInfo() {
	names := make([]string, 0, len(b.strategies))
	for _, st := range b.strategies {
		names = append(names, st.Name())
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("BOT INITIALIZATION")
	t.SetStyle(table.StyleRounded)

	t.AppendRows([]table.Row{
		{"📊 Underlying", b.config.Trading.Underlying},
		{"⏰ Interval", b.config.Trading.Interval.String()},
		{"🧩 Strategies", strings.Join(names, ", ")},
		{"🔧 Environment", b.config.Environment},
		{"✂️ 0DTE Cutoff", b.cutoffString()},
	})

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, WidthMin: 15, WidthMax: 15, Align: text.AlignLeft},
		{Number: 2, WidthMin: 30, WidthMax: 45, Align: text.AlignLeft},
	})

	t.Render()
	fmt.Println()
}

// printRiskSummary prints the risk manager's closing snapshot
func (b *TradingBot) printRiskSummary() {
	summary := b.riskMgr.GetSummary()

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("RISK SUMMARY")
	t.SetStyle(table.StyleRounded)

	t.AppendRows([]table.Row{
		{"💼 Account Value", fmt.Sprintf("$%s", summary.AccountValue)},
		{"📊 Portfolio Risk", fmt.Sprintf("$%s (%.2f%%)", summary.PortfolioRisk, summary.PortfolioRiskPct)},
		{"💹 Daily P&L", fmt.Sprintf("$%s", summary.DailyPnL)},
	})

	t.AppendSeparator()

	t.AppendRows([]table.Row{
		{"🎯 Risk Budget Left", fmt.Sprintf("$%s", summary.AvailableRiskBudget)},
		{"📉 Max Possible Loss", fmt.Sprintf("$%s", summary.MaxPossibleLoss)},
		{"📦 Open Positions", fmt.Sprintf("%d", summary.OpenPositions)},
	})

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, WidthMin: 20, WidthMax: 20, Align: text.AlignLeft},
		{Number: 2, WidthMin: 25, WidthMax: 40, Align: text.AlignLeft},
	})

	t.Render()
	fmt.Println()
}

func (b *TradingBot) cutoffString() string {
	if b.config.Trading.DisableCutoff {
		return "disabled"
	}
	return "15:15 ET"
}
