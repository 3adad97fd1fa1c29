package tui

import "github.com/charmbracelet/lipgloss"

// Styles used throughout the TUI.
var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)

	styleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Bold(true)

	styleWall = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	styleGoal = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	stylePlayer = lipgloss.NewStyle().
			Foreground(lipgloss.Color("34")).
			Bold(true)

	styleCrate = lipgloss.NewStyle().
			Foreground(lipgloss.Color("178"))

	styleCrateOnGoal = lipgloss.NewStyle().
				Foreground(lipgloss.Color("178")).
				Background(lipgloss.Color("53")).
				Bold(true)

	styleCoin = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220"))

	stylePotion = lipgloss.NewStyle().
			Foreground(lipgloss.Color("87"))

	styleShopTitle = lipgloss.NewStyle().
			Bold(true).
			Underline(true)

	styleShopItem = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	styleMessage = lipgloss.NewStyle().
			Foreground(lipgloss.Color("228"))

	styleWin = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true)

	styleLoss = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	styleSystem = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleBoard = lipgloss.NewStyle().
			Padding(0, 1)

	styleShopPane = lipgloss.NewStyle().
			Padding(0, 2)
)
