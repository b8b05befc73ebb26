package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/padukov/go-snakeshot/internal/game"
)

// Color palette, carried over from the desktop original. Entities it drew
// translucent map to lighter shade glyphs here: half block for the food,
// dark shade for the enemy, solid for everything else.
var (
	snakeStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#ffff00")).
			Foreground(lipgloss.Color("#ffff00"))

	deadSnakeStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#ff0000")).
			Foreground(lipgloss.Color("#ff0000"))

	foodStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#1a1a1a")).
			Foreground(lipgloss.Color("#4dff4d"))

	bulletStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#1a1a1a")).
			Foreground(lipgloss.Color("#cc1a1a")).
			Bold(true)

	trapStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#1a1a1a")).
			Foreground(lipgloss.Color("#cc1acc")).
			Bold(true)

	enemyStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#1a1a1a")).
			Foreground(lipgloss.Color("#66334d"))

	emptyStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#1a1a1a")).
			Foreground(lipgloss.Color("#1a1a1a"))

	// HUD styles
	hudBorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffff00")).
			Bold(true)

	runningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4dff4d")).
			Bold(true)

	gameOverStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff0000")).
			Bold(true).
			Blink(true)

	noticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#cc1a1a")).
			Bold(true)

	ammoFullStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffff00"))
	ammoEmptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#555555"))

	dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))

	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#555555"))
)

// RenderBoard converts a snapshot into a styled terminal string.
func RenderBoard(snap game.Snapshot) string {
	snakeSet := make(map[game.Position]bool, len(snap.Snake))
	for _, p := range snap.Snake {
		snakeSet[p] = true
	}

	trapSet := make(map[game.Position]bool, len(snap.Traps))
	for _, p := range snap.Traps {
		trapSet[p] = true
	}

	var rows []string
	for y := 0; y < snap.Grid.Height; y++ {
		var cells []string
		for x := 0; x < snap.Grid.Width; x++ {
			pos := game.Position{X: x, Y: y}
			cells = append(cells, renderCell(pos, snap, snakeSet, trapSet))
		}
		rows = append(rows, strings.Join(cells, ""))
	}

	return strings.Join(rows, "\n")
}

// renderCell renders a single grid cell with the appropriate style.
// Each cell is 2 characters wide for a square-ish appearance.
// Priority on shared cells: Enemy > Trap > Bullet > Food > Snake.
func renderCell(pos game.Position, snap game.Snapshot, snakeSet, trapSet map[game.Position]bool) string {
	if snap.Enemy != nil && *snap.Enemy == pos {
		return enemyStyle.Render("▓▓")
	}

	if trapSet[pos] {
		return trapStyle.Render("██")
	}

	if snap.Bullet != nil && *snap.Bullet == pos {
		return bulletStyle.Render("██")
	}

	if pos == snap.Food {
		return foodStyle.Render("▒▒")
	}

	if snakeSet[pos] {
		if snap.Playing {
			return snakeStyle.Render("██")
		}
		return deadSnakeStyle.Render("██")
	}

	return emptyStyle.Render("  ")
}

// RenderHUD renders the heads-up display: ammo, length, session time, run
// status and the transient notice line.
func RenderHUD(snap game.Snapshot, notice string) string {
	var parts []string

	parts = append(parts, titleStyle.Render("🐍 SNAKESHOT"))
	parts = append(parts, "")

	if snap.Playing {
		parts = append(parts, runningStyle.Render("🔥 RUN IN PROGRESS"))
	} else {
		parts = append(parts, gameOverStyle.Render("💀 GAME OVER"))
		parts = append(parts, "   Press [Enter] to restart!")
	}
	parts = append(parts, "")

	parts = append(parts, fmt.Sprintf("Ammo:   %s", ammoPips(snap.Ammo, snap.MaxAmmo)))
	parts = append(parts, fmt.Sprintf("Length: %d", len(snap.Snake)))
	parts = append(parts, fmt.Sprintf("Time:   %.1fs", snap.Elapsed))

	if notice != "" {
		parts = append(parts, "")
		parts = append(parts, noticeStyle.Render("⚠ "+notice))
	}

	parts = append(parts, "")
	parts = append(parts, dimStyle.Render("Eat food to reload. Shoot the traps."))
	parts = append(parts, helpStyle.Render("WASD/Arrows: Steer | Space: Fire | Q: Quit"))

	return hudBorderStyle.Render(strings.Join(parts, "\n"))
}

// ammoPips draws one pip per round up to the pool maximum, filled for
// loaded rounds, like the original's row of ammo squares.
func ammoPips(ammo, maxAmmo int) string {
	var b strings.Builder
	for i := 0; i < maxAmmo; i++ {
		if i < ammo {
			b.WriteString(ammoFullStyle.Render("▮"))
		} else {
			b.WriteString(ammoEmptyStyle.Render("▯"))
		}
	}
	return b.String()
}
