package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"puyo-go/internal/game"
	"puyo-go/internal/grid"
	"puyo-go/internal/scoring"
	"puyo-go/internal/state"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	redStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))  // Game over banner
	greenStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // High score banner
	scoreStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11")) // Status line
	borderStyle = lipgloss.NewStyle().Border(lipgloss.ThickBorder()).Padding(0, 1)

	// One style per cell color; empty cells render as dots.
	cellStyles = map[grid.Color]lipgloss.Style{
		1: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),  // red
		2: lipgloss.NewStyle().Foreground(lipgloss.Color("10")), // green
		3: lipgloss.NewStyle().Foreground(lipgloss.Color("12")), // blue
		4: lipgloss.NewStyle().Foreground(lipgloss.Color("11")), // yellow
		5: lipgloss.NewStyle().Foreground(lipgloss.Color("13")), // magenta
	}
	emptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

type keyMap struct {
	Left      key.Binding
	Right     key.Binding
	SoftDrop  key.Binding
	HardDrop  key.Binding
	RotateCW  key.Binding
	RotateCCW key.Binding
	Reset     key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "move left")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "move right")),
		SoftDrop:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "soft drop")),
		HardDrop:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "hard drop")),
		RotateCW:  key.NewBinding(key.WithKeys("up", "x", "k"), key.WithHelp("↑/x", "rotate cw")),
		RotateCCW: key.NewBinding(key.WithKeys("z"), key.WithHelp("z", "rotate ccw")),
		Reset:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

type LocalState struct {
	Session  *game.Session
	Keys     keyMap
	Interval time.Duration
}

type TickMsg time.Time

func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func initialModel(colorCount int, interval time.Duration, seed int64) (*LocalState, error) {
	// Create the concrete storage implementation.
	storage, err := scoring.NewJSONFileStorage()
	if err != nil {
		return nil, fmt.Errorf("failed to create score storage: %w", err)
	}

	sess, err := game.NewSession(colorCount, storage, state.NewRandSource(seed))
	if err != nil {
		return nil, err
	}

	return &LocalState{
		Session:  sess,
		Keys:     defaultKeyMap(),
		Interval: interval,
	}, nil
}

func (s *LocalState) Init() tea.Cmd {
	return tickCmd(s.Interval)
}

func (s *LocalState) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		s.Session.Tick()
		return s, tickCmd(s.Interval)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, s.Keys.Quit):
			return s, tea.Quit
		case key.Matches(msg, s.Keys.Reset):
			if err := s.Session.Reset(); err != nil {
				return s, tea.Quit
			}
		case key.Matches(msg, s.Keys.Left):
			s.Session.Command(game.MoveLeft)
		case key.Matches(msg, s.Keys.Right):
			s.Session.Command(game.MoveRight)
		case key.Matches(msg, s.Keys.SoftDrop):
			s.Session.Command(game.SoftDrop)
		case key.Matches(msg, s.Keys.HardDrop):
			s.Session.Command(game.HardDrop)
		case key.Matches(msg, s.Keys.RotateCW):
			s.Session.Command(game.RotateCW)
		case key.Matches(msg, s.Keys.RotateCCW):
			s.Session.Command(game.RotateCCW)
		}
	}

	return s, nil
}

func renderCell(c grid.Color) string {
	if c == grid.Empty {
		return emptyStyle.Render(" ·")
	}
	if style, ok := cellStyles[c]; ok {
		return style.Render("██")
	}
	return "██"
}

func (s *LocalState) RenderBoard() string {
	var b strings.Builder
	board := s.Session.Board()
	for row := 0; row < grid.Rows; row++ {
		for col := 0; col < grid.Cols; col++ {
			b.WriteString(renderCell(board[row][col]))
		}
		if row < grid.Rows-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (s *LocalState) View() string {
	// 1. Board
	display := borderStyle.Render(s.RenderBoard())

	// 2. Next pair preview, top cell above bottom cell
	next := s.Session.NextPair()
	preview := "NEXT:\n" + renderCell(next[1]) + "\n" + renderCell(next[0])
	display = lipgloss.JoinHorizontal(lipgloss.Top, display, "  "+strings.ReplaceAll(preview, "\n", "\n  "))

	// 3. Status line
	statusLine := "SCORE: " + fmt.Sprint(s.Session.Score()) + " | " +
		"CHAINS: " + fmt.Sprint(s.Session.Chains())
	display += "\n" + scoreStyle.Render(statusLine)

	// 4. Final messages
	if s.Session.IsGameOver() {
		display += "\n" + redStyle.Render(fmt.Sprintf("Game over! Final score: %d", s.Session.Score()))
		if s.Session.State.Score.GotHighScore() {
			display += "\n" + greenStyle.Render("You got a high score!")
		}
		topScores := s.Session.State.Score.GetNScoreEntries(5)
		if len(topScores) > 0 {
			display += "\nTop previous scores:"
			for _, entry := range topScores {
				display += fmt.Sprintf("\n  * %d (%d chains) on %s", entry.Score, entry.Chains, entry.Timestamp)
			}
		}
		display += "\nPress r to restart or q to quit."
	}

	return display + "\n"
}

func main() {
	var colorCount int
	var speed time.Duration
	var seed int64

	flag.IntVar(&colorCount, "colors", 4, "Number of cell colors (3-5)")
	flag.IntVar(&colorCount, "c", 4, "Number of cell colors (shorthand)")

	flag.DurationVar(&speed, "speed", 600*time.Millisecond, "Gravity tick interval (e.g. 500ms)")
	flag.DurationVar(&speed, "s", 600*time.Millisecond, "Gravity tick interval (shorthand)")

	flag.Int64Var(&seed, "seed", 0, "Random seed (0 uses the current time)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		fmt.Fprintf(os.Stderr, "   -c, --colors=N      Number of cell colors, 3 to 5 (default 4)\n")
		fmt.Fprintf(os.Stderr, "   -s, --speed=DUR     Gravity tick interval (default 600ms)\n")
		fmt.Fprintf(os.Stderr, "       --seed=N        Random seed for reproducible games\n")
		fmt.Fprintf(os.Stderr, "   -h, --help          Show this help message\n")
	}

	flag.Parse()

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	model, err := initialModel(colorCount, speed, seed)
	if err != nil {
		fmt.Printf("Error initializing model: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(model)
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error starting the program: %v\n", err)
	}
}
