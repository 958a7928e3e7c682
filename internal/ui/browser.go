package ui

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// ReportRow holds per-row data needed for interactivity.
type ReportRow struct {
	FullHash    string // full 0x... tx hash (for copy)
	ExplorerURL string // e.g. https://etherscan.io/tx/0x...
}

// browserModel is the bubbletea model for the interactive report table.
type browserModel struct {
	title   string
	table   *Table
	rowData []ReportRow // parallel to table.Rows
	cursor  int
	offset  int    // first visible row
	height  int    // visible rows, set on WindowSizeMsg
	flash   string // brief feedback shown in hint bar
}

func (m browserModel) Init() tea.Cmd { return nil }

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Leave room for title, header, divider and the control bar.
		m.height = msg.Height - 7
		if m.height < 3 {
			m.height = 3
		}

	case tea.KeyMsg:
		m.flash = ""
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}

		case "down", "j":
			if m.cursor < len(m.table.Rows)-1 {
				m.cursor++
			}

		case "g":
			m.cursor = 0

		case "G":
			m.cursor = len(m.table.Rows) - 1

		case "o":
			if m.cursor < len(m.rowData) {
				url := m.rowData[m.cursor].ExplorerURL
				if url != "" {
					openBrowser(url)
					m.flash = "Opening in browser…"
				} else {
					m.flash = "No explorer URL available"
				}
			}

		case "c":
			if m.cursor < len(m.rowData) {
				hash := m.rowData[m.cursor].FullHash
				if hash == "" {
					m.flash = "No hash available"
					break
				}
				if err := copyToClipboard(hash); err == nil {
					m.flash = "Copied: " + hash[:10] + "…"
				} else {
					m.flash = "Copy failed: " + err.Error()
				}
			}
		}
	}

	// Keep the cursor inside the visible window.
	if m.height > 0 {
		if m.cursor < m.offset {
			m.offset = m.cursor
		}
		if m.cursor >= m.offset+m.height {
			m.offset = m.cursor - m.height + 1
		}
	}

	return m, nil
}

func (m browserModel) View() string {
	var sb strings.Builder

	sb.WriteString(m.title)
	sb.WriteString("\n\n")

	// Window the table rows for the visible region.
	view := *m.table
	if m.height > 0 && len(m.table.Rows) > m.height {
		end := m.offset + m.height
		if end > len(m.table.Rows) {
			end = len(m.table.Rows)
		}
		view.Rows = m.table.Rows[m.offset:end]
		view.SelIdx = m.cursor - m.offset
	} else {
		view.SelIdx = m.cursor
	}
	sb.WriteString(view.Render())

	sb.WriteString("\n")
	if m.flash != "" {
		sb.WriteString(StyleSuccess.Render("  ✓ " + m.flash))
	} else {
		sb.WriteString(browserControls(m.cursor, len(m.table.Rows)))
	}
	sb.WriteString("\n")

	return sb.String()
}

// browserControls renders the bottom control bar.
func browserControls(cursor, total int) string {
	sep := StyleMeta.Render("   ")
	var sb strings.Builder
	sb.WriteString(StyleMeta.Render(fmt.Sprintf("[ %d/%d ]", cursor+1, total)))
	sb.WriteString(sep)
	sb.WriteString(StyleMeta.Render("[ ↑↓ ] navigate"))
	sb.WriteString(sep)
	sb.WriteString(StyleMeta.Render("[ o ] open in explorer"))
	sb.WriteString(sep)
	sb.WriteString(StyleWarning.Render("[ c ]"))
	sb.WriteString(StyleMeta.Render(" copy hash"))
	sb.WriteString(sep)
	sb.WriteString(StyleMeta.Render("[ q ] quit"))
	return sb.String()
}

// RunReportBrowser starts the interactive report viewer. Blocks until the
// user presses q/ESC. Uses the alt screen so the terminal is restored on
// exit.
func RunReportBrowser(title string, table *Table, rowData []ReportRow) error {
	m := browserModel{
		title:   title,
		table:   table,
		rowData: rowData,
	}
	p := tea.NewProgram(m, tea.WithInput(os.Stdin), tea.WithOutput(os.Stdout), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// openBrowser opens url in the OS default browser.
func openBrowser(url string) {
	var name string
	var args []string
	switch runtime.GOOS {
	case "darwin":
		name = "open"
	case "windows":
		name = "cmd"
		args = []string{"/c", "start"}
	default:
		name = "xdg-open"
	}
	args = append(args, url)
	cmd := exec.Command(name, args...)
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard
	_ = cmd.Start()
}

// copyToClipboard writes s to the system clipboard via the platform tool.
func copyToClipboard(s string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("pbcopy")
	case "windows":
		cmd = exec.Command("clip")
	default:
		cmd = exec.Command("xclip", "-selection", "clipboard")
	}
	cmd.Stdin = strings.NewReader(s)
	return cmd.Run()
}
