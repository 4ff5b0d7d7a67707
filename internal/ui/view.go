package ui

import (
	"strings"
	"time"

	"github.com/atomicstack/pomotree/internal/fstree"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	defaultWidth   = 80
	minPaneHeight  = 3
	infoLifetime   = 5 * time.Second
	titleText      = " File Explorer "
	listTitle      = " All File/Dir "
	previewTitle   = " Preview "
	renameTitle    = " Rename "
	renameHint     = " submit <enter> "
	selectedMarker = ">> "
	nestedSpacer   = "|_"
	iconCollapsed  = "▸"
	iconExpanded   = "▾"
	iconFile       = "•"
)

// panel describes a bordered box. The title is centred in the top border and
// the footer sits at the left of the bottom border.
type panel struct {
	title  string
	footer string
	lines  []string
	width  int
	height int
}

// View implements tea.Model.
func (m *Model) View() string {
	width := m.contentWidth()
	bottom := m.bottomView(width)
	paneHeight := m.paneHeight(lipgloss.Height(bottom))

	listWidth := width / 2
	previewWidth := width - listWidth
	m.syncViewport()
	list := renderPanel(panel{
		title:  listTitle,
		lines:  m.listLines(listWidth - 2),
		width:  listWidth,
		height: paneHeight,
	})
	preview := renderPanel(panel{
		title:  previewTitle,
		lines:  m.previewLines(),
		width:  previewWidth,
		height: paneHeight,
	})

	sections := []string{
		m.titleLine(width),
		lipgloss.JoinHorizontal(lipgloss.Top, list, preview),
		m.statusLine(width),
		bottom,
	}
	return strings.Join(sections, "\n")
}

func (m *Model) titleLine(width int) string {
	title := titleText
	if styles.Title != nil {
		title = styles.Title.Render(title)
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, title)
}

func (m *Model) listLines(innerWidth int) []string {
	n := m.tree.Len()
	if n == 0 {
		return []string{styles.Info.Render("(empty directory)")}
	}
	start := m.nav.ViewportOffset
	end := n
	if maxItems := m.maxVisibleItems(); maxItems > 0 && start+maxItems < end {
		end = start + maxItems
	}
	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		row, _ := m.tree.Row(i)
		lines = append(lines, buildRowLine(row, i == m.nav.Cursor, innerWidth))
	}
	return lines
}

// buildRowLine renders one tree row: marker column, one spacer per depth
// level, the kind icon and the name.
func buildRowLine(row fstree.Row, selected bool, width int) string {
	indent := strings.Repeat(nestedSpacer, row.Depth)
	icon := rowIcon(row)
	if selected {
		text := selectedMarker + indent + icon + " " + row.Name
		text = truncateText(text, width)
		if pad := width - lipgloss.Width(text); pad > 0 {
			text += strings.Repeat(" ", pad)
		}
		runes := []rune(text)
		markerLen := len([]rune(selectedMarker))
		if len(runes) <= markerLen {
			return styles.Marker.Render(text)
		}
		return styles.Marker.Render(string(runes[:markerLen])) +
			styles.SelectedItem.Render(string(runes[markerLen:]))
	}
	iconStyle := styles.FileIcon
	if row.IsDir() {
		iconStyle = styles.DirIcon
	}
	line := strings.Repeat(" ", len(selectedMarker)) +
		styles.Indent.Render(indent) +
		iconStyle.Render(icon) + " " +
		styles.Item.Render(row.Name)
	if width > 0 && lipgloss.Width(line) > width {
		line = truncate.StringWithTail(line, uint(max(width-1, 0)), "…")
	}
	return line
}

func rowIcon(row fstree.Row) string {
	switch {
	case !row.IsDir():
		return iconFile
	case row.Expanded:
		return iconExpanded
	default:
		return iconCollapsed
	}
}

// previewLines describes the selected row. File contents are never read.
func (m *Model) previewLines() []string {
	row, ok := m.selectedRow()
	if !ok {
		return nil
	}
	return []string{
		styles.PreviewLabel.Render("Path: ") + styles.PreviewBody.Render(row.Path),
		styles.PreviewLabel.Render("Kind: ") + styles.PreviewBody.Render(row.Kind.String()),
	}
}

func (m *Model) statusLine(width int) string {
	var text string
	var style *lipgloss.Style
	switch {
	case m.errMsg != "":
		text, style = m.errMsg, styles.Error
	case m.currentInfo() != "":
		text, style = m.infoMsg, styles.Info
	case m.backendErr != "":
		text, style = "watch: "+m.backendErr, styles.Error
	default:
		return ""
	}
	text = truncateText(text, width)
	if style != nil {
		return style.Render(text)
	}
	return text
}

func (m *Model) bottomView(width int) string {
	switch m.mode {
	case ModeRenaming:
		if m.rename == nil {
			return ""
		}
		return renderPanel(panel{
			title:  renameTitle,
			footer: renameHint,
			lines:  []string{m.rename.InputView()},
			width:  width,
			height: 3,
		})
	case ModeFinding:
		prompt := styles.FinderPrompt.Render("/ ") + styles.FinderQuery.Render(m.finder.Query) + "█"
		if !m.finderMatches() {
			prompt += styles.FinderNoMatch.Render("  (no match)")
		}
		return prompt
	default:
		return m.help.View(m.keys)
	}
}

// paneHeight is the height of both panes once the title, status line and
// bottom area have been accounted for.
func (m *Model) paneHeight(bottomHeight int) int {
	if m.height <= 0 {
		return max(m.tree.Len()+2, minPaneHeight)
	}
	h := m.height - 2 - bottomHeight
	if h < minPaneHeight {
		return minPaneHeight
	}
	return h
}

func (m *Model) bottomHeight() int {
	switch m.mode {
	case ModeRenaming:
		return 3
	case ModeBrowsing:
		if m.help.ShowAll {
			return lipgloss.Height(m.help.FullHelpView(m.keys.FullHelp()))
		}
	}
	return 1
}

func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return -1
	}
	return max(m.paneHeight(m.bottomHeight())-2, 1)
}

func (m *Model) contentWidth() int {
	if m.width > 0 {
		return m.width
	}
	return defaultWidth
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
		m.help.Width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	if m.rename != nil {
		m.rename.SetWidth(m.contentWidth() - 4)
	}
	m.syncViewport()
	return nil
}

// renderPanel builds a bordered box with exactly p.height rows and p.width
// columns. Content lines may carry ANSI styling.
func renderPanel(p panel) string {
	const (
		tlc = "╭"
		trc = "╮"
		blc = "╰"
		brc = "╯"
		hz  = "─"
		vt  = "│"
	)

	innerW := max(p.width-2, 1)
	innerH := max(p.height-2, 1)
	border := styles.Border

	title := p.title
	if lipgloss.Width(title) > innerW {
		title = truncateText(title, innerW)
	}
	dashes := innerW - lipgloss.Width(title)
	left := dashes / 2
	right := dashes - left
	top := border.Render(tlc+strings.Repeat(hz, left)) +
		styles.PanelTitle.Render(title) +
		border.Render(strings.Repeat(hz, right)+trc)

	footer := p.footer
	if lipgloss.Width(footer) > innerW {
		footer = ""
	}
	bottom := border.Render(blc) +
		styles.RenameHint.Render(footer) +
		border.Render(strings.Repeat(hz, innerW-lipgloss.Width(footer))+brc)

	rows := make([]string, 0, innerH+2)
	rows = append(rows, top)
	for i := 0; i < innerH; i++ {
		var content string
		if i < len(p.lines) {
			content = p.lines[i]
		}
		w := lipgloss.Width(content)
		if w > innerW {
			content = truncate.StringWithTail(content, uint(innerW-1), "…")
			w = lipgloss.Width(content)
		}
		if w < innerW {
			content += strings.Repeat(" ", innerW-w)
		}
		rows = append(rows, border.Render(vt)+content+border.Render(vt))
	}
	rows = append(rows, bottom)
	return strings.Join(rows, "\n")
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(infoLifetime)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}

// truncateText shortens text to at most width terminal cells, ending in an
// ellipsis when anything was cut.
func truncateText(text string, width int) string {
	if width <= 0 || lipgloss.Width(text) <= width {
		return text
	}
	if width == 1 {
		return truncate.String(text, 1)
	}
	return truncate.StringWithTail(text, uint(width), "…")
}
