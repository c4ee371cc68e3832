package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/AhmetOsmn/ufc-events-ui/internal/domain"
)

// Modal identifies which result popup is visible
type Modal int

const (
	ModalNone Modal = iota
	ModalSuccess
	ModalError
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	Events         []domain.Event
	DisplayedIndex int
	Selected       map[string]bool
	Loading        bool
	LoadError      string
	Summary        string

	EmailView      string // the rendered textinput
	EmailError     string
	SelectionError string
	Submitting     bool

	Modal         Modal
	SentEmail     string
	SentEvents    []domain.Event
	ResultMessage string

	StatusMessage string
	ShowHelp      bool
	ShowRankings  bool
	ThemeDark     bool
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a renderer for the given theme
func NewRenderer(dark bool) *Renderer {
	return &Renderer{styles: NewStyles(dark)}
}

// SetTheme swaps the style palette
func (r *Renderer) SetTheme(dark bool) {
	r.styles = NewStyles(dark)
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	if state.Modal != ModalNone {
		return r.renderModal(state)
	}

	content := &strings.Builder{}

	content.WriteString(r.renderHeader(state))
	content.WriteString("\n\n")

	switch {
	case state.Loading && len(state.Events) == 0:
		content.WriteString(r.styles.Loading.Render("Etkinlikler yükleniyor..."))
		content.WriteString("\n")
	case state.LoadError != "" && len(state.Events) == 0:
		content.WriteString(r.styles.Error.Render(state.LoadError))
		content.WriteString("\n")
		content.WriteString(r.styles.Dim.Render("r: tekrar dene"))
		content.WriteString("\n")
	default:
		content.WriteString(r.renderCatalog(state))
	}

	content.WriteString("\n")
	content.WriteString(r.renderFooter(state))

	if state.ShowHelp {
		content.WriteString("\n")
		content.WriteString(r.renderHelp())
	}

	return r.styles.Main.Render(content.String())
}

func (r *Renderer) renderHeader(state ViewState) string {
	title := r.styles.Title.Render("UFC Events")
	summary := r.styles.Summary.Render(state.Summary)

	themeLabel := "☀ açık"
	if state.ThemeDark {
		themeLabel = "☾ koyu"
	}

	left := fmt.Sprintf("%s  %s", title, summary)
	right := r.styles.Dim.Render(themeLabel)

	pad := state.Width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if pad < 1 {
		pad = 1
	}
	return left + strings.Repeat(" ", pad) + right
}

func (r *Renderer) renderCatalog(state ViewState) string {
	sidebar := r.renderSidebar(state)
	detail := r.renderDetail(state)
	return lipgloss.JoinHorizontal(lipgloss.Top, r.styles.Sidebar.Render(sidebar), r.styles.Detail.Render(detail))
}

func (r *Renderer) renderSidebar(state ViewState) string {
	b := &strings.Builder{}
	b.WriteString(r.styles.SectionHead.Render("Etkinlikler"))
	b.WriteString("\n")

	for i, e := range state.Events {
		check := "[ ]"
		checkStyle := r.styles.Checkbox
		if state.Selected[e.ID] {
			check = "[x]"
			checkStyle = r.styles.CheckboxOn
		}

		line := fmt.Sprintf("%s %s", checkStyle.Render(check), e.Title)
		if i == state.DisplayedIndex {
			line = r.styles.ListActive.Render("> ") + r.styles.ListActive.Render(line)
		} else {
			line = "  " + r.styles.ListItem.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
		b.WriteString("      " + r.styles.Dim.Render(fmt.Sprintf("%s • %s", formatDateShort(e.Date), e.Location)))
		b.WriteString("\n")
	}

	return b.String()
}

func (r *Renderer) renderDetail(state ViewState) string {
	if len(state.Events) == 0 {
		return r.styles.Dim.Render("Henüz event yüklenmedi...")
	}

	idx := state.DisplayedIndex
	if idx < 0 || idx >= len(state.Events) {
		idx = 0
	}
	event := state.Events[idx]

	b := &strings.Builder{}
	b.WriteString(r.styles.SectionHead.Render(event.Title))
	b.WriteString("\n")
	b.WriteString(r.styles.Dim.Render(event.Location))
	b.WriteString("\n\n")

	b.WriteString(r.styles.SectionHead.Render("Etkinlik Detayları"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  Tarih: %s\n", formatDateLong(event.Date)))
	b.WriteString(fmt.Sprintf("  Konum: %s\n", event.Location))
	b.WriteString(fmt.Sprintf("  Toplam Maç Sayısı: %d maç\n", len(event.Fights)))

	b.WriteString(r.styles.SectionHead.Render("Dövüş Kartı"))
	b.WriteString("\n")
	for _, fight := range event.Fights {
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			r.styles.FightRow.Render(fight.WeightClass),
			r.styles.Dim.Render(fight.OrderLabel())))
		for _, fighter := range fight.Fighters {
			b.WriteString("    " + r.renderFighter(fighter, state.ShowRankings) + "\n")
		}
	}

	return b.String()
}

func (r *Renderer) renderFighter(f domain.Fighter, showRankings bool) string {
	line := fmt.Sprintf("%s (%s) %s", f.Name, f.Country, f.Record)
	if showRankings && f.IsRanked() {
		line += " " + r.styles.Ranking.Render(fmt.Sprintf("#%d", *f.Ranking))
	}
	return r.styles.FightRow.Render(line)
}

func (r *Renderer) renderFooter(state ViewState) string {
	b := &strings.Builder{}

	label := "Takvime ekle (enter)"
	if state.Submitting {
		label = "Gönderiliyor..."
	}

	b.WriteString(r.styles.EmailLabel.Render("E-mail: "))
	b.WriteString(state.EmailView)
	b.WriteString("  ")
	b.WriteString(r.styles.Dim.Render(label))
	b.WriteString("\n")

	if state.EmailError != "" {
		b.WriteString(r.styles.FieldError.Render(state.EmailError))
		b.WriteString("\n")
	}
	if state.SelectionError != "" {
		b.WriteString(r.styles.Error.Render(state.SelectionError))
		b.WriteString("\n")
	}
	if state.StatusMessage != "" {
		b.WriteString(r.styles.Success.Render(state.StatusMessage))
		b.WriteString("\n")
	}

	b.WriteString(r.styles.Help.Render("↑/↓ gezin • boşluk seç • a tümü • enter gönder • x takvim dosyası • t tema • ? yardım • q çıkış"))
	return b.String()
}

func (r *Renderer) renderHelp() string {
	lines := []string{
		"↑/k, ↓/j   etkinlikler arasında gezin",
		"boşluk     etkinliği seç / seçimi kaldır",
		"a          tümünü seç (tümü seçiliyse kaldır)",
		"c          tüm seçimleri temizle",
		"tab        e-mail alanına odaklan / odağı bırak",
		"enter      takvime ekleme isteği gönder",
		"x          seçilenleri .ics dosyasına aktar",
		"r          kataloğu yenile",
		"t          açık/koyu tema",
		"q          çıkış",
	}
	return r.styles.Help.Render(strings.Join(lines, "\n"))
}

func (r *Renderer) renderModal(state ViewState) string {
	b := &strings.Builder{}

	if state.Modal == ModalSuccess {
		b.WriteString(r.styles.Success.Render("✓ ") + r.styles.ModalTitle.Render("Mail Başarıyla Gönderildi!"))
		b.WriteString("\n\n")
		b.WriteString(fmt.Sprintf("Takvime ekleme isteği %s adresine gönderildi.\n\n", state.SentEmail))
		b.WriteString(r.styles.ModalTitle.Render(fmt.Sprintf("Seçilen Etkinlikler (%d)", len(state.SentEvents))))
		b.WriteString("\n")
		for _, e := range state.SentEvents {
			b.WriteString(fmt.Sprintf("  %s %s\n", r.styles.Success.Render("✓"), e.Title))
			b.WriteString("    " + r.styles.Dim.Render(fmt.Sprintf("%s • %s", formatDateShort(e.Date), e.Location)) + "\n")
		}
		b.WriteString("\n")
		b.WriteString(r.styles.Help.Render("esc/enter: kapat"))
	} else {
		b.WriteString(r.styles.Error.Render("! ") + r.styles.ModalTitle.Render("Bir Sorun Oluştu!"))
		b.WriteString("\n\n")
		b.WriteString(state.ResultMessage)
		b.WriteString("\n\n")
		b.WriteString(r.styles.Help.Render("r: tekrar dene • esc: kapat"))
	}

	modal := r.styles.Modal.Render(b.String())
	if state.Width > 0 && state.Height > 0 {
		return lipgloss.Place(state.Width, state.Height, lipgloss.Center, lipgloss.Center, modal)
	}
	return modal
}

func formatDateShort(iso string) string {
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return iso
	}
	return t.Format("02.01.2006")
}

func formatDateLong(iso string) string {
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return iso
	}
	return t.Format("02.01.2006 15:04")
}
