package main

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/rotorwake/internal/config"
	"github.com/san-kum/rotorwake/internal/momentum"
	"github.com/san-kum/rotorwake/internal/viz"
	"github.com/san-kum/rotorwake/internal/wake"
)

var exploreModels = []string{"limited", "heck", "unified", "thrust"}

// exploreModel is the interactive loading/yaw explorer: every keypress
// re-solves the operating point and a small sweep at the current yaw.
type exploreModel struct {
	cfg     *config.Config
	loading float64
	yawDeg  float64
	modelIx int
	width   int
	err     error
}

func newExploreModel(cfg *config.Config) exploreModel {
	ix := 0
	for i, name := range exploreModels {
		if name == cfg.Model {
			ix = i
		}
	}
	return exploreModel{cfg: cfg, loading: cfg.Loading, yawDeg: cfg.Yaw, modelIx: ix}
}

func (m exploreModel) Init() tea.Cmd { return nil }

func (m exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left":
			m.loading = math.Max(0, m.loading-0.1)
		case "right":
			m.loading += 0.1
		case "shift+left":
			m.loading = math.Max(0, m.loading-1)
		case "shift+right":
			m.loading += 1
		case "up":
			m.yawDeg = math.Min(50, m.yawDeg+1)
		case "down":
			m.yawDeg = math.Max(-50, m.yawDeg-1)
		case "m":
			m.modelIx = (m.modelIx + 1) % len(exploreModels)
		case "r":
			m.loading = m.cfg.Loading
			m.yawDeg = m.cfg.Yaw
		}
	}
	return m, nil
}

func (m exploreModel) View() string {
	cfg := *m.cfg
	cfg.Model = exploreModels[m.modelIx]
	model, err := buildModel(&cfg)
	if err != nil {
		return err.Error()
	}

	yaw := m.yawDeg * math.Pi / 180
	sol := model.Solve(wake.Scalar(m.loading), yaw)

	var b strings.Builder
	b.WriteString(viz.HeaderStyle.Render(fmt.Sprintf("rotorwake explore — %s model", cfg.Model)))
	b.WriteString("\n")

	summary := fmt.Sprintf(
		"%s %7.3f    %s %6.1f°\n%s %8.4f  %s %8.4f  %s %8.4f\n%s %8.4f  %s %8.4f  %s %5d  %s",
		viz.LabelStyle.Render("loading"), m.loading,
		viz.LabelStyle.Render("yaw"), m.yawDeg,
		viz.LabelStyle.Render("an"), sol.An.At(0),
		viz.LabelStyle.Render("u4"), sol.U4.At(0),
		viz.LabelStyle.Render("v4"), sol.V4.At(0),
		viz.LabelStyle.Render("Ct"), sol.Ct().At(0),
		viz.LabelStyle.Render("Cp"), sol.Cp().At(0),
		viz.LabelStyle.Render("niter"), sol.Niter,
		viz.Status(sol.Converged),
	)
	b.WriteString(viz.PanelStyle.Render(summary))
	b.WriteString("\n")

	b.WriteString(m.sweepView(model, yaw))
	b.WriteString(viz.HelpStyle.Render("←/→ loading  shift: ±1  ↑/↓ yaw  m model  r reset  q quit"))
	return b.String()
}

// sweepView plots Cp over a loading sweep at the current yaw, so the operator
// sees where the current point sits on the power curve.
func (m exploreModel) sweepView(model momentum.Model, yaw float64) string {
	const steps = 60
	hi := math.Max(4, m.loading*1.5)
	cps := make([]float64, steps)
	for i := 0; i < steps; i++ {
		ct := hi * float64(i) / float64(steps-1)
		cps[i] = model.Solve(wake.Scalar(ct), yaw).Cp().At(0)
	}
	return viz.Plot(cps, fmt.Sprintf("Cp for loading 0..%.1f at yaw %.0f°", hi, m.yawDeg)) + "\n"
}
