// Package messages renders analysis results as Telegram HTML in Portuguese.
package messages

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/palpitebot/palpitebot/internal/analyzer"
	"github.com/palpitebot/palpitebot/internal/pkg/models"
)

// DailyInput carries everything the daily channel post needs.
type DailyInput struct {
	Date            time.Time
	EligibleMatches int
	Result          *analyzer.Result
}

const dailyTopSize = 5

// ConfidenceLabel maps a confidence level to its display label.
func ConfidenceLabel(confidence models.Confidence) string {
	switch confidence {
	case models.ConfidenceHigh:
		return "🔥 Alta"
	case models.ConfidenceMedium:
		return "⚡ Média"
	default:
		return "💡 Baixa"
	}
}

func confidenceEmoji(confidence models.Confidence) string {
	switch confidence {
	case models.ConfidenceHigh:
		return "🔥"
	case models.ConfidenceMedium:
		return "⚡"
	default:
		return "💡"
	}
}

// BuildDaily renders the daily predictions post: global summary, region
// distribution, global top list and the per-region detail lists.
func BuildDaily(in DailyInput) string {
	result := in.Result
	var lines []string

	lines = append(lines,
		fmt.Sprintf("🏆 <b>PREVISÕES FUTEBOL - %s</b>", in.Date.Format("02/01/2006")),
		"",
		"📊 <b>Resumo Global:</b>",
		fmt.Sprintf("• %d jogos elegíveis nas competições suportadas", in.EligibleMatches),
		fmt.Sprintf("• %d jogos analisados", result.TotalAnalyzed),
		fmt.Sprintf("• %d jogos de alta confiança | %d de média confiança",
			result.HighConfidenceCount, result.MediumConfidenceCount),
		"")

	var activeRegions []models.RegionBreakdown
	for _, row := range result.BreakdownByRegion {
		if row.Total > 0 {
			activeRegions = append(activeRegions, row)
		}
	}
	if len(activeRegions) > 0 {
		lines = append(lines, "🌍 <b>Distribuição por Região:</b>")
		for _, row := range activeRegions {
			lines = append(lines, fmt.Sprintf("• %s: %d jogos (%d alta | %d média)",
				html.EscapeString(row.Label), row.Total, row.HighConfidence, row.MediumConfidence))
		}
		lines = append(lines, "")
	}

	if len(result.BestMatches) > 0 {
		top := result.BestMatches
		if len(top) > dailyTopSize {
			top = top[:dailyTopSize]
		}
		lines = append(lines, fmt.Sprintf("🔥 <b>TOP GLOBAL (%d)</b>", len(top)))
		for _, m := range top {
			lines = append(lines, matchDetails(m, confidenceEmoji(m.Confidence))...)
			lines = append(lines, "")
		}
	} else {
		lines = append(lines,
			"😔 <b>Não há jogos com odds interessantes hoje.</b>",
			"Voltamos amanhã com mais análises!",
			"")
	}

	var detailedRegions []models.RegionTop
	for _, region := range result.BestByRegion {
		if len(region.Matches) > 0 {
			detailedRegions = append(detailedRegions, region)
		}
	}
	if len(detailedRegions) > 0 {
		lines = append(lines, "🗺️ <b>Lista completa por região:</b>")
		for _, region := range detailedRegions {
			lines = append(lines, fmt.Sprintf("📍 <b>%s</b>", html.EscapeString(region.Label)))
			for _, m := range region.Matches {
				lines = append(lines, matchDetails(m, "•")...)
				lines = append(lines, "")
			}
		}
		if lines[len(lines)-1] == "" {
			lines = lines[:len(lines)-1]
		}
	}

	lines = append(lines,
		"",
		"💡 <b>Lembre-se:</b>",
		"• Aposte com responsabilidade",
		"• Nunca aposte mais do que pode perder",
		"• Estas são apenas previsões baseadas em probabilidades",
		"",
		"⚽ Boa sorte com as suas apostas!",
		"🤖 Bot de Previsões Futebol")

	return strings.Join(lines, "\n")
}

// matchDetails renders one match block: header, confidence, recommendations,
// probability lines and up to two notes.
func matchDetails(m *models.AnalyzedMatch, prefix string) []string {
	home := html.EscapeString(nonEmpty(m.HomeTeam, "Casa"))
	away := html.EscapeString(nonEmpty(m.AwayTeam, "Fora"))

	header := []string{prefix, fmt.Sprintf("<b>%s vs %s</b>", home, away)}
	if m.Kickoff != "" {
		header = append(header, fmt.Sprintf("(%s)", html.EscapeString(m.Kickoff)))
	}
	if league := leagueName(m); league != "" {
		header = append(header, "— "+html.EscapeString(league))
	}

	lines := []string{strings.Join(header, " ")}
	lines = append(lines, "↳ Confiança: "+ConfidenceLabel(m.Confidence))

	if len(m.Recommendations) > 0 {
		lines = append(lines, "↳ 🎯 "+escapeJoin(m.Recommendations, " | "))
	} else {
		lines = append(lines, "↳ 🎯 Sem recomendação automática — avaliar manualmente")
	}

	lines = append(lines, probabilityLines(m.Probabilities)...)

	if len(m.Notes) > 0 {
		notes := m.Notes
		if len(notes) > 2 {
			notes = notes[:2]
		}
		lines = append(lines, "↳ 📝 "+escapeJoin(notes, " • "))
	}

	return lines
}

// probabilityLines renders the markets that actually have values.
func probabilityLines(p models.ProbabilityEstimate) []string {
	var lines []string
	if p.HomeWin > 0 || p.Draw > 0 || p.AwayWin > 0 {
		lines = append(lines, fmt.Sprintf("↳ 📈 1X2: Casa %d%% | Empate %d%% | Fora %d%%",
			p.HomeWin, p.Draw, p.AwayWin))
	}
	if p.Over25 > 0 || p.Under25 > 0 {
		lines = append(lines, fmt.Sprintf("↳ ⚽ Linhas 2.5: Over %d%% | Under %d%%", p.Over25, p.Under25))
	}
	if p.BttsYes > 0 || p.BttsNo > 0 {
		lines = append(lines, fmt.Sprintf("↳ 🤝 Ambos marcam: Sim %d%% | Não %d%%", p.BttsYes, p.BttsNo))
	}
	return lines
}

// BuildMatchDetail renders the single-match answer for an on-demand lookup.
func BuildMatchDetail(m *models.AnalyzedMatch) string {
	home := nonEmpty(m.HomeTeam, "Casa")
	away := nonEmpty(m.AwayTeam, "Fora")

	lines := []string{
		fmt.Sprintf("🏟️ <b>%s vs %s</b>", html.EscapeString(home), html.EscapeString(away)),
	}

	competitionLine := nonEmpty(leagueName(m), "Competição desconhecida")
	if m.Competition != nil {
		competitionLine += " · " + models.RegionLabel(m.Competition.Region)
	}
	lines = append(lines, "🏆 "+html.EscapeString(competitionLine))

	if !m.Date.IsZero() || m.Kickoff != "" {
		kickoff := nonEmpty(m.Kickoff, "--:--")
		lines = append(lines, fmt.Sprintf("🗓️ %s · %s", m.Date.Format("02/01/2006"), kickoff))
	}

	p := m.Probabilities
	lines = append(lines,
		"",
		"📊 Probabilidades estimadas",
		fmt.Sprintf("• Casa: %d%%", p.HomeWin),
		fmt.Sprintf("• Empate: %d%%", p.Draw),
		fmt.Sprintf("• Fora: %d%%", p.AwayWin),
		fmt.Sprintf("• Over 2.5: %d%% | Under 2.5: %d%%", p.Over25, p.Under25),
		fmt.Sprintf("• BTTS Sim: %d%% | BTTS Não: %d%%", p.BttsYes, p.BttsNo),
		"",
		"🔥 Confiança geral: "+ConfidenceLabel(m.Confidence))

	if len(m.Recommendations) > 0 {
		lines = append(lines, "", "🎯 Sugestões do modelo:")
		for _, rec := range m.Recommendations {
			lines = append(lines, "• "+html.EscapeString(rec))
		}
	}
	if len(m.Notes) > 0 {
		lines = append(lines, "", "🧠 Sinais em destaque:")
		for _, note := range m.Notes {
			lines = append(lines, "• "+html.EscapeString(note))
		}
	}

	return strings.Join(lines, "\n")
}

func leagueName(m *models.AnalyzedMatch) string {
	if m.Competition != nil {
		return m.Competition.DisplayName
	}
	return m.League.Name
}

func escapeJoin(values []string, separator string) string {
	escaped := make([]string, 0, len(values))
	for _, v := range values {
		escaped = append(escaped, html.EscapeString(v))
	}
	return strings.Join(escaped, separator)
}

func nonEmpty(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
