package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/TungTran2095/medform/internal/plan/entity"
)

// SummaryResult is the outcome of one per-category summary request.
type SummaryResult struct {
	Category  entity.Category `json:"category"`
	Summary   string          `json:"summary,omitempty"`
	FullText  string          `json:"full_text,omitempty"`
	NoData    bool            `json:"no_data,omitempty"`
	FromCache bool            `json:"from_cache,omitempty"`
}

// ErrSummarizerUnavailable is returned when no text generator is configured.
var ErrSummarizerUnavailable = fmt.Errorf("summarizer is not configured")

// Summarize builds the category's content over the filtered set and requests a
// natural-language synopsis. A cached entry for the same (filter, category)
// slot is returned without refresh; staleness after new submissions is
// accepted. Zero qualifying content short-circuits without an AI call.
func (s *DashboardService) Summarize(ctx context.Context, unit string, cat entity.Category) (*SummaryResult, error) {
	if !cat.Valid() {
		return nil, fmt.Errorf("unknown content category %q", cat)
	}

	key := summaryKey(unit, cat)
	if cached, ok := s.cache.Get(ctx, key); ok {
		return &SummaryResult{
			Category:  cat,
			Summary:   cached.Summary,
			FullText:  cached.FullText,
			FromCache: true,
		}, nil
	}

	subs, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load submissions: %w", err)
	}
	filtered := Filter(subs, unit)

	compact := formatCompact(filtered, cat)
	if strings.TrimSpace(compact) == "" {
		return &SummaryResult{Category: cat, NoData: true}, nil
	}

	if s.ai == nil {
		return nil, ErrSummarizerUnavailable
	}

	token := s.nextToken(key)
	full := formatFull(filtered, cat)

	summary, err := s.ai.Summarize(ctx, compact, cat.Label())
	if err != nil {
		// The failed call must not touch any cached entry.
		return nil, err
	}

	// Discard late completions: only the latest request issued for this
	// slot may populate the cache.
	if s.latestToken(key) == token {
		s.cache.Set(ctx, key, &CachedSummary{Summary: summary, FullText: full})
	} else {
		s.logger.Debug("stale summary discarded", zap.String("slot", key))
	}

	return &SummaryResult{Category: cat, Summary: summary, FullText: full}, nil
}

func summaryKey(unit string, cat entity.Category) string {
	if unit == "" {
		unit = "all"
	}
	return unit + ":" + string(cat)
}

func (s *DashboardService) nextToken(key string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq[key]++
	return s.seq[key]
}

func (s *DashboardService) latestToken(key string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seq[key]
}

// formatCompact renders one line per unit for the summarization prompt. Units
// with nothing to say in the category are skipped, so an empty result means
// there is no qualifying content at all.
func formatCompact(subs []entity.PlanSubmission, cat entity.Category) string {
	var lines []string
	for i := range subs {
		sub := &subs[i]
		line := compactLine(sub, cat)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

func compactLine(sub *entity.PlanSubmission, cat entity.Category) string {
	switch cat {
	case entity.CategorySwot:
		if len(sub.Swot) == 0 {
			return ""
		}
		return fmt.Sprintf("%s: Điểm mạnh: %s. Điểm yếu: %s. Cơ hội: %s. Thách thức: %s.",
			sub.UnitName,
			strings.Join(sub.SwotByType(entity.SwotStrengths), ", "),
			strings.Join(sub.SwotByType(entity.SwotWeaknesses), ", "),
			strings.Join(sub.SwotByType(entity.SwotOpportunities), ", "),
			strings.Join(sub.SwotByType(entity.SwotThreats), ", "),
		)
	case entity.CategoryBSC:
		if len(sub.BSC) == 0 {
			return ""
		}
		parts := make([]string, 0, len(sub.BSC))
		for _, b := range sub.BSC {
			parts = append(parts, fmt.Sprintf("%s: %s (KPI: %s)", b.Perspective, b.Objective, b.KPI))
		}
		return fmt.Sprintf("%s: %s.", sub.UnitName, strings.Join(parts, "; "))
	case entity.CategoryActionPlans:
		if len(sub.ActionPlans) == 0 {
			return ""
		}
		parts := make([]string, 0, len(sub.ActionPlans))
		for _, p := range sub.ActionPlans {
			parts = append(parts, fmt.Sprintf("%s (Phụ trách: %s, Thời gian: %s, Ngân sách: %s)",
				p.Plan, p.Lead, p.Time, p.Budget))
		}
		return fmt.Sprintf("%s: %s.", sub.UnitName, strings.Join(parts, "; "))
	case entity.CategoryFinancialForecast:
		ff := sub.FinancialForecast
		if ff.Revenue == "" && ff.Costs == "" && ff.Profit == "" {
			return ""
		}
		line := fmt.Sprintf("%s: Doanh thu: %s, Chi phí: %s, Lợi nhuận: %s",
			sub.UnitName, orDash(ff.Revenue), orDash(ff.Costs), orDash(ff.Profit))
		if ff.Investment != "" {
			line += ", Đầu tư: " + ff.Investment
		}
		return line + "."
	default:
		items := sub.ContentByCategory(cat)
		if len(items) == 0 {
			return ""
		}
		parts := make([]string, 0, len(items))
		for _, item := range items {
			parts = append(parts, fmt.Sprintf("%s: %s", item.Name, item.Detail))
		}
		return fmt.Sprintf("%s: %s.", sub.UnitName, strings.Join(parts, "; "))
	}
}

const sectionRule = "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━"

// formatFull renders the verbose multi-line text kept for "read full" display.
func formatFull(subs []entity.PlanSubmission, cat entity.Category) string {
	var blocks []string
	for i := range subs {
		blocks = append(blocks, fullBlock(&subs[i], cat))
	}
	return strings.Join(blocks, "\n")
}

func fullBlock(sub *entity.PlanSubmission, cat entity.Category) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n📋 %s\n%s\n", sub.UnitName, sectionRule)

	writeItems := func(heading string, items entity.ContentItems) {
		if len(items) == 0 {
			return
		}
		fmt.Fprintf(&b, "\n%s:\n", heading)
		for _, item := range items {
			fmt.Fprintf(&b, "   • %s\n     %s\n", item.Name, item.Detail)
		}
	}

	switch cat {
	case entity.CategorySwot:
		headings := map[string]string{
			entity.SwotStrengths:     "✅ ĐIỂM MẠNH",
			entity.SwotWeaknesses:    "❌ ĐIỂM YẾU",
			entity.SwotOpportunities: "🎯 CƠ HỘI",
			entity.SwotThreats:       "⚠️ THÁCH THỨC",
		}
		for _, typ := range entity.SwotTypes {
			descriptions := sub.SwotByType(typ)
			if len(descriptions) == 0 {
				continue
			}
			fmt.Fprintf(&b, "\n%s:\n", headings[typ])
			for _, d := range descriptions {
				fmt.Fprintf(&b, "   • %s\n", d)
			}
		}
	case entity.CategoryBSC:
		headings := map[string]string{
			entity.BSCFinancial: "💰 Tài chính",
			entity.BSCCustomer:  "👥 Khách hàng",
			entity.BSCInternal:  "⚙️ Quy trình nội bộ",
			entity.BSCLearning:  "📚 Học tập và phát triển",
		}
		for _, perspective := range entity.BSCPerspectives {
			items := sub.BSCByPerspective(perspective)
			if len(items) == 0 {
				continue
			}
			fmt.Fprintf(&b, "\n%s:\n", headings[perspective])
			for _, item := range items {
				fmt.Fprintf(&b, "   • Mục tiêu: %s\n     KPI: %s\n", item.Objective, item.KPI)
			}
		}
	case entity.CategoryActionPlans:
		for i, plan := range sub.ActionPlans {
			fmt.Fprintf(&b, "\n📌 Kế hoạch %d:\n", i+1)
			fmt.Fprintf(&b, "   • Nội dung: %s\n", plan.Plan)
			fmt.Fprintf(&b, "   • Người phụ trách: %s\n", plan.Lead)
			fmt.Fprintf(&b, "   • Thời gian: %s\n", plan.Time)
			fmt.Fprintf(&b, "   • Ngân sách: %s\n", plan.Budget)
			fmt.Fprintf(&b, "   • KPI: %s\n", plan.KPI)
		}
	case entity.CategoryFinancialForecast:
		ff := sub.FinancialForecast
		b.WriteString("\n💰 DỰ BÁO TÀI CHÍNH:\n")
		fmt.Fprintf(&b, "   • Doanh thu: %s\n", orDash(ff.Revenue))
		fmt.Fprintf(&b, "   • Chi phí: %s\n", orDash(ff.Costs))
		fmt.Fprintf(&b, "   • Lợi nhuận: %s\n", orDash(ff.Profit))
		if ff.Investment != "" {
			fmt.Fprintf(&b, "   • Đầu tư: %s\n", ff.Investment)
		}
		for _, att := range ff.Attachments {
			fmt.Fprintf(&b, "   • Tệp đính kèm: %s\n", att.Name)
		}
	case entity.CategoryProfessionalOrientation:
		writeItems("🎯 ĐỊNH HƯỚNG CHUYÊN MÔN", sub.ProfessionalOrientation)
	case entity.CategoryStrategicProducts:
		writeItems("📦 SẢN PHẨM CHIẾN LƯỢC", sub.StrategicProducts)
	case entity.CategoryNewServices2026:
		writeItems("🆕 DỊCH VỤ MỚI 2026", sub.NewServices2026)
	case entity.CategoryRecruitment:
		writeItems("👔 TUYỂN DỤNG", sub.Recruitment)
	case entity.CategoryConferences:
		writeItems("🎤 HỘI NGHỊ HỘI THẢO", sub.Conferences)
	case entity.CategoryCommunityPrograms:
		writeItems("🤝 CHƯƠNG TRÌNH CỘNG ĐỒNG", sub.CommunityPrograms)
	case entity.CategoryRevenueRecommendations:
		writeItems("💡 KIẾN NGHỊ VÀ ĐỀ XUẤT", sub.RevenueRecommendations)
	}
	return b.String()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
