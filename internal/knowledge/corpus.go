package knowledge

import "github.com/ashev2021/AnalyzePitch/internal/models"

// DefaultCorpus returns the fixed investment knowledge base used for
// retrieval-augmented analysis. The corpus is static configuration data:
// items are embedded once at startup and never mutated afterwards.
func DefaultCorpus() []models.KnowledgeItem {
	return []models.KnowledgeItem{
		{
			ID:       0,
			Topic:    "startup_valuation_methods",
			Category: models.CategoryValuation,
			Content:  "Startup valuation methods include revenue multiples (5-15x ARR for SaaS, 2-5x for e-commerce), Discounted Cash Flow with high discount rates (15-25%), Comparable company analysis using public/private comps, Risk-adjusted NPV for early-stage ventures. Pre-revenue startups valued on TAM, team pedigree, and competitive moats. Series A typically valued at 10-20x ARR with strong growth.",
			Tags:     []string{"valuation", "metrics", "series_a"},
		},
		{
			ID:       1,
			Topic:    "market_sizing_tam_sam_som",
			Category: models.CategoryMarketAnalysis,
			Content:  "Market sizing framework: Total Addressable Market (TAM) - global demand for solution category, Serviceable Addressable Market (SAM) - realistic market segment company can serve with current business model, Serviceable Obtainable Market (SOM) - achievable market share based on competitive positioning. Bottom-up analysis preferred: unit economics × addressable customers × market penetration rates.",
			Tags:     []string{"market_sizing", "tam", "framework"},
		},
		{
			ID:       2,
			Topic:    "product_market_fit_indicators",
			Category: models.CategoryTraction,
			Content:  "Product-Market Fit signals: >40% users 'very disappointed' without product (Sean Ellis test), organic growth >20% month-over-month, retention cohorts flattening after month 6, Net Promoter Score >50, word-of-mouth growth coefficient >0.15. Qualitative indicators: customers pulling product into organization, unsolicited feature requests, competitive win rates >60%, sales cycle compression.",
			Tags:     []string{"pmf", "retention", "growth", "early_stage"},
		},
		{
			ID:       3,
			Topic:    "saas_key_metrics_benchmarks",
			Category: models.CategoryMetrics,
			Content:  "SaaS metrics benchmarks: LTV:CAC ratio >3:1 (excellent >5:1), CAC payback period <12 months (best <6 months), Monthly churn rate <5% (SMB) or <2% (Enterprise), Net Revenue Retention >110% (best-in-class >130%), Gross margin >70% (SaaS standard >80%), Annual Contract Value growth, Magic Number >1.0 for efficient growth.",
			Tags:     []string{"saas", "metrics", "benchmarks", "ltv_cac"},
		},
		{
			ID:       4,
			Topic:    "early_stage_funding_milestones",
			Category: models.CategoryFunding,
			Content:  "Early-stage funding milestones: Pre-seed ($100K-$1M) - MVP and initial user feedback, Seed ($500K-$5M) - product-market fit signals and early traction, Series A ($2M-$15M) - proven PMF with $1M+ ARR and scalable go-to-market. Each round should provide 18-24 months runway. Key metrics progression: Pre-seed focuses on engagement, Seed on retention/growth, Series A on unit economics and scalability.",
			Tags:     []string{"funding", "milestones", "early_stage", "seed", "series_a"},
		},
		{
			ID:       5,
			Topic:    "team_assessment_framework",
			Category: models.CategoryTeam,
			Content:  "Founder assessment criteria: Domain expertise and founder-market fit, Previous startup experience (especially successful exits), Technical/business complementarity, Ability to attract top talent, Leadership under pressure, Coachability and learning agility, Fair equity distribution, Strong advisory board. Red flags: founder conflicts, unrealistic expectations, poor communication skills, inability to hire senior talent.",
			Tags:     []string{"founders", "team", "assessment", "red_flags"},
		},
		{
			ID:       6,
			Topic:    "competitive_analysis_moats",
			Category: models.CategoryStrategy,
			Content:  "Competitive moats for startups: Network effects (value increases with users - strongest moat), Switching costs (data/integration lock-in), Economies of scale, Proprietary data/algorithms, Brand recognition, Regulatory barriers, Exclusive partnerships. Evaluate moat timeline and defensibility. Technology alone rarely provides lasting advantage without network effects or data moats.",
			Tags:     []string{"competitive_advantage", "moats", "defensibility", "network_effects"},
		},
		{
			ID:       7,
			Topic:    "unit_economics_analysis",
			Category: models.CategoryFinancials,
			Content:  "Unit economics fundamentals: Customer Acquisition Cost (CAC) including fully-loaded sales/marketing costs, Customer Lifetime Value (LTV) with realistic churn assumptions, Contribution margin after variable costs, Payback period calculation, Cohort-based analysis for accuracy. Key ratios: LTV:CAC >3:1, Payback <12 months, positive unit economics at scale with improving trends.",
			Tags:     []string{"unit_economics", "cac", "ltv", "cohort_analysis"},
		},
		{
			ID:       8,
			Topic:    "growth_strategy_channels",
			Category: models.CategoryGrowth,
			Content:  "Growth channel evaluation: Product-led growth (PLG) for viral/self-serve products, Sales-led growth for enterprise/complex products, Marketing-led growth for consumer/SMB markets. Channel metrics: Customer acquisition cost by channel, conversion rates, time to value, retention by acquisition source. Successful startups typically master 1-2 primary channels before expanding.",
			Tags:     []string{"growth_strategy", "plg", "sales_led", "channels"},
		},
		{
			ID:       9,
			Topic:    "investment_red_flags",
			Category: models.CategoryRisks,
			Content:  "Major investment red flags: Unrealistic financial projections without supporting data, weak founding team lacking domain expertise, unclear go-to-market strategy, poor unit economics with no path to profitability, highly competitive market with no differentiation, legal/IP issues, high customer concentration (>50% revenue from single customer), excessive burn rate without proportional growth.",
			Tags:     []string{"red_flags", "risks", "due_diligence", "warning_signs"},
		},
	}
}
