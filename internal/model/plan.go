package model

// Plan names. Every feature limit in the system is a static lookup keyed by
// one of these.
const (
	PlanFree       = "free"
	PlanBasic      = "basic"
	PlanPremium    = "premium"
	PlanBusiness   = "business"
	PlanEnterprise = "enterprise"
)

// ValidPlans lists the accepted plan names in upgrade order.
var ValidPlans = []string{PlanFree, PlanBasic, PlanPremium, PlanBusiness, PlanEnterprise}

// IsValidPlan reports whether name is a known plan.
func IsValidPlan(name string) bool {
	for _, p := range ValidPlans {
		if p == name {
			return true
		}
	}
	return false
}

// PlanLimits are the numeric caps for a plan. -1 means unlimited.
type PlanLimits struct {
	Events  int `json:"events"`
	Photos  int `json:"photos"`
	Videos  int `json:"videos"`
	Storage int `json:"storage"`
	Guests  int `json:"guests"`
}

var planLimits = map[string]PlanLimits{
	PlanFree:       {Events: 1, Photos: 100, Videos: 10, Storage: 1, Guests: 50},
	PlanBasic:      {Events: 5, Photos: 1000, Videos: 50, Storage: 10, Guests: 200},
	PlanPremium:    {Events: -1, Photos: 10000, Videos: 200, Storage: 50, Guests: 500},
	PlanBusiness:   {Events: -1, Photos: 50000, Videos: 500, Storage: 200, Guests: 1000},
	PlanEnterprise: {Events: -1, Photos: -1, Videos: -1, Storage: -1, Guests: -1},
}

var planFeatures = map[string][]string{
	PlanFree: {
		"1 event maximum",
		"100 photos maximum",
		"Basic gallery",
		"Email support",
	},
	PlanBasic: {
		"5 events maximum",
		"1,000 photos maximum",
		"Custom gallery",
		"Priority support",
		"Standard QR codes",
	},
	PlanPremium: {
		"Unlimited events",
		"10,000 photos maximum",
		"Premium gallery",
		"24/7 support",
		"Custom QR codes",
		"Basic analytics",
	},
	PlanBusiness: {
		"Unlimited events",
		"50,000 photos maximum",
		"Enterprise gallery",
		"Dedicated support",
		"Advanced QR codes",
		"Full analytics",
		"Integration API",
		"Custom branding",
	},
	PlanEnterprise: {
		"Unlimited events",
		"Unlimited storage",
		"Tailored gallery",
		"Account manager",
		"Enterprise QR codes",
		"Real-time analytics",
		"Full API",
		"Full branding",
		"99.9% SLA",
		"Team training",
	},
}

// LimitsForPlan returns the caps for a plan, falling back to the free tier
// when the plan is unrecognized.
func LimitsForPlan(name string) PlanLimits {
	if l, ok := planLimits[name]; ok {
		return l
	}
	return planLimits[PlanFree]
}

// FeaturesForPlan returns the feature list for a plan, falling back to the
// free tier when the plan is unrecognized.
func FeaturesForPlan(name string) []string {
	if f, ok := planFeatures[name]; ok {
		return f
	}
	return planFeatures[PlanFree]
}
