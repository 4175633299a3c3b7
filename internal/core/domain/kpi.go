package domain

// KpiType names a KPI. OTHER is a user-defined KPI carrying its own label.
type KpiType string

const (
	KpiImpressions   KpiType = "Impressions"
	KpiReach         KpiType = "Reach"
	KpiViewRate      KpiType = "ViewRate"
	KpiCPM           KpiType = "CPM"
	KpiCTR           KpiType = "CTR"
	KpiSessions      KpiType = "Sessions"
	KpiPageviews     KpiType = "Pageviews"
	KpiCPC           KpiType = "CPC"
	KpiLeads         KpiType = "Leads"
	KpiCPL           KpiType = "CPL"
	KpiCPA           KpiType = "CPA"
	KpiCR            KpiType = "CR"
	KpiROAS          KpiType = "ROAS"
	KpiRepeatRate    KpiType = "RepeatRate"
	KpiTimeToRepeat  KpiType = "TimeToRepeat"
	KpiReferralCount KpiType = "ReferralCount"
	KpiReviewVolume  KpiType = "ReviewVolume"
	KpiOther         KpiType = "OTHER"
)

// Operator compares the measured value against the target.
type Operator string

const (
	OpGreaterOrEqual Operator = ">="
	OpLessOrEqual    Operator = "<="
	OpEqual          Operator = "="
)

// Unit qualifies a KPI target.
type Unit string

const (
	UnitCount   Unit = "COUNT"
	UnitPercent Unit = "PERCENT"
	UnitBaht    Unit = "BAHT"
	UnitPerDay  Unit = "PER_DAY"
	UnitPer7D   Unit = "PER_7D"
	UnitPer30D  Unit = "PER_30D"
)

// KpiRow is one KPI of a request, ordered by Index. Index 0 is the primary KPI.
type KpiRow struct {
	Index     int
	Type      KpiType
	Label     string // only meaningful when Type is OTHER
	Operator  Operator
	Target    *float64
	Unit      Unit
	Method    string
	IsPrimary bool
}

// DisplayName is the label shown for the KPI in documents.
func (k KpiRow) DisplayName() string {
	if k.Type == KpiOther {
		if k.Label != "" {
			return k.Label
		}
		return string(KpiOther)
	}
	return string(k.Type)
}
