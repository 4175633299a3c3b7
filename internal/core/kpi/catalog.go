// Package kpi holds the KPI rule tables and the per-row validator.
package kpi

import (
	"slices"

	"adpaas/internal/core/domain"
)

var allowedByFunnel = map[domain.Funnel][]domain.KpiType{
	domain.FunnelAwareness:     {domain.KpiImpressions, domain.KpiReach, domain.KpiViewRate, domain.KpiCPM, domain.KpiOther},
	domain.FunnelConsideration: {domain.KpiCTR, domain.KpiSessions, domain.KpiPageviews, domain.KpiCPC, domain.KpiOther},
	domain.FunnelConversion:    {domain.KpiLeads, domain.KpiCPL, domain.KpiCPA, domain.KpiCR, domain.KpiROAS, domain.KpiOther},
	domain.FunnelLoyalty:       {domain.KpiRepeatRate, domain.KpiTimeToRepeat, domain.KpiOther},
	domain.FunnelAdvocacy:      {domain.KpiReferralCount, domain.KpiReviewVolume, domain.KpiOther},
}

var conversionSales = []domain.KpiType{domain.KpiCPA, domain.KpiROAS, domain.KpiCR, domain.KpiOther}

var (
	opsAtLeast = []domain.Operator{domain.OpGreaterOrEqual}
	opsRate    = []domain.Operator{domain.OpGreaterOrEqual, domain.OpLessOrEqual, domain.OpEqual}
	opsCost    = []domain.Operator{domain.OpLessOrEqual, domain.OpEqual, domain.OpGreaterOrEqual}
)

var operators = map[domain.KpiType][]domain.Operator{
	domain.KpiImpressions:   opsAtLeast,
	domain.KpiReach:         opsAtLeast,
	domain.KpiViewRate:      opsRate,
	domain.KpiCPM:           opsCost,
	domain.KpiCTR:           opsRate,
	domain.KpiSessions:      opsAtLeast,
	domain.KpiPageviews:     opsAtLeast,
	domain.KpiCPC:           opsCost,
	domain.KpiLeads:         opsAtLeast,
	domain.KpiCPL:           opsCost,
	domain.KpiCPA:           opsCost,
	domain.KpiCR:            opsRate,
	domain.KpiROAS:          opsRate,
	domain.KpiRepeatRate:    opsRate,
	domain.KpiTimeToRepeat:  opsCost,
	domain.KpiReferralCount: opsAtLeast,
	domain.KpiReviewVolume:  opsAtLeast,
	domain.KpiOther:         opsRate,
}

var (
	unitsVolume  = []domain.Unit{domain.UnitCount, domain.UnitPer7D, domain.UnitPer30D, domain.UnitPerDay}
	unitsPercent = []domain.Unit{domain.UnitPercent}
	unitsBaht    = []domain.Unit{domain.UnitBaht}
)

var units = map[domain.KpiType][]domain.Unit{
	domain.KpiImpressions:   unitsVolume,
	domain.KpiReach:         unitsVolume,
	domain.KpiSessions:      unitsVolume,
	domain.KpiPageviews:     unitsVolume,
	domain.KpiLeads:         {domain.UnitCount},
	domain.KpiCTR:           unitsPercent,
	domain.KpiViewRate:      unitsPercent,
	domain.KpiCR:            unitsPercent,
	domain.KpiCPL:           unitsBaht,
	domain.KpiCPC:           unitsBaht,
	domain.KpiCPM:           unitsBaht,
	domain.KpiCPA:           unitsBaht,
	domain.KpiROAS:          unitsPercent,
	domain.KpiRepeatRate:    unitsPercent,
	domain.KpiTimeToRepeat:  {domain.UnitCount},
	domain.KpiReferralCount: unitsVolume,
	domain.KpiReviewVolume:  {domain.UnitCount, domain.UnitPer7D, domain.UnitPer30D},
	domain.KpiOther: {
		domain.UnitCount, domain.UnitPercent, domain.UnitBaht,
		domain.UnitPerDay, domain.UnitPer7D, domain.UnitPer30D,
	},
}

// Allowed returns the KPI types permitted for the funnel and objective. The
// Sales objective narrows the Conversion set.
func Allowed(funnel domain.Funnel, objective string) []domain.KpiType {
	if funnel == domain.FunnelConversion && objective == domain.ObjectiveSales {
		return slices.Clone(conversionSales)
	}
	return slices.Clone(allowedByFunnel[funnel])
}

// Operators returns the operators permitted for a KPI type.
func Operators(t domain.KpiType) []domain.Operator {
	return slices.Clone(operators[t])
}

// Units returns the units permitted for a KPI type.
func Units(t domain.KpiType) []domain.Unit {
	return slices.Clone(units[t])
}

// Defaults returns the operator and unit preselected for a KPI type.
func Defaults(t domain.KpiType) (domain.Operator, domain.Unit) {
	op, u := domain.OpGreaterOrEqual, domain.UnitCount
	if ops := operators[t]; len(ops) > 0 {
		op = ops[0]
	}
	if us := units[t]; len(us) > 0 {
		u = us[0]
	}
	return op, u
}

// Recommended returns the KPI types suggested for the funnel and objective.
func Recommended(funnel domain.Funnel, objective string) []domain.KpiType {
	switch funnel {
	case domain.FunnelAwareness:
		return []domain.KpiType{domain.KpiImpressions, domain.KpiCPM}
	case domain.FunnelConsideration:
		return []domain.KpiType{domain.KpiCTR, domain.KpiSessions}
	case domain.FunnelConversion:
		if objective == domain.ObjectiveSales {
			return []domain.KpiType{domain.KpiCPA, domain.KpiROAS}
		}
		return []domain.KpiType{domain.KpiLeads, domain.KpiCPL}
	case domain.FunnelLoyalty:
		return []domain.KpiType{domain.KpiRepeatRate}
	case domain.FunnelAdvocacy:
		return []domain.KpiType{domain.KpiReferralCount, domain.KpiReviewVolume}
	}
	return nil
}

// Types lists every KPI type in catalog order.
func Types() []domain.KpiType {
	return []domain.KpiType{
		domain.KpiImpressions, domain.KpiReach, domain.KpiViewRate, domain.KpiCPM,
		domain.KpiCTR, domain.KpiSessions, domain.KpiPageviews, domain.KpiCPC,
		domain.KpiLeads, domain.KpiCPL, domain.KpiCPA, domain.KpiCR, domain.KpiROAS,
		domain.KpiRepeatRate, domain.KpiTimeToRepeat,
		domain.KpiReferralCount, domain.KpiReviewVolume, domain.KpiOther,
	}
}
