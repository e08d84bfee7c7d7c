package infrastructure

import (
	"reportboard/internal/reporting/domain"
)

type referenceSet struct {
	identity map[domain.TimeRange]domain.IdentitySnapshot
	hygiene  map[domain.TimeRange]domain.HygieneSnapshot
}

// reference is built once at package init and never written again.
var reference = referenceSet{
	identity: map[domain.TimeRange]domain.IdentitySnapshot{
		domain.OneMonth: {
			Range:                   domain.OneMonth,
			TotalProfiles:           25000,
			MatchedCoreID:           18000,
			MatchedHouseholdID:      10000,
			DuplicateRecordsPercent: 10.5,
			ChannelDistribution: []domain.ChannelRecord{
				{Category: domain.ChannelAddress, TotalIdentifiers: 190000, UniqueIdentifiers: 180000, UniqueReachPercent: 85},
				{Category: domain.ChannelEmail, TotalIdentifiers: 175000, UniqueIdentifiers: 170000, UniqueReachPercent: 75},
				{Category: domain.ChannelPhone, TotalIdentifiers: 165000, UniqueIdentifiers: 150000, UniqueReachPercent: 65},
			},
			MatchRatePercent: 67,
			ReachRatePercent: 90,
		},
		domain.ThreeMonths: {
			Range:                   domain.ThreeMonths,
			TotalProfiles:           75000,
			MatchedCoreID:           60000,
			MatchedHouseholdID:      30000,
			DuplicateRecordsPercent: 12,
			ChannelDistribution: []domain.ChannelRecord{
				{Category: domain.ChannelAddress, TotalIdentifiers: 450000, UniqueIdentifiers: 360000, UniqueReachPercent: 80},
				{Category: domain.ChannelEmail, TotalIdentifiers: 525000, UniqueIdentifiers: 420000, UniqueReachPercent: 75},
				{Category: domain.ChannelPhone, TotalIdentifiers: 420000, UniqueIdentifiers: 300000, UniqueReachPercent: 71},
			},
			MatchRatePercent: 72,
			ReachRatePercent: 88,
		},
		domain.SixMonths: {
			Range:                   domain.SixMonths,
			TotalProfiles:           150000,
			MatchedCoreID:           120000,
			MatchedHouseholdID:      60000,
			DuplicateRecordsPercent: 14,
			ChannelDistribution: []domain.ChannelRecord{
				{Category: domain.ChannelAddress, TotalIdentifiers: 900000, UniqueIdentifiers: 720000, UniqueReachPercent: 80},
				{Category: domain.ChannelEmail, TotalIdentifiers: 1050000, UniqueIdentifiers: 840000, UniqueReachPercent: 77},
				{Category: domain.ChannelPhone, TotalIdentifiers: 840000, UniqueIdentifiers: 600000, UniqueReachPercent: 71},
			},
			MatchRatePercent: 75,
			ReachRatePercent: 92,
		},
	},
	hygiene: map[domain.TimeRange]domain.HygieneSnapshot{
		domain.OneMonth: {
			Range: domain.OneMonth,
			ContactComplete: map[domain.Channel]int64{
				domain.ChannelAddress: 45000,
				domain.ChannelEmail:   36000,
				domain.ChannelPhone:   24000,
			},
			Corrections: map[domain.CorrectionType]int64{
				domain.CorrectionNCOA: 5000,
				domain.CorrectionPCOA: 2000,
				domain.CorrectionPCA:  1000,
			},
			EmailValid:   90000,
			EmailInvalid: 4000,
		},
		domain.ThreeMonths: {
			Range: domain.ThreeMonths,
			ContactComplete: map[domain.Channel]int64{
				domain.ChannelAddress: 135000,
				domain.ChannelEmail:   108000,
				domain.ChannelPhone:   72000,
			},
			Corrections: map[domain.CorrectionType]int64{
				domain.CorrectionNCOA: 15000,
				domain.CorrectionPCOA: 6000,
				domain.CorrectionPCA:  3000,
			},
			EmailValid:   270000,
			EmailInvalid: 12000,
		},
		domain.SixMonths: {
			Range: domain.SixMonths,
			ContactComplete: map[domain.Channel]int64{
				domain.ChannelAddress: 270000,
				domain.ChannelEmail:   216000,
				domain.ChannelPhone:   144000,
			},
			Corrections: map[domain.CorrectionType]int64{
				domain.CorrectionNCOA: 30000,
				domain.CorrectionPCOA: 12000,
				domain.CorrectionPCA:  6000,
			},
			EmailValid:   540000,
			EmailInvalid: 24000,
		},
	},
}
