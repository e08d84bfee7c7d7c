package application

import (
	"reportboard/internal/reporting/domain"
)

const donutHole = 0.4

// Chart builds the description of one dashboard figure for r.
func (s *Service) Chart(r domain.TimeRange, id domain.ChartID) (domain.Chart, error) {
	switch id {
	case domain.ChartChannelIdentifiers, domain.ChartChannelReach, domain.ChartMatchRate, domain.ChartReachRate:
		snap, err := s.identity(r)
		if err != nil {
			return domain.Chart{}, err
		}
		return identityChart(snap, id), nil
	case domain.ChartContactComplete, domain.ChartCorrections, domain.ChartEmailValidation:
		snap, err := s.hygiene(r)
		if err != nil {
			return domain.Chart{}, err
		}
		return s.hygieneChart(snap, id)
	}
	_, err := domain.ParseChartID(string(id))
	return domain.Chart{}, err
}

func identityChart(snap domain.IdentitySnapshot, id domain.ChartID) domain.Chart {
	chart := domain.Chart{ID: id, Range: snap.Range}

	switch id {
	case domain.ChartChannelIdentifiers:
		chart.Kind = domain.ChartBar
		chart.Title = "Total Identifiers"
		for _, rec := range snap.ChannelDistribution {
			chart.Points = append(chart.Points, domain.ChartPoint{
				Label: string(rec.Category),
				Value: float64(rec.TotalIdentifiers),
				Text:  formatCount(rec.TotalIdentifiers),
			})
		}
	case domain.ChartChannelReach:
		chart.Kind = domain.ChartBar
		chart.Title = "Unique Channel Reach (%)"
		for _, rec := range snap.ChannelDistribution {
			chart.Points = append(chart.Points, domain.ChartPoint{
				Label: string(rec.Category),
				Value: rec.UniqueReachPercent,
				Text:  formatPercent(rec.UniqueReachPercent),
			})
		}
	case domain.ChartMatchRate:
		chart = gauge(chart, "Match Rate (%)", snap.MatchRatePercent)
	case domain.ChartReachRate:
		chart = gauge(chart, "Reach Rate (%)", snap.ReachRatePercent)
	}

	return chart
}

func gauge(chart domain.Chart, title string, value float64) domain.Chart {
	chart.Kind = domain.ChartGauge
	chart.Title = title
	chart.Max = 100
	chart.Points = []domain.ChartPoint{{Label: title, Value: value, Text: formatPercent(value)}}
	return chart
}

func (s *Service) hygieneChart(snap domain.HygieneSnapshot, id domain.ChartID) (domain.Chart, error) {
	chart := domain.Chart{ID: id, Range: snap.Range}

	var name BreakdownName
	switch id {
	case domain.ChartContactComplete:
		chart.Kind = domain.ChartBar
		chart.Title = "Contact Complete"
		for _, c := range snap.ContactCompleteCounts() {
			chart.Points = append(chart.Points, domain.ChartPoint{
				Label: c.Label,
				Value: float64(c.Count),
				Text:  formatCount(c.Count),
			})
		}
		return chart, nil
	case domain.ChartCorrections:
		chart.Kind = domain.ChartDonut
		chart.Hole = donutHole
		name = BreakdownCorrections
	case domain.ChartEmailValidation:
		chart.Kind = domain.ChartPie
		name = BreakdownEmail
	}

	b, err := s.breakdown(snap, name)
	if err != nil {
		return domain.Chart{}, err
	}

	chart.Title = b.Title
	for _, share := range b.Shares {
		chart.Points = append(chart.Points, domain.ChartPoint{
			Label: share.Label,
			Value: float64(share.Count),
			Text:  formatShare(share.Label, share.Percent),
		})
	}
	return chart, nil
}
