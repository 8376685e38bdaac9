package server

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/90mp11/ProjectReportCreator/lib/model"
	"github.com/90mp11/ProjectReportCreator/lib/reports"
)

func (s *server) initStats(r *gin.Engine) {
	r.GET("/api/stats/summary", get(s.statsSummary))
	r.GET("/api/stats/resolved", getP[ResolvedParams](s.statsResolved))
	r.GET("/api/stats/age", getP[StatsParams](s.statsAge))
}

func (s *server) statsSummary() (any, error) {
	projects := lo.Filter(s.projects.List(), func(p *model.Project, _ int) bool {
		return !p.Ignore
	})

	byStatus := map[string]int{}
	for _, p := range projects {
		byStatus[p.Status]++
	}

	open := 0
	resolved := 0
	for _, t := range s.tickets.List() {
		if t.IsOpen() {
			open++
		}
		if t.IsResolved() {
			resolved++
		}
	}

	return gin.H{
		"projects": gin.H{
			"total":    len(projects),
			"byStatus": byStatus,
		},
		"tickets": gin.H{
			"total":    len(s.tickets.List()),
			"open":     open,
			"resolved": resolved,
		},
		"documents": len(s.documents.List()),
		"contacts":  len(s.contacts.List()),
	}, nil
}

func (s *server) statsResolved(params *ResolvedParams) (any, error) {
	tickets, err := s.listTickets(&params.Filters)
	if err != nil {
		return nil, err
	}

	opts := &reports.ResolvedOptions{Year: params.Year}

	switch params.By {
	case "", "month":
	case "engineer":
		opts.By = reports.ResolvedByEngineer
	default:
		return nil, fmt.Errorf("unknown by: %s", params.By)
	}

	cells := reports.ComputeResolvedCells(tickets, opts)
	grid := reports.NewPivotGrid(cells, reports.OrderSorted, reports.OrderSorted)

	return gin.H{
		"rows":   grid.Rows(),
		"cols":   grid.Cols(),
		"matrix": grid.Matrix(),
	}, nil
}

func (s *server) statsAge(params *StatsParams) (any, error) {
	tickets, err := s.listTickets(&params.Filters)
	if err != nil {
		return nil, err
	}

	var result []gin.H
	for _, row := range reports.ComputeOpenTicketAges(tickets, time.Now()) {
		result = append(result, gin.H{
			"assignedTo":      row.AssignedTo,
			"ageBusinessDays": row.AgeBusinessDays,
			"tickets":         row.TicketCount,
		})
	}

	return result, nil
}
