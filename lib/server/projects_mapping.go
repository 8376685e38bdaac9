package server

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/90mp11/ProjectReportCreator/lib/filters"
	"github.com/90mp11/ProjectReportCreator/lib/model"
)

func (s *server) listProjects(params *Filters) ([]*model.Project, error) {
	filter, err := filters.ParseProjectFilter(params.FilterProject)
	if err != nil {
		return nil, err
	}

	return lo.Filter(s.projects.List(), func(p *model.Project, _ int) bool {
		return !p.Ignore && filter(p)
	}), nil
}

func (s *server) sortProjects(col []*model.Project, field string, asc *bool) error {
	if field == "" {
		field = "name"
	}
	if asc == nil {
		asc = new(bool)
		*asc = !lo.Contains([]string{"firstSeen", "lastSeen"}, field)
	}

	switch field {
	case "name":
		return sortBy(col, func(r *model.Project) string { return r.Name }, *asc)
	case "status":
		return sortBy(col, func(r *model.Project) string { return r.Status }, *asc)
	case "staging":
		return sortBy(col, func(r *model.Project) string { return r.Staging }, *asc)
	case "priority":
		return sortBy(col, func(r *model.Project) string { return r.Priority }, *asc)
	case "effort":
		return sortBy(col, func(r *model.Project) string { return r.Effort }, *asc)
	case "impact":
		return sortBy(col, func(r *model.Project) string { return r.Impact }, *asc)
	case "owner":
		return sortBy(col, func(r *model.Project) string { return r.Owner }, *asc)
	case "team":
		return sortBy(col, func(r *model.Project) string { return r.Team }, *asc)
	case "firstSeen":
		return sortBy(col, func(r *model.Project) int64 { return r.FirstSeen.UnixMilli() }, *asc)
	case "lastSeen":
		return sortBy(col, func(r *model.Project) int64 { return r.LastSeen.UnixMilli() }, *asc)
	default:
		return fmt.Errorf("unknown sort field: %s", field)
	}
}

func (s *server) toProject(p *model.Project) gin.H {
	return gin.H{
		"id":        p.ID,
		"name":      p.Name,
		"status":    p.Status,
		"staging":   p.Staging,
		"priority":  p.Priority,
		"effort":    p.Effort,
		"impact":    p.Impact,
		"owner":     p.Owner,
		"team":      p.Team,
		"summary":   p.Summary,
		"data":      p.Data,
		"firstSeen": encodeDate(p.FirstSeen),
		"lastSeen":  encodeDate(p.LastSeen),
	}
}
