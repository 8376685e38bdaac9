package server

import (
	"github.com/gin-gonic/gin"
)

func (s *server) initProjects(r *gin.Engine) {
	r.GET("/api/projects", getP[ListParams](s.projectsList))
}

func (s *server) projectsList(params *ListParams) (any, error) {
	projects, err := s.listProjects(&params.Filters)
	if err != nil {
		return nil, err
	}

	err = s.sortProjects(projects, params.Sort, params.Asc)
	if err != nil {
		return nil, err
	}

	total := len(projects)

	projects = paginate(projects, params.Offset, params.Limit)

	var result []gin.H
	for _, p := range projects {
		result = append(result, s.toProject(p))
	}

	return gin.H{
		"data":  result,
		"total": total,
	}, nil
}
