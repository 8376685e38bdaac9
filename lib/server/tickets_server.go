package server

import (
	"github.com/gin-gonic/gin"
)

func (s *server) initTickets(r *gin.Engine) {
	r.GET("/api/tickets", getP[ListParams](s.ticketsList))
}

func (s *server) ticketsList(params *ListParams) (any, error) {
	tickets, err := s.listTickets(&params.Filters)
	if err != nil {
		return nil, err
	}

	err = s.sortTickets(tickets, params.Sort, params.Asc)
	if err != nil {
		return nil, err
	}

	total := len(tickets)

	tickets = paginate(tickets, params.Offset, params.Limit)

	var result []gin.H
	for _, t := range tickets {
		result = append(result, s.toTicket(t))
	}

	return gin.H{
		"data":  result,
		"total": total,
	}, nil
}
