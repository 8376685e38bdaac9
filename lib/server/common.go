package server

type Filters struct {
	FilterProject string `form:"proj"`
	FilterTicket  string `form:"ticket"`
}

type ListParams struct {
	GridParams
	Filters
}

type StatsParams struct {
	Filters
}

type ResolvedParams struct {
	Filters

	By   string `form:"by"`
	Year int    `form:"year"`
}
