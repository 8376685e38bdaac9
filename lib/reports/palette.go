package reports

// Flat UI palette used to tell series apart when they carry no color of
// their own. Tones too close to the white chart background are left out.
var seriesColors = []string{
	"#1abc9c",
	"#16a085",
	"#2ecc71",
	"#27ae60",
	"#3498db",
	"#2980b9",
	"#9b59b6",
	"#8e44ad",
	"#34495e",
	"#2c3e50",
	"#f1c40f",
	"#f39c12",
	"#e67e22",
	"#d35400",
	"#e74c3c",
	"#c0392b",
	"#95a5a6",
	"#7f8c8d",
}

// SeriesColor returns the color for the i-th series of a chart. Series
// are built in a deterministic order, so the same data always gets the
// same colors.
func SeriesColor(i int) string {
	return seriesColors[i%len(seriesColors)]
}
