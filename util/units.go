package util

// Unit is one magnitude tier of a byte-size unit table.
type Unit struct {
	Short string `json:"short"`
	Long  string `json:"long"`
}

// UnitTable pairs a division threshold with its ordered unit tiers, the
// first tier being one threshold above bytes.
type UnitTable struct {
	Thresh float64 `json:"thresh"`
	Units  []Unit  `json:"units"`
}

var siUnits = UnitTable{
	Thresh: 1000,
	Units: []Unit{
		{Short: "KB", Long: "Kilobyte"},
		{Short: "MB", Long: "Megabyte"},
		{Short: "GB", Long: "Gigabyte"},
		{Short: "TB", Long: "Terabyte"},
		{Short: "PB", Long: "Petabyte"},
		{Short: "EB", Long: "Exabyte"},
		{Short: "ZB", Long: "Zettabyte"},
		{Short: "YB", Long: "Yottabyte"},
	},
}

var iecUnits = UnitTable{
	Thresh: 1024,
	Units: []Unit{
		{Short: "KiB", Long: "Kibibyte"},
		{Short: "MiB", Long: "Mebibyte"},
		{Short: "GiB", Long: "Gibibyte"},
		{Short: "TiB", Long: "Tebibyte"},
		{Short: "PiB", Long: "Pebibyte"},
		{Short: "EiB", Long: "Exbibyte"},
		{Short: "ZiB", Long: "Zebibyte"},
		{Short: "YiB", Long: "Yobibyte"},
	},
}

// Units returns a copy of the SI (decimal, 1000) or IEC (binary, 1024) table.
func Units(si bool) UnitTable {
	t := unitTable(si)
	return UnitTable{Thresh: t.Thresh, Units: append([]Unit(nil), t.Units...)}
}

func unitTable(si bool) *UnitTable {
	if si {
		return &siUnits
	}
	return &iecUnits
}
