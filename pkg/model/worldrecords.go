package model

type RecordTables struct {
	Male   []RawRecord
	Female []RawRecord
}

// ByCategory returns the table for a reference category, nil otherwise
func (t RecordTables) ByCategory(c Category) []RawRecord {
	switch c {
	case CategoryMale:
		return t.Male
	case CategoryFemale:
		return t.Female
	case CategoryMine, CategoryRival:
		return nil
	}
	return nil
}

// Find returns the record at exactly distance d
func (t RecordTables) Find(c Category, d float64) (RawRecord, bool) {
	for _, r := range t.ByCategory(c) {
		if r.Distance == d {
			return r, true
		}
	}
	return RawRecord{}, false
}

// WorldRecords holds the outdoor world records as of 2024.
// Callers must not modify the slices.
var WorldRecords = RecordTables{
	Male: []RawRecord{
		{Distance: 100, Name: "Usain Bolt", Year: 2009, Time: "9.58"},
		{Distance: 200, Name: "Usain Bolt", Year: 2009, Time: "19.19"},
		{Distance: 400, Name: "Wayde van Niekerk", Year: 2016, Time: "43.03"},
		{Distance: 800, Name: "David Rudisha", Year: 2012, Time: "1:40.91"},
		{Distance: 1000, Name: "Noah Ngeny", Year: 1999, Time: "2:11.96"},
		{Distance: 1500, Name: "Hicham El Guerrouj", Year: 1998, Time: "3:26.00"},
		{Distance: 5000, Name: "Joshua Cheptegei", Year: 2020, Time: "12:35.36"},
		{Distance: 10000, Name: "Joshua Cheptegei", Year: 2020, Time: "26:11.00"},
		{Distance: 21097.5, Name: "Jacob Kiplimo", Year: 2021, Time: "57:31"},
		{Distance: 42195, Name: "Kelvin Kiptum", Year: 2023, Time: "2:00:35"},
	},
	Female: []RawRecord{
		{Distance: 100, Name: "Florence Griffith-Joyner", Year: 1988, Time: "10.49"},
		{Distance: 200, Name: "Florence Griffith-Joyner", Year: 1988, Time: "21.34"},
		{Distance: 400, Name: "Marita Koch", Year: 1985, Time: "47.60"},
		{Distance: 800, Name: "Jarmila Kratochvílová", Year: 1983, Time: "1:53.28"},
		{Distance: 1000, Name: "Svetlana Masterkova", Year: 1996, Time: "2:28.98"},
		{Distance: 1500, Name: "Faith Kipyegon", Year: 2023, Time: "3:49.04"},
		{Distance: 5000, Name: "Faith Kipyegon", Year: 2023, Time: "14:05.20"},
		{Distance: 10000, Name: "Beatrice Chebet", Year: 2024, Time: "28:54.14"},
		{Distance: 21097.5, Name: "Ruth Chepngetich", Year: 2024, Time: "1:04:16"},
		{Distance: 42195, Name: "Ruth Chepngetich", Year: 2024, Time: "2:09:56"},
	},
}
