package dataset

// Fixtures returns the mock datasets, keyed by logical path under dir.
func Fixtures(dir string) map[string]Dataset {
	dir = normalizeDir(dir)

	simple := [][]string{
		{"one", "two", "three", "four"},
		{"five", "six", "seven", "eight"},
		{"nine", "ten", "eleven", "twelve"},
	}

	big := make([][]string, len(simple))
	for i, row := range simple {
		for range 6 {
			big[i] = append(big[i], row...)
		}
	}

	return map[string]Dataset{
		dir + "simple.csv": {Rows: simple},
		dir + "header.csv": {
			Rows: [][]string{
				{"header1", "header2"},
				{"notaheader", "element"},
				{"another not-header", "final not-header"},
			},
			HasHeader: true,
		},
		dir + "imaginary.csv":         {Rows: [][]string{{"placeholder"}}},
		dir + "secretfolder/evil.csv": {Rows: [][]string{{"</tr><button>hacked, harharhar!</button>"}}},
		dir + "big.csv":               {Rows: big},
	}
}
