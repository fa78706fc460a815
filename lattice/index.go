package lattice

// Index is a sparse two level mapping column -> row -> tile. Keys may be
// negative, since tiles left of and above the origin get negative indices.
type Index map[int]map[int]*Triangle

func (ix Index) Get(column, row int) *Triangle {
	rows, ok := ix[column]
	if !ok {
		return nil
	}
	t, ok := rows[row]
	if !ok {
		return nil
	}
	return t
}

func (ix Index) put(t *Triangle) {
	rows, ok := ix[t.Column]
	if !ok {
		rows = make(map[int]*Triangle)
		ix[t.Column] = rows
	}
	rows[t.Row] = t
}

// Bounds returns the smallest and largest column and row in the index. An
// empty index reports all zeros.
func (ix Index) Bounds() (minColumn, maxColumn, minRow, maxRow int) {
	first := true
	for column, rows := range ix {
		for row := range rows {
			if first {
				minColumn, maxColumn, minRow, maxRow = column, column, row, row
				first = false
				continue
			}
			if column < minColumn {
				minColumn = column
			}
			if column > maxColumn {
				maxColumn = column
			}
			if row < minRow {
				minRow = row
			}
			if row > maxRow {
				maxRow = row
			}
		}
	}
	return
}
