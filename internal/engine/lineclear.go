package engine

// Line clearing is a two-phase commit driven by two board flags:
//
//	checkForClear      set when a piece locks; full rows are marked and
//	                   recolored so the frontend can flash them.
//	rowsPendingRemoval set by the mark phase; the marked rows are removed
//	                   on the next gravity tick and the score is credited.
//
// The tick between the two phases is the flash delay.

// detectClears runs the mark phase if a lock requested it. Returns the
// number of rows marked.
func (b *Board) detectClears() int {
	if !b.checkForClear {
		return 0
	}
	b.checkForClear = false

	rows := b.grid.FullRows()
	for _, row := range rows {
		b.grid.MarkRow(row, b.settings.FlashColor)
	}
	if len(rows) > 0 {
		b.rowsPendingRemoval = true
	}
	return len(rows)
}

// removeMarked runs the removal phase if rows are waiting. Returns the
// number of rows removed, which is also what the score grows by.
func (b *Board) removeMarked() int {
	if !b.rowsPendingRemoval {
		return 0
	}
	b.rowsPendingRemoval = false

	removed := b.grid.Collapse()
	b.score += removed
	return removed
}
