package table

import (
	"fmt"

	"github.com/dshills/tablegrid/internal/renderer/buffer"
)

// diagnose records inconsistencies between the offset, the reported
// count and the iterated rows. With debug set they are also logged and
// drawn over the table.
func (t *Table) diagnose(p *pass, buf *buffer.Buffer) {
	st := p.state
	if p.insaneOffset {
		st.diagnostics = append(st.diagnostics, fmt.Sprintf(
			"table: offset %d past the end, rows %d, iterated rows %d, regime %s",
			st.vscroll.Offset(), st.rows, st.countedRows, st.regime))
	}
	if st.regime == regimeCounted && st.reportedRows != st.countedRows {
		st.diagnostics = append(st.diagnostics, fmt.Sprintf(
			"table: reported rows %d, iterated rows %d, regime %s",
			st.reportedRows, st.countedRows, st.regime))
	}

	if !t.debug || len(st.diagnostics) == 0 {
		return
	}

	area := st.tableArea
	buf.SetStyle(area, invalidStyle)
	for i, msg := range st.diagnostics {
		t.logger.Warn("%s", msg)
		if i < area.Height {
			buf.SetStringN(area.X, area.Y+i, msg, area.Width, invalidStyle)
		}
	}
}
