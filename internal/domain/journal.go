package domain

// Canonical column names shared by the journal and reference tables after
// schema normalization. The legacy store databases ship them in arbitrary
// casing; the normalizer maps whatever it finds onto these.
const (
	ColLine     = "LINE"
	ColPrice    = "PRICE"
	ColDescript = "DESCRIPT"
	ColDate     = "DATE"
	ColSale     = "SALE"
	ColCat      = "CAT"
	ColQty      = "QTY"
	ColAmt      = "AMT"
	ColCode     = "CODE"
	ColName     = "NAME"
)

// Line markers for the two-row sale encoding in the journal: a value row
// immediately followed by a tender/type row.
const (
	LineSaleAmount = "950"
	LineSaleType   = "980"
)

// CategoryInclusionCode marks the categories that are reportable.
const CategoryInclusionCode = "N"

// JournalRecord views a normalized record under the canonical journal
// fields. Row order in the journal is load-bearing: adjacency is the only
// signal that pairs a value row with its type row.
type JournalRecord struct {
	Record
}

// Line returns the line marker, or "" when absent.
func (j JournalRecord) Line() string {
	s, _ := j.Text(ColLine)
	return s
}

// Price returns the line price, or 0 when absent or null.
func (j JournalRecord) Price() float64 {
	f, _ := j.Number(ColPrice)
	return f
}

func (j JournalRecord) Descript() (string, bool) { return j.Text(ColDescript) }
func (j JournalRecord) Date() (string, bool)     { return j.Text(ColDate) }
func (j JournalRecord) Sale() (string, bool)     { return j.Text(ColSale) }
func (j JournalRecord) Cat() (string, bool)      { return j.Text(ColCat) }
func (j JournalRecord) Qty() (float64, bool)     { return j.Number(ColQty) }
func (j JournalRecord) Amt() (float64, bool)     { return j.Number(ColAmt) }
