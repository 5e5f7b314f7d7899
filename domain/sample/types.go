package sample

// DataKind classifies a single entry
type DataKind string

const (
	KindNumeric DataKind = "numeric"
	KindChar    DataKind = "char"
	KindString  DataKind = "string"
)

// Entry is one classified input unit. Entries are created by the classifier
// and never modified afterwards.
type Entry struct {
	Raw   string   `json:"raw"`
	Kind  DataKind `json:"kind"`
	Value float64  `json:"value,omitempty"` // numeric value, only meaningful for KindNumeric
	IsInt bool     `json:"is_int,omitempty"`
	Int   int64    `json:"int,omitempty"` // integer value when IsInt
}

// Dataset is an ordered sequence of classified entries together with the
// derived encodings the statistical battery reads. The derived sequences are
// computed once at construction so evaluators share identical inputs.
type Dataset struct {
	entries []Entry
	kinds   []DataKind // distinct kinds in first-seen order

	bits    []uint8   // concatenated canonical bit encoding, one element per bit
	bytes   []byte    // concatenated canonical byte encoding
	numeric []float64 // per-entry numeric values; nil unless every entry is numeric
}

// NewDataset builds a dataset from classified entries, deriving the shared
// encodings. Entries must already be classified; the slice is not copied and
// must not be mutated by the caller afterwards.
func NewDataset(entries []Entry) *Dataset {
	ds := &Dataset{entries: entries}

	seen := map[DataKind]bool{}
	allNumeric := len(entries) > 0
	for _, e := range entries {
		if !seen[e.Kind] {
			seen[e.Kind] = true
			ds.kinds = append(ds.kinds, e.Kind)
		}
		if e.Kind != KindNumeric {
			allNumeric = false
		}
	}

	for _, e := range entries {
		enc := encodeEntry(e)
		ds.bytes = append(ds.bytes, enc...)
		ds.bits = appendBits(ds.bits, enc)
	}

	if allNumeric {
		ds.numeric = make([]float64, len(entries))
		for i, e := range entries {
			ds.numeric[i] = e.Value
		}
	}
	return ds
}

// Entries returns the classified entries in input order.
func (d *Dataset) Entries() []Entry {
	return d.entries
}

// Len returns the number of entries.
func (d *Dataset) Len() int {
	return len(d.entries)
}

// Kinds returns the distinct data kinds present, in first-seen order.
func (d *Dataset) Kinds() []DataKind {
	return d.kinds
}

// HasKind reports whether any entry has the given kind.
func (d *Dataset) HasKind(kind DataKind) bool {
	for _, k := range d.kinds {
		if k == kind {
			return true
		}
	}
	return false
}

// Mixed reports whether the dataset contains more than one data kind.
func (d *Dataset) Mixed() bool {
	return len(d.kinds) > 1
}

// Bits returns the concatenated canonical bit encoding of all entries.
// The slice is shared; callers must treat it as read-only.
func (d *Dataset) Bits() []uint8 {
	return d.bits
}

// Bytes returns the concatenated canonical byte encoding of all entries.
func (d *Dataset) Bytes() []byte {
	return d.bytes
}

// NumericValues returns one value per entry when the whole dataset is
// numeric, nil otherwise. Tests that require numeric input (such as
// Kolmogorov-Smirnov) check for nil rather than coercing.
func (d *Dataset) NumericValues() []float64 {
	return d.numeric
}

// BitProportion returns the fraction of one-bits in the encoding. This is the
// shared derived statistic the Runs test reads as its precondition.
func (d *Dataset) BitProportion() float64 {
	if len(d.bits) == 0 {
		return 0
	}
	ones := 0
	for _, b := range d.bits {
		if b == 1 {
			ones++
		}
	}
	return float64(ones) / float64(len(d.bits))
}
