package dataset

// Records returns the rows as JSON-friendly maps in insertion order. The
// index appears under its column name; missing cells appear as nil.
func (d *Dataset) Records() []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(d.keys))
	for _, key := range d.keys {
		rec := make(map[string]interface{}, len(d.columns)+1)
		rec[d.index] = key
		for _, col := range d.columns {
			rec[col] = d.rows[key][col].Interface()
		}
		out = append(out, rec)
	}
	return out
}
