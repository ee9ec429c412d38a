package series

import "github.com/dnldd/candleplugin/shared"

// testConfig returns a field configuration binding each field to a column named after it.
func testConfig() shared.FieldConfig {
	return shared.FieldConfig{
		Source: "prices",
		Open:   "col-open",
		High:   "col-high",
		Low:    "col-low",
		Close:  "col-close",
		Date:   "col-date",
		Volume: "col-volume",
		Symbol: "col-symbol",
	}
}

// testStore returns a store holding the provided rows under the testConfig columns.
func testStore(rows ...[7]shared.Value) shared.Store {
	cfg := testConfig()
	store := make(shared.Store)
	for _, f := range shared.Fields {
		store[cfg.Column(f)] = make(shared.Column, 0, len(rows))
	}

	for _, r := range rows {
		for idx, f := range shared.Fields {
			id := cfg.Column(f)
			store[id] = append(store[id], r[idx])
		}
	}

	return store
}

// storeRows returns the rows of the store as tuples ordered like shared.Fields.
func storeRows(cfg shared.FieldConfig, store shared.Store) [][7]shared.Value {
	n := len(store.Column(cfg.Column(shared.Open)))
	rows := make([][7]shared.Value, n)
	for i := 0; i < n; i++ {
		for idx, f := range shared.Fields {
			rows[i][idx] = store.Column(cfg.Column(f))[i]
		}
	}

	return rows
}
