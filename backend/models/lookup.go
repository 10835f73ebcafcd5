package models

import "encoding/json"

// LookupID is a foreign-key field as delivered by the collection backend.
// Depending on how a record was written, a lookup arrives either as a raw
// integer id or as an embedded partial record ({"Id": 3, "Name": "..."}).
// Decoding normalizes both forms to the raw id, so equality comparisons
// against plain ids are always safe. All foreign-key fields on models must
// use this type instead of normalizing at call sites.
type LookupID int

func (l LookupID) Int() int { return int(l) }

func (l *LookupID) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*l = LookupID(n)
		return nil
	}

	var embedded struct {
		ID   int    `json:"Id"`
		Name string `json:"Name"`
	}
	if err := json.Unmarshal(data, &embedded); err != nil {
		return err
	}
	*l = LookupID(embedded.ID)
	return nil
}

// MarshalJSON always emits the raw id form.
func (l LookupID) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(l))
}
