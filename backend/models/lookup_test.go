package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupIDDecodesRawInt(t *testing.T) {
	var l LookupID
	err := json.Unmarshal([]byte(`3`), &l)
	assert.NoError(t, err)
	assert.Equal(t, 3, l.Int())
}

func TestLookupIDDecodesEmbeddedRecord(t *testing.T) {
	var l LookupID
	err := json.Unmarshal([]byte(`{"Id": 7, "Name": "프리미엄"}`), &l)
	assert.NoError(t, err)
	assert.Equal(t, 7, l.Int())
}

func TestLookupIDBothFormsCompareEqual(t *testing.T) {
	var raw, embedded LookupID
	assert.NoError(t, json.Unmarshal([]byte(`5`), &raw))
	assert.NoError(t, json.Unmarshal([]byte(`{"Id": 5, "Name": "x"}`), &embedded))
	assert.Equal(t, raw, embedded)
}

func TestLookupIDMarshalsAsRawID(t *testing.T) {
	data, err := json.Marshal(LookupID(12))
	assert.NoError(t, err)
	assert.Equal(t, `12`, string(data))
}

func TestLookupIDRejectsGarbage(t *testing.T) {
	var l LookupID
	assert.Error(t, json.Unmarshal([]byte(`"three"`), &l))
}

func TestUserDecodesNullAndEmbeddedTier(t *testing.T) {
	var users []User
	err := json.Unmarshal([]byte(`[
		{"Id": 1, "name": "김민준", "role": "member", "tier_id": 2},
		{"Id": 2, "name": "이서연", "role": "admin", "tier_id": {"Id": 3, "Name": "VIP"}},
		{"Id": 3, "name": "박지훈", "role": "guest", "tier_id": null}
	]`), &users)
	assert.NoError(t, err)
	assert.Len(t, users, 3)

	assert.Equal(t, 2, users[0].TierID.Int())
	assert.Equal(t, 3, users[1].TierID.Int())
	assert.Nil(t, users[2].TierID)
}
