package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSON(t *testing.T) {
	d := NewDate(2025, time.December, 5)
	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2025-12-05"`, string(b))

	var back Date
	require.NoError(t, json.Unmarshal(b, &back))
	assert.True(t, back.Equal(d.Time))

	assert.Error(t, json.Unmarshal([]byte(`"05/12/2025"`), &back))
	assert.Error(t, json.Unmarshal([]byte(`20251205`), &back))
}

func TestDateScan(t *testing.T) {
	tests := []struct {
		name string
		src  interface{}
		want string
		err  bool
	}{
		{"time keeps the calendar day", time.Date(2019, 5, 1, 23, 30, 0, 0, time.FixedZone("x", 3600)), "2019-05-01", false},
		{"string", "2006-10-09", "2006-10-09", false},
		{"timestamp text", []byte("2006-10-09T00:00:00Z"), "2006-10-09", false},
		{"garbage", "soon", "", true},
		{"unsupported", 42, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			err := d.Scan(tt.src)
			if tt.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.String())
		})
	}

	v, err := NewDate(2019, time.May, 1).Value()
	require.NoError(t, err)
	assert.Equal(t, "2019-05-01", v)
}

func TestOptional(t *testing.T) {
	var up TenantUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Kim","email":null}`), &up))

	assert.Equal(t, Optional[string]{Value: "Kim", Set: true}, up.Name)
	assert.Equal(t, Optional[string]{Set: true, Null: true}, up.Email)
	assert.False(t, up.Phone.Set)

	phone, email := "0700", "old@example.com"
	tenant := Tenant{Name: "Sam", Phone: &phone, Email: &email}
	up.Name.Apply(&tenant.Name)
	up.Phone.ApplyPtr(&tenant.Phone)
	up.Email.ApplyPtr(&tenant.Email)

	assert.Equal(t, "Kim", tenant.Name)
	require.NotNil(t, tenant.Phone)
	assert.Equal(t, "0700", *tenant.Phone)
	assert.Nil(t, tenant.Email)
}

func TestOptionalNullLeavesRequiredField(t *testing.T) {
	name := "Sam"
	Optional[string]{Set: true, Null: true}.Apply(&name)
	assert.Equal(t, "Sam", name)
}

func TestTenancyValidRange(t *testing.T) {
	start := NewDate(2020, time.January, 1)
	same := start
	before := NewDate(2019, time.December, 31)

	assert.True(t, (&Tenancy{StartDate: start}).ValidRange())
	assert.True(t, (&Tenancy{StartDate: start, EndDate: &same}).ValidRange())
	assert.False(t, (&Tenancy{StartDate: start, EndDate: &before}).ValidRange())
}

func TestTenancyUpdateApply(t *testing.T) {
	end := NewDate(2025, time.November, 28)
	tenancy := Tenancy{StartDate: NewDate(2006, time.October, 9), EndDate: &end, Status: "Vacant", PropertyID: 2}

	var up TenancyUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"end_date":null,"tenancy_status":"Tenanted"}`), &up))
	up.Apply(&tenancy)

	assert.Nil(t, tenancy.EndDate)
	assert.Equal(t, "Tenanted", tenancy.Status)
	assert.Equal(t, int64(2), tenancy.PropertyID)
}

func TestNewEvent(t *testing.T) {
	e, err := NewEvent("tenant", 7, ActionCreated, map[string]interface{}{"name": "Sam"})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, e.ID)
	assert.Equal(t, "tenant", e.Entity)
	assert.Equal(t, int64(7), e.EntityID)
	assert.Equal(t, ActionCreated, e.Action)
	assert.JSONEq(t, `{"name":"Sam"}`, string(e.Payload))
	assert.Equal(t, time.UTC, e.OccurredAt.Location())
}
