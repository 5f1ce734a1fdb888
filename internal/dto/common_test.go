package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	want := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	for _, in := range []string{
		"2024-03-15",
		"2024-03-15T10:30:00Z",
		"2024-03-15T10:30:00.123Z",
		"2024-03-15T10:30:00",
		" 2024-03-15 ",
	} {
		got, err := ParseDate(in)
		require.NoError(t, err, in)
		assert.True(t, want.Equal(got), in)
	}

	_, err := ParseDate("15/03/2024")
	assert.Error(t, err)
}

func TestDate_JSON(t *testing.T) {
	var body struct {
		D *Date `json:"d"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"d":"2024-03-15T23:59:00Z"}`), &body))
	require.NotNil(t, body.D)

	out, err := json.Marshal(body.D)
	require.NoError(t, err)
	assert.JSONEq(t, `"2024-03-15"`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"d":"yesterday"}`), &body))
	assert.Error(t, json.Unmarshal([]byte(`{"d":20240315}`), &body))
}

func TestOptionalDate(t *testing.T) {
	var absent, null, set UpdateEmployeeRequest
	require.NoError(t, json.Unmarshal([]byte(`{}`), &absent))
	require.NoError(t, json.Unmarshal([]byte(`{"resign_date":null}`), &null))
	require.NoError(t, json.Unmarshal([]byte(`{"resign_date":"2024-05-01"}`), &set))

	assert.False(t, absent.ResignDate.Set)
	assert.True(t, null.ResignDate.Set)
	assert.True(t, null.ResignDate.Null)
	assert.True(t, set.ResignDate.Set)
	assert.False(t, set.ResignDate.Null)
	assert.Equal(t, 2024, set.ResignDate.Date.Year())
}

func TestCPF_NormalisesOnDecode(t *testing.T) {
	var req CredentialsRequest
	require.NoError(t, json.Unmarshal([]byte(`{"cpf":"123.456.789-01","password":"x"}`), &req))
	assert.Equal(t, "12345678901", req.CPF.String())
}

func TestRecordFilter_Parse(t *testing.T) {
	f, err := RecordFilter{EmployeeID: 3, From: "2024-01-01", To: "2024-01-31"}.Parse()
	require.NoError(t, err)
	assert.Equal(t, uint(3), f.EmployeeID)
	require.NotNil(t, f.From)
	require.NotNil(t, f.To)

	empty, err := RecordFilter{}.Parse()
	require.NoError(t, err)
	assert.Nil(t, empty.From)
	assert.Nil(t, empty.To)

	_, err = RecordFilter{From: "2024-02-01", To: "2024-01-01"}.Parse()
	assert.Error(t, err)

	_, err = RecordFilter{From: "nope"}.Parse()
	assert.Error(t, err)
}
