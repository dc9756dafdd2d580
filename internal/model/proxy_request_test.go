package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProxyRequestList_Validate(t *testing.T) {
	var list ProxyRequestList
	body := `{"data":[{"id":"a","time":null,"processingTime":12.5},{"id":"b","time":1700000000}],"error":null}`
	require.NoError(t, json.Unmarshal([]byte(body), &list))
	require.NoError(t, Validate(&list))

	assert.Len(t, list.Data, 2)
	assert.Nil(t, list.Data[0].Time)
	assert.Equal(t, 12.5, *list.Data[0].ProcessingTime)
	assert.Nil(t, list.Error)
}

func TestProxyRequestList_ValidateRejects(t *testing.T) {
	tests := map[string]string{
		"missing id":     `{"data":[{"time":1}],"error":null}`,
		"duplicate id":   `{"data":[{"id":"a"},{"id":"a"}],"error":null}`,
		"negative time":  `{"data":[{"id":"a","processingTime":-1}],"error":null}`,
		"negative epoch": `{"data":[{"id":"a","time":-5}],"error":null}`,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			var list ProxyRequestList
			require.NoError(t, json.Unmarshal([]byte(body), &list))
			err := Validate(&list)
			require.Error(t, err)
			assert.NotEmpty(t, ValidationError(err))
		})
	}
}

func TestProxyRequestList_WrongTypes(t *testing.T) {
	var list ProxyRequestList
	err := json.Unmarshal([]byte(`{"data":[{"id":"a","time":"yesterday"}],"error":null}`), &list)
	assert.Error(t, err)
}

func TestFilterByID(t *testing.T) {
	records := []ProxyRequest{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	out := FilterByID(records, "b")
	assert.Equal(t, []ProxyRequest{{ID: "a"}, {ID: "c"}}, out)
	assert.Len(t, records, 3)

	assert.Equal(t, records, FilterByID(records, "missing"))
}
