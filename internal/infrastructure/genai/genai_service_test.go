package genai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name, in, want string
	}{
		{"plain", `{"a":1}`, `{"a":1}`},
		{"fenced", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounded", `Sure! {"a":{"b":2}} Hope this helps.`, `{"a":{"b":2}}`},
		{"braces inside strings", `{"note":"use { and } carefully"}`, `{"note":"use { and } carefully"}`},
		{"escaped quotes", `{"note":"say \"hi\" {now}"}`, `{"note":"say \"hi\" {now}"}`},
		{"no object", "tidak ada data", "tidak ada data"},
		{"unbalanced", `{"a":1`, `{"a":1`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractJSONObject(tt.in))
		})
	}
}

func TestParseReceiptAnswer(t *testing.T) {
	raw := "```json\n" +
		`{"storeName":"Toko Maju","date":"2026-08-30","items":[{"name":"Gula","qty":2,"price":26000}],"total":52000}` +
		"\n```"

	scan, err := parseReceiptAnswer(raw)

	require.NoError(t, err)
	assert.Equal(t, "Toko Maju", scan.StoreName)
	assert.Equal(t, "2026-08-30", scan.Date)
	require.Len(t, scan.Items, 1)
	assert.Equal(t, int64(2), scan.Items[0].Qty)
	assert.Equal(t, int64(52000), scan.Total)
	assert.Equal(t, raw, scan.Raw)
}

func TestParseReceiptAnswerInvalid(t *testing.T) {
	_, err := parseReceiptAnswer("maaf, gambar tidak terbaca")
	assert.Error(t, err)
}
