package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"Siapa Jungler ONIC?":          "siapa jungler onic",
		"  Klasemen MPL!!  ":           "klasemen mpl",
		"Jadwal\tMPL\nhari-ini":        "jadwal\tmpl\nhariini",
		"¿Qué?":                        "qu",
		"!!!":                          "",
		"RRQ🔥 vs EVOS":                 "rrq vs evos",
		"Alter Ego (AE) – roster 2026": "alter ego ae  roster 2026",
		"\ufeff":                       "",
		"\ufeff mpl \u3000":            "mpl",
		"jung\u0085ler onic":           "jungler onic",
		"rrq\u00a0vs\u2003evos":        "rrq\u00a0vs\u2003evos",
	}
	for in, want := range cases {
		assert.Equal(t, want, Normalize(in), "input %q", in)
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	inputs := []string{
		"", "   ", "Siapa Jungler ONIC?", "İstanbul ÀÉÎ", "a b", "\ufeffmpl\ufeff",
		"tab\tand\nnewline", "123 !@# abc", "ÆØÅ æøå", "MiXeD CaSe",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}
