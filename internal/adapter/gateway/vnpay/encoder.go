package vnpay

import (
	"net/url"
	"sort"
	"strings"
)

// Pair is a percent-encoded query parameter.
type Pair struct {
	Key   string
	Value string
}

// Canonicalize encodes every key and value with query escaping (space as '+')
// and sorts the result by the encoded key. The input map is not modified.
func Canonicalize(params map[string]string) []Pair {
	pairs := make([]Pair, 0, len(params))
	for k, v := range params {
		pairs = append(pairs, Pair{
			Key:   url.QueryEscape(k),
			Value: url.QueryEscape(v),
		})
	}
	sort.Slice(pairs, func(i, j int) bool {
		return pairs[i].Key < pairs[j].Key
	})
	return pairs
}

// Encode joins already encoded pairs as key=value separated by '&'.
func Encode(pairs []Pair) string {
	var sb strings.Builder
	for i, p := range pairs {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(p.Key)
		sb.WriteByte('=')
		sb.WriteString(p.Value)
	}
	return sb.String()
}

// CanonicalString is the signing input for a parameter map.
func CanonicalString(params map[string]string) string {
	return Encode(Canonicalize(params))
}
