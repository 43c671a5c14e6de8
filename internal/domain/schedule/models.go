package schedule

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Match is a single fixture. Date is kept exactly as stored upstream and is
// compared by string equality.
type Match struct {
	Date  string `json:"date" yaml:"date"`
	Team1 string `json:"team1" yaml:"team1"`
	Team2 string `json:"team2" yaml:"team2"`
}

// Fixtures is the flattened schedule. It decodes from either a list of
// matches or a mapping of group name to matches; groups are flattened in
// document order and a match without a date inherits its group key.
type Fixtures []Match

// On returns the matches whose date equals date exactly.
func (f Fixtures) On(date string) []Match {
	var out []Match
	for _, m := range f {
		if m.Date == date {
			out = append(out, m)
		}
	}
	return out
}

func (f *Fixtures) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = nil
		return nil
	}

	switch data[0] {
	case '[':
		var list []Match
		if err := json.Unmarshal(data, &list); err != nil {
			return err
		}
		*f = list
		return nil
	case '{':
		return f.decodeJSONGroups(data)
	default:
		return fmt.Errorf("schedule: expected list or mapping, got %q", data[0])
	}
}

func (f *Fixtures) decodeJSONGroups(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	if _, err := dec.Token(); err != nil {
		return err
	}

	var out Fixtures
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("schedule: unexpected group key %v", tok)
		}
		var group []Match
		if err := dec.Decode(&group); err != nil {
			return fmt.Errorf("schedule group %q: %w", key, err)
		}
		out = append(out, inheritDate(key, group)...)
	}
	*f = out
	return nil
}

func (f *Fixtures) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var list []Match
		if err := node.Decode(&list); err != nil {
			return err
		}
		*f = list
		return nil
	case yaml.MappingNode:
		var out Fixtures
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i].Value
			var group []Match
			if err := node.Content[i+1].Decode(&group); err != nil {
				return fmt.Errorf("schedule group %q: %w", key, err)
			}
			out = append(out, inheritDate(key, group)...)
		}
		*f = out
		return nil
	default:
		return fmt.Errorf("schedule: expected list or mapping at line %d", node.Line)
	}
}

func inheritDate(key string, group []Match) []Match {
	for i := range group {
		if group[i].Date == "" {
			group[i].Date = key
		}
	}
	return group
}
