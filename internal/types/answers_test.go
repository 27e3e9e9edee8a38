package types

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestAnswerMapString(t *testing.T) {
	cases := []struct {
		name   string
		m      AnswerMap
		key    string
		want   string
		wantOK bool
	}{
		{name: "present", m: AnswerMap{"jewelry": "goud"}, key: "jewelry", want: "goud", wantOK: true},
		{name: "trimmed", m: AnswerMap{"jewelry": "  goud  "}, key: "jewelry", want: "goud", wantOK: true},
		{name: "absent", m: AnswerMap{}, key: "jewelry", wantOK: false},
		{name: "empty_string", m: AnswerMap{"jewelry": "   "}, key: "jewelry", wantOK: false},
		{name: "wrong_type", m: AnswerMap{"jewelry": 7}, key: "jewelry", wantOK: false},
		{name: "nil_value", m: AnswerMap{"jewelry": nil}, key: "jewelry", wantOK: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := tc.m.String(tc.key)
			if ok != tc.wantOK || got != tc.want {
				t.Fatalf("String(%q)=(%q,%v), want (%q,%v)", tc.key, got, ok, tc.want, tc.wantOK)
			}
		})
	}
}

func TestAnswerMapStringList(t *testing.T) {
	cases := []struct {
		name string
		m    AnswerMap
		key  string
		want []string
	}{
		{name: "string_slice", m: AnswerMap{"goals": []string{"werk", "weekend"}}, key: "goals", want: []string{"werk", "weekend"}},
		{name: "interface_slice", m: AnswerMap{"goals": []interface{}{"werk", 3, "avond"}}, key: "goals", want: []string{"werk", "avond"}},
		{name: "single_string", m: AnswerMap{"goals": "werk"}, key: "goals", want: []string{"werk"}},
		{name: "absent", m: AnswerMap{}, key: "goals", want: nil},
		{name: "blank_entries_dropped", m: AnswerMap{"goals": []string{" ", "werk"}}, key: "goals", want: []string{"werk"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.m.StringList(tc.key)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("StringList(%q)=%v, want %v", tc.key, got, tc.want)
			}
		})
	}
}

func TestAnswerMapStringListAfterJSONDecode(t *testing.T) {
	// Handler payloads arrive through encoding/json, which decodes arrays
	// as []interface{}.
	var m AnswerMap
	if err := json.Unmarshal([]byte(`{"goals":["werk","avond"],"jewelry":"goud"}`), &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got := m.StringList("goals"); !reflect.DeepEqual(got, []string{"werk", "avond"}) {
		t.Fatalf("StringList after decode=%v", got)
	}
	if got, ok := m.String("jewelry"); !ok || got != "goud" {
		t.Fatalf("String after decode=(%q,%v)", got, ok)
	}
}

func TestAnswerMapHasSignal(t *testing.T) {
	cases := []struct {
		name string
		m    AnswerMap
		want bool
	}{
		{name: "empty", m: AnswerMap{}, want: false},
		{name: "only_blanks", m: AnswerMap{"a": "", "b": []string{}, "c": nil}, want: false},
		{name: "string_value", m: AnswerMap{"jewelry": "goud"}, want: true},
		{name: "list_value", m: AnswerMap{"goals": []string{"werk"}}, want: true},
		{name: "record_value", m: AnswerMap{"sizes": map[string]interface{}{"top": "M"}}, want: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.m.HasSignal(); got != tc.want {
				t.Fatalf("HasSignal()=%v, want %v", got, tc.want)
			}
		})
	}
}
