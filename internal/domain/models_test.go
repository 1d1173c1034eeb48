package domain

import (
	"reflect"
	"testing"
)

func TestSquadSentinelValues(t *testing.T) {
	checks := []struct {
		got  string
		want string
	}{
		{SquadTransferTotal, "TOT"},
		{SquadUnknown, "Unknown"},
		{PositionUnknown, "Unknown"},
	}

	for _, c := range checks {
		if c.got != c.want {
			t.Fatalf("expected %q got %q", c.want, c.got)
		}
	}
}

func TestPlayerJSONTags(t *testing.T) {
	type fieldCheck struct {
		name string
		tag  string
	}

	playerType := reflect.TypeOf(Player{})
	fields := []fieldCheck{
		{"Name", "name"},
		{"Squad", "squad"},
		{"Position", "position"},
		{"PrimaryPosition", "primaryPosition"},
		{"Age", "age"},
		{"Minutes", "minutes"},
		{"Stats", "stats"},
	}

	for _, fc := range fields {
		field, ok := playerType.FieldByName(fc.name)
		if !ok {
			t.Fatalf("missing field %s", fc.name)
		}
		if jsonTag := field.Tag.Get("json"); jsonTag != fc.tag {
			t.Fatalf("field %s expected json tag %s, got %s", fc.name, fc.tag, jsonTag)
		}
	}
}

func TestStatsJSONTags(t *testing.T) {
	statsType := reflect.TypeOf(Stats{})
	for i := 0; i < statsType.NumField(); i++ {
		field := statsType.Field(i)
		if field.Tag.Get("json") == "" {
			t.Fatalf("field %s missing json tag", field.Name)
		}
	}
}
