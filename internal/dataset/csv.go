package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"pitchview/internal/domain"
)

// Identity columns required in every dataset alongside the stat columns.
const (
	colPlayer = "Player"
	colSquad  = "Squad"
	colPos    = "Pos"
	colAge    = "Age"
	colMin    = "Min"
)

// statColumns maps stat column headers to their Stats field, in catalog
// order.
var statColumns = []struct {
	name string
	set  func(*domain.Stats, float64)
}{
	{"Gls", func(s *domain.Stats, v float64) { s.Goals = v }},
	{"Ast", func(s *domain.Stats, v float64) { s.Assists = v }},
	{"xG", func(s *domain.Stats, v float64) { s.ExpectedGoals = v }},
	{"xAG", func(s *domain.Stats, v float64) { s.ExpectedAssists = v }},
	{"Sh", func(s *domain.Stats, v float64) { s.Shots = v }},
	{"KP", func(s *domain.Stats, v float64) { s.KeyPasses = v }},
	{"PrgP", func(s *domain.Stats, v float64) { s.ProgressivePasses = v }},
	{"PrgC", func(s *domain.Stats, v float64) { s.ProgressiveCarries = v }},
	{"Succ", func(s *domain.Stats, v float64) { s.SuccessfulDribbles = v }},
	{"TklW", func(s *domain.Stats, v float64) { s.TacklesWon = v }},
	{"Int", func(s *domain.Stats, v float64) { s.Interceptions = v }},
	{"SCA", func(s *domain.Stats, v float64) { s.ShotCreatingActions = v }},
	{"GCA", func(s *domain.Stats, v float64) { s.GoalCreatingActions = v }},
	{"Cmp%", func(s *domain.Stats, v float64) { s.PassCompletionPct = v }},
	{"SoT%", func(s *domain.Stats, v float64) { s.ShotsOnTargetPct = v }},
}

// RequiredColumns returns every column a dataset must carry. Column names are
// case sensitive; column order in the file is free.
func RequiredColumns() []string {
	out := []string{colPlayer, colSquad, colPos, colAge, colMin}
	for _, c := range statColumns {
		out = append(out, c.name)
	}
	return out
}

// ParseCSV decodes a delimited dataset into player records. The header is
// validated against the required schema before any row is read, numeric cells
// are coerced strictly, and the output is sorted by player name.
func ParseCSV(r io.Reader) ([]domain.Player, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.TrimSpace(h)] = i
	}

	var missing []string
	for _, name := range RequiredColumns() {
		if _, ok := idx[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaError{Missing: missing}
	}

	players := make([]domain.Player, 0, 64)
	row := 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", row+1, err)
		}
		row++

		p, err := mapRow(record, idx, row)
		if err != nil {
			return nil, err
		}
		players = append(players, p)
	}

	sort.Slice(players, func(i, j int) bool {
		return players[i].Name < players[j].Name
	})
	return players, nil
}

func mapRow(record []string, idx map[string]int, row int) (domain.Player, error) {
	cell := func(name string) string {
		i := idx[name]
		if i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	name := cell(colPlayer)
	if name == "" {
		return domain.Player{}, &ParseError{Row: row, Column: colPlayer, Value: "", Err: errors.New("empty player name")}
	}

	age, err := parseIntCell(cell(colAge), colAge, row)
	if err != nil {
		return domain.Player{}, err
	}
	minutes, err := parseIntCell(cell(colMin), colMin, row)
	if err != nil {
		return domain.Player{}, err
	}
	if minutes < 0 {
		return domain.Player{}, &ParseError{Row: row, Column: colMin, Value: cell(colMin), Err: errors.New("negative minutes")}
	}

	position := cell(colPos)
	p := domain.Player{
		Name:            name,
		Squad:           normalizeSquad(cell(colSquad)),
		Position:        position,
		PrimaryPosition: primaryPosition(position),
		Age:             age,
		Minutes:         minutes,
	}

	for _, c := range statColumns {
		v, err := parseFloatCell(cell(c.name), c.name, row)
		if err != nil {
			return domain.Player{}, err
		}
		c.set(&p.Stats, v)
	}
	return p, nil
}

func parseFloatCell(raw, column string, row int) (float64, error) {
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &ParseError{Row: row, Column: column, Value: raw, Err: err}
	}
	return v, nil
}

func parseIntCell(raw, column string, row int) (int, error) {
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &ParseError{Row: row, Column: column, Value: raw, Err: err}
	}
	return v, nil
}

// normalizeSquad maps missing and placeholder squad cells to the Unknown
// sentinel. Upstream exports write literal "nan" for squadless rows.
func normalizeSquad(squad string) string {
	if squad == "" || strings.EqualFold(squad, "nan") {
		return domain.SquadUnknown
	}
	return squad
}

// primaryPosition takes the first comma-separated token of a position cell.
func primaryPosition(position string) string {
	first := strings.TrimSpace(strings.Split(position, ",")[0])
	if first == "" {
		return domain.PositionUnknown
	}
	return first
}
