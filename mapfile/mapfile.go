// Package mapfile reads board definitions from semicolon separated text files.
//
//	continents:    continent_id;continent_name;army_bonus
//	countries:     country_id;country_name;continent_id
//	adjacency:     country_id;neighbour_id
//	figures:       card_number;figure_name
//	country cards: country_id;card_number
//
// Adjacency is directed; symmetric borders are declared in both directions.
package mapfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"teg/game"
)

// Files names the data files inside a directory. Figures and Cards may be
// empty when the game is played without cards.
type Files struct {
	Continents string
	Countries  string
	Adjacency  string
	Figures    string
	Cards      string
}

func DefaultFiles() Files {
	return Files{
		Continents: "continents.txt",
		Countries:  "countries.txt",
		Adjacency:  "country_connections.txt",
		Figures:    "figures.txt",
		Cards:      "country_cards.txt",
	}
}

// Data is everything loaded from a map directory.
type Data struct {
	Map   *game.Map
	Cards []game.Card
}

// ParseError locates a problem in a data file.
type ParseError struct {
	File string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %v", e.File, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Load reads the map, and the cards when both card files are named, from dir.
func Load(dir string, files Files) (*Data, error) {
	continents, err := os.Open(filepath.Join(dir, files.Continents))
	if err != nil {
		return nil, fmt.Errorf("failed to open continents file: %w", err)
	}
	defer continents.Close()

	countries, err := os.Open(filepath.Join(dir, files.Countries))
	if err != nil {
		return nil, fmt.Errorf("failed to open countries file: %w", err)
	}
	defer countries.Close()

	adjacency, err := os.Open(filepath.Join(dir, files.Adjacency))
	if err != nil {
		return nil, fmt.Errorf("failed to open adjacency file: %w", err)
	}
	defer adjacency.Close()

	m, err := parse(
		named{files.Continents, continents},
		named{files.Countries, countries},
		named{files.Adjacency, adjacency},
	)
	if err != nil {
		return nil, err
	}
	data := &Data{Map: m}

	if files.Figures == "" || files.Cards == "" {
		return data, nil
	}
	figures, err := os.Open(filepath.Join(dir, files.Figures))
	if err != nil {
		return nil, fmt.Errorf("failed to open figures file: %w", err)
	}
	defer figures.Close()

	cards, err := os.Open(filepath.Join(dir, files.Cards))
	if err != nil {
		return nil, fmt.Errorf("failed to open country cards file: %w", err)
	}
	defer cards.Close()

	data.Cards, err = parseCards(m, named{files.Figures, figures}, named{files.Cards, cards})
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Parse builds a map from the three board relations.
func Parse(continents, countries, adjacency io.Reader) (*game.Map, error) {
	return parse(
		named{"continents", continents},
		named{"countries", countries},
		named{"adjacency", adjacency},
	)
}

// ParseCards builds the country cards of m from the figure table and the
// country to figure assignment.
func ParseCards(m *game.Map, figures, assignments io.Reader) ([]game.Card, error) {
	return parseCards(m, named{"figures", figures}, named{"country cards", assignments})
}

type named struct {
	name string
	r    io.Reader
}

func parse(continents, countries, adjacency named) (*game.Map, error) {
	m := game.NewMap()

	err := readRecords(continents, 3, func(fields []string) error {
		ints, err := atoi(fields[0], fields[2])
		if err != nil {
			return err
		}
		_, err = m.AddContinent(ints[0], fields[1], ints[1])
		return err
	})
	if err != nil {
		return nil, err
	}

	err = readRecords(countries, 3, func(fields []string) error {
		ints, err := atoi(fields[0], fields[2])
		if err != nil {
			return err
		}
		_, err = m.AddCountry(ints[0], fields[1], ints[1])
		return err
	})
	if err != nil {
		return nil, err
	}

	err = readRecords(adjacency, 2, func(fields []string) error {
		ints, err := atoi(fields[0], fields[1])
		if err != nil {
			return err
		}
		return m.AddNeighbour(ints[0], ints[1])
	})
	if err != nil {
		return nil, err
	}

	if len(m.Countries) == 0 {
		return nil, fmt.Errorf("%s: %w", countries.name, game.ErrNoCountries)
	}
	return m, nil
}

var errDuplicateFigure = errors.New("duplicate figure number")
var errUnknownFigure = errors.New("unknown figure number")

func parseCards(m *game.Map, figures, assignments named) ([]game.Card, error) {
	byNumber := make(map[int]game.Figure)
	err := readRecords(figures, 2, func(fields []string) error {
		ints, err := atoi(fields[0])
		if err != nil {
			return err
		}
		if _, ok := byNumber[ints[0]]; ok {
			return fmt.Errorf("%w: %d", errDuplicateFigure, ints[0])
		}
		byNumber[ints[0]] = game.Figure{Number: ints[0], Name: fields[1]}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var cards []game.Card
	err = readRecords(assignments, 2, func(fields []string) error {
		ints, err := atoi(fields[0], fields[1])
		if err != nil {
			return err
		}
		country, ok := m.Country(ints[0])
		if !ok {
			return fmt.Errorf("%w: %d", game.ErrUnknownCountry, ints[0])
		}
		figure, ok := byNumber[ints[1]]
		if !ok {
			return fmt.Errorf("%w: %d", errUnknownFigure, ints[1])
		}
		cards = append(cards, game.Card{Country: country, Figure: figure})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cards, nil
}

// readRecords calls fn for every non-empty line of src, which must have
// exactly fields fields.
func readRecords(src named, fields int, fn func([]string) error) error {
	reader := csv.NewReader(src.r)
	reader.Comma = ';'
	reader.Comment = '#'
	reader.LazyQuotes = true
	reader.FieldsPerRecord = fields
	reader.TrimLeadingSpace = true

	for {
		record, err := reader.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				return &ParseError{File: src.name, Line: pe.Line, Err: pe.Err}
			}
			return fmt.Errorf("failed to read %s: %w", src.name, err)
		}
		for i := range record {
			record[i] = strings.TrimSpace(record[i])
		}
		if err := fn(record); err != nil {
			line, _ := reader.FieldPos(0)
			return &ParseError{File: src.name, Line: line, Err: err}
		}
	}
}

func atoi(fields ...string) ([]int, error) {
	ints := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", f)
		}
		ints[i] = n
	}
	return ints, nil
}
