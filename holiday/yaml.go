// SPDX-License-Identifier: MIT

package holiday

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v2"

	"github.com/katalvlaran/lvcal/daycount"
)

// Definition is the YAML form of a calendar.
//
//	name: fr
//	holidays:
//	  - name: christmas
//	    kind: fixed
//	    month: 12
//	    day: 25
//	  - name: easter-monday
//	    kind: easter
//	    offset: 1
//	    to: "2030-01-01"
type Definition struct {
	Name     string            `yaml:"name" validate:"required"`
	Holidays []EntryDefinition `yaml:"holidays" validate:"required,min=1,dive"`
}

// EntryDefinition is the YAML form of one calendar entry. Fields not used by
// Kind are ignored.
type EntryDefinition struct {
	Name    string   `yaml:"name" validate:"required"`
	Kind    string   `yaml:"kind" validate:"required,oneof=fixed easter julian-easter fixed-weekday"`
	Month   int      `yaml:"month" validate:"omitempty,min=1,max=12"`
	Day     int      `yaml:"day" validate:"omitempty,min=1,max=31"`
	Offset  int      `yaml:"offset" validate:"min=-300,max=300"`
	Week    int      `yaml:"week" validate:"omitempty,min=-5,max=5"`
	Weekday string   `yaml:"weekday" validate:"omitempty,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	Weight  *float64 `yaml:"weight" validate:"omitempty,gt=0"`
	From    string   `yaml:"from" validate:"omitempty,datetime=2006-01-02"`
	To      string   `yaml:"to" validate:"omitempty,datetime=2006-01-02"`
}

var validate = validator.New()

var weekdayNames = map[string]int{
	"monday":    daycount.Monday,
	"tuesday":   daycount.Tuesday,
	"wednesday": daycount.Wednesday,
	"thursday":  daycount.Thursday,
	"friday":    daycount.Friday,
	"saturday":  daycount.Saturday,
	"sunday":    daycount.Sunday,
}

// LoadDefinition decodes a YAML Definition from r without validating it.
// Errors: ErrInvalidDefinition, wrapping the decode failure.
func LoadDefinition(r io.Reader) (Definition, error) {
	var def Definition
	if err := yaml.NewDecoder(r).Decode(&def); err != nil {
		return Definition{}, fmt.Errorf("LoadDefinition: %w: %v", ErrInvalidDefinition, err)
	}

	return def, nil
}

// LoadCalendar decodes a YAML Definition from r and builds its calendar.
// Errors: ErrInvalidDefinition, wrapping the decode or validation failure.
func LoadCalendar(r io.Reader) (*Calendar, error) {
	def, err := LoadDefinition(r)
	if err != nil {
		return nil, err
	}

	return def.Calendar()
}

// Calendar validates def and builds its calendar.
// Errors: ErrInvalidDefinition.
func (def Definition) Calendar() (*Calendar, error) {
	if err := validate.Struct(def); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, len(verrs))
			for i, fe := range verrs {
				msgs[i] = fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag())
			}
			return nil, fmt.Errorf("Definition.Calendar: %w: %s", ErrInvalidDefinition, strings.Join(msgs, "; "))
		}
		return nil, fmt.Errorf("Definition.Calendar: %w: %v", ErrInvalidDefinition, err)
	}

	b := NewBuilder()
	for _, h := range def.Holidays {
		e, err := h.entry()
		if err != nil {
			return nil, fmt.Errorf("Definition.Calendar(%s): %w: %v", h.Name, ErrInvalidDefinition, err)
		}
		if err = b.AddEntry(e); err != nil {
			return nil, fmt.Errorf("Definition.Calendar(%s): %w: %v", h.Name, ErrInvalidDefinition, err)
		}
	}

	return b.Build(), nil
}

func (h EntryDefinition) entry() (Entry, error) {
	var day SpecialDay
	switch h.Kind {
	case "fixed":
		day = Fixed(h.Month, h.Day)
	case "easter":
		day = EasterRelated(h.Offset)
	case "julian-easter":
		day = JulianEasterRelated(h.Offset)
	case "fixed-weekday":
		w, ok := weekdayNames[h.Weekday]
		if !ok {
			return Entry{}, fmt.Errorf("weekday %q", h.Weekday)
		}
		day = FixedWeekday(h.Week, w, h.Month)
	}
	if h.Weight != nil {
		day = day.WithWeight(*h.Weight)
	}

	var v Validity
	var err error
	if h.From != "" {
		if v.Start, err = time.Parse(time.DateOnly, h.From); err != nil {
			return Entry{}, err
		}
	}
	if h.To != "" {
		if v.End, err = time.Parse(time.DateOnly, h.To); err != nil {
			return Entry{}, err
		}
	}

	return Entry{Name: h.Name, Day: day, Validity: v}, nil
}
