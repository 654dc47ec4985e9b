package main

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/charcreate/internal/creation"
	"github.com/udisondev/charcreate/internal/data"
	"github.com/udisondev/charcreate/internal/model"
)

// batchFile is the YAML input of one CLI run.
type batchFile struct {
	Accounts []accountEntry     `yaml:"accounts"`
	Requests []creation.Request `yaml:"requests"`
}

type accountEntry struct {
	Login       string `yaml:"login"`
	AccessLevel int32  `yaml:"access_level"`
	Young       bool   `yaml:"young"`
	CharLimit   int    `yaml:"char_limit"`
}

func (a accountEntry) account() model.Account {
	return model.Account{
		Login:       a.Login,
		AccessLevel: model.AccessLevel(a.AccessLevel),
		Young:       a.Young,
		CharLimit:   a.CharLimit,
	}
}

// loadBatch reads a batch file and resolves every starting city by name.
func loadBatch(path string) (*batchFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading requests %s: %w", path, err)
	}
	var b batchFile
	if err := yaml.Unmarshal(raw, &b); err != nil {
		return nil, fmt.Errorf("parsing requests %s: %w", path, err)
	}
	for i := range b.Requests {
		city, err := resolveCity(b.Requests[i].City)
		if err != nil {
			return nil, fmt.Errorf("request %d: %w", i, err)
		}
		b.Requests[i].City = city
	}
	return &b, nil
}

// resolveCity fills a city given only by name from the starting city table.
// A city with explicit coordinates is kept as is; no city at all means New Haven.
func resolveCity(c data.City) (data.City, error) {
	if c.Location != (data.Point3D{}) {
		return c, nil
	}
	if c.Name == "" {
		return data.StartingCities[0], nil
	}
	city, ok := data.FindCity(c.Name)
	if !ok {
		return c, fmt.Errorf("unknown starting city %q", c.Name)
	}
	return city, nil
}

// summary is the YAML report of one creation attempt.
type summary struct {
	RequestID  string           `yaml:"request_id"`
	State      string           `yaml:"state"`
	Error      string           `yaml:"error,omitempty"`
	Name       string           `yaml:"name,omitempty"`
	Serial     uint32           `yaml:"serial,omitempty"`
	SlotFreed  bool             `yaml:"slot_freed,omitempty"`
	Profession int32            `yaml:"profession"`
	Stats      []int32          `yaml:"stats,flow"`
	Skills     map[string]int32 `yaml:"skills,omitempty"`
	Young      bool             `yaml:"young,omitempty"`
	Location   string           `yaml:"location,omitempty"`
	Worn       []string         `yaml:"worn,omitempty"`
	Packed     []string         `yaml:"packed,omitempty"`
}

func summarize(res *creation.Result, err error) summary {
	s := summary{}
	if res != nil {
		s.RequestID = res.RequestID
		s.State = res.State().String()
		s.Profession = res.Profession
		s.Stats = []int32{res.Stats.Str, res.Stats.Dex, res.Stats.Int}
		s.Serial = res.Serial
		s.SlotFreed = res.SlotCanceled
	}
	if err != nil {
		s.Error = err.Error()
		if errors.Is(err, creation.ErrAccountFull) || errors.Is(err, creation.ErrNoSession) {
			return s
		}
	}
	if res == nil || res.Entity == nil {
		return s
	}

	e := res.Entity
	s.Name = e.Name()
	s.Serial = e.Serial()
	s.Young = e.Young()
	s.Location = e.Location().String()

	skills := e.SkillsWithValue()
	if len(skills) > 0 {
		s.Skills = make(map[string]int32, len(skills))
		for skill, v := range skills {
			s.Skills[skill.String()] = v
		}
	}
	for _, it := range e.Inventory().EquippedItems() {
		s.Worn = append(s.Worn, it.Name())
	}
	if pack := e.Backpack(); pack != nil {
		for _, it := range pack.Items() {
			s.Packed = append(s.Packed, fmt.Sprintf("%s x%d", it.Name(), it.Amount()))
		}
	}
	sort.Strings(s.Worn)
	return s
}

// waitScheduler runs delayed funcs on timers and lets the CLI wait for them
// before exiting.
type waitScheduler struct {
	wg sync.WaitGroup
}

func (s *waitScheduler) AfterFunc(d time.Duration, f func()) {
	s.wg.Add(1)
	time.AfterFunc(d, func() {
		defer s.wg.Done()
		f()
	})
}

func (s *waitScheduler) Wait() {
	s.wg.Wait()
}
