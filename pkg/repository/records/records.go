// Package records persists the user record sets in a yaml file.
package records

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/mpapenbr/paceviz/log"
	"github.com/mpapenbr/paceviz/pkg/model"
	"github.com/mpapenbr/paceviz/pkg/racetime"
)

var (
	ErrInvalidRole     = errors.New("role must be mine or rival")
	ErrInvalidDistance = errors.New("distance must be positive")
)

type (
	RecordSet struct {
		Name    string              `yaml:"name,omitempty"`
		Records model.UserRecordSet `yaml:"records,omitempty"`
	}
	fileData struct {
		Mine  RecordSet `yaml:"mine"`
		Rival RecordSet `yaml:"rival"`
	}
	Store struct {
		path string
		data fileData
		l    *log.Logger
	}
	Entry struct {
		Distance float64
		Label    string
		Time     string
	}
)

// Load reads the store from path. A missing file yields an empty store.
func Load(path string) (*Store, error) {
	s := &Store{path: path, l: log.Default().Named("records")}
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		s.l.Debug("no records file, starting empty", log.String("path", path))
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read records %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &s.data); err != nil {
		return nil, fmt.Errorf("parse records %s: %w", path, err)
	}
	return s, nil
}

// Save writes the store to its file, creating the directory if needed.
func (s *Store) Save() error {
	raw, err := yaml.Marshal(&s.data)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return err
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return err
	}
	s.l.Debug("records saved", log.String("path", s.path))
	return nil
}

func (s *Store) Path() string {
	return s.path
}

// Records returns a copy of the record set of role
func (s *Store) Records(role model.Category) (model.UserRecordSet, error) {
	rs, err := s.set(role)
	if err != nil {
		return nil, err
	}
	ret := make(model.UserRecordSet, len(rs.Records))
	for k, v := range rs.Records {
		ret[k] = v
	}
	return ret, nil
}

func (s *Store) Name(role model.Category) string {
	rs, err := s.set(role)
	if err != nil {
		return ""
	}
	return rs.Name
}

func (s *Store) SetName(role model.Category, name string) error {
	rs, err := s.set(role)
	if err != nil {
		return err
	}
	rs.Name = strings.TrimSpace(name)
	return nil
}

// Set stores time t for distance. A blank time removes the entry.
func (s *Store) Set(role model.Category, distance float64, t string) error {
	rs, err := s.set(role)
	if err != nil {
		return err
	}
	if !(distance > 0) {
		return fmt.Errorf("%w: %v", ErrInvalidDistance, distance)
	}
	key := model.DistanceKey(distance)
	t = strings.TrimSpace(t)
	if t == "" {
		delete(rs.Records, key)
		return nil
	}
	if err := racetime.Validate(t); err != nil {
		return err
	}
	if rs.Records == nil {
		rs.Records = model.UserRecordSet{}
	}
	rs.Records[key] = t
	return nil
}

// Clear removes the entry for distance, reports whether there was one
func (s *Store) Clear(role model.Category, distance float64) (bool, error) {
	rs, err := s.set(role)
	if err != nil {
		return false, err
	}
	key := model.DistanceKey(distance)
	_, ok := rs.Records[key]
	delete(rs.Records, key)
	return ok, nil
}

func (s *Store) ClearAll(role model.Category) error {
	rs, err := s.set(role)
	if err != nil {
		return err
	}
	rs.Records = nil
	return nil
}

// Merge adds all valid entries of set, returns the number of stored entries
// and the keys that were skipped. Blank times are absent values, they neither
// remove an existing entry nor count as stored.
func (s *Store) Merge(role model.Category, set model.UserRecordSet) (int, []string, error) {
	if _, err := s.set(role); err != nil {
		return 0, nil, err
	}
	stored := 0
	skipped := []string{}
	keys := lo.Keys(set)
	sort.Strings(keys)
	for _, k := range keys {
		if strings.TrimSpace(set[k]) == "" {
			continue
		}
		d, err := strconv.ParseFloat(strings.TrimSpace(k), 64)
		if err == nil {
			err = s.Set(role, d, set[k])
		}
		if err != nil {
			s.l.Warn("skipping entry", log.String("key", k), log.ErrorField(err))
			skipped = append(skipped, k)
			continue
		}
		stored++
	}
	return stored, skipped, nil
}

// Entries lists the entries of role ordered by distance. Standard distances
// come first, other distances after them.
func (s *Store) Entries(role model.Category) ([]Entry, error) {
	rs, err := s.set(role)
	if err != nil {
		return nil, err
	}
	ret := make([]Entry, 0, len(rs.Records))
	for k, v := range rs.Records {
		d, err := strconv.ParseFloat(k, 64)
		if err != nil {
			continue
		}
		ret = append(ret, Entry{Distance: d, Label: model.DisplayDistance(d), Time: v})
	}
	rank := func(d float64) int {
		if i := lo.IndexOf(model.StandardDistances, d); i >= 0 {
			return i
		}
		return len(model.StandardDistances)
	}
	sort.SliceStable(ret, func(i, j int) bool {
		ri, rj := rank(ret[i].Distance), rank(ret[j].Distance)
		if ri != rj {
			return ri < rj
		}
		return ret[i].Distance < ret[j].Distance
	})
	return ret, nil
}

func (s *Store) set(role model.Category) (*RecordSet, error) {
	switch role {
	case model.CategoryMine:
		return &s.data.Mine, nil
	case model.CategoryRival:
		return &s.data.Rival, nil
	case model.CategoryMale, model.CategoryFemale:
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidRole, role)
}
