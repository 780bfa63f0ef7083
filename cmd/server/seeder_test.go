package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestListSeeders(t *testing.T) {
	list := listSeeders()
	if len(list) == 0 {
		t.Fatal("listSeeders() returned no seeders")
	}
	if _, ok := getSeeder("stations"); !ok {
		t.Error("stations seeder not registered")
	}
}

func TestSelectSeeders(t *testing.T) {
	all, err := selectSeeders(nil)
	if err != nil {
		t.Fatalf("selectSeeders(nil) failed: %v", err)
	}
	if len(all) != len(listSeeders()) {
		t.Errorf("selectSeeders(nil) = %d seeders, want all", len(all))
	}

	one, err := selectSeeders([]string{"stations"})
	if err != nil || len(one) != 1 || one[0].Name() != "stations" {
		t.Errorf("selectSeeders(stations) = %v, %v", one, err)
	}

	if _, err := selectSeeders([]string{"chargers"}); err == nil {
		t.Error("selectSeeders(chargers) succeeded, want error")
	}
}

func TestStationSeeder_LoadEmbedded(t *testing.T) {
	s := &StationSeeder{}

	data, err := s.load()
	if err != nil {
		t.Fatalf("load() failed: %v", err)
	}
	if len(data.Stations) == 0 {
		t.Fatal("embedded seed file has no stations")
	}
	for _, st := range data.Stations {
		if err := st.Validate(); err != nil {
			t.Errorf("embedded station invalid: %v", err)
		}
	}
}

func TestStationSeeder_LoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stations.json")
	content := `{"stations":[{"name":"Depot","address":"1 Yard","city":"Leeds","connectors":2,"power_kw":22,"available":1}]}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write seed file: %v", err)
	}

	s := &StationSeeder{}
	s.SetFile(path)

	data, err := s.load()
	if err != nil {
		t.Fatalf("load() failed: %v", err)
	}
	if len(data.Stations) != 1 || data.Stations[0].City != "Leeds" {
		t.Errorf("stations = %+v", data.Stations)
	}
}

func TestStationSeeder_LoadErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.json")
	os.WriteFile(bad, []byte("{not json"), 0o644)

	for _, path := range []string{filepath.Join(dir, "missing.json"), bad} {
		s := &StationSeeder{}
		s.SetFile(path)
		if _, err := s.load(); err == nil {
			t.Errorf("load(%s) succeeded, want error", filepath.Base(path))
		}
	}
}

func TestSeedCmd_List(t *testing.T) {
	root := newRootCmd()

	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"seed", "--list"})

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() failed: %v", err)
	}
	if !strings.Contains(buf.String(), "stations") {
		t.Errorf("output = %q, want stations seeder", buf.String())
	}
}
