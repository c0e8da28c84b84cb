// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
)

// AmmoLibrary is a map to hold all ammo definitions, keyed by their ID.
var AmmoLibrary map[string]AmmoDefinition

// TargetLibrary is a map to hold all target definitions, keyed by their ID.
var TargetLibrary map[string]TargetDefinition

// MissionLibrary is a map to hold all mission definitions, keyed by their ID.
var MissionLibrary map[string]MissionDefinition

// LoadAmmoDefinitions reads the ammo configuration file and populates the AmmoLibrary.
func LoadAmmoDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read ammo definitions file: %w", err)
	}

	var ammoDefs []AmmoDefinition
	if err := json.Unmarshal(file, &ammoDefs); err != nil {
		return fmt.Errorf("failed to unmarshal ammo definitions: %w", err)
	}

	AmmoLibrary = make(map[string]AmmoDefinition)
	for _, def := range ammoDefs {
		AmmoLibrary[def.ID] = def
	}

	log.Printf("Loaded %d ammo definitions", len(AmmoLibrary))
	return nil
}

// LoadTargetDefinitions reads the target configuration file and populates the TargetLibrary.
func LoadTargetDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read target definitions file: %w", err)
	}

	var targetDefs []TargetDefinition
	if err := json.Unmarshal(file, &targetDefs); err != nil {
		return fmt.Errorf("failed to unmarshal target definitions: %w", err)
	}

	TargetLibrary = make(map[string]TargetDefinition)
	for _, def := range targetDefs {
		TargetLibrary[def.ID] = def
	}

	log.Printf("Loaded %d target definitions", len(TargetLibrary))
	return nil
}

// LoadMissionDefinitions reads the mission configuration file and populates the MissionLibrary.
func LoadMissionDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read mission definitions file: %w", err)
	}

	var missionDefs []MissionDefinition
	if err := json.Unmarshal(file, &missionDefs); err != nil {
		return fmt.Errorf("failed to unmarshal mission definitions: %w", err)
	}

	MissionLibrary = make(map[string]MissionDefinition)
	for _, def := range missionDefs {
		MissionLibrary[def.ID] = def
	}

	log.Printf("Loaded %d mission definitions", len(MissionLibrary))
	return nil
}
