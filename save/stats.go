package save

import (
	"fmt"
	"math"
	"os"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/azurelit/groundvm/op"
	"github.com/azurelit/groundvm/vm"
)

// Stats sidecar: a human-readable JSON file next to the binary save,
// updated in place so external keys written by tools survive.

func round2(x float64) float64 { return math.Round(x*100) / 100 }

func readVar(v *vm.VM, name string) int64 {
	desc, ok := op.VariableByName(name)
	if !ok {
		return 0
	}
	val, err := v.Values.Read(desc.ID, 0)
	if err != nil {
		return 0
	}
	return val
}

// UpdateStats overlays the VM's progression counters onto the JSON
// document at path, creating it when missing.
func UpdateStats(v *vm.VM, path string) error {
	data, _ := os.ReadFile(path)
	if len(data) == 0 {
		data = []byte(`{}`)
	}

	playMinutes := round2(float64(readVar(v, "PLAY_TIME")) / 60.0)
	scenes := gjson.GetBytes(data, "scenes_played").Int() + 1

	var err error
	set := func(key string, value interface{}) {
		if err != nil {
			return
		}
		data, err = sjson.SetBytes(data, key, value)
	}
	set("playtime", playMinutes)
	set("scenes_played", scenes)
	set("adventures", readVar(v, "ADVENTURE_SUM"))
	set("requests_cleared", readVar(v, "REQUEST_CLEAR_COUNT"))
	set("dungeons_cleared", readVar(v, "DUNGEON_CLEAR_COUNT"))
	set("gold.carry", readVar(v, "CARRY_GOLD"))
	set("gold.bank", readVar(v, "BANK_GOLD"))
	set("scenario.main", readVar(v, "SCENARIO_MAIN"))
	if v.Scene != nil {
		set("last_scene", v.Scene.Name)
	}
	if err != nil {
		return fmt.Errorf("save: update stats: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("save: write %s: %w", path, err)
	}
	return nil
}

// TeamNames returns the player-visible names recorded in the store,
// for display in stats and save-slot listings.
func TeamNames(v *vm.VM) (team, hero, partner string) {
	get := func(name string) string {
		desc, ok := op.VariableByName(name)
		if !ok {
			return ""
		}
		s, err := v.Values.ReadString(desc.ID)
		if err != nil {
			return ""
		}
		return s
	}
	return get("TEAM_NAME"), get("HERO_NAME"), get("PARTNER_NAME")
}
