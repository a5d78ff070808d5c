package schema

// legacySlot is the combined 18-24 key some inputs still send (§9 Open
// Question). It is split into the modern 18-21/21-23 pair by assigning
// the full demand to 18-21, per the documented resolution in
// SPEC_FULL.md §C, unless the split keys are already present.
const legacySlot = "18-24"

// expandNeedTemplate copies the raw per-day-type demand rows into the
// canonical six-slot shape, splitting any legacy "18-24" key and
// warning when it does so.
func expandNeedTemplate(raw map[string]map[string]int, warnings []string) (map[string]map[string]int, []string) {
	out := make(map[string]map[string]int, len(raw))
	for dayType, slots := range raw {
		row := make(map[string]int, len(slots))
		for slot, need := range slots {
			if slot == legacySlot {
				continue
			}
			row[slot] = need
		}
		if legacyNeed, ok := slots[legacySlot]; ok {
			if _, hasSplit := slots["18-21"]; !hasSplit {
				row["18-21"] = legacyNeed
				if _, hasNight := slots["21-23"]; !hasNight {
					row["21-23"] = 0
				}
				warnings = append(warnings, "dayType "+dayType+": legacy \"18-24\" key split into 18-21/21-23")
			}
		}
		out[dayType] = row
	}
	return out, warnings
}
