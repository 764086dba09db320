package tracker

import "github.com/focusflow-app/focusflow_api/model"

// ToggleDay flips one day's completion in an entry set: if any entry for
// the day exists it is removed, otherwise the given entry is appended as
// completed. Returns the resulting set and whether the day ended up
// completed. Applying the same toggle twice restores the original set.
func ToggleDay(entries []model.HabitEntry, entry model.HabitEntry) ([]model.HabitEntry, bool) {
	out := make([]model.HabitEntry, 0, len(entries)+1)
	removed := false
	for _, e := range entries {
		if e.Date == entry.Date {
			removed = true
			continue
		}
		out = append(out, e)
	}
	if removed {
		return out, false
	}

	entry.Completed = true
	return append(out, entry), true
}
