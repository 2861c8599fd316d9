package zoo

// CheckProgression restores the xp-below-threshold invariant. It loops so a
// single large award can cross several levels, recomputing the threshold
// from the new level each pass. Call it synchronously after every mutation
// that can raise xp. Returns the number of levels gained.
func CheckProgression(w *WorldState) int {
	levels := 0
	for w.XP >= LevelThreshold(w.Level) {
		w.XP -= LevelThreshold(w.Level)
		w.Level++
		w.Diamonds += LevelUpDiamondReward
		levels++
	}
	return levels
}
