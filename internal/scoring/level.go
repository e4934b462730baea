package scoring

// A learner starts at level 1 and moves up one level per completed 100-point band,
// capped at level 50.
const (
	pointsPerLevel = 100
	maxLevel       = 50
)

// LevelForPoints maps a learner's cumulative points to their level. Negative input is
// treated as zero.
func LevelForPoints(points int) int {
	if points < 0 {
		points = 0
	}
	level := points/pointsPerLevel + 1
	if level > maxLevel {
		return maxLevel
	}
	return level
}

// PointsForNextLevel returns how many more points are needed to reach the next level,
// or 0 when the learner is already at the cap.
func PointsForNextLevel(points int) int {
	if points < 0 {
		points = 0
	}
	if LevelForPoints(points) >= maxLevel {
		return 0
	}
	return pointsPerLevel - points%pointsPerLevel
}
