package entities

// Week is one week of the training program.
type Week struct {
	Number int    `json:"number"`
	Days   []*Day `json:"days"`
}

// Day is one training day inside a week.
type Day struct {
	Number    int         `json:"number"`
	Title     string      `json:"title"`
	Exercises []*Exercise `json:"exercises"`
}

// Exercise describes a single prescribed exercise. Immutable and shared
// read-only across all users.
type Exercise struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	MuscleGroup string        `json:"muscle_group"`
	Movement    string        `json:"movement"`
	Sets        []ExerciseSet `json:"sets"`
	Description string        `json:"description"`
}

// ExerciseSet is one prescribed set of an exercise.
type ExerciseSet struct {
	Reps      int    `json:"reps"`
	Intensity string `json:"intensity"`
}
