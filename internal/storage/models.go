package storage

// DailyLog is one day of study. Date is unique across logs.
type DailyLog struct {
	ID             string          `json:"id" validate:"required"`
	Date           string          `json:"date" validate:"required,datetime=2006-01-02"`
	StudyHours     float64         `json:"studyHours" validate:"gte=0"`
	ExamFocus      string          `json:"examFocus"`
	SubjectID      string          `json:"subjectId,omitempty"`
	Subject        string          `json:"subject"` // display name, kept in sync on rename
	ProblemsSolved int             `json:"problemsSolved" validate:"gte=0"`
	Platform       string          `json:"platform"`
	Topics         string          `json:"topics"`
	MockTestScore  *int            `json:"mockTestScore"`
	EnergyLevel    int             `json:"energyLevel" validate:"omitempty,gte=1,lte=5"` // 1-5; 0 means not recorded
	Notes          string          `json:"notes"`
	Checklist      map[string]bool `json:"checklist,omitempty"`
}

type Subject struct {
	ID              string  `json:"id" validate:"required"`
	Name            string  `json:"name" validate:"required"`
	TotalTopics     int     `json:"totalTopics" validate:"gte=0"`
	CompletedTopics int     `json:"completedTopics" validate:"gte=0"`
	HoursSpent      float64 `json:"hoursSpent" validate:"gte=0"`
	LastStudied     *string `json:"lastStudied" validate:"omitempty,datetime=2006-01-02"`
}

type MockTest struct {
	ID         string  `json:"id" validate:"required"`
	Date       string  `json:"date" validate:"required,datetime=2006-01-02"`
	Exam       string  `json:"exam"`
	Score      float64 `json:"score"`
	TotalMarks float64 `json:"totalMarks" validate:"gte=0"`
	Rank       *int    `json:"rank"`
	Notes      string  `json:"notes"`
}

type Reminder struct {
	ID    string `json:"id" validate:"required"`
	Title string `json:"title" validate:"required"`
	Date  string `json:"date" validate:"required,datetime=2006-01-02"`
	Notes string `json:"notes"`
}

type MonthlyGoals struct {
	StudyHours     float64 `json:"studyHours" validate:"gte=0"`
	TopicsComplete int     `json:"topicsComplete" validate:"gte=0"`
	MockTests      int     `json:"mockTests" validate:"gte=0"`
	ProblemsSolved int     `json:"problemsSolved" validate:"gte=0"`
}

type Goals struct {
	Monthly MonthlyGoals `json:"monthly"`
}

type ExamDates struct {
	Gate string `json:"gate" validate:"omitempty,datetime=2006-01-02"`
	Net  string `json:"net" validate:"omitempty,datetime=2006-01-02"`
}

type Settings struct {
	DarkMode bool `json:"darkMode"`
}

func DefaultGoals() Goals {
	return Goals{Monthly: MonthlyGoals{
		StudyHours:     250,
		TopicsComplete: 15,
		MockTests:      8,
		ProblemsSolved: 500,
	}}
}

func DefaultExamDates() ExamDates {
	return ExamDates{Gate: "2026-02-01", Net: "2025-12-15"}
}
