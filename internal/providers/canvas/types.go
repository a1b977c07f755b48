package canvas

// Course is the subset of the Canvas Course object the sync reads.
// Courses hidden by date restrictions come back with only an id.
type Course struct {
	ID                     int64  `json:"id"`
	Name                   string `json:"name"`
	CourseCode             string `json:"course_code"`
	AccessRestrictedByDate bool   `json:"access_restricted_by_date"`
}

// Assignment is the subset of the Canvas Assignment object the sync reads.
type Assignment struct {
	ID       int64   `json:"id"`
	CourseID int64   `json:"course_id"`
	Name     string  `json:"name"`
	DueAt    *string `json:"due_at"`
	HTMLURL  string  `json:"html_url"`
}
