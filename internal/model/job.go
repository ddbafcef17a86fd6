package model

// Document keys used by the jobsPost collection.
const (
	JobCategoryKey     = "Category"
	JobAppliedCountKey = "AppliedCount"
	JobPostedEmailKey  = "postedEmail"
)

// JobFilter selects a page of postings, optionally restricted to one category.
// A zero Limit means no limit.
type JobFilter struct {
	Category string
	Skip     int64
	Limit    int64
}

// JobUpdate is the fixed field set written by a full replace of a posting.
// Fields absent from the request are written as null.
type JobUpdate struct {
	JobTitle             any `json:"JobTitle" bson:"JobTitle"`
	Category             any `json:"Category" bson:"Category"`
	ApplicationStartDate any `json:"ApplicationStartDate" bson:"ApplicationStartDate"`
	ApplicationEndDate   any `json:"ApplicationEndDate" bson:"ApplicationEndDate"`
	Salary               any `json:"Salary" bson:"Salary"`
	AppliedCount         any `json:"AppliedCount" bson:"AppliedCount"`
	JobBanner            any `json:"JobBanner" bson:"JobBanner"`
	LoggedInUser         any `json:"LoggedInUser" bson:"LoggedInUser"`
	CompanyLogo          any `json:"CompanyLogo" bson:"CompanyLogo"`
	CompanySlogan        any `json:"CompanySlogan" bson:"CompanySlogan"`
	DetailDescription    any `json:"DetailDescription" bson:"DetailDescription"`
}

// Fields returns the update as key/value pairs in a stable order.
func (u JobUpdate) Fields() []Field {
	return []Field{
		{"JobTitle", u.JobTitle},
		{"Category", u.Category},
		{"ApplicationStartDate", u.ApplicationStartDate},
		{"ApplicationEndDate", u.ApplicationEndDate},
		{"Salary", u.Salary},
		{"AppliedCount", u.AppliedCount},
		{"JobBanner", u.JobBanner},
		{"LoggedInUser", u.LoggedInUser},
		{"CompanyLogo", u.CompanyLogo},
		{"CompanySlogan", u.CompanySlogan},
		{"DetailDescription", u.DetailDescription},
	}
}

// Field is a single document key and its value.
type Field struct {
	Key   string
	Value any
}
