package domain

// Program is a degree program document (e.g. OMSCS).
type Program struct {
	ProgramID string `json:"id" dynamodbav:"program_id"`
	Acronym   string `json:"acronym" dynamodbav:"acronym"`
	Name      string `json:"name" dynamodbav:"name"`
	URL       string `json:"url,omitempty" dynamodbav:"url"`
}
