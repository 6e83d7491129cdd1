package resumes

import "encoding/json"

// CreateResumeRequest is the POST /resumes body. Content is optional; an
// omitted content yields the schema default (all sections absent). The id and
// creation timestamp cannot be supplied by clients: the body simply has no
// such fields.
type CreateResumeRequest struct {
	Title   string          `json:"title"`
	Content json.RawMessage `json:"content"`
}

// UpdateResumeRequest is the PUT /resumes/:id body. Absent fields mean "leave
// unchanged"; a present content replaces the stored payload whole.
type UpdateResumeRequest struct {
	Title   *string         `json:"title"`
	Content json.RawMessage `json:"content"`
}
