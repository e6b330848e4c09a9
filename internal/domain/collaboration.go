package domain

import "time"

// CollaborationStatuses is the fixed set accepted for Collaboration.Status.
var CollaborationStatuses = []string{
	"pending",
	"reviewed",
	"approved",
	"rejected",
}

const CollaborationStatusDefault = "pending"

// Collaboration is a public submission, optionally with file attachments
// stored on disk and referenced by relative path.
type Collaboration struct {
	ID        int64               `json:"id" db:"id"`
	Name      string              `json:"name" db:"name"`
	Email     string              `json:"email" db:"email"`
	Phone     string              `json:"phone" db:"phone"`
	Subject   string              `json:"subject" db:"subject"`
	Message   string              `json:"message" db:"message"`
	Status    string              `json:"status" db:"status"`
	Files     []CollaborationFile `json:"files"`
	CreatedAt time.Time           `json:"created_at" db:"created_at"`
	UpdatedAt time.Time           `json:"updated_at" db:"updated_at"`
}

// CollaborationFile records one stored attachment.
type CollaborationFile struct {
	ID              int64  `json:"id" db:"id"`
	CollaborationID int64  `json:"collaboration_id" db:"collaboration_id"`
	FileName        string `json:"file_name" db:"file_name"`
	FilePath        string `json:"file_path" db:"file_path"`
	FileSize        int64  `json:"file_size" db:"file_size"`
	MimeType        string `json:"mime_type" db:"mime_type"`
}
