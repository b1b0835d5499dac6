package document

import "io"

type ListFilter struct {
	Status     string `form:"status" binding:"omitempty,oneof=pending approved rejected"`
	EmployeeID string `form:"employee_id" binding:"omitempty,uuid"`
}

type RejectRequest struct {
	Reason string `json:"reason" binding:"max=1000"`
}

// UploadInput is a validated multipart upload handed to the service.
type UploadInput struct {
	TaskID       string
	OriginalName string
	Body         io.Reader
	Size         int64
	// CompleteTask marks the linked task completed in the same transaction.
	CompleteTask bool
}

type DocumentResponse struct {
	ID               string `json:"id"`
	EmployeeID       string `json:"employee_id"`
	TaskID           string `json:"task_id,omitempty"`
	Filename         string `json:"filename"`
	OriginalFilename string `json:"original_filename"`
	FileType         string `json:"file_type"`
	FileSize         int64  `json:"file_size"`
	Status           string `json:"status"`
	ReviewedBy       string `json:"reviewed_by,omitempty"`
	ReviewedDate     string `json:"reviewed_date,omitempty"`
	RejectionReason  string `json:"rejection_reason,omitempty"`
	UploadedDate     string `json:"uploaded_date"`
	EmployeeName     string `json:"employee_name,omitempty"`
	EmployeeEmail    string `json:"employee_email,omitempty"`
	TaskTitle        string `json:"task_title,omitempty"`
	ReviewedByName   string `json:"reviewed_by_name,omitempty"`
}

// Download describes an opened stored file ready to stream.
type Download struct {
	File     io.ReadCloser
	Name     string
	MimeType string
	Size     int64
}
