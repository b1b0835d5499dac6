package document

import "time"

func formatTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func MapViewToResponse(v DocumentView) DocumentResponse {
	return DocumentResponse{
		ID:               v.ID,
		EmployeeID:       v.EmployeeID,
		TaskID:           deref(v.TaskID),
		Filename:         v.Filename,
		OriginalFilename: v.OriginalFilename,
		FileType:         v.FileType,
		FileSize:         v.FileSize,
		Status:           v.Status,
		ReviewedBy:       deref(v.ReviewedBy),
		ReviewedDate:     formatTime(v.ReviewedDate),
		RejectionReason:  v.RejectionReason,
		UploadedDate:     formatTime(&v.CreatedAt),
		EmployeeName:     v.EmployeeName,
		EmployeeEmail:    v.EmployeeEmail,
		TaskTitle:        deref(v.TaskTitle),
		ReviewedByName:   deref(v.ReviewedByName),
	}
}

func MapViewsToResponse(views []DocumentView) []DocumentResponse {
	res := make([]DocumentResponse, len(views))
	for i, v := range views {
		res[i] = MapViewToResponse(v)
	}
	return res
}

func mapCreated(doc Document) DocumentResponse {
	resp := DocumentResponse{
		ID:               doc.ID.String(),
		EmployeeID:       doc.EmployeeID.String(),
		Filename:         doc.Filename,
		OriginalFilename: doc.OriginalFilename,
		FileType:         doc.FileType,
		FileSize:         doc.FileSize,
		Status:           doc.Status,
		UploadedDate:     formatTime(&doc.CreatedAt),
	}
	if doc.TaskID != nil {
		resp.TaskID = doc.TaskID.String()
	}
	return resp
}
