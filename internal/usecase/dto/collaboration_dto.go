package dto

// CreateCollaborationRequest - public submission form fields; attachments
// ride along in the multipart request.
type CreateCollaborationRequest struct {
	Name    string `json:"name" form:"name" validate:"required"`
	Email   string `json:"email" form:"email" validate:"required,email"`
	Phone   string `json:"phone" form:"phone"`
	Subject string `json:"subject" form:"subject" validate:"required"`
	Message string `json:"message" form:"message" validate:"required"`
}

// UpdateCollaborationRequest - unset fields keep their stored values.
// Status moves a submission through the review pipeline.
type UpdateCollaborationRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Phone   *string `json:"phone"`
	Subject *string `json:"subject"`
	Message *string `json:"message"`
	Status  *string `json:"status" validate:"omitempty,oneof=pending reviewed approved rejected"`
}

// ListCollaborationsQuery - the only non-document list that paginates.
type ListCollaborationsQuery struct {
	Status string `query:"status" validate:"omitempty,oneof=pending reviewed approved rejected"`
	Page   int    `query:"page" validate:"omitempty,min=1"`
	Limit  int    `query:"limit" validate:"omitempty,min=1,max=100"`
}
