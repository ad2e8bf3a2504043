package models

// EmailMessage is a mailbox message as exposed by the email endpoints.
type EmailMessage struct {
	ID              string    `json:"id"`
	MessageID       string    `json:"message_id,omitempty"`
	Subject         string    `json:"subject"`
	Sender          string    `json:"sender"`
	SenderEmail     string    `json:"sender_email"`
	BodyPreview     string    `json:"body_preview"`
	BodyContent     string    `json:"body_content,omitempty"`
	Categories      []string  `json:"categories,omitempty"`
	IsAcademic      bool      `json:"is_academic"`
	Importance      string    `json:"importance"`
	ReceivedAt      Timestamp `json:"received_at"`
	HasAttachments  bool      `json:"has_attachments"`
	AttachmentCount int       `json:"attachment_count,omitempty"`
}

// EmailList is the payload of the recent and search email endpoints.
type EmailList struct {
	Emails []EmailMessage `json:"emails"`
	Count  int            `json:"count"`
}

// EmailStatus is the payload of GET /api/email/status.
type EmailStatus struct {
	Connected bool       `json:"connected"`
	LastSync  *Timestamp `json:"last_sync"`
}

// EmailSearchRequest is the body of POST /api/email/search.
type EmailSearchRequest struct {
	Keyword string `json:"keyword"`
	Top     int    `json:"top"`
}
