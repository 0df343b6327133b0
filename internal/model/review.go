package model

// Review is a product review or, when ParentID is set, a reply to one.
type Review struct {
	ID             int      `json:"review_id"`
	ProductID      int      `json:"product_id"`
	UserID         int      `json:"user_id"`
	ParentID       *int     `json:"parent_id,omitempty"`
	FirstName      string   `json:"firstname,omitempty"`
	Title          string   `json:"title,omitempty"`
	Description    string   `json:"description"`
	Stars          int      `json:"stars,omitempty"`
	IsDeleted      bool     `json:"is_deleted"`
	DeleteMessage  string   `json:"delete_message,omitempty"`
	CreateDatetime string   `json:"create_datetime,omitempty"`
	UpdateDatetime *string  `json:"update_datetime,omitempty"`
	Replies        []Review `json:"replies,omitempty"`
}

// ReviewRequest is the payload for creating or editing a review.
type ReviewRequest struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description"`
	Stars       int    `json:"stars,omitempty"`
	ProductID   int    `json:"product_id,omitempty"`
	UserID      int    `json:"user_id"`
}

// ReplyRequest is the payload for creating or editing a reply.
type ReplyRequest struct {
	Description string `json:"description"`
	ProductID   int    `json:"product_id,omitempty"`
	UserID      int    `json:"user_id"`
	ParentID    int    `json:"parent_id,omitempty"`
}

// OwnerRequest identifies the user deleting a review or reply.
type OwnerRequest struct {
	UserID int `json:"user_id"`
}
